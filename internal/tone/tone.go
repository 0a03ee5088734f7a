// Package tone captures the buzzer output of a machine and writes it as a WAV
// file. Audio data is buffered in memory in its entirety and written on
// program end.
package tone

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/log"
)

// Output format of the recording.
const (
	SampleRate = 44100
	BitDepth   = 16
	channels   = 1
	pcmFormat  = 1

	amplitude = 8000
)

// PatternBits is the number of bits of an audio sample pattern.
const PatternBits = 128

// Recorder converts the per frame buzzer state into PCM samples.
type Recorder struct {
	logger *log.Logger
	rate   int // frames per second

	samples []int
	phase   float64 // position in the sample pattern, in bits
}

// New returns a recorder for the given frame rate.
func New(logger *log.Logger, frameRate int) *Recorder {
	return &Recorder{
		logger: logger,
		rate:   frameRate,
	}
}

// PlaybackRate returns the pattern playback rate in bits per second for a
// pitch register value. A pitch of 64 plays 4000 bits per second.
func PlaybackRate(pitch byte) float64 {
	return 4000 * math.Pow(2, (float64(pitch)-64)/48)
}

// Frame records one frame of audio. While the buzzer is active the sample
// pattern is played at the rate selected by pitch, otherwise silence is
// recorded.
func (r *Recorder) Frame(active bool, pitch byte, pattern [PatternBits / 8]byte) {
	count := SampleRate / r.rate
	if !active {
		for range count {
			r.samples = append(r.samples, 0)
		}
		r.phase = 0
		return
	}

	step := PlaybackRate(pitch) / SampleRate
	for range count {
		bit := int(r.phase) % PatternBits
		value := -amplitude
		if pattern[bit/8]&(0x80>>(bit%8)) != 0 {
			value = amplitude
		}
		r.samples = append(r.samples, value)
		r.phase = math.Mod(r.phase+step, PatternBits)
	}
}

// Samples returns the number of recorded samples.
func (r *Recorder) Samples() int {
	return len(r.samples)
}

// Write encodes the recording as a WAV stream.
func (r *Recorder) Write(ws io.WriteSeeker) error {
	enc := wav.NewEncoder(ws, SampleRate, BitDepth, channels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  SampleRate,
		},
		Data:           r.samples,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}
	return nil
}

// Save writes the recording to a WAV file.
func (r *Recorder) Save(fileName string) (rerr error) {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", fileName, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing file %s: %w", fileName, err)
		}
	}()

	r.logger.Info("Writing audio", log.String("file", fileName), log.Int("samples", len(r.samples)))
	return r.Write(f)
}
