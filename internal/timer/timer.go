// Package timer implements the delay and sound countdown timers.
package timer

// Frequency is the rate in Hz at which the host calls Tick.
const Frequency = 60

// Timers holds the delay and sound timer. Both count down independently of
// instruction execution, only Tick decrements them.
type Timers struct {
	delay byte
	sound byte
}

// Tick decrements each nonzero timer by one.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the delay timer value.
func (t *Timers) Delay() byte {
	return t.delay
}

// Sound returns the sound timer value.
func (t *Timers) Sound() byte {
	return t.sound
}

// SetDelay sets the delay timer.
func (t *Timers) SetDelay(value byte) {
	t.delay = value
}

// SetSound sets the sound timer.
func (t *Timers) SetSound(value byte) {
	t.sound = value
}

// ToneActive returns whether the buzzer sounds.
func (t *Timers) ToneActive() bool {
	return t.sound > 0
}

// Reset sets both timers to zero.
func (t *Timers) Reset() {
	t.delay = 0
	t.sound = 0
}
