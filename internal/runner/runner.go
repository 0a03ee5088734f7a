// Package runner implements a headless host that drives a virtual machine:
// it executes instructions at the configured clock speed, ticks the timers at
// 60 Hz and connects the debugger, the buzzer recorder and the renderer.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrochip8/internal/debugger"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrochip8/internal/tone"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Options of the runner.
type Options struct {
	Frames   int  // number of 60 Hz frames to run, 0 runs until cancelled
	Realtime bool // pace frames to 60 Hz wall clock time

	Debug       bool      // start in the debugger
	Breakpoints []uint16  // initial breakpoints, enable the debugger
	Input       io.Reader // debugger command input
	Output      io.Writer // debugger and screen output

	WavFile  string           // buzzer recording, disabled if empty
	Renderer *render.Renderer // final screen output, disabled if nil
}

// Runner drives a machine.
type Runner struct {
	logger   *log.Logger
	machine  *vm.VM
	options  Options
	debugger *debugger.Debugger
	scanner  *bufio.Scanner
	recorder *tone.Recorder

	paused bool
}

// New creates a new runner for the machine.
func New(logger *log.Logger, machine *vm.VM, options Options) *Runner {
	r := &Runner{
		logger:  logger,
		machine: machine,
		options: options,
	}

	if options.Debug || len(options.Breakpoints) > 0 {
		r.debugger = debugger.New(logger, machine, options.Output)
		for _, address := range options.Breakpoints {
			r.debugger.AddBreakpoint(address)
		}
		r.scanner = bufio.NewScanner(options.Input)
		r.paused = options.Debug
	}
	if options.WavFile != "" {
		r.recorder = tone.New(logger, timer.Frequency)
	}
	return r
}

// InstructionsPerFrame returns the number of instructions executed between
// two timer ticks for the clock speed of the machine.
func (r *Runner) InstructionsPerFrame() int {
	return max(1, r.machine.Config().ClockSpeed/timer.Frequency)
}

// Run executes frames until the frame limit is reached, the context is
// cancelled, the program exits or the debugger quits. An exception that
// halts the machine is returned as error.
func (r *Runner) Run(ctx context.Context) error {
	cfg := r.machine.Config()
	r.logger.Info("Starting machine",
		log.Stringer("platform", cfg.Platform),
		log.Int("clock", cfg.ClockSpeed),
		log.String("quirks", cfg.Quirks.String()))

	var ticker *time.Ticker
	if r.options.Realtime {
		ticker = time.NewTicker(time.Second / timer.Frequency)
		defer ticker.Stop()
	}

	runErr := r.runFrames(ctx, ticker)

	r.logger.Info("Machine stopped",
		log.Stringer("state", r.machine.State()),
		log.Hex("pc", r.machine.PC()),
		log.Uint8("sp", r.machine.SP()),
		log.Int("steps", int(r.machine.Steps())))

	if err := r.finish(); err != nil {
		if runErr != nil {
			return runErr
		}
		return err
	}
	return runErr
}

func (r *Runner) runFrames(ctx context.Context, ticker *time.Ticker) error {
	for frame := 0; r.options.Frames == 0 || frame < r.options.Frames; frame++ {
		if ctx.Err() != nil {
			return nil
		}

		stop, err := r.runFrame(ctx)
		if err != nil {
			return fmt.Errorf("executing frame %d: %w", frame, err)
		}

		r.machine.Tick()
		if r.recorder != nil {
			r.recorder.Frame(r.machine.ToneActive(), r.machine.Pitch(), r.machine.AudioPattern())
		}
		if stop {
			return nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	}
	return nil
}

// runFrame executes the instructions of one frame. The frame ends early when
// the machine waits for the display or a key.
func (r *Runner) runFrame(ctx context.Context) (bool, error) {
	for range r.InstructionsPerFrame() {
		if r.machine.AwaitingVBlank() || r.machine.AwaitingKey() {
			return false, nil
		}

		if r.debugger != nil && (r.paused || r.debugger.Hit(r.machine.PC())) {
			switch r.debugger.REPL(ctx, r.scanner) {
			case debugger.Quit:
				r.machine.Halt()
				return true, nil
			case debugger.Step:
				r.paused = true
			case debugger.Continue:
				r.paused = false
			}
		}

		if err := r.machine.Step(); err != nil {
			return true, err
		}

		if r.machine.Exited() {
			r.logger.Info("Program exited", log.Hex("pc", r.machine.PC()))
			r.machine.Halt()
			return true, nil
		}
	}
	return false, nil
}

func (r *Runner) finish() error {
	if r.recorder != nil {
		if err := r.recorder.Save(r.options.WavFile); err != nil {
			return fmt.Errorf("saving audio: %w", err)
		}
	}

	if r.options.Renderer != nil {
		if err := r.options.Renderer.Render(r.machine.Display()); err != nil {
			return fmt.Errorf("rendering screen: %w", err)
		}
	}
	return nil
}
