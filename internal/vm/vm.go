// Package vm implements the CHIP-8 virtual machine: the register file, the
// fetch-decode-execute cycle and the state machine that drives it.
package vm

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/stack"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Audio defaults used until a program sets its own pattern and pitch.
const (
	DefaultPitch = 64
	patternSize  = 16
)

// State is the execution state of the machine.
type State int

// Machine states.
const (
	Ready State = iota
	Running
	Halted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// Options contains optional settings of a machine.
type Options struct {
	Trace  bool       // log every executed instruction at debug level
	Random *rand.Rand // source for CXNN, seeded randomly if nil
}

// VM is a single CHIP-8 interpreter instance. It is not safe for concurrent
// use, the host serializes calls to Step, Tick and the setters.
type VM struct {
	logger   *log.Logger
	cfg      config.Machine
	program  []byte
	options  Options
	random   *rand.Rand
	reporter *vmerror.Reporter

	regs    Registers
	flags   [RegisterCount]byte // persistent SCHIP flag registers
	memory  *memory.Memory
	stack   *stack.Stack
	timers  timer.Timers
	display *display.Display
	keys    set.Set[byte]

	state          State
	plane          byte // selected display planes
	awaitingVBlank bool
	awaitingKey    bool
	keyRegister    int
	exited         bool
	pitch          byte
	pattern        [patternSize]byte
	steps          uint64
}

// New validates the configuration and returns a machine in the Ready state
// with fonts and program loaded. The machine keeps its own copy of the
// configuration.
func New(logger *log.Logger, cfg config.Machine, program []byte, options Options) (*VM, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v := &VM{
		logger:   logger,
		cfg:      cfg,
		program:  append([]byte(nil), program...),
		options:  options,
		random:   options.Random,
		reporter: vmerror.NewReporter(logger),
		memory:   memory.New(cfg.Platform.MemorySize()),
		stack:    stack.New(cfg.StackDepth),
		display:  display.New(cfg.Platform.Planes()),
		keys:     set.New[byte](),
	}
	if v.random == nil {
		v.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if err := v.load(); err != nil {
		return nil, err
	}
	return v, nil
}

// Reset returns the machine to the Ready state. Memory, registers, stack,
// timers, display and keypad are reinitialized and the program is reloaded.
// A pending exception is consumed. Flag registers survive a reset.
func (v *VM) Reset() error {
	v.reporter.Consume()
	return v.load()
}

func (v *VM) load() error {
	if len(v.program) > v.memory.MaxProgramSize() {
		return vmerror.New(vmerror.FileTooBig, "program has %d bytes, maximum is %d bytes",
			len(v.program), v.memory.MaxProgramSize())
	}

	v.memory.Reset()
	if err := v.memory.Load(font.SmallStart, v.cfg.SmallFont); err != nil {
		return err
	}
	if err := v.memory.Load(font.BigStart, v.cfg.BigFont); err != nil {
		return err
	}
	if err := v.memory.Load(memory.ProgramStart, v.program); err != nil {
		return err
	}

	v.regs = Registers{PC: memory.ProgramStart}
	v.stack.Reset()
	v.timers.Reset()
	v.display.Reset()
	clear(v.keys)

	v.state = Ready
	v.plane = 1
	v.awaitingVBlank = false
	v.awaitingKey = false
	v.keyRegister = 0
	v.exited = false
	v.pitch = DefaultPitch
	for i := range v.pattern {
		v.pattern[i] = 0xF0
	}
	v.steps = 0
	return nil
}

// State returns the execution state.
func (v *VM) State() State {
	return v.state
}

// Halt stops the machine on request of the host.
func (v *VM) Halt() {
	if v.state != Halted {
		v.logger.Debug("Machine halted by host", log.Hex("pc", v.regs.PC))
	}
	v.state = Halted
}

// Exception returns the exception that halted the machine, or nil.
func (v *VM) Exception() *vmerror.Error {
	return v.reporter.Pending()
}

// ConsumeException returns the exception that halted the machine and clears
// it.
func (v *VM) ConsumeException() *vmerror.Error {
	return v.reporter.Consume()
}

// Tick advances the delay and sound timers by one 60 Hz period. It also ends
// a pending display wait.
func (v *VM) Tick() {
	v.timers.Tick()
	v.awaitingVBlank = false
}

// SetKey updates the state of a keypad key. A press completes a pending
// FX0A key wait.
func (v *VM) SetKey(key byte, pressed bool) error {
	if key >= KeyCount {
		return vmerror.New(vmerror.InvalidArgument, "key %d out of range", key)
	}
	if !pressed {
		delete(v.keys, key)
		return nil
	}

	v.keys.Add(key)
	if v.awaitingKey {
		v.regs.V[v.keyRegister] = key
		v.awaitingKey = false
	}
	return nil
}

// KeyPressed returns whether the key is held down.
func (v *VM) KeyPressed(key byte) bool {
	return v.keys.Contains(key & 0xF)
}

// Config returns a copy of the configuration of the machine.
func (v *VM) Config() config.Machine {
	return v.cfg.Clone()
}

// Registers returns a copy of the register file.
func (v *VM) Registers() Registers {
	return v.regs
}

// V returns the value of general purpose register i.
func (v *VM) V(i int) byte {
	return v.regs.V[i]
}

// SetV sets the value of general purpose register i.
func (v *VM) SetV(i int, value byte) {
	v.regs.V[i] = value
}

// I returns the index register.
func (v *VM) I() uint16 {
	return v.regs.I
}

// SetI sets the index register.
func (v *VM) SetI(value uint16) {
	v.regs.I = v.memory.Mask(int(value))
}

// PC returns the program counter.
func (v *VM) PC() uint16 {
	return v.regs.PC
}

// SetPC sets the program counter.
func (v *VM) SetPC(value uint16) {
	v.regs.PC = v.memory.Mask(int(value))
}

// SP returns the stack pointer.
func (v *VM) SP() uint8 {
	return v.stack.Pointer()
}

// Flag returns SCHIP flag register i.
func (v *VM) Flag(i int) byte {
	return v.flags[i]
}

// Memory returns the memory of the machine.
func (v *VM) Memory() *memory.Memory {
	return v.memory
}

// Stack returns the return address stack.
func (v *VM) Stack() *stack.Stack {
	return v.stack
}

// Timers returns the delay and sound timers.
func (v *VM) Timers() *timer.Timers {
	return &v.timers
}

// Display returns the display buffer.
func (v *VM) Display() *display.Display {
	return v.display
}

// ToneActive returns whether the buzzer sounds.
func (v *VM) ToneActive() bool {
	return v.timers.ToneActive()
}

// Pitch returns the XO-CHIP audio pitch register.
func (v *VM) Pitch() byte {
	return v.pitch
}

// AudioPattern returns the 128 bit audio sample pattern played while the
// buzzer sounds.
func (v *VM) AudioPattern() [patternSize]byte {
	return v.pattern
}

// AwaitingVBlank returns whether a draw is waiting for the next timer tick.
// Steps are no-ops until Tick is called.
func (v *VM) AwaitingVBlank() bool {
	return v.awaitingVBlank
}

// AwaitingKey returns whether FX0A waits for a key press. Steps are no-ops
// until SetKey reports a pressed key.
func (v *VM) AwaitingKey() bool {
	return v.awaitingKey
}

// Exited returns whether the program executed the SCHIP EXIT instruction.
func (v *VM) Exited() bool {
	return v.exited
}

// Steps returns the number of executed instructions since the last reset.
func (v *VM) Steps() uint64 {
	return v.steps
}
