// Package debugger implements breakpoints and an interactive command
// interpreter that inspects and modifies a virtual machine.
package debugger

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Action tells the host how to continue after a command.
type Action int

// Debugger actions.
const (
	None     Action = iota // stay at the prompt
	Step                   // execute one instruction and return to the prompt
	Continue               // run until the next breakpoint
	Quit                   // stop the machine
)

const prompt = "> "

// Debugger holds the breakpoints of a machine and executes debugger
// commands.
type Debugger struct {
	logger  *log.Logger
	machine *vm.VM
	out     io.Writer

	breakpoints set.Set[uint16]
	temporary   set.Set[uint16] // removed when hit, used by "over"
}

// New creates a new debugger for the machine that writes command output to
// out.
func New(logger *log.Logger, machine *vm.VM, out io.Writer) *Debugger {
	return &Debugger{
		logger:      logger,
		machine:     machine,
		out:         out,
		breakpoints: set.New[uint16](),
		temporary:   set.New[uint16](),
	}
}

// AddBreakpoint sets a breakpoint at the address.
func (d *Debugger) AddBreakpoint(address uint16) {
	d.breakpoints.Add(address)
}

// RemoveBreakpoint removes the breakpoint at the address. It returns false
// if no breakpoint was set.
func (d *Debugger) RemoveBreakpoint(address uint16) bool {
	if !d.breakpoints.Contains(address) {
		return false
	}
	delete(d.breakpoints, address)
	return true
}

// Breakpoints returns all breakpoint addresses in ascending order.
func (d *Debugger) Breakpoints() []uint16 {
	addresses := make([]uint16, 0, len(d.breakpoints))
	for address := range d.breakpoints {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)
	return addresses
}

// Hit returns whether execution should stop at the address. Temporary
// breakpoints are removed when they are hit.
func (d *Debugger) Hit(address uint16) bool {
	if d.temporary.Contains(address) {
		clear(d.temporary)
		return true
	}
	return d.breakpoints.Contains(address)
}

// REPL reads commands from the scanner and executes them until a command
// returns an action other than None. End of input and a cancelled context
// return Quit.
func (d *Debugger) REPL(ctx context.Context, scanner *bufio.Scanner) Action {
	d.printLocation()

	for {
		if ctx.Err() != nil {
			return Quit
		}
		if _, err := fmt.Fprint(d.out, prompt); err != nil {
			d.logger.Error("Writing prompt failed", log.Err(err))
			return Quit
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				d.logger.Error("Reading command failed", log.Err(err))
			}
			return Quit
		}

		action, err := d.Execute(scanner.Text())
		if err != nil {
			d.printf("error: %s\n", err)
			continue
		}
		if action != None {
			return action
		}
	}
}

// Execute parses and executes a single command line.
func (d *Debugger) Execute(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return None, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return None, vmerror.New(vmerror.InvalidArgument, "unknown command '%s', type help for a list of commands", name)
	}
	if len(args) > cmd.maxArgs {
		return None, vmerror.New(vmerror.InvalidArgument, "too many arguments for command '%s'", cmd.name)
	}
	return cmd.run(d, args)
}

func (d *Debugger) printLocation() {
	pc := d.machine.PC()
	word := d.machine.Memory().ReadWord(pc)
	d.printf("$%03X: %04X  %s\n", pc, word, d.format(word))
}

func (d *Debugger) format(word uint16) string {
	return opcode.FormatQuirks(word, d.machine.Config().Quirks)
}

func (d *Debugger) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(d.out, format, args...); err != nil {
		d.logger.Error("Writing debugger output failed", log.Err(err))
	}
}
