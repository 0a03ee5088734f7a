package debugger

import (
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrochip8/internal/vmerror"
)

type command struct {
	name    string
	alias   string
	args    string
	help    string
	maxArgs int
	run     func(d *Debugger, args []string) (Action, error)
}

// commandList is set in init as the help command refers to it.
var (
	commandList []command
	commands    map[string]command
)

func init() {
	commandList = []command{
		{name: "break", alias: "b", args: "[ADDR]", maxArgs: 1, run: (*Debugger).cmdBreak,
			help: "set a breakpoint at ADDR, at the current address without argument"},
		{name: "rmbreak", alias: "rb", args: "[ADDR]", maxArgs: 1, run: (*Debugger).cmdRemoveBreak,
			help: "remove the breakpoint at ADDR, at the current address without argument"},
		{name: "list", alias: "l", maxArgs: 0, run: (*Debugger).cmdList,
			help: "list all breakpoints"},
		{name: "continue", alias: "c", maxArgs: 0, run: (*Debugger).cmdContinue,
			help: "continue execution until the next breakpoint"},
		{name: "next", alias: "n", maxArgs: 0, run: (*Debugger).cmdNext,
			help: "execute the next instruction"},
		{name: "over", alias: "o", maxArgs: 0, run: (*Debugger).cmdOver,
			help: "execute the next instruction, run subroutine calls until they return"},
		{name: "print", alias: "p", args: "[PC|SP|DT|ST|I|K|V|Vx|stack|$ADDR]", maxArgs: 1, run: (*Debugger).cmdPrint,
			help: "print the machine state or a part of it"},
		{name: "set", alias: "s", args: "PC|DT|ST|I|Vx VALUE", maxArgs: 2, run: (*Debugger).cmdSet,
			help: "set a register or timer to VALUE"},
		{name: "help", alias: "h", maxArgs: 0, run: (*Debugger).cmdHelp,
			help: "print this help"},
		{name: "quit", alias: "q", maxArgs: 0, run: (*Debugger).cmdQuit,
			help: "stop the machine and exit"},
	}

	commands = make(map[string]command, 2*len(commandList))
	for _, cmd := range commandList {
		commands[cmd.name] = cmd
		commands[cmd.alias] = cmd
	}
}

func (d *Debugger) cmdBreak(args []string) (Action, error) {
	address, err := d.addressArgument(args)
	if err != nil {
		return None, err
	}
	d.AddBreakpoint(address)
	d.printf("breakpoint set at $%03X\n", address)
	return None, nil
}

func (d *Debugger) cmdRemoveBreak(args []string) (Action, error) {
	address, err := d.addressArgument(args)
	if err != nil {
		return None, err
	}
	if !d.RemoveBreakpoint(address) {
		return None, vmerror.New(vmerror.InvalidArgument, "no breakpoint at $%03X", address)
	}
	d.printf("breakpoint removed at $%03X\n", address)
	return None, nil
}

func (d *Debugger) cmdList([]string) (Action, error) {
	breakpoints := d.Breakpoints()
	if len(breakpoints) == 0 {
		d.printf("no breakpoints\n")
		return None, nil
	}
	for _, address := range breakpoints {
		word := d.machine.Memory().ReadWord(address)
		d.printf("$%03X: %s\n", address, d.format(word))
	}
	return None, nil
}

func (d *Debugger) cmdContinue([]string) (Action, error) {
	return Continue, nil
}

func (d *Debugger) cmdNext([]string) (Action, error) {
	return Step, nil
}

// cmdOver runs a subroutine call as a single step by stopping at the
// instruction following the call.
func (d *Debugger) cmdOver([]string) (Action, error) {
	pc := d.machine.PC()
	op, ok := opcode.Decode(d.machine.Memory().ReadWord(pc))
	if !ok || !op.Base().IsCall() {
		return Step, nil
	}
	d.temporary.Add(d.machine.Memory().Mask(int(pc) + op.Size()))
	return Continue, nil
}

func (d *Debugger) cmdPrint(args []string) (Action, error) {
	if len(args) == 0 {
		regs := d.machine.Registers()
		d.printf("%s SP=%d DT=%d ST=%d state=%s\n", regs, d.machine.SP(),
			d.machine.Timers().Delay(), d.machine.Timers().Sound(), d.machine.State())
		d.printLocation()
		return None, nil
	}

	attr := strings.ToUpper(args[0])
	switch attr {
	case "PC":
		d.printf("PC=$%03X\n", d.machine.PC())
	case "SP":
		d.printf("SP=%d\n", d.machine.SP())
	case "DT":
		d.printf("DT=%d\n", d.machine.Timers().Delay())
	case "ST":
		d.printf("ST=%d\n", d.machine.Timers().Sound())
	case "I":
		d.printf("I=$%03X\n", d.machine.I())
	case "K", "VK":
		d.printKeys()
	case "V":
		for i := range vm.RegisterCount {
			d.printf("V%X=$%02X\n", i, d.machine.V(i))
		}
	case "STACK":
		entries := d.machine.Stack().Entries()
		if len(entries) == 0 {
			d.printf("stack is empty\n")
		}
		for i := len(entries) - 1; i >= 0; i-- {
			d.printf("%2d: $%03X\n", i, entries[i])
		}
	default:
		return d.printOther(attr)
	}
	return None, nil
}

func (d *Debugger) printOther(attr string) (Action, error) {
	if strings.HasPrefix(attr, "$") {
		address, err := d.parseAddress(attr)
		if err != nil {
			return None, err
		}
		d.printf("$%03X: $%02X\n", address, d.machine.Memory().Read(address))
		return None, nil
	}

	reg, err := parseRegister(attr)
	if err != nil {
		return None, err
	}
	d.printf("V%X=$%02X\n", reg, d.machine.V(reg))
	return None, nil
}

func (d *Debugger) printKeys() {
	var pressed []string
	for key := range byte(vm.KeyCount) {
		if d.machine.KeyPressed(key) {
			pressed = append(pressed, strconv.FormatUint(uint64(key), 16))
		}
	}
	if len(pressed) == 0 {
		d.printf("no keys pressed\n")
		return
	}
	d.printf("pressed keys: %s\n", strings.ToUpper(strings.Join(pressed, " ")))
}

func (d *Debugger) cmdSet(args []string) (Action, error) {
	if len(args) != 2 {
		return None, vmerror.New(vmerror.InvalidArgument, "set requires an attribute and a value")
	}

	attr := strings.ToUpper(args[0])
	value, err := parseNumber(args[1], 16)
	if err != nil {
		return None, err
	}

	switch attr {
	case "PC":
		d.machine.SetPC(uint16(value))
	case "I":
		d.machine.SetI(uint16(value))
	case "DT", "ST":
		if value > 0xFF {
			return None, vmerror.New(vmerror.InvalidArgument, "value $%X exceeds 8 bits", value)
		}
		if attr == "DT" {
			d.machine.Timers().SetDelay(byte(value))
		} else {
			d.machine.Timers().SetSound(byte(value))
		}
	default:
		reg, err := parseRegister(attr)
		if err != nil {
			return None, err
		}
		if value > 0xFF {
			return None, vmerror.New(vmerror.InvalidArgument, "value $%X exceeds 8 bits", value)
		}
		d.machine.SetV(reg, byte(value))
	}
	return None, nil
}

func (d *Debugger) cmdHelp([]string) (Action, error) {
	d.printf("Commands, numbers are hexadecimal with optional $ or 0x prefix:\n")
	for _, cmd := range commandList {
		usage := strings.TrimSpace(cmd.name + " " + cmd.args)
		d.printf("  %-44s %s\n", usage+" ("+cmd.alias+")", cmd.help)
	}
	return None, nil
}

func (d *Debugger) cmdQuit([]string) (Action, error) {
	return Quit, nil
}

func (d *Debugger) addressArgument(args []string) (uint16, error) {
	if len(args) == 0 {
		return d.machine.PC(), nil
	}
	return d.parseAddress(args[0])
}

func (d *Debugger) parseAddress(s string) (uint16, error) {
	value, err := parseNumber(s, 16)
	if err != nil {
		return 0, err
	}
	if int(value) >= d.machine.Memory().Size() {
		return 0, vmerror.New(vmerror.InvalidArgument, "address $%X outside of memory", value)
	}
	return uint16(value), nil
}

// parseNumber parses a hexadecimal number with an optional $ or 0x prefix.
func parseNumber(s string, bits int) (uint64, error) {
	digits := strings.TrimPrefix(strings.ToLower(s), "$")
	digits = strings.TrimPrefix(digits, "0x")
	value, err := strconv.ParseUint(digits, 16, bits)
	if err != nil {
		return 0, vmerror.New(vmerror.InvalidArgument, "invalid number '%s'", s)
	}
	return value, nil
}

func parseRegister(s string) (int, error) {
	if len(s) != 2 || (s[0] != 'V' && s[0] != 'v') {
		return 0, vmerror.New(vmerror.InvalidArgument, "unknown attribute '%s'", s)
	}
	reg, err := strconv.ParseUint(s[1:], 16, 4)
	if err != nil {
		return 0, vmerror.New(vmerror.InvalidArgument, "unknown register '%s'", s)
	}
	return int(reg), nil
}
