package vm

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/log"
)

// Step executes one instruction. While a display wait or key wait is pending
// the step does nothing. A failing instruction halts the machine with the
// program counter on the failing instruction, the returned error is the
// reported exception.
func (v *VM) Step() error {
	if v.state == Halted {
		if err := v.reporter.Pending(); err != nil {
			return err
		}
		return vmerror.New(vmerror.InvalidArgument, "step on halted machine")
	}
	if v.awaitingVBlank || v.awaitingKey {
		return nil
	}

	address := v.regs.PC
	word := v.memory.ReadWord(address)
	v.regs.PC = v.memory.Mask(int(address) + 2)

	op, ok := opcode.Decode(word)
	if !ok || !v.cfg.Platform.Supports(op.Platform) || op.ID == opcode.Sys {
		v.regs.PC = address
		return v.fail(vmerror.New(vmerror.InvalidInstruction, "opcode $%04X at $%03X on %s",
			word, address, v.cfg.Platform))
	}

	if v.options.Trace {
		v.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.String("instruction", opcode.FormatQuirks(word, v.cfg.Quirks)))
	}

	if err := v.execute(op.ID, word); err != nil {
		// the program counter stays on the failing instruction
		v.regs.PC = address
		var vmErr *vmerror.Error
		if !errors.As(err, &vmErr) {
			vmErr = vmerror.New(vmerror.Unknown, "%s", err)
		}
		return v.fail(vmErr)
	}

	v.state = Running
	v.steps++
	return nil
}

func (v *VM) fail(err *vmerror.Error) error {
	v.state = Halted
	return v.reporter.Report(err)
}

func (v *VM) execute(id opcode.ID, word uint16) error {
	switch {
	case id <= opcode.Sys:
		return v.executeSystem(id, word)
	case id >= opcode.LoadReg && id <= opcode.ShiftLeft:
		v.executeArithmetic(id, opcode.X(word), opcode.Y(word))
		return nil
	case id >= opcode.LoadIndexLong:
		return v.executeMisc(id, word)
	default:
		return v.executeBase(id, word)
	}
}

// executeSystem handles the 0NNN family.
func (v *VM) executeSystem(id opcode.ID, word uint16) error {
	switch id {
	case opcode.Cls:
		v.display.Clear(v.plane)

	case opcode.Ret:
		address, err := v.stack.Pop()
		if err != nil {
			return err
		}
		v.regs.PC = address

	case opcode.ScrollDown:
		v.display.ScrollDown(opcode.N(word), v.plane)
	case opcode.ScrollUp:
		v.display.ScrollUp(opcode.N(word), v.plane)
	case opcode.ScrollRight:
		v.display.ScrollRight(4, v.plane)
	case opcode.ScrollLeft:
		v.display.ScrollLeft(4, v.plane)

	case opcode.Exit:
		// the machine keeps running on the EXIT instruction, the host decides
		// whether to halt
		v.regs.PC = v.memory.Mask(int(v.regs.PC) - 2)
		v.exited = true

	case opcode.Low:
		v.display.SetResolution(display.Low)
	case opcode.High:
		v.display.SetResolution(display.High)

	default:
		return vmerror.New(vmerror.InvalidInstruction, "opcode $%04X not supported", word)
	}
	return nil
}

// executeBase handles the jump, skip, load and draw families 1NNN to EXA1.
func (v *VM) executeBase(id opcode.ID, word uint16) error {
	x, y := opcode.X(word), opcode.Y(word)
	nn := opcode.NN(word)
	nnn := opcode.NNN(word)

	switch id {
	case opcode.Jump:
		v.regs.PC = nnn

	case opcode.Call:
		if err := v.stack.Push(v.regs.PC); err != nil {
			return err
		}
		v.regs.PC = nnn

	case opcode.SkipEqualByte:
		v.skipIf(v.regs.V[x] == nn)
	case opcode.SkipNotEqualByte:
		v.skipIf(v.regs.V[x] != nn)
	case opcode.SkipEqualReg:
		v.skipIf(v.regs.V[x] == v.regs.V[y])
	case opcode.SkipNotEqualReg:
		v.skipIf(v.regs.V[x] != v.regs.V[y])

	case opcode.SaveRange:
		for i, reg := range registerRange(x, y) {
			v.write(v.regs.I+uint16(i), v.regs.V[reg])
		}
	case opcode.LoadRange:
		for i, reg := range registerRange(x, y) {
			v.regs.V[reg] = v.read(v.regs.I + uint16(i))
		}

	case opcode.LoadByte:
		v.regs.V[x] = nn
	case opcode.AddByte:
		v.regs.V[x] += nn

	case opcode.LoadIndex:
		v.regs.I = nnn

	case opcode.JumpOffset:
		offset := v.regs.V[0]
		if v.cfg.Quirks.Jump {
			offset = v.regs.V[x]
		}
		v.regs.PC = v.memory.Mask(int(nnn) + int(offset))

	case opcode.Random:
		v.regs.V[x] = byte(v.random.UintN(256)) & nn

	case opcode.Draw:
		v.draw(x, y, opcode.N(word))

	case opcode.SkipKey:
		v.skipIf(v.KeyPressed(v.regs.V[x]))
	case opcode.SkipNotKey:
		v.skipIf(!v.KeyPressed(v.regs.V[x]))

	default:
		return vmerror.New(vmerror.InvalidInstruction, "opcode $%04X not supported", word)
	}
	return nil
}

// executeArithmetic handles the 8XYN family. VF is written after the result
// so that the flag wins if VX is VF.
func (v *VM) executeArithmetic(id opcode.ID, x, y int) {
	vx, vy := v.regs.V[x], v.regs.V[y]

	switch id {
	case opcode.LoadReg:
		v.regs.V[x] = vy

	case opcode.Or:
		v.regs.V[x] = vx | vy
		v.resetFlagUnlessBitwise()
	case opcode.And:
		v.regs.V[x] = vx & vy
		v.resetFlagUnlessBitwise()
	case opcode.Xor:
		v.regs.V[x] = vx ^ vy
		v.resetFlagUnlessBitwise()

	case opcode.AddReg:
		sum := uint16(vx) + uint16(vy)
		v.regs.V[x] = byte(sum)
		v.regs.V[flagRegister] = boolToByte(sum > 0xFF)

	case opcode.Sub:
		v.regs.V[x] = vx - vy
		v.regs.V[flagRegister] = boolToByte(vx >= vy)

	case opcode.SubN:
		v.regs.V[x] = vy - vx
		v.regs.V[flagRegister] = boolToByte(vy >= vx)

	case opcode.ShiftRight:
		src := vy
		if v.cfg.Quirks.Shift {
			src = vx
		}
		v.regs.V[x] = src >> 1
		v.regs.V[flagRegister] = src & 1

	case opcode.ShiftLeft:
		src := vy
		if v.cfg.Quirks.Shift {
			src = vx
		}
		v.regs.V[x] = src << 1
		v.regs.V[flagRegister] = src >> 7
	}
}

func (v *VM) resetFlagUnlessBitwise() {
	if !v.cfg.Quirks.Bitwise {
		v.regs.V[flagRegister] = 0
	}
}

// executeMisc handles the FNNN family.
func (v *VM) executeMisc(id opcode.ID, word uint16) error {
	x := opcode.X(word)

	switch id {
	case opcode.LoadIndexLong:
		v.regs.I = v.memory.ReadWord(v.regs.PC)
		v.regs.PC = v.memory.Mask(int(v.regs.PC) + 2)

	case opcode.Plane:
		v.plane = byte(x) & v.display.AllPlanes()

	case opcode.Audio:
		for i := range v.pattern {
			v.pattern[i] = v.read(v.regs.I + uint16(i))
		}

	case opcode.LoadDelay:
		v.regs.V[x] = v.timers.Delay()
	case opcode.WaitKey:
		v.awaitingKey = true
		v.keyRegister = x
	case opcode.SetDelay:
		v.timers.SetDelay(v.regs.V[x])
	case opcode.SetSound:
		v.timers.SetSound(v.regs.V[x])

	case opcode.AddIndex:
		v.regs.I = v.memory.Mask(int(v.regs.I) + int(v.regs.V[x]))

	case opcode.LoadFont:
		v.regs.I = uint16(font.SmallStart + int(v.regs.V[x]&0xF)*font.SmallGlyphHeight)
	case opcode.LoadBigFont:
		v.regs.I = uint16(font.BigStart + int(v.regs.V[x]&0xF)*font.BigGlyphHeight)

	case opcode.BCD:
		value := v.regs.V[x]
		v.write(v.regs.I, value/100)
		v.write(v.regs.I+1, value/10%10)
		v.write(v.regs.I+2, value%10)

	case opcode.Pitch:
		v.pitch = v.regs.V[x]

	case opcode.StoreRegs:
		for i := 0; i <= x; i++ {
			v.write(v.regs.I+uint16(i), v.regs.V[i])
		}
		v.incrementIndexUnlessLoadStore(x)
	case opcode.LoadRegs:
		for i := 0; i <= x; i++ {
			v.regs.V[i] = v.read(v.regs.I + uint16(i))
		}
		v.incrementIndexUnlessLoadStore(x)

	case opcode.StoreFlags:
		n := min(x+1, v.cfg.Platform.FlagRegisters())
		copy(v.flags[:n], v.regs.V[:n])
	case opcode.LoadFlags:
		n := min(x+1, v.cfg.Platform.FlagRegisters())
		copy(v.regs.V[:n], v.flags[:n])

	default:
		return vmerror.New(vmerror.InvalidInstruction, "opcode $%04X not supported", word)
	}
	return nil
}

func (v *VM) incrementIndexUnlessLoadStore(x int) {
	if !v.cfg.Quirks.LoadStore {
		v.regs.I = v.memory.Mask(int(v.regs.I) + x + 1)
	}
}

// draw executes DXYN. N=0 draws a 16x16 sprite on SCHIP and later platforms.
// Every selected plane consumes its own sprite data following the previous
// plane's data.
func (v *VM) draw(x, y, n int) {
	wide := n == 0 && v.cfg.Platform.Supports(platform.SCHIP)
	size := n
	if wide {
		size = 32
	}

	px, py := int(v.regs.V[x]), int(v.regs.V[y])
	address := int(v.regs.I)
	collision := false

	for plane := byte(1); plane <= v.display.AllPlanes(); plane <<= 1 {
		if v.plane&plane == 0 {
			continue
		}
		sprite := v.memory.ReadRange(v.memory.Mask(address), size)
		if v.display.DrawSprite(px, py, sprite, wide, plane, v.cfg.Quirks.Clip) {
			collision = true
		}
		address += size
	}

	v.regs.V[flagRegister] = boolToByte(collision)
	if !v.cfg.Quirks.Draw {
		v.awaitingVBlank = true
	}
}

// skipIf skips the next instruction if the condition is met. On XO-CHIP the
// 4 byte F000 NNNN instruction is skipped as a whole.
func (v *VM) skipIf(condition bool) {
	if !condition {
		return
	}
	size := 2
	if v.cfg.Platform.Supports(platform.XOCHIP) && v.memory.ReadWord(v.regs.PC) == 0xF000 {
		size = 4
	}
	v.regs.PC = v.memory.Mask(int(v.regs.PC) + size)
}

func (v *VM) read(address uint16) byte {
	return v.memory.Read(v.memory.Mask(int(address)))
}

// write stores a byte at the wrapped address. Writes into the reserved font
// region below the program start are dropped.
func (v *VM) write(address uint16, value byte) {
	address = v.memory.Mask(int(address))
	if address < memory.ProgramStart {
		v.logger.Debug("Dropped write to reserved memory",
			log.Hex("address", address),
			log.Hex("pc", v.regs.PC))
		return
	}
	v.memory.Write(address, value)
}

// registerRange returns the register indexes from x to y, in descending
// order if y is smaller than x.
func registerRange(x, y int) []int {
	step := 1
	if y < x {
		step = -1
	}
	regs := make([]int, 0, 16)
	for i := x; ; i += step {
		regs = append(regs, i)
		if i == y {
			break
		}
	}
	return regs
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
