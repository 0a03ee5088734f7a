package opcode

import (
	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction wraps the shared CHIP-8 instruction set definition of a base
// opcode. Extension opcodes have no base instruction.
type Instruction struct {
	ins *chip8.Instruction
}

// bases holds the shared instruction definition for every base opcode.
var bases [idCount]*chip8.Instruction

func init() {
	for _, family := range table {
		for _, op := range family {
			if op.Platform != platform.CHIP8 {
				continue
			}
			bases[op.ID] = lookupBase(op.Value)
		}
	}
}

func lookupBase(word uint16) *chip8.Instruction {
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// Base returns the shared instruction definition of the opcode.
func (o Opcode) Base() Instruction {
	if o.ID <= Invalid || o.ID >= idCount {
		return Instruction{}
	}
	return Instruction{ins: bases[o.ID]}
}

// IsNil returns true if the opcode has no base instruction.
func (i Instruction) IsNil() bool {
	return i.ins == nil
}

// IsCall returns true if the instruction is a subroutine call.
func (i Instruction) IsCall() bool {
	return i.ins != nil && i.ins == chip8.CallInst
}

// IsReturn returns true if the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.ins != nil && i.ins == chip8.RetInst
}

// IsSkip returns true if the instruction conditionally skips the next one.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// ReadsMemory returns true if the instruction reads memory at I.
func (i Instruction) ReadsMemory() bool {
	if i.ins == nil {
		return false
	}
	return chip8.MemoryReadInstructions.Contains(i.ins.Name)
}

// WritesMemory returns true if the instruction writes memory at I.
func (i Instruction) WritesMemory() bool {
	if i.ins == nil {
		return false
	}
	return chip8.MemoryWriteInstructions.Contains(i.ins.Name)
}
