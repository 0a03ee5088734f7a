// Package opcode provides the CHIP-8, SCHIP and XO-CHIP opcode table used to
// decode 16 bit instruction words and to format them as assembly text.
package opcode

import (
	"github.com/retroenv/retrochip8/internal/platform"
)

// ID identifies a decoded instruction.
type ID int

// Instruction identifiers.
const (
	Invalid ID = iota
	Cls
	Ret
	ScrollDown
	ScrollUp
	ScrollRight
	ScrollLeft
	Exit
	Low
	High
	Sys
	Jump
	Call
	SkipEqualByte
	SkipNotEqualByte
	SkipEqualReg
	SaveRange
	LoadRange
	LoadByte
	AddByte
	LoadReg
	Or
	And
	Xor
	AddReg
	Sub
	ShiftRight
	SubN
	ShiftLeft
	SkipNotEqualReg
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipKey
	SkipNotKey
	LoadIndexLong
	Plane
	Audio
	LoadDelay
	WaitKey
	SetDelay
	SetSound
	AddIndex
	LoadFont
	LoadBigFont
	BCD
	Pitch
	StoreRegs
	LoadRegs
	StoreFlags
	LoadFlags

	idCount
)

// Opcode describes one entry of the opcode table. A word matches the entry
// if word&Mask == Value.
type Opcode struct {
	ID       ID
	Mask     uint16
	Value    uint16
	Mnemonic string
	Platform platform.Platform // first platform that supports the opcode
	format   operandFormat
}

// Matches returns whether the instruction word is encoded by this opcode.
func (o Opcode) Matches(word uint16) bool {
	return word&o.Mask == o.Value
}

// Size returns the instruction size in bytes. F000 NNNN is followed by a
// 16 bit address.
func (o Opcode) Size() int {
	if o.ID == LoadIndexLong {
		return 4
	}
	return 2
}

// Count returns the number of defined instruction identifiers.
func Count() int {
	return int(idCount)
}

// Decode returns the opcode table entry for the instruction word.
func Decode(word uint16) (Opcode, bool) {
	for _, op := range table[word>>12] {
		if op.Matches(word) {
			return op, true
		}
	}
	return Opcode{}, false
}

// X returns the X register nibble of the instruction word.
func X(word uint16) int {
	return int(word&0x0F00) >> 8
}

// Y returns the Y register nibble of the instruction word.
func Y(word uint16) int {
	return int(word&0x00F0) >> 4
}

// N returns the lowest nibble of the instruction word.
func N(word uint16) int {
	return int(word & 0x000F)
}

// NN returns the lowest byte of the instruction word.
func NN(word uint16) byte {
	return byte(word)
}

// NNN returns the 12 bit address of the instruction word.
func NNN(word uint16) uint16 {
	return word & 0x0FFF
}
