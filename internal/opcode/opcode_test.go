package opcode

import (
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word     uint16
		expected ID
		platform platform.Platform
	}{
		{0x00E0, Cls, platform.CHIP8},
		{0x00EE, Ret, platform.CHIP8},
		{0x00C4, ScrollDown, platform.SCHIP},
		{0x00D4, ScrollUp, platform.XOCHIP},
		{0x00FB, ScrollRight, platform.SCHIP},
		{0x00FC, ScrollLeft, platform.SCHIP},
		{0x00FD, Exit, platform.SCHIP},
		{0x00FE, Low, platform.SCHIP},
		{0x00FF, High, platform.SCHIP},
		{0x0123, Sys, platform.CHIP8},
		{0x1200, Jump, platform.CHIP8},
		{0x2345, Call, platform.CHIP8},
		{0x3105, SkipEqualByte, platform.CHIP8},
		{0x4105, SkipNotEqualByte, platform.CHIP8},
		{0x5120, SkipEqualReg, platform.CHIP8},
		{0x5122, SaveRange, platform.XOCHIP},
		{0x5123, LoadRange, platform.XOCHIP},
		{0x6005, LoadByte, platform.CHIP8},
		{0x7005, AddByte, platform.CHIP8},
		{0x8120, LoadReg, platform.CHIP8},
		{0x8121, Or, platform.CHIP8},
		{0x8122, And, platform.CHIP8},
		{0x8123, Xor, platform.CHIP8},
		{0x8124, AddReg, platform.CHIP8},
		{0x8125, Sub, platform.CHIP8},
		{0x8126, ShiftRight, platform.CHIP8},
		{0x8127, SubN, platform.CHIP8},
		{0x812E, ShiftLeft, platform.CHIP8},
		{0x9120, SkipNotEqualReg, platform.CHIP8},
		{0xA123, LoadIndex, platform.CHIP8},
		{0xB123, JumpOffset, platform.CHIP8},
		{0xC1FF, Random, platform.CHIP8},
		{0xD125, Draw, platform.CHIP8},
		{0xE19E, SkipKey, platform.CHIP8},
		{0xE1A1, SkipNotKey, platform.CHIP8},
		{0xF000, LoadIndexLong, platform.XOCHIP},
		{0xF201, Plane, platform.XOCHIP},
		{0xF002, Audio, platform.XOCHIP},
		{0xF107, LoadDelay, platform.CHIP8},
		{0xF10A, WaitKey, platform.CHIP8},
		{0xF115, SetDelay, platform.CHIP8},
		{0xF118, SetSound, platform.CHIP8},
		{0xF11E, AddIndex, platform.CHIP8},
		{0xF129, LoadFont, platform.CHIP8},
		{0xF130, LoadBigFont, platform.SCHIP},
		{0xF133, BCD, platform.CHIP8},
		{0xF13A, Pitch, platform.XOCHIP},
		{0xF155, StoreRegs, platform.CHIP8},
		{0xF165, LoadRegs, platform.CHIP8},
		{0xF175, StoreFlags, platform.SCHIP},
		{0xF185, LoadFlags, platform.SCHIP},
	}

	for _, tt := range tests {
		t.Run(Format(tt.word), func(t *testing.T) {
			op, ok := Decode(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, op.ID)
			assert.Equal(t, tt.platform, op.Platform)
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	words := []uint16{0x5121, 0x8128, 0x812F, 0x9121, 0xE100, 0xE19F, 0xF1FF, 0xF199}
	for _, word := range words {
		_, ok := Decode(word)
		assert.False(t, ok, "word %04X", word)
	}
}

func TestEveryIDDecodes(t *testing.T) {
	seen := map[ID]bool{}
	for _, family := range table {
		for _, op := range family {
			seen[op.ID] = true
		}
	}
	assert.Equal(t, Count()-1, len(seen))
}

func TestFormat(t *testing.T) {
	ld := strings.ToUpper(chip8.LdName)
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x6005, ld + " V0, $05"},
		{0x8AB0, ld + " VA, VB"},
		{0xA2F0, ld + " I, $2F0"},
		{0x1200, strings.ToUpper(chip8.JpName) + " $200"},
		{0x2208, strings.ToUpper(chip8.CallName) + " $208"},
		{0xD015, strings.ToUpper(chip8.DrwName) + " V0, V1, $5"},
		{0x00E0, strings.ToUpper(chip8.ClsName)},
		{0x00C3, "SCD $3"},
		{0x00FF, "HIGH"},
		{0xF330, "LD HF, V3"},
		{0xF775, "LD R, V7"},
		{0xF785, "LD V7, R"},
		{0x5232, "LD [I], V2 - V3"},
		{0xF201, "PLANE $2"},
		{0xF000, "LD I, long"},
		{0x5121, "DW $5121"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.word))
		})
	}
}

func TestFormatQuirks(t *testing.T) {
	jp := strings.ToUpper(chip8.JpName)
	tests := []struct {
		name     string
		word     uint16
		quirks   quirks.Quirks
		expected string
	}{
		{"jump offset V0", 0xB234, quirks.Quirks{}, jp + " V0, $234"},
		{"jump offset VX", 0xB234, quirks.Quirks{Jump: true}, jp + " V2, $234"},
		{"other opcode", 0x6005, quirks.Quirks{Jump: true}, Format(0x6005)},
		{"unknown word", 0x5121, quirks.Quirks{Jump: true}, "DW $5121"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuirks(tt.word, tt.quirks))
		})
	}
}

func TestBase(t *testing.T) {
	call, _ := Decode(0x2208)
	assert.True(t, call.Base().IsCall())
	assert.False(t, call.Base().IsSkip())

	ret, _ := Decode(0x00EE)
	assert.True(t, ret.Base().IsReturn())

	skip, _ := Decode(0x3105)
	assert.True(t, skip.Base().IsSkip())

	scroll, _ := Decode(0x00FB)
	assert.True(t, scroll.Base().IsNil())
	assert.False(t, scroll.Base().IsCall())
}

func TestFields(t *testing.T) {
	word := uint16(0xD12F)
	assert.Equal(t, 1, X(word))
	assert.Equal(t, 2, Y(word))
	assert.Equal(t, 0xF, N(word))
	assert.Equal(t, byte(0x2F), NN(word))
	assert.Equal(t, uint16(0x12F), NNN(word))
}

func TestSize(t *testing.T) {
	long, _ := Decode(0xF000)
	assert.Equal(t, 4, long.Size())
	jump, _ := Decode(0x1200)
	assert.Equal(t, 2, jump.Size())
}
