package opcode

import (
	"github.com/retroenv/retrochip8/internal/platform"
)

// table maps the high nibble of an instruction word to the opcodes of that
// family. More specific masks come first.
var table = [16][]Opcode{
	0x0: {
		{ID: Cls, Mask: 0xFFFF, Value: 0x00E0, Mnemonic: "CLS", Platform: platform.CHIP8},
		{ID: Ret, Mask: 0xFFFF, Value: 0x00EE, Mnemonic: "RET", Platform: platform.CHIP8},
		{ID: ScrollRight, Mask: 0xFFFF, Value: 0x00FB, Mnemonic: "SCR", Platform: platform.SCHIP},
		{ID: ScrollLeft, Mask: 0xFFFF, Value: 0x00FC, Mnemonic: "SCL", Platform: platform.SCHIP},
		{ID: Exit, Mask: 0xFFFF, Value: 0x00FD, Mnemonic: "EXIT", Platform: platform.SCHIP},
		{ID: Low, Mask: 0xFFFF, Value: 0x00FE, Mnemonic: "LOW", Platform: platform.SCHIP},
		{ID: High, Mask: 0xFFFF, Value: 0x00FF, Mnemonic: "HIGH", Platform: platform.SCHIP},
		{ID: ScrollDown, Mask: 0xFFF0, Value: 0x00C0, Mnemonic: "SCD", Platform: platform.SCHIP, format: formatN},
		{ID: ScrollUp, Mask: 0xFFF0, Value: 0x00D0, Mnemonic: "SCU", Platform: platform.XOCHIP, format: formatN},
		{ID: Sys, Mask: 0xF000, Value: 0x0000, Mnemonic: "SYS", Platform: platform.CHIP8, format: formatAddress},
	},
	0x1: {
		{ID: Jump, Mask: 0xF000, Value: 0x1000, Mnemonic: "JP", Platform: platform.CHIP8, format: formatAddress},
	},
	0x2: {
		{ID: Call, Mask: 0xF000, Value: 0x2000, Mnemonic: "CALL", Platform: platform.CHIP8, format: formatAddress},
	},
	0x3: {
		{ID: SkipEqualByte, Mask: 0xF000, Value: 0x3000, Mnemonic: "SE", Platform: platform.CHIP8, format: formatRegByte},
	},
	0x4: {
		{ID: SkipNotEqualByte, Mask: 0xF000, Value: 0x4000, Mnemonic: "SNE", Platform: platform.CHIP8, format: formatRegByte},
	},
	0x5: {
		{ID: SkipEqualReg, Mask: 0xF00F, Value: 0x5000, Mnemonic: "SE", Platform: platform.CHIP8, format: formatRegReg},
		{ID: SaveRange, Mask: 0xF00F, Value: 0x5002, Mnemonic: "LD", Platform: platform.XOCHIP, format: formatSaveRange},
		{ID: LoadRange, Mask: 0xF00F, Value: 0x5003, Mnemonic: "LD", Platform: platform.XOCHIP, format: formatLoadRange},
	},
	0x6: {
		{ID: LoadByte, Mask: 0xF000, Value: 0x6000, Mnemonic: "LD", Platform: platform.CHIP8, format: formatRegByte},
	},
	0x7: {
		{ID: AddByte, Mask: 0xF000, Value: 0x7000, Mnemonic: "ADD", Platform: platform.CHIP8, format: formatRegByte},
	},
	0x8: {
		{ID: LoadReg, Mask: 0xF00F, Value: 0x8000, Mnemonic: "LD", Platform: platform.CHIP8, format: formatRegReg},
		{ID: Or, Mask: 0xF00F, Value: 0x8001, Mnemonic: "OR", Platform: platform.CHIP8, format: formatRegReg},
		{ID: And, Mask: 0xF00F, Value: 0x8002, Mnemonic: "AND", Platform: platform.CHIP8, format: formatRegReg},
		{ID: Xor, Mask: 0xF00F, Value: 0x8003, Mnemonic: "XOR", Platform: platform.CHIP8, format: formatRegReg},
		{ID: AddReg, Mask: 0xF00F, Value: 0x8004, Mnemonic: "ADD", Platform: platform.CHIP8, format: formatRegReg},
		{ID: Sub, Mask: 0xF00F, Value: 0x8005, Mnemonic: "SUB", Platform: platform.CHIP8, format: formatRegReg},
		{ID: ShiftRight, Mask: 0xF00F, Value: 0x8006, Mnemonic: "SHR", Platform: platform.CHIP8, format: formatRegReg},
		{ID: SubN, Mask: 0xF00F, Value: 0x8007, Mnemonic: "SUBN", Platform: platform.CHIP8, format: formatRegReg},
		{ID: ShiftLeft, Mask: 0xF00F, Value: 0x800E, Mnemonic: "SHL", Platform: platform.CHIP8, format: formatRegReg},
	},
	0x9: {
		{ID: SkipNotEqualReg, Mask: 0xF00F, Value: 0x9000, Mnemonic: "SNE", Platform: platform.CHIP8, format: formatRegReg},
	},
	0xA: {
		{ID: LoadIndex, Mask: 0xF000, Value: 0xA000, Mnemonic: "LD", Platform: platform.CHIP8, format: formatIndexAddress},
	},
	0xB: {
		{ID: JumpOffset, Mask: 0xF000, Value: 0xB000, Mnemonic: "JP", Platform: platform.CHIP8, format: formatJumpOffset},
	},
	0xC: {
		{ID: Random, Mask: 0xF000, Value: 0xC000, Mnemonic: "RND", Platform: platform.CHIP8, format: formatRegByte},
	},
	0xD: {
		{ID: Draw, Mask: 0xF000, Value: 0xD000, Mnemonic: "DRW", Platform: platform.CHIP8, format: formatDraw},
	},
	0xE: {
		{ID: SkipKey, Mask: 0xF0FF, Value: 0xE09E, Mnemonic: "SKP", Platform: platform.CHIP8, format: formatReg},
		{ID: SkipNotKey, Mask: 0xF0FF, Value: 0xE0A1, Mnemonic: "SKNP", Platform: platform.CHIP8, format: formatReg},
	},
	0xF: {
		{ID: LoadIndexLong, Mask: 0xFFFF, Value: 0xF000, Mnemonic: "LD", Platform: platform.XOCHIP, format: formatIndexLong},
		{ID: Audio, Mask: 0xFFFF, Value: 0xF002, Mnemonic: "AUDIO", Platform: platform.XOCHIP},
		{ID: Plane, Mask: 0xF0FF, Value: 0xF001, Mnemonic: "PLANE", Platform: platform.XOCHIP, format: formatPlane},
		{ID: LoadDelay, Mask: 0xF0FF, Value: 0xF007, Mnemonic: "LD", Platform: platform.CHIP8, format: formatRegSuffix("DT")},
		{ID: WaitKey, Mask: 0xF0FF, Value: 0xF00A, Mnemonic: "LD", Platform: platform.CHIP8, format: formatRegSuffix("K")},
		{ID: SetDelay, Mask: 0xF0FF, Value: 0xF015, Mnemonic: "LD", Platform: platform.CHIP8, format: formatPrefixReg("DT")},
		{ID: SetSound, Mask: 0xF0FF, Value: 0xF018, Mnemonic: "LD", Platform: platform.CHIP8, format: formatPrefixReg("ST")},
		{ID: AddIndex, Mask: 0xF0FF, Value: 0xF01E, Mnemonic: "ADD", Platform: platform.CHIP8, format: formatPrefixReg("I")},
		{ID: LoadFont, Mask: 0xF0FF, Value: 0xF029, Mnemonic: "LD", Platform: platform.CHIP8, format: formatPrefixReg("F")},
		{ID: LoadBigFont, Mask: 0xF0FF, Value: 0xF030, Mnemonic: "LD", Platform: platform.SCHIP, format: formatPrefixReg("HF")},
		{ID: BCD, Mask: 0xF0FF, Value: 0xF033, Mnemonic: "LD", Platform: platform.CHIP8, format: formatPrefixReg("B")},
		{ID: Pitch, Mask: 0xF0FF, Value: 0xF03A, Mnemonic: "PITCH", Platform: platform.XOCHIP, format: formatReg},
		{ID: StoreRegs, Mask: 0xF0FF, Value: 0xF055, Mnemonic: "LD", Platform: platform.CHIP8, format: formatPrefixReg("[I]")},
		{ID: LoadRegs, Mask: 0xF0FF, Value: 0xF065, Mnemonic: "LD", Platform: platform.CHIP8, format: formatRegSuffix("[I]")},
		{ID: StoreFlags, Mask: 0xF0FF, Value: 0xF075, Mnemonic: "LD", Platform: platform.SCHIP, format: formatPrefixReg("R")},
		{ID: LoadFlags, Mask: 0xF0FF, Value: 0xF085, Mnemonic: "LD", Platform: platform.SCHIP, format: formatRegSuffix("R")},
	},
}
