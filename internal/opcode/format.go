package opcode

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/quirks"
)

type operandFormat func(word uint16) string

// Format returns the assembly text of the instruction word, for example
// "LD V0, $05". Unknown words are formatted as a data word.
func Format(word uint16) string {
	op, ok := Decode(word)
	if !ok {
		return fmt.Sprintf("DW $%04X", word)
	}
	return op.Format(word)
}

// FormatQuirks returns the assembly text of the instruction word as it
// executes with the given quirks. BNNN names VX instead of V0 if the jump
// quirk is enabled.
func FormatQuirks(word uint16, q quirks.Quirks) string {
	op, ok := Decode(word)
	if !ok {
		return Format(word)
	}
	if op.ID == JumpOffset && q.Jump {
		return fmt.Sprintf("%s V%X, $%03X", op.Name(), X(word), NNN(word))
	}
	return op.Format(word)
}

// Format returns the assembly text of the instruction word encoded by this
// opcode.
func (o Opcode) Format(word uint16) string {
	name := o.Name()
	if o.format == nil {
		return name
	}
	return name + " " + o.format(word)
}

// Name returns the upper case mnemonic. Base CHIP-8 instructions use the
// name of the shared instruction set definition.
func (o Opcode) Name() string {
	if ins := o.Base().ins; ins != nil {
		return strings.ToUpper(ins.Name)
	}
	return o.Mnemonic
}

func formatN(word uint16) string {
	return fmt.Sprintf("$%X", N(word))
}

func formatAddress(word uint16) string {
	return fmt.Sprintf("$%03X", NNN(word))
}

func formatReg(word uint16) string {
	return fmt.Sprintf("V%X", X(word))
}

func formatRegByte(word uint16) string {
	return fmt.Sprintf("V%X, $%02X", X(word), NN(word))
}

func formatRegReg(word uint16) string {
	return fmt.Sprintf("V%X, V%X", X(word), Y(word))
}

func formatSaveRange(word uint16) string {
	return fmt.Sprintf("[I], V%X - V%X", X(word), Y(word))
}

func formatLoadRange(word uint16) string {
	return fmt.Sprintf("V%X - V%X, [I]", X(word), Y(word))
}

func formatIndexAddress(word uint16) string {
	return fmt.Sprintf("I, $%03X", NNN(word))
}

func formatIndexLong(uint16) string {
	return "I, long"
}

func formatJumpOffset(word uint16) string {
	return fmt.Sprintf("V0, $%03X", NNN(word))
}

func formatDraw(word uint16) string {
	return fmt.Sprintf("V%X, V%X, $%X", X(word), Y(word), N(word))
}

func formatPlane(word uint16) string {
	return fmt.Sprintf("$%X", X(word))
}

func formatRegSuffix(operand string) operandFormat {
	return func(word uint16) string {
		return fmt.Sprintf("V%X, %s", X(word), operand)
	}
}

func formatPrefixReg(operand string) operandFormat {
	return func(word uint16) string {
		return fmt.Sprintf("%s, V%X", operand, X(word))
	}
}
