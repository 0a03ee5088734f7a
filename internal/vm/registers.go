package vm

import (
	"fmt"
	"strings"
)

// RegisterCount is the number of general purpose registers V0 to VF.
const RegisterCount = 16

// flagRegister is VF, the carry, borrow and collision flag.
const flagRegister = 0xF

// Registers is the CPU register file. The stack pointer is owned by the
// stack and not part of this record.
type Registers struct {
	V  [RegisterCount]byte
	I  uint16
	PC uint16
}

// String returns the register file as a single line of text.
func (r Registers) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PC=$%03X I=$%03X", r.PC, r.I)
	for i, v := range r.V {
		fmt.Fprintf(&sb, " V%X=$%02X", i, v)
	}
	return sb.String()
}
