// Package platform defines the supported interpreter variants.
package platform

import (
	"fmt"
	"strings"
)

// Platform is a historical CHIP-8 interpreter variant. Each platform is a
// superset of the previous one.
type Platform int

// Supported platforms.
const (
	CHIP8 Platform = iota
	SCHIP
	XOCHIP
)

const (
	legacyMemorySize   = 0x1000
	extendedMemorySize = 0x10000
)

var names = map[Platform]string{
	CHIP8:  "chip8",
	SCHIP:  "schip",
	XOCHIP: "xochip",
}

// All returns all supported platforms.
func All() []Platform {
	return []Platform{CHIP8, SCHIP, XOCHIP}
}

// FromString parses a platform name. The empty string selects CHIP8.
func FromString(s string) (Platform, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "chip8", "chip-8":
		return CHIP8, nil
	case "schip", "superchip", "super-chip":
		return SCHIP, nil
	case "xochip", "xo-chip":
		return XOCHIP, nil
	default:
		return 0, fmt.Errorf("unsupported platform '%s'", s)
	}
}

// Valid returns whether p is a defined platform.
func (p Platform) Valid() bool {
	_, ok := names[p]
	return ok
}

// String returns the platform name.
func (p Platform) String() string {
	if name, ok := names[p]; ok {
		return name
	}
	return fmt.Sprintf("platform(%d)", int(p))
}

// MemorySize returns the size of the addressable memory in bytes.
// XO-CHIP extends the legacy 4 KiB to 64 KiB.
func (p Platform) MemorySize() int {
	if p == XOCHIP {
		return extendedMemorySize
	}
	return legacyMemorySize
}

// Planes returns the number of display bit planes.
func (p Platform) Planes() int {
	if p == XOCHIP {
		return 2
	}
	return 1
}

// Colors returns the number of distinct pixel values, which is also the
// required palette size.
func (p Platform) Colors() int {
	return 1 << p.Planes()
}

// FlagRegisters returns the number of persistent flag registers used by the
// FX75 and FX85 opcodes.
func (p Platform) FlagRegisters() int {
	switch p {
	case SCHIP:
		return 8
	case XOCHIP:
		return 16
	default:
		return 0
	}
}

// Supports returns whether opcodes introduced by other are available on p.
func (p Platform) Supports(other Platform) bool {
	return p >= other
}
