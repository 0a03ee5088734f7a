// Package font contains the hexadecimal digit glyph tables that are copied
// into the reserved low memory region.
package font

import (
	"sort"
	"strings"

	"github.com/retroenv/retrochip8/internal/vmerror"
)

// Memory layout of the font tables.
const (
	SmallStart = 0x000
	BigStart   = SmallStart + SmallSize

	SmallGlyphHeight = 5
	BigGlyphHeight   = 10
	Glyphs           = 16

	SmallSize = Glyphs * SmallGlyphHeight
	BigSize   = Glyphs * BigGlyphHeight
)

// Default font names.
const (
	DefaultSmall = "chip48"
	DefaultBig   = "schip"
)

var smallFonts = map[string][]byte{
	"chip48": {
		0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
		0x20, 0x60, 0x20, 0x20, 0x70, // 1
		0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
		0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
		0x90, 0x90, 0xF0, 0x10, 0x10, // 4
		0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
		0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
		0xF0, 0x10, 0x20, 0x40, 0x40, // 7
		0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
		0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
		0xF0, 0x90, 0xF0, 0x90, 0x90, // A
		0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
		0xF0, 0x80, 0x80, 0x80, 0xF0, // C
		0xE0, 0x90, 0x90, 0x90, 0xE0, // D
		0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
		0xF0, 0x80, 0xF0, 0x80, 0x80, // F
	},
	"vip": {
		0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
		0x60, 0x20, 0x20, 0x20, 0x70, // 1
		0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
		0xF0, 0x10, 0x70, 0x10, 0xF0, // 3
		0xA0, 0xA0, 0xF0, 0x20, 0x20, // 4
		0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
		0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
		0xF0, 0x10, 0x10, 0x10, 0x10, // 7
		0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
		0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
		0xF0, 0x90, 0xF0, 0x90, 0x90, // A
		0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
		0xF0, 0x80, 0x80, 0x80, 0xF0, // C
		0xE0, 0x90, 0x90, 0x90, 0xE0, // D
		0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
		0xF0, 0x80, 0xF0, 0x80, 0x80, // F
	},
}

var bigFonts = map[string][]byte{
	"schip": {
		0xFF, 0xFF, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, // 0
		0x18, 0x78, 0x78, 0x18, 0x18, 0x18, 0x18, 0x18, 0xFF, 0xFF, // 1
		0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, // 2
		0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 3
		0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, 0x03, 0x03, 0x03, 0x03, // 4
		0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 5
		0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, // 6
		0xFF, 0xFF, 0x03, 0x03, 0x06, 0x0C, 0x18, 0x18, 0x18, 0x18, // 7
		0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, // 8
		0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 9
		0x7E, 0xFF, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xC3, // A
		0xFC, 0xFC, 0xC3, 0xC3, 0xFC, 0xFC, 0xC3, 0xC3, 0xFC, 0xFC, // B
		0x3C, 0xFF, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0xFF, 0x3C, // C
		0xFC, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, 0xFC, // D
		0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, // E
		0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xC0, 0xC0, // F
	},
}

// Small returns a copy of the named small font.
func Small(name string) ([]byte, error) {
	return lookup(smallFonts, "small", name)
}

// Big returns a copy of the named big font.
func Big(name string) ([]byte, error) {
	return lookup(bigFonts, "big", name)
}

// SmallNames returns the names of all built-in small fonts.
func SmallNames() []string {
	return sortedNames(smallFonts)
}

// BigNames returns the names of all built-in big fonts.
func BigNames() []string {
	return sortedNames(bigFonts)
}

// ParseNames parses a "small,big" font name pair. Either name may be empty to
// keep the default.
func ParseNames(s string) (small, big []byte, err error) {
	smallName, bigName := DefaultSmall, DefaultBig
	if s != "" {
		parts := strings.Split(s, ",")
		if len(parts) > 2 {
			return nil, nil, vmerror.New(vmerror.InvalidFont, "font list '%s' has more than 2 entries", s)
		}
		if name := strings.TrimSpace(parts[0]); name != "" {
			smallName = name
		}
		if len(parts) == 2 {
			if name := strings.TrimSpace(parts[1]); name != "" {
				bigName = name
			}
		}
	}

	small, err = Small(smallName)
	if err != nil {
		return nil, nil, err
	}
	big, err = Big(bigName)
	if err != nil {
		return nil, nil, err
	}
	return small, big, nil
}

// Validate checks the sizes of the font tables.
func Validate(small, big []byte) error {
	if len(small) != SmallSize {
		return vmerror.New(vmerror.InvalidFont, "small font has %d bytes, %d required", len(small), SmallSize)
	}
	if len(big) != BigSize {
		return vmerror.New(vmerror.InvalidFont, "big font has %d bytes, %d required", len(big), BigSize)
	}
	return nil
}

func lookup(fonts map[string][]byte, kind, name string) ([]byte, error) {
	data, ok := fonts[strings.ToLower(name)]
	if !ok {
		return nil, vmerror.New(vmerror.InvalidFont, "unknown %s font '%s', available: %s",
			kind, name, strings.Join(sortedNames(fonts), ", "))
	}
	return append([]byte(nil), data...), nil
}

func sortedNames(fonts map[string][]byte) []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
