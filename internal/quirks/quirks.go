// Package quirks defines the configurable deviations from the strict legacy
// CHIP-8 opcode semantics.
package quirks

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/vmerror"
)

// Quirks is a closed set of behavior switches. The zero value disables every
// quirk, sprites wrap at the display edge and draws wait for the next timer
// tick. Preset(platform.CHIP8) matches the COSMAC VIP, which clips sprites.
type Quirks struct {
	// Shift makes 8XY6 and 8XYE shift VX in place and ignore VY.
	Shift bool
	// LoadStore leaves I unchanged after FX55 and FX65.
	LoadStore bool
	// Jump makes BNNN use VX, selected by the high nibble of the address,
	// instead of V0.
	Jump bool
	// Bitwise leaves VF untouched by 8XY1, 8XY2 and 8XY3.
	Bitwise bool
	// Clip drops sprite pixels beyond the display edge instead of wrapping
	// them to the opposite edge.
	Clip bool
	// Draw completes DXYN immediately instead of waiting for the next timer
	// tick.
	Draw bool
}

// Quirk letters, as used on the command line.
const (
	LetterBitwise   = 'b'
	LetterClip      = 'c'
	LetterDraw      = 'd'
	LetterJump      = 'j'
	LetterLoadStore = 'l'
	LetterShift     = 's'
)

// Preset returns the quirks that match the reference interpreter of the
// given platform.
func Preset(p platform.Platform) Quirks {
	switch p {
	case platform.SCHIP:
		return Quirks{
			Shift:     true,
			LoadStore: true,
			Jump:      true,
			Bitwise:   true,
			Clip:      true,
			Draw:      true,
		}
	case platform.XOCHIP:
		return Quirks{
			Bitwise: true,
			Draw:    true,
		}
	default:
		return Quirks{
			Clip: true,
		}
	}
}

// Parse parses a quirks description. It is either a platform name, which
// selects the preset of that platform, or a string of quirk letters. Letters
// start from all quirks off, every letter present enables the matching quirk
// and quirks without a letter stay disabled, so "d" alone wraps sprites.
// Whitespace and commas are ignored. Unknown letters are rejected with an InvalidQuirk exception.
func Parse(s string) (Quirks, error) {
	if p, err := platform.FromString(s); err == nil && s != "" {
		return Preset(p), nil
	}

	var q Quirks
	for _, c := range strings.ToLower(s) {
		switch c {
		case LetterBitwise:
			q.Bitwise = true
		case LetterClip:
			q.Clip = true
		case LetterDraw:
			q.Draw = true
		case LetterJump:
			q.Jump = true
		case LetterLoadStore:
			q.LoadStore = true
		case LetterShift:
			q.Shift = true
		case ' ', ',':
		default:
			return Quirks{}, vmerror.New(vmerror.InvalidQuirk, "unknown quirk '%c' in '%s'", c, s)
		}
	}
	return q, nil
}

// String returns the letters of all enabled quirks in a stable order.
func (q Quirks) String() string {
	var sb strings.Builder
	if q.Bitwise {
		sb.WriteRune(LetterBitwise)
	}
	if q.Clip {
		sb.WriteRune(LetterClip)
	}
	if q.Draw {
		sb.WriteRune(LetterDraw)
	}
	if q.Jump {
		sb.WriteRune(LetterJump)
	}
	if q.LoadStore {
		sb.WriteRune(LetterLoadStore)
	}
	if q.Shift {
		sb.WriteRune(LetterShift)
	}
	return sb.String()
}
