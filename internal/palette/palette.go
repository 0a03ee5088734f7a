// Package palette maps display pixel values to host renderable colors.
package palette

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/retroenv/retrochip8/internal/vmerror"
)

// Palette is an ordered list of colors. Entry n is used for pixels with the
// plane value n, entry 0 is the background.
type Palette []color.RGBA

var defaultColors = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
}

// Default returns the default palette with the given number of colors.
func Default(colors int) Palette {
	p := make(Palette, colors)
	for i := range p {
		p[i] = defaultColors[i%len(defaultColors)]
	}
	return p
}

// Parse parses a comma separated list of 24 bit hex colors, for example
// "000000,FFFFFF". A leading '#' on an entry is accepted.
func Parse(s string) (Palette, error) {
	if strings.TrimSpace(s) == "" {
		return nil, vmerror.New(vmerror.InvalidColorPalette, "empty palette")
	}

	entries := strings.Split(s, ",")
	p := make(Palette, 0, len(entries))
	for _, entry := range entries {
		c, err := parseColor(entry)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, vmerror.New(vmerror.InvalidColorPalette, "color '%s' is not 6 hex digits", s)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, vmerror.New(vmerror.InvalidColorPalette, "color '%s' is not hex", s)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
}

// Validate checks that the palette has exactly one color per pixel value.
func (p Palette) Validate(colors int) error {
	if len(p) != colors {
		return vmerror.New(vmerror.InvalidColorPalette, "palette has %d colors, %d required", len(p), colors)
	}
	return nil
}

// Color returns the color for a pixel value.
func (p Palette) Color(value byte) color.RGBA {
	return p[int(value)%len(p)]
}

// String returns the palette in the format accepted by Parse.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	}
	return strings.Join(parts, ",")
}
