// Package display implements the pixel plane buffer that the draw and clear
// opcodes operate on.
package display

import "fmt"

// Resolution is the active pixel grid.
type Resolution int

// Supported resolutions.
const (
	Low Resolution = iota
	High
)

// Display grid sizes.
const (
	LowWidth   = 64
	LowHeight  = 32
	HighWidth  = 128
	HighHeight = 64
)

// String returns the resolution name.
func (r Resolution) String() string {
	if r == High {
		return "high"
	}
	return "low"
}

// Display is a 2D buffer of pixel values. Every pixel holds one bit per
// plane, bit n set means the pixel is lit in plane n.
type Display struct {
	planes     int
	resolution Resolution
	width      int
	height     int
	pixels     []byte
	dirty      bool
}

// New returns a cleared low resolution display with the given number of
// planes.
func New(planes int) *Display {
	d := &Display{
		planes: planes,
	}
	d.SetResolution(Low)
	return d
}

// Planes returns the number of bit planes.
func (d *Display) Planes() int {
	return d.planes
}

// AllPlanes returns the plane mask that selects every plane.
func (d *Display) AllPlanes() byte {
	return byte(1<<d.planes) - 1
}

// Resolution returns the active resolution.
func (d *Display) Resolution() Resolution {
	return d.resolution
}

// Width returns the width in pixels of the active resolution.
func (d *Display) Width() int {
	return d.width
}

// Height returns the height in pixels of the active resolution.
func (d *Display) Height() int {
	return d.height
}

// SetResolution switches the pixel grid. The buffer is reallocated and all
// planes are cleared, even if the resolution does not change.
func (d *Display) SetResolution(r Resolution) {
	d.resolution = r
	if r == High {
		d.width, d.height = HighWidth, HighHeight
	} else {
		d.width, d.height = LowWidth, LowHeight
	}
	d.pixels = make([]byte, d.width*d.height)
	d.dirty = true
}

// Clear sets all pixels of the selected planes to the background state.
func (d *Display) Clear(planes byte) {
	for i := range d.pixels {
		d.pixels[i] &^= planes
	}
	d.dirty = true
}

// Pixel returns the plane bits of the pixel at x, y.
func (d *Display) Pixel(x, y int) byte {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		panic(fmt.Sprintf("pixel %d,%d outside of %dx%d display", x, y, d.width, d.height))
	}
	return d.pixels[y*d.width+x]
}

// Pixels returns a copy of the buffer in row major order.
func (d *Display) Pixels() []byte {
	return append([]byte(nil), d.pixels...)
}

// Dirty returns whether the buffer changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty resets the changed flag after the host rendered the buffer.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// DrawSprite XORs a sprite onto the given plane. Sprites are 8 pixels wide
// with one byte per row, or 16 pixels wide with two bytes per row if wide is
// set. The origin wraps into the display. Pixels beyond the right or bottom
// edge are dropped if clip is set and wrap to the opposite edge otherwise.
// The result reports whether any lit pixel was turned off.
func (d *Display) DrawSprite(x, y int, sprite []byte, wide bool, plane byte, clip bool) bool {
	bytesPerRow := 1
	if wide {
		bytesPerRow = 2
	}
	spriteWidth := 8 * bytesPerRow
	rows := len(sprite) / bytesPerRow

	x0 := x % d.width
	y0 := y % d.height
	collision := false

	for row := range rows {
		py := y0 + row
		if py >= d.height {
			if clip {
				break
			}
			py %= d.height
		}

		var bits uint16
		if wide {
			bits = uint16(sprite[2*row])<<8 | uint16(sprite[2*row+1])
		} else {
			bits = uint16(sprite[row]) << 8
		}

		for col := range spriteWidth {
			if bits&(0x8000>>col) == 0 {
				continue
			}
			px := x0 + col
			if px >= d.width {
				if clip {
					break
				}
				px %= d.width
			}

			idx := py*d.width + px
			if d.pixels[idx]&plane != 0 {
				collision = true
			}
			d.pixels[idx] ^= plane
		}
	}

	d.dirty = true
	return collision
}

// Reset switches to low resolution and clears all planes.
func (d *Display) Reset() {
	d.SetResolution(Low)
}
