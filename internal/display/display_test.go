package display

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func countLit(d *Display) int {
	n := 0
	for _, p := range d.Pixels() {
		if p != 0 {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	d := New(1)
	assert.Equal(t, Low, d.Resolution())
	assert.Equal(t, LowWidth, d.Width())
	assert.Equal(t, LowHeight, d.Height())
	assert.Equal(t, byte(1), d.AllPlanes())
	assert.Equal(t, byte(3), New(2).AllPlanes())
	assert.Equal(t, 0, countLit(d))
}

func TestDrawSpriteTwiceRestoresBuffer(t *testing.T) {
	d := New(1)
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	before := d.Pixels()

	collision := d.DrawSprite(10, 5, sprite, false, 1, true)
	assert.False(t, collision)
	assert.Equal(t, byte(1), d.Pixel(10, 5))
	assert.Equal(t, byte(1), d.Pixel(13, 5))
	assert.Equal(t, byte(0), d.Pixel(11, 6))
	assert.Equal(t, 14, countLit(d))

	collision = d.DrawSprite(10, 5, sprite, false, 1, true)
	assert.True(t, collision)
	assert.Equal(t, before, d.Pixels())
}

func TestDrawSpriteCollisionOnlyOnUnset(t *testing.T) {
	d := New(1)
	assert.False(t, d.DrawSprite(0, 0, []byte{0x80}, false, 1, true))
	assert.False(t, d.DrawSprite(1, 0, []byte{0x80}, false, 1, true))
	assert.True(t, d.DrawSprite(0, 0, []byte{0xC0}, false, 1, true))
	assert.Equal(t, 0, countLit(d))
}

func TestClipVersusWrap(t *testing.T) {
	sprite := []byte{0xFF, 0xFF}
	x, y := LowWidth-4, LowHeight-1

	clipped := New(1)
	clipped.DrawSprite(x, y, sprite, false, 1, true)
	wrapped := New(1)
	wrapped.DrawSprite(x, y, sprite, false, 1, false)

	assert.Equal(t, 4, countLit(clipped))
	assert.Equal(t, 16, countLit(wrapped))

	// right edge portion is drawn by both
	for px := x; px < LowWidth; px++ {
		assert.Equal(t, byte(1), clipped.Pixel(px, y))
		assert.Equal(t, byte(1), wrapped.Pixel(px, y))
	}
	// pixels past the right edge reappear on the left only when wrapping
	for px := range 4 {
		assert.Equal(t, byte(0), clipped.Pixel(px, y))
		assert.Equal(t, byte(1), wrapped.Pixel(px, y))
	}
	// the second row reappears at the top only when wrapping
	assert.Equal(t, byte(0), clipped.Pixel(x, 0))
	assert.Equal(t, byte(1), wrapped.Pixel(x, 0))
	assert.Equal(t, byte(1), wrapped.Pixel(0, 0))
}

func TestOriginWraps(t *testing.T) {
	d := New(1)
	d.DrawSprite(LowWidth+2, LowHeight+3, []byte{0x80}, false, 1, true)
	assert.Equal(t, byte(1), d.Pixel(2, 3))
}

func TestWideSprite(t *testing.T) {
	d := New(1)
	d.SetResolution(High)
	sprite := make([]byte, 32)
	sprite[0] = 0x80
	sprite[1] = 0x01
	sprite[31] = 0x01

	d.DrawSprite(0, 0, sprite, true, 1, true)
	assert.Equal(t, byte(1), d.Pixel(0, 0))
	assert.Equal(t, byte(1), d.Pixel(15, 0))
	assert.Equal(t, byte(1), d.Pixel(15, 15))
	assert.Equal(t, 3, countLit(d))
}

func TestPlanes(t *testing.T) {
	d := New(2)
	assert.False(t, d.DrawSprite(0, 0, []byte{0x80}, false, 2, false))
	assert.Equal(t, byte(2), d.Pixel(0, 0))
	assert.False(t, d.DrawSprite(0, 0, []byte{0x80}, false, 1, false))
	assert.Equal(t, byte(3), d.Pixel(0, 0))

	d.Clear(1)
	assert.Equal(t, byte(2), d.Pixel(0, 0))
	d.Clear(d.AllPlanes())
	assert.Equal(t, byte(0), d.Pixel(0, 0))
}

func TestSetResolutionClears(t *testing.T) {
	d := New(1)
	d.DrawSprite(0, 0, []byte{0xFF}, false, 1, true)
	d.ClearDirty()

	d.SetResolution(High)
	assert.True(t, d.Dirty())
	assert.Equal(t, HighWidth, d.Width())
	assert.Equal(t, HighHeight, d.Height())
	assert.Equal(t, HighWidth*HighHeight, len(d.Pixels()))
	assert.Equal(t, 0, countLit(d))

	d.Reset()
	assert.Equal(t, Low, d.Resolution())
}

func TestDirty(t *testing.T) {
	d := New(1)
	d.ClearDirty()
	assert.False(t, d.Dirty())
	d.DrawSprite(0, 0, []byte{0x80}, false, 1, true)
	assert.True(t, d.Dirty())
}

func TestScroll(t *testing.T) {
	d := New(1)
	d.DrawSprite(4, 4, []byte{0x80}, false, 1, true)

	d.ScrollDown(2, 1)
	assert.Equal(t, byte(1), d.Pixel(4, 6))
	assert.Equal(t, byte(0), d.Pixel(4, 4))

	d.ScrollUp(6, 1)
	assert.Equal(t, byte(1), d.Pixel(4, 0))

	d.ScrollRight(4, 1)
	assert.Equal(t, byte(1), d.Pixel(8, 0))

	d.ScrollLeft(4, 1)
	assert.Equal(t, byte(1), d.Pixel(4, 0))
	assert.Equal(t, 1, countLit(d))

	d.ScrollLeft(5, 1)
	assert.Equal(t, 0, countLit(d))
}

func TestScrollOnlySelectedPlanes(t *testing.T) {
	d := New(2)
	d.DrawSprite(0, 0, []byte{0x80}, false, 1, true)
	d.DrawSprite(0, 0, []byte{0x80}, false, 2, true)

	d.ScrollDown(1, 2)
	assert.Equal(t, byte(1), d.Pixel(0, 0))
	assert.Equal(t, byte(2), d.Pixel(0, 1))
}
