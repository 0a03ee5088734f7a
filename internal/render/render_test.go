package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrogolib/assert"
)

func TestRenderPlain(t *testing.T) {
	d := display.New(1)
	d.DrawSprite(0, 0, []byte{0xC0}, false, 1, true)

	var buf bytes.Buffer
	r := New(&buf, palette.Default(2), Options{})
	assert.NoError(t, r.Render(d))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, display.LowHeight)
	assert.Equal(t, "##"+strings.Repeat(".", display.LowWidth-2), lines[0])
	assert.Equal(t, strings.Repeat(".", display.LowWidth), lines[1])
}

func TestRenderPlainPlanes(t *testing.T) {
	d := display.New(2)
	d.DrawSprite(0, 0, []byte{0x80}, false, 2, true)
	d.DrawSprite(1, 0, []byte{0x80}, false, 3, true)

	var buf bytes.Buffer
	assert.NoError(t, New(&buf, palette.Default(4), Options{}).Render(d))
	assert.True(t, strings.HasPrefix(buf.String(), "+*."))
}

func TestRenderANSI(t *testing.T) {
	d := display.New(1)
	d.DrawSprite(0, 0, []byte{0x80, 0x00}, false, 1, true)

	p, err := palette.Parse("102030,A0B0C0")
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, New(&buf, p, Options{ANSI: true}).Render(d))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, display.LowHeight/2)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[38;2;160;176;192m\x1b[48;2;16;32;48m▀"))
	assert.True(t, strings.HasSuffix(lines[0], ansiReset))
	assert.Equal(t, display.LowWidth, strings.Count(lines[0], ansiUpperHalf))
}
