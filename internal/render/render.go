// Package render writes the display buffer as text, either as plain
// characters or as ANSI truecolor block graphics mapped through a palette.
package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/palette"
)

// Characters used for the pixel values of the plain text output.
const plainPixels = ".#+*"

const (
	ansiReset     = "\x1b[0m"
	ansiUpperHalf = "▀"
)

// Renderer writes display frames.
type Renderer struct {
	writer  io.Writer
	palette palette.Palette
	ansi    bool
}

// Options of the renderer.
type Options struct {
	ANSI bool // use truecolor escape sequences, two pixel rows per line
}

// New creates a new renderer.
func New(writer io.Writer, p palette.Palette, options Options) *Renderer {
	return &Renderer{
		writer:  writer,
		palette: p,
		ansi:    options.ANSI,
	}
}

// Render writes the current display content.
func (r *Renderer) Render(d *display.Display) error {
	buf := bufio.NewWriter(r.writer)

	var err error
	if r.ansi {
		err = r.renderANSI(buf, d)
	} else {
		err = renderPlain(buf, d)
	}
	if err != nil {
		return err
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func renderPlain(w *bufio.Writer, d *display.Display) error {
	line := make([]byte, d.Width()+1)
	line[d.Width()] = '\n'

	for y := range d.Height() {
		for x := range d.Width() {
			line[x] = plainPixels[int(d.Pixel(x, y))%len(plainPixels)]
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// renderANSI combines two pixel rows into one text line by drawing the upper
// pixel as foreground and the lower pixel as background of a half block.
func (r *Renderer) renderANSI(w *bufio.Writer, d *display.Display) error {
	for y := 0; y < d.Height(); y += 2 {
		for x := range d.Width() {
			upper := r.palette.Color(d.Pixel(x, y))
			lower := r.palette.Color(0)
			if y+1 < d.Height() {
				lower = r.palette.Color(d.Pixel(x, y+1))
			}
			if _, err := fmt.Fprintf(w, "%s%s%s", foreground(upper), background(lower), ansiUpperHalf); err != nil {
				return fmt.Errorf("writing pixel: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, ansiReset); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

func foreground(c color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func background(c color.RGBA) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}
