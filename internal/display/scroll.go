package display

// ScrollDown moves the selected planes down by n rows.
func (d *Display) ScrollDown(n int, planes byte) {
	d.shift(0, n, planes)
}

// ScrollUp moves the selected planes up by n rows.
func (d *Display) ScrollUp(n int, planes byte) {
	d.shift(0, -n, planes)
}

// ScrollLeft moves the selected planes left by n columns.
func (d *Display) ScrollLeft(n int, planes byte) {
	d.shift(-n, 0, planes)
}

// ScrollRight moves the selected planes right by n columns.
func (d *Display) ScrollRight(n int, planes byte) {
	d.shift(n, 0, planes)
}

// shift moves the plane bits by dx, dy. Bits moved outside of the display
// are lost, vacated pixels are cleared in the selected planes.
func (d *Display) shift(dx, dy int, planes byte) {
	src := d.Pixels()
	for y := range d.height {
		for x := range d.width {
			idx := y*d.width + x
			d.pixels[idx] &^= planes

			sx, sy := x-dx, y-dy
			if sx < 0 || sx >= d.width || sy < 0 || sy >= d.height {
				continue
			}
			d.pixels[idx] |= src[sy*d.width+sx] & planes
		}
	}
	d.dirty = true
}
