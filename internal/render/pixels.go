package render

import "image/color"

// fillRGBA paints every pixel of an RGBA buffer with c.
func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	px := [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = px[0]
		buf[base+1] = px[1]
		buf[base+2] = px[2]
		buf[base+3] = px[3]
	}
}

// fillCheckerRGBA paints a two-colour checkerboard of cell×cell squares into
// an RGBA buffer of the given width. It marks walkable ground under the
// projected scene.
func fillCheckerRGBA(buf []byte, width, cellW, cellH int, even, odd color.RGBA) {
	if width <= 0 || cellW <= 0 || cellH <= 0 {
		return
	}
	for i := 0; i*4+3 < len(buf); i++ {
		x, y := i%width, i/width
		col := even
		if (x/cellW+y/cellH)%2 == 1 {
			col = odd
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
