package render

import "image/color"

// fillBinaryRGBA converts alive/dead cells into RGBA pixels in buf, one pixel
// per cell. buf must hold 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	onPx := rgba8(on)
	offPx := rgba8(off)
	for i, alive := range cells {
		base := i * 4
		px := offPx
		if alive {
			px = onPx
		}
		buf[base+0] = px[0]
		buf[base+1] = px[1]
		buf[base+2] = px[2]
		buf[base+3] = px[3]
	}
}

// rgba8 returns the premultiplied 8-bit components of c.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// gridLines returns the pixel positions of the n+1 lines separating n cells
// of the given size, starting at offset.
func gridLines(n, cell, offset int) []int {
	if n <= 0 {
		return nil
	}
	lines := make([]int, n+1)
	for i := range lines {
		lines[i] = offset + i*cell
	}
	return lines
}
