//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws a square board: gridlines plus one filled square per
// alive cell.
type GridPainter struct {
	n      int
	cell   int
	offset int

	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
	lines []int

	LineColor color.Color
}

// NewGridPainter allocates a painter for an n×n board drawn with the given
// cell size and offset.
func NewGridPainter(n, cell, offset int) *GridPainter {
	gp := &GridPainter{
		n:         n,
		cell:      cell,
		offset:    offset,
		buf:       make([]byte, 4*n*n),
		lines:     gridLines(n, cell, offset),
		LineColor: color.Gray{Y: 128},
	}
	gp.img = ebiten.NewImage(n, n)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit draws the gridlines, then uploads cells and draws them scaled to the
// cell size.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, on, off color.Color) {
	if len(cells) != gp.n*gp.n {
		return
	}
	gp.drawGrid(dst)

	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cell), float64(gp.cell))
	op.GeoM.Translate(float64(gp.offset), float64(gp.offset))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) drawGrid(dst *ebiten.Image) {
	if len(gp.lines) == 0 {
		return
	}
	lo := float64(gp.lines[0])
	span := float64(gp.lines[len(gp.lines)-1]) - lo
	for _, l := range gp.lines {
		p := float64(l)
		gp.fillRect(dst, p, lo, 1, span)
		gp.fillRect(dst, lo, p, span, 1)
	}
}

func (gp *GridPainter) fillRect(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(gp.LineColor)
	dst.DrawImage(gp.pixel, op)
}
