package core

import "github.com/pkg/errors"

// ErrOutOfRange reports a coordinate outside the grid.
var ErrOutOfRange = errors.New("cell out of range")

// BoolGrid stores a 2D grid of alive/dead cells in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *BoolGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y). Coordinates outside the grid read as dead.
func (g *BoolGrid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[g.Index(x, y)]
}

// Set writes the cell at (x, y).
func (g *BoolGrid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "(%d, %d) in %dx%d grid", x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] = alive
	return nil
}

// Count returns the number of alive cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
