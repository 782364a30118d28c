// Package board implements Conway's Game of Life on a fixed-size square grid
// with a dead border.
package board

import (
	"image"
	"math"
	"math/rand/v2"

	"lifeboard/internal/core"
)

const (
	// DefaultSize is the number of cells along each side of the board.
	DefaultSize = 40
	// DefaultCellSize is the pixel size of a single cell.
	DefaultCellSize = 16
	// DefaultOffset is the pixel offset of the grid's top-left corner.
	DefaultOffset = 40
)

// Board owns the cell grid and the pixel geometry used to locate it on screen.
type Board struct {
	size     int
	offset   int
	cellSize int

	cur *core.BoolGrid
	nxt *core.BoolGrid

	generation int
}

// Option customizes a Board at construction.
type Option func(*Board)

// WithOffset sets the pixel offset of the grid's top-left corner.
func WithOffset(px int) Option {
	return func(b *Board) {
		if px >= 0 {
			b.offset = px
		}
	}
}

// WithCellSize sets the pixel size of a cell.
func WithCellSize(px int) Option {
	return func(b *Board) {
		if px > 0 {
			b.cellSize = px
		}
	}
}

// New returns a size×size board with every cell dead.
func New(size int, opts ...Option) *Board {
	if size <= 0 {
		size = 1
	}
	b := &Board{
		size:     size,
		offset:   DefaultOffset,
		cellSize: DefaultCellSize,
		cur:      core.NewBoolGrid(size, size),
		nxt:      core.NewBoolGrid(size, size),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.size, H: b.size} }

// Offset returns the pixel offset of the grid's top-left corner.
func (b *Board) Offset() int { return b.offset }

// CellSize returns the pixel size of a cell.
func (b *Board) CellSize() int { return b.cellSize }

// Generation returns the number of steps since the board was last cleared
// or seeded.
func (b *Board) Generation() int { return b.generation }

// Cells exposes the current generation in row-major order. Callers must
// treat it as read-only.
func (b *Board) Cells() []bool { return b.cur.Cells() }

// Population returns the number of alive cells.
func (b *Board) Population() int { return b.cur.Count() }

// Reset kills every cell.
func (b *Board) Reset() {
	b.cur.Clear()
	b.generation = 0
}

// SeedRandom sets each cell alive with probability 1/2 drawn from rng.
func (b *Board) SeedRandom(rng *rand.Rand) {
	cells := b.cur.Cells()
	for i := range cells {
		cells[i] = rng.IntN(2) == 1
	}
	b.generation = 0
}

// Step advances the board by one generation using the B3/S23 rule.
// Neighbors beyond the edge count as dead.
func (b *Board) Step() {
	n := b.size
	next := b.nxt.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			neighbors := b.neighbors(x, y)
			alive := b.cur.Get(x, y)
			next[b.nxt.Index(x, y)] = (alive && neighbors == 2) || neighbors == 3
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.generation++
}

func (b *Board) neighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !b.cur.InBounds(nx, ny) {
				continue
			}
			if b.cur.Get(nx, ny) {
				count++
			}
		}
	}
	return count
}

// Alive reports whether the cell at (x, y) is alive. Coordinates outside
// the board read as dead.
func (b *Board) Alive(x, y int) bool { return b.cur.Get(x, y) }

// Set writes a single cell. It returns an error wrapping core.ErrOutOfRange
// when (x, y) is not on the board.
func (b *Board) Set(x, y int, alive bool) error {
	return b.cur.Set(x, y, alive)
}

// Toggle flips a single cell between alive and dead. It returns an error
// wrapping core.ErrOutOfRange when (x, y) is not on the board.
func (b *Board) Toggle(x, y int) error {
	return b.cur.Set(x, y, !b.cur.Get(x, y))
}

// CellAt maps a screen point to the cell beneath it using the board's own
// geometry.
func (b *Board) CellAt(px, py float64) (core.Cell, bool) {
	return MapPoint(px, py, float64(b.cellSize), float64(b.offset), b.size)
}

// CellRect returns the pixel rectangle covered by the cell at (x, y).
func (b *Board) CellRect(x, y int) image.Rectangle {
	x0 := b.offset + x*b.cellSize
	y0 := b.offset + y*b.cellSize
	return image.Rect(x0, y0, x0+b.cellSize, y0+b.cellSize)
}

// Bounds returns the pixel rectangle covered by the whole grid.
func (b *Board) Bounds() image.Rectangle {
	side := b.size * b.cellSize
	return image.Rect(b.offset, b.offset, b.offset+side, b.offset+side)
}

// MapPoint converts a screen point into the index of the n×n grid cell under
// it. The second result is false when the point falls outside the grid.
func MapPoint(px, py, cellSize, offset float64, n int) (core.Cell, bool) {
	if cellSize <= 0 || n <= 0 {
		return core.Cell{}, false
	}
	fx := math.Floor((px - offset) / cellSize)
	fy := math.Floor((py - offset) / cellSize)
	limit := float64(n)
	// Written as a negated conjunction so NaN lands outside.
	if !(fx >= 0 && fx < limit && fy >= 0 && fy < limit) {
		return core.Cell{}, false
	}
	return core.Cell{X: int(fx), Y: int(fy)}, true
}
