package app

import (
	"image"

	"lifeboard/internal/board"
)

const (
	buttonTop    = 10
	buttonWidth  = 40
	buttonHeight = 20
	buttonGap    = 10
)

// Layout positions the board and the on-screen controls inside the window.
type Layout struct {
	Width  int
	Height int

	Grid  image.Rectangle
	Play  image.Rectangle
	Reset image.Rectangle

	// Help is the top-left corner of the key help text.
	Help image.Point

	ResetEnabled bool
}

// NewLayout derives the window geometry from the board's size, cell size and
// offset. The reset button's slot is reserved even when it is disabled.
func NewLayout(b *board.Board, resetButton bool) Layout {
	grid := b.Bounds()
	off := b.Offset()
	play := image.Rect(off, buttonTop, off+buttonWidth, buttonTop+buttonHeight)
	reset := play.Add(image.Pt(buttonWidth+buttonGap, 0))
	return Layout{
		Width:        grid.Dx() + 2*off,
		Height:       grid.Dy() + 2*off,
		Grid:         grid,
		Play:         play,
		Reset:        reset,
		Help:         image.Pt(reset.Max.X+2*buttonGap, 0),
		ResetEnabled: resetButton,
	}
}

// Target identifies what a pointer position lands on.
type Target int

const (
	// TargetNone is empty window space.
	TargetNone Target = iota
	// TargetPlay is the play/pause button.
	TargetPlay
	// TargetReset is the reset button.
	TargetReset
	// TargetGrid is any point inside the board.
	TargetGrid
)

// Hit resolves a pointer position, checking the buttons before the grid.
func (l Layout) Hit(pt image.Point) Target {
	switch {
	case pt.In(l.Play):
		return TargetPlay
	case l.ResetEnabled && pt.In(l.Reset):
		return TargetReset
	case pt.In(l.Grid):
		return TargetGrid
	}
	return TargetNone
}
