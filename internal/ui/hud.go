//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Options places the HUD elements inside the window.
type Options struct {
	Play      image.Rectangle
	Reset     image.Rectangle
	ShowReset bool
	Help      image.Point
	Width     int

	RandomEnabled bool
}

// State is the per-frame data the HUD reflects.
type State struct {
	Running bool
	FPS     float64
	MouseX  int
	MouseY  int
}

// HUD renders the buttons, key help and diagnostics along the top edge.
type HUD struct {
	opts  Options
	help  []string
	pixel *ebiten.Image
}

// NewHUD constructs a HUD with the given placement.
func NewHUD(opts Options) *HUD {
	h := &HUD{opts: opts, help: HelpRows(opts.RandomEnabled)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image, st State) {
	playColor := color.RGBA{R: 0, G: 228, B: 48, A: 255}
	if st.Running {
		playColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	}
	h.fillRect(screen, h.opts.Play, playColor)
	if h.opts.ShowReset {
		h.fillRect(screen, h.opts.Reset, color.Black)
	}

	face := basicfont.Face7x13
	ink := color.Black
	for i, row := range h.help {
		text.Draw(screen, row, face, h.opts.Help.X, h.opts.Help.Y+rowBaseline+i*rowHeight, ink)
	}

	for i, label := range []string{FPSLabel(st.FPS), MouseLabel(st.MouseX, st.MouseY)} {
		width := text.BoundString(face, label).Dx()
		x := h.opts.Width - width - diagnosticsMargin
		text.Draw(screen, label, face, x, rowBaseline+i*rowHeight, ink)
	}
}

func (h *HUD) fillRect(screen *ebiten.Image, rect image.Rectangle, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(h.pixel, op)
}

const (
	rowBaseline       = 16
	rowHeight         = 14
	diagnosticsMargin = 10
)
