//go:build ebiten

package app

import (
	"image/color"
	"log"

	"lifeboard/internal/render"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller) *Game {
	b := ctrl.Board()
	l := ctrl.Layout()
	hud := ui.NewHUD(ui.Options{
		Play:          l.Play,
		Reset:         l.Reset,
		ShowReset:     l.ResetEnabled,
		Help:          l.Help,
		Width:         l.Width,
		RandomEnabled: ctrl.RandomEnabled(),
	})
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(b.Size().W, b.CellSize(), b.Offset()),
		hud:      hud,
		onColor:  color.Black,
		offColor: color.Transparent,
	}
}

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionTogglePlay},
	{ebiten.KeyS, ActionStep},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyF, ActionRandomize},
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.apply(Event{Action: ka.action})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.apply(g.ctrl.Click(float64(mx), float64(my)))
	}

	g.ctrl.Update()
	return nil
}

func (g *Game) apply(ev Event) {
	if err := g.ctrl.Apply(ev); err != nil {
		log.Printf("ignored input: %v", err)
	}
}

// Draw renders the controls, diagnostics and the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	mx, my := ebiten.CursorPosition()
	g.hud.Draw(screen, ui.State{
		Running: g.ctrl.Running(),
		FPS:     ebiten.ActualFPS(),
		MouseX:  mx,
		MouseY:  my,
	})
	g.painter.Blit(screen, g.ctrl.Board().Cells(), g.onColor, g.offColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.ctrl.Layout()
	return l.Width, l.Height
}
