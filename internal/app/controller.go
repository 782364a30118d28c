package app

import (
	"image"
	"math"
	"math/rand/v2"
	"time"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
)

// Action is a discrete user intent produced by the input layer.
type Action int

const (
	// ActionNone does nothing.
	ActionNone Action = iota
	// ActionTogglePlay switches between running and paused.
	ActionTogglePlay
	// ActionStep advances exactly one generation.
	ActionStep
	// ActionReset clears the board.
	ActionReset
	// ActionRandomize fills the board at random.
	ActionRandomize
	// ActionToggleCell flips the cell named in Event.Cell.
	ActionToggleCell
)

// Event pairs an Action with the cell it targets, if any.
type Event struct {
	Action Action
	Cell   core.Cell
}

// Controller owns the board for the presentation loop and applies input to
// it. It starts paused.
type Controller struct {
	board  *board.Board
	layout Layout
	clock  *core.FixedStep
	rng    *rand.Rand

	running      bool
	randomEnable bool
}

// NewController wires a board to the configured clock, layout and features.
// rng feeds ActionRandomize and may be nil when random fill is disabled.
func NewController(cfg *Config, b *board.Board, rng *rand.Rand) *Controller {
	return &Controller{
		board:        b,
		layout:       NewLayout(b, cfg.EnableResetButton),
		clock:        core.NewFixedStep(cfg.TPS),
		rng:          rng,
		randomEnable: cfg.EnableRandom && rng != nil,
	}
}

// Board returns the controlled board.
func (c *Controller) Board() *board.Board { return c.board }

// Layout returns the window geometry.
func (c *Controller) Layout() Layout { return c.layout }

// Running reports whether the board advances on its own.
func (c *Controller) Running() bool { return c.running }

// RandomEnabled reports whether ActionRandomize has any effect.
func (c *Controller) RandomEnabled() bool { return c.randomEnable }

// Apply performs a single event. Cell events outside the board return the
// board's out-of-range error and leave it untouched.
func (c *Controller) Apply(ev Event) error {
	switch ev.Action {
	case ActionTogglePlay:
		c.running = !c.running
	case ActionStep:
		c.board.Step()
	case ActionReset:
		c.board.Reset()
	case ActionRandomize:
		if c.randomEnable {
			c.board.SeedRandom(c.rng)
		}
	case ActionToggleCell:
		return c.board.Toggle(ev.Cell.X, ev.Cell.Y)
	}
	return nil
}

// Click translates a left click at screen position (px, py) into an event.
func (c *Controller) Click(px, py float64) Event {
	pt := image.Pt(int(math.Floor(px)), int(math.Floor(py)))
	switch c.layout.Hit(pt) {
	case TargetPlay:
		return Event{Action: ActionTogglePlay}
	case TargetReset:
		return Event{Action: ActionReset}
	case TargetGrid:
		if cell, ok := c.board.CellAt(px, py); ok {
			return Event{Action: ActionToggleCell, Cell: cell}
		}
	}
	return Event{}
}

// Tick feeds delta into the fixed-step clock and advances the board when
// running and a step is due. It reports whether a generation was computed.
func (c *Controller) Tick(delta time.Duration) bool {
	return c.advance(c.clock.Advance(delta))
}

// Update is Tick using the wall clock.
func (c *Controller) Update() bool {
	return c.advance(c.clock.ShouldStep())
}

func (c *Controller) advance(due bool) bool {
	if !due || !c.running {
		return false
	}
	c.board.Step()
	return true
}
