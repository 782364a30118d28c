package board

import (
	"math"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
)

func setAlive(t *testing.T, b *Board, cells ...core.Cell) {
	t.Helper()
	for _, c := range cells {
		if err := b.Set(c.X, c.Y, true); err != nil {
			t.Fatalf("set (%d,%d): %v", c.X, c.Y, err)
		}
	}
}

func expectAlive(t *testing.T, b *Board, label string, cells ...core.Cell) {
	t.Helper()
	want := map[core.Cell]bool{}
	for _, c := range cells {
		want[c] = true
	}
	n := b.Size().W
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			alive := b.Alive(x, y)
			if alive != want[core.Cell{X: x, Y: y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, alive, !alive)
			}
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := New(DefaultSize)
	if got := b.Size(); got.W != DefaultSize || got.H != DefaultSize {
		t.Fatalf("size = %+v, want %dx%d", got, DefaultSize, DefaultSize)
	}
	if b.Population() != 0 {
		t.Fatalf("new board population = %d, want 0", b.Population())
	}
	if b.Offset() != DefaultOffset || b.CellSize() != DefaultCellSize {
		t.Fatalf("geometry = offset %d cell %d", b.Offset(), b.CellSize())
	}
}

func TestNewClampsSize(t *testing.T) {
	b := New(0)
	if b.Size().W != 1 {
		t.Fatalf("size 0 should clamp to 1, got %d", b.Size().W)
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, DefaultSize} {
		b := New(n)
		b.Step()
		if b.Population() != 0 {
			t.Fatalf("size %d: empty board grew %d cells", n, b.Population())
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	b := New(DefaultSize)
	block := []core.Cell{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 11, Y: 10}, {X: 11, Y: 11}}
	setAlive(t, b, block...)

	b.Step()
	expectAlive(t, b, "after one step", block...)
	b.Step()
	expectAlive(t, b, "after two steps", block...)
}

func TestBlinkerOscillation(t *testing.T) {
	b := New(DefaultSize)
	horizontal := []core.Cell{{X: 9, Y: 10}, {X: 10, Y: 10}, {X: 11, Y: 10}}
	vertical := []core.Cell{{X: 10, Y: 9}, {X: 10, Y: 10}, {X: 10, Y: 11}}
	setAlive(t, b, horizontal...)

	b.Step()
	expectAlive(t, b, "after first step", vertical...)

	b.Step()
	expectAlive(t, b, "after second step", horizontal...)

	if b.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", b.Generation())
	}
}

func TestCornerCellDoesNotWrap(t *testing.T) {
	b := New(DefaultSize)
	setAlive(t, b, core.Cell{X: 0, Y: 0})
	b.Step()
	if b.Population() != 0 {
		t.Fatalf("lone corner cell should die, population=%d", b.Population())
	}
}

func TestBorderBlinkerIsNotToroidal(t *testing.T) {
	// On a torus the bar would also give birth at (7,4) on the far edge.
	b := New(8)
	setAlive(t, b, core.Cell{X: 0, Y: 3}, core.Cell{X: 0, Y: 4}, core.Cell{X: 0, Y: 5})
	b.Step()
	expectAlive(t, b, "after one step", core.Cell{X: 0, Y: 4}, core.Cell{X: 1, Y: 4})
}

func TestBirthNeedsExactlyThree(t *testing.T) {
	b := New(6)
	setAlive(t, b, core.Cell{X: 1, Y: 1}, core.Cell{X: 3, Y: 1})
	b.Step()
	if b.Alive(2, 2) || b.Alive(2, 1) {
		t.Fatal("dead cell with two neighbors must stay dead")
	}

	b = New(6)
	setAlive(t, b, core.Cell{X: 1, Y: 1}, core.Cell{X: 3, Y: 1}, core.Cell{X: 2, Y: 3})
	b.Step()
	if !b.Alive(2, 2) {
		t.Fatal("dead cell with three neighbors must be born")
	}
}

func TestOvercrowdingKills(t *testing.T) {
	b := New(5)
	plus := []core.Cell{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}}
	setAlive(t, b, plus...)
	b.Step()
	if b.Alive(2, 2) {
		t.Fatal("center with four neighbors must die")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	b := New(DefaultSize)
	for _, c := range []core.Cell{{X: 0, Y: 0}, {X: 5, Y: 7}, {X: DefaultSize - 1, Y: DefaultSize - 1}} {
		before := b.Alive(c.X, c.Y)
		if err := b.Toggle(c.X, c.Y); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if b.Alive(c.X, c.Y) == before {
			t.Fatalf("toggle did not flip (%d,%d)", c.X, c.Y)
		}
		if err := b.Toggle(c.X, c.Y); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if b.Alive(c.X, c.Y) != before {
			t.Fatalf("double toggle changed (%d,%d)", c.X, c.Y)
		}
	}
}

func TestToggleOutOfRange(t *testing.T) {
	b := New(4)
	for _, c := range []core.Cell{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 4}} {
		err := b.Toggle(c.X, c.Y)
		if err == nil {
			t.Fatalf("toggle (%d,%d) should fail", c.X, c.Y)
		}
		if !errors.Is(err, core.ErrOutOfRange) {
			t.Fatalf("toggle (%d,%d) error %v does not wrap ErrOutOfRange", c.X, c.Y, err)
		}
	}
	if b.Population() != 0 {
		t.Fatal("failed toggles must not mutate the board")
	}
}

func TestResetClearsBoard(t *testing.T) {
	b := New(DefaultSize)
	b.SeedRandom(core.NewRNG(7))
	b.Step()
	b.Reset()
	if b.Population() != 0 {
		t.Fatalf("population after reset = %d", b.Population())
	}
	if b.Generation() != 0 {
		t.Fatalf("generation after reset = %d", b.Generation())
	}
	b.Reset()
	if b.Population() != 0 {
		t.Fatal("reset must be idempotent")
	}
}

func TestSeedRandomDeterministic(t *testing.T) {
	a := New(DefaultSize)
	b := New(DefaultSize)
	a.SeedRandom(core.NewRNG(99))
	b.SeedRandom(core.NewRNG(99))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}

	c := New(DefaultSize)
	c.SeedRandom(core.NewRNG(100))
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestSeedRandomDensity(t *testing.T) {
	const n = 200
	b := New(n)
	b.SeedRandom(core.NewRNG(42))
	frac := float64(b.Population()) / float64(n*n)
	if math.Abs(frac-0.5) > 0.02 {
		t.Fatalf("alive fraction %.4f not close to 0.5", frac)
	}
}

func TestMapPointRoundTrip(t *testing.T) {
	b := New(DefaultSize)
	cs := float64(b.CellSize())
	off := float64(b.Offset())
	for y := 0; y < DefaultSize; y++ {
		for x := 0; x < DefaultSize; x++ {
			px := off + float64(x)*cs + cs/2
			py := off + float64(y)*cs + cs/2
			got, ok := b.CellAt(px, py)
			if !ok || got.X != x || got.Y != y {
				t.Fatalf("center of (%d,%d) mapped to %+v ok=%v", x, y, got, ok)
			}
			r := b.CellRect(x, y)
			got, ok = b.CellAt(float64(r.Min.X), float64(r.Min.Y))
			if !ok || got.X != x || got.Y != y {
				t.Fatalf("corner of (%d,%d) mapped to %+v ok=%v", x, y, got, ok)
			}
		}
	}
}

func TestMapPointOutside(t *testing.T) {
	b := New(DefaultSize)
	bounds := b.Bounds()
	outside := [][2]float64{
		{0, 0},
		{float64(bounds.Min.X) - 0.5, float64(bounds.Min.Y) + 5},
		{float64(bounds.Min.X) + 5, float64(bounds.Min.Y) - 0.5},
		{float64(bounds.Max.X), float64(bounds.Min.Y) + 5},
		{float64(bounds.Min.X) + 5, float64(bounds.Max.Y)},
		{float64(bounds.Max.X) + 100, float64(bounds.Max.Y) + 100},
		{math.NaN(), 50},
	}
	for _, p := range outside {
		if c, ok := b.CellAt(p[0], p[1]); ok {
			t.Fatalf("point %v should be outside the grid, got %+v", p, c)
		}
	}
	if _, ok := MapPoint(50, 50, 0, 40, 40); ok {
		t.Fatal("zero cell size must map to no cell")
	}
}

func TestMapPointCustomGeometry(t *testing.T) {
	b := New(10, WithOffset(5), WithCellSize(8))
	c, ok := b.CellAt(5+8*3+1, 5+8*9+7)
	if !ok || c.X != 3 || c.Y != 9 {
		t.Fatalf("got %+v ok=%v, want (3,9)", c, ok)
	}
	if got := b.Bounds().Dx(); got != 80 {
		t.Fatalf("bounds width = %d, want 80", got)
	}
}
