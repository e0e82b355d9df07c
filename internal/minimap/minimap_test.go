package minimap

import (
	"math/rand"
	"testing"

	"github.com/kh7designs/interstellar/internal/game"
)

func TestColOfProportionalPosition(t *testing.T) {
	// 800-wide screen with a 2x look-ahead span, 100-column strip.
	p := NewProjector(1600, 100)

	tests := []struct {
		name    string
		x       float64
		wantCol int
		wantOK  bool
	}{
		{"left edge", 0, 0, true},
		{"quarter span", 400, 25, true},
		{"past the screen at 1.5x width", 1200, 75, true},
		{"right edge clamps to last column", 1600, 99, true},
		{"beyond the span is dropped", 2400, 0, false},
		{"negative is dropped", -10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := p.ColOf(tt.x)
			if ok != tt.wantOK {
				t.Fatalf("ColOf(%g) ok = %v, want %v", tt.x, ok, tt.wantOK)
			}
			if ok && col != tt.wantCol {
				t.Errorf("ColOf(%g) = %d, want %d", tt.x, col, tt.wantCol)
			}
		})
	}
}

func TestProjectSkipsDeadAndOutOfSpan(t *testing.T) {
	p := NewProjector(1600, 100)
	rng := rand.New(rand.NewSource(7))

	inside := game.NewMeteoroid(400, 50, 0, 0, game.SizeMedium, rng)
	dead := game.NewMeteoroid(400, 50, 0, 0, game.SizeSmall, rng)
	dead.Destroy()
	escaped := game.NewMeteoroid(2000, 50, 0, 0, game.SizeLarge, rng)

	blips := p.Project([]*game.Meteoroid{inside, dead, escaped})

	if len(blips) != 1 {
		t.Fatalf("blips = %d, want 1", len(blips))
	}
	if blips[0].Col != 25 || blips[0].Class != game.SizeMedium {
		t.Errorf("blip = %+v, want col 25 class medium", blips[0])
	}
}

func TestProjectIsPurelyDerived(t *testing.T) {
	p := NewProjector(1600, 100)
	rng := rand.New(rand.NewSource(7))
	m := game.NewMeteoroid(800, 50, 0, 0, game.SizeSmall, rng)

	first := p.Project([]*game.Meteoroid{m})
	m.X = 1599
	second := p.Project([]*game.Meteoroid{m})

	if first[0].Col == second[0].Col {
		t.Error("projection did not track the moved meteoroid")
	}
	if first[0].Col != 50 {
		t.Errorf("stale projection col = %d, want 50", first[0].Col)
	}
}

func TestViewCols(t *testing.T) {
	p := NewProjector(1600, 100)
	if got := p.ViewCols(800); got != 50 {
		t.Errorf("ViewCols(800) = %d, want 50", got)
	}
	if got := p.ViewCols(1600); got != 100 {
		t.Errorf("ViewCols(1600) = %d, want 100", got)
	}
}

func TestDegenerateProjector(t *testing.T) {
	p := NewProjector(0, 100)
	if _, ok := p.ColOf(10); ok {
		t.Error("zero span should project nothing")
	}
	if got := p.ViewCols(800); got != 0 {
		t.Errorf("zero span ViewCols = %d, want 0", got)
	}
}
