package game

import (
	"math/rand"
	"testing"

	"github.com/kh7designs/interstellar/internal/config"
)

func TestNewGameStartsInMenu(t *testing.T) {
	g := New(config.Default(), rand.New(rand.NewSource(1)))

	if g.Phase != PhaseMenu {
		t.Fatalf("fresh game phase = %v, want menu", g.Phase)
	}

	g.Tick(Intent{Start: true}, 1.0/60)

	if g.Phase != PhasePlaying {
		t.Fatalf("start from menu left phase = %v, want playing", g.Phase)
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(t, nil)
	m := NewMeteoroid(100, 50, 20, 100, SizeMedium, g.rng)
	g.Meteoroids = append(g.Meteoroids, m)

	g.Tick(Intent{Pause: true}, 1.0/60)
	if g.Phase != PhasePaused {
		t.Fatalf("phase = %v, want paused", g.Phase)
	}

	x, y, elapsed := m.X, m.Y, g.Elapsed
	for i := 0; i < 60; i++ {
		g.Tick(Intent{}, 1.0/60)
	}

	if m.X != x || m.Y != y {
		t.Errorf("meteoroid moved while paused: (%f,%f) -> (%f,%f)", x, y, m.X, m.Y)
	}
	if g.Elapsed != elapsed {
		t.Errorf("elapsed advanced while paused: %f -> %f", elapsed, g.Elapsed)
	}

	g.Tick(Intent{Pause: true}, 1.0/60)
	if g.Phase != PhasePlaying {
		t.Fatalf("phase after resume = %v, want playing", g.Phase)
	}

	g.Tick(Intent{}, 1.0/60)
	if m.Y <= y {
		t.Error("meteoroid did not move after resume")
	}
	if g.Elapsed <= elapsed {
		t.Error("elapsed did not advance after resume")
	}
}

func TestRestartAfterGameOverIsFresh(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.Ship.Lives = 1
	})
	g.Score = 70
	cx, cy := shipCenter(g)
	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(cx, cy, 0, 0, SizeSmall, g.rng))
	g.Tick(Intent{}, 0)

	if g.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase)
	}

	// Idle input on the game-over screen changes nothing.
	g.Tick(Intent{Left: true}, 1.0/60)
	if g.Phase != PhaseGameOver || g.Score != 70 {
		t.Fatal("game-over screen mutated state without a start input")
	}

	g.Tick(Intent{Fire: true}, 1.0/60)

	if g.Phase != PhasePlaying {
		t.Fatalf("phase after restart = %v, want playing", g.Phase)
	}
	if g.Score != 0 || g.Elapsed != 0 {
		t.Errorf("restart kept score=%d elapsed=%f, want zeroes", g.Score, g.Elapsed)
	}
	if g.Lives != g.Tuning.Ship.Lives {
		t.Errorf("restart lives = %d, want %d", g.Lives, g.Tuning.Ship.Lives)
	}
	if !g.Ship.Active() {
		t.Error("restart did not revive the ship")
	}
	if len(g.Meteoroids) != 0 || len(g.Projectiles) != 0 {
		t.Error("restart kept leftover entities")
	}
}

func TestPurgeDropsEscapedEntities(t *testing.T) {
	g := newTestGame(t, nil)
	span := g.LookaheadSpan()

	// Above the top, below the bottom, past the span, and one keeper
	// inside the look-ahead region beyond the visible screen.
	g.Projectiles = append(g.Projectiles, NewProjectile(100, 10, 6, 18, 500))
	g.Meteoroids = append(g.Meteoroids,
		NewMeteoroid(100, g.Tuning.World.Height+100, 0, 0, SizeSmall, g.rng),
		NewMeteoroid(span+100, 50, 0, 0, SizeSmall, g.rng),
		NewMeteoroid(span-100, 50, 0, 0, SizeSmall, g.rng),
	)

	g.Tick(Intent{}, 0.1)

	if len(g.Projectiles) != 0 {
		t.Errorf("projectile past the top edge not purged, %d remain", len(g.Projectiles))
	}
	if len(g.Meteoroids) != 1 {
		t.Fatalf("meteoroids after purge = %d, want only the in-span one", len(g.Meteoroids))
	}
	if g.Meteoroids[0].X > span {
		t.Error("purge kept the wrong meteoroid")
	}
}

func TestEscapedMeteoroidsScoreNothing(t *testing.T) {
	g := newTestGame(t, nil)
	g.Meteoroids = append(g.Meteoroids,
		NewMeteoroid(100, g.Tuning.World.Height+100, 0, 0, SizeLarge, g.rng))

	ev := g.Tick(Intent{}, 0)

	if g.Score != 0 {
		t.Errorf("escape awarded score %d", g.Score)
	}
	if len(ev.Destroyed) != 0 {
		t.Errorf("escape reported %d destruction events", len(ev.Destroyed))
	}
}
