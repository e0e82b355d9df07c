package game

import (
	"math/rand"
	"testing"

	"github.com/kh7designs/interstellar/internal/config"
)

func newTestGame(t *testing.T, mutate func(*config.Tuning)) *Game {
	t.Helper()
	tuning := config.Default()
	if mutate != nil {
		mutate(&tuning)
	}
	if err := tuning.Validate(); err != nil {
		t.Fatalf("test tuning invalid: %v", err)
	}
	g := New(tuning, rand.New(rand.NewSource(1)))
	g.Reset() // into PhasePlaying
	return g
}

func TestShipMoveLeftOneTick(t *testing.T) {
	// Configured speed 5 units/tick with dt=1: 400 -> 395.
	g := newTestGame(t, func(c *config.Tuning) {
		c.Ship.Speed = 5
	})
	g.Ship.X = 400

	g.Tick(Intent{Left: true}, 1.0)

	if g.Ship.X != 395 {
		t.Fatalf("ship x after move_left = %f, want 395", g.Ship.X)
	}
}

func TestShipStaysInBounds(t *testing.T) {
	g := newTestGame(t, nil)
	worldW := g.Tuning.World.Width
	maxX := worldW - g.Ship.W

	for i := 0; i < 300; i++ {
		g.Tick(Intent{Left: true}, 1.0/60)
		if g.Ship.X < 0 || g.Ship.X > maxX {
			t.Fatalf("ship x=%f out of [0, %f] while moving left", g.Ship.X, maxX)
		}
	}
	if g.Ship.X != 0 {
		t.Fatalf("ship should be pinned at left edge, got x=%f", g.Ship.X)
	}

	for i := 0; i < 600; i++ {
		g.Tick(Intent{Right: true}, 1.0/60)
		if g.Ship.X < 0 || g.Ship.X > maxX {
			t.Fatalf("ship x=%f out of [0, %f] while moving right", g.Ship.X, maxX)
		}
	}
	if g.Ship.X != maxX {
		t.Fatalf("ship should be pinned at right edge, got x=%f", g.Ship.X)
	}
}

func TestShipOpposingInputsCancel(t *testing.T) {
	g := newTestGame(t, nil)
	start := g.Ship.X

	g.Tick(Intent{Left: true, Right: true}, 1.0)

	if g.Ship.X != start {
		t.Fatalf("ship moved with opposing inputs: %f -> %f", start, g.Ship.X)
	}
}

func TestFireCooldownLimitsRate(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.Ship.FireCooldown = 0.25
	})

	// Holding fire for 10 ticks of 10ms spans 0.1s: just one shot.
	for i := 0; i < 10; i++ {
		g.Tick(Intent{Fire: true}, 0.01)
	}
	if got := len(g.Projectiles); got != 1 {
		t.Fatalf("projectiles after 0.1s of held fire = %d, want 1", got)
	}

	// After the cooldown has elapsed a second shot is allowed.
	for i := 0; i < 20; i++ {
		g.Tick(Intent{Fire: true}, 0.01)
	}
	if got := len(g.Projectiles); got != 2 {
		t.Fatalf("projectiles after 0.3s of held fire = %d, want 2", got)
	}
}

func TestInvulnerabilityWindow(t *testing.T) {
	s := NewShip(800, 600, 60, 40, 350)

	if s.Invulnerable(0) {
		t.Fatal("fresh ship should be vulnerable")
	}

	s.TakeHit(10.0, 2.0)

	if !s.Invulnerable(11.0) {
		t.Error("ship hit at t=10 should still be invulnerable at t=11")
	}
	if s.Invulnerable(12.5) {
		t.Error("ship hit at t=10 should be vulnerable again at t=12.5")
	}
	if got := s.InvulnerableFor(11.0); got != 1.0 {
		t.Errorf("InvulnerableFor(11) = %f, want 1", got)
	}
	if got := s.InvulnerableFor(13.0); got != 0 {
		t.Errorf("InvulnerableFor(13) = %f, want 0", got)
	}
}
