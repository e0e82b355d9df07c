package game

import (
	"testing"

	"github.com/kh7designs/interstellar/internal/config"
)

// shipCenter returns the center of the ship's hitbox, where a meteoroid
// placed in tests is guaranteed to overlap it.
func shipCenter(g *Game) (float64, float64) {
	box := g.Ship.Hitbox()
	return box.CenterX(), box.CenterY()
}

func TestProjectileDestroysLargeMeteoroid(t *testing.T) {
	g := newTestGame(t, nil)

	m := NewMeteoroid(100, 50, 0, 0, SizeLarge, g.rng)
	g.Meteoroids = append(g.Meteoroids, m)
	g.Projectiles = append(g.Projectiles, NewProjectile(100, 68, 6, 18, 500))

	ev := g.Tick(Intent{}, 0)

	if g.Score != SizeLarge.Score() {
		t.Errorf("score = %d, want %d", g.Score, SizeLarge.Score())
	}
	if len(ev.Destroyed) != 1 || ev.Destroyed[0].Class != SizeLarge {
		t.Fatalf("destroyed events = %+v, want one large impact", ev.Destroyed)
	}
	if len(g.Projectiles) != 0 {
		t.Errorf("spent projectile not purged, %d remain", len(g.Projectiles))
	}

	// The large rock splits into medium fragments at the impact point.
	if len(g.Meteoroids) != g.Tuning.Split.Children {
		t.Fatalf("fragments = %d, want %d", len(g.Meteoroids), g.Tuning.Split.Children)
	}
	for _, child := range g.Meteoroids {
		if child.Class != SizeMedium {
			t.Errorf("fragment class = %v, want medium", child.Class)
		}
		if child.X != m.X || child.Y != m.Y {
			t.Errorf("fragment at (%f,%f), want impact point (%f,%f)", child.X, child.Y, m.X, m.Y)
		}
	}
}

func TestSplitDisabledLeavesNoFragments(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.Split.Enabled = false
	})

	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(100, 50, 0, 0, SizeLarge, g.rng))
	g.Projectiles = append(g.Projectiles, NewProjectile(100, 68, 6, 18, 500))

	g.Tick(Intent{}, 0)

	if len(g.Meteoroids) != 0 {
		t.Errorf("split disabled but %d fragments spawned", len(g.Meteoroids))
	}
}

func TestSmallMeteoroidDoesNotSplit(t *testing.T) {
	g := newTestGame(t, nil)

	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(100, 50, 0, 0, SizeSmall, g.rng))
	g.Projectiles = append(g.Projectiles, NewProjectile(100, 66, 6, 18, 500))

	g.Tick(Intent{}, 0)

	if len(g.Meteoroids) != 0 {
		t.Errorf("small meteoroid split into %d fragments, want none", len(g.Meteoroids))
	}
	if g.Score != SizeSmall.Score() {
		t.Errorf("score = %d, want %d", g.Score, SizeSmall.Score())
	}
}

func TestMeteoroidDestroyedOnceByTwoProjectiles(t *testing.T) {
	g := newTestGame(t, nil)

	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(100, 50, 0, 0, SizeSmall, g.rng))
	g.Projectiles = append(g.Projectiles,
		NewProjectile(100, 66, 6, 18, 500),
		NewProjectile(102, 66, 6, 18, 500),
	)

	ev := g.Tick(Intent{}, 0)

	if len(ev.Destroyed) != 1 {
		t.Fatalf("destroyed events = %d, want 1", len(ev.Destroyed))
	}
	if g.Score != SizeSmall.Score() {
		t.Errorf("score = %d, want a single award of %d", g.Score, SizeSmall.Score())
	}
	// The second projectile found nothing left to hit and flies on.
	if len(g.Projectiles) != 1 {
		t.Errorf("surviving projectiles = %d, want 1", len(g.Projectiles))
	}
}

func TestProjectileSpentOnFirstMeteoroid(t *testing.T) {
	g := newTestGame(t, nil)

	g.Meteoroids = append(g.Meteoroids,
		NewMeteoroid(100, 50, 0, 0, SizeSmall, g.rng),
		NewMeteoroid(104, 50, 0, 0, SizeSmall, g.rng),
	)
	g.Projectiles = append(g.Projectiles, NewProjectile(100, 66, 6, 18, 500))

	ev := g.Tick(Intent{}, 0)

	if len(ev.Destroyed) != 1 {
		t.Fatalf("destroyed events = %d, want 1", len(ev.Destroyed))
	}
	if len(g.Meteoroids) != 1 {
		t.Errorf("one projectile destroyed %d meteoroids", 2-len(g.Meteoroids))
	}
}

func TestShipHitOpensInvulnerabilityWindow(t *testing.T) {
	g := newTestGame(t, nil)
	cx, cy := shipCenter(g)

	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(cx, cy, 0, 0, SizeSmall, g.rng))
	ev := g.Tick(Intent{}, 0)

	if !ev.ShipHit {
		t.Fatal("overlapping meteoroid did not register a ship hit")
	}
	if g.Lives != g.Tuning.Ship.Lives-1 {
		t.Errorf("lives = %d, want %d", g.Lives, g.Tuning.Ship.Lives-1)
	}
	if len(g.Meteoroids) != 0 {
		t.Error("meteoroid survived ship contact")
	}
	if !g.Ship.Invulnerable(g.Elapsed) {
		t.Error("ship vulnerable immediately after a hit")
	}

	// Another rock during the window passes through harmlessly.
	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(cx, cy, 0, 0, SizeSmall, g.rng))
	ev = g.Tick(Intent{}, 0)

	if ev.ShipHit {
		t.Error("ship took damage inside the invulnerability window")
	}
	if len(g.Meteoroids) != 1 {
		t.Error("meteoroid destroyed while ship was invulnerable")
	}

	// Once the window has expired the same overlap damages again.
	g.Elapsed = g.Tuning.Ship.Invulnerability + 1
	ev = g.Tick(Intent{}, 0)

	if !ev.ShipHit {
		t.Error("ship not damaged after the window expired")
	}
	if g.Lives != g.Tuning.Ship.Lives-2 {
		t.Errorf("lives = %d, want %d", g.Lives, g.Tuning.Ship.Lives-2)
	}
}

func TestLastLifeEndsTheRun(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.Ship.Lives = 1
	})
	cx, cy := shipCenter(g)

	g.Meteoroids = append(g.Meteoroids, NewMeteoroid(cx, cy, 0, 0, SizeSmall, g.rng))
	ev := g.Tick(Intent{}, 0)

	if !ev.GameOver {
		t.Fatal("losing the last life did not end the run")
	}
	if g.Phase != PhaseGameOver {
		t.Errorf("phase = %v, want game over", g.Phase)
	}
	if g.Ship.Active() {
		t.Error("ship still alive after game over")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.Split.Enabled = false
	})

	prev := 0
	for _, class := range []SizeClass{SizeSmall, SizeMedium, SizeLarge} {
		g.Meteoroids = append(g.Meteoroids, NewMeteoroid(100, 50, 0, 0, class, g.rng))
		g.Projectiles = append(g.Projectiles, NewProjectile(100, 68, 6, 18, 500))
		g.Tick(Intent{}, 0)

		if g.Score <= prev {
			t.Errorf("score did not grow after destroying %v: %d -> %d", class, prev, g.Score)
		}
		if got := g.Score - prev; got != class.Score() {
			t.Errorf("award for %v = %d, want %d", class, got, class.Score())
		}
		prev = g.Score
	}
}
