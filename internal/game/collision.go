package game

// Impact records a meteoroid destruction for the presentation layer
// (explosion effects); the simulation itself does not consume it.
type Impact struct {
	X, Y  float64
	Class SizeClass
}

// Events reports what happened during one tick. Purely informational;
// all state changes have already been applied to the Game.
type Events struct {
	Destroyed []Impact // meteoroids destroyed this tick (any cause but off-world)
	Fired     bool     // a projectile was launched
	ShipHit   bool     // the ship took damage
	GameOver  bool     // the run ended this tick
}

// resolveCollisions runs the pairwise checks after all entities have
// advanced. Entities marked inactive by one pair are excluded from all
// later pairs, so nothing is destroyed twice in a tick.
func (g *Game) resolveCollisions(ev *Events) {
	g.resolveProjectileHits(ev)
	g.resolveShipHits(ev)
	g.flushPending()
}

// resolveProjectileHits handles projectile × meteoroid pairs.
func (g *Game) resolveProjectileHits(ev *Events) {
	for _, p := range g.Projectiles {
		if !p.Active() {
			continue
		}
		box := p.Hitbox()
		for _, m := range g.Meteoroids {
			if !m.Active() {
				continue
			}
			if !m.Bounds().OverlapsRect(box) {
				continue
			}
			p.Deactivate()
			m.Destroy()
			g.Score += m.Class.Score()
			ev.Destroyed = append(ev.Destroyed, Impact{X: m.X, Y: m.Y, Class: m.Class})
			g.queueSplit(m)
			break // projectile is spent
		}
	}
}

// resolveShipHits handles ship × meteoroid pairs. Skipped entirely
// while the ship is invulnerable. The meteoroid is destroyed on
// contact so it cannot damage the ship again next tick.
func (g *Game) resolveShipHits(ev *Events) {
	if g.Ship.Invulnerable(g.Elapsed) {
		return
	}
	box := g.Ship.Hitbox()
	for _, m := range g.Meteoroids {
		if !m.Active() {
			continue
		}
		if !m.Bounds().OverlapsRect(box) {
			continue
		}
		m.Destroy()
		ev.Destroyed = append(ev.Destroyed, Impact{X: m.X, Y: m.Y, Class: m.Class})
		ev.ShipHit = true

		g.Lives--
		if g.Lives <= 0 {
			g.Ship.Kill()
			g.Phase = PhaseGameOver
			ev.GameOver = true
		} else {
			g.Ship.TakeHit(g.Elapsed, g.Tuning.Ship.Invulnerability)
		}
		return // one hit per tick; the window covers the rest
	}
}
