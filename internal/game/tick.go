package game

// Tick advances the session by dt seconds of simulated time under the
// given intent set. It is the only mutation point; callers drive it at
// whatever cadence they like, so tests can step with exact deltas.
func (g *Game) Tick(in Intent, dt float64) Events {
	var ev Events

	switch g.Phase {
	case PhaseMenu, PhaseGameOver:
		// Terminal for the current run; a new run is a fresh state.
		if in.Start || in.Fire {
			g.Reset()
		}
	case PhasePaused:
		// Nothing advances; input is still read to resume.
		if in.Pause || in.Start {
			g.Phase = PhasePlaying
		}
	case PhasePlaying:
		if in.Pause {
			g.Phase = PhasePaused
			return ev
		}
		g.advancePlaying(in, dt, &ev)
	}

	return ev
}

// advancePlaying runs one playing-phase tick: input, kinematics,
// spawning, collisions, purge, clock.
func (g *Game) advancePlaying(in Intent, dt float64, ev *Events) {
	// Input → ship.
	var dir float64
	if in.Left {
		dir -= 1
	}
	if in.Right {
		dir += 1
	}
	g.Ship.Move(dir, dt, g.Tuning.World.Width)

	if in.Fire && g.Ship.CanFire() {
		box := g.Ship.Hitbox()
		p := NewProjectile(box.CenterX(), g.Ship.Y, g.Tuning.Projectile.Width, g.Tuning.Projectile.Height, g.Tuning.Projectile.Speed)
		g.Projectiles = append(g.Projectiles, p)
		g.Ship.DidFire(g.Tuning.Ship.FireCooldown)
		ev.Fired = true
	}

	// Advance all active entities.
	g.Ship.Advance(dt)
	for _, p := range g.Projectiles {
		p.Advance(dt)
	}
	for _, m := range g.Meteoroids {
		m.Advance(dt)
	}

	// Spawn.
	if m := g.spawner.Update(dt, g.Elapsed, g.activeMeteoroids()); m != nil {
		g.Meteoroids = append(g.Meteoroids, m)
	}

	// Resolve.
	g.resolveCollisions(ev)

	// Purge inactive and off-world entities.
	g.purge()

	g.Elapsed += dt
}

// purge drops spent projectiles and destroyed or escaped meteoroids,
// reusing the backing arrays.
func (g *Game) purge() {
	worldH := g.Tuning.World.Height
	span := g.LookaheadSpan()

	projectiles := g.Projectiles[:0]
	for _, p := range g.Projectiles {
		if p.Active() && !p.OffTop() {
			projectiles = append(projectiles, p)
		}
	}
	g.Projectiles = projectiles

	meteoroids := g.Meteoroids[:0]
	for _, m := range g.Meteoroids {
		if m.Active() && !m.OffWorld(worldH, span) {
			meteoroids = append(meteoroids, m)
		}
	}
	g.Meteoroids = meteoroids
}
