package game

import (
	"math/rand"

	"github.com/kh7designs/interstellar/internal/config"
)

// Phase is the session state machine.
type Phase int

const (
	PhaseMenu Phase = iota // title screen, before the first run
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// Game owns all simulation state for one session. The presentation
// layer holds it read-only; every mutation happens inside Tick.
type Game struct {
	Tuning config.Tuning

	Phase       Phase
	Ship        *Ship
	Projectiles []*Projectile
	Meteoroids  []*Meteoroid

	Score   int
	Lives   int
	Elapsed float64 // simulated seconds in the current run

	spawner *Spawner
	rng     *rand.Rand

	// Meteoroids queued during collision resolution (splits), added
	// after the pass so new entities are never processed mid-tick.
	pending []*Meteoroid
}

// New creates a session in the menu phase.
func New(t config.Tuning, rng *rand.Rand) *Game {
	g := &Game{
		Tuning: t,
		Phase:  PhaseMenu,
		rng:    rng,
	}
	g.Reset()
	g.Phase = PhaseMenu
	return g
}

// Reset starts a fresh run: new ship, empty entity sets, zero score.
func (g *Game) Reset() {
	t := g.Tuning
	g.Ship = NewShip(t.World.Width, t.World.Height, t.Ship.Width, t.Ship.Height, t.Ship.Speed)
	g.Projectiles = g.Projectiles[:0]
	g.Meteoroids = g.Meteoroids[:0]
	g.pending = g.pending[:0]
	g.Score = 0
	g.Lives = t.Ship.Lives
	g.Elapsed = 0
	g.spawner = NewSpawner(t.Spawn, t.World.Width, g.rng)
	g.Phase = PhasePlaying
}

// LookaheadSpan returns the world-x span covered by the minimap.
func (g *Game) LookaheadSpan() float64 {
	return g.Tuning.World.Width * g.Tuning.Minimap.LookaheadFactor
}

// activeMeteoroids counts meteoroids that still participate.
func (g *Game) activeMeteoroids() int {
	n := 0
	for _, m := range g.Meteoroids {
		if m.Active() {
			n++
		}
	}
	return n
}

// queueSplit spawns the configured number of smaller fragments at the
// destroyed meteoroid's position with divergent velocities. Fragments
// join the simulation after the current collision pass.
func (g *Game) queueSplit(m *Meteoroid) {
	if !g.Tuning.Split.Enabled {
		return
	}
	child, ok := m.Class.Smaller()
	if !ok {
		return
	}
	for i := 0; i < g.Tuning.Split.Children; i++ {
		vx := m.VX + (g.rng.Float64()*2-1)*g.Tuning.Spawn.MaxDrift
		vy := m.VY * (0.8 + g.rng.Float64()*0.4)
		g.pending = append(g.pending, NewMeteoroid(m.X, m.Y, vx, vy, child, g.rng))
	}
}

// flushPending adds queued fragments to the meteoroid set.
func (g *Game) flushPending() {
	g.Meteoroids = append(g.Meteoroids, g.pending...)
	g.pending = g.pending[:0]
}
