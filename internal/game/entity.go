// Package game implements the simulation core: entities, spawning,
// collision resolution and the per-tick state machine. It knows nothing
// about terminals or rendering; the loop package consumes read-only
// snapshots of it.
package game

// Entity is the common capability of everything the simulation advances.
type Entity interface {
	// Advance updates the entity by dt seconds of simulated time.
	Advance(dt float64)
	// Active reports whether the entity still participates in the
	// simulation. Inactive entities are purged at the end of the tick.
	Active() bool
}

// Intent is the per-tick input set. The input layer produces it; the
// simulation consumes booleans only and knows nothing about devices.
type Intent struct {
	Left  bool
	Right bool
	Fire  bool
	Pause bool
	Start bool
	Quit  bool
}
