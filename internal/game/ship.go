package game

import (
	"github.com/kh7designs/interstellar/internal/physics"
)

// Ship is the player-controlled vessel. It moves horizontally along the
// bottom of the playfield; X,Y is the top-left of its hitbox.
type Ship struct {
	X, Y float64
	W, H float64

	Speed float64 // world units per second

	fireCooldown      float64 // seconds until the next shot is allowed
	invulnerableUntil float64 // elapsed-time deadline; 0 when never hit

	alive bool
}

// NewShip creates a ship centered horizontally near the bottom of the world.
func NewShip(worldW, worldH, w, h, speed float64) *Ship {
	return &Ship{
		X:     worldW/2 - w/2,
		Y:     worldH - h*1.5,
		W:     w,
		H:     h,
		Speed: speed,
		alive: true,
	}
}

// Move shifts the ship horizontally by dir (-1 left, +1 right, 0 idle)
// over dt seconds, clamped to [0, worldW-W].
func (s *Ship) Move(dir, dt, worldW float64) {
	s.X += dir * s.Speed * dt
	if s.X < 0 {
		s.X = 0
	}
	if max := worldW - s.W; s.X > max {
		s.X = max
	}
}

// Advance ticks down the fire cooldown. The ship has no free velocity;
// its position only changes through Move.
func (s *Ship) Advance(dt float64) {
	if s.fireCooldown > 0 {
		s.fireCooldown -= dt
		if s.fireCooldown < 0 {
			s.fireCooldown = 0
		}
	}
}

// Active reports whether the ship is still alive.
func (s *Ship) Active() bool {
	return s.alive
}

// CanFire reports whether the fire cooldown has elapsed.
func (s *Ship) CanFire() bool {
	return s.fireCooldown <= 0
}

// DidFire restarts the fire cooldown after a shot.
func (s *Ship) DidFire(cooldown float64) {
	s.fireCooldown = cooldown
}

// Invulnerable reports whether the ship is inside its post-hit window
// at the given elapsed time.
func (s *Ship) Invulnerable(now float64) bool {
	return now < s.invulnerableUntil
}

// InvulnerableFor returns the remaining window in seconds, zero when
// the ship is vulnerable. Used by the renderer for the blink effect.
func (s *Ship) InvulnerableFor(now float64) float64 {
	if rem := s.invulnerableUntil - now; rem > 0 {
		return rem
	}
	return 0
}

// TakeHit opens the invulnerability window.
func (s *Ship) TakeHit(now, window float64) {
	s.invulnerableUntil = now + window
}

// Kill marks the ship destroyed.
func (s *Ship) Kill() {
	s.alive = false
}

// Hitbox returns the ship's bounding rect.
func (s *Ship) Hitbox() physics.Rect {
	return physics.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

var _ Entity = (*Ship)(nil)
