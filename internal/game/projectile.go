package game

import (
	"github.com/kh7designs/interstellar/internal/physics"
)

// Projectile is a shot fired by the ship, traveling straight up.
// X,Y is the top-left of its hitbox.
type Projectile struct {
	X, Y float64
	W, H float64
	VY   float64 // negative: up

	active bool
}

// NewProjectile creates a projectile leaving the ship's nose.
func NewProjectile(noseX, noseY, w, h, speed float64) *Projectile {
	return &Projectile{
		X:      noseX - w/2,
		Y:      noseY - h,
		W:      w,
		H:      h,
		VY:     -speed,
		active: true,
	}
}

// Advance applies velocity.
func (p *Projectile) Advance(dt float64) {
	p.Y += p.VY * dt
}

// Active reports whether the projectile is still live.
func (p *Projectile) Active() bool {
	return p.active
}

// Deactivate marks the projectile spent. Once inactive it is excluded
// from further collision pairs the same tick and purged afterwards.
func (p *Projectile) Deactivate() {
	p.active = false
}

// OffTop reports whether the projectile has fully left the screen top.
func (p *Projectile) OffTop() bool {
	return p.Y+p.H < 0
}

// Hitbox returns the projectile's bounding rect.
func (p *Projectile) Hitbox() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

var _ Entity = (*Projectile)(nil)
