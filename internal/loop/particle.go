package loop

import (
	"math"
	"sync"
)

// particlePool reuses particle objects across explosions.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is a short-lived visual fragment of an explosion.
type particle struct {
	x, y        float64
	vx, vy      float64
	lifetime    float64
	maxLifetime float64
	drag        float64
}

// spawnExplosion adds a circular burst of particles at a world position.
func (s *session) spawnExplosion(x, y float64, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + s.rng.Float64())
		life := lifetime * (0.5 + s.rng.Float64()*0.5)

		p := particlePool.Get().(*particle)
		p.x = x
		p.y = y
		p.vx = math.Cos(angle) * spd
		p.vy = math.Sin(angle) * spd
		p.lifetime = life
		p.maxLifetime = life
		p.drag = 0.95
		s.particles = append(s.particles, p)
	}
}

// updateParticles advances all particles and releases expired ones.
func (s *session) updateParticles(dt float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			particlePool.Put(p)
			continue
		}

		dragFactor := math.Pow(p.drag, dt*60) // Normalize drag to ~60fps
		p.vx *= dragFactor
		p.vy *= dragFactor
		p.x += p.vx * dt
		p.y += p.vy * dt

		kept = append(kept, p)
	}
	s.particles = kept
}

// faded reports whether the particle is in its dim tail (< 25% lifetime).
func (p *particle) faded() bool {
	return p.maxLifetime > 0 && p.lifetime/p.maxLifetime < 0.25
}
