package loop

import "math/rand"

// starCount matches the density of the stock background.
const starCount = 70

// star is a background pinprick drifting down the playfield.
type star struct {
	x, y  float64
	speed float64
}

// starfield is the scrolling background. Pure ambience: it never
// touches the simulation.
type starfield struct {
	stars          []star
	worldW, worldH float64
	rng            *rand.Rand
}

func newStarfield(worldW, worldH float64, rng *rand.Rand) *starfield {
	f := &starfield{
		stars:  make([]star, starCount),
		worldW: worldW,
		worldH: worldH,
		rng:    rng,
	}
	for i := range f.stars {
		f.stars[i] = star{
			x:     rng.Float64() * worldW,
			y:     rng.Float64() * worldH,
			speed: 40 + rng.Float64()*100,
		}
	}
	return f
}

// update drifts stars downward, recycling them above the top edge.
func (f *starfield) update(dt float64) {
	for i := range f.stars {
		s := &f.stars[i]
		s.y += s.speed * dt * 0.6
		if s.y > f.worldH+5 {
			s.y = -f.rng.Float64() * 30
			s.x = f.rng.Float64() * f.worldW
			s.speed = 40 + f.rng.Float64()*100
		}
	}
}
