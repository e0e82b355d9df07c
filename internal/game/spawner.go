package game

import (
	"math"
	"math/rand"

	"github.com/kh7designs/interstellar/internal/config"
)

// Spawner emits meteoroids at an interval that shrinks as the run goes
// on. The difficulty curve is a deterministic function of elapsed time:
// the interval steps down to a floor and the speed multiplier steps up
// to a ceiling, so difficulty never regresses and never diverges.
type Spawner struct {
	tuning config.SpawnTuning
	worldW float64
	timer  float64
	rng    *rand.Rand
}

// NewSpawner creates a spawner. The rng is the only randomness source,
// so tests can supply a seeded one.
func NewSpawner(t config.SpawnTuning, worldW float64, rng *rand.Rand) *Spawner {
	return &Spawner{tuning: t, worldW: worldW, rng: rng}
}

// tier returns the difficulty tier for an elapsed time.
func (s *Spawner) tier(elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return math.Floor(elapsed / s.tuning.RampEvery)
}

// SpawnInterval returns the seconds between spawns at the given elapsed
// time. Monotonically non-increasing, floored at MinInterval.
func (s *Spawner) SpawnInterval(elapsed float64) float64 {
	interval := s.tuning.BaseInterval - s.tuning.RampStep*s.tier(elapsed)
	return math.Max(interval, s.tuning.MinInterval)
}

// SpeedMultiplier returns the fall-speed multiplier at the given
// elapsed time. Monotonically non-decreasing, capped at MaxSpeedMultiplier.
func (s *Spawner) SpeedMultiplier(elapsed float64) float64 {
	mult := 1 + s.tuning.SpeedRampStep*s.tier(elapsed)
	return math.Min(mult, s.tuning.MaxSpeedMultiplier)
}

// sizeWeights returns the class distribution for a tier. Higher tiers
// shift weight from small toward large; weights always sum to 1.
func (s *Spawner) sizeWeights(elapsed float64) (small, medium, large float64) {
	tier := s.tier(elapsed)
	small = math.Max(0.20, 0.50-0.03*tier)
	large = math.Min(0.45, 0.15+0.03*tier)
	medium = 1 - small - large
	return small, medium, large
}

// pickClass draws a size class from the tier-weighted distribution.
func (s *Spawner) pickClass(elapsed float64) SizeClass {
	small, medium, _ := s.sizeWeights(elapsed)
	roll := s.rng.Float64()
	switch {
	case roll < small:
		return SizeSmall
	case roll < small+medium:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Update accumulates dt and, when the current interval has elapsed,
// returns a freshly spawned meteoroid. Returns nil on ticks with no
// spawn. When active has reached the cap the spawn is skipped silently
// (the timer still resets, so the cadence is preserved).
func (s *Spawner) Update(dt, elapsed float64, active int) *Meteoroid {
	s.timer += dt
	if s.timer < s.SpawnInterval(elapsed) {
		return nil
	}
	s.timer = 0

	if active >= s.tuning.MaxActive {
		return nil
	}
	return s.spawn(elapsed)
}

// spawn builds a meteoroid above the top edge with randomized position,
// class, fall speed and drift.
func (s *Spawner) spawn(elapsed float64) *Meteoroid {
	class := s.pickClass(elapsed)
	radius := class.Radius()

	x := s.rng.Float64() * (s.worldW + s.tuning.Overscan)
	y := -radius

	mult := s.SpeedMultiplier(elapsed)
	vy := (s.tuning.MinSpeed + s.rng.Float64()*(s.tuning.MaxSpeed-s.tuning.MinSpeed)) * mult
	vx := (s.rng.Float64()*2 - 1) * s.tuning.MaxDrift

	return NewMeteoroid(x, y, vx, vy, class, s.rng)
}
