package game

import (
	"math"
	"math/rand"

	"github.com/kh7designs/interstellar/internal/physics"
)

// SizeClass is the categorical meteoroid size.
type SizeClass int

const (
	SizeSmall SizeClass = iota + 1
	SizeMedium
	SizeLarge
)

// classInfo carries the per-class lookup data.
type classInfo struct {
	radius float64
	score  int
}

var classTable = map[SizeClass]classInfo{
	SizeSmall:  {radius: 16, score: 10},
	SizeMedium: {radius: 30, score: 20},
	SizeLarge:  {radius: 50, score: 30},
}

// Radius returns the collision radius for the class.
func (c SizeClass) Radius() float64 {
	return classTable[c].radius
}

// Score returns the points awarded for destroying a meteoroid of the class.
func (c SizeClass) Score() int {
	return classTable[c].score
}

// Smaller returns the next class down and whether one exists.
func (c SizeClass) Smaller() (SizeClass, bool) {
	if c <= SizeSmall {
		return c, false
	}
	return c - 1, true
}

// String returns the class name.
func (c SizeClass) String() string {
	switch c {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Meteoroid is a falling space rock. X,Y is its center.
type Meteoroid struct {
	X, Y   float64
	VX, VY float64
	Class  SizeClass

	// Presentation-only rotation and silhouette; advanced with the
	// entity so the renderer stays read-only.
	Angle         float64
	RotationSpeed float64
	Vertices      []float64

	destroyed bool
}

// NewMeteoroid creates a meteoroid of the given class at center (x,y).
// The rng shapes its silhouette and spin only.
func NewMeteoroid(x, y, vx, vy float64, class SizeClass, rng *rand.Rand) *Meteoroid {
	radius := class.Radius()

	// Irregular polygon: 8-12 vertices varying ±30% around the radius.
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = radius * (0.7 + rng.Float64()*0.6)
	}

	return &Meteoroid{
		X:             x,
		Y:             y,
		VX:            vx,
		VY:            vy,
		Class:         class,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 2.0,
		Vertices:      vertices,
	}
}

// Advance applies velocity and rotation.
func (m *Meteoroid) Advance(dt float64) {
	m.X += m.VX * dt
	m.Y += m.VY * dt
	m.Angle += m.RotationSpeed * dt
}

// Active reports whether the meteoroid is still live.
func (m *Meteoroid) Active() bool {
	return !m.destroyed
}

// Destroy marks the meteoroid for removal. Once destroyed it is
// excluded from further collision pairs the same tick.
func (m *Meteoroid) Destroy() {
	m.destroyed = true
}

// Bounds returns the meteoroid's bounding circle.
func (m *Meteoroid) Bounds() physics.Circle {
	return physics.Circle{X: m.X, Y: m.Y, R: m.Class.Radius()}
}

// OffWorld reports whether the meteoroid has fully left the playable
// span: below the screen bottom, or horizontally outside the minimap
// look-ahead span.
func (m *Meteoroid) OffWorld(worldH, spanW float64) bool {
	r := m.Class.Radius()
	if m.Y-r > worldH {
		return true
	}
	return m.X+r < 0 || m.X-r > spanW
}

var _ Entity = (*Meteoroid)(nil)
