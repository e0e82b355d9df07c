// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Rect is an axis-aligned bounding box. X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Circle is a bounding circle centered at X,Y.
type Circle struct {
	X, Y, R float64
}

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps checks if two rects intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Overlaps checks if two circles intersect.
func (c Circle) Overlaps(o Circle) bool {
	return CirclesOverlap(c.X, c.Y, c.R, o.X, o.Y, o.R)
}

// OverlapsRect checks if the circle intersects an axis-aligned rect.
// Tests against the closest point on the rect to the circle center.
func (c Circle) OverlapsRect(r Rect) bool {
	nearX := clamp(c.X, r.X, r.X+r.W)
	nearY := clamp(c.Y, r.Y, r.Y+r.H)
	return DistanceSquared(c.X, c.Y, nearX, nearY) <= c.R*c.R
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
