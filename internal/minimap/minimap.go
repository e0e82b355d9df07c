// Package minimap projects meteoroid positions over the look-ahead
// span onto a compressed strip, so incoming rocks can be seen before
// they reach the visible playfield. The projection is purely derived:
// it owns no state and never mutates its inputs.
package minimap

import (
	"github.com/kh7designs/interstellar/internal/game"
)

// Blip is one projected meteoroid: a strip column and its size class.
type Blip struct {
	Col   int
	Class game.SizeClass
}

// Projector maps world-x coordinates over [0, SpanWidth] linearly onto
// strip columns [0, Cols). SpanWidth is wider than the visible screen,
// per the look-ahead requirement.
type Projector struct {
	SpanWidth float64
	Cols      int
}

// NewProjector creates a projector for the given world span and strip width.
func NewProjector(spanWidth float64, cols int) Projector {
	return Projector{SpanWidth: spanWidth, Cols: cols}
}

// ColOf maps a world x to a strip column. ok is false when the
// position falls outside the span.
func (p Projector) ColOf(x float64) (col int, ok bool) {
	if p.SpanWidth <= 0 || p.Cols <= 0 {
		return 0, false
	}
	if x < 0 || x > p.SpanWidth {
		return 0, false
	}
	col = int(x / p.SpanWidth * float64(p.Cols))
	if col >= p.Cols {
		col = p.Cols - 1
	}
	return col, true
}

// Project returns the blips for all live meteoroids inside the span,
// recomputed from scratch every call. Out-of-span meteoroids are
// dropped, not clamped.
func (p Projector) Project(meteoroids []*game.Meteoroid) []Blip {
	blips := make([]Blip, 0, len(meteoroids))
	for _, m := range meteoroids {
		if !m.Active() {
			continue
		}
		col, ok := p.ColOf(m.X)
		if !ok {
			continue
		}
		blips = append(blips, Blip{Col: col, Class: m.Class})
	}
	return blips
}

// ViewCols returns how many strip columns the visible screen occupies,
// for drawing the view-area marker.
func (p Projector) ViewCols(screenWidth float64) int {
	if p.SpanWidth <= 0 {
		return 0
	}
	cols := int(screenWidth / p.SpanWidth * float64(p.Cols))
	if cols > p.Cols {
		cols = p.Cols
	}
	return cols
}
