package loop

import (
	"math"
	"strings"

	"github.com/kh7designs/interstellar/internal/draw"
	"github.com/kh7designs/interstellar/internal/game"
	"github.com/kh7designs/interstellar/internal/minimap"
)

// shipBlinkFrequency is the blink rate (Hz) while invulnerable.
const shipBlinkFrequency = 10.0

// shouldRenderBlink returns false on the "off" phases of the blink
// cycle while remaining > 0, true otherwise.
func shouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	phase := int(remaining * frequency)
	return phase%2 != 0
}

// render draws one full frame: playfield canvas, footer strip and
// phase overlay, then flushes in network-friendly chunks.
func (s *session) render() error {
	g := s.game

	draw.ClearScreen(s.out)
	s.canvas.Clear()

	for _, st := range s.stars.stars {
		s.canvas.SetFloat(st.x, st.y)
	}

	if g.Phase != game.PhaseMenu {
		s.drawProjectiles()
		s.drawMeteoroids()
		s.drawShip()
		s.drawParticles()
	}

	s.canvas.Render(s.out)
	s.renderFooter()
	s.renderOverlay()

	return s.out.Flush()
}

func (s *session) drawShip() {
	ship := s.game.Ship
	if !ship.Active() {
		return
	}
	if !shouldRenderBlink(ship.InvulnerableFor(s.game.Elapsed), shipBlinkFrequency) {
		return
	}

	// Triangle: nose at top center, wings at the bottom corners.
	triangle := s.canvas.BorrowPoints(3)
	triangle[0] = draw.Point{X: ship.X + ship.W/2, Y: ship.Y}
	triangle[1] = draw.Point{X: ship.X, Y: ship.Y + ship.H}
	triangle[2] = draw.Point{X: ship.X + ship.W, Y: ship.Y + ship.H}
	s.canvas.DrawPolygon(triangle, true)
}

func (s *session) drawProjectiles() {
	for _, p := range s.game.Projectiles {
		if !p.Active() {
			continue
		}
		x := p.X + p.W/2
		s.canvas.DrawLine(draw.Point{X: x, Y: p.Y}, draw.Point{X: x, Y: p.Y + p.H})
	}
}

func (s *session) drawMeteoroids() {
	for _, m := range s.game.Meteoroids {
		if !m.Active() {
			continue
		}
		n := len(m.Vertices)
		points := s.canvas.BorrowPoints(n)
		for i, dist := range m.Vertices {
			vertAngle := m.Angle + float64(i)*2*math.Pi/float64(n)
			points[i] = draw.Point{
				X: m.X + math.Cos(vertAngle)*dist,
				Y: m.Y + math.Sin(vertAngle)*dist,
			}
		}
		s.canvas.DrawPolygon(points, false)
	}
}

func (s *session) drawParticles() {
	for _, p := range s.particles {
		if p.faded() {
			continue
		}
		s.canvas.SetFloat(p.x, p.y)
	}
}

// blipGlyphs maps size classes to strip glyphs, heavier for bigger rocks.
var blipGlyphs = map[game.SizeClass]rune{
	game.SizeSmall:  draw.BlockLight,
	game.SizeMedium: draw.BlockMedium,
	game.SizeLarge:  draw.BlockDark,
}

// renderFooter draws the separator and the look-ahead minimap strip
// below the playfield. Dots mark the span visible on screen; blips to
// the right of the divider are meteoroids that have not entered yet.
func (s *session) renderFooter() {
	termW := s.canvas.TerminalWidth()
	fieldRows := s.canvas.TerminalHeight()
	g := s.game

	s.out.WriteAt(1, fieldRows+1, strings.Repeat("─", termW))

	strip := make([]rune, termW)
	viewCols := s.projector.ViewCols(g.Tuning.World.Width)
	for i := range strip {
		if i < viewCols {
			strip[i] = '·'
		} else {
			strip[i] = ' '
		}
	}
	if viewCols > 0 && viewCols < termW {
		strip[viewCols] = '│'
	}

	s.placeBlips(strip, s.projector.Project(g.Meteoroids))

	if g.Phase != game.PhaseMenu && g.Ship.Active() {
		if col, ok := s.projector.ColOf(g.Ship.Hitbox().CenterX()); ok {
			strip[col] = '▲'
		}
	}

	s.out.WriteAt(1, fieldRows+2, string(strip))
}

// placeBlips overlays meteoroid blips; a bigger class wins a contested cell.
func (s *session) placeBlips(strip []rune, blips []minimap.Blip) {
	rank := func(r rune) game.SizeClass {
		for class, glyph := range blipGlyphs {
			if glyph == r {
				return class
			}
		}
		return 0
	}
	for _, b := range blips {
		if b.Col < 0 || b.Col >= len(strip) {
			continue
		}
		if rank(strip[b.Col]) < b.Class {
			strip[b.Col] = blipGlyphs[b.Class]
		}
	}
}
