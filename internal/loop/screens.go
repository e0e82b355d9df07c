package loop

import (
	"fmt"

	"github.com/kh7designs/interstellar/internal/game"
)

// renderOverlay draws the HUD and phase-specific text on top of the canvas.
func (s *session) renderOverlay() {
	switch s.game.Phase {
	case game.PhaseMenu:
		s.renderMenu()
	case game.PhasePlaying:
		s.renderHUD()
	case game.PhasePaused:
		s.renderHUD()
		s.renderPaused()
	case game.PhaseGameOver:
		s.renderHUD()
		s.renderGameOver()
	}
}

// writeCentered writes text horizontally centered on a terminal row.
func (s *session) writeCentered(row int, text string) {
	col := s.canvas.TerminalWidth()/2 - len([]rune(text))/2
	if col < 1 {
		col = 1
	}
	s.out.WriteAt(col, row, text)
}

func (s *session) renderMenu() {
	centerY := s.canvas.TerminalHeight() / 2

	s.writeCentered(centerY-3, "I N T E R S T E 1 1 A R")
	s.writeCentered(centerY-1, "Kh7 Designs presents")
	s.writeCentered(centerY+2, "Press ENTER or SPACE to start")
	s.writeCentered(centerY+4, "A/D or Arrows to move, SPACE to shoot, P to pause, Q to quit")
}

func (s *session) renderHUD() {
	g := s.game
	termW := s.canvas.TerminalWidth()

	s.out.WriteAt(2, 1, fmt.Sprintf("Score: %d", g.Score))

	lives := fmt.Sprintf("Lives: %d", g.Lives)
	s.out.WriteAt(termW-len(lives)-1, 1, lives)
}

func (s *session) renderPaused() {
	centerY := s.canvas.TerminalHeight() / 2

	s.writeCentered(centerY-1, "P A U S E D")
	s.writeCentered(centerY+1, "P = resume | Q = quit")
}

func (s *session) renderGameOver() {
	centerY := s.canvas.TerminalHeight() / 2

	s.writeCentered(centerY-2, "G A M E  O V E R")
	s.writeCentered(centerY, fmt.Sprintf("Final score: %d", s.game.Score))
	s.writeCentered(centerY+2, "Press ENTER or SPACE to restart")
}
