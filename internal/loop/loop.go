// Package loop drives the game: one thread runs the Input → Simulate →
// Render cycle at a capped frame rate over any terminal io.Writer.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/kh7designs/interstellar/internal/config"
	"github.com/kh7designs/interstellar/internal/draw"
	"github.com/kh7designs/interstellar/internal/game"
	"github.com/kh7designs/interstellar/internal/input"
	"github.com/kh7designs/interstellar/internal/minimap"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxTickDelta caps the simulated step after a stall (resize, SSH
// hiccup) so entities never tunnel through each other.
const maxTickDelta = 0.1

// footerRows is the terminal area below the playfield reserved for the
// minimap strip.
const footerRows = 2

// Options configures a game session.
type Options struct {
	Tuning   *config.Tuning    // nil: defaults
	TermSize draw.TermSizeFunc // nil: local stdout size
	Seed     int64             // 0: time-based
}

// session bundles the per-connection state of one running game.
type session struct {
	game      *game.Game
	stream    *input.Stream
	canvas    *draw.Canvas
	out       *draw.ChunkWriter
	projector minimap.Projector
	stars     *starfield
	particles []*particle
	rng       *rand.Rand

	prevPause bool
	prevStart bool
	prevPhase game.Phase
}

// Run plays one full session: reads raw bytes from r, renders to w,
// returns when the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	tuning := config.Default()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	sizeFunc := opts.TermSize
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	s := &session{
		game:      game.New(tuning, rng),
		stream:    input.StartStream(r),
		canvas:    draw.NewScaledCanvas(termWidth, max(termHeight-footerRows, 1), tuning.World.Width, tuning.World.Height),
		out:       draw.NewChunkWriter(w, 0, 0),
		stars:     newStarfield(tuning.World.Width, tuning.World.Height, rng),
		rng:       rng,
		prevPhase: game.PhaseMenu,
	}
	s.projector = minimap.NewProjector(s.game.LookaheadSpan(), termWidth)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart
		if dt > maxTickDelta {
			dt = maxTickDelta
		}

		// ===== INPUT PHASE =====
		in := s.stream.Read()
		if in.Quit {
			break
		}
		intent := s.intentFrom(in)

		// ===== SIMULATE PHASE =====
		ev := s.game.Tick(intent, dt)
		s.applyEvents(ev)
		if s.game.Phase != game.PhasePaused {
			s.stars.update(dt)
			s.updateParticles(dt)
		}
		if s.game.Phase != s.prevPhase {
			// Screen switch: a held key must not leak into the next phase.
			s.stream.Reset()
			s.prevPhase = s.game.Phase
		}

		// ===== RENDER PHASE =====
		if err := s.resize(sizeFunc); err != nil {
			return err
		}
		if err := s.render(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// intentFrom converts raw key state to the simulation's intent set.
// Pause and start are edge-triggered so a held key does not toggle the
// phase every tick.
func (s *session) intentFrom(in input.Intents) game.Intent {
	intent := game.Intent{
		Left:  in.Left,
		Right: in.Right,
		Fire:  in.Fire,
		Pause: in.Pause && !s.prevPause,
		Start: in.Start && !s.prevStart,
		Quit:  in.Quit,
	}
	s.prevPause = in.Pause
	s.prevStart = in.Start
	return intent
}

// applyEvents turns simulation events into presentation effects.
func (s *session) applyEvents(ev game.Events) {
	for _, impact := range ev.Destroyed {
		count := int(impact.Class) * 4
		s.spawnExplosion(impact.X, impact.Y, count, 120.0, 0.5)
	}
	if ev.ShipHit && !ev.GameOver {
		box := s.game.Ship.Hitbox()
		s.spawnExplosion(box.CenterX(), box.CenterY(), 10, 150.0, 0.4)
	}
	if ev.GameOver {
		box := s.game.Ship.Hitbox()
		s.spawnExplosion(box.CenterX(), box.CenterY(), 24, 180.0, 1.0)
	}
}

// resize tracks the terminal size and rescales the canvas and minimap
// strip when it changes.
func (s *session) resize(sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	fieldRows := max(termHeight-footerRows, 1)
	if termWidth != s.canvas.TerminalWidth() || fieldRows != s.canvas.TerminalHeight() {
		s.canvas.Resize(termWidth, fieldRows)
		s.projector = minimap.NewProjector(s.game.LookaheadSpan(), termWidth)
		draw.ClearScreen(s.out)
	}
	return nil
}
