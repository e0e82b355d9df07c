// Package input turns a raw terminal byte stream into per-tick intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Intents is the raw key state for one frame. The loop converts it to
// the simulation's intent set (and derives edges for pause/start).
type Intents struct {
	Quit  bool
	Left  bool
	Right bool
	Fire  bool
	Pause bool
	Start bool
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	fire  time.Time
	pause time.Time
	start time.Time
}

// Stream delivers input bytes via a channel and tracks key state so
// held keys and combinations survive terminal auto-repeat gaps.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes from the stream (non-blocking),
// handles arrow-key escape sequences, and reports which intents are
// currently held.
func (s *Stream) Read() Intents {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return Intents{Quit: true}
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'A', 'B': // Up/down arrows unused
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Intents{
		Quit:  held(s.state.quit),
		Left:  held(s.state.left),
		Right: held(s.state.right),
		Fire:  held(s.state.fire),
		Pause: held(s.state.pause),
		Start: held(s.state.start),
	}
}

// applyByte updates the key state timestamps for a single byte.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // q or Ctrl-C
		s.state.quit = now
	case 'a', 'A', 'j', 'J':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case ' ':
		s.state.fire = now
	case 'p', 'P', '\x1b': // bare escape also pauses
		s.state.pause = now
	case '\n', '\r':
		s.state.start = now
	}
}

// Reset clears all key state, e.g. when switching screens so a held
// key does not leak into the next phase.
func (s *Stream) Reset() {
	s.state = keyState{}
}
