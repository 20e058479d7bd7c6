// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
	"unicode"
	"unicode/utf8"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so this bridges the gap between them.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Pressed []byte // Raw bytes received this frame
	Keys    []Key  // Discrete key presses this frame, in order
}

// KeyCode classifies a discrete key press.
type KeyCode int

const (
	KeyRune KeyCode = iota // Printable character in Key.Rune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt // Ctrl+C
	KeyUp
	KeyDown
)

// Key is one key press. Text entry uses these instead of held state so a
// single press acts once.
type Key struct {
	Code KeyCode
	Rune rune
}

// Has reports whether code was pressed this frame.
func (in Input) Has(code KeyCode) bool {
	for _, k := range in.Keys {
		if k.Code == code {
			return true
		}
	}
	return false
}

// Typed reports whether any byte arrived this frame.
func (in Input) Typed() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	up    time.Time
	down  time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for held keys.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Unfinished escape sequence carried to the next parse
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r fails.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
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

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit and an interrupt, so every screen exits.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.parse(buf, time.Now())
	if closed {
		in.Quit = true
		in.Keys = append(in.Keys, Key{Code: KeyInterrupt})
	}
	return in
}

// ResetKeyInput forgets held keys so a press that changed screens does not
// also act on the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// parse updates the key state from buf and builds the frame's input.
// A trailing ESC or ESC [ that arrived this frame is held back, since the
// rest of an arrow sequence may land in the next read. Held bytes with
// nothing new behind them are a real Escape press.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	var keys []Key

	held := len(s.pending)
	if held > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}
	end := len(buf)
	if n := partialEscape(buf); n > 0 && end > held {
		s.pending = append([]byte(nil), buf[end-n:]...)
		end -= n
	}
	buf = buf[:end]

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				keys = append(keys, Key{Code: KeyUp})
			case 'B':
				s.state.down = now
				keys = append(keys, Key{Code: KeyDown})
			}
			// Other arrows and keys are ignored but still consumed.
			i += 2
			continue
		}

		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError && unicode.IsPrint(r) {
				keys = append(keys, Key{Code: KeyRune, Rune: r})
			}
			i += size - 1
			continue
		}

		if k, ok := byteKey(b); ok {
			keys = append(keys, k)
		}
		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Down:    now.Sub(s.state.down) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Pressed: buf,
		Keys:    keys,
	}
}

// partialEscape returns the length of an escape sequence start at the end
// of buf: 1 for ESC, 2 for ESC [, otherwise 0.
func partialEscape(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}

// byteKey maps a single byte to a discrete key press.
func byteKey(b byte) (Key, bool) {
	switch {
	case b >= 0x20 && b < 0x7f:
		return Key{Code: KeyRune, Rune: rune(b)}, true
	case b == '\n' || b == '\r':
		return Key{Code: KeyEnter}, true
	case b == '\b' || b == '\x7f':
		return Key{Code: KeyBackspace}, true
	case b == '\x1b':
		return Key{Code: KeyEscape}, true
	case b == '\x03':
		return Key{Code: KeyInterrupt}, true
	}
	return Key{}, false
}
