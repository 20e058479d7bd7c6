package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   string
		want Input
		key  KeyCode // Discrete key expected in Keys; -1 for none
	}{
		{"up arrow", "\x1b[A", Input{Up: true}, KeyUp},
		{"down arrow", "\x1b[B", Input{Down: true}, KeyDown},
		{"wasd", "w", Input{Up: true}, KeyRune},
		{"ijkl", "k", Input{Down: true}, KeyRune},
		{"space", " ", Input{Space: true}, KeyRune},
		{"enter cr", "\r", Input{Enter: true}, KeyEnter},
		{"enter lf", "\n", Input{Enter: true}, KeyEnter},
		{"backspace del", "\x7f", Input{}, KeyBackspace},
		{"backspace bs", "\b", Input{}, KeyBackspace},
		{"escape then text", "\x1bx", Input{}, KeyEscape},
		{"ctrl-c", "\x03", Input{Quit: true}, KeyInterrupt},
		{"quit", "q", Input{Quit: true}, KeyRune},
		{"unknown csi", "\x1b[C", Input{}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			got := s.parse([]byte(tt.in), now)
			if got.Quit != tt.want.Quit || got.Up != tt.want.Up || got.Down != tt.want.Down ||
				got.Space != tt.want.Space || got.Enter != tt.want.Enter {
				t.Fatalf("parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if tt.key < 0 {
				if len(got.Keys) != 0 {
					t.Fatalf("parse(%q) Keys = %+v, want none", tt.in, got.Keys)
				}
				return
			}
			if !got.Has(tt.key) {
				t.Fatalf("parse(%q) Keys = %+v, want code %d", tt.in, got.Keys, tt.key)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	s := newStream()
	got := s.parse([]byte("Zo\xc3\xab\x1b[A \r\x7f"), time.Now())
	if !got.Up || !got.Enter {
		t.Fatalf("held keys lost: %+v", got)
	}

	want := []Key{
		{Code: KeyRune, Rune: 'Z'},
		{Code: KeyRune, Rune: 'o'},
		{Code: KeyRune, Rune: 'ë'},
		{Code: KeyUp},
		{Code: KeyRune, Rune: ' '},
		{Code: KeyEnter},
		{Code: KeyBackspace},
	}
	if len(got.Keys) != len(want) {
		t.Fatalf("Keys = %+v, want %+v", got.Keys, want)
	}
	for i := range want {
		if got.Keys[i] != want[i] {
			t.Fatalf("Keys[%d] = %+v, want %+v", i, got.Keys[i], want[i])
		}
	}
	if !got.Has(KeyEnter) || got.Has(KeyEscape) {
		t.Fatal("Has disagrees with Keys")
	}
}

func TestArrowSplitAcrossReads(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		reads []string
	}{
		{"after escape", []string{"\x1b", "[A"}},
		{"after bracket", []string{"\x1b[", "A"}},
		{"three reads", []string{"\x1b", "[", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			var keys []Key
			var last Input
			for _, r := range tt.reads {
				last = s.parse([]byte(r), now)
				keys = append(keys, last.Keys...)
			}
			if !last.Up {
				t.Fatal("split arrow did not register as Up")
			}
			if len(keys) != 1 || keys[0].Code != KeyUp {
				t.Fatalf("Keys = %+v, want a single KeyUp", keys)
			}
		})
	}
}

func TestLoneEscapeNextRead(t *testing.T) {
	s := newStream()
	now := time.Now()
	if in := s.parse([]byte("ab\x1b"), now); in.Has(KeyEscape) || len(in.Keys) != 2 {
		t.Fatalf("trailing escape should wait for the next read, got %+v", in.Keys)
	}
	if in := s.parse(nil, now); !in.Has(KeyEscape) {
		t.Fatal("escape with nothing after it should be reported")
	}
	if in := s.parse(nil, now); len(in.Keys) != 0 {
		t.Fatalf("escape reported twice: %+v", in.Keys)
	}
}

func TestDoubleEscape(t *testing.T) {
	s := newStream()
	now := time.Now()
	first := s.parse([]byte("\x1b\x1b"), now)
	second := s.parse(nil, now)
	if !first.Has(KeyEscape) || !second.Has(KeyEscape) {
		t.Fatalf("want one escape per read, got %+v then %+v", first.Keys, second.Keys)
	}
}

func TestHeldKeyExpires(t *testing.T) {
	s := newStream()
	start := time.Now()
	if in := s.parse([]byte("w"), start); !in.Up {
		t.Fatal("Up should be held right after the press")
	}
	if in := s.parse(nil, start.Add(keyHoldDuration/2)); !in.Up {
		t.Fatal("Up should still be held within the hold window")
	}
	if in := s.parse(nil, start.Add(keyHoldDuration*2)); in.Up {
		t.Fatal("Up should be released after the hold window")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.parse([]byte("\r"), now)
	ResetKeyInput(s)
	if in := s.parse(nil, now); in.Enter {
		t.Fatal("Enter should be forgotten after reset")
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed stream never reported Quit")
}

func TestTyped(t *testing.T) {
	if (Input{}).Typed() {
		t.Fatal("empty input should not count as typed")
	}
	if !(Input{Pressed: []byte{'a'}}).Typed() {
		t.Fatal("input with bytes should count as typed")
	}
}
