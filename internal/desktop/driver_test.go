package desktop

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/meteordodge/internal/input"
	"github.com/tomz197/meteordodge/internal/loop/form"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/score"
)

func newTestDriver(store session.Store) *Driver {
	return NewDriver(Options{Store: store, Logger: log.New(io.Discard), Seed: 7})
}

func keys(s string, extra ...input.KeyCode) []input.Key {
	var ks []input.Key
	for _, r := range s {
		ks = append(ks, input.Key{Code: input.KeyRune, Rune: r})
	}
	for _, c := range extra {
		ks = append(ks, input.Key{Code: c})
	}
	return ks
}

func hasLine(lines []TextLine, want string) bool {
	for _, l := range lines {
		if strings.Contains(l.Text, want) {
			return true
		}
	}
	return false
}

func TestDriverNameEntryStartsGame(t *testing.T) {
	store := score.NewMemoryStore()
	d := newTestDriver(store)

	if !d.Step(Frame{Start: true}) {
		t.Fatal("start should not quit")
	}
	if got := d.View().Snapshot.Phase; got != session.PhaseAwaitingIdentity {
		t.Fatalf("Phase = %v, want awaiting-identity", got)
	}

	// Q is text on the name form.
	if !d.Step(Frame{Quit: true, Keys: keys("Quinn", input.KeyEnter, input.KeyEnter)}) {
		t.Fatal("typing Q on the form quit the game")
	}
	v := d.View()
	if v.Form.FirstName() != "Quinn" || v.Form.Error != form.ErrorMessage {
		t.Fatalf("form = %+v", *v.Form)
	}
	if !hasLine(Lines(v), form.ErrorMessage) {
		t.Fatal("validation message not laid out")
	}

	d.Step(Frame{Keys: keys("z", input.KeyEnter)})
	if got := d.View().Snapshot.Phase; got != session.PhasePlaying {
		t.Fatalf("Phase = %v, want playing", got)
	}
	if !hasLine(Lines(d.View()), "Score: 0 | Wave: 1") {
		t.Fatal("HUD missing")
	}
}

func TestDriverEscapeCancelsNameEntry(t *testing.T) {
	d := newTestDriver(score.NewMemoryStore())
	d.Step(Frame{Start: true})
	d.Step(Frame{Keys: keys("", input.KeyEscape)})
	if got := d.View().Snapshot.Phase; got != session.PhaseNotStarted {
		t.Fatalf("Phase = %v, want not-started", got)
	}
}

func TestDriverQuit(t *testing.T) {
	d := newTestDriver(score.NewMemoryStore())
	if d.Step(Frame{Quit: true}) {
		t.Fatal("Q on the title screen should quit")
	}
}

func TestDriverCrashRefreshesBoard(t *testing.T) {
	store := score.NewMemoryStore()
	_ = store.SaveIdentity(score.Identity{FirstName: "Ada", LastInitial: "L"})
	d := newTestDriver(store)

	d.Step(Frame{Start: true})
	if d.session.Phase != session.PhasePlaying {
		t.Fatalf("Phase = %v, want playing", d.session.Phase)
	}

	// Hold down until a meteor hits or the run gets absurdly long.
	for i := 0; i < 200000 && d.session.Phase == session.PhasePlaying; i++ {
		d.Step(Frame{Down: true})
	}
	if d.session.Phase != session.PhaseEnded {
		t.Fatal("session never ended")
	}

	v := d.View()
	if len(v.Board) != 1 || v.Board[0].FirstName != "Ada" {
		t.Fatalf("Board = %+v", v.Board)
	}
	lines := Lines(v)
	if !hasLine(lines, "G A M E   O V E R") || !hasLine(lines, "Ada L. - Wave") {
		t.Fatalf("game over lines = %+v", lines)
	}
	d.Close()
}

func TestLinesAreCentered(t *testing.T) {
	d := newTestDriver(score.NewMemoryStore())
	v := d.View()
	for _, l := range Lines(v) {
		mid := l.X + TextWidth(l.Text)/2
		if diff := mid - v.Snapshot.Screen.Width/2; diff < -1 || diff > 1 {
			t.Fatalf("%q centered at %d", l.Text, mid)
		}
	}
	if !hasLine(Lines(v), "No scores yet!") {
		t.Fatal("empty leaderboard message missing")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("abc"); got != 21 {
		t.Fatalf("TextWidth = %d, want 21", got)
	}
	if got := TextWidth("ë"); got != 7 {
		t.Fatalf("TextWidth counts bytes, got %d", got)
	}
}
