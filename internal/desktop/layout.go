package desktop

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/loop/form"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/object"
)

// LineHeight is the distance between text rows in pixels.
const LineHeight = 18

// Style picks the color a line is drawn in.
type Style int

const (
	StyleNormal Style = iota
	StyleTitle
	StyleHint
	StyleError
)

// TextLine is a line of text placed on the playfield. X and Y are the
// baseline origin.
type TextLine struct {
	Text  string
	X, Y  int
	Style Style
}

// TextWidth returns the width of s in the 7x13 face.
func TextWidth(s string) int {
	return len([]rune(s)) * basicfont.Face7x13.Advance
}

// layout accumulates centered rows.
type layout struct {
	lines   []TextLine
	centerX int
}

func (l *layout) center(row int, s string, style Style) {
	if s == "" {
		return
	}
	l.lines = append(l.lines, TextLine{Text: s, X: l.centerX - TextWidth(s)/2, Y: row, Style: style})
}

// Lines lays out the text overlay for v.
func Lines(v View) []TextLine {
	snap := v.Snapshot
	l := &layout{centerX: snap.Screen.Width / 2}
	top := snap.Screen.Height / 6
	blink := object.ShouldRenderBlink(float64(v.Frames)/config.TargetFPS, config.BlinkFrequency)

	switch snap.Phase {
	case session.PhaseNotStarted:
		l.center(top, "M E T E O R   D O D G E", StyleTitle)
		l.center(top+2*LineHeight, "Guide the pterodactyl through the meteor shower", StyleHint)
		l.center(top+4*LineHeight, "Up / W  fly up    Down / S  fly down    Q  quit", StyleHint)
		if blink {
			l.center(top+6*LineHeight, "Press SPACE to Start", StyleNormal)
		}
		if snap.HasIdentity {
			l.center(top+7*LineHeight, "Playing as "+snap.Identity.FirstName+" "+strings.ToUpper(snap.Identity.LastInitial)+".", StyleHint)
		}
		leaderboard(l, v, top+9*LineHeight)

	case session.PhaseAwaitingIdentity:
		f := v.Form
		l.center(top, "Who is flying?", StyleTitle)
		l.center(top+3*LineHeight, "First name", StyleHint)
		l.center(top+4*LineHeight, field(f.FirstName(), f.Focus == form.FieldFirstName && blink), StyleNormal)
		l.center(top+6*LineHeight, "Last initial", StyleHint)
		l.center(top+7*LineHeight, field(f.LastInitial(), f.Focus == form.FieldLastInitial && blink), StyleNormal)
		l.center(top+9*LineHeight, "ENTER to continue   BACKSPACE to edit   ESC to go back", StyleHint)
		l.center(top+11*LineHeight, f.Error, StyleError)

	case session.PhasePlaying:
		l.lines = append(l.lines, TextLine{
			Text: fmt.Sprintf("Score: %d | Wave: %d", snap.Score, snap.Wave),
			X:    10,
			Y:    20,
		})

	case session.PhaseEnded:
		l.center(top, "G A M E   O V E R", StyleTitle)
		l.center(top+2*LineHeight, fmt.Sprintf("Final score: %d", snap.Score), StyleNormal)
		l.center(top+3*LineHeight, fmt.Sprintf("Wave reached: %d", snap.Wave), StyleNormal)
		if blink {
			l.center(top+5*LineHeight, "Press SPACE to play again", StyleNormal)
		}
		leaderboard(l, v, top+7*LineHeight)
	}
	return l.lines
}

func leaderboard(l *layout, v View, row int) {
	l.center(row, "Leaderboard", StyleTitle)
	if len(v.Board) == 0 {
		l.center(row+LineHeight, "No scores yet!", StyleHint)
		return
	}
	for i, e := range v.Board {
		l.center(row+(i+1)*LineHeight, fmt.Sprintf("%2d. %s", i+1, e.String()), StyleNormal)
	}
}

// field renders a text input with a cursor when focused.
func field(value string, cursor bool) string {
	if cursor {
		return value + "_"
	}
	return value + " "
}
