// Package draw renders to a terminal: a half-block pixel canvas for shapes
// and a chunked writer for text overlays.
package draw

import (
	"fmt"
	"io"

	"github.com/tomz197/meteordodge/internal/physics"
)

// Point is a 2D coordinate in logical space.
type Point = physics.Point

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
