// Package object holds the game entities: the player, meteors, the wave
// scheduler that paces them, and background decoration.
package object

// Screen represents playfield dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a screen of the given size with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// ShouldRenderBlink reports whether a blinking prompt is in its visible half
// after elapsed seconds. frequency is in toggles per second; the prompt
// starts visible.
func ShouldRenderBlink(elapsed float64, frequency float64) bool {
	if elapsed <= 0 {
		return true
	}
	phase := int(elapsed * frequency)
	return phase%2 == 0
}
