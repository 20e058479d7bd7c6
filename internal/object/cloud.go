package object

import (
	"math"

	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/physics"
)

// cloudMargin lets clouds scroll fully off screen before wrapping.
const cloudMargin = 50.0

// Clouds returns the anchor of each background cloud at the given frame.
// Clouds drift right to left and wrap around.
func Clouds(frame int, screen Screen) [config.CloudCount]physics.Point {
	var out [config.CloudCount]physics.Point
	span := float64(screen.Width) + 2*cloudMargin
	for i := range out {
		x := float64(screen.Width) + cloudMargin - float64(frame)*config.CloudDrift + float64(i)*config.CloudSpacing
		x = math.Mod(x, span)
		if x < 0 {
			x += span
		}
		out[i] = physics.Point{
			X: x - cloudMargin,
			Y: config.CloudTopRow + float64(i)*config.CloudRowStep,
		}
	}
	return out
}
