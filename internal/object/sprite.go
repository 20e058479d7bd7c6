package object

import (
	"math"

	"github.com/tomz197/meteordodge/internal/physics"
)

// Part identifies a piece of the player sprite so renderers can shade it.
type Part int

const (
	PartWing Part = iota
	PartBody
	PartHead
	PartBeak
)

// Shape is one closed polygon of a sprite in world space.
type Shape struct {
	Part   Part
	Points []physics.Point
}

// Circle is a filled disc in world space.
type Circle struct {
	X, Y, R float64
}

// ellipseSteps is how many vertices approximate an ellipse.
const ellipseSteps = 16

// pterodactyl outlines in sprite-relative units: x in widths, y in heights,
// origin at the sprite center.
var (
	backWing  = []physics.Point{{X: -.15, Y: .1}, {X: -.45, Y: -.25}, {X: -.4, Y: -.5}, {X: -.2, Y: -.4}, {X: -.1, Y: -.2}}
	frontWing = []physics.Point{{X: .05, Y: .15}, {X: .4, Y: -.2}, {X: .35, Y: -.6}, {X: .2, Y: -.5}, {X: .1, Y: -.25}}
	tail      = []physics.Point{{X: -.25, Y: .05}, {X: -.4, Y: .2}, {X: -.35, Y: .15}, {X: -.25, Y: .1}}
	crest     = []physics.Point{{X: .4, Y: -.25}, {X: .45, Y: -.35}, {X: .5, Y: -.3}, {X: .45, Y: -.2}}
	beak      = []physics.Point{{X: .48, Y: -.08}, {X: .7, Y: -.15}, {X: .65, Y: -.05}, {X: .5, Y: -.02}}
)

// PterodactylShapes returns the player sprite centered at x, y, back to
// front. The sprite is decoration; collisions use Player.HitBox.
func PterodactylShapes(x, y, w, h float64) []Shape {
	scale := func(pts []physics.Point) []physics.Point {
		out := make([]physics.Point, len(pts))
		for i, p := range pts {
			out[i] = physics.Point{X: x + p.X*w, Y: y + p.Y*h}
		}
		return out
	}
	return []Shape{
		{PartWing, scale(backWing)},
		{PartWing, scale(tail)},
		{PartBody, Ellipse(x, y, w*.25, h*.35, 0)},
		{PartHead, Ellipse(x+w*.2, y-h*.05, w*.12, h*.2, -.2)},
		{PartHead, Ellipse(x+w*.35, y-h*.1, w*.18, h*.25, -.15)},
		{PartHead, scale(crest)},
		{PartBeak, scale(beak)},
		{PartWing, scale(frontWing)},
	}
}

// TrailOutline returns the flame ellipse trailing a meteor. It extends to
// the right, opposite to the direction of travel.
func TrailOutline(x, y, size float64) []physics.Point {
	return Ellipse(x+size*.5, y, size*1.5, size*.5, 0)
}

// CloudPuffs returns the three discs of a cloud anchored at p.
func CloudPuffs(p physics.Point) [3]Circle {
	return [3]Circle{
		{X: p.X, Y: p.Y, R: 30},
		{X: p.X + 25, Y: p.Y, R: 35},
		{X: p.X + 50, Y: p.Y, R: 30},
	}
}

// Ellipse approximates an ellipse rotated by rot radians with a polygon.
func Ellipse(cx, cy, rx, ry, rot float64) []physics.Point {
	sin, cos := math.Sincos(rot)
	out := make([]physics.Point, ellipseSteps)
	for i := range out {
		a := 2 * math.Pi * float64(i) / ellipseSteps
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		out[i] = physics.Point{
			X: cx + ex*cos - ey*sin,
			Y: cy + ex*sin + ey*cos,
		}
	}
	return out
}
