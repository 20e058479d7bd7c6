package object

import (
	"math"

	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/physics"
	"github.com/tomz197/meteordodge/internal/random"
)

// Meteor is a star-shaped rock drifting right to left.
type Meteor struct {
	X, Y  float64 // Position (polygon center)
	Size  float64 // Base radius
	Speed float64 // Pixels per tick, fixed at spawn

	// Polygon in polar form; vertex i sits at Angles[i], Radii[i].
	Angles [config.MeteorVertices]float64
	Radii  [config.MeteorVertices]float64

	// Local-space vertices derived from Angles/Radii once at creation.
	Vertices [config.MeteorVertices]physics.Point
}

// NewMeteor creates a meteor just past the right edge of the screen.
// Its vertical position keeps the whole rock on screen.
func NewMeteor(rng random.Source, gameSpeed float64, screen Screen) *Meteor {
	size := random.Uniform(rng, config.MeteorMinSize, config.MeteorMinSize+config.MeteorSizeRange)

	m := &Meteor{Size: size}
	for i := 0; i < config.MeteorVertices; i++ {
		m.Angles[i] = 2 * math.Pi / config.MeteorVertices * float64(i)
		m.Radii[i] = size * random.Uniform(rng, config.MeteorMinRadiusPct, 1)
	}
	for i := range m.Vertices {
		m.Vertices[i] = physics.Point{
			X: math.Cos(m.Angles[i]) * m.Radii[i],
			Y: math.Sin(m.Angles[i]) * m.Radii[i],
		}
	}

	m.X = float64(screen.Width) + size
	m.Y = random.Uniform(rng, size, float64(screen.Height)-size)
	m.Speed = gameSpeed + random.Uniform(rng, 0, config.MeteorSpeedJitter)
	return m
}

// Advance moves the meteor one tick to the left.
func (m *Meteor) Advance() {
	m.X -= m.Speed
}

// Gone reports whether the meteor has fully passed the left edge.
func (m *Meteor) Gone() bool {
	return m.X+m.Size < 0
}

// WorldVertices appends the polygon translated to the meteor's position.
func (m *Meteor) WorldVertices(dst []physics.Point) []physics.Point {
	for _, v := range m.Vertices {
		dst = append(dst, v.Add(m.X, m.Y))
	}
	return dst
}

// Hits reports whether the meteor's outline crosses the box.
func (m *Meteor) Hits(box physics.Box) bool {
	// No vertex is farther than Size from the center, so a bounding-circle
	// miss rules out any edge crossing.
	c := box.Center()
	if !physics.CirclesOverlap(m.X, m.Y, m.Size, c.X, c.Y, box.HalfDiagonal()) {
		return false
	}
	var buf [config.MeteorVertices]physics.Point
	return physics.PolygonIntersectsBox(m.WorldVertices(buf[:0]), box)
}
