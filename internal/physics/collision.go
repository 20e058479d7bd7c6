package physics

import "math"

// Box is an axis-aligned rectangle given by its edges.
type Box struct {
	Left, Top, Right, Bottom float64
}

// CenteredBox returns a w x h box centered on (cx, cy).
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Center returns the center of the box.
func (b Box) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// HalfDiagonal is the radius of the circle circumscribing the box.
func (b Box) HalfDiagonal() float64 {
	w := b.Right - b.Left
	h := b.Bottom - b.Top
	return math.Sqrt(w*w+h*h) / 2
}

// Edges returns the four box edges in order top, right, bottom, left.
func (b Box) Edges() [4][2]Point {
	tl := Point{X: b.Left, Y: b.Top}
	tr := Point{X: b.Right, Y: b.Top}
	br := Point{X: b.Right, Y: b.Bottom}
	bl := Point{X: b.Left, Y: b.Bottom}
	return [4][2]Point{
		{tl, tr},
		{tr, br},
		{br, bl},
		{bl, tl},
	}
}

// SegmentsIntersect reports whether segment a1-a2 crosses segment b1-b2.
// Parallel segments (zero determinant) never intersect, including collinear
// overlapping ones. Endpoints count as hits.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d := (a2.X-a1.X)*(b2.Y-b1.Y) - (a2.Y-a1.Y)*(b2.X-b1.X)
	if d == 0 {
		return false
	}

	t := ((b1.X-a1.X)*(b2.Y-b1.Y) - (b1.Y-a1.Y)*(b2.X-b1.X)) / d
	u := ((b1.X-a1.X)*(a2.Y-a1.Y) - (b1.Y-a1.Y)*(a2.X-a1.X)) / d

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// PolygonIntersectsBox reports whether any edge of the closed polygon crosses
// any edge of the box. A box lying entirely inside the polygon (or the reverse)
// is not detected.
func PolygonIntersectsBox(poly []Point, box Box) bool {
	n := len(poly)
	if n < 2 {
		return false
	}
	edges := box.Edges()

	for i := 0; i < n; i++ {
		v1 := poly[i]
		v2 := poly[(i+1)%n]
		for _, e := range edges {
			if SegmentsIntersect(v1, v2, e[0], e[1]) {
				return true
			}
		}
	}
	return false
}
