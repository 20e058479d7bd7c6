package physics

import "testing"

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		want           bool
	}{
		{"interior crossing", Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0}, true},
		{"parallel apart", Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}, false},
		{"collinear overlap is a miss", Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{15, 0}, false},
		{"touching endpoints", Point{0, 0}, Point{5, 5}, Point{5, 5}, Point{10, 0}, true},
		{"T junction", Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{5, 10}, true},
		{"lines cross beyond segment", Point{0, 0}, Point{1, 1}, Point{0, 10}, Point{10, 0}, false},
		{"perpendicular disjoint", Point{0, 0}, Point{0, 4}, Point{1, 5}, Point{5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Fatalf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonIntersectsBox(t *testing.T) {
	square := func(cx, cy, r float64) []Point {
		return []Point{{cx - r, cy - r}, {cx + r, cy - r}, {cx + r, cy + r}, {cx - r, cy + r}}
	}
	box := CenteredBox(100, 100, 20, 20)

	if !PolygonIntersectsBox(square(110, 100, 8), box) {
		t.Error("overlapping polygon should hit the box")
	}
	if PolygonIntersectsBox(square(200, 200, 8), box) {
		t.Error("distant polygon should not hit the box")
	}
	// Containment without edge crossing is a known miss.
	if PolygonIntersectsBox(square(100, 100, 50), box) {
		t.Error("box fully inside polygon should not be reported")
	}
	if PolygonIntersectsBox(square(100, 100, 2), box) {
		t.Error("polygon fully inside box should not be reported")
	}
	if PolygonIntersectsBox(nil, box) {
		t.Error("empty polygon should not hit")
	}
}

func TestPolygonClosingEdgeIsTested(t *testing.T) {
	// Only the wrap-around edge (last -> first) crosses the box.
	poly := []Point{{95, 0}, {95, -50}, {105, -50}, {105, 200}}
	box := CenteredBox(0, 100, 20, 20)
	if PolygonIntersectsBox(poly, box) {
		t.Fatal("polygon far to the right should miss")
	}
	poly = []Point{{-50, 100}, {-50, -50}, {50, -50}, {50, 100}}
	if !PolygonIntersectsBox(poly, box) {
		t.Fatal("closing edge crossing the box should hit")
	}
}

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(100, 300, 36, 24)
	if b.Left != 82 || b.Right != 118 || b.Top != 288 || b.Bottom != 312 {
		t.Fatalf("CenteredBox = %+v", b)
	}
	if c := b.Center(); c.X != 100 || c.Y != 300 {
		t.Fatalf("Center = %+v, want (100,300)", c)
	}
	if hd := CenteredBox(0, 0, 6, 8).HalfDiagonal(); hd != 5 {
		t.Fatalf("HalfDiagonal = %f, want 5", hd)
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 3, 5, 0, 2) {
		t.Error("touching circles should overlap")
	}
	if CirclesOverlap(0, 0, 1, 5, 0, 1) {
		t.Error("separate circles should not overlap")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp low = %f", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp high = %f", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Errorf("Clamp mid = %f", got)
	}
}
