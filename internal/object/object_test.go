package object

import (
	"math"
	"testing"

	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/physics"
	"github.com/tomz197/meteordodge/internal/random"
)

// fixedRand returns the same value on every draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

var testScreen = NewScreen(config.PlayfieldWidth, config.PlayfieldHeight)

func TestNewMeteorShape(t *testing.T) {
	m := NewMeteor(fixedRand(0.5), 2.0, testScreen)

	if m.Size != 35 {
		t.Fatalf("Size = %f, want 35", m.Size)
	}
	if m.X != 835 {
		t.Errorf("X = %f, want 835 (just off the right edge)", m.X)
	}
	if m.Y != 300 {
		t.Errorf("Y = %f, want 300", m.Y)
	}
	if m.Speed != 3 {
		t.Errorf("Speed = %f, want 3", m.Speed)
	}

	for i := 0; i < config.MeteorVertices; i++ {
		wantAngle := float64(i) * math.Pi / 4
		if math.Abs(m.Angles[i]-wantAngle) > 1e-12 {
			t.Errorf("Angles[%d] = %f, want %f", i, m.Angles[i], wantAngle)
		}
		if math.Abs(m.Radii[i]-35*0.85) > 1e-12 {
			t.Errorf("Radii[%d] = %f, want %f", i, m.Radii[i], 35*0.85)
		}
		r := math.Hypot(m.Vertices[i].X, m.Vertices[i].Y)
		if math.Abs(r-m.Radii[i]) > 1e-9 {
			t.Errorf("vertex %d radius = %f, want %f", i, r, m.Radii[i])
		}
	}
}

func TestNewMeteorRanges(t *testing.T) {
	rng := random.New(99)
	for i := 0; i < 500; i++ {
		m := NewMeteor(rng, 4.5, testScreen)
		if m.Size < 20 || m.Size >= 50 {
			t.Fatalf("Size %f out of [20,50)", m.Size)
		}
		if m.Y < m.Size || m.Y >= float64(testScreen.Height)-m.Size {
			t.Fatalf("Y %f leaves the screen for size %f", m.Y, m.Size)
		}
		if m.Speed < 4.5 || m.Speed >= 6.5 {
			t.Fatalf("Speed %f out of [4.5,6.5)", m.Speed)
		}
		for j, r := range m.Radii {
			if r < 0.7*m.Size || r > m.Size {
				t.Fatalf("Radii[%d] = %f out of [%f,%f]", j, r, 0.7*m.Size, m.Size)
			}
		}
	}
}

func TestMeteorAdvanceAndGone(t *testing.T) {
	m := NewMeteor(fixedRand(0), 2.0, testScreen)
	m.X = 5
	m.Advance()
	if m.X != 3 {
		t.Fatalf("X after advance = %f, want 3", m.X)
	}
	m.X = -m.Size
	if m.Gone() {
		t.Fatal("meteor exactly at -size should still be on screen")
	}
	m.X = -m.Size - 0.01
	if !m.Gone() {
		t.Fatal("meteor past -size should be gone")
	}
}

func TestMeteorWorldVertices(t *testing.T) {
	m := NewMeteor(fixedRand(0), 2.0, testScreen)
	m.X, m.Y = 10, 20
	vs := m.WorldVertices(nil)
	if len(vs) != config.MeteorVertices {
		t.Fatalf("got %d vertices, want %d", len(vs), config.MeteorVertices)
	}
	// Vertex 0 sits at angle 0, radius 0.7*20.
	if math.Abs(vs[0].X-24) > 1e-9 || math.Abs(vs[0].Y-20) > 1e-9 {
		t.Fatalf("vs[0] = %+v, want (24,20)", vs[0])
	}
}

func TestMeteorHits(t *testing.T) {
	p := NewPlayer(testScreen)
	box := p.HitBox()

	m := NewMeteor(fixedRand(0), 2.0, testScreen)
	m.X, m.Y = p.X+20, p.Y
	if !m.Hits(box) {
		t.Error("meteor overlapping the hit box edge should hit")
	}

	m.X = p.X + 200
	if m.Hits(box) {
		t.Error("distant meteor should miss")
	}

	// The sprite is much larger than the hit box: grazing a wing is a miss.
	m.X, m.Y = p.X, p.Y-p.Height/2-m.Size+5
	if m.Hits(box) {
		t.Error("meteor touching only the wing area should miss")
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	p := NewPlayer(testScreen)
	if p.X != 100 || p.Y != 300 {
		t.Fatalf("spawn = (%f,%f), want (100,300)", p.X, p.Y)
	}

	for i := 0; i < 200; i++ {
		p.Move(true, false, testScreen)
		if p.Y < p.Height/2 {
			t.Fatalf("Y = %f above top bound", p.Y)
		}
	}
	if p.Y != 60 {
		t.Fatalf("Y after holding up = %f, want 60", p.Y)
	}

	for i := 0; i < 200; i++ {
		p.Move(false, true, testScreen)
	}
	if p.Y != 540 {
		t.Fatalf("Y after holding down = %f, want 540", p.Y)
	}

	p.Move(true, true, testScreen)
	if p.Y != 540 {
		t.Fatalf("Y with both keys = %f, want unchanged 540", p.Y)
	}
}

func TestPlayerHitBox(t *testing.T) {
	p := NewPlayer(testScreen)
	want := physics.Box{Left: 82, Top: 288, Right: 118, Bottom: 312}
	if got := p.HitBox(); got != want {
		t.Fatalf("HitBox = %+v, want %+v", got, want)
	}
}

func TestSpawnInterval(t *testing.T) {
	w := NewWaveScheduler()
	tests := []struct {
		wave int
		want int
	}{
		{1, 58},
		{2, 56},
		{10, 40},
		{25, 10},
		{40, 10},
	}
	for _, tt := range tests {
		if got := w.SpawnInterval(tt.wave); got != tt.want {
			t.Errorf("SpawnInterval(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestShouldSpawn(t *testing.T) {
	w := NewWaveScheduler()
	if !w.ShouldSpawn(0, 1, 0) {
		t.Error("frame 0 should spawn")
	}
	if w.ShouldSpawn(57, 1, 0) {
		t.Error("frame 57 is not a multiple of 58")
	}
	if !w.ShouldSpawn(116, 1, 3) {
		t.Error("frame 116 should spawn in wave 1")
	}
	if w.ShouldSpawn(116, 1, 25) {
		t.Error("quota reached, no spawn")
	}
}

func TestShouldAdvanceAndAdvance(t *testing.T) {
	w := NewWaveScheduler()
	if w.ShouldAdvance(24, 0) {
		t.Error("quota not met")
	}
	if w.ShouldAdvance(25, 1) {
		t.Error("meteors still on screen")
	}
	if !w.ShouldAdvance(25, 0) {
		t.Error("quota met and screen clear should advance")
	}

	wave, spawned, speed := w.Advance(3, 3.0)
	if wave != 4 || spawned != 0 || speed != 3.5 {
		t.Fatalf("Advance = (%d,%d,%f), want (4,0,3.5)", wave, spawned, speed)
	}
}

func TestClouds(t *testing.T) {
	c0 := Clouds(0, testScreen)
	if c0[0].X != 800 || c0[0].Y != 50 {
		t.Fatalf("cloud 0 at frame 0 = %+v, want (800,50)", c0[0])
	}
	if c0[4].Y != 450 {
		t.Fatalf("cloud 4 row = %f, want 450", c0[4].Y)
	}
	for frame := 0; frame < 100000; frame += 997 {
		for i, c := range Clouds(frame, testScreen) {
			if c.X < -cloudMargin || c.X >= float64(testScreen.Width)+cloudMargin {
				t.Fatalf("frame %d cloud %d x = %f outside wrap span", frame, i, c.X)
			}
		}
	}
}

func TestShouldRenderBlink(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    bool
	}{
		{0, true},
		{0.1, true},
		{0.6, false},
		{1.1, true},
		{-1, true},
	}
	for _, tt := range tests {
		if got := ShouldRenderBlink(tt.elapsed, 2); got != tt.want {
			t.Errorf("ShouldRenderBlink(%v, 2) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}
