package random

import "testing"

func TestNewIsDeterministicForSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestUniformRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, 20, 50)
		if v < 20 || v >= 50 {
			t.Fatalf("Uniform = %f, want [20,50)", v)
		}
	}
}
