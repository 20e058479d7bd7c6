// Package random supplies the seeded random source the game core draws from.
package random

import (
	"math/rand"
	"time"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a seeded source. A zero seed uses the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value in [lo, hi) drawn from src.
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
