package object

import (
	"math"
	"sync"

	"github.com/tomz197/meteordodge/internal/random"
)

// particlePool reuses Particle values across crash bursts.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived debris fragment. Particles are decoration owned
// by renderers and never affect the session.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity, pixels per second
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity kept per 1/60 s (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		X:           x,
		Y:           y,
		VX:          vx,
		VY:          vy,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Drag:        0.95,
	}
	return p
}

// Release returns the particle to the pool.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Explosion creates count particles bursting out of x, y.
func Explosion(rng random.Source, x, y float64, count int, speed, lifetime float64) Particles {
	out := make(Particles, 0, count)
	for i := 0; i < count; i++ {
		angle := random.Uniform(rng, 0, 2*math.Pi)
		spd := speed * random.Uniform(rng, 0.5, 1.5)
		life := lifetime * random.Uniform(rng, 0.5, 1)
		out = append(out, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life))
	}
	return out
}

// Update advances the particle by dt seconds and reports whether it expired.
func (p *Particle) Update(dt float64) (expired bool) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}
	drag := math.Pow(p.Drag, dt*60)
	p.VX *= drag
	p.VY *= drag
	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Visible reports whether the particle is still bright enough to draw.
func (p *Particle) Visible() bool {
	return p.MaxLifetime <= 0 || p.Lifetime/p.MaxLifetime >= 0.25
}

// Particles is a set of live particles.
type Particles []*Particle

// Update advances every particle and drops the expired ones.
func (ps Particles) Update(dt float64) Particles {
	kept := ps[:0]
	for _, p := range ps {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(ps[len(kept):])
	return kept
}

// Release returns every particle to the pool and empties the set.
func (ps Particles) Release() Particles {
	for _, p := range ps {
		p.Release()
	}
	clear(ps)
	return ps[:0]
}
