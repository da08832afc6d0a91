package engine

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

// Noise is a smooth pseudo-random function of one scalar with output in [0, 1].
type Noise interface {
	At(x float64) float64
}

type simplexNoise struct {
	n opensimplex.Noise
}

// NewSimplexNoise returns OpenSimplex noise sampled along a line.
func NewSimplexNoise(seed int64) Noise {
	return simplexNoise{n: opensimplex.NewNormalized(seed)}
}

func (s simplexNoise) At(x float64) float64 {
	return s.n.Eval2(x, 0)
}

// Particle is one orbiting point. Only Angle changes after creation.
type Particle struct {
	Angle       float64
	BaseRadius  float64
	Speed       float64
	NoiseOffset float64
	Size        float64
	Tilt        float64
}

// Position returns the particle's center-relative position and effective
// radius for the given tick.
func (p *Particle) Position(boost float64, tick uint64, noise Noise) (x, y, r float64) {
	r = p.BaseRadius + boost*noise.At(p.NoiseOffset+float64(tick)*config.NoiseStep)
	x = math.Cos(p.Angle) * r
	y = math.Sin(p.Angle+p.Tilt*0.2) * r * 0.9
	return x, y, r
}

// Particles is the fixed orbit ensemble.
type Particles struct {
	items []Particle
	noise Noise
}

// NewParticles creates count particles with attributes drawn from rng.
func NewParticles(count int, rng *rand.Rand, noise Noise) *Particles {
	items := make([]Particle, count)
	for i := range items {
		items[i] = Particle{
			Angle:       randRange(rng, 0, 2*math.Pi),
			BaseRadius:  randRange(rng, 160, 420),
			Speed:       randRange(rng, 0.001, 0.008),
			NoiseOffset: randRange(rng, 0, 1000),
			Size:        randRange(rng, 3, 8),
			Tilt:        randRange(rng, 0, math.Pi),
		}
	}
	return &Particles{items: items, noise: noise}
}

// Advance rotates every particle by its own speed plus delta.
func (ps *Particles) Advance(delta float64) {
	for i := range ps.items {
		ps.items[i].Angle += ps.items[i].Speed + delta
	}
}

func (ps *Particles) Len() int { return len(ps.items) }

// Items exposes the particles for reading. Callers must not resize it.
func (ps *Particles) Items() []Particle { return ps.items }

func (ps *Particles) Noise() Noise { return ps.noise }

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
