package engine

import (
	"math/rand"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

// State is everything that survives between ticks.
type State struct {
	Extractor  Extractor
	ColorPhase float64
	History    *History
	Particles  *Particles
	TickCount  uint64
}

// NewState builds the initial state. rng seeds the particle layout and
// noise supplies their radial breathing.
func NewState(rng *rand.Rand, noise Noise) *State {
	return &State{
		History:   NewHistory(config.MaxHistory),
		Particles: NewParticles(config.ParticleCount, rng, noise),
	}
}

// NewSeededState is NewState with both the layout and the noise derived from seed.
func NewSeededState(seed int64) *State {
	return NewState(rand.New(rand.NewSource(seed)), NewSimplexNoise(seed))
}

// Tick is what the renderer needs for one frame.
type Tick struct {
	Params   Params
	Features Features
	Count    uint64
}

// Step runs one extract, map and update cycle. History and particle angles
// only advance when the gate is open.
func (s *State) Step(f Frame) Tick {
	feat := s.Extractor.Extract(f)
	s.ColorPhase += config.ColorSpeed
	p := MapParams(feat.Level, s.ColorPhase, feat.Low, feat.High)

	if feat.Gate {
		s.History.Push(RibbonSample(feat.Waveform, p.RibbonBase, p.RibbonAmp))
		s.Particles.Advance(p.Speed)
	}
	s.TickCount++

	return Tick{Params: p, Features: feat, Count: s.TickCount}
}
