package audio

import (
	"github.com/iburimskiy/sound-orbit/internal/config"
	"github.com/iburimskiy/sound-orbit/internal/engine"
)

// source is the part shared by every input: a tap fed by an audio thread
// and an analyzer read by the frame loop.
type source struct {
	tap        *Tap
	analyzer   *Analyzer
	sampleRate float64
}

func newSource(sampleRate float64) source {
	return source{
		tap:        NewTap(config.TapRingSize),
		analyzer:   NewAnalyzer(config.FFTSize),
		sampleRate: sampleRate,
	}
}

// Analyze returns the features of the most recent audio.
func (s *source) Analyze() engine.Frame {
	return s.analyzer.Analyze(s.tap.Snapshot(config.FFTSize), s.sampleRate)
}
