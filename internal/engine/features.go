package engine

import (
	"math"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

// Frame is one tick worth of audio input.
type Frame struct {
	// Level is the raw amplitude, nominally 0..1.
	Level float64
	// Spectrum holds magnitudes in 0..255, index 0 = 0 Hz up to Nyquist.
	Spectrum []float64
	// Waveform holds time-domain samples in [-1, 1].
	Waveform []float64
	// SampleRate of the device in Hz.
	SampleRate float64
}

// Features are the scalars extracted from a Frame.
type Features struct {
	Level    float64
	Gate     bool
	Low      float64
	High     float64
	Waveform []float64
}

// Extractor keeps the smoothed level between ticks.
type Extractor struct {
	level float64
}

// Level returns the current smoothed level.
func (e *Extractor) Level() float64 { return e.level }

// Extract smooths the level, evaluates the gate and measures the low and
// high bands of f.
func (e *Extractor) Extract(f Frame) Features {
	raw := f.Level
	if raw < 0 {
		raw = 0
	}
	e.level = lerp(e.level, raw, config.LevelSmoothing)

	nyquist := f.SampleRate / 2
	return Features{
		Level:    e.level,
		Gate:     Gate(e.level),
		Low:      BandEnergy(f.Spectrum, config.LowBandMin, config.LowBandMax, nyquist) / config.SpectrumMax,
		High:     BandEnergy(f.Spectrum, config.HighBandMin, config.HighBandMax, nyquist) / config.SpectrumMax,
		Waveform: f.Waveform,
	}
}

// Gate reports whether level is loud enough to advance motion.
func Gate(level float64) bool {
	return level > config.GateThreshold
}

// BandEnergy averages spectrum magnitudes between f0 and f1 Hz inclusive.
func BandEnergy(spectrum []float64, f0, f1, nyquist float64) float64 {
	if len(spectrum) == 0 || nyquist <= 0 {
		return 0
	}
	last := len(spectrum) - 1
	i0 := clampInt(freqIndex(f0, nyquist, last), 0, last)
	i1 := clampInt(freqIndex(f1, nyquist, last), 0, last)

	sum := 0.0
	for i := i0; i <= i1; i++ {
		sum += spectrum[i]
	}
	return sum / float64(max(1, i1-i0+1))
}

func freqIndex(f, nyquist float64, last int) int {
	return int(math.Round(f * float64(last) / nyquist))
}
