package audio

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/iburimskiy/sound-orbit/internal/config"
	"github.com/iburimskiy/sound-orbit/internal/engine"
)

// Analyzer turns a block of time-domain samples into a Frame: RMS level, a
// smoothed 0..255 decibel spectrum and the raw waveform tail.
type Analyzer struct {
	size     int
	fft      *fourier.FFT
	window   []float64
	buf      []float64
	coeffs   []complex128
	smoothed []float64
	spectrum []float64
}

// NewAnalyzer creates an analyzer for blocks of size samples (a power of two).
func NewAnalyzer(size int) *Analyzer {
	win := make([]float64, size)
	for i := range win {
		win[i] = 1
	}
	return &Analyzer{
		size:     size,
		fft:      fourier.NewFFT(size),
		window:   window.Blackman(win),
		buf:      make([]float64, size),
		coeffs:   make([]complex128, size/2+1),
		smoothed: make([]float64, size/2),
		spectrum: make([]float64, size/2),
	}
}

// Analyze processes the most recent samples. Short input is zero-padded at
// the front. The returned spectrum is reused by the next call.
func (a *Analyzer) Analyze(samples []float64, sampleRate float64) engine.Frame {
	if len(samples) > a.size {
		samples = samples[len(samples)-a.size:]
	}
	pad := a.size - len(samples)
	for i := range a.buf {
		v := 0.0
		if i >= pad {
			v = samples[i-pad]
		}
		a.buf[i] = v * a.window[i]
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.buf)
	span := config.MaxDecibels - config.MinDecibels
	for k := range a.spectrum {
		mag := cmplx.Abs(a.coeffs[k]) / float64(a.size)
		a.smoothed[k] = config.SpectrumSmoothing*a.smoothed[k] + (1-config.SpectrumSmoothing)*mag

		v := 0.0
		if a.smoothed[k] > 0 {
			db := 20 * math.Log10(a.smoothed[k])
			v = math.Floor(config.SpectrumMax * (db - config.MinDecibels) / span)
		}
		a.spectrum[k] = math.Max(0, math.Min(config.SpectrumMax, v))
	}

	wave := make([]float64, min(config.WaveformSize, len(samples)))
	copy(wave, samples[len(samples)-len(wave):])

	return engine.Frame{
		Level:      rms(wave),
		Spectrum:   a.spectrum,
		Waveform:   wave,
		SampleRate: sampleRate,
	}
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		sumSquares += s * s
	}
	return math.Sqrt(sumSquares / float64(len(samples)))
}
