package engine

import (
	"math"
	"testing"
)

func TestExtractorConvergesToConstantLevel(t *testing.T) {
	cases := []struct {
		name   string
		start  float64
		target float64
	}{
		{"rising", 0, 0.5},
		{"falling", 0.8, 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Extractor{level: tc.start}
			prev := tc.start
			for n := 1; n <= 40; n++ {
				got := e.Extract(Frame{Level: tc.target}).Level
				want := tc.target - (tc.target-tc.start)*math.Pow(0.6, float64(n))
				if math.Abs(got-want) > 1e-12 {
					t.Fatalf("tick %d: expected level %v, got %v", n, want, got)
				}
				if math.Abs(tc.target-got) > math.Abs(tc.target-prev) {
					t.Fatalf("tick %d: level moved away from target (%v -> %v)", n, prev, got)
				}
				prev = got
			}
		})
	}
}

func TestExtractorTreatsNegativeLevelAsSilence(t *testing.T) {
	var e Extractor
	for range 10 {
		e.Extract(Frame{Level: -3})
	}
	if e.Level() != 0 {
		t.Fatalf("expected negative input to leave level at 0, got %v", e.Level())
	}
}

func TestGateBoundary(t *testing.T) {
	cases := []struct {
		level float64
		want  bool
	}{
		{0.0219, false},
		{0.022, false},
		{0.0221, true},
	}
	for _, tc := range cases {
		if got := Gate(tc.level); got != tc.want {
			t.Fatalf("Gate(%v) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestBandEnergy(t *testing.T) {
	spectrum := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		name   string
		f0, f1 float64
		want   float64
	}{
		{"lower half", 0, 5000, 20},
		{"whole range", 0, 10000, 30},
		{"above nyquist clamps", 9000, 20000, 50},
		{"single bin", 5000, 5000, 30},
		{"inverted range", 8000, 1000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BandEnergy(spectrum, tc.f0, tc.f1, 10000); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBandEnergyEmptyInputs(t *testing.T) {
	if got := BandEnergy(nil, 60, 250, 22050); got != 0 {
		t.Fatalf("expected 0 for empty spectrum, got %v", got)
	}
	if got := BandEnergy([]float64{1, 2}, 60, 250, 0); got != 0 {
		t.Fatalf("expected 0 for zero nyquist, got %v", got)
	}
}

func TestExtractNormalizesBands(t *testing.T) {
	spectrum := make([]float64, 1024)
	for i := range spectrum {
		spectrum[i] = 255
	}
	var e Extractor
	f := e.Extract(Frame{Level: 0.1, Spectrum: spectrum, SampleRate: 44100})
	if f.Low != 1 || f.High != 1 {
		t.Fatalf("expected saturated bands to normalize to 1, got low=%v high=%v", f.Low, f.High)
	}
}
