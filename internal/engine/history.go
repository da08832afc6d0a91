package engine

import (
	"math"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

// Point is a center-relative position.
type Point struct {
	X, Y float64
}

// RibbonSample resamples waveform around a circle of radius baseR, pushing
// each point outward by its sample times amp. It returns nil for an empty
// waveform.
func RibbonSample(waveform []float64, baseR, amp float64) []Point {
	if len(waveform) == 0 {
		return nil
	}
	steps := config.RibbonSteps
	pts := make([]Point, steps)
	for i := range steps {
		idx := i * (len(waveform) - 1) / (steps - 1)
		a := float64(i) * 2 * math.Pi / float64(steps)
		r := baseR + waveform[idx]*amp
		pts[i] = Point{X: math.Cos(a) * r, Y: math.Sin(a) * r}
	}
	return pts
}

// History is a bounded FIFO of ribbon samples, oldest first.
type History struct {
	samples  [][]Point
	capacity int
}

// NewHistory creates an empty history holding at most capacity samples.
func NewHistory(capacity int) *History {
	return &History{
		samples:  make([][]Point, 0, capacity+1),
		capacity: capacity,
	}
}

// Push appends sample and evicts the oldest entry on overflow.
func (h *History) Push(sample []Point) {
	if sample == nil {
		return
	}
	h.samples = append(h.samples, sample)
	if len(h.samples) > h.capacity {
		copy(h.samples, h.samples[1:])
		h.samples[len(h.samples)-1] = nil
		h.samples = h.samples[:len(h.samples)-1]
	}
}

func (h *History) Len() int { return len(h.samples) }

// Samples returns the retained samples from oldest to newest. The slice is
// owned by the history.
func (h *History) Samples() [][]Point { return h.samples }

// Alpha returns the stroke alpha for the i-th of n samples, fading from 30
// for the oldest to 180 for the newest.
func Alpha(i, n int) float64 {
	if n <= 1 {
		return 180
	}
	return mapRange(float64(i), 0, float64(n-1), 30, 180)
}
