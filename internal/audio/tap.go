package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap records the last N mono samples into a ring buffer so the renderer can
// analyse recently captured or played audio. Writers are audio callback
// threads; the reader is the frame loop.
type Tap struct {
	buffer    []float64
	nextIndex int
	mu        sync.RWMutex
}

func NewTap(ringSize int) *Tap {
	return &Tap{buffer: make([]float64, ringSize)}
}

// WriteFloat32 appends mono samples.
func (t *Tap) WriteFloat32(samples []float32) {
	t.mu.Lock()
	for _, s := range samples {
		t.put(float64(s))
	}
	t.mu.Unlock()
}

// WriteStereo mixes stereo frames down to mono and appends them.
func (t *Tap) WriteStereo(samples [][2]float64) {
	t.mu.Lock()
	for _, s := range samples {
		t.put((s[0] + s[1]) * 0.5)
	}
	t.mu.Unlock()
}

func (t *Tap) put(v float64) {
	t.buffer[t.nextIndex] = v
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
}

// Reset fills the ring with silence.
func (t *Tap) Reset() {
	t.mu.Lock()
	clear(t.buffer)
	t.nextIndex = 0
	t.mu.Unlock()
}

// Snapshot returns up to the last n samples, most recent last.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := range n {
		out[i] = t.buffer[(start+i)%len(t.buffer)]
	}
	return out
}

// streamTap wraps a beep.Streamer and copies everything it yields into a Tap.
type streamTap struct {
	Source beep.Streamer
	tap    *Tap
}

func (s *streamTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.Source.Stream(samples)
	if n > 0 {
		s.tap.WriteStereo(samples[:n])
	}
	return n, ok
}

func (s *streamTap) Err() error { return s.Source.Err() }
