package render

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/sound-orbit/internal/engine"
)

type op struct {
	kind  string
	r     float64
	width float64
	c     color.Color
	segs  int
}

type recordingSurface struct {
	w, h float64
	ops  []op
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Fade(alpha uint8) {
	s.ops = append(s.ops, op{kind: "fade", c: color.NRGBA{A: alpha}})
}

func (s *recordingSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	s.ops = append(s.ops, op{kind: "ring", r: r, width: width, c: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.ops = append(s.ops, op{kind: "dot", r: r, c: c})
}

func (s *recordingSurface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	s.ops = append(s.ops, op{kind: "line", width: width, c: c})
}

func (s *recordingSurface) StrokeCurve(segs []Bezier, width float64, c color.Color) {
	s.ops = append(s.ops, op{kind: "curve", width: width, c: c, segs: len(segs)})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

type constNoise float64

func (n constNoise) At(float64) float64 { return float64(n) }

func loudFrame() engine.Frame {
	wave := make([]float64, 1024)
	for i := range wave {
		wave[i] = math.Sin(float64(i) * 0.02)
	}
	return engine.Frame{Level: 0.3, Spectrum: make([]float64, 1024), Waveform: wave, SampleRate: 44100}
}

func TestDrawOrder(t *testing.T) {
	st := engine.NewState(rand.New(rand.NewSource(1)), constNoise(0.5))
	var tick engine.Tick
	for range 3 {
		tick = st.Step(loudFrame())
	}

	s := &recordingSurface{w: 800, h: 600}
	New().Draw(s, st, tick)

	if s.ops[0].kind != "fade" {
		t.Fatalf("expected fade first, got %s", s.ops[0].kind)
	}
	if a := s.ops[0].c.(color.NRGBA).A; a != 14 {
		t.Fatalf("expected fade alpha 14, got %d", a)
	}
	// 6 faint rings + crisp ring + pupil
	for i := 1; i <= 7; i++ {
		if s.ops[i].kind != "ring" {
			t.Fatalf("op %d: expected ring, got %s", i, s.ops[i].kind)
		}
	}
	if s.ops[8].kind != "dot" || s.ops[8].c != color.Black {
		t.Fatalf("expected black pupil, got %+v", s.ops[8])
	}
	if got := s.count("curve"); got != 3 {
		t.Fatalf("expected 3 ribbon curves, got %d", got)
	}
	if got := s.count("line"); got != 140 {
		t.Fatalf("expected 140 particle tails, got %d", got)
	}
	last := s.ops[len(s.ops)-2:]
	if last[0].kind != "ring" || last[1].kind != "ring" {
		t.Fatalf("expected outer rings last, got %s %s", last[0].kind, last[1].kind)
	}
	if last[1].r <= last[0].r {
		t.Fatalf("expected halo outside crisp ring, got %v <= %v", last[1].r, last[0].r)
	}
}

func TestDrawSkipsRibbonWithoutWaveform(t *testing.T) {
	st := engine.NewState(rand.New(rand.NewSource(1)), constNoise(0.5))
	st.Step(loudFrame())
	tick := st.Step(engine.Frame{Level: 0.3, SampleRate: 44100})

	s := &recordingSurface{w: 800, h: 600}
	New().Draw(s, st, tick)
	if got := s.count("curve"); got != 0 {
		t.Fatalf("expected ribbon skipped, got %d curves", got)
	}
	if st.History.Len() != 1 {
		t.Fatalf("expected history untouched, got %d", st.History.Len())
	}
}

func TestRibbonAlphaRampsOldestToNewest(t *testing.T) {
	st := engine.NewState(rand.New(rand.NewSource(1)), constNoise(0.5))
	var tick engine.Tick
	for range 28 {
		tick = st.Step(loudFrame())
	}
	s := &recordingSurface{w: 800, h: 600}
	New().Draw(s, st, tick)

	var alphas []uint8
	for _, o := range s.ops {
		if o.kind == "curve" {
			alphas = append(alphas, o.c.(color.NRGBA).A)
			if o.segs != 360 {
				t.Fatalf("expected 360 segments, got %d", o.segs)
			}
		}
	}
	if alphas[0] != 30 || alphas[len(alphas)-1] != 180 {
		t.Fatalf("unexpected alpha ramp %d..%d", alphas[0], alphas[len(alphas)-1])
	}
}

func TestClosedCurvePassesThroughPoints(t *testing.T) {
	pts := []engine.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	segs := ClosedCurve(nil, pts, 10, 20)
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}
	for i, seg := range segs {
		want := engine.Point{X: pts[i].X + 10, Y: pts[i].Y + 20}
		if seg.P0 != want {
			t.Fatalf("segment %d starts at %+v, want %+v", i, seg.P0, want)
		}
		if seg.P3 != segs[(i+1)%len(segs)].P0 {
			t.Fatalf("segment %d does not join the next one", i)
		}
	}
}

func TestGrayClampsAlpha(t *testing.T) {
	c := gray(300, -5)
	if c.R != 255 || c.A != 0 {
		t.Fatalf("expected clamped color, got %+v", c)
	}
}

func TestDrawGeometryAndTones(t *testing.T) {
	st := engine.NewState(rand.New(rand.NewSource(1)), constNoise(0.5))
	tick := st.Step(loudFrame())
	p := tick.Params

	s := &recordingSurface{w: 800, h: 600}
	New().Draw(s, st, tick)

	const eps = 1e-9
	R := p.CoreRadius
	for i := range 6 {
		o := s.ops[1+i]
		if math.Abs(o.r-R*(0.3+float64(i)*0.06)) > eps {
			t.Fatalf("core ring %d: radius %v", i, o.r)
		}
		if math.Abs(o.width-(1.5+p.L*1.2)) > eps {
			t.Fatalf("core ring %d: width %v", i, o.width)
		}
		if want := gray(p.GlowGray, 60+float64(i)*25+p.L*40); o.c != want {
			t.Fatalf("core ring %d: color %+v, want %+v", i, o.c, want)
		}
	}
	crisp, pupil := s.ops[7], s.ops[8]
	if math.Abs(crisp.r-R*0.25) > eps || crisp.width != 1.8 || crisp.c != gray(p.BaseGray, 220) {
		t.Fatalf("unexpected crisp ring %+v", crisp)
	}
	if math.Abs(pupil.r-R*0.025) > eps {
		t.Fatalf("expected pupil radius %v, got %v", R*0.025, pupil.r)
	}

	outer, halo := s.ops[len(s.ops)-2], s.ops[len(s.ops)-1]
	if math.Abs(outer.r-p.OuterRadius) > eps || outer.width != 1.5 || outer.c != gray(p.BaseGray, 180+p.L*60) {
		t.Fatalf("unexpected outer ring %+v", outer)
	}
	if math.Abs(halo.r-(p.OuterRadius+p.L*20)) > eps || halo.width != 0.6 {
		t.Fatalf("unexpected halo %+v", halo)
	}
	if a := halo.c.(color.NRGBA).A; a != 60 {
		t.Fatalf("expected halo alpha 60, got %d", a)
	}

	for _, o := range s.ops {
		if o.kind == "dot" && o.c != color.Black {
			if want := gray(p.GlowGray, 180); o.c != want {
				t.Fatalf("particle dot color %+v, want %+v", o.c, want)
			}
		}
		if o.kind == "line" {
			if want := gray(p.GlowGray, 60+p.L*50); o.c != want || o.width != 1 {
				t.Fatalf("particle tail %+v, want color %+v", o, want)
			}
		}
	}
}
