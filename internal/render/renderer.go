package render

import (
	"image/color"

	"github.com/iburimskiy/sound-orbit/internal/config"
	"github.com/iburimskiy/sound-orbit/internal/engine"
)

// Renderer draws one frame of the orbit from engine state. It keeps only
// scratch buffers between frames.
type Renderer struct {
	segs []Bezier
}

func New() *Renderer {
	return &Renderer{segs: make([]Bezier, 0, config.RibbonSteps)}
}

// Draw paints the frame back to front: fade, core, ribbon trail, particles,
// outer rings.
func (r *Renderer) Draw(s Surface, st *engine.State, t engine.Tick) {
	w, h := s.Size()
	cx, cy := w/2, h/2
	p := t.Params

	s.Fade(config.TrailAlpha)
	r.drawCore(s, cx, cy, p)
	r.drawRibbon(s, cx, cy, p, st.History, t.Features.Waveform)
	r.drawParticles(s, cx, cy, p, st.Particles, t.Count)
	r.drawOuterRings(s, cx, cy, p)
}

func (r *Renderer) drawCore(s Surface, cx, cy float64, p engine.Params) {
	R := p.CoreRadius
	for i := range 6 {
		rr := R * (0.3 + float64(i)*0.06)
		s.StrokeCircle(cx, cy, rr, 1.5+p.L*1.2, gray(p.GlowGray, 60+float64(i)*25+p.L*40))
	}
	// crisp ring and pupil are sized by diameter
	s.StrokeCircle(cx, cy, R*0.25, 1.8, gray(p.BaseGray, 220))
	s.FillCircle(cx, cy, R*0.025, color.Black)
}

func (r *Renderer) drawRibbon(s Surface, cx, cy float64, p engine.Params, h *engine.History, wave []float64) {
	if len(wave) == 0 {
		return
	}
	samples := h.Samples()
	width := 1.5 + p.L*1.5
	for i, pts := range samples {
		r.segs = ClosedCurve(r.segs, pts, cx, cy)
		s.StrokeCurve(r.segs, width, gray(p.GlowGray, engine.Alpha(i, len(samples))))
	}
}

func (r *Renderer) drawParticles(s Surface, cx, cy float64, p engine.Params, ps *engine.Particles, tick uint64) {
	dot := gray(p.GlowGray, 180)
	tail := gray(p.GlowGray, 60+p.L*50)
	noise := ps.Noise()
	for i := range ps.Items() {
		pt := &ps.Items()[i]
		x, y, _ := pt.Position(p.RadiusBoost, tick, noise)
		s.FillCircle(cx+x, cy+y, (pt.Size+p.L*1.4)/2, dot)
		s.Line(cx+x, cy+y, cx+x*0.96, cy+y*0.96, 1, tail)
	}
}

func (r *Renderer) drawOuterRings(s Surface, cx, cy float64, p engine.Params) {
	s.StrokeCircle(cx, cy, p.OuterRadius, 1.5, gray(p.BaseGray, 180+p.L*60))
	s.StrokeCircle(cx, cy, p.OuterRadius+p.L*20, 0.6, gray(p.BaseGray, 60))
}
