package render

import (
	"image/color"

	"github.com/iburimskiy/sound-orbit/internal/engine"
)

// Bezier is one cubic segment from P0 to P3.
type Bezier struct {
	P0, C1, C2, P3 engine.Point
}

// Surface is the 2D drawing sink the renderer writes to. Coordinates are
// absolute pixels.
type Surface interface {
	Size() (w, h float64)
	// Fade darkens the whole surface with black at the given alpha.
	Fade(alpha uint8)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	// StrokeCurve strokes a closed path made of consecutive segments.
	StrokeCurve(segs []Bezier, width float64, c color.Color)
}

// gray returns a grayscale color with alpha, both clamped to 0..255.
func gray(v, alpha float64) color.NRGBA {
	g := uint8(clamp255(v))
	return color.NRGBA{R: g, G: g, B: g, A: uint8(clamp255(alpha))}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ClosedCurve converts pts into a closed Catmull-Rom spline expressed as
// cubic Bezier segments, offset by (cx, cy). dst is reused when large enough.
func ClosedCurve(dst []Bezier, pts []engine.Point, cx, cy float64) []Bezier {
	dst = dst[:0]
	n := len(pts)
	if n < 2 {
		return dst
	}
	at := func(i int) engine.Point {
		p := pts[(i+n)%n]
		return engine.Point{X: p.X + cx, Y: p.Y + cy}
	}
	for i := range n {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		dst = append(dst, Bezier{
			P0: p1,
			C1: engine.Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6},
			C2: engine.Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6},
			P3: p2,
		})
	}
	return dst
}
