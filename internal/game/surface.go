package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sound-orbit/internal/render"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source for DrawTriangles.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// imageSurface draws render primitives onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func (s *imageSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *imageSurface) Fade(alpha uint8) {
	w, h := s.Size()
	vector.DrawFilledRect(s.img, 0, 0, float32(w), float32(h), color.NRGBA{A: alpha}, false)
}

func (s *imageSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *imageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *imageSurface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *imageSurface) StrokeCurve(segs []render.Bezier, width float64, c color.Color) {
	if len(segs) == 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(segs[0].P0.X), float32(segs[0].P0.Y))
	for _, seg := range segs {
		path.CubicTo(
			float32(seg.C1.X), float32(seg.C1.Y),
			float32(seg.C2.X), float32(seg.C2.Y),
			float32(seg.P3.X), float32(seg.P3.Y),
		)
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinBevel,
	})

	// RGBA is premultiplied, matching the color scale mode below.
	r, g, b, a := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	s.img.DrawTriangles(s.vs, s.is, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
