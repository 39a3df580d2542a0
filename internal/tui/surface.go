package tui

import (
	"image/color"
	"math"

	"github.com/san-kum/radviz/internal/scene"
)

// canvasSurface adapts the braille canvas to the scene renderers. World
// coordinates scale down to subpixels; colors collapse to on/off dots.
type canvasSurface struct {
	canvas *Canvas
	scaleX float64
	scaleY float64
}

func newCanvasSurface(c *Canvas, worldW, worldH float64) *canvasSurface {
	return &canvasSurface{
		canvas: c,
		scaleX: float64(c.SubWidth()) / worldW,
		scaleY: float64(c.SubHeight()) / worldH,
	}
}

func (s *canvasSurface) point(v scene.Vec2) (int, int) {
	return int(math.Round(v.X * s.scaleX)), int(math.Round(v.Y * s.scaleY))
}

func (s *canvasSurface) ClosedPolyline(pts []scene.Vec2, _ color.RGBA) {
	if len(pts) < 2 {
		return
	}
	x0, y0 := s.point(pts[0])
	px, py := x0, y0
	for _, p := range pts[1:] {
		x, y := s.point(p)
		s.canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}
	s.canvas.DrawLine(px, py, x0, y0)
}

func (s *canvasSurface) Line(a, b scene.Vec2, _ float64, _ color.RGBA) {
	x0, y0 := s.point(a)
	x1, y1 := s.point(b)
	s.canvas.DrawLine(x0, y0, x1, y1)
}

func (s *canvasSurface) FilledCircle(center scene.Vec2, radius float64, _ color.RGBA) {
	x, y := s.point(center)
	s.canvas.FillCircle(x, y, int(math.Round(radius*s.scaleX)))
}
