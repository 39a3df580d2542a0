package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/radviz/internal/scene"
)

// raylibSurface draws scene primitives with raylib. One instance is
// reused across frames; verts is scratch for the polyline conversion.
type raylibSurface struct {
	smooth bool
	verts  []rl.Vector2
}

func (s *raylibSurface) ClosedPolyline(pts []scene.Vec2, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	s.verts = s.verts[:0]
	for _, p := range pts {
		s.verts = append(s.verts, vec2(p))
	}
	s.verts = append(s.verts, s.verts[0])

	if s.smooth {
		rl.DrawSplineLinear(s.verts, 1.5, col)
	} else {
		rl.DrawLineStrip(s.verts, col)
	}
}

func (s *raylibSurface) Line(a, b scene.Vec2, thick float64, col color.RGBA) {
	rl.DrawLineEx(vec2(a), vec2(b), float32(thick), col)
}

func (s *raylibSurface) FilledCircle(center scene.Vec2, radius float64, col color.RGBA) {
	rl.DrawCircleV(vec2(center), float32(radius), col)
}

func vec2(v scene.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
