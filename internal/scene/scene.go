package scene

import "image/color"

// Vec2 is a position in scene space.
type Vec2 struct {
	X, Y float64
}

// Surface is the drawing target the renderers work against. The raylib
// window and the braille terminal canvas both implement it; tests use a
// recording fake.
//
// Implementations must not retain pts past the call: renderers reuse their
// vertex buffers between layers. Implementations may ignore attributes they
// cannot express (the terminal canvas has neither alpha nor sub-cell line
// thickness).
type Surface interface {
	// ClosedPolyline strokes the polygon through pts, joining the last
	// vertex back to the first.
	ClosedPolyline(pts []Vec2, col color.RGBA)

	// Line strokes a straight segment of the given thickness.
	Line(a, b Vec2, thick float64, col color.RGBA)

	// FilledCircle fills a disk.
	FilledCircle(center Vec2, radius float64, col color.RGBA)
}
