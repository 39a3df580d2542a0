package scene

import "image/color"

type polyCall struct {
	verts []Vec2
	col   color.RGBA
}

type lineCall struct {
	a, b  Vec2
	thick float64
	col   color.RGBA
}

type circleCall struct {
	center Vec2
	radius float64
	col    color.RGBA
}

// recordingSurface captures draw calls. It copies vertex slices because
// renderers reuse their scratch buffers between layers.
type recordingSurface struct {
	polys   []polyCall
	lines   []lineCall
	circles []circleCall
}

func (r *recordingSurface) ClosedPolyline(pts []Vec2, col color.RGBA) {
	cp := make([]Vec2, len(pts))
	copy(cp, pts)
	r.polys = append(r.polys, polyCall{verts: cp, col: col})
}

func (r *recordingSurface) Line(a, b Vec2, thick float64, col color.RGBA) {
	r.lines = append(r.lines, lineCall{a: a, b: b, thick: thick, col: col})
}

func (r *recordingSurface) FilledCircle(center Vec2, radius float64, col color.RGBA) {
	r.circles = append(r.circles, circleCall{center: center, radius: radius, col: col})
}
