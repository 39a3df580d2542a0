package scene

import "github.com/san-kum/radviz/internal/cloud"

// PointRenderer draws the interpolated point cloud: a vertical connector
// from each point's base to its bobbing top, capped with a filled marker.
type PointRenderer struct {
	palette Palette
}

// NewPointRenderer returns a renderer using the given palette.
func NewPointRenderer(pal Palette) *PointRenderer {
	return &PointRenderer{palette: pal}
}

// SetPalette swaps the color set.
func (p *PointRenderer) SetPalette(pal Palette) { p.palette = pal }

// Render interpolates index-aligned between sets a and b by ratio and draws
// every point. Mismatched set lengths draw nothing: an index-aligned blend
// of them would pair unrelated points.
func (p *PointRenderer) Render(s Surface, a, b cloud.PointSet, t, ratio float64) {
	if len(a) != len(b) {
		return
	}
	for i := range a {
		x := cloud.Lerp(a[i].X, b[i].X, ratio)
		y := cloud.Lerp(a[i].Y, b[i].Y, ratio)
		z := cloud.Lerp(a[i].Z, b[i].Z, ratio)
		phase := cloud.Lerp(a[i].Phase, b[i].Phase, ratio)

		dz := fastSin(t*3+phase+x*0.02) * 32
		top := Vec2{X: x, Y: y - (z + dz)}

		s.Line(Vec2{X: x, Y: y}, top, 2, p.palette.Connector)

		radius := 5 + dz/20
		if radius < 3 {
			radius = 3
		}
		if radius > 8 {
			radius = 8
		}
		s.FilledCircle(top, radius, p.palette.Marker)
	}
}
