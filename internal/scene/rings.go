package scene

import (
	"math"

	"github.com/san-kum/radviz/internal/envelope"
)

// RingRenderer draws the stack of contour rings derived from a pair of
// envelopes. Layers render innermost first so outer, fainter rings stack on
// top of the core.
type RingRenderer struct {
	cx, cy  float64
	layers  int
	palette Palette
	verts   []Vec2
}

// NewRingRenderer returns a renderer for the given center and layer count.
func NewRingRenderer(cx, cy float64, layers int, pal Palette) *RingRenderer {
	return &RingRenderer{cx: cx, cy: cy, layers: layers, palette: pal}
}

// SetPalette swaps the color set without touching layout state.
func (r *RingRenderer) SetPalette(pal Palette) { r.palette = pal }

// Render blends the two envelopes by blend and draws one closed polyline per
// layer. Each layer scales and pushes out the blended radius, spins and
// wobbles at its own rate, bulges where the cloud is dense and lifts where
// it is tall. t is animation time in seconds.
func (r *RingRenderer) Render(s Surface, a, b *envelope.Envelope, blend, t float64) {
	env := envelope.Blend(a, b, blend)
	bins := env.Bins()
	if bins == 0 || r.layers <= 0 {
		return
	}
	if cap(r.verts) < bins {
		r.verts = make([]Vec2, bins)
	}
	verts := r.verts[:bins]

	rot := t * 0.6
	for layer := 0; layer < r.layers; layer++ {
		l := float64(layer)
		col := r.palette.Ring
		col.A = ringAlpha(layer, r.layers)

		scale := 1 + l*0.03
		gap := 6 + l*1.2
		wiggleAmp := 4 + l*0.8
		wiggleFreq := 1.6 + l*0.05
		wigglePhase := rot * (0.4 + l*0.02)
		spin := rot * (0.08 + l*0.008)

		for i := 0; i < bins; i++ {
			theta := float64(i) / float64(bins) * 2 * math.Pi
			bulge := (env.Density[i]-0.45)*40 + env.Height[i]*0.08
			rad := env.Radius[i]*scale + l*gap + fastSin(theta*wiggleFreq+wigglePhase)*wiggleAmp + bulge
			sin, cos := fastSinCos(theta + spin)
			verts[i] = Vec2{
				X: r.cx + rad*cos,
				Y: r.cy + rad*sin - env.Height[i]*0.12 - l*1.6,
			}
		}
		s.ClosedPolyline(verts, col)
	}
}

// ringAlpha fades the stack outward: the innermost layer is strongest and
// opacity decays linearly with layer index, clamped to [10, 255].
func ringAlpha(layer, layers int) uint8 {
	a := 30 + float64(layers-layer)*160/float64(layers)
	if a < 10 {
		a = 10
	}
	if a > 255 {
		a = 255
	}
	return uint8(a)
}
