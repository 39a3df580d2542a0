package scene

import (
	"testing"

	"github.com/san-kum/radviz/internal/cloud"
	"github.com/san-kum/radviz/internal/envelope"
)

func testEnvelopes(t *testing.T) (*envelope.Envelope, *envelope.Envelope) {
	t.Helper()
	comp := envelope.NewComputer(600, 480, 48)
	a := comp.Compute(cloud.PointSet{
		{X: 700, Y: 480, Z: 40},
		{X: 600, Y: 600, Z: 90},
		{X: 500, Y: 400, Z: 10},
	})
	b := comp.Compute(cloud.PointSet{
		{X: 650, Y: 500, Z: 120},
		{X: 540, Y: 470, Z: 60},
	})
	return a, b
}

func TestRingLayerAndVertexCounts(t *testing.T) {
	a, b := testEnvelopes(t)
	s := &recordingSurface{}
	NewRingRenderer(600, 480, 22, PaletteClassic).Render(s, a, b, 0.5, 1.25)

	if len(s.polys) != 22 {
		t.Fatalf("drew %d ring layers, want 22", len(s.polys))
	}
	for i, poly := range s.polys {
		if len(poly.verts) != a.Bins() {
			t.Fatalf("layer %d has %d vertices, want %d", i, len(poly.verts), a.Bins())
		}
	}
}

func TestRingLayersFadeOutward(t *testing.T) {
	a, b := testEnvelopes(t)
	s := &recordingSurface{}
	NewRingRenderer(600, 480, 22, PaletteClassic).Render(s, a, b, 0, 0)

	first := s.polys[0].col.A
	last := s.polys[len(s.polys)-1].col.A
	if first <= last {
		t.Fatalf("innermost alpha %d not above outermost %d", first, last)
	}
	for i := 1; i < len(s.polys); i++ {
		if s.polys[i].col.A > s.polys[i-1].col.A {
			t.Fatalf("layer %d alpha %d rises above layer %d alpha %d",
				i, s.polys[i].col.A, i-1, s.polys[i-1].col.A)
		}
	}
}

func TestRingAlphaBounds(t *testing.T) {
	for layers := 1; layers <= 40; layers++ {
		for layer := 0; layer < layers; layer++ {
			a := ringAlpha(layer, layers)
			if a < 10 {
				t.Fatalf("ringAlpha(%d, %d) = %d, below floor", layer, layers, a)
			}
		}
	}
}

func TestRingBlendEndpoints(t *testing.T) {
	a, b := testEnvelopes(t)

	// blend 0 must reproduce a pure render of a, blend 1 a pure render of b.
	cases := []struct {
		blend float64
		env   *envelope.Envelope
	}{{0, a}, {1, b}}
	for _, c := range cases {
		got := &recordingSurface{}
		want := &recordingSurface{}
		NewRingRenderer(600, 480, 8, PaletteClassic).Render(got, a, b, c.blend, 2.0)
		NewRingRenderer(600, 480, 8, PaletteClassic).Render(want, c.env, c.env, 0.5, 2.0)

		if len(got.polys) != len(want.polys) {
			t.Fatalf("blend %v drew %d layers, want %d", c.blend, len(got.polys), len(want.polys))
		}
		for i := range got.polys {
			for j := range got.polys[i].verts {
				if got.polys[i].verts[j] != want.polys[i].verts[j] {
					t.Fatalf("blend %v layer %d vertex %d = %+v, want %+v",
						c.blend, i, j, got.polys[i].verts[j], want.polys[i].verts[j])
				}
			}
		}
	}
}

func TestRingNoLayersNoDraws(t *testing.T) {
	a, b := testEnvelopes(t)
	s := &recordingSurface{}
	NewRingRenderer(600, 480, 0, PaletteClassic).Render(s, a, b, 0.5, 1.0)
	if len(s.polys) != 0 {
		t.Fatalf("drew %d layers with layer count 0", len(s.polys))
	}
}
