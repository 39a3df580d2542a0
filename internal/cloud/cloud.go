// Package cloud generates the gaussian point clouds that drive the
// visualization. A PointSet is immutable once generated; animation works by
// interpolating between whole sets, never by mutating points in place.
package cloud

import (
	"math"
	"math/rand"
)

const (
	// baseHeight is the elevation at the cloud center. Elevation falls off
	// linearly with planar distance from the center before noise and the
	// data multiplier are applied.
	baseHeight = 160.0

	// heightJitter is the stddev of the gaussian noise added to every
	// point's elevation.
	heightJitter = 24.0
)

// Point is one cloud sample. X and Y are scene coordinates, Z is the
// elevation above the base plane. Phase offsets the point's bob cycle so the
// cloud shimmers instead of pulsing in lockstep; it stays fixed for the
// lifetime of the point.
type Point struct {
	X, Y, Z float64
	Phase   float64
}

// PointSet is one generated cloud. Sets produced by the same Generator have
// identical length, which is what makes index-aligned interpolation between
// them valid.
type PointSet []Point

// Generator produces point sets scattered around a fixed center. It owns its
// *rand.Rand, so runs with the same seed replay exactly and nothing touches
// the global source.
type Generator struct {
	cx, cy     float64
	stdX, stdY float64
	count      int
	rng        *rand.Rand
}

// NewGenerator returns a generator for count points centered on (cx, cy)
// with the given planar spreads.
func NewGenerator(cx, cy, stdX, stdY float64, count int, rng *rand.Rand) *Generator {
	return &Generator{cx: cx, cy: cy, stdX: stdX, stdY: stdY, count: count, rng: rng}
}

// Count reports how many points each generated set contains.
func (g *Generator) Count() int { return g.count }

// Generate builds a fresh PointSet. The multiplier scales elevation only;
// the planar spread is the same for every data year. Elevation is floored at
// zero so the cloud never dips below its base plane.
func (g *Generator) Generate(multiplier float64) PointSet {
	pts := make(PointSet, g.count)
	for i := range pts {
		x := g.cx + g.rng.NormFloat64()*g.stdX
		y := g.cy + g.rng.NormFloat64()*g.stdY
		dist := math.Hypot(x-g.cx, y-g.cy)
		z := (baseHeight - dist + g.rng.NormFloat64()*heightJitter) * multiplier
		if z < 0 {
			z = 0
		}
		pts[i] = Point{X: x, Y: y, Z: z, Phase: g.rng.Float64() * 2 * math.Pi}
	}
	return pts
}

// Lerp interpolates linearly from a to b by t. t=0 yields exactly a and
// t=1 exactly b, so interpolation endpoints reproduce their inputs.
func Lerp(a, b, t float64) float64 { return a*(1-t) + b*t }
