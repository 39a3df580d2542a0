// Package envelope reduces a point cloud to per-angle radial statistics.
// The contour rings are drawn from these envelopes rather than from the raw
// points, which keeps the ring pass independent of cloud size.
package envelope

import (
	"math"

	"github.com/san-kum/radviz/internal/cloud"
)

const (
	// DefaultBins is the angular resolution used when no override is
	// configured. One bin covers 2pi/bins radians.
	DefaultBins = 480

	// defaultRadius stands in for bins that contain no points, so sparse
	// clouds still yield a closed contour.
	defaultRadius = 80.0

	// smoothReach is the half-width of the circular moving average applied
	// to radius and height. Density stays unsmoothed; the bulge term needs
	// its sharpness.
	smoothReach = 3
)

// Envelope holds the per-bin view of one cloud: mean radius, mean elevation
// and occupancy normalized to the fullest bin. The three slices are parallel
// and always rebuilt together, never mutated in place.
type Envelope struct {
	Radius  []float64
	Height  []float64
	Density []float64
}

// Bins reports the angular resolution of the envelope.
func (e *Envelope) Bins() int { return len(e.Radius) }

// Computer derives envelopes around a fixed center. Envelopes produced by
// the same Computer share a bin count and can be blended together.
type Computer struct {
	cx, cy float64
	bins   int
}

// NewComputer returns a Computer centered on (cx, cy). A non-positive bins
// falls back to DefaultBins.
func NewComputer(cx, cy float64, bins int) *Computer {
	if bins <= 0 {
		bins = DefaultBins
	}
	return &Computer{cx: cx, cy: cy, bins: bins}
}

// Compute bins every point by its angle around the center and reduces each
// bin to mean radius, mean elevation and normalized occupancy. Empty bins
// report defaultRadius and zero elevation; an empty cloud therefore yields
// calm concentric rings rather than an error. Points sitting exactly on the
// center land in bin zero with radius zero.
func (c *Computer) Compute(points cloud.PointSet) *Envelope {
	env := &Envelope{
		Radius:  make([]float64, c.bins),
		Height:  make([]float64, c.bins),
		Density: make([]float64, c.bins),
	}
	counts := make([]float64, c.bins)
	radiusSum := make([]float64, c.bins)
	heightSum := make([]float64, c.bins)

	for _, p := range points {
		dx, dy := p.X-c.cx, p.Y-c.cy
		theta := math.Atan2(dy, dx)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		bin := int(theta/(2*math.Pi)*float64(c.bins)) % c.bins
		radiusSum[bin] += math.Hypot(dx, dy)
		heightSum[bin] += p.Z
		counts[bin]++
	}

	maxCount := 0.0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for i := 0; i < c.bins; i++ {
		if counts[i] > 0 {
			env.Radius[i] = radiusSum[i] / counts[i]
			env.Height[i] = heightSum[i] / counts[i]
		} else {
			env.Radius[i] = defaultRadius
		}
		env.Density[i] = counts[i] / maxCount
	}

	env.Radius = smoothCircular(env.Radius, smoothReach)
	env.Height = smoothCircular(env.Height, smoothReach)
	return env
}

// Blend interpolates two envelopes elementwise by t. Both inputs must come
// from the same Computer.
func Blend(a, b *Envelope, t float64) *Envelope {
	n := len(a.Radius)
	out := &Envelope{
		Radius:  make([]float64, n),
		Height:  make([]float64, n),
		Density: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.Radius[i] = cloud.Lerp(a.Radius[i], b.Radius[i], t)
		out.Height[i] = cloud.Lerp(a.Height[i], b.Height[i], t)
		out.Density[i] = cloud.Lerp(a.Density[i], b.Density[i], t)
	}
	return out
}

// smoothCircular averages vals over a wrapping window of 2*reach+1 bins.
func smoothCircular(vals []float64, reach int) []float64 {
	n := len(vals)
	out := make([]float64, n)
	window := float64(2*reach + 1)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := -reach; j <= reach; j++ {
			sum += vals[((i+j)%n+n)%n]
		}
		out[i] = sum / window
	}
	return out
}
