package scene

import "math"

// sineTable holds one period of precomputed sine samples with linear
// interpolation between entries. 4096 entries keep the approximation within
// ~3e-7 of math.Sin, far below a pixel.
type sineTable struct {
	vals []float64
	n    int
}

var defaultTable = newSineTable(4096)

func newSineTable(n int) *sineTable {
	t := &sineTable{vals: make([]float64, n), n: n}
	for i := range t.vals {
		t.vals[i] = math.Sin(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

func (t *sineTable) sin(x float64) float64 {
	// Normalize to [0, 2π)
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)

	i0 := i % t.n
	i1 := (i + 1) % t.n

	return t.vals[i0]*(1-frac) + t.vals[i1]*frac
}

// fastSin returns approximate sin via table lookup.
func fastSin(x float64) float64 { return defaultTable.sin(x) }

// fastSinCos returns approximate sin and cos; cos reads the same table a
// quarter period ahead.
func fastSinCos(x float64) (sin, cos float64) {
	return defaultTable.sin(x), defaultTable.sin(x + math.Pi/2)
}
