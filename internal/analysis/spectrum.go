package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude per frequency bin over the first half
// of the spectrum; the input is real, so the upper half mirrors. Any input
// length works, including non-powers of two. Fewer than two samples yield
// nil.
func PowerSpectrum(vals []float64) []float64 {
	if len(vals) < 2 {
		return nil
	}
	spectrum := fft.FFTReal(vals)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod estimates the strongest cycle length of an evenly spaced
// series: the peak non-DC bin mapped back to samples per cycle. ok is false
// when the series is shorter than four samples or the spectrum is flat.
func DominantPeriod(vals []float64) (period float64, ok bool) {
	if len(vals) < 4 {
		return 0, false
	}
	ps := PowerSpectrum(vals)
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if ps[best] <= 1e-12 {
		return 0, false
	}
	// Bin k holds k full cycles across the series.
	return float64(len(vals)) / float64(best), true
}
