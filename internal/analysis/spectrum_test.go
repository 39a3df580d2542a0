package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumSinusoid(t *testing.T) {
	n := 32
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}

	ps := PowerSpectrum(vals)
	if len(ps) != n/2 {
		t.Fatalf("got %d bins, want %d", len(ps), n/2)
	}

	// 32 samples at period 8 put all energy in bin 4.
	peak := 0
	for i, v := range ps {
		if v > ps[peak] {
			peak = i
		}
	}
	if peak != 4 {
		t.Errorf("got peak at bin %d, want 4", peak)
	}
}

func TestPowerSpectrumShortInput(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("got %v for nil input, want nil", ps)
	}
	if ps := PowerSpectrum([]float64{1.0}); ps != nil {
		t.Errorf("got %v for single sample, want nil", ps)
	}
}

func TestDominantPeriodSinusoid(t *testing.T) {
	n := 32
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 5 + 2*math.Sin(2*math.Pi*float64(i)/8)
	}

	period, ok := DominantPeriod(vals)
	if !ok {
		t.Fatal("got ok=false for a clean sinusoid")
	}
	if math.Abs(period-8) > 1e-9 {
		t.Errorf("got period %v, want 8", period)
	}
}

func TestDominantPeriodConstantSeries(t *testing.T) {
	vals := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	if _, ok := DominantPeriod(vals); ok {
		t.Error("got ok=true for a constant series, want false")
	}
}

func TestDominantPeriodShortSeries(t *testing.T) {
	if _, ok := DominantPeriod([]float64{1, 2, 3}); ok {
		t.Error("got ok=true for a three-sample series, want false")
	}
}
