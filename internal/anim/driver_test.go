package anim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/radviz/internal/cloud"
	"github.com/san-kum/radviz/internal/dataset"
)

type stubClock struct{ t float64 }

func (c *stubClock) Now() float64 { return c.t }

func newTestDriver(entries []dataset.Entry, clk *stubClock) *Driver {
	gen := cloud.NewGenerator(600, 480, 80, 60, 64, rand.New(rand.NewSource(1)))
	return NewDriver(dataset.NewSeries(entries), gen, clk, Config{SwitchInterval: 3.0, TransitionDuration: 1.2})
}

func threeYears() []dataset.Entry {
	return []dataset.Entry{{Year: 2001, Total: 10}, {Year: 2002, Total: 50}, {Year: 2003, Total: 30}}
}

func TestStartsIdleOnFirstYear(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(threeYears(), clk)
	f := d.Advance()
	if f.Year != 2001 || f.Ratio != 1 {
		t.Fatalf("initial frame year %d ratio %v, want 2001 at ratio 1", f.Year, f.Ratio)
	}
	if len(f.Prev) != len(f.Target) {
		t.Fatalf("cloud pair lengths differ: %d vs %d", len(f.Prev), len(f.Target))
	}
}

func TestSwitchRequiresElapsedInterval(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(threeYears(), clk)

	clk.t = 2.99
	if f := d.Advance(); f.Year != 2001 {
		t.Fatalf("switched early at t=%v to year %d", clk.t, f.Year)
	}
	clk.t = 3.0 // boundary: interval must be exceeded, not met
	if f := d.Advance(); f.Year != 2001 {
		t.Fatalf("switched at exactly the interval to year %d", f.Year)
	}
	clk.t = 3.01
	f := d.Advance()
	if f.Year != 2002 {
		t.Fatalf("year %d after interval elapsed, want 2002", f.Year)
	}
	if f.Ratio != 0 {
		t.Fatalf("transition started at ratio %v, want 0", f.Ratio)
	}
}

func TestTransitionRatioMonotonicReachesOne(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(threeYears(), clk)

	clk.t = 3.01
	prev := d.Advance().Ratio
	sawOne := false
	for step := 0; step < 30; step++ {
		clk.t += 0.1
		f := d.Advance()
		if f.Ratio < prev && !sawOne {
			t.Fatalf("ratio fell from %v to %v mid-transition", prev, f.Ratio)
		}
		if f.Ratio > 1 {
			t.Fatalf("ratio %v above 1", f.Ratio)
		}
		if f.Ratio == 1 {
			sawOne = true
		}
		if len(f.Prev) != len(f.Target) {
			t.Fatalf("cloud pair lengths differ mid-transition: %d vs %d", len(f.Prev), len(f.Target))
		}
		prev = f.Ratio
	}
	if !sawOne {
		t.Fatal("ratio never reached 1.0")
	}
}

func TestTransitionCompletesExactly(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(threeYears(), clk)

	clk.t = 4.0
	d.Advance() // switch, transition starts at 4.0
	clk.t = 4.0 + 1.2
	f := d.Advance()
	if f.Ratio != 1 {
		t.Fatalf("ratio %v at full duration, want exactly 1", f.Ratio)
	}
	// Settled: prev and target are now the same cloud.
	if &f.Prev[0] != &f.Target[0] {
		t.Fatal("prev and target differ after transition completed")
	}
}

func TestYearsCycle(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(threeYears(), clk)

	want := []int{2002, 2003, 2001, 2002}
	for _, y := range want {
		clk.t += 3.01
		if f := d.Advance(); f.Year != y {
			t.Fatalf("advanced to year %d, want %d", f.Year, y)
		}
		clk.t += 1.3 // let the morph settle
		d.Advance()
	}
}

func TestEmptySeriesDegrades(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(nil, clk)

	first := d.Advance()
	if first.HasData {
		t.Fatal("frame claims data on an empty series")
	}
	if first.Ratio != 1 {
		t.Fatalf("degraded ratio %v, want pinned 1", first.Ratio)
	}
	if got, want := first.Readout(), "Year: #   Total: -"; got != want {
		t.Fatalf("degraded readout %q, want %q", got, want)
	}

	clk.t = 3600
	later := d.Advance()
	if later.Ratio != 1 {
		t.Fatalf("degraded ratio drifted to %v", later.Ratio)
	}
	if &later.Prev[0] != &first.Prev[0] || &later.Target[0] != &first.Prev[0] {
		t.Fatal("degraded mode regenerated the cloud")
	}
}

func TestMultiplierScenario(t *testing.T) {
	s := dataset.NewSeries([]dataset.Entry{{Year: 2000, Total: 10}, {Year: 2001, Total: 50}, {Year: 2002, Total: 30}})
	cases := []struct {
		idx  int
		want float64
	}{{0, 0.8}, {1, 3.0}, {2, 1.9}}
	for _, c := range cases {
		if got := Multiplier(s.Normalized(c.idx)); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("multiplier for entry %d = %v, want %v", c.idx, got, c.want)
		}
	}
}

func TestMultiplierRange(t *testing.T) {
	for norm := 0.0; norm <= 1.0; norm += 0.05 {
		m := Multiplier(norm)
		if m < 0.8-1e-9 || m > 3.0+1e-9 {
			t.Fatalf("Multiplier(%v) = %v outside [0.8, 3.0]", norm, m)
		}
	}
}

func TestReadoutFormat(t *testing.T) {
	f := Frame{HasData: true, Year: 2007, Total: 1234.56}
	if got, want := f.Readout(), "Year: 2007   Total: 1234.6"; got != want {
		t.Fatalf("readout %q, want %q", got, want)
	}
}

func TestResetReturnsToFirstYear(t *testing.T) {
	clk := &stubClock{}
	d := newTestDriver(threeYears(), clk)

	clk.t = 3.01
	d.Advance()
	clk.t = 7.0
	d.Advance()

	d.Reset()
	f := d.Advance()
	if f.Year != 2001 || f.Ratio != 1 {
		t.Fatalf("after reset: year %d ratio %v, want 2001 at ratio 1", f.Year, f.Ratio)
	}
}
