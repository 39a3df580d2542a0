// Package anim walks the visualization through its yearly dataset: a small
// state machine that idles on the current cloud, then morphs toward a
// freshly generated target each time the switch interval elapses.
package anim

import (
	"fmt"

	"github.com/san-kum/radviz/internal/cloud"
	"github.com/san-kum/radviz/internal/dataset"
)

// Clock supplies animation time in seconds, monotonic within a run. The
// window feeds accumulated frame deltas, the terminal view tick counts, and
// tests a hand-stepped stub.
type Clock interface {
	Now() float64
}

// Config times the driver.
type Config struct {
	// SwitchInterval is the idle time between year advances, in seconds.
	SwitchInterval float64
	// TransitionDuration is how long the morph to the next cloud takes.
	TransitionDuration float64
}

// Frame is one rendered instant: the cloud pair to interpolate, how far the
// morph has progressed, and the dataset entry on display.
type Frame struct {
	Time    float64
	Ratio   float64
	Prev    cloud.PointSet
	Target  cloud.PointSet
	Year    int
	Total   float64
	Norm    float64
	HasData bool
}

// Readout is the HUD line for the frame.
func (f Frame) Readout() string {
	if !f.HasData {
		return "Year: #   Total: -"
	}
	return fmt.Sprintf("Year: %d   Total: %.1f", f.Year, f.Total)
}

// Multiplier maps a normalized total onto the elevation scale. The floor
// keeps lean years visible; the strongest year grows to triple height.
func Multiplier(norm float64) float64 { return 0.8 + norm*2.2 }

// Driver owns the cloud pair and the position in the series. It is either
// Idle (ratio pinned at 1) or Transitioning (ratio climbing 0 to 1); an
// empty series idles forever on a single static cloud.
type Driver struct {
	series dataset.Series
	gen    *cloud.Generator
	clock  Clock
	cfg    Config

	idx           int
	lastSwitch    float64
	transitionAt  float64
	transitioning bool
	ratio         float64
	prev, target  cloud.PointSet
}

// NewDriver builds the initial cloud from the first year (multiplier 1.0
// when the series is empty) and starts idle.
func NewDriver(series dataset.Series, gen *cloud.Generator, clock Clock, cfg Config) *Driver {
	d := &Driver{series: series, gen: gen, clock: clock, cfg: cfg}
	d.start()
	return d
}

func (d *Driver) start() {
	d.idx = 0
	d.lastSwitch = d.clock.Now()
	d.transitioning = false
	d.ratio = 1
	mult := 1.0
	if !d.series.Empty() {
		mult = Multiplier(d.series.Normalized(0))
	}
	d.prev = d.gen.Generate(mult)
	d.target = d.prev
}

// Reset returns to the first year with a fresh cloud.
func (d *Driver) Reset() { d.start() }

// Advance moves the state machine to the clock's current time and returns
// the frame to render. Within one transition the ratio is monotonic and
// reaches exactly 1.0, at which point the target becomes the resting cloud.
func (d *Driver) Advance() Frame {
	now := d.clock.Now()

	if !d.series.Empty() {
		if now-d.lastSwitch > d.cfg.SwitchInterval {
			d.idx = (d.idx + 1) % d.series.Len()
			d.lastSwitch = now
			d.transitionAt = now
			d.transitioning = true
			d.ratio = 0
			d.target = d.gen.Generate(Multiplier(d.series.Normalized(d.idx)))
		}
		if d.transitioning {
			d.ratio = (now - d.transitionAt) / d.cfg.TransitionDuration
			if d.ratio >= 1 {
				d.ratio = 1
				d.prev = d.target
				d.transitioning = false
			}
		}
	}

	f := Frame{
		Time:   now,
		Ratio:  d.ratio,
		Prev:   d.prev,
		Target: d.target,
	}
	if !d.series.Empty() {
		f.HasData = true
		f.Year = d.series.Entries[d.idx].Year
		f.Total = d.series.Entries[d.idx].Total
		f.Norm = d.series.Normalized(d.idx)
	}
	return f
}
