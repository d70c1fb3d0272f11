package probe

import (
	"errors"
	"fmt"
	"math"
	"time"

	"tomuhal/core"
)

// ErrNotEnoughSamples is returned by Estimate before two reports arrived
var ErrNotEnoughSamples = errors.New("need at least two reports")

// ErrRestarted is returned by Add when the report sequence goes backwards,
// which means the board restarted. The estimator starts over from that report.
var ErrRestarted = errors.New("board restarted")

// Estimate is the measured cycle counter rate
type Estimate struct {
	Nominal  core.Hertz
	Measured float64 // Hz
	PPM      float64 // (Measured - Nominal) / Nominal in parts per million
	Samples  int
	Missed   uint32 // reports lost between samples
	Span     time.Duration
}

// Within reports whether the measured rate is within tolerance ppm of nominal
func (e Estimate) Within(tolerance float64) bool {
	return math.Abs(e.PPM) <= tolerance
}

func (e Estimate) String() string {
	return fmt.Sprintf("nominal=%v measured=%.0fHz error=%+.1fppm samples=%d missed=%d span=%v",
		e.Nominal, e.Measured, e.PPM, e.Samples, e.Missed, e.Span)
}

// Estimator accumulates reports. Consecutive reports must be less than one
// counter wrap apart (about 204s at 21MHz).
type Estimator struct {
	first   time.Time
	last    time.Time
	lastRep Report
	ticks   uint64
	samples int
	missed  uint32
}

// Add records a report received at host time at
func (e *Estimator) Add(r Report, at time.Time) error {
	if e.samples == 0 {
		e.start(r, at)
		return nil
	}

	if r.Seq <= e.lastRep.Seq {
		last := e.lastRep.Seq
		e.start(r, at)
		return fmt.Errorf("%w: seq %d after %d", ErrRestarted, r.Seq, last)
	}
	if r.Timer != e.lastRep.Timer {
		last := e.lastRep.Timer
		e.start(r, at)
		return fmt.Errorf("%w: timer rate changed from %v to %v", ErrRestarted, last, r.Timer)
	}

	// modulo 2^32, see core.Instant.Elapsed
	e.ticks += uint64(r.Cycles - e.lastRep.Cycles)
	e.missed += r.Seq - e.lastRep.Seq - 1
	e.samples++
	e.last = at
	e.lastRep = r
	return nil
}

func (e *Estimator) start(r Report, at time.Time) {
	*e = Estimator{
		first:   at,
		last:    at,
		lastRep: r,
		samples: 1,
	}
}

// Samples returns how many reports are in the current estimate
func (e *Estimator) Samples() int {
	return e.samples
}

// Estimate returns the cycle counter rate over all samples so far
func (e *Estimator) Estimate() (Estimate, error) {
	if e.samples < 2 {
		return Estimate{}, ErrNotEnoughSamples
	}
	span := e.last.Sub(e.first)
	if span <= 0 {
		return Estimate{}, fmt.Errorf("reports span %v of host time", span)
	}

	measured := float64(e.ticks) / span.Seconds()
	nominal := e.lastRep.Timer
	var ppm float64
	if nominal != 0 {
		ppm = (measured - float64(nominal)) / float64(nominal) * 1e6
	}

	return Estimate{
		Nominal:  nominal,
		Measured: measured,
		PPM:      ppm,
		Samples:  e.samples,
		Missed:   e.missed,
		Span:     span,
	}, nil
}
