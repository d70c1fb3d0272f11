// Frequency units
// Typed wrappers for bit rates and frequencies. Conversions only go toward
// the finer unit (MHz -> kHz -> Hz) so no conversion ever rounds.

package core

import (
	"errors"
	"math"
	"time"
)

// ErrFrequencyOverflow is returned by the checked conversions when the
// converted value does not fit in 32 bits.
var ErrFrequencyOverflow = errors.New("frequency overflows uint32")

// Bps is a bit rate in bits per second
type Bps uint32

// Hertz is a frequency in Hz
type Hertz uint32

// KiloHertz is a frequency in kHz
type KiloHertz uint32

// MegaHertz is a frequency in MHz
type MegaHertz uint32

// BPS wraps n as bits per second
func BPS(n uint32) Bps { return Bps(n) }

// Hz wraps n as hertz
func Hz(n uint32) Hertz { return Hertz(n) }

// KHz wraps n as kilohertz
func KHz(n uint32) KiloHertz { return KiloHertz(n) }

// MHz wraps n as megahertz
func MHz(n uint32) MegaHertz { return MegaHertz(n) }

// scale multiplies v by factor in 64 bits, reporting whether the result fits.
func scale(v, factor uint32) (uint32, bool) {
	r := uint64(v) * uint64(factor)
	if r > math.MaxUint32 {
		return math.MaxUint32, false
	}
	return uint32(r), true
}

// Hertz converts to Hz, saturating at math.MaxUint32.
func (k KiloHertz) Hertz() Hertz {
	v, _ := scale(uint32(k), 1_000)
	return Hertz(v)
}

// CheckedHertz converts to Hz or fails with ErrFrequencyOverflow.
func (k KiloHertz) CheckedHertz() (Hertz, error) {
	v, ok := scale(uint32(k), 1_000)
	if !ok {
		return 0, ErrFrequencyOverflow
	}
	return Hertz(v), nil
}

// Hertz converts to Hz, saturating at math.MaxUint32.
func (m MegaHertz) Hertz() Hertz {
	v, _ := scale(uint32(m), 1_000_000)
	return Hertz(v)
}

// CheckedHertz converts to Hz or fails with ErrFrequencyOverflow.
func (m MegaHertz) CheckedHertz() (Hertz, error) {
	v, ok := scale(uint32(m), 1_000_000)
	if !ok {
		return 0, ErrFrequencyOverflow
	}
	return Hertz(v), nil
}

// KiloHertz converts to kHz, saturating at math.MaxUint32.
func (m MegaHertz) KiloHertz() KiloHertz {
	v, _ := scale(uint32(m), 1_000)
	return KiloHertz(v)
}

// CheckedKiloHertz converts to kHz or fails with ErrFrequencyOverflow.
func (m MegaHertz) CheckedKiloHertz() (KiloHertz, error) {
	v, ok := scale(uint32(m), 1_000)
	if !ok {
		return 0, ErrFrequencyOverflow
	}
	return KiloHertz(v), nil
}

// Period returns the duration of one cycle, or 0 for a zero frequency.
func (f Hertz) Period() time.Duration {
	if f == 0 {
		return 0
	}
	return time.Second / time.Duration(f)
}

// TicksToDuration converts a tick count at this frequency to real time.
// Returns 0 for a zero frequency.
func (f Hertz) TicksToDuration(ticks uint32) time.Duration {
	if f == 0 {
		return 0
	}
	// ticks < 2^32 and 1e9 < 2^30, so the product fits in int64
	return time.Duration(uint64(ticks) * uint64(time.Second) / uint64(f))
}

// DurationToTicks converts d to a tick count at this frequency, rounding
// down and saturating at math.MaxUint32. Negative durations yield 0.
func (f Hertz) DurationToTicks(d time.Duration) uint32 {
	if d <= 0 || f == 0 {
		return 0
	}
	secs := uint64(d / time.Second)
	if secs > math.MaxUint32 {
		return math.MaxUint32
	}
	whole := secs * uint64(f)
	frac := uint64(d%time.Second) * uint64(f) / uint64(time.Second)
	if whole > math.MaxUint32 || whole+frac > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(whole + frac)
}

func (b Bps) String() string       { return utoa(uint32(b)) + "bps" }
func (f Hertz) String() string     { return utoa(uint32(f)) + "Hz" }
func (k KiloHertz) String() string { return utoa(uint32(k)) + "kHz" }
func (m MegaHertz) String() string { return utoa(uint32(m)) + "MHz" }
