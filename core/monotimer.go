// Monotonic timer
// Built on the free-running DWT cycle counter. Once started the counter can
// never be stopped or reset, so Instants stay comparable for the life of the
// program.

package core

import "time"

// MonoTimer is a monotonic nondecreasing timer
type MonoTimer struct {
	frequency Hertz
}

// NewMonoTimer starts the cycle counter and keeps the DWT handle for good:
// after this call nothing can stop or reset CYCCNT.
//
// trace must come from EnableTrace and clocks from Freeze; anything else
// panics. The timer runs at clocks.HFClk().
func NewMonoTimer(dwt *DWT, trace TraceEnabled, clocks Clocks) MonoTimer {
	if !trace.Valid() {
		panic("MonoTimer requires trace to be enabled")
	}
	if !clocks.Frozen() {
		panic("MonoTimer requires frozen clocks")
	}
	dwt.take()
	setDWTCtrlBits(dwtCtrlCYCCNTENA)

	DebugPrintln("[MONO] cycle counter started at " + clocks.HFClk().String())
	return MonoTimer{
		frequency: clocks.HFClk(),
	}
}

// Frequency returns the frequency the timer counts at
func (t MonoTimer) Frequency() Hertz {
	return t.frequency
}

// Now returns an Instant for the current counter value
func (t MonoTimer) Now() Instant {
	return Instant{now: readCycleCount()}
}

// ElapsedDuration converts the ticks elapsed since i to real time
func (t MonoTimer) ElapsedDuration(i Instant) time.Duration {
	return t.frequency.TicksToDuration(i.Elapsed())
}

// Instant is a snapshot of the cycle counter
type Instant struct {
	now uint32
}

// Ticks returns the raw counter value captured in i
func (i Instant) Ticks() uint32 {
	return i.now
}

// Elapsed returns the ticks elapsed since i was captured. The subtraction is
// modulo 2^32, which is correct across a counter wrap as long as less than
// one full wrap has passed.
func (i Instant) Elapsed() uint32 {
	return readCycleCount() - i.now
}

// Since returns the ticks between earlier and i, modulo 2^32
func (i Instant) Since(earlier Instant) uint32 {
	return i.now - earlier.now
}
