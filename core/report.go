package core

import "time"

// ReportPrefix starts every clock report line
const ReportPrefix = "clocks"

// FormatReport renders a clock report line for the host probe:
//
//	clocks seq=<n> hfclk=<hz> lfclk=<hz> timer=<hz> cycles=<raw>
//
// cycles is a raw counter value; the host works out the real counter rate
// from consecutive reports.
func FormatReport(seq uint32, clocks Clocks, timer MonoTimer, cycles uint32) string {
	return ReportPrefix +
		" seq=" + utoa(seq) +
		" hfclk=" + utoa(uint32(clocks.HFClk())) +
		" lfclk=" + utoa(uint32(clocks.LFClk())) +
		" timer=" + utoa(uint32(timer.Frequency())) +
		" cycles=" + utoa(cycles)
}

// Reporter writes a clock report at a fixed interval from the timer
// schedule. Reports go straight to the writer, not through the debug flag.
type Reporter struct {
	Timer Timer

	clocks   Clocks
	mono     MonoTimer
	interval uint32
	seq      uint32
	write    DebugWriter
}

// StartReporter schedules the first report one interval from now. The
// system timer must be registered; ProcessTimers drives it from then on.
func StartReporter(clocks Clocks, interval time.Duration, write DebugWriter) *Reporter {
	mono := MustSystemTimer()
	r := &Reporter{
		clocks:   clocks,
		mono:     mono,
		interval: mono.Frequency().DurationToTicks(interval),
		write:    write,
	}
	if r.interval == 0 {
		panic("report interval rounds to zero ticks")
	}
	r.Timer.WakeTime = GetTime() + r.interval
	r.Timer.Handler = r.fire
	ScheduleTimer(&r.Timer)
	return r
}

// Sent returns how many reports have been written
func (r *Reporter) Sent() uint32 {
	return r.seq
}

func (r *Reporter) fire(t *Timer) uint8 {
	r.write(FormatReport(r.seq, r.clocks, r.mono, r.mono.Now().Ticks()))
	r.seq++

	t.WakeTime += r.interval
	return SF_RESCHEDULE
}
