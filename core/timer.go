package core

import "time"

var (
	systemTimer    MonoTimer
	systemTimerSet bool
)

// SetSystemTimer is called by target-specific code once the MonoTimer has
// been built, so core code can read the time without carrying the timer.
func SetSystemTimer(t MonoTimer) {
	systemTimer = t
	systemTimerSet = true
}

// MustSystemTimer returns the registered timer or panics if missing.
func MustSystemTimer() MonoTimer {
	if !systemTimerSet {
		panic("system timer not configured")
	}
	return systemTimer
}

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return MustSystemTimer().Now().Ticks()
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return MustSystemTimer().Frequency().DurationToTicks(time.Duration(us) * time.Microsecond)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return uint32(MustSystemTimer().Frequency().TicksToDuration(ticks) / time.Microsecond)
}

// ProcessTimers runs every scheduled timer that is due at the current time
func ProcessTimers() {
	TimerDispatch(GetTime())
}

// resetSystemTimer clears the registered timer (for testing)
func resetSystemTimer() {
	systemTimer = MonoTimer{}
	systemTimerSet = false
}
