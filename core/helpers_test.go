package core

import "testing"

// resetHardware returns the simulated registers and peripheral singleton to
// their power-on state
func resetHardware(t *testing.T) {
	t.Helper()
	resetRegisters()
	resetPeripherals()
	resetSystemTimer()
	resetTimers()
	t.Cleanup(func() {
		resetRegisters()
		resetPeripherals()
		resetSystemTimer()
		resetTimers()
	})
}

// expectPanic fails the test if fn does not panic
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		} else {
			t.Logf("%s: panicked with %v", name, r)
		}
	}()
	fn()
}

// newTestTimer walks the whole bring-up sequence and returns the result
func newTestTimer(t *testing.T) (Clocks, MonoTimer) {
	t.Helper()
	p, ok := TakePeripherals()
	if !ok {
		t.Fatal("TakePeripherals failed")
	}
	clocks := p.CMU.Constrain().Freeze()
	trace := EnableTrace(p.DCB)
	return clocks, NewMonoTimer(p.DWT, trace, clocks)
}
