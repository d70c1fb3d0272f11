package core

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestDelayUsWaitsForTicks(t *testing.T) {
	resetHardware(t)

	_, timer := newTestTimer(t)
	SetCycleStep(500)

	start := timer.Now()
	NewDelay(timer).DelayUs(100) // 2100 ticks at 21MHz
	SetCycleStep(0)

	if got := start.Elapsed(); got < 2_100 {
		t.Errorf("DelayUs(100) returned after %d ticks, expected at least 2100", got)
	}
}

func TestDelayMsAcrossWrap(t *testing.T) {
	resetHardware(t)

	_, timer := newTestTimer(t)
	SetCycleCount(0xFFFF0000)
	SetCycleStep(1 << 14)

	start := timer.Now()
	NewDelay(timer).DelayMs(2) // 42000 ticks
	SetCycleStep(0)

	if got := start.Elapsed(); got < 42_000 {
		t.Errorf("DelayMs(2) returned after %d ticks, expected at least 42000", got)
	}
}

func TestDelayLongerThanOneSecond(t *testing.T) {
	resetHardware(t)

	_, timer := newTestTimer(t)
	SetCycleStep(1 << 20)

	start := timer.Now()
	NewDelay(timer).DelayMs(1500) // 31.5M ticks, waited as 1s + 500ms
	SetCycleStep(0)

	if got := start.Elapsed(); got < 31_500_000 {
		t.Errorf("DelayMs(1500) returned after %d ticks", got)
	}
}

func TestDelayZero(t *testing.T) {
	resetHardware(t)

	_, timer := newTestTimer(t)
	NewDelay(timer).DelayUs(0)

	// A zero-frequency timer must not spin forever either
	NewDelay(MonoTimer{}).DelayMs(10)
}

func TestDelayLetsOtherGoroutinesRun(t *testing.T) {
	resetHardware(t)
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1))

	_, timer := newTestTimer(t)

	// The counter only moves when the ticker goroutine gets scheduled,
	// so with one P the delay must yield to finish
	var done atomic.Bool
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for !done.Load() {
			AdvanceCycles(1_000)
			runtime.Gosched()
		}
	}()

	start := timer.Now()
	NewDelay(timer).DelayUs(50) // 1050 ticks
	done.Store(true)
	<-exited

	if got := start.Elapsed(); got < 1_050 {
		t.Errorf("DelayUs(50) returned after %d ticks", got)
	}
}
