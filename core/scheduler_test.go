package core

import "testing"

func TestTimerDispatchOrder(t *testing.T) {
	resetHardware(t)

	var fired []uint32
	handler := func(tm *Timer) uint8 {
		fired = append(fired, tm.WakeTime)
		return SF_DONE
	}

	for _, wake := range []uint32{300, 100, 200} {
		ScheduleTimer(&Timer{WakeTime: wake, Handler: handler})
	}

	TimerDispatch(150)
	if len(fired) != 1 || fired[0] != 100 {
		t.Fatalf("Expected only timer 100 to fire, got %v", fired)
	}

	TimerDispatch(300)
	if len(fired) != 3 || fired[1] != 200 || fired[2] != 300 {
		t.Errorf("Expected 200 then 300, got %v", fired)
	}
}

func TestTimerDispatchAcrossWrap(t *testing.T) {
	resetHardware(t)

	var fired []uint32
	handler := func(tm *Timer) uint8 {
		fired = append(fired, tm.WakeTime)
		return SF_DONE
	}

	// 0x10 is after 0xFFFFFFF0 once the counter wraps
	ScheduleTimer(&Timer{WakeTime: 0x10, Handler: handler})
	ScheduleTimer(&Timer{WakeTime: 0xFFFFFFF0, Handler: handler})

	TimerDispatch(0xFFFFFFF8)
	if len(fired) != 1 || fired[0] != 0xFFFFFFF0 {
		t.Fatalf("Expected only 0xFFFFFFF0 to fire before wrap, got %#x", fired)
	}

	TimerDispatch(0x20)
	if len(fired) != 2 || fired[1] != 0x10 {
		t.Errorf("Expected 0x10 to fire after wrap, got %#x", fired)
	}
}

func TestTimerReschedule(t *testing.T) {
	resetHardware(t)

	count := 0
	tm := &Timer{WakeTime: 10}
	tm.Handler = func(tm *Timer) uint8 {
		count++
		if count < 3 {
			tm.WakeTime += 10
			return SF_RESCHEDULE
		}
		return SF_DONE
	}
	ScheduleTimer(tm)

	TimerDispatch(100)
	if count != 3 {
		t.Errorf("Expected 3 runs, got %d", count)
	}
	if timerList != nil {
		t.Error("Timer list not empty after final SF_DONE")
	}
}

func TestProcessTimersUsesSystemTimer(t *testing.T) {
	resetHardware(t)

	_, timer := newTestTimer(t)
	SetSystemTimer(timer)
	SetCycleCount(1_000)

	fired := false
	ScheduleTimer(&Timer{
		WakeTime: GetTime() + TimerFromUS(10),
		Handler: func(*Timer) uint8 {
			fired = true
			return SF_DONE
		},
	})

	ProcessTimers()
	if fired {
		t.Fatal("Timer fired early")
	}

	AdvanceCycles(210)
	ProcessTimers()
	if !fired {
		t.Error("Timer did not fire after 10us")
	}
}

func TestTimerUnitConversion(t *testing.T) {
	resetHardware(t)

	_, timer := newTestTimer(t)
	SetSystemTimer(timer)

	if got := TimerFromUS(1000); got != 21_000 {
		t.Errorf("TimerFromUS(1000) = %d, expected 21000", got)
	}
	if got := TimerToUS(21_000); got != 1000 {
		t.Errorf("TimerToUS(21000) = %d, expected 1000", got)
	}
}

func TestMustSystemTimerPanics(t *testing.T) {
	resetHardware(t)

	expectPanic(t, "GetTime without timer", func() { GetTime() })
}
