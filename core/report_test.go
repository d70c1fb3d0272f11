package core

import (
	"strings"
	"testing"
	"time"
)

func TestFormatReport(t *testing.T) {
	resetHardware(t)

	clocks, timer := newTestTimer(t)
	got := FormatReport(7, clocks, timer, 0xFFFFFFFF)

	want := "clocks seq=7 hfclk=21000000 lfclk=32768 timer=21000000 cycles=4294967295"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestReporterFiresEachInterval(t *testing.T) {
	resetHardware(t)

	clocks, timer := newTestTimer(t)
	SetSystemTimer(timer)
	// Start close to a wrap so the schedule crosses it
	SetCycleCount(0xFFFFFFFF - 30_000)

	var lines []string
	r := StartReporter(clocks, time.Millisecond, func(s string) { lines = append(lines, s) })

	ProcessTimers()
	if len(lines) != 0 {
		t.Fatalf("Report sent before the first interval: %v", lines)
	}

	for i := 0; i < 3; i++ {
		AdvanceCycles(21_000) // 1ms at 21MHz
		ProcessTimers()
	}

	if len(lines) != 3 || r.Sent() != 3 {
		t.Fatalf("Expected 3 reports, got %d (Sent=%d): %v", len(lines), r.Sent(), lines)
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "clocks seq="+utoa(uint32(i))+" ") {
			t.Errorf("Report %d out of order: %q", i, line)
		}
	}
	if timerList != &r.Timer {
		t.Error("Reporter timer not rescheduled")
	}
}

func TestReporterIgnoresDebugFlag(t *testing.T) {
	resetHardware(t)

	clocks, timer := newTestTimer(t)
	SetSystemTimer(timer)
	SetDebugEnabled(false)

	sent := 0
	StartReporter(clocks, time.Second, func(string) { sent++ })
	AdvanceCycles(21_000_000)
	ProcessTimers()

	if sent != 1 {
		t.Errorf("Expected 1 report with debug disabled, got %d", sent)
	}
}

func TestStartReporterRejectsZeroInterval(t *testing.T) {
	resetHardware(t)

	clocks, timer := newTestTimer(t)
	SetSystemTimer(timer)

	expectPanic(t, "zero interval", func() { StartReporter(clocks, 0, func(string) {}) })
}

func TestUtoa(t *testing.T) {
	testCases := map[uint32]string{
		0:          "0",
		7:          "7",
		32768:      "32768",
		4294967295: "4294967295",
	}
	for n, want := range testCases {
		if got := utoa(n); got != want {
			t.Errorf("utoa(%d) = %q, expected %q", n, got, want)
		}
	}
}
