package core

import (
	"runtime"
	"time"
)

// maxWaitChunk bounds a single polling wait well below one counter wrap
const maxWaitChunk = 1 << 31

// Delay is a busy-wait delay driven by a MonoTimer. It yields to other
// goroutines while polling, so it can pace a main loop.
type Delay struct {
	timer MonoTimer
}

// NewDelay returns a Delay that counts ticks of timer
func NewDelay(timer MonoTimer) Delay {
	return Delay{timer: timer}
}

// DelayUs blocks for at least us microseconds
func (d Delay) DelayUs(us uint32) {
	d.Delay(time.Duration(us) * time.Microsecond)
}

// DelayMs blocks for at least ms milliseconds
func (d Delay) DelayMs(ms uint32) {
	d.Delay(time.Duration(ms) * time.Millisecond)
}

// Delay blocks for at least dur. Waits are done one second at a time so the
// tick budget always fits in 32 bits.
func (d Delay) Delay(dur time.Duration) {
	freq := d.timer.Frequency()
	for dur > time.Second {
		d.waitTicks(freq.DurationToTicks(time.Second))
		dur -= time.Second
	}
	d.waitTicks(freq.DurationToTicks(dur))
}

func (d Delay) waitTicks(ticks uint32) {
	for ticks > 0 {
		chunk := ticks
		if chunk > maxWaitChunk {
			chunk = maxWaitChunk
		}
		start := d.timer.Now()
		for start.Elapsed() < chunk {
			runtime.Gosched()
		}
		ticks -= chunk
	}
}
