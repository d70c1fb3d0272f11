//go:build tinygo && cortexm

package main

import (
	"machine"
	"time"

	"tomuhal/core"
)

const reportInterval = time.Second

// writeLine writes one line to the debug UART, blocking until queued
func writeLine(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte("\r\n"))
}

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	// Route debug output to the UART before bring-up so the freeze and
	// trace messages are visible
	core.SetDebugWriter(writeLine)
	core.SetDebugEnabled(true)

	p, ok := core.TakePeripherals()
	if !ok {
		return
	}

	clocks := p.CMU.Constrain().Freeze()
	trace := core.EnableTrace(p.DCB)
	timer := core.NewMonoTimer(p.DWT, trace, clocks)
	core.SetSystemTimer(timer)

	core.StartReporter(clocks, reportInterval, writeLine)
	delay := core.NewDelay(timer)

	for {
		// Recover from panics in the main loop to keep reporting
		func() {
			defer func() {
				if r := recover(); r != nil {
					core.DebugPrintln("[MAIN] recovered from panic")
				}
			}()

			core.ProcessTimers()
		}()

		// Yield to other goroutines
		delay.DelayUs(100)
	}
}
