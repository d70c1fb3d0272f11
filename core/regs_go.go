//go:build !tinygo

package core

import "sync/atomic"

// Simulated Cortex-M debug registers for host builds. The cycle counter only
// moves while both TRCENA and CYCCNTENA are set, as on hardware.
var (
	simDEMCR   atomic.Uint32
	simDWTCtrl atomic.Uint32
	simCycles  atomic.Uint32
	simStep    atomic.Uint32
)

func setDEMCRBits(bits uint32) {
	simDEMCR.Or(bits)
}

func readDEMCR() uint32 {
	return simDEMCR.Load()
}

func setDWTCtrlBits(bits uint32) {
	simDWTCtrl.Or(bits)
}

func readDWTCtrl() uint32 {
	return simDWTCtrl.Load()
}

func counterRunning() bool {
	return simDEMCR.Load()&demcrTRCENA != 0 && simDWTCtrl.Load()&dwtCtrlCYCCNTENA != 0
}

// readCycleCount returns the simulated CYCCNT value. When a step is set the
// counter advances by that many cycles after every read.
func readCycleCount() uint32 {
	step := simStep.Load()
	if step == 0 || !counterRunning() {
		return simCycles.Load()
	}
	return simCycles.Add(step) - step
}

// SetCycleCount sets the simulated cycle counter (for testing)
func SetCycleCount(cycles uint32) {
	simCycles.Store(cycles)
}

// AdvanceCycles moves the simulated counter forward by n cycles, wrapping at
// 2^32. Has no effect until the counter has been enabled.
func AdvanceCycles(n uint32) {
	if counterRunning() {
		simCycles.Add(n)
	}
}

// SetCycleStep makes every counter read advance the simulated counter by
// step cycles, standing in for a running core (for testing)
func SetCycleStep(step uint32) {
	simStep.Store(step)
}

// resetRegisters clears all simulated register state
func resetRegisters() {
	simDEMCR.Store(0)
	simDWTCtrl.Store(0)
	simCycles.Store(0)
	simStep.Store(0)
}
