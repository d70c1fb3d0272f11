//go:build tinygo

package core

import (
	"runtime/volatile"
	"unsafe"
)

// ARMv7-M (Cortex-M3 and up) debug register map. ARMv6-M parts such as
// the Cortex-M0+ in the EFM32HG have no CYCCNT, so the counter never moves there.
const (
	demcrAddr     = 0xE000EDFC // CoreDebug DEMCR
	dwtCtrlAddr   = 0xE0001000 // DWT control
	dwtCyccntAddr = 0xE0001004 // DWT cycle counter
)

var (
	demcrReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(demcrAddr)))
	dwtCtrlReg = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtCtrlAddr)))
	dwtCyccnt  = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtCyccntAddr)))
)

func setDEMCRBits(bits uint32) {
	demcrReg.SetBits(bits)
}

func readDEMCR() uint32 {
	return demcrReg.Get()
}

func setDWTCtrlBits(bits uint32) {
	dwtCtrlReg.SetBits(bits)
}

func readDWTCtrl() uint32 {
	return dwtCtrlReg.Get()
}

// readCycleCount reads CYCCNT. The read has no side effects, so it is safe
// from both thread and interrupt context.
func readCycleCount() uint32 {
	return dwtCyccnt.Get()
}
