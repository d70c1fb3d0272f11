package core

import "sync/atomic"

// Register bits used by the trace and cycle counter setup
const (
	demcrTRCENA      = 1 << 24 // DEMCR: enable DWT and ITM
	dwtCtrlCYCCNTENA = 1 << 0  // DWT_CTRL: enable CYCCNT
)

// CMU is the raw clock management unit handle
type CMU struct {
	consumed bool
}

// DCB is the raw debug control block handle
type DCB struct {
	consumed bool
}

// DWT is the raw data watchpoint and trace unit handle, which owns the
// cycle counter control bits
type DWT struct {
	consumed bool
}

// Peripherals holds the one owning handle of each raw unit this package drives.
type Peripherals struct {
	CMU *CMU
	DCB *DCB
	DWT *DWT
}

var peripheralsTaken atomic.Bool

// TakePeripherals returns the peripheral handles. Only the first call
// succeeds; later calls return nil, false.
func TakePeripherals() (*Peripherals, bool) {
	if !peripheralsTaken.CompareAndSwap(false, true) {
		return nil, false
	}
	return &Peripherals{
		CMU: &CMU{},
		DCB: &DCB{},
		DWT: &DWT{},
	}, true
}

// take consumes the handle. Go cannot move a value out of the caller's
// hands, so handles are consumed by flag and a second use panics.
func (c *CMU) take() {
	if c == nil {
		panic("CMU handle is nil")
	}
	if c.consumed {
		panic("CMU already constrained")
	}
	c.consumed = true
}

func (d *DCB) take() {
	if d == nil {
		panic("DCB handle is nil")
	}
	if d.consumed {
		panic("DCB already consumed by EnableTrace")
	}
	d.consumed = true
}

func (d *DWT) take() {
	if d == nil {
		panic("DWT handle is nil")
	}
	if d.consumed {
		panic("DWT already owned by a MonoTimer")
	}
	d.consumed = true
}

// resetPeripherals allows TakePeripherals to succeed again (for testing)
func resetPeripherals() {
	peripheralsTaken.Store(false)
}
