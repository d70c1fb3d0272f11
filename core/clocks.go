// Clock configuration
// The clock management unit moves one way through three stages:
// raw (*CMU) -> constrained (*ClocksCfg) -> frozen (Clocks).
// Frequencies can only be read from the frozen stage.

package core

// Frequencies the EFM32HG runs at out of reset
const (
	DefaultHFClk Hertz = 21_000_000 // HFRCO
	DefaultLFClk Hertz = 32_768     // LFRCO
)

// HFClk is the ownership token for the high-frequency clock domain.
// Oscillator selection is not supported yet, so it carries no settings.
type HFClk struct {
	_ struct{}
}

// LFClk is the ownership token for the low-frequency clock domain.
// Oscillator selection and calibration are not supported yet.
type LFClk struct {
	_ struct{}
}

// ClocksCfg is a clock configuration that has not been committed yet.
// Both domain tokens must still be in place when it is frozen.
type ClocksCfg struct {
	HFClk *HFClk
	LFClk *LFClk

	frozen bool
}

// Clocks holds the frozen clock frequencies. It is a plain value and can be
// copied to any driver that needs it.
type Clocks struct {
	hfclk  Hertz
	lfclk  Hertz
	frozen bool
}

// Constrain takes the raw CMU and splits it into per-domain tokens.
// It does not touch the hardware. The CMU cannot be constrained twice.
func (c *CMU) Constrain() *ClocksCfg {
	c.take()
	return &ClocksCfg{
		HFClk: &HFClk{},
		LFClk: &LFClk{},
	}
}

// Freeze commits the configuration and returns the resulting frequencies.
// A configuration can only be frozen once, and freezing releases both
// domain tokens.
func (cfg *ClocksCfg) Freeze() Clocks {
	if cfg == nil {
		panic("ClocksCfg is nil")
	}
	if cfg.frozen {
		panic("ClocksCfg already frozen")
	}
	if cfg.HFClk == nil || cfg.LFClk == nil {
		panic("ClocksCfg is missing a clock domain token")
	}
	cfg.frozen = true
	cfg.HFClk = nil
	cfg.LFClk = nil

	clocks := Clocks{
		hfclk:  DefaultHFClk,
		lfclk:  DefaultLFClk,
		frozen: true,
	}
	DebugPrintln("[CLOCKS] frozen hfclk=" + clocks.hfclk.String() + " lfclk=" + clocks.lfclk.String())
	return clocks
}

// HFClk returns the high-frequency domain frequency
func (c Clocks) HFClk() Hertz {
	return c.hfclk
}

// LFClk returns the low-frequency domain frequency
func (c Clocks) LFClk() Hertz {
	return c.lfclk
}

// Frozen reports whether c came from Freeze. The zero Clocks is not frozen.
func (c Clocks) Frozen() bool {
	return c.frozen
}
