// Package probe reads the clock reports a board prints on its debug UART and
// checks the cycle counter rate against host wall time.
package probe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tomuhal/core"
)

// ErrNotReport is returned for lines that are not clock reports
var ErrNotReport = errors.New("not a clock report")

// Report is one parsed clock report line
type Report struct {
	Seq    uint32
	HFClk  core.Hertz
	LFClk  core.Hertz
	Timer  core.Hertz
	Cycles uint32
}

// ParseReport parses a line produced by core.FormatReport
func ParseReport(line string) (Report, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != core.ReportPrefix {
		return Report{}, ErrNotReport
	}

	values := make(map[string]uint32, len(fields)-1)
	for _, field := range fields[1:] {
		key, raw, ok := strings.Cut(field, "=")
		if !ok {
			return Report{}, fmt.Errorf("malformed field %q", field)
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Report{}, fmt.Errorf("field %s: %w", key, err)
		}
		values[key] = uint32(v)
	}

	for _, key := range []string{"seq", "hfclk", "lfclk", "timer", "cycles"} {
		if _, ok := values[key]; !ok {
			return Report{}, fmt.Errorf("missing field %s", key)
		}
	}

	return Report{
		Seq:    values["seq"],
		HFClk:  core.Hz(values["hfclk"]),
		LFClk:  core.Hz(values["lfclk"]),
		Timer:  core.Hz(values["timer"]),
		Cycles: values["cycles"],
	}, nil
}
