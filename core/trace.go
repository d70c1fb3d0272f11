package core

// TraceEnabled proves that the debug trace block has been switched on.
// Only EnableTrace returns a valid token; the zero value is rejected by
// NewMonoTimer.
type TraceEnabled struct {
	enabled bool
}

// EnableTrace sets DEMCR.TRCENA and consumes the DCB handle, so tracing
// stays on for the rest of the program.
func EnableTrace(dcb *DCB) TraceEnabled {
	dcb.take()
	setDEMCRBits(demcrTRCENA)
	DebugPrintln("[TRACE] enabled")
	return TraceEnabled{enabled: true}
}

// Valid reports whether the token came from EnableTrace
func (t TraceEnabled) Valid() bool {
	return t.enabled
}
