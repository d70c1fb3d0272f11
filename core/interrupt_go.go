//go:build !tinygo

package core

// State is a placeholder for interrupt state on host builds
type State uintptr

// disableInterrupts is a no-op on host builds
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on host builds
func restoreInterrupts(state State) {}
