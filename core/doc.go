// Package core is the clock and time layer of the HAL: frequency units, the
// clock configuration stages, and a monotonic timer on the DWT cycle counter.
//
// Hardware caveat: CYCCNT only exists on ARMv7-M and later. On an ARMv6-M
// core such as the EFM32HG's Cortex-M0+ the DWT has no cycle counter, so
// Instant.Elapsed stays at zero and Delay never returns.
package core
