// File: decomposition.go
// Role: Admissibility check for reference-clock-per-process decomposition
//: a clock can only be given its own
// reference clock if exactly one process ever reads or writes it.

package refclock

import "fmt"

// ValidateDecomposition checks that every entry of accessingProcesses
// (each the count of distinct processes that read or write one clock,
// per the system model's variable access map) is at most one. Returns
// ErrUnsupportedDecomposition naming the slice index of the first
// offending entry otherwise.
func ValidateDecomposition(accessingProcesses []int) error {
	for clock, count := range accessingProcesses {
		if count > 1 {
			return fmt.Errorf("refclock: clock %d accessed by %d processes: %w", clock, count, ErrUnsupportedDecomposition)
		}
	}

	return nil
}
