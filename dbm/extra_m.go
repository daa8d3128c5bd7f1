// File: extra_m.go
// Role: "aM" extrapolation, the classical single-vector
// abstraction: one maxBounds vector serves as both the lower and upper
// threshold for every clock.

package dbm

// ExtraM applies the M-abstraction in place, equivalent to ExtraLU with
// the same vector used as both lowerBounds and upperBounds. maxBounds
// must have length m.Dim(); use NoBound for a clock that never appears in
// a constraint.
//
// Complexity: O(Dim^2).
func ExtraM(m *DBM, maxBounds []int64) error {
	return extraLUCore(m, maxBounds, maxBounds, false)
}
