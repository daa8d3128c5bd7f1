// File: extra_lu.go
// Role: LU-abstraction extrapolation, the general form of
// the "aM" family with independent lower/upper threshold vectors.

package dbm

// ExtraLU applies the LU-abstraction in place: for every pair of clocks
// (i,j), the entry M[i][j] is relaxed to +∞ once it exceeds clock i's
// upper threshold, or clamped to the strict negation of clock j's lower
// threshold once it falls below it. lowerBounds and upperBounds must both
// have length m.Dim(); index 0 (the zero clock) is never a subject of
// clipping. Use NoBound for a clock that never appears in a constraint.
//
// Soundness (Z ⊆ α(Z)), idempotence, and monotonicity w.r.t. ⊆ all follow
// from clipEntry being a monotone-loosening function of the raw entry.
//
// Complexity: O(Dim^2).
func ExtraLU(m *DBM, lowerBounds, upperBounds []int64) error {
	return extraLUCore(m, lowerBounds, upperBounds, false)
}
