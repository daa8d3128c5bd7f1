// File: extra_lu_plus.go
// Role: "aLU+" refinement of ExtraLU: additionally relaxes
// entries between two clocks that both already escaped their upper
// threshold, since such entries add no distinguishing power once both
// endpoints are already unbounded relative to the zero clock.

package dbm

// ExtraLUPlus applies ExtraLU's clipping, then the "+" refinement: for any
// two clocks i, j (i != j) whose entries to clock 0 are both +∞ after the
// clip pass, M[i][j] is relaxed to +∞ as well. The result always
// includes ExtraLU's result (it only widens further).
//
// Complexity: O(Dim^2).
func ExtraLUPlus(m *DBM, lowerBounds, upperBounds []int64) error {
	return extraLUCore(m, lowerBounds, upperBounds, true)
}
