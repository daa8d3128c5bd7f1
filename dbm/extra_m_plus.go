// File: extra_m_plus.go
// Role: "aM+" refinement of ExtraM.

package dbm

// ExtraMPlus applies ExtraM's clipping plus the "+" refinement (see
// ExtraLUPlus).
//
// Complexity: O(Dim^2).
func ExtraMPlus(m *DBM, maxBounds []int64) error {
	return extraLUCore(m, maxBounds, maxBounds, true)
}
