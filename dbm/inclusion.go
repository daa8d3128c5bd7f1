// File: inclusion.go
// Role: Abstraction-aware inclusion tests: decide whether
// the LU/M-abstraction of Z would subsume Z' without ever materializing
// the abstracted DBM, the same "compute the answer, not the intermediate"
// shortcut matrix's predicate helpers use for IsTight/IsEqual.

package dbm

import "github.com/tchecker-go/tachecker/bound"

// IsALULe reports whether the LU-abstraction of m2 would be a superset of
// m1, i.e. whether m1 ⊆ α_LU(m2) holds without computing α_LU(m2)
// explicitly. For every ordered pair of clocks (x,y), the test passes
// entrywise true when any of:
//
//   - M1[x][y] <= M2[x][y] (already included, no abstraction needed), or
//   - M2[x][y] is strictly below the negated lower threshold of y
//     (abstraction would relax that entry to a value M1 already beats), or
//   - M1[x][0] exceeds the upper threshold of x
//     (clock x is already unbounded above in m1, so its row cannot
//     distinguish m1 from the abstraction).
//
// lowerBounds and upperBounds must have length m1.Dim() == m2.Dim(); index
// 0 is ignored (the zero clock is never thresholded).
//
// Complexity: O(Dim^2).
func IsALULe(m1, m2 *DBM, lowerBounds, upperBounds []int64) (bool, error) {
	if m1.Dim() != m2.Dim() {
		return false, ErrDimensionMismatch
	}
	n := m1.Dim()
	if err := validateBoundsVector(n, lowerBounds); err != nil {
		return false, err
	}
	if err := validateBoundsVector(n, upperBounds); err != nil {
		return false, err
	}

	for x := 0; x < n; x++ {
		ux := upperBounds[x]
		var x0exceeds bool
		if x != 0 && ux != NoBound {
			x0, err := m1.At(x, 0)
			if err != nil {
				return false, err
			}
			x0exceeds = !x0.IsInfinite() && x0.Value > ux
		}

		for y := 0; y < n; y++ {
			if x == y {
				continue
			}
			e1, err := m1.At(x, y)
			if err != nil {
				return false, err
			}
			e2, err := m2.At(x, y)
			if err != nil {
				return false, err
			}
			if bound.LessEq(e1, e2) {
				continue
			}
			if x0exceeds {
				continue
			}
			ly := lowerBounds[y]
			if y != 0 && ly != NoBound && !e2.IsInfinite() && e2.Value < -ly {
				continue
			}

			return false, nil
		}
	}

	return true, nil
}

// IsAMLe is IsALULe specialized to the M-abstraction: the same vector
// serves as both lowerBounds and upperBounds.
//
// Complexity: O(Dim^2).
func IsAMLe(m1, m2 *DBM, maxBounds []int64) (bool, error) {
	return IsALULe(m1, m2, maxBounds, maxBounds)
}
