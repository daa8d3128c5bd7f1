// File: predicates.go
// Role: Structural predicates over DBMs.
// AI-HINT (file): IsEmpty0 is only meaningful on DBMs produced by this
// package — emptiness is always signaled by M[0][0] < LEZero.

package dbm

import "github.com/tchecker-go/tachecker/bound"

// IsEmpty0 reports whether m's diagonal entry (0,0) is below LEZero, the
// sentinel every emptiness-producing operation in this package sets.
//
// Complexity: O(1).
func IsEmpty0(m *DBM) bool {
	return bound.Less(m.data[0], bound.LEZero)
}

// IsUniversal reports whether every off-diagonal entry is +∞ and the
// diagonal is LEZero.
//
// Complexity: O(Dim^2).
func IsUniversal(m *DBM) bool {
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			v := m.data[i*m.dim+j]
			if i == j {
				if !bound.Equal(v, bound.LEZero) {
					return false
				}
				continue
			}
			if !v.IsInfinite() {
				return false
			}
		}
	}

	return true
}

// IsUniversalPositive reports whether m is Universal additionally
// constrained so M[0][i] = ≤0 for i >= 1.
//
// Complexity: O(Dim^2).
func IsUniversalPositive(m *DBM) bool {
	for i := 1; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			v := m.data[i*m.dim+j]
			if i == 0 {
				continue
			}
			if i == j {
				if !bound.Equal(v, bound.LEZero) {
					return false
				}
				continue
			}
			if i != j && !v.IsInfinite() {
				return false
			}
		}
	}
	for i := 1; i < m.dim; i++ {
		if !bound.Equal(m.data[i], bound.LEZero) { // M[0][i]
			return false
		}
	}

	return true
}

// IsTight reports whether m satisfies the shortest-path closure property
// M[i][j] ≤ M[i][k] + M[k][j] for every i, j, k.
//
// Complexity: O(Dim^3).
func IsTight(m *DBM) bool {
	n := m.dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij := m.data[i*n+j]
			for k := 0; k < n; k++ {
				s, err := bound.Sum(m.data[i*n+k], m.data[k*n+j])
				if err != nil {
					continue
				}
				if bound.Less(s, ij) {
					return false
				}
			}
		}
	}

	return true
}

// IsEqual reports structural equality, entry by entry.
//
// Complexity: O(Dim^2).
func IsEqual(m1, m2 *DBM) (bool, error) {
	if m1.dim != m2.dim {
		return false, ErrDimensionMismatch
	}
	for i := range m1.data {
		if !bound.Equal(m1.data[i], m2.data[i]) {
			return false, nil
		}
	}

	return true, nil
}

// IsLE reports whether m1 ⊆ m2 as zones: M1[i][j] ≤ M2[i][j] for every
// i, j. Both DBMs are assumed tight.
//
// Complexity: O(Dim^2).
func IsLE(m1, m2 *DBM) (bool, error) {
	if m1.dim != m2.dim {
		return false, ErrDimensionMismatch
	}
	for i := range m1.data {
		if !bound.LessEq(m1.data[i], m2.data[i]) {
			return false, nil
		}
	}

	return true, nil
}
