// File: extra_common.go
// Role: Shared plumbing for the four extrapolation operators, mirroring
// flow/utils.go's pattern of one shared helper behind several
// interchangeable algorithm variants (dinic/edmonds_karp/ford_fulkerson
// all lean on buildCapMap).
// AI-HINT (file):
//   - NoBound marks a clock with no observed constant: "do not constrain".
//   - clipEntry is the single monotone function every variant applies
//     per-entry; its monotonicity in the input bound is what makes the
//     soundness/monotonicity laws hold by construction.

package dbm

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
)

// NoBound marks a clock that never appears in a constraint: extrapolation
// must leave entries referencing it untouched ("do not constrain").
const NoBound = int64(-1) << 62

func validateBoundsVector(dim int, v []int64) error {
	if len(v) != dim {
		return fmt.Errorf("dbm: bounds vector length %d != dim %d: %w", len(v), dim, ErrDimensionMismatch)
	}

	return nil
}

// clipEntry applies the LU-abstraction rule to one finite entry value v
// representing "row - col ≺ v": relax to +∞ once v exceeds the row
// clock's upper threshold U, or clamp down to exactly -L once v falls
// below the column clock's lower threshold -L. Both branches only ever
// loosen the bound (replace it with something ≥ v), which is exactly
// what makes the abstraction sound (Z ⊆ α(Z)).
func clipEntry(e bound.Bound, upperRow, lowerCol int64) bound.Bound {
	if e.IsInfinite() {
		return e
	}
	if upperRow != NoBound && e.Value > upperRow {
		return bound.LTInfinity
	}
	if lowerCol != NoBound && e.Value < -lowerCol {
		return bound.Bound{Cmp: bound.LT, Value: -lowerCol}
	}

	return e
}

// extraLUCore implements ExtraLU/ExtraLUPlus; ExtraM/ExtraMPlus call it
// with lower == upper == maxBounds.
func extraLUCore(m *DBM, lower, upper []int64, plus bool) error {
	n := m.Dim()
	if err := validateBoundsVector(n, lower); err != nil {
		return err
	}
	if err := validateBoundsVector(n, upper); err != nil {
		return err
	}

	effUpper := func(i int) int64 {
		if i == 0 {
			return NoBound
		}

		return upper[i]
	}
	effLower := func(j int) int64 {
		if j == 0 {
			return NoBound
		}

		return lower[j]
	}

	for i := 0; i < n; i++ {
		u := effUpper(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			l := effLower(j)
			m.data[i*n+j] = clipEntry(m.data[i*n+j], u, l)
		}
	}

	// Positivity: M[0][j] must stay at most LEZero.
	for j := 1; j < n; j++ {
		if bound.Less(bound.LEZero, m.data[j]) { // m.data[j] > LEZero
			m.data[j] = bound.LEZero
		}
	}

	if plus {
		overBoundUpper := make([]bool, n)
		for i := 1; i < n; i++ {
			overBoundUpper[i] = m.data[i*n] == bound.LTInfinity || m.data[i*n].IsInfinite()
		}
		// Entries between two clocks that are both already relaxed to
		// infinity w.r.t. clock 0 add no further distinguishing power:
		// relax them too, the "+" refinement.
		for i := 1; i < n; i++ {
			if !overBoundUpper[i] {
				continue
			}
			for j := 1; j < n; j++ {
				if i == j || !overBoundUpper[j] {
					continue
				}
				m.data[i*n+j] = bound.LTInfinity
			}
		}
	}

	return nil
}
