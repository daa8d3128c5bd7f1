// SPDX-License-Identifier: MIT
// Package: dbm
//
// Purpose:
//   - Canonical Floyd-Warshall closure of a DBM, with deterministic loop
//     order, mirroring matrix's FloydWarshall APSP implementation.
//
// Contract:
//   - Square Dim x Dim matrix; entry (i,i) starts at LEZero; closure
//     detects emptiness via a diagonal entry dropping below LEZero.

package dbm

import "github.com/tchecker-go/tachecker/bound"

// Tighten runs the Floyd-Warshall shortest-path closure on m in place,
// using the fixed k -> i -> j loop order for deterministic accumulation
// (mirroring matrix.FloydWarshall). If any diagonal entry becomes
// strictly less than LEZero, m represents the empty zone: Tighten sets
// M[0][0] to that value and returns Empty. Otherwise it returns NonEmpty
// and m is left tight.
//
// Complexity: Time O(Dim^3); Space O(1) extra.
func Tighten(m *DBM) Status {
	n := m.dim

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := m.data[i*n+k]
			if ik.IsInfinite() {
				continue // no path via k can improve i -> j
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := m.data[baseK+j]
				if kj.IsInfinite() {
					continue
				}
				cand, err := bound.Sum(ik, kj)
				if err != nil {
					continue // saturated sum cannot be an improvement
				}
				ij := m.data[baseI+j]
				if bound.Less(cand, ij) {
					m.data[baseI+j] = cand
				}
			}
		}
	}

	// Emptiness: any diagonal entry strictly below LEZero.
	for i := 0; i < n; i++ {
		d := m.data[i*n+i]
		if bound.Less(d, bound.LEZero) {
			m.data[0] = d // propagate the witness to the (0,0) sentinel
			return Empty
		}
	}

	return NonEmpty
}

// TightenLocal performs a local re-tightening after M[x][y] changed,
// assuming every other entry was tight beforehand. It
// propagates the change along all two-hop paths through x and y in
// O(Dim) time, cheaper than a full Tighten, but can only ever report
// NonEmpty or MayBeEmpty — a genuine global check is required to rule
// out emptiness introduced elsewhere in the matrix.
//
// Complexity: O(Dim).
func TightenLocal(m *DBM, x, y int) (Status, error) {
	n := m.dim
	if x < 0 || x >= n || y < 0 || y >= n {
		return MayBeEmpty, ErrIndexOutOfRange
	}

	xy := m.data[x*n+y]

	for i := 0; i < n; i++ {
		ix := m.data[i*n+x]
		if ix.IsInfinite() {
			continue
		}
		cand, err := bound.Sum(ix, xy)
		if err != nil {
			continue
		}
		iy := m.data[i*n+y]
		if bound.Less(cand, iy) {
			m.data[i*n+y] = cand
		}
	}

	for j := 0; j < n; j++ {
		yj := m.data[y*n+j]
		if yj.IsInfinite() {
			continue
		}
		xyUpdated := m.data[x*n+y]
		cand, err := bound.Sum(xyUpdated, yj)
		if err != nil {
			continue
		}
		xj := m.data[x*n+j]
		if bound.Less(cand, xj) {
			m.data[x*n+j] = cand
		}
	}

	if bound.Less(m.data[x*n+x], bound.LEZero) || bound.Less(m.data[y*n+y], bound.LEZero) {
		return MayBeEmpty, nil
	}

	return NonEmpty, nil
}
