// File: types.go
// Role: DBM storage type, constructors, and raw accessors.
// Determinism: row-major flat storage, fixed iteration order everywhere.
// AI-HINT (file):
//   - data has length Dim*Dim; data[i*Dim+j] is M[i][j].
//   - Clock 0 is the fictitious zero clock; never reset, never the target
//     of a user-facing guard by itself (only as one side of a difference).

package dbm

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
)

// Status is the outcome of an operation that may render a DBM empty.
type Status uint8

const (
	// NonEmpty indicates the result is known non-empty.
	NonEmpty Status = iota
	// Empty indicates the result is the empty zone.
	Empty
	// MayBeEmpty indicates a local operation could not itself determine
	// emptiness; the caller must run a global Tighten to find out.
	MayBeEmpty
)

// String renders a Status for diagnostics.
func (s Status) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case MayBeEmpty:
		return "MAY_BE_EMPTY"
	default:
		return "NON_EMPTY"
	}
}

// DBM is a square matrix of bound.Bound values over clocks c0..c(Dim-1),
// c0 being the fictitious zero clock. Storage is a flat row-major slice,
// exactly as matrix.Dense lays out its float64 buffer.
type DBM struct {
	dim  int
	data []bound.Bound
}

// New allocates a DBM of the given dimension with every entry set to the
// zero value of bound.Bound (which is NOT a valid DBM state by itself —
// callers should use Universal, UniversalPositive, or Zero). Exposed for
// internal reuse by operations that build a result entry-by-entry.
//
// Complexity: O(Dim^2).
func New(dim int) (*DBM, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dbm.New(%d): %w", dim, ErrBadDimension)
	}

	return &DBM{dim: dim, data: make([]bound.Bound, dim*dim)}, nil
}

// Dim returns the DBM's dimension (number of clocks, including c0).
func (m *DBM) Dim() int { return m.dim }

// index computes the flat offset for (i,j), validating bounds.
func (m *DBM) index(i, j int) (int, error) {
	if i < 0 || i >= m.dim || j < 0 || j >= m.dim {
		return 0, fmt.Errorf("dbm: At/set(%d,%d) dim=%d: %w", i, j, m.dim, ErrIndexOutOfRange)
	}

	return i*m.dim + j, nil
}

// At returns M[i][j].
//
// Complexity: O(1).
func (m *DBM) At(i, j int) (bound.Bound, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return bound.Bound{}, err
	}

	return m.data[idx], nil
}

// SetDirect writes M[i][j] := b, validating the index. Exposed for
// packages that build a DBM entry-by-entry from another representation
// (e.g. refclock's projection from an offset DBM); ordinary zone
// operators stay inside this package and use the unchecked set.
//
// Complexity: O(1).
func (m *DBM) SetDirect(i, j int, b bound.Bound) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = b

	return nil
}

// set writes M[i][j] := b, panicking on an out-of-range index: every
// caller within this package computes (i,j) from Dim itself, so an
// out-of-range index here is a programmer error, not user input (mirrors
// matrix.Dense's internal "safe after shape validation" convention).
func (m *DBM) set(i, j int, b bound.Bound) {
	idx, err := m.index(i, j)
	if err != nil {
		panic(err)
	}
	m.data[idx] = b
}

// Clone returns a deep copy of m.
//
// Complexity: O(Dim^2).
func (m *DBM) Clone() *DBM {
	data := make([]bound.Bound, len(m.data))
	copy(data, m.data)

	return &DBM{dim: m.dim, data: data}
}

// Universal returns the DBM with c0==c0 and every other entry +∞: the
// unconstrained zone.
//
// Complexity: O(Dim^2).
func Universal(dim int) (*DBM, error) {
	m, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				m.set(i, j, bound.LEZero)
			} else {
				m.set(i, j, bound.LTInfinity)
			}
		}
	}

	return m, nil
}

// UniversalPositive returns Universal(dim) additionally constrained so
// every clock is non-negative: M[0][i] = ≤0 for i >= 1.
//
// Complexity: O(Dim^2).
func UniversalPositive(dim int) (*DBM, error) {
	m, err := Universal(dim)
	if err != nil {
		return nil, err
	}
	for i := 1; i < dim; i++ {
		m.set(0, i, bound.LEZero)
	}

	return m, nil
}

// Zero returns the DBM representing the single valuation where every
// clock equals 0: every entry is ≤0.
//
// Complexity: O(Dim^2).
func Zero(dim int) (*DBM, error) {
	m, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = bound.LEZero
	}

	return m, nil
}

// String renders M row by row, mirroring matrix.Dense.String()'s
// deterministic, allocation-light builder style.
func (m *DBM) String() string {
	var s string
	for i := 0; i < m.dim; i++ {
		s += "["
		for j := 0; j < m.dim; j++ {
			s += m.data[i*m.dim+j].String()
			if j < m.dim-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
