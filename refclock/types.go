// File: types.go
// Role: Offset DBM storage and the reference map linking offset
// variables to their reference clocks.

package refclock

import (
	"fmt"

	"github.com/tchecker-go/tachecker/dbm"
)

// RefMap maps each offset-variable index to the index of the reference
// clock it is pinned to. RefMap[r] == r for every reference clock r in
// [0, RefCount).
type RefMap []int

// OffsetDBM wraps a dbm.DBM of dimension RefCount+D-1 together with the
// bookkeeping (reference count, reference map) needed to interpret its
// first RefCount rows/columns as per-process reference clocks.
type OffsetDBM struct {
	m        *dbm.DBM
	refCount int
	refMap   RefMap
}

// New allocates an offset DBM wrapping the universal-positive zone of the
// given offset dimension, with refCount reference clocks and the given
// reference map (refMap[x] for x < refCount must equal x).
func New(offsetDim, refCount int, refMap RefMap) (*OffsetDBM, error) {
	if refCount < 1 || refCount > offsetDim {
		return nil, fmt.Errorf("refclock.New(%d,%d): %w", offsetDim, refCount, ErrBadRefCount)
	}
	if len(refMap) != offsetDim {
		return nil, fmt.Errorf("refclock.New: refMap length %d != offsetDim %d: %w", len(refMap), offsetDim, ErrDimensionMismatch)
	}
	for r := 0; r < refCount; r++ {
		if refMap[r] != r {
			return nil, fmt.Errorf("refclock.New: reference clock %d must map to itself: %w", r, ErrDimensionMismatch)
		}
	}

	m, err := dbm.UniversalPositive(offsetDim)
	if err != nil {
		return nil, err
	}

	return &OffsetDBM{m: m, refCount: refCount, refMap: refMap}, nil
}

// Dim returns the offset dimension (RefCount + number of offset variables).
func (o *OffsetDBM) Dim() int { return o.m.Dim() }

// RefCount returns the number of reference clocks.
func (o *OffsetDBM) RefCount() int { return o.refCount }

// Matrix returns the underlying DBM for direct use with package dbm's
// operators (Constrain, Reset, Tighten, ...), which apply unchanged to an
// offset DBM's storage.
func (o *OffsetDBM) Matrix() *dbm.DBM { return o.m }

// Clone returns a deep copy of o.
func (o *OffsetDBM) Clone() *OffsetDBM {
	refMap := make(RefMap, len(o.refMap))
	copy(refMap, o.refMap)

	return &OffsetDBM{m: o.m.Clone(), refCount: o.refCount, refMap: refMap}
}
