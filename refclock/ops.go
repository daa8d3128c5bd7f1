// File: ops.go
// Role: Offset-DBM operations additional to the standard DBM operator
// set: synchronization, reset-to-refclock, asynchronous
// open-up, and projection to a standard DBM.

package refclock

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/dbm"
)

// IsSynchronized reports whether every pair of reference clocks carries
// the same value: M[r1][r2] <= 0 for every r1 != r2 among the first
// RefCount variables.
//
// Complexity: O(RefCount^2).
func (o *OffsetDBM) IsSynchronized() (bool, error) {
	for r1 := 0; r1 < o.refCount; r1++ {
		for r2 := 0; r2 < o.refCount; r2++ {
			if r1 == r2 {
				continue
			}
			v, err := o.m.At(r1, r2)
			if err != nil {
				return false, err
			}
			if !bound.LessEq(v, bound.LEZero) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Synchronize intersects o with r1 - r2 <= 0 for every ordered pair of
// distinct reference clocks, restricting it to the subset of valuations
// where all reference clocks agree. Returns dbm.Empty if the result is
// empty.
//
// Complexity: O(RefCount^2 * Dim^3) (each Constrain call is O(1) when
// the constraint is already implied, O(Dim^3) otherwise).
func (o *OffsetDBM) Synchronize() (dbm.Status, error) {
	st := dbm.NonEmpty
	for r1 := 0; r1 < o.refCount; r1++ {
		for r2 := 0; r2 < o.refCount; r2++ {
			if r1 == r2 {
				continue
			}
			var err error
			st, err = dbm.Constrain(o.m, r1, r2, bound.LE, 0)
			if err != nil {
				return dbm.NonEmpty, err
			}
			if st == dbm.Empty {
				return dbm.Empty, nil
			}
		}
	}

	return st, nil
}

// ResetToRefclock resets offset variable x to the value of its reference
// clock: x := refMap[x] + 0.
//
// This cannot be delegated to dbm.Reset: that function's y==0 shape
// treats index 0 as the fixed zero clock ("reset to constant"), but in
// an offset DBM index 0 may be a reference clock — a free variable, not
// a constant. The alias-offset math is reimplemented here so that
// reference clock 0 is handled exactly like any other reference clock.
//
// Complexity: O(Dim).
func (o *OffsetDBM) ResetToRefclock(x int) error {
	n := o.m.Dim()
	if x < 0 || x >= n {
		return fmt.Errorf("refclock.ResetToRefclock(%d): %w", x, ErrDimensionMismatch)
	}
	r := o.refMap[x]
	if r == x {
		return nil // already a reference clock, resetting to itself is a no-op
	}

	newRow := make([]bound.Bound, n)
	newCol := make([]bound.Bound, n)
	for i := 0; i < n; i++ {
		ri, err := o.m.At(r, i)
		if err != nil {
			return err
		}
		newRow[i] = ri

		ir, err := o.m.At(i, r)
		if err != nil {
			return err
		}
		newCol[i] = ir
	}
	for i := 0; i < n; i++ {
		if err := o.m.SetDirect(x, i, newRow[i]); err != nil {
			return err
		}
		if err := o.m.SetDirect(i, x, newCol[i]); err != nil {
			return err
		}
	}

	return o.m.SetDirect(x, x, bound.LEZero)
}

// AsynchronousOpenUp clears every reference clock's relation to every
// other variable (including other reference clocks), letting each
// process's local time elapse independently. When delayAllowed is
// non-nil, only reference clocks whose index is flagged are relaxed;
// delayAllowed must then have length RefCount.
//
// Complexity: O(RefCount * Dim).
func (o *OffsetDBM) AsynchronousOpenUp(delayAllowed []bool) error {
	if delayAllowed != nil && len(delayAllowed) != o.refCount {
		return fmt.Errorf("refclock.AsynchronousOpenUp: delayAllowed length %d != refCount %d: %w",
			len(delayAllowed), o.refCount, ErrDimensionMismatch)
	}
	for r := 0; r < o.refCount; r++ {
		if delayAllowed != nil && !delayAllowed[r] {
			continue
		}
		if err := dbm.OpenUpRow(o.m, r); err != nil {
			return err
		}
	}

	return nil
}

// ToDBM projects a synchronized, non-empty, tight offset DBM onto a
// standard DBM of dimension Dim-RefCount+1, identifying every reference
// clock with the zero clock. The offset variable at index RefCount+i-1
// becomes system clock i.
//
// Complexity: O(Dim^2).
func (o *OffsetDBM) ToDBM() (*dbm.DBM, error) {
	sync, err := o.IsSynchronized()
	if err != nil {
		return nil, err
	}
	if !sync {
		return nil, ErrNotSynchronized
	}
	if dbm.IsEmpty0(o.m) {
		return nil, ErrEmptySource
	}

	offsetDim := o.m.Dim()
	dim := offsetDim - o.refCount + 1
	out, err := dbm.New(dim)
	if err != nil {
		return nil, err
	}

	// Offset index 0..refCount-1 all collapse onto standard clock 0;
	// offset index refCount+i-1 becomes standard clock i. Any reference
	// clock representative (0 is as good as any, since o is synchronized)
	// stands in for the whole reference-clock class.
	offsetIndexOf := func(sysClock int) int {
		if sysClock == 0 {
			return 0
		}

		return o.refCount + sysClock - 1
	}

	for i := 0; i < dim; i++ {
		oi := offsetIndexOf(i)
		for j := 0; j < dim; j++ {
			oj := offsetIndexOf(j)
			v, err := o.m.At(oi, oj)
			if err != nil {
				return nil, err
			}
			if err := out.SetDirect(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	dbm.Tighten(out)

	return out, nil
}
