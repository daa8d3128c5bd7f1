// File: ops.go
// Role: Core zone operators — Constrain, Reset, OpenUp, Intersection
//.
// AI-HINT (file):
//   - Every operator that can produce the empty zone returns a Status;
//     callers branch on it instead of inspecting IsEmpty0 themselves,
//     except where IsEmpty0 is the named detector for that check.

package dbm

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
)

// Constrain intersects m with the single constraint "c_x - c_y ≺ v" in
// place, then re-closes m with Tighten so the result stays tight. Returns
// Empty when the intersection is empty (with M[0][0] set to the
// witness), NonEmpty otherwise. A constraint already implied by m is a
// no-op.
//
// Complexity: O(1) when the constraint is already implied, O(Dim^3)
// otherwise (Tighten).
func Constrain(m *DBM, x, y int, cmp bound.Cmp, v int64) (Status, error) {
	b, err := bound.DB(cmp, v)
	if err != nil {
		return NonEmpty, fmt.Errorf("dbm.Constrain: %w", err)
	}

	cur, err := m.At(x, y)
	if err != nil {
		return NonEmpty, err
	}
	if bound.LessEq(cur, b) {
		return NonEmpty, nil // constraint already implied; no-op
	}
	m.set(x, y, b)

	return Tighten(m), nil
}

// Reset applies the symbolic assignment c_x := c_y + v in place. Three
// shapes are supported, each O(Dim):
//
//   - y == 0: reset to the constant v (c_x := v).
//   - x == y: increment by v (c_x := c_x + v).
//   - x != y, v >= 0: alias plus offset (c_x := c_y + v).
//
// Multiple sequential resets referencing each other must be applied in
// caller-chosen order; Reset itself has no memory of prior resets.
func Reset(m *DBM, x, y int, v int64) error {
	n := m.Dim()
	if x <= 0 || x >= n || y < 0 || y >= n {
		return fmt.Errorf("dbm.Reset(%d,%d,%d): %w", x, y, v, ErrIndexOutOfRange)
	}

	switch {
	case y == 0:
		return resetToConstant(m, x, v)
	case x == y:
		return resetIncrement(m, x, v)
	default:
		if v < 0 {
			return fmt.Errorf("dbm.Reset(%d,%d,%d): negative offset: %w", x, y, v, ErrBadReset)
		}

		return resetAliasOffset(m, x, y, v)
	}
}

func resetToConstant(m *DBM, x int, v int64) error {
	n := m.Dim()
	vb, err := bound.DB(bound.LE, v)
	if err != nil {
		return fmt.Errorf("dbm.Reset: %w", err)
	}
	nvb, err := bound.DB(bound.LE, -v)
	if err != nil {
		return fmt.Errorf("dbm.Reset: %w", err)
	}

	for i := 0; i < n; i++ {
		if i == x {
			continue
		}
		z0i, err := m.At(0, i)
		if err != nil {
			return err
		}
		s, err := bound.Sum(vb, z0i)
		if err != nil {
			return err
		}
		m.set(x, i, s)

		iz0, err := m.At(i, 0)
		if err != nil {
			return err
		}
		s2, err := bound.Sum(iz0, nvb)
		if err != nil {
			return err
		}
		m.set(i, x, s2)
	}
	m.set(x, x, bound.LEZero)
	m.set(x, 0, vb)
	m.set(0, x, nvb)

	return nil
}

func resetIncrement(m *DBM, x int, v int64) error {
	n := m.Dim()
	vb, err := bound.DB(bound.LE, v)
	if err != nil {
		return fmt.Errorf("dbm.Reset: %w", err)
	}
	nvb, err := bound.DB(bound.LE, -v)
	if err != nil {
		return fmt.Errorf("dbm.Reset: %w", err)
	}

	for i := 0; i < n; i++ {
		if i == x {
			continue
		}
		xi, err := m.At(x, i)
		if err != nil {
			return err
		}
		s, err := bound.Sum(xi, vb)
		if err != nil {
			return err
		}
		m.set(x, i, s)

		ix, err := m.At(i, x)
		if err != nil {
			return err
		}
		s2, err := bound.Sum(ix, nvb)
		if err != nil {
			return err
		}
		m.set(i, x, s2)
	}

	return nil
}

func resetAliasOffset(m *DBM, x, y int, v int64) error {
	n := m.Dim()
	vb, err := bound.DB(bound.LE, v)
	if err != nil {
		return fmt.Errorf("dbm.Reset: %w", err)
	}
	nvb, err := bound.DB(bound.LE, -v)
	if err != nil {
		return fmt.Errorf("dbm.Reset: %w", err)
	}

	newRow := make([]bound.Bound, n)
	newCol := make([]bound.Bound, n)
	for i := 0; i < n; i++ {
		yi, err := m.At(y, i)
		if err != nil {
			return err
		}
		s, err := bound.Sum(yi, vb)
		if err != nil {
			return err
		}
		newRow[i] = s

		iy, err := m.At(i, y)
		if err != nil {
			return err
		}
		s2, err := bound.Sum(iy, nvb)
		if err != nil {
			return err
		}
		newCol[i] = s2
	}

	for i := 0; i < n; i++ {
		m.set(x, i, newRow[i])
		m.set(i, x, newCol[i])
	}
	m.set(x, x, bound.LEZero)

	return nil
}

// OpenUp performs the time-elapse operator: every upper bound from a
// non-zero clock back to clock 0 is cleared to +∞, letting all clocks
// grow without limit. Preserves tightness (loosening an upper bound
// cannot violate the shortest-path property).
//
// Complexity: O(Dim).
func OpenUp(m *DBM) {
	n := m.Dim()
	for i := 1; i < n; i++ {
		m.set(i, 0, bound.LTInfinity)
	}
}

// OpenUpRow generalizes OpenUp to an arbitrary row: every entry M[i][k]
// for k != i is cleared to +∞. Used by package refclock's asynchronous
// open-up, where a reference clock must lose its relation to every other
// variable, not only to clock 0. Preserves tightness for the same reason
// OpenUp does: relaxing an edge can only loosen, never shorten, any path
// that uses it, so every triangle inequality through the relaxed edge
// remains trivially satisfied.
//
// Complexity: O(Dim).
func OpenUpRow(m *DBM, i int) error {
	n := m.Dim()
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}
	for k := 0; k < n; k++ {
		if k == i {
			continue
		}
		m.set(i, k, bound.LTInfinity)
	}

	return nil
}

// Intersection returns a freshly allocated DBM holding the
// entrywise-tighter of m1 and m2, then tightened; m1 and m2 are left
// unchanged and must share the same dimension. The returned Status is
// Empty if the intersection is empty.
//
// Complexity: O(Dim^3) (dominated by the closing Tighten).
func Intersection(m1, m2 *DBM) (*DBM, Status, error) {
	if m1.Dim() != m2.Dim() {
		return nil, NonEmpty, ErrDimensionMismatch
	}
	dst, err := New(m1.Dim())
	if err != nil {
		return nil, NonEmpty, err
	}
	for i := range dst.data {
		if bound.LessEq(m1.data[i], m2.data[i]) {
			dst.data[i] = m1.data[i]
		} else {
			dst.data[i] = m2.data[i]
		}
	}

	return dst, Tighten(dst), nil
}
