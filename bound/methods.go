// File: methods.go
// Role: Saturating arithmetic, total order, and hashing over Bound.
// AI-HINT (file):
//   - Sum is absorbing for Infinity and otherwise takes the stricter comparator.
//   - Less defines the total order where "<=5" is strictly greater than "<5"
//     (a non-strict bound admits a strictly larger set of valuations).

package bound

import "fmt"

// Sum computes b1 + b2 under the extended algebra: +∞ is absorbing, and a
// finite result's comparator is strict ("<") whenever either operand was
// strict. Overflow of the resulting value is reported as ErrOverflow.
//
// Complexity: O(1).
func Sum(b1, b2 Bound) (Bound, error) {
	if b1.Infinite || b2.Infinite {
		return LTInfinity, nil
	}

	cmp := LE
	if b1.Cmp == LT || b2.Cmp == LT {
		cmp = LT
	}

	return DB(cmp, b1.Value+b2.Value)
}

// MustSum is Sum but panics on overflow; used internally once operands are
// already known to be in range (e.g. two bounds drawn from an existing
// tight DBM).
func MustSum(b1, b2 Bound) Bound {
	s, err := Sum(b1, b2)
	if err != nil {
		panic(err)
	}

	return s
}

// Compare returns -1, 0, or +1 as b1 is less than, equal to, or greater
// than b2 under the total order where Infinity is the top element and,
// at equal finite value, the strict comparator ("<") sorts below the
// non-strict one ("≤") — "≤5" is treated as weaker/larger than "<5" so
// that is_am_le/is_alu_le style inclusion checks compose correctly.
//
// Complexity: O(1).
func Compare(b1, b2 Bound) int {
	switch {
	case b1.Infinite && b2.Infinite:
		return 0
	case b1.Infinite:
		return 1
	case b2.Infinite:
		return -1
	}

	if b1.Value != b2.Value {
		if b1.Value < b2.Value {
			return -1
		}

		return 1
	}

	// Equal finite value: strict ("<") is "less than" non-strict ("≤").
	if b1.Cmp == b2.Cmp {
		return 0
	}
	if b1.Cmp == LT {
		return -1
	}

	return 1
}

// Less reports whether b1 < b2 under Compare's total order.
func Less(b1, b2 Bound) bool { return Compare(b1, b2) < 0 }

// LessEq reports whether b1 ≤ b2 under Compare's total order.
func LessEq(b1, b2 Bound) bool { return Compare(b1, b2) <= 0 }

// Equal reports structural equality (same comparator and value, or both
// Infinite).
func Equal(b1, b2 Bound) bool { return Compare(b1, b2) == 0 }

// Negate returns the bound for the reversed constraint direction, used
// when deriving a lower bound from an upper bound of the same magnitude
// (e.g. extrapolation's "replace by (<, -L[j])" step).
// Negate is undefined (panics) on Infinity, mirroring the teacher's
// convention of panicking only on programmer errors, never user input.
func Negate(b Bound) Bound {
	if b.Infinite {
		panic(fmt.Errorf("bound.Negate: %w", ErrOverflow))
	}

	return Bound{Cmp: b.Cmp, Value: -b.Value}
}

// Hash returns a deterministic hash of b, suitable for use as part of a
// composite DBM/state hash (see covgraph's discrete-state bucketing).
//
// Complexity: O(1).
func Hash(b Bound) uint64 {
	if b.Infinite {
		return 0xffffffffffffffff
	}

	h := uint64(b.Value) * 0x9e3779b97f4a7c15
	if b.Cmp == LT {
		h ^= 1
	}

	return h
}
