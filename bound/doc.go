// Package bound implements the extended difference-bound algebra that
// underlies every Difference-Bound Matrix (DBM) entry: a comparator
// (strict "<" or non-strict "≤") paired with an integer value, plus a
// distinguished "+∞" absorbing element.
//
// A Bound encodes the right-hand side of a clock-difference constraint
// "c_i - c_j ≺ v": Bound{Cmp: LT, Value: v} means "<v", Bound{Cmp: LE,
// Value: v} means "≤v". Arithmetic on bounds (Sum) is absorbing for
// Infinity and reports ErrOverflow when a finite result leaves the
// representable range, and comparators combine via logical AND on
// strictness so that "≤5" is correctly treated as weaker than "<5".
package bound
