// Package dbm implements Difference-Bound Matrices: the canonical,
// zero-clock-indexed representation of a convex set of clock valuations
// ("zone"). Clock 0 is the fictitious always-zero reference clock;
// M.At(i,j) encodes the constraint c_i - c_j ≺ v.
//
// A DBM of dimension D is a D×D matrix of bound.Bound values, stored in a
// flat row-major buffer exactly as matrix.Dense stores float64s. The
// package exposes construction (Universal, UniversalPositive, Zero),
// emptiness/tightness/equality/inclusion predicates, the core operators
// (Constrain, Reset, OpenUp, Intersection, Tighten) and four extrapolation
// operators (ExtraM, ExtraMPlus, ExtraLU, ExtraLUPlus) that make the
// symbolic zone graph finite.
package dbm
