// SPDX-License-Identifier: MIT
// Package dbm: sentinel error set. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is; panics are reserved
// for programmer errors (out-of-range clock indices from internal
// callers), never for zone-emptiness, which is a first-class result.

package dbm

import "errors"

var (
	// ErrBadDimension is returned when a requested dimension is < 1.
	ErrBadDimension = errors.New("dbm: dimension must be >= 1")

	// ErrIndexOutOfRange indicates a clock index outside [0, Dim).
	ErrIndexOutOfRange = errors.New("dbm: clock index out of range")

	// ErrDimensionMismatch indicates two DBMs of different dimension were
	// combined (e.g. Intersection, IsLE).
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrNotTight reports that a matrix is not tight. No operation in this
	// package returns it; TightenLocal assumes tight input without checking.
	ErrNotTight = errors.New("dbm: matrix is not tight")

	// ErrBadReset indicates an unsupported reset shape was requested: v is
	// negative for the alias+offset shape. (A reset of clock 0 itself is
	// reported as ErrIndexOutOfRange.)
	ErrBadReset = errors.New("dbm: unsupported reset shape")
)
