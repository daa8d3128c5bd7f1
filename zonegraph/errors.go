// File: errors.go
// Role: Sentinel errors for engine construction.

package zonegraph

import "errors"

// ErrBadDelayAllowed names a delay-allowed bitmap whose length does not
// match the process count. No function in this package returns it:
// Engine takes no caller-supplied delay-allowed bitmap.
var ErrBadDelayAllowed = errors.New("zonegraph: delay-allowed bitmap length must match process count")

// ErrUnknownExtrapolation is returned when NewEngine is given an
// Extrapolation value outside the declared enumeration.
var ErrUnknownExtrapolation = errors.New("zonegraph: unknown extrapolation kind")

// ErrInitiallyEmpty is returned by Engine.Initial when the conjunction
// of every initial location's invariant is already unsatisfiable.
var ErrInitiallyEmpty = errors.New("zonegraph: initial zone is empty")
