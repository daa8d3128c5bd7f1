// File: errors.go
// Role: Sentinel errors for path search and zone lifting.

package path

import "errors"

// ErrNoPath is returned by Find when no node satisfying FilterFirst can
// reach a node satisfying FilterLast via edges satisfying FilterEdge.
var ErrNoPath = errors.New("path: no satisfying sequence found")

// ErrNotSingleValuation is returned by ConcreteLift when the final zone
// has not collapsed to a single clock valuation.
var ErrNotSingleValuation = errors.New("path: final zone is not a single valuation")
