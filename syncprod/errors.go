// File: errors.go
// Role: Sentinel errors for product-transition application.

package syncprod

import "errors"

// ErrIncompatibleEdge is returned by Apply when an edge's recorded source
// location does not match the current vloc entry for its process.
var ErrIncompatibleEdge = errors.New("syncprod: incompatible edge (source location mismatch)")
