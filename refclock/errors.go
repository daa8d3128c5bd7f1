// File: errors.go
// Role: Sentinel errors for the offset-DBM engine.

package refclock

import "errors"

var (
	// ErrBadRefCount is returned when refcount is outside [1, offset_dim].
	ErrBadRefCount = errors.New("refclock: refcount out of range")
	// ErrNotSynchronized is returned by ToDBM on a non-synchronized offset DBM.
	ErrNotSynchronized = errors.New("refclock: offset DBM is not synchronized")
	// ErrEmptySource is returned by ToDBM on an empty offset DBM.
	ErrEmptySource = errors.New("refclock: offset DBM is empty")
	// ErrDimensionMismatch is returned when a supplied dbm/refmap/bitmap
	// does not match the expected dimension.
	ErrDimensionMismatch = errors.New("refclock: dimension mismatch")
	// ErrUnsupportedDecomposition is returned when the variable access map
	// shows a clock read or written by more than one process: reference
	// clock decomposition per process is not admissible.
	ErrUnsupportedDecomposition = errors.New("refclock: clock accessed by more than one process")
	// ErrBadTranslation is returned by the guard/reset translator on an
	// unsupported constraint or reset shape.
	ErrBadTranslation = errors.New("refclock: unsupported guard or reset shape")
)
