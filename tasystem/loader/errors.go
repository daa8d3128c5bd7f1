package loader

import "errors"

// ErrUnknownName is returned when a declaration references a process,
// event, clock, or integer variable name that the document never
// declared.
var ErrUnknownName = errors.New("loader: unknown name")

// ErrUnknownComparator is returned when a guard's cmp field is not one
// of the recognized comparator spellings.
var ErrUnknownComparator = errors.New("loader: unknown comparator")

// ErrAmbiguousAssignment is returned when an IntAssign sets neither
// Value nor Delta.
var ErrAmbiguousAssignment = errors.New("loader: assignment needs value or delta")
