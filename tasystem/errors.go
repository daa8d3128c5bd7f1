// File: errors.go
// Role: Sentinel errors for model construction.

package tasystem

import "errors"

var (
	// ErrDuplicateID is returned when an identifier is declared twice.
	ErrDuplicateID = errors.New("tasystem: duplicate identifier")
	// ErrUnknownProcess is returned when a reference names a process that
	// was never added.
	ErrUnknownProcess = errors.New("tasystem: unknown process")
	// ErrUnknownEvent is returned when a reference names an event that was
	// never added.
	ErrUnknownEvent = errors.New("tasystem: unknown event")
	// ErrUnknownLocation is returned when a reference names a location
	// that was never added.
	ErrUnknownLocation = errors.New("tasystem: unknown location")
	// ErrUnknownClock names a reference to a clock that was never added.
	// No Builder method returns it: clock indices in guards, invariants
	// and resets are not checked against the declared clocks.
	ErrUnknownClock = errors.New("tasystem: unknown clock")
	// ErrUnknownIntVar names a reference to a bounded integer variable
	// that was never added. No Builder method returns it: integer-variable
	// indices in guards and assignments are not checked.
	ErrUnknownIntVar = errors.New("tasystem: unknown integer variable")
	// ErrUnknownLabel is returned when a reference names a label that was
	// never added.
	ErrUnknownLabel = errors.New("tasystem: unknown label")
	// ErrBadDomain is returned when an integer variable's domain is empty
	// or its initial value falls outside it.
	ErrBadDomain = errors.New("tasystem: bad integer variable domain")
	// ErrBadArraySize is returned when a clock's array size is non-positive.
	ErrBadArraySize = errors.New("tasystem: clock array size must be >= 1")
	// ErrZeroClockReserved names an attempt to declare a clock with id 0
	// (the fictitious zero clock is implicit and reserved). No Builder
	// method returns it: AddClock assigns ids itself and never assigns 0.
	ErrZeroClockReserved = errors.New("tasystem: clock id 0 is reserved for the zero clock")
	// ErrDuplicateLocationName is returned when two processes declare a
	// location with the same name: forbidden system-wide.
	ErrDuplicateLocationName = errors.New("tasystem: location name already used by another process")
	// ErrCrossProcessEdge is returned when an edge's source and target
	// locations belong to different processes.
	ErrCrossProcessEdge = errors.New("tasystem: edge source and target must belong to the same process")
	// ErrNoInitialLocation is returned by Build when a process declares no
	// initial location.
	ErrNoInitialLocation = errors.New("tasystem: process has no initial location")
	// ErrAlreadyBuilt is returned when a Builder is reused after Build.
	ErrAlreadyBuilt = errors.New("tasystem: builder already consumed by Build")
)
