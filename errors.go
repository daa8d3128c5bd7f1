package tachecker

import "errors"

// ErrUnknownLabel is returned by Run when a label name passed to
// WithLabels was never declared on the system.
var ErrUnknownLabel = errors.New("tachecker: unknown label")
