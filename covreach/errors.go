// File: errors.go
// Role: Sentinel errors for covreach's run configuration.

package covreach

import "errors"

// ErrUnknownSearchOrder is returned by NewWaitingStore for an
// unrecognized SearchOrder value.
var ErrUnknownSearchOrder = errors.New("covreach: unknown search order")
