package pool

import "errors"

// ErrInvalidBlockSize is returned by New when blockSize is not positive.
var ErrInvalidBlockSize = errors.New("pool: block size must be > 0")
