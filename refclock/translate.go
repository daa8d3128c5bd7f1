// File: translate.go
// Role: Translation of system-clock guards and resets to offset-variable
// constraints, the glue that lets package syncprod build
// offset-DBM transitions from a system model expressed over system
// clocks.

package refclock

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
)

// Guard is a system-clock constraint c_i - c_j <op> v, as stored on a
// tasystem edge.
type Guard struct {
	X, Y int
	Cmp  bound.Cmp
	V    int64
}

// Reset is a system-clock reset c_x := c_y + v, as stored on a tasystem
// edge. Only c_x := 0 (Y == 0, V == 0) is supported by the translator;
// any other shape is rejected.
type Reset struct {
	X, Y int
	V    int64
}

// TranslateGuard rewrites a system-clock guard into the equivalent
// offset-variable constraint, given R reference clocks. System clock i
// (i >= 1) maps to offset variable R+i-1; system clock 0 maps to a
// process's reference clock, represented here by refClock (the
// reference clock of the process owning the edge being translated).
//
//   - c_i - c_j ≺ v (i,j both non-zero)  => X_i - X_j ≺ v
//   - c_i - 0   ≺ v (j == 0)             => X_i - RX_i ≺ v
//   - 0   - c_j ≺ v (i == 0)             => RX_j - X_j ≺ v
//   - 0   - 0   ≺ v (i == j == 0)        => rejected
func TranslateGuard(g Guard, refCount int, refClock int) (Guard, error) {
	offsetOf := func(sysClock int) int {
		if sysClock == 0 {
			return refClock
		}

		return refCount + sysClock - 1
	}

	if g.X == 0 && g.Y == 0 {
		return Guard{}, fmt.Errorf("refclock.TranslateGuard: 0-0 constraint: %w", ErrBadTranslation)
	}

	return Guard{X: offsetOf(g.X), Y: offsetOf(g.Y), Cmp: g.Cmp, V: g.V}, nil
}

// TranslateReset rewrites a system-clock reset c_i := 0 into the
// equivalent offset reset X_i := RX_i + 0 (reset_to_refclock). Any reset
// with Y != 0 or V != 0 is rejected: offset translation only supports
// resetting a clock to zero.
func TranslateReset(r Reset, refCount int, refClock int) (x int, err error) {
	if r.Y != 0 || r.V != 0 {
		return 0, fmt.Errorf("refclock.TranslateReset: non-zero reset: %w", ErrBadTranslation)
	}
	if r.X == 0 {
		return 0, fmt.Errorf("refclock.TranslateReset: cannot reset the zero clock: %w", ErrBadTranslation)
	}

	return refCount + r.X - 1, nil
}
