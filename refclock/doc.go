// Package refclock implements offset DBMs: DBMs whose first R variables
// are per-process reference clocks and whose remaining variables are
// offset variables, each pinned to one reference clock by a reference
// map.
//
// An offset DBM of dimension D_off = R + D - 1 relates to a standard DBM
// of dimension D by identifying all reference clocks with the zero
// clock: clock x_i (i >= 1) of the standard DBM corresponds to offset
// variable R + i - 1. Projection back to a standard DBM (ToDBM) is only
// defined on a synchronized offset DBM, one where every reference clock
// carries the same value.
//
// Package refclock is grounded on graph/conversions.go's pattern of one
// underlying structure viewed through multiple coordinate systems with
// explicit, named conversion functions between them; the DBM storage and
// tightening machinery is reused directly from package dbm.
package refclock
