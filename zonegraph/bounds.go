// File: bounds.go
// Role: Static clock-bound computation feeding extrapolation. Grounded on
// flow/utils.go's buildCapMap pattern of scanning every edge once to
// derive a per-variable bound map before running the algorithm proper.

package zonegraph

import (
	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

// ComputeClockBounds scans every location invariant and edge guard in
// sys for the largest constant compared against each clock, returning
// global max-bound vectors sized sys.ClockDim(). Clock 0 (the zero
// clock) is never bounded (dbm.NoBound).
//
// This computes one global bound per clock rather than tchecker's
// per-location bound maps: a simplification recorded in DESIGN.md. It is
// sound (a looser, system-wide bound never under-approximates the
// per-location bound a precise analysis would compute) at the cost of
// precision.
func ComputeClockBounds(sys *tasystem.System) (lower, upper []int64) {
	dim := sys.ClockDim()
	lower = make([]int64, dim)
	upper = make([]int64, dim)
	for i := range lower {
		lower[i] = dbm.NoBound
		upper[i] = dbm.NoBound
	}

	observe := func(guards []refclock.Guard) {
		for _, g := range guards {
			v := g.V
			if v < 0 {
				v = -v
			}
			clock := g.X
			if g.X == 0 {
				clock = g.Y
			}
			if clock <= 0 || clock >= dim {
				continue
			}
			if lower[clock] == dbm.NoBound || v > lower[clock] {
				lower[clock] = v
			}
			if upper[clock] == dbm.NoBound || v > upper[clock] {
				upper[clock] = v
			}
		}
	}

	for _, loc := range sys.Locations() {
		observe(loc.Invariant)
	}
	for _, e := range allEdges(sys) {
		observe(e.Guard)
	}

	return lower, upper
}

func allEdges(sys *tasystem.System) []tasystem.Edge {
	var out []tasystem.Edge
	for _, loc := range sys.Locations() {
		for _, eid := range sys.OutgoingEdges(loc.ID) {
			out = append(out, sys.Edge(eid))
		}
	}

	return out
}
