// File: final.go
// Role: Exhaustive enumeration of vloc tuples satisfying a target label
// set, used to seed backward search.

package syncprod

import "github.com/tchecker-go/tachecker/tasystem"

// FinalVlocs enumerates every vloc (one location per process, drawn
// from the full location set of that process, not just initial
// locations) whose accumulated label set is a superset of target.
//
// Cost is the full Cartesian product of per-process location counts:
// O(product of |locations(p)|). This is exponential in the number of
// processes and is only ever run once, as the backward-search seed, not
// per explored state — callers with many processes or many locations
// per process should expect this call to dominate setup time.
func FinalVlocs(sys *tasystem.System, target tasystem.BitSet) []Vloc {
	procs := sys.Processes()
	perProcess := make([][]tasystem.LocationID, len(procs))
	for _, p := range procs {
		for _, loc := range sys.Locations() {
			if loc.Process == p.ID {
				perProcess[p.ID] = append(perProcess[p.ID], loc.ID)
			}
		}
	}

	var out []Vloc
	current := make(Vloc, len(procs))
	var rec func(pid int)
	rec = func(pid int) {
		if pid == len(procs) {
			if IsFinal(sys, current, target) {
				out = append(out, current.Clone())
			}

			return
		}
		for _, loc := range perProcess[pid] {
			current[pid] = loc
			rec(pid + 1)
		}
	}
	rec(0)

	return out
}
