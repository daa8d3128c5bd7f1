// File: apply.go
// Role: Firing a transition against a vloc.

package syncprod

import "github.com/tchecker-go/tachecker/tasystem"

// Apply fires t against vloc, returning the resulting vloc. Every fired
// edge's recorded source must match vloc's current entry for its
// process; a mismatch means t was built against a different vloc and is
// reported as ErrIncompatibleEdge.
func Apply(sys *tasystem.System, vloc Vloc, t Transition) (Vloc, error) {
	next := vloc.Clone()
	for pid, eid := range t.Vedge {
		if eid == NoEdge {
			continue
		}
		e := sys.Edge(eid)
		if e.Src != vloc[pid] {
			return nil, ErrIncompatibleEdge
		}
		next[pid] = e.Tgt
	}

	return next, nil
}
