// File: outgoing.go
// Role: Outgoing transition enumeration: asynchronous
// edges and synchronized tuples, filtered by the committed-location
// rule.

package syncprod

import "github.com/tchecker-go/tachecker/tasystem"

// Outgoing returns every transition enabled from vloc: one per
// asynchronous edge whose source matches vloc, plus one per combination
// produced by the Cartesian product of enabled edges for each
// synchronization vector whose STRONG participants are all enabled.
//
// Complexity: O(sum of enabled-edge-set sizes) for asynchronous edges,
// plus, per synchronization vector, the product of its participants'
// enabled-edge-set sizes.
func Outgoing(sys *tasystem.System, vloc Vloc) []Transition {
	return enumerate(sys, vloc, forward)
}

type direction uint8

const (
	forward direction = iota
	backward
)

func enabledEdges(sys *tasystem.System, vloc Vloc, pid tasystem.ProcessID, event tasystem.EventID, dir direction) []tasystem.EdgeID {
	var candidates []tasystem.EdgeID
	if dir == forward {
		candidates = sys.OutgoingEdges(vloc[pid])
	} else {
		candidates = sys.IncomingEdges(vloc[pid])
	}

	var out []tasystem.EdgeID
	for _, eid := range candidates {
		e := sys.Edge(eid)
		if e.Event == event {
			out = append(out, eid)
		}
	}

	return out
}

// enumerate builds both outgoing (dir=forward) and incoming (dir=backward)
// transition sets: the enabled-edge lookup and committed-rule filter are
// symmetric except for which endpoint of each edge must match vloc.
func enumerate(sys *tasystem.System, vloc Vloc, dir direction) []Transition {
	n := len(sys.Processes())
	var out []Transition

	// Asynchronous edges: a single process fires alone.
	asyncSet := make(map[tasystem.EventID]bool)
	for _, eid := range sys.AsynchronousEvents() {
		asyncSet[eid] = true
	}
	for pid := 0; pid < n; pid++ {
		var candidates []tasystem.EdgeID
		if dir == forward {
			candidates = sys.OutgoingEdges(vloc[tasystem.ProcessID(pid)])
		} else {
			candidates = sys.IncomingEdges(vloc[tasystem.ProcessID(pid)])
		}
		for _, eid := range candidates {
			e := sys.Edge(eid)
			if !asyncSet[e.Event] {
				continue
			}
			vedge := make(Vedge, n)
			for i := range vedge {
				vedge[i] = NoEdge
			}
			vedge[pid] = eid
			out = append(out, Transition{Vedge: vedge, SyncID: NoSync})
		}
	}

	// Synchronized tuples: one Cartesian product per synchronization vector.
	for _, sv := range sys.SyncVectors() {
		var dims [][]tasystem.EdgeID
		var pids []tasystem.ProcessID
		ok := true
		for _, p := range sv.Participants {
			edges := enabledEdges(sys, vloc, p.Process, p.Event, dir)
			if len(edges) == 0 {
				if p.Strength == tasystem.Strong {
					ok = false
					break
				}

				continue // unenabled WEAK participant: simply omitted
			}
			dims = append(dims, edges)
			pids = append(pids, p.Process)
		}
		if !ok || len(dims) == 0 {
			continue
		}

		for _, combo := range cartesian(dims) {
			vedge := make(Vedge, n)
			for i := range vedge {
				vedge[i] = NoEdge
			}
			for i, eid := range combo {
				vedge[pids[i]] = eid
			}
			out = append(out, Transition{Vedge: vedge, SyncID: sv.ID})
		}
	}

	return filterCommitted(sys, vloc, out, dir)
}

// cartesian returns the Cartesian product of dims, each inner slice
// enumerated in its given (deterministic) order, outer index varying
// slowest — the same fixed-order combination emission as
// builder.CompleteBipartite's i-then-j loop nesting.
func cartesian(dims [][]tasystem.EdgeID) [][]tasystem.EdgeID {
	if len(dims) == 0 {
		return nil
	}
	result := [][]tasystem.EdgeID{{}}
	for _, dim := range dims {
		var next [][]tasystem.EdgeID
		for _, prefix := range result {
			for _, v := range dim {
				combo := append(append([]tasystem.EdgeID(nil), prefix...), v)
				next = append(next, combo)
			}
		}
		result = next
	}

	return result
}

func filterCommitted(sys *tasystem.System, vloc Vloc, transitions []Transition, dir direction) []Transition {
	anyCommitted := false
	for _, l := range vloc {
		if sys.IsCommitted(l) {
			anyCommitted = true

			break
		}
	}
	if !anyCommitted {
		return transitions
	}

	var out []Transition
	for _, t := range transitions {
		if dir == forward {
			if transitionTouchesCommitted(sys, vloc, t) {
				out = append(out, t)
			}

			continue
		}
		// Incoming: allowed iff it moves a committed-in-source process, or
		// no process outside the tuple is committed in the target vloc.
		if transitionTouchesCommittedSource(sys, t) || !nonTupleProcessCommitted(sys, vloc, t) {
			out = append(out, t)
		}
	}

	return out
}

func transitionTouchesCommitted(sys *tasystem.System, vloc Vloc, t Transition) bool {
	for pid, eid := range t.Vedge {
		if eid == NoEdge {
			continue
		}
		if sys.IsCommitted(vloc[pid]) {
			return true
		}
	}

	return false
}

func transitionTouchesCommittedSource(sys *tasystem.System, t Transition) bool {
	for _, eid := range t.Vedge {
		if eid == NoEdge {
			continue
		}
		if sys.IsCommitted(sys.Edge(eid).Src) {
			return true
		}
	}

	return false
}

func nonTupleProcessCommitted(sys *tasystem.System, vloc Vloc, t Transition) bool {
	for pid, eid := range t.Vedge {
		if eid != NoEdge {
			continue
		}
		if sys.IsCommitted(vloc[pid]) {
			return true
		}
	}

	return false
}
