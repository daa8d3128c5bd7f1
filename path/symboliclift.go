// File: symboliclift.go
// Role: Replay a found edge sequence on a fresh, non-extrapolated zone
// graph to recover the exact zone at each step, the "symbolic lift" of
// a counter-example. The replayed engine always uses Elapsed semantics
// and ExtraNone, since extrapolation would loosen the very zones this
// recovers.

package path

import (
	"fmt"

	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// SymbolicLift replays seq's edges from sys's initial state on a fresh,
// extrapolation-free engine, returning the zone-graph state at every
// step: states[0] is the initial state, states[i] is the state reached
// after firing seq.Edges[i-1]. seq must start at the system's initial
// state (the usual case: FilterFirst selects the root node) and every
// edge in seq must carry a real Transition (ActualEdgesOnly).
func SymbolicLift(sys *tasystem.System, seq Sequence) ([]zonegraph.State, error) {
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	if err != nil {
		return nil, err
	}

	cur, err := engine.Initial()
	if err != nil {
		return nil, err
	}

	states := make([]zonegraph.State, 0, len(seq.Edges)+1)
	states = append(states, cur)

	for i, e := range seq.Edges {
		if e.Transition == nil {
			return nil, fmt.Errorf("path.SymbolicLift: edge %d is a subsumption edge: %w", i, ErrNoPath)
		}
		status, next, err := engine.Step(cur, *e.Transition)
		if err != nil {
			return nil, fmt.Errorf("path.SymbolicLift: replaying edge %d: %w", i, err)
		}
		if status != zonegraph.StateOK {
			return nil, fmt.Errorf("path.SymbolicLift: edge %d replayed to status %s", i, status)
		}
		states = append(states, next)
		cur = next
	}

	return states, nil
}
