// File: types.go
// Role: Node/edge identifiers and records for the covering graph
//.

package covgraph

import (
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// NodeID identifies a node in the covering graph. Ids are never reused:
// a covered node's id stays retired even after union-find redirection.
type NodeID int

// Node is one entry of the covering graph: an explored zone-graph state.
type Node struct {
	ID      NodeID
	State   zonegraph.State
	Covered bool
}

// Edge connects two nodes. Transition is nil for a subsumption edge
//: the target is reached by containment,
// not by firing a concrete transition.
type Edge struct {
	From       NodeID
	To         NodeID
	Transition *syncprod.Transition
}

// IsSubsumption reports whether e is a covering edge rather than an
// actual transition edge.
func (e Edge) IsSubsumption() bool { return e.Transition == nil }

// Policy selects which covering steps Graph.AddNode performs.
type Policy uint8

const (
	// CoveringFull applies both the "is the candidate covered" and "does
	// the candidate cover existing nodes" tests on every insertion.
	CoveringFull Policy = iota
	// CoveringLeafNodes applies only the "is the candidate covered" test;
	// existing nodes are never retroactively dropped, so the graph grows
	// monotonically.
	CoveringLeafNodes
	// CoveringNone disables covering entirely: every inserted State
	// becomes its own new node, with no zone comparison and no
	// deduplication, even of identical states. Supplements the two named
	// variants for callers that want plain reachability without any
	// subsumption bookkeeping.
	CoveringNone
)
