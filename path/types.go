// File: types.go
// Role: Predicates and the result shape for a found sequence.

package path

import "github.com/tchecker-go/tachecker/covgraph"

// FilterFirst selects valid starting nodes.
type FilterFirst func(n *covgraph.Node) bool

// FilterLast selects accepting nodes.
type FilterLast func(n *covgraph.Node) bool

// FilterEdge selects which edges the search may traverse.
type FilterEdge func(e covgraph.Edge) bool

// ActualEdgesOnly accepts only real transition edges, never a
// subsumption edge — the common case, since a counter-example must
// replay concrete transitions.
func ActualEdgesOnly(e covgraph.Edge) bool { return !e.IsSubsumption() }

// Sequence is a found path: n0, e1, n1, ..., ek, nk. len(Edges) ==
// len(Nodes)-1 always; a single-node result (FilterFirst and FilterLast
// agreeing at n0) has an empty Edges slice.
type Sequence struct {
	Nodes []*covgraph.Node
	Edges []covgraph.Edge
}
