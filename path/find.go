// File: find.go
// Role: Predicate-driven counter-example search over a covering graph,
// grounded on algorithms/dfs.go's recursive pre-order walker: visit,
// then recurse over outgoing edges, unwind on the first accepting
// descendant.

package path

import (
	"context"

	"github.com/tchecker-go/tachecker/covgraph"
)

// FindOptions configures one counter-example search.
type FindOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context

	// FilterFirst selects valid starting nodes. Required.
	FilterFirst FilterFirst
	// FilterLast selects accepting nodes. Required.
	FilterLast FilterLast
	// FilterEdge selects which edges may be traversed; defaults to
	// ActualEdgesOnly.
	FilterEdge FilterEdge
}

// Find searches g's nodes, in ascending id (insertion) order, for the
// first FilterFirst-satisfying node that can reach a FilterLast-
// satisfying node via a chain of FilterEdge-satisfying edges. Cycles
// are broken by a per-attempt visited set. Returns ErrNoPath if no
// starting node can reach an accepting one.
func Find(g *covgraph.Graph, opts FindOptions) (Sequence, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	filterEdge := opts.FilterEdge
	if filterEdge == nil {
		filterEdge = ActualEdgesOnly
	}

	adj := adjacency(g, filterEdge)

	for _, n := range g.Nodes() {
		if !opts.FilterFirst(n) {
			continue
		}
		seq, found, err := traverse(ctx, g, adj, n, opts.FilterLast, map[covgraph.NodeID]bool{})
		if err != nil {
			return Sequence{}, err
		}
		if found {
			return seq, nil
		}
	}

	return Sequence{}, ErrNoPath
}

// adjacency groups g's edges by source node, keeping only those
// filterEdge accepts.
func adjacency(g *covgraph.Graph, filterEdge FilterEdge) map[covgraph.NodeID][]covgraph.Edge {
	adj := make(map[covgraph.NodeID][]covgraph.Edge)
	for _, e := range g.Edges() {
		if filterEdge(e) {
			adj[e.From] = append(adj[e.From], e)
		}
	}

	return adj
}

// traverse is the recursive pre-order walker: visit n, check
// acceptance, then recurse over n's outgoing edges in recorded order.
func traverse(
	ctx context.Context,
	g *covgraph.Graph,
	adj map[covgraph.NodeID][]covgraph.Edge,
	n *covgraph.Node,
	filterLast FilterLast,
	visited map[covgraph.NodeID]bool,
) (Sequence, bool, error) {
	select {
	case <-ctx.Done():
		return Sequence{}, false, ctx.Err()
	default:
	}

	if visited[n.ID] {
		return Sequence{}, false, nil
	}
	visited[n.ID] = true

	if filterLast(n) {
		return Sequence{Nodes: []*covgraph.Node{n}}, true, nil
	}

	for _, e := range adj[n.ID] {
		next := g.Node(e.To)
		if next == nil || visited[next.ID] {
			continue
		}
		sub, found, err := traverse(ctx, g, adj, next, filterLast, visited)
		if err != nil {
			return Sequence{}, false, err
		}
		if found {
			return Sequence{
				Nodes: append([]*covgraph.Node{n}, sub.Nodes...),
				Edges: append([]covgraph.Edge{e}, sub.Edges...),
			}, true, nil
		}
	}

	return Sequence{}, false, nil
}
