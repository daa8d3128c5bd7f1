// File: graph.go
// Role: The hash-consed node table and covering/subsumption insertion
// algorithm.

package covgraph

import (
	"github.com/tchecker-go/tachecker/pool"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// Graph is the covering reachability graph: a node table keyed by
// discrete state, plus the actual and subsumption edges recorded
// between nodes.
type Graph struct {
	policy Policy
	zoneLE ZoneLE

	nodes    map[NodeID]*Node
	buckets  map[string][]NodeID // discreteKey -> live node ids, insertion order
	edges    []Edge
	uf       *unionFind
	nextID   NodeID
	nodePool *pool.Pool[Node] // nil unless built via NewGraphWithBlockSize

	coveredCount int
}

// NewGraph constructs an empty covering graph under the given policy,
// using zoneLE to test zone inclusion between same-discrete-state
// candidates. Nodes are allocated one at a time on the Go heap; use
// NewGraphWithBlockSize for the block-allocated variant named by §5's
// "state/transition pools are block-allocated".
func NewGraph(policy Policy, zoneLE ZoneLE) *Graph {
	return &Graph{
		policy:  policy,
		zoneLE:  zoneLE,
		nodes:   make(map[NodeID]*Node),
		buckets: make(map[string][]NodeID),
		uf:      newUnionFind(),
	}
}

// NewGraphWithBlockSize is NewGraph, but every Node is allocated from a
// pool.Pool sized blockSize, and the node/bucket tables are pre-sized to
// tableSize entries, so a run's whole node table lives in a handful of
// contiguous blocks with few hash-table rehashes instead of one heap
// allocation per node and repeated map growth — the block_size/
// table_size knobs §6 names on the run entry point.
func NewGraphWithBlockSize(policy Policy, zoneLE ZoneLE, blockSize, tableSize int) (*Graph, error) {
	p, err := pool.New[Node](blockSize)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		policy:   policy,
		zoneLE:   zoneLE,
		nodes:    make(map[NodeID]*Node, tableSize),
		buckets:  make(map[string][]NodeID, tableSize),
		uf:       newUnionFind(),
		nodePool: p,
	}

	return g, nil
}

// AddNode runs the covering-insertion algorithm for candidate state s,
// returning the node that now represents s (freshly inserted, or the
// covering node it was found to be covered by), whether it was newly
// inserted (false when covered by an existing node), and the ids of any
// existing nodes just retired by s's insertion (CoveringFull's step 3).
// A retired id is no longer live: callers driving a waiting store must
// remove it from there too, since Graph itself holds no reference to
// the exploration frontier.
func (g *Graph) AddNode(s zonegraph.State) (isNew bool, n *Node, retired []NodeID, err error) {
	key := discreteKey(s)
	bucket := g.buckets[key]

	if g.policy != CoveringNone {
		// Step 2: is s covered by an existing live node in the bucket?
		for _, mid := range bucket {
			m := g.nodes[mid]
			le, err := g.zoneLE(s.Zone, m.State.Zone)
			if err != nil {
				return false, nil, nil, err
			}
			if le {
				g.coveredCount++

				return false, m, nil, nil
			}
		}
	}

	// Not covered: insert as a new node.
	id := g.nextID
	g.nextID++
	var node *Node
	if g.nodePool != nil {
		node = g.nodePool.Alloc()
	} else {
		node = &Node{}
	}
	node.ID = id
	node.State = s
	g.nodes[id] = node
	g.uf.add(id)

	if g.policy == CoveringFull {
		// Step 3: does s cover any existing live node in the bucket?
		var kept []NodeID
		for _, mid := range bucket {
			m := g.nodes[mid]
			le, err := g.zoneLE(m.State.Zone, s.Zone)
			if err != nil {
				return false, nil, nil, err
			}
			if le {
				g.retire(mid, id)
				g.coveredCount++
				retired = append(retired, mid)

				continue
			}
			kept = append(kept, mid)
		}
		bucket = kept
	}

	g.buckets[key] = append(bucket, id)

	return true, node, retired, nil
}

// retire marks m covered, redirects every edge pointing to it toward
// coveredBy, and detaches it from the active graph.
func (g *Graph) retire(m, coveredBy NodeID) {
	g.nodes[m].Covered = true
	g.uf.union(m, coveredBy)
	for i := range g.edges {
		if g.edges[i].To == m {
			g.edges[i].To = coveredBy
			g.edges[i].Transition = nil // redirected edges become subsumption edges
		}
	}
}

// Representative returns the live node that currently represents id:
// id itself if never covered, otherwise the canonical node of the
// covering chain.
func (g *Graph) Representative(id NodeID) NodeID { return g.uf.find(id) }

// AddEdge records an edge from 'from' to 'to'. Pass a non-nil t for an
// actual transition edge, nil for a subsumption edge — the direct case
// where AddNode found the exploration parent's candidate already
// covered, so the edge from the parent must be recorded as subsumption
// from the start (AddNode's own retire path covers the other case: an
// existing node later found to be covered by a fresher one).
func (g *Graph) AddEdge(from, to NodeID, t *syncprod.Transition) {
	g.edges = append(g.edges, Edge{From: from, To: to, Transition: t})
}

// Edges returns every recorded edge, actual and subsumption alike.
func (g *Graph) Edges() []Edge { return g.edges }

// Node returns the node with the given id, or nil if unknown.
func (g *Graph) Node(id NodeID) *Node { return g.nodes[id] }

// Nodes returns every node ever inserted (covered or not) in ascending
// id order, i.e. insertion order, since ids are assigned sequentially
// and never reused.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for id := NodeID(0); id < g.nextID; id++ {
		if n, ok := g.nodes[id]; ok {
			out = append(out, n)
		}
	}

	return out
}

// Stats summarizes the graph's current shape.
type Stats struct {
	NodeCount        int
	CoveredCount     int
	ActualEdges      int
	SubsumptionEdges int
}

// Stats computes a fresh summary of the graph's current state.
func (g *Graph) Stats() Stats {
	st := Stats{NodeCount: len(g.nodes), CoveredCount: g.coveredCount}
	for _, e := range g.edges {
		if e.IsSubsumption() {
			st.SubsumptionEdges++
		} else {
			st.ActualEdges++
		}
	}

	return st
}
