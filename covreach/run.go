// File: run.go
// Role: The covreach main loop (spec §4.8): a walker over a waiting
// store and covering graph, grounded on algorithms/bfs.go's
// init/loop/visit/enqueueNeighbors split — "visit" here is the
// accepting-label test, "enqueueNeighbors" is expanding a node's
// zone-graph successors through the covering graph.

package covreach

import (
	"context"
	"time"

	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// RunOptions configures one exploration.
type RunOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context

	// Target is the accepting label set. A zero-popcount Target means
	// "no accepting test" — the run exhausts the whole state space and
	// always reports Reachable=false, returning the full graph.
	Target tasystem.BitSet

	// Mask selects which zone-graph steps are expanded; defaults to
	// zonegraph.OkOnly.
	Mask zonegraph.Mask

	// Policy selects the covering graph's insertion behavior; defaults
	// to covgraph.CoveringFull.
	Policy covgraph.Policy

	// ZoneLE overrides the covering graph's zone-inclusion test; defaults
	// to covgraph.PlainZoneLE().
	ZoneLE covgraph.ZoneLE

	// SearchOrder selects the waiting store's discipline; defaults to Bfs.
	SearchOrder SearchOrder

	// BlockSize and TableSize, when both positive, route node
	// allocation through covgraph.NewGraphWithBlockSize instead of
	// covgraph.NewGraph's plain per-node heap allocation.
	BlockSize int
	TableSize int
}

// Run explores engine's zone graph forward from its initial state,
// returning the resulting covering graph and run statistics.
func Run(engine *zonegraph.Engine, opts RunOptions) (*covgraph.Graph, Stats, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	mask := opts.Mask
	if mask == 0 {
		mask = zonegraph.OkOnly
	}
	zoneLE := opts.ZoneLE
	if zoneLE == nil {
		zoneLE = covgraph.PlainZoneLE()
	}
	waiting, err := NewWaitingStore(opts.SearchOrder)
	if err != nil {
		return nil, Stats{}, err
	}

	var graph *covgraph.Graph
	if opts.BlockSize > 0 && opts.TableSize > 0 {
		graph, err = covgraph.NewGraphWithBlockSize(opts.Policy, zoneLE, opts.BlockSize, opts.TableSize)
		if err != nil {
			return nil, Stats{}, err
		}
	} else {
		graph = covgraph.NewGraph(opts.Policy, zoneLE)
	}
	w := &walker{
		engine:  engine,
		graph:   graph,
		waiting: waiting,
		target:  opts.Target,
		mask:    mask,
		ctx:     ctx,
	}

	w.stats.StartTime = time.Now()
	runErr := w.run()
	w.stats.EndTime = time.Now()

	gst := graph.Stats()
	w.stats.CoveredCount = gst.CoveredCount
	w.stats.ActualEdges = gst.ActualEdges
	w.stats.SubsumptionEdges = gst.SubsumptionEdges

	return graph, w.stats, runErr
}

// walker holds the mutable state for one covreach run.
type walker struct {
	engine  *zonegraph.Engine
	graph   *covgraph.Graph
	waiting covgraph.WaitingStore
	target  tasystem.BitSet
	mask    zonegraph.Mask
	ctx     context.Context
	stats   Stats
}

func (w *walker) run() error {
	if err := w.init(); err != nil {
		return err
	}

	return w.loop()
}

// init seeds the waiting store with the zone graph's initial state.
func (w *walker) init() error {
	s, err := w.engine.Initial()
	if err != nil {
		return err
	}
	isNew, n, retired, err := w.graph.AddNode(s)
	if err != nil {
		return err
	}
	if isNew {
		w.waiting.Insert(n.ID)
	}
	w.evict(retired)

	return nil
}

// evict removes every just-retired node id from the waiting store, if
// still present there. Step 3's retroactive covering never looks at the
// waiting store itself, so this is covreach's responsibility; a missing
// id (already dequeued, or never enqueued) is not an error.
func (w *walker) evict(retired []covgraph.NodeID) {
	for _, id := range retired {
		_ = w.waiting.Remove(id)
	}
}

// loop drains the waiting store, testing each visited node for
// acceptance and expanding it into the covering graph otherwise.
func (w *walker) loop() error {
	for !w.waiting.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id, err := w.waiting.First()
		if err != nil {
			return err
		}
		if err := w.waiting.RemoveFirst(); err != nil {
			return err
		}
		w.stats.Visited++

		node := w.graph.Node(id)
		if node == nil {
			continue // not a node of this graph
		}
		if w.accepts(node.State.Vloc) {
			w.stats.Reachable = true

			return nil
		}
		if err := w.expand(id, node.State); err != nil {
			return err
		}
	}

	return nil
}

// accepts reports whether vloc's accumulated labels satisfy the target
// set. A zero-popcount target never accepts, per RunOptions.Target's doc.
func (w *walker) accepts(vloc syncprod.Vloc) bool {
	if w.target.PopCount() == 0 {
		return false
	}

	return syncprod.IsFinal(w.engine.System(), vloc, w.target)
}

// expand inserts every masked zone-graph successor of (id, s) into the
// covering graph, enqueuing newly inserted nodes.
func (w *walker) expand(id covgraph.NodeID, s zonegraph.State) error {
	for _, succ := range w.engine.Outgoing(s, w.mask) {
		isNew, n, retired, err := w.graph.AddNode(succ.State)
		if err != nil {
			return err
		}
		w.evict(retired)
		if isNew {
			w.waiting.Insert(n.ID)
			t := succ.Transition
			w.graph.AddEdge(id, n.ID, &t)
		} else {
			// s' was found covered by an already-explored node: the edge
			// reaches n' by containment, not by firing succ.Transition.
			w.graph.AddEdge(id, n.ID, nil)
		}
	}

	return nil
}
