// File: search_order.go
// Role: search_order as a first-class enum, per
// original_source/src/algorithms/search_order.cc, mapped onto
// covgraph's fast-remove FIFO/LIFO waiting stores.

package covreach

import "github.com/tchecker-go/tachecker/covgraph"

// SearchOrder selects the waiting store's discipline: breadth-first
// (FIFO, level order) or depth-first (LIFO, stack order).
type SearchOrder uint8

const (
	// Bfs explores in FIFO order.
	Bfs SearchOrder = iota
	// Dfs explores in LIFO order.
	Dfs
)

// String renders a SearchOrder the way command-line configuration
// spells it.
func (o SearchOrder) String() string {
	switch o {
	case Bfs:
		return "bfs"
	case Dfs:
		return "dfs"
	default:
		return "unknown"
	}
}

// ParseSearchOrder maps "bfs"/"dfs" onto a SearchOrder.
func ParseSearchOrder(s string) (SearchOrder, error) {
	switch s {
	case "bfs":
		return Bfs, nil
	case "dfs":
		return Dfs, nil
	default:
		return 0, ErrUnknownSearchOrder
	}
}

// NewWaitingStore returns a fast-remove waiting store matching order:
// the covering step's Remove call is always O(1)/O(log n), never the
// O(n) plain siblings, since a run's waiting store is never inspected
// except through covgraph.WaitingStore.
func NewWaitingStore(order SearchOrder) (covgraph.WaitingStore, error) {
	switch order {
	case Bfs:
		return covgraph.NewFastFIFO(), nil
	case Dfs:
		return covgraph.NewFastLIFO(), nil
	default:
		return nil, ErrUnknownSearchOrder
	}
}
