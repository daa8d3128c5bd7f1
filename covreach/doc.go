// Package covreach implements forward exploration of a zone graph with
// on-the-fly covering: a BFS/DFS-style walker, grounded on
// algorithms/bfs.go's init/loop/visit/enqueueNeighbors decomposition,
// driving a covgraph.Graph and covgraph.WaitingStore instead of a plain
// visited set and queue.
package covreach
