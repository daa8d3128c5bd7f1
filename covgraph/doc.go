// Package covgraph implements the covering reachability graph and
// pluggable waiting store used to drive forward exploration: a hash-consed node table keyed by discrete state (vloc,
// intvars) — the zone is deliberately excluded from the key so that
// zone-comparable nodes land in the same bucket — plus FIFO/LIFO/
// priority-queue waiting stores, each with a fast-remove sibling.
//
// The node table's bucket map is grounded on the map-keyed-by-composite-
// identity idiom used throughout package tasystem (locationByName,
// clockByName); the waiting stores are grounded on bfs.go's slice queue,
// dfs.go's explicit stack, and dijkstra.go's container/heap priority
// queue; the canonical-representative bookkeeping for covered nodes is
// grounded on prim_kruskal/kruskal.go's union-find with path compression,
// adapted to a directional union since covering (unlike an MST merge)
// always points toward the coverer, never either side arbitrarily.
package covgraph
