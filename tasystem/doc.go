// Package tasystem models a network of timed automata: processes,
// locations, edges, events, clocks, bounded integer variables, labels,
// and synchronization vectors.
//
// A System is built incrementally through a Builder (AddProcess,
// AddLocation, AddEdge, ...), each identifier declared at most once and
// before anything that refers to it, since each Add* call checks its
// references when it is made; Builder.Build checks that every process has
// an initial location, computes the derived indices (location -> edges, process x event ->
// edges, label bitsets, committed-location set, variable access map),
// and returns an immutable System. A built System is never mutated again:
// every exported method is a read-only accessor, mirroring core.Graph's
// split between mutation and inspection but without the mutation side
// once Build has returned.
package tasystem
