// Package syncprod computes the synchronized product transition system
// over a tasystem.System's processes, without consulting clocks
//: initial/final vloc tuples and outgoing/incoming
// transitions, respecting the committed-location rule.
//
// Outgoing/incoming enumeration is a deterministic Cartesian-style
// combination of per-process enabled-edge sets, grounded on
// builder's impl_bipartite.go/impl_complete.go pattern of emitting
// combinations in a fixed, reproducible index order rather than map
// iteration order.
package syncprod
