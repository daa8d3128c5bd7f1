// Package zonegraph combines a syncprod product transition system with
// clock semantics, producing (vloc, intvars, zone) successor states
//. Engine.Step evaluates, in order, integer-variable
// guards/assignments, source-invariant intersection, time elapse,
// guard intersection, resets, target-invariant intersection and (for
// non-elapsed semantics) a second elapse/invariant pass, finally
// extrapolating the result per the configured abstraction.
//
// Sharing: a State's Vloc/Vedge payloads are conventionally treated as
// immutable once stored — callers that need to mutate a Vloc should
// Clone it first, the same discipline tasystem/dbm expect of callers
// holding a *DBM they did not just build. The full hash-consed node
// table that exploits this (to store one vloc per discrete state rather
// than one per explored path) lives in package covgraph.
package zonegraph
