// Package path extracts a counter-example sequence from a covering
// graph: a predicate-driven depth-first search grounded on
// algorithms/dfs.go's recursive pre-order walker, replaying the found
// edge sequence on a fresh, non-extrapolated zone graph to recover the
// exact zones along the path (the "symbolic lift"), and optionally
// collapsing the final zone to a single concrete valuation (the
// "concrete lift").
package path
