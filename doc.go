// Package tachecker is a symbolic model checker for networks of timed
// automata: given a system model, an accepting label set and a search
// strategy, Run explores the model's zone graph with on-the-fly
// covering and reports whether an accepting state is reachable.
//
// The engine is organized as a pipeline of small packages, each a
// self-contained component:
//
//	bound/      — saturating bound algebra (the DBM entry scalar)
//	dbm/        — difference bound matrix operations and extrapolation
//	refclock/   — reference-clock (offset) DBMs for decomposed systems
//	tasystem/   — the declared system model (processes, clocks, edges)
//	syncprod/   — the synchronized product transition system
//	zonegraph/  — the symbolic (vloc, intvars, zone) transition system
//	covgraph/   — the covering reachability graph and waiting store
//	covreach/   — the forward exploration algorithm
//	path/       — counter-example extraction, symbolic and concrete
//	pool/       — block-growable allocation arena
//	output/     — Result summary and DOT graph dump
//
// Run wires these into the single entry point a driver needs.
package tachecker
