// File: outgoing.go
// Role: Status-masked successor enumeration over syncprod's transition
// tuples.

package zonegraph

import "github.com/tchecker-go/tachecker/syncprod"

// Outgoing returns one Successor per syncprod transition enabled from
// src.Vloc whose resulting Status intersects mask. Transitions whose
// Step fails entirely (IncompatibleEdge, a stale transition) are never
// surfaced regardless of mask, since they carry no usable State.
func (e *Engine) Outgoing(src State, mask Mask) []Successor {
	var out []Successor
	for _, t := range syncprod.Outgoing(e.sys, src.Vloc) {
		status, next, err := e.Step(src, t)
		if err != nil || status == IncompatibleEdge {
			continue
		}
		if mask.Intersects(status) {
			out = append(out, Successor{Status: status, State: next, Transition: t})
		}
	}

	return out
}
