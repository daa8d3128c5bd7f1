// File: incoming.go
// Role: Incoming transition enumeration, symmetric to Outgoing but
// matching edges by target location and reversing the committed rule
//.

package syncprod

import "github.com/tchecker-go/tachecker/tasystem"

// Incoming returns every transition that could have led to vloc: the
// same Cartesian-product construction as Outgoing, but matching each
// edge's target against vloc instead of its source.
//
// Committed rule (reversed from Outgoing): a tuple is allowed iff it
// moves at least one process out of a committed source location, or no
// process left outside the tuple is committed in vloc.
func Incoming(sys *tasystem.System, vloc Vloc) []Transition {
	return enumerate(sys, vloc, backward)
}
