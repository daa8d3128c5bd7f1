// File: labels.go
// Role: Label computation over a vloc and the final-state test
//.

package syncprod

import "github.com/tchecker-go/tachecker/tasystem"

// Labels returns the union (bitwise OR) of the label bitsets of every
// location in vloc.
func Labels(sys *tasystem.System, vloc Vloc) tasystem.BitSet {
	acc := tasystem.NewBitSet(sys.NumLabels())
	for _, loc := range vloc {
		acc = acc.Or(sys.LabelBitset(loc))
	}

	return acc
}

// IsFinal reports whether vloc carries every label in target, i.e.
// target is a subset of the labels accumulated over vloc.
func IsFinal(sys *tasystem.System, vloc Vloc, target tasystem.BitSet) bool {
	return Labels(sys, vloc).SupersetOf(target)
}
