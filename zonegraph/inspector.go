// File: inspector.go
// Role: Read-only state accessors independent of the exploring
// algorithm, mirroring original_source's ts/inspector.hh: Labels,
// IsInitial, IsFinal query a State's discrete part without touching the
// Engine that produced it.

package zonegraph

import (
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
)

// Labels returns the accumulated label set of s's discrete part.
func Labels(sys *tasystem.System, s State) tasystem.BitSet {
	return syncprod.Labels(sys, s.Vloc)
}

// IsInitial reports whether every process in s.Vloc sits in one of its
// declared initial locations.
func IsInitial(sys *tasystem.System, s State) bool {
	for pid, loc := range s.Vloc {
		isInit := false
		for _, initLoc := range sys.InitialLocations(tasystem.ProcessID(pid)) {
			if initLoc == loc {
				isInit = true

				break
			}
		}
		if !isInit {
			return false
		}
	}

	return true
}

// IsFinal reports whether s's accumulated labels are a superset of
// target.
func IsFinal(sys *tasystem.System, s State, target tasystem.BitSet) bool {
	return syncprod.IsFinal(sys, s.Vloc, target)
}
