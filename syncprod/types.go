// File: types.go
// Role: Vector-of-locations/edges types and the transition record
//.

package syncprod

import "github.com/tchecker-go/tachecker/tasystem"

// NoEdge marks a process slot in a Vedge that did not fire in this
// transition (the asynchronous edge's own process still occupies a
// slot; every other process's slot is NoEdge).
const NoEdge tasystem.EdgeID = -1

// NoSync marks an asynchronous transition: it fired a single edge, not a
// synchronization vector.
const NoSync = -1

// Vloc is a vector of locations, one per process, indexed by ProcessID.
type Vloc []tasystem.LocationID

// Clone returns an independent copy of v.
func (v Vloc) Clone() Vloc {
	out := make(Vloc, len(v))
	copy(out, v)

	return out
}

// Vedge is a vector of edge ids or NoEdge, one per process, describing
// which edges fired jointly in one transition.
type Vedge []tasystem.EdgeID

// Transition is one product-transition-system step: the edges that fired
// (Vedge) and which synchronization vector drove it (SyncID, or NoSync
// for an asynchronous transition).
type Transition struct {
	Vedge  Vedge
	SyncID int
}

// Initial returns the vloc formed by each process's (unique, since
// Build requires at least one and callers are expected to pass a system
// whose processes each declare exactly one initial location for a
// well-formed product) initial location. When a process declares
// several initial locations, the first in declaration order is used;
// callers wanting every initial combination should enumerate
// sys.InitialLocations(p) themselves and build additional Vlocs.
func Initial(sys *tasystem.System) Vloc {
	procs := sys.Processes()
	v := make(Vloc, len(procs))
	for _, p := range procs {
		inits := sys.InitialLocations(p.ID)
		v[p.ID] = inits[0]
	}

	return v
}
