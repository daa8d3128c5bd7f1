// File: access.go
// Role: Variable access map,
// grounded on include/tchecker/variables/access.hh: for each variable,
// classify which processes read it and which write it. refclock uses
// this to decide whether reference-clock-per-process decomposition is
// admissible — each clock must be accessed by exactly one process.

package tasystem

// VariableKind distinguishes clocks from bounded integer variables in
// the access map, mirroring access.hh's variable_type_t.
type VariableKind uint8

const (
	// KindClock marks a clock variable.
	KindClock VariableKind = iota
	// KindIntVar marks a bounded integer variable.
	KindIntVar
)

// AccessKind distinguishes read from write accesses.
type AccessKind uint8

const (
	// AccessRead marks a read access.
	AccessRead AccessKind = iota
	// AccessWrite marks a write access.
	AccessWrite
)

type accessKey struct {
	kind     VariableKind
	variable int
	access   AccessKind
}

// AccessMap records, for each (variable kind, variable id, access kind),
// the set of processes performing that access.
type AccessMap struct {
	processesOf map[accessKey]map[ProcessID]struct{}
}

func newAccessMap() AccessMap {
	return AccessMap{processesOf: make(map[accessKey]map[ProcessID]struct{})}
}

func (a AccessMap) add(kind VariableKind, variable int, access AccessKind, process ProcessID) {
	key := accessKey{kind: kind, variable: variable, access: access}
	set, ok := a.processesOf[key]
	if !ok {
		set = make(map[ProcessID]struct{})
		a.processesOf[key] = set
	}
	set[process] = struct{}{}
}

// AccessingProcesses returns the ids of processes performing access on
// variable (of the given kind), in no particular order.
func (a AccessMap) AccessingProcesses(kind VariableKind, variable int, access AccessKind) []ProcessID {
	set := a.processesOf[accessKey{kind: kind, variable: variable, access: access}]
	out := make([]ProcessID, 0, len(set))
	for p := range set {
		out = append(out, p)
	}

	return out
}

// AccessingProcessCount returns the number of distinct processes that
// read or write (AccessRead or AccessWrite; either counts) variable.
func (a AccessMap) AccessingProcessCount(kind VariableKind, variable int) int {
	seen := make(map[ProcessID]struct{})
	for _, access := range []AccessKind{AccessRead, AccessWrite} {
		for p := range a.processesOf[accessKey{kind: kind, variable: variable, access: access}] {
			seen[p] = struct{}{}
		}
	}

	return len(seen)
}

// HasSharedVariable reports whether any variable of the given kind is
// accessed by more than one process.
func (a AccessMap) HasSharedVariable(kind VariableKind, numVariables int) bool {
	for v := 0; v < numVariables; v++ {
		if a.AccessingProcessCount(kind, v) > 1 {
			return true
		}
	}

	return false
}

// ClockAccessCounts returns, for system clock ids 1..len(clocks), how
// many distinct processes access each clock — the shape refclock.
// ValidateDecomposition expects. Index 0 of the returned slice
// corresponds to clock id 1 (clock id 0, the zero clock, is never
// decomposed and is omitted).
func (s *System) ClockAccessCounts() []int {
	counts := make([]int, len(s.clocks))
	for i := range counts {
		clockID := i + 1
		counts[i] = s.access.AccessingProcessCount(KindClock, clockID)
	}

	return counts
}

func buildAccessMap(s *System) AccessMap {
	a := newAccessMap()
	for _, e := range s.edges {
		for _, g := range e.Guard {
			if g.X != 0 {
				a.add(KindClock, g.X, AccessRead, e.Process)
			}
			if g.Y != 0 {
				a.add(KindClock, g.Y, AccessRead, e.Process)
			}
		}
		for _, r := range e.Resets {
			a.add(KindClock, r.X, AccessWrite, e.Process)
			if r.Y != 0 {
				a.add(KindClock, r.Y, AccessRead, e.Process)
			}
		}
		for _, g := range e.IntVarGuard {
			a.add(KindIntVar, int(g.Var), AccessRead, e.Process)
		}
		for _, asg := range e.Assignments {
			a.add(KindIntVar, int(asg.Var), AccessWrite, e.Process)
			if asg.Delta != 0 {
				a.add(KindIntVar, int(asg.Var), AccessRead, e.Process)
			}
		}
	}

	return a
}
