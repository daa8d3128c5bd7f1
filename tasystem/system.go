// File: system.go
// Role: Build validation, the immutable System type, and its derived
// indices: location -> outgoing/incoming edges,
// process x event -> edges, location -> label bitset, committed set.

package tasystem

import "fmt"

// System is an immutable, validated network of timed automata. Every
// exported method is a read-only accessor; the only way to produce a
// System is Builder.Build.
type System struct {
	processes []Process
	events    []Event
	labels    []Label
	clocks    []Clock
	intVars   []IntVar
	locations []Location
	edges     []Edge
	syncVecs  []SyncVector

	outgoing map[LocationID][]EdgeID
	incoming map[LocationID][]EdgeID
	byProcEv map[[2]int][]EdgeID // [process, event] -> edges
	labelSet map[LocationID]BitSet
	numLabels int

	committed map[LocationID]struct{}
	access    AccessMap
}

// Build checks that every process declares at least one initial location
// and returns an immutable System; cross-references were already checked
// by the Add* and Set* calls that declared them. Build consumes the Builder: subsequent Add* calls fail with
// ErrAlreadyBuilt.
func (b *Builder) Build() (*System, error) {
	if err := b.guardMutable(); err != nil {
		return nil, err
	}

	initialByProcess := make(map[ProcessID]bool, len(b.processes))
	for _, l := range b.locations {
		if l.Initial {
			initialByProcess[l.Process] = true
		}
	}
	for _, p := range b.processes {
		if !initialByProcess[p.ID] {
			return nil, fmt.Errorf("tasystem.Build: process %q: %w", p.Name, ErrNoInitialLocation)
		}
	}

	s := &System{
		processes: append([]Process(nil), b.processes...),
		events:    append([]Event(nil), b.events...),
		labels:    append([]Label(nil), b.labels...),
		clocks:    append([]Clock(nil), b.clocks...),
		intVars:   append([]IntVar(nil), b.intVars...),
		locations: append([]Location(nil), b.locations...),
		edges:     append([]Edge(nil), b.edges...),
		syncVecs:  append([]SyncVector(nil), b.syncVectors...),
		outgoing:  make(map[LocationID][]EdgeID),
		incoming:  make(map[LocationID][]EdgeID),
		byProcEv:  make(map[[2]int][]EdgeID),
		labelSet:  make(map[LocationID]BitSet, len(b.locations)),
		numLabels: len(b.labels),
		committed: make(map[LocationID]struct{}),
	}

	for _, e := range s.edges {
		s.outgoing[e.Src] = append(s.outgoing[e.Src], e.ID)
		s.incoming[e.Tgt] = append(s.incoming[e.Tgt], e.ID)
		key := [2]int{int(e.Process), int(e.Event)}
		s.byProcEv[key] = append(s.byProcEv[key], e.ID)
	}
	for _, l := range s.locations {
		bs := NewBitSet(s.numLabels)
		for _, lab := range l.Labels {
			bs.Set(int(lab))
		}
		s.labelSet[l.ID] = bs
		if l.Committed {
			s.committed[l.ID] = struct{}{}
		}
	}

	s.access = buildAccessMap(s)

	b.built = true

	return s, nil
}

// Processes returns the declared processes in declaration order.
func (s *System) Processes() []Process { return s.processes }

// Events returns the declared events in declaration order.
func (s *System) Events() []Event { return s.events }

// Labels returns the declared labels in declaration order.
func (s *System) Labels() []Label { return s.labels }

// Clocks returns the declared clocks in declaration order (not including
// the implicit zero clock).
func (s *System) Clocks() []Clock { return s.clocks }

// ClockDim returns the DBM dimension needed to hold every declared
// clock plus the implicit zero clock at index 0. Array clocks (Size > 1)
// are not expanded into multiple DBM indices; each declared Clock
// occupies exactly one index, consistent with every other package's use
// of a Clock's id directly as its zone index.
func (s *System) ClockDim() int { return len(s.clocks) + 1 }

// IntVars returns the declared bounded integer variables in declaration order.
func (s *System) IntVars() []IntVar { return s.intVars }

// Locations returns every declared location.
func (s *System) Locations() []Location { return s.locations }

// Location returns the location with the given id.
func (s *System) Location(id LocationID) Location { return s.locations[id] }

// Edge returns the edge with the given id.
func (s *System) Edge(id EdgeID) Edge { return s.edges[id] }

// Edges returns every declared edge.
func (s *System) Edges() []Edge { return s.edges }

// SyncVectors returns the declared synchronization vectors in declaration order.
func (s *System) SyncVectors() []SyncVector { return s.syncVecs }

// OutgoingEdges returns the ids of edges whose source is loc.
func (s *System) OutgoingEdges(loc LocationID) []EdgeID { return s.outgoing[loc] }

// IncomingEdges returns the ids of edges whose target is loc.
func (s *System) IncomingEdges(loc LocationID) []EdgeID { return s.incoming[loc] }

// EdgesByProcessEvent returns the ids of edges of process tagged with event.
func (s *System) EdgesByProcessEvent(process ProcessID, event EventID) []EdgeID {
	return s.byProcEv[[2]int{int(process), int(event)}]
}

// LabelBitset returns loc's label bitset.
func (s *System) LabelBitset(loc LocationID) BitSet { return s.labelSet[loc] }

// IsCommitted reports whether loc is flagged committed.
func (s *System) IsCommitted(loc LocationID) bool {
	_, ok := s.committed[loc]

	return ok
}

// AccessMap returns the system's variable access map.
func (s *System) AccessMap() AccessMap { return s.access }

// NumLabels returns the number of declared labels.
func (s *System) NumLabels() int { return s.numLabels }

// InitialLocations returns, for each process, the ids of its locations
// flagged initial.
func (s *System) InitialLocations(process ProcessID) []LocationID {
	var out []LocationID
	for _, l := range s.locations {
		if l.Process == process && l.Initial {
			out = append(out, l.ID)
		}
	}

	return out
}

// AsynchronousEvents returns the ids of events that never appear with
// multi-process participation (more than one participant) in any
// synchronization vector.
func (s *System) AsynchronousEvents() []EventID {
	multiProcess := make(map[EventID]bool)
	for _, sv := range s.syncVecs {
		if len(sv.Participants) > 1 {
			for _, p := range sv.Participants {
				multiProcess[p.Event] = true
			}
		}
	}

	var out []EventID
	for _, e := range s.events {
		if !multiProcess[e.ID] {
			out = append(out, e.ID)
		}
	}

	return out
}
