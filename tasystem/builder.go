// File: builder.go
// Role: Incremental, fail-fast model construction,
// mirroring builder/api.go's discipline of validating eagerly and never
// panicking, and builder/config.go's "apply, then freeze" shape —
// except here the thing being built is the domain object itself, not a
// functional-option config.

package tasystem

import (
	"fmt"

	"github.com/tchecker-go/tachecker/refclock"
)

// Builder accumulates processes, locations, edges, events, clocks,
// integer variables, labels, and synchronization vectors, each declared
// at most once. Each Add* call validates its references as it is made,
// so an entity must be declared before anything that refers to it: a
// process before its locations, and the locations and event before an
// edge between them. Build checks that every process has an initial
// location and returns an immutable System. A Builder must not be reused after Build
// succeeds or failed terminally on a structural (non-recoverable) error;
// well-formed Add* calls may still be issued after a validation error
// from a single Add* call, since each call is independently fail-fast.
type Builder struct {
	processes []Process
	processByName map[string]ProcessID

	events      []Event
	eventByName map[string]EventID

	labels      []Label
	labelByName map[string]LabelID

	clocks      []Clock
	clockByName map[string]ClockID

	intVars      []IntVar
	intVarByName map[string]IntVarID

	locations      []Location
	locationByName map[string]LocationID

	edges []Edge

	syncVectors []SyncVector

	built bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		processByName:  make(map[string]ProcessID),
		eventByName:    make(map[string]EventID),
		labelByName:    make(map[string]LabelID),
		clockByName:    make(map[string]ClockID),
		intVarByName:   make(map[string]IntVarID),
		locationByName: make(map[string]LocationID),
	}
}

// AddProcess declares a new process and returns its id.
func (b *Builder) AddProcess(name string) (ProcessID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if _, ok := b.processByName[name]; ok {
		return 0, fmt.Errorf("tasystem.AddProcess(%q): %w", name, ErrDuplicateID)
	}
	id := ProcessID(len(b.processes))
	b.processes = append(b.processes, Process{ID: id, Name: name})
	b.processByName[name] = id

	return id, nil
}

// AddEvent declares a new event and returns its id.
func (b *Builder) AddEvent(name string) (EventID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if _, ok := b.eventByName[name]; ok {
		return 0, fmt.Errorf("tasystem.AddEvent(%q): %w", name, ErrDuplicateID)
	}
	id := EventID(len(b.events))
	b.events = append(b.events, Event{ID: id, Name: name})
	b.eventByName[name] = id

	return id, nil
}

// AddLabel declares a new label and returns its id.
func (b *Builder) AddLabel(name string) (LabelID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if _, ok := b.labelByName[name]; ok {
		return 0, fmt.Errorf("tasystem.AddLabel(%q): %w", name, ErrDuplicateID)
	}
	id := LabelID(len(b.labels))
	b.labels = append(b.labels, Label{ID: id, Name: name})
	b.labelByName[name] = id

	return id, nil
}

// AddClock declares a new clock with the given array size (1 for a
// scalar clock). Clock id 0 is reserved for the implicit zero clock: the
// first caller-declared clock receives id 1.
func (b *Builder) AddClock(name string, size int) (ClockID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if size < 1 {
		return 0, fmt.Errorf("tasystem.AddClock(%q,%d): %w", name, size, ErrBadArraySize)
	}
	if _, ok := b.clockByName[name]; ok {
		return 0, fmt.Errorf("tasystem.AddClock(%q): %w", name, ErrDuplicateID)
	}
	id := ClockID(len(b.clocks) + 1) // +1: id 0 is the reserved zero clock
	b.clocks = append(b.clocks, Clock{ID: id, Name: name, Size: size})
	b.clockByName[name] = id

	return id, nil
}

// AddIntVar declares a new bounded integer variable.
func (b *Builder) AddIntVar(name string, min, max, initial int) (IntVarID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if min > max || initial < min || initial > max {
		return 0, fmt.Errorf("tasystem.AddIntVar(%q,[%d,%d],%d): %w", name, min, max, initial, ErrBadDomain)
	}
	if _, ok := b.intVarByName[name]; ok {
		return 0, fmt.Errorf("tasystem.AddIntVar(%q): %w", name, ErrDuplicateID)
	}
	id := IntVarID(len(b.intVars))
	b.intVars = append(b.intVars, IntVar{ID: id, Name: name, Min: min, Max: max, Initial: initial})
	b.intVarByName[name] = id

	return id, nil
}

// AddLocation declares a new location attached to process, flagged
// initial/committed and tagged with the given labels.
func (b *Builder) AddLocation(process ProcessID, name string, initial, committed bool, labels ...LabelID) (LocationID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if int(process) < 0 || int(process) >= len(b.processes) {
		return 0, fmt.Errorf("tasystem.AddLocation(%q): %w", name, ErrUnknownProcess)
	}
	if _, ok := b.locationByName[name]; ok {
		return 0, fmt.Errorf("tasystem.AddLocation(%q): %w", name, ErrDuplicateLocationName)
	}
	for _, l := range labels {
		if int(l) < 0 || int(l) >= len(b.labels) {
			return 0, fmt.Errorf("tasystem.AddLocation(%q): %w", name, ErrUnknownLabel)
		}
	}
	id := LocationID(len(b.locations))
	labelsCopy := append([]LabelID(nil), labels...)
	b.locations = append(b.locations, Location{
		ID: id, Process: process, Name: name,
		Initial: initial, Committed: committed, Labels: labelsCopy,
	})
	b.locationByName[name] = id

	return id, nil
}

// AddEdge declares a new edge of process, from src to tgt (both must
// belong to process), tagged with event.
func (b *Builder) AddEdge(process ProcessID, src, tgt LocationID, event EventID) (EdgeID, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	if int(process) < 0 || int(process) >= len(b.processes) {
		return 0, fmt.Errorf("tasystem.AddEdge: %w", ErrUnknownProcess)
	}
	if int(event) < 0 || int(event) >= len(b.events) {
		return 0, fmt.Errorf("tasystem.AddEdge: %w", ErrUnknownEvent)
	}
	srcLoc, err := b.locationAt(src)
	if err != nil {
		return 0, err
	}
	tgtLoc, err := b.locationAt(tgt)
	if err != nil {
		return 0, err
	}
	if srcLoc.Process != process || tgtLoc.Process != process {
		return 0, fmt.Errorf("tasystem.AddEdge: %w", ErrCrossProcessEdge)
	}

	id := EdgeID(len(b.edges))
	b.edges = append(b.edges, Edge{ID: id, Process: process, Src: src, Tgt: tgt, Event: event})

	return id, nil
}

// SetEdgeGuard attaches clock and integer guards, plus resets and
// assignments, to a previously declared edge. Separated from AddEdge so
// callers can build the skeleton graph of locations/edges first and
// attach semantic payload afterward, the same two-phase shape tasystem's
// YAML loader uses.
func (b *Builder) SetEdgeGuard(e EdgeID, guard []refclock.Guard, intGuard []IntVarGuard, resets []refclock.Reset, assigns []IntVarAssignment) error {
	if err := b.guardMutable(); err != nil {
		return err
	}
	if int(e) < 0 || int(e) >= len(b.edges) {
		return fmt.Errorf("tasystem.SetEdgeGuard(%d): edge id out of range", e)
	}
	b.edges[e].Guard = guard
	b.edges[e].IntVarGuard = intGuard
	b.edges[e].Resets = resets
	b.edges[e].Assignments = assigns

	return nil
}

// SetLocationInvariant attaches a clock invariant to an already-declared
// location. Two-phase construction mirrors SetEdgeGuard: the location
// skeleton is declared by AddLocation, the invariant attached once the
// clock set is known.
func (b *Builder) SetLocationInvariant(loc LocationID, invariant []refclock.Guard) error {
	if err := b.guardMutable(); err != nil {
		return err
	}
	if int(loc) < 0 || int(loc) >= len(b.locations) {
		return fmt.Errorf("tasystem.SetLocationInvariant(%d): %w", loc, ErrUnknownLocation)
	}
	b.locations[loc].Invariant = invariant

	return nil
}

// AddSyncVector declares a new synchronization vector.
func (b *Builder) AddSyncVector(participants ...SyncParticipant) (int, error) {
	if err := b.guardMutable(); err != nil {
		return 0, err
	}
	for _, p := range participants {
		if int(p.Process) < 0 || int(p.Process) >= len(b.processes) {
			return 0, fmt.Errorf("tasystem.AddSyncVector: %w", ErrUnknownProcess)
		}
		if int(p.Event) < 0 || int(p.Event) >= len(b.events) {
			return 0, fmt.Errorf("tasystem.AddSyncVector: %w", ErrUnknownEvent)
		}
	}
	id := len(b.syncVectors)
	b.syncVectors = append(b.syncVectors, SyncVector{ID: id, Participants: append([]SyncParticipant(nil), participants...)})

	return id, nil
}

func (b *Builder) locationAt(id LocationID) (Location, error) {
	if int(id) < 0 || int(id) >= len(b.locations) {
		return Location{}, fmt.Errorf("tasystem: %w", ErrUnknownLocation)
	}

	return b.locations[id], nil
}

func (b *Builder) guardMutable() error {
	if b.built {
		return ErrAlreadyBuilt
	}

	return nil
}
