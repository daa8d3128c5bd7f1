// File: types.go
// Role: Status encoding, semantics selection, and the (vloc, intvars,
// zone) state record.

package zonegraph

import (
	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
)

// Status is the outcome of one Step call.
type Status uint16

const (
	// StateOK indicates a fully valid successor state.
	StateOK Status = 1 << iota
	// IntVarsGuardViolated indicates an integer-variable guard rejected
	// the proposed transition.
	IntVarsGuardViolated
	// ClocksSrcInvariantViolated indicates the source zone, intersected
	// with the source location's invariant, is empty.
	ClocksSrcInvariantViolated
	// ClocksGuardViolated indicates the zone, intersected with the
	// transition's clock guard, is empty.
	ClocksGuardViolated
	// ClocksTgtInvariantViolated indicates the zone, intersected with the
	// target location's invariant, is empty.
	ClocksTgtInvariantViolated
	// IncompatibleEdge indicates the transition's recorded source
	// locations do not match vloc (syncprod.ErrIncompatibleEdge).
	IncompatibleEdge
)

// String renders a Status for diagnostics.
func (s Status) String() string {
	switch s {
	case StateOK:
		return "STATE_OK"
	case IntVarsGuardViolated:
		return "INTVARS_GUARD_VIOLATED"
	case ClocksSrcInvariantViolated:
		return "CLOCKS_SRC_INVARIANT_VIOLATED"
	case ClocksGuardViolated:
		return "CLOCKS_GUARD_VIOLATED"
	case ClocksTgtInvariantViolated:
		return "CLOCKS_TGT_INVARIANT_VIOLATED"
	case IncompatibleEdge:
		return "INCOMPATIBLE_EDGE"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Mask is a set of acceptable statuses; Step's caller-facing wrapper
// (Outgoing) only surfaces successors whose Status intersects Mask.
type Mask uint16

// Intersects reports whether s is one of the statuses allowed by m.
func (m Mask) Intersects(s Status) bool { return Mask(s)&m != 0 }

// OkOnly accepts only StateOK, the common case for forward exploration.
var OkOnly = Mask(StateOK)

// AllStatuses accepts every status, useful for diagnostics that want to
// see every rejected step.
var AllStatuses = Mask(StateOK | IntVarsGuardViolated | ClocksSrcInvariantViolated |
	ClocksGuardViolated | ClocksTgtInvariantViolated | IncompatibleEdge)

// Semantics selects when time elapse is applied within Step.
type Semantics uint8

const (
	// Elapsed applies time elapse on the source zone, before the guard.
	Elapsed Semantics = iota
	// NonElapsed defers time elapse to after resets and the target
	// invariant, re-checking the target invariant afterward.
	NonElapsed
)

// IntVarState holds the current value of every declared integer
// variable, indexed by tasystem.IntVarID.
type IntVarState []int

// Clone returns an independent copy of v.
func (v IntVarState) Clone() IntVarState {
	out := make(IntVarState, len(v))
	copy(out, v)

	return out
}

// State is one explored point of the zone graph: a discrete vector of
// locations, a vector of integer-variable values, and a symbolic zone
// over the system's clocks.
type State struct {
	Vloc    syncprod.Vloc
	IntVars IntVarState
	Zone    *dbm.DBM
}

// Clone returns a State sharing no mutable storage with the receiver.
func (s State) Clone() State {
	return State{Vloc: s.Vloc.Clone(), IntVars: s.IntVars.Clone(), Zone: s.Zone.Clone()}
}

// Successor pairs one outgoing transition with the Step result it
// produced.
type Successor struct {
	Status     Status
	State      State
	Transition syncprod.Transition
}

// initialIntVars returns the declared initial value of every integer
// variable, in declaration (id) order.
func initialIntVars(sys *tasystem.System) IntVarState {
	vars := sys.IntVars()
	out := make(IntVarState, len(vars))
	for _, v := range vars {
		out[v.ID] = v.Initial
	}

	return out
}
