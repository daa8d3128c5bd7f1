// File: engine.go
// Role: Engine construction and the per-transition zone-graph Step
//.

package zonegraph

import (
	"fmt"

	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
)

// Extrapolation selects the zone-abstraction operator Step applies at
// the end of a successful step.
type Extrapolation uint8

const (
	// ExtraNone performs no extrapolation.
	ExtraNone Extrapolation = iota
	// ExtraM applies the single-vector aM abstraction.
	ExtraM
	// ExtraMPlus applies aM with the cross-clock "+" refinement.
	ExtraMPlus
	// ExtraLU applies the two-vector aLU abstraction.
	ExtraLU
	// ExtraLUPlus applies aLU with the "+" refinement.
	ExtraLUPlus
)

// Engine evaluates transitions of one tasystem.System against a
// configured clock semantics and extrapolation.
type Engine struct {
	sys           *tasystem.System
	semantics     Semantics
	extrapolation Extrapolation
	lowerBounds   []int64
	upperBounds   []int64
}

// NewEngine builds an Engine for sys. Clock bounds for extrapolation are
// computed once, from the static guards and invariants declared on sys,
// via ComputeClockBounds.
func NewEngine(sys *tasystem.System, semantics Semantics, extrapolation Extrapolation) (*Engine, error) {
	switch extrapolation {
	case ExtraNone, ExtraM, ExtraMPlus, ExtraLU, ExtraLUPlus:
	default:
		return nil, ErrUnknownExtrapolation
	}
	lower, upper := ComputeClockBounds(sys)

	return &Engine{sys: sys, semantics: semantics, extrapolation: extrapolation, lowerBounds: lower, upperBounds: upper}, nil
}

// System returns the engine's underlying system.
func (e *Engine) System() *tasystem.System { return e.sys }

// Initial returns the zone graph's unique initial state: the syncprod
// initial vloc, every integer variable at its declared initial value,
// and the clock zone restricted to the conjunction of every process's
// initial location's invariant (UniversalPositive if none declare one).
func (e *Engine) Initial() (State, error) {
	vloc := syncprod.Initial(e.sys)
	zone, err := dbm.UniversalPositive(e.sys.ClockDim())
	if err != nil {
		return State{}, err
	}
	if status, err := e.intersectInvariants(zone, vloc); err != nil {
		return State{}, err
	} else if status == dbm.Empty {
		return State{}, fmt.Errorf("zonegraph.Initial: %w", ErrInitiallyEmpty)
	}

	return State{Vloc: vloc, IntVars: initialIntVars(e.sys), Zone: zone}, nil
}

// firingEdges returns, in ascending process order, the edges that fire
// in t.
func (e *Engine) firingEdges(t syncprod.Transition) []tasystem.Edge {
	var out []tasystem.Edge
	for _, eid := range t.Vedge {
		if eid == syncprod.NoEdge {
			continue
		}
		out = append(out, e.sys.Edge(eid))
	}

	return out
}

func (e *Engine) intersectInvariants(zone *dbm.DBM, vloc syncprod.Vloc) (dbm.Status, error) {
	for _, loc := range vloc {
		for _, g := range e.sys.Location(loc).Invariant {
			st, err := dbm.Constrain(zone, g.X, g.Y, g.Cmp, g.V)
			if err != nil {
				return dbm.NonEmpty, err
			}
			if st == dbm.Empty {
				return dbm.Empty, nil
			}
		}
	}

	return dbm.NonEmpty, nil
}

// canElapse reports whether time may pass while the system sits in vloc:
// false if any process occupies a committed location, matching the
// usual "committed locations are urgent" timed-automaton convention.
func (e *Engine) canElapse(vloc syncprod.Vloc) bool {
	for _, loc := range vloc {
		if e.sys.IsCommitted(loc) {
			return false
		}
	}

	return true
}

func (e *Engine) extrapolate(zone *dbm.DBM) error {
	switch e.extrapolation {
	case ExtraNone:
		return nil
	case ExtraM:
		return dbm.ExtraM(zone, e.upperBounds)
	case ExtraMPlus:
		return dbm.ExtraMPlus(zone, e.upperBounds)
	case ExtraLU:
		return dbm.ExtraLU(zone, e.lowerBounds, e.upperBounds)
	case ExtraLUPlus:
		return dbm.ExtraLUPlus(zone, e.lowerBounds, e.upperBounds)
	default:
		return ErrUnknownExtrapolation
	}
}

// Step evaluates transition t from state src, following the
// ten-step algorithm. A non-StateOK Status is not an error: it means the
// transition is infeasible from src, and the returned State is the zero
// value.
func (e *Engine) Step(src State, t syncprod.Transition) (Status, State, error) {
	tgtVloc, err := syncprod.Apply(e.sys, src.Vloc, t)
	if err != nil {
		return IncompatibleEdge, State{}, nil
	}

	firing := e.firingEdges(t)

	// Step 3: propose the integer-variable update.
	newIntVars := src.IntVars.Clone()
	for _, fe := range firing {
		for _, g := range fe.IntVarGuard {
			if !evalIntVarGuard(src.IntVars, g) {
				return IntVarsGuardViolated, State{}, nil
			}
		}
	}
	for _, fe := range firing {
		for _, a := range fe.Assignments {
			applyIntVarAssignment(newIntVars, a)
		}
	}

	// Step 4: intersect source zone with source invariant.
	zone := src.Zone.Clone()
	if st, err := e.intersectInvariants(zone, src.Vloc); err != nil {
		return 0, State{}, err
	} else if st == dbm.Empty {
		return ClocksSrcInvariantViolated, State{}, nil
	}

	elapse := e.canElapse(src.Vloc)

	// Step 5: time elapse on the source, for "elapsed" semantics.
	if e.semantics == Elapsed && elapse {
		dbm.OpenUp(zone)
	}

	// Step 6: intersect with guard.
	for _, fe := range firing {
		for _, g := range fe.Guard {
			st, err := dbm.Constrain(zone, g.X, g.Y, g.Cmp, g.V)
			if err != nil {
				return 0, State{}, err
			}
			if st == dbm.Empty {
				return ClocksGuardViolated, State{}, nil
			}
		}
	}

	// Step 7: apply resets sequentially.
	for _, fe := range firing {
		for _, r := range fe.Resets {
			if err := dbm.Reset(zone, r.X, r.Y, r.V); err != nil {
				return 0, State{}, err
			}
		}
	}

	// Step 8: intersect with target invariant.
	if st, err := e.intersectInvariants(zone, tgtVloc); err != nil {
		return 0, State{}, err
	} else if st == dbm.Empty {
		return ClocksTgtInvariantViolated, State{}, nil
	}

	// Step 9: for "non-elapsed" semantics, elapse after resets and
	// re-check the target invariant.
	if e.semantics == NonElapsed && e.canElapse(tgtVloc) {
		dbm.OpenUp(zone)
		if st, err := e.intersectInvariants(zone, tgtVloc); err != nil {
			return 0, State{}, err
		} else if st == dbm.Empty {
			return ClocksTgtInvariantViolated, State{}, nil
		}
	}

	// Step 10: extrapolate w.r.t. the configured abstraction.
	if err := e.extrapolate(zone); err != nil {
		return 0, State{}, err
	}

	return StateOK, State{Vloc: tgtVloc, IntVars: newIntVars, Zone: zone}, nil
}

// SyncZone projects od (an offset DBM already synchronized to this
// engine's system) onto the standard clock axes via refclock's to_dbm,
// then extrapolates the result with this engine's configured
// abstraction — the "offset variant" of the final extrapolation step
// applied during a normal Step.
func (e *Engine) SyncZone(od *refclock.OffsetDBM) (*dbm.DBM, error) {
	zone, err := od.ToDBM()
	if err != nil {
		return nil, fmt.Errorf("zonegraph.SyncZone: %w", err)
	}
	if err := e.extrapolate(zone); err != nil {
		return nil, err
	}

	return zone, nil
}
