// File: concretelift.go
// Role: Offset-variant concrete lift: reconstruct one concrete clock
// valuation at every node of an already symbolically lifted counter
// example, grounded on rational_dbm_t and concrete_predecessor's
// backward reconstruction over a single-valuation DBM scaled to keep
// exact rational arithmetic.

package path

import (
	"fmt"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

// growthFactor is the common multiplier a rational zone is scaled by
// whenever collapsing a clock to one boundary value would otherwise
// require splitting an open interval that has no representable integer
// strictly between its ends.
const growthFactor = 2

// Valuation is one concrete value per clock, indexed like a DBM row:
// Valuation[0] is always 0 (the reference clock); Valuation[i] is clock
// i's value for i >= 1.
type Valuation []float64

// rationalZone pairs a DBM with the integer factor every finite entry
// has already been multiplied by, so values collapsed to a single point
// stay exact rationals (value/factor) until Valuation extraction.
type rationalZone struct {
	m      *dbm.DBM
	factor int64
}

func newRationalZone(m *dbm.DBM) *rationalZone {
	return &rationalZone{m: m, factor: 1}
}

// scale multiplies every finite off-diagonal entry's value by by,
// growing factor to match. Fails with ErrNotSingleValuation once a
// scaled value would overflow bound.MaxValue, the bound the Open
// Questions in the original specification name as the termination risk
// of the scale-factor technique: a caller that hits this should fall
// back to reporting the symbolic counter example instead of a concrete
// one.
func (r *rationalZone) scale(by int64) error {
	n := r.m.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b, err := r.m.At(i, j)
			if err != nil {
				return err
			}
			if b.IsInfinite() {
				continue
			}
			scaled, err := bound.DB(b.Cmp, b.Value*by)
			if err != nil {
				return ErrNotSingleValuation
			}
			if err := r.m.SetDirect(i, j, scaled); err != nil {
				return err
			}
		}
	}
	r.factor *= by

	return nil
}

// collapseToSinglePoint narrows every clock's interval to one boundary
// value, scaling up whenever a clock's interval is open on both ends
// with no integer strictly inside. Mutates r.m in place.
func (r *rationalZone) collapseToSinglePoint() error {
	n := r.m.Dim()
	for {
		scaled := false
		for c := 1; c < n && !scaled; c++ {
			lower, err := r.m.At(0, c) // encodes -c_c <= lower.Value (or <)
			if err != nil {
				return err
			}
			upper, err := r.m.At(c, 0) // encodes c_c <= upper.Value (or <)
			if err != nil {
				return err
			}

			switch {
			case !lower.IsInfinite() && lower.Cmp == bound.LE:
				pinned, _ := bound.DB(bound.LE, -lower.Value)
				if err := r.m.SetDirect(c, 0, pinned); err != nil {
					return err
				}
			case !upper.IsInfinite() && upper.Cmp == bound.LE:
				pinned, _ := bound.DB(bound.LE, -upper.Value)
				if err := r.m.SetDirect(0, c, pinned); err != nil {
					return err
				}
			case upper.IsInfinite() || upper.Value > -lower.Value+1:
				newLower := lower.Value - 1
				loPinned, _ := bound.DB(bound.LE, newLower)
				hiPinned, _ := bound.DB(bound.LE, -newLower)
				if err := r.m.SetDirect(0, c, loPinned); err != nil {
					return err
				}
				if err := r.m.SetDirect(c, 0, hiPinned); err != nil {
					return err
				}
			default:
				if err := r.scale(growthFactor); err != nil {
					return err
				}
				scaled = true
				continue
			}

			if dbm.Tighten(r.m) == dbm.Empty {
				return fmt.Errorf("path: zone collapsed to empty while pinning clock %d", c)
			}
		}
		if !scaled {
			break
		}
	}

	return nil
}

// isSinglePoint reports whether every clock's row/column pair already
// pins it to one exact value.
func (r *rationalZone) isSinglePoint() bool {
	n := r.m.Dim()
	for c := 1; c < n; c++ {
		up, err := r.m.At(c, 0)
		if err != nil {
			return false
		}
		down, err := r.m.At(0, c)
		if err != nil {
			return false
		}
		if up.IsInfinite() || down.IsInfinite() || up.Cmp != bound.LE || down.Cmp != bound.LE {
			return false
		}
		if up.Value != -down.Value {
			return false
		}
	}

	return true
}

// valuation reads off one concrete value per clock; isSinglePoint must
// hold.
func (r *rationalZone) valuation() Valuation {
	n := r.m.Dim()
	v := make(Valuation, n)
	for c := 1; c < n; c++ {
		up, _ := r.m.At(c, 0)
		v[c] = float64(up.Value) / float64(r.factor)
	}

	return v
}

// unreset opens clock x's row and column to +inf on every entry but the
// diagonal, forgetting every constraint the forward reset at this edge
// had imposed on it, so the backward reconstruction may assign it
// freely before re-applying the guard and source invariant.
func unreset(m *dbm.DBM, x int) error {
	n := m.Dim()
	for k := 0; k < n; k++ {
		if k == x {
			continue
		}
		if err := m.SetDirect(x, k, bound.LTInfinity); err != nil {
			return err
		}
		if err := m.SetDirect(k, x, bound.LTInfinity); err != nil {
			return err
		}
	}

	return nil
}

// firingEdges resolves t's vector of fired edge ids into the concrete
// tasystem edges that fired, in ascending process order (mirrors
// zonegraph.Engine's private helper of the same purpose, duplicated
// here since path has no Engine to call it on for a cloned, scaled
// zone).
func firingEdges(sys *tasystem.System, t syncprod.Transition) []tasystem.Edge {
	var out []tasystem.Edge
	for _, eid := range t.Vedge {
		if eid == syncprod.NoEdge {
			continue
		}
		out = append(out, sys.Edge(eid))
	}

	return out
}

// stepBackward applies, to r, the inverse of one forward Step: restrict
// to the target invariant (delaying first when the target vloc allows
// it), unreset every clock the firing edges reset, intersect with their
// guards and the source invariant, and finally intersect with the
// predecessor zone computed forward along the path (scaled up, opened
// up, and restricted to the source invariant), so the chosen valuation
// stays inside the zone the forward exploration actually reached.
func stepBackward(sys *tasystem.System, r *rationalZone, t syncprod.Transition, tgtVloc, srcVloc syncprod.Vloc, tgtDelayAllowed bool, predecessor *dbm.DBM) error {
	firing := firingEdges(sys, t)

	if err := constrainInvariant(r.m, r.factor, sys, tgtVloc); err != nil {
		return err
	}
	if tgtDelayAllowed {
		openDown(r.m)
	}

	for _, fe := range firing {
		for _, rs := range fe.Resets {
			if err := unreset(r.m, rs.X); err != nil {
				return err
			}
		}
	}
	if dbm.Tighten(r.m) == dbm.Empty {
		return fmt.Errorf("path: zone emptied while unresetting: %w", ErrNoPath)
	}

	for _, fe := range firing {
		for _, g := range fe.Guard {
			st, err := dbm.Constrain(r.m, g.X, g.Y, g.Cmp, scale(g.V, r.factor))
			if err != nil {
				return err
			}
			if st == dbm.Empty {
				return fmt.Errorf("path: guard unsatisfiable during backward reconstruction: %w", ErrNoPath)
			}
		}
	}
	if err := constrainInvariant(r.m, r.factor, sys, srcVloc); err != nil {
		return err
	}

	if predecessor != nil {
		scaledPred := predecessor.Clone()
		if err := scaleDBMInPlace(scaledPred, r.factor); err != nil {
			return err
		}
		dbm.OpenUp(scaledPred)
		if err := constrainInvariant(scaledPred, r.factor, sys, srcVloc); err != nil {
			return err
		}
		merged, st, err := dbm.Intersection(r.m, scaledPred)
		if err != nil {
			return err
		}
		if st == dbm.Empty {
			return fmt.Errorf("path: predecessor zone disagrees with reconstruction: %w", ErrNoPath)
		}
		r.m = merged
	}

	return r.collapseToSinglePoint()
}

// openDown is the dual of dbm.OpenUp: every lower bound from clock 0 to
// a clock is cleared, letting every clock have elapsed arbitrarily far
// backward from its current value.
func openDown(m *dbm.DBM) {
	n := m.Dim()
	for i := 1; i < n; i++ {
		_ = m.SetDirect(0, i, bound.LTInfinity)
	}
}

func constrainInvariant(m *dbm.DBM, factor int64, sys *tasystem.System, vloc syncprod.Vloc) error {
	for _, loc := range vloc {
		for _, g := range sys.Location(loc).Invariant {
			st, err := dbm.Constrain(m, g.X, g.Y, g.Cmp, scale(g.V, factor))
			if err != nil {
				return err
			}
			if st == dbm.Empty {
				return fmt.Errorf("path: invariant unsatisfiable during backward reconstruction: %w", ErrNoPath)
			}
		}
	}

	return nil
}

func scaleDBMInPlace(m *dbm.DBM, factor int64) error {
	n := m.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b, err := m.At(i, j)
			if err != nil {
				return err
			}
			if b.IsInfinite() {
				continue
			}
			scaled, err := bound.DB(b.Cmp, b.Value*factor)
			if err != nil {
				return ErrNotSingleValuation
			}
			if err := m.SetDirect(i, j, scaled); err != nil {
				return err
			}
		}
	}

	return nil
}

func scale(v int64, factor int64) int64 { return v * factor }

// ConcreteLift reconstructs one concrete clock valuation at every
// position of a symbolic counter example, walking backward from the
// final zone to the first. states must be the result of SymbolicLift
// over the same seq (len(states) == len(seq.Edges)+1); delayAllowed
// reports, for a given location vector, whether time may elapse there
// (false for a vloc with any committed location), matching the same
// rule zonegraph.Engine applies forward.
func ConcreteLift(sys *tasystem.System, seq Sequence, states []zonegraph.State, delayAllowed func(syncprod.Vloc) bool) ([]Valuation, error) {
	n := len(states)
	if n == 0 || n != len(seq.Edges)+1 {
		return nil, fmt.Errorf("path.ConcreteLift: states length %d inconsistent with %d edges", n, len(seq.Edges))
	}

	last := states[n-1].Zone.Clone()
	r := newRationalZone(last)
	if err := r.collapseToSinglePoint(); err != nil {
		return nil, fmt.Errorf("path.ConcreteLift: pinning final zone: %w", err)
	}
	if !r.isSinglePoint() {
		return nil, ErrNotSingleValuation
	}

	valuations := make([]Valuation, n)
	valuations[n-1] = r.valuation()

	for i := n - 1; i > 0; i-- {
		t := seq.Edges[i-1].Transition
		if t == nil {
			return nil, fmt.Errorf("path.ConcreteLift: edge %d is a subsumption edge: %w", i-1, ErrNoPath)
		}
		srcVloc := states[i-1].Vloc
		tgtVloc := states[i].Vloc
		predecessor := states[i-1].Zone

		if err := stepBackward(sys, r, *t, tgtVloc, srcVloc, delayAllowed(tgtVloc), predecessor); err != nil {
			return nil, fmt.Errorf("path.ConcreteLift: reconstructing position %d: %w", i-1, err)
		}
		if !r.isSinglePoint() {
			return nil, ErrNotSingleValuation
		}
		valuations[i-1] = r.valuation()
	}

	return valuations, nil
}
