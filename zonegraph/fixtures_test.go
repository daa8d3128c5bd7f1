package zonegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

// labelBitset builds a BitSet with only lab set, for IsFinal checks.
func labelBitset(sys *tasystem.System, lab tasystem.LabelID) tasystem.BitSet {
	bs := tasystem.NewBitSet(sys.NumLabels())
	bs.Set(int(lab))

	return bs
}

// constrainPastGuard tightens zone so clock clk must be >= 6, defeating
// an edge guard of x<=5.
func constrainPastGuard(zone *dbm.DBM, clk tasystem.ClockID) error {
	_, err := dbm.Constrain(zone, 0, int(clk), bound.LE, -6)

	return err
}

// buildLightSystem is a 1-process, 1-clock system: idle --(go, x<=5,
// reset x)--> busy, busy carrying invariant x<=10 and label "done".
func buildLightSystem(t *testing.T) (*tasystem.System, tasystem.ClockID, tasystem.LabelID) {
	t.Helper()
	b := tasystem.NewBuilder()

	p, err := b.AddProcess("P")
	require.NoError(t, err)
	ev, err := b.AddEvent("go")
	require.NoError(t, err)
	lab, err := b.AddLabel("done")
	require.NoError(t, err)
	clk, err := b.AddClock("x", 1)
	require.NoError(t, err)

	idle, err := b.AddLocation(p, "idle", true, false)
	require.NoError(t, err)
	busy, err := b.AddLocation(p, "busy", false, false, lab)
	require.NoError(t, err)
	require.NoError(t, b.SetLocationInvariant(busy, []refclock.Guard{{X: int(clk), Y: 0, Cmp: bound.LE, V: 10}}))

	e, err := b.AddEdge(p, idle, busy, ev)
	require.NoError(t, err)
	require.NoError(t, b.SetEdgeGuard(e,
		[]refclock.Guard{{X: int(clk), Y: 0, Cmp: bound.LE, V: 5}},
		nil,
		[]refclock.Reset{{X: int(clk), Y: 0, V: 0}},
		nil))

	sys, err := b.Build()
	require.NoError(t, err)

	return sys, clk, lab
}

// buildIntVarSystem adds an integer-variable guard (n >= 1) to a single
// edge, with no clocks beyond the implicit zero clock.
func buildIntVarSystem(t *testing.T) (*tasystem.System, tasystem.IntVarID) {
	t.Helper()
	b := tasystem.NewBuilder()

	p, err := b.AddProcess("P")
	require.NoError(t, err)
	ev, err := b.AddEvent("go")
	require.NoError(t, err)
	n, err := b.AddIntVar("n", 0, 10, 0)
	require.NoError(t, err)

	idle, err := b.AddLocation(p, "idle", true, false)
	require.NoError(t, err)
	busy, err := b.AddLocation(p, "busy", false, false)
	require.NoError(t, err)

	e, err := b.AddEdge(p, idle, busy, ev)
	require.NoError(t, err)
	require.NoError(t, b.SetEdgeGuard(e,
		nil,
		[]tasystem.IntVarGuard{{Var: n, Cmp: tasystem.IntGE, V: 1}},
		nil,
		[]tasystem.IntVarAssignment{{Var: n, Delta: 1}}))

	sys, err := b.Build()
	require.NoError(t, err)

	return sys, n
}
