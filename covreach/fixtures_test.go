package covreach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

// buildLightSystem is a 1-process, 1-clock system: idle --(go, x<=5,
// reset x)--> busy, busy carrying invariant x<=10 and label "done".
func buildLightSystem(t *testing.T) (*tasystem.System, tasystem.LabelID) {
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

	return sys, lab
}

// buildLoopSystem is a 1-process, 1-clock system with a self-loop on
// "idle" (no label), so forward exploration never halts on acceptance
// and keeps producing successors with ever-looser (then extrapolated)
// zones, exercising covering.
func buildLoopSystem(t *testing.T) *tasystem.System {
	t.Helper()
	b := tasystem.NewBuilder()

	p, err := b.AddProcess("P")
	require.NoError(t, err)
	ev, err := b.AddEvent("tick")
	require.NoError(t, err)
	clk, err := b.AddClock("x", 1)
	require.NoError(t, err)

	idle, err := b.AddLocation(p, "idle", true, false)
	require.NoError(t, err)

	e, err := b.AddEdge(p, idle, idle, ev)
	require.NoError(t, err)
	require.NoError(t, b.SetEdgeGuard(e,
		[]refclock.Guard{{X: int(clk), Y: 0, Cmp: bound.LE, V: 5}},
		nil,
		[]refclock.Reset{{X: int(clk), Y: 0, V: 0}},
		nil))

	sys, err := b.Build()
	require.NoError(t, err)

	return sys
}
