package path_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

// buildRelaySystem is a 2-process, 1-clock-per-process system: each
// process has idle --(go, x<=5, reset x)--> busy, busy carrying
// invariant x<=10; the second process's busy location alone carries
// label "done", so a counter example must fire P1's edge.
func buildRelaySystem(t *testing.T) (*tasystem.System, tasystem.LabelID) {
	t.Helper()
	b := tasystem.NewBuilder()

	lab, err := b.AddLabel("done")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		name := fmt.Sprintf("P%d", i)
		p, err := b.AddProcess(name)
		require.NoError(t, err)
		ev, err := b.AddEvent(name + ".go")
		require.NoError(t, err)
		clk, err := b.AddClock(name+".x", 1)
		require.NoError(t, err)

		idle, err := b.AddLocation(p, name+".idle", true, false)
		require.NoError(t, err)
		var labels []tasystem.LabelID
		if i == 1 {
			labels = []tasystem.LabelID{lab}
		}
		busy, err := b.AddLocation(p, name+".busy", false, false, labels...)
		require.NoError(t, err)
		require.NoError(t, b.SetLocationInvariant(busy, []refclock.Guard{{X: int(clk), Y: 0, Cmp: bound.LE, V: 10}}))

		e, err := b.AddEdge(p, idle, busy, ev)
		require.NoError(t, err)
		require.NoError(t, b.SetEdgeGuard(e,
			[]refclock.Guard{{X: int(clk), Y: 0, Cmp: bound.LE, V: 5}},
			nil,
			[]refclock.Reset{{X: int(clk), Y: 0, V: 0}},
			nil))
	}

	sys, err := b.Build()
	require.NoError(t, err)

	return sys, lab
}

// buildLoopSystem is a 1-process, 1-clock system with a self-loop on
// "idle" (no label), so forward exploration never halts on acceptance
// and every firing of the loop reproduces the same zone, exercising
// covering and cycle-breaking.
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
