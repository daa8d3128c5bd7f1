package tachecker_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker"
	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/covreach"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

// buildRelay is a 2-process, 1-clock-per-process system: each process
// idles then moves to busy on its own "go" event (guard x<=5, reset x);
// only P1's busy location carries label "done", so reachability
// requires P1's edge to fire.
func buildRelay(t *testing.T) *tasystem.System {
	t.Helper()
	b := tasystem.NewBuilder()
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
			lab, err := b.AddLabel("done")
			require.NoError(t, err)
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

	return sys
}

func TestRun_ReportsReachableWithDefaults(t *testing.T) {
	sys := buildRelay(t)

	result, graph, err := tachecker.Run(sys, tachecker.WithLabels("done"))
	require.NoError(t, err)
	require.True(t, result.Reachable)
	require.NotNil(t, graph)
	require.GreaterOrEqual(t, result.Visited, 1)
}

func TestRun_UnknownLabelIsError(t *testing.T) {
	sys := buildRelay(t)

	_, _, err := tachecker.Run(sys, tachecker.WithLabels("nope"))
	require.ErrorIs(t, err, tachecker.ErrUnknownLabel)
}

func TestRun_EmptyLabelsExhaustsStateSpace(t *testing.T) {
	sys := buildRelay(t)

	result, _, err := tachecker.Run(sys)
	require.NoError(t, err)
	require.False(t, result.Reachable)
}

func TestRun_DfsSearchOrderAndLoggerOption(t *testing.T) {
	sys := buildRelay(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	result, _, err := tachecker.Run(sys,
		tachecker.WithLabels("done"),
		tachecker.WithSearchOrder(covreach.Dfs),
		tachecker.WithLogger(logger),
		tachecker.WithBlockSize(8),
		tachecker.WithTableSize(8),
	)
	require.NoError(t, err)
	require.True(t, result.Reachable)
	require.Contains(t, buf.String(), "run starting")
	require.Contains(t, buf.String(), "run finished")
}
