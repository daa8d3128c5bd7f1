package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/covreach"
	"github.com/tchecker-go/tachecker/output"
	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

func buildTinySystem(t *testing.T) (*tasystem.System, tasystem.LabelID) {
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

func TestNewResult_AdaptsStats(t *testing.T) {
	stats := covreach.Stats{Reachable: true, Visited: 3, CoveredCount: 1, ActualEdges: 2, SubsumptionEdges: 1}
	r := output.NewResult(stats)
	require.True(t, r.Reachable)
	require.Equal(t, 3, r.Visited)
	require.Contains(t, r.String(), "reachable=true")
}

func TestWriteDOT_RendersNodesAndEdgesDeterministically(t *testing.T) {
	sys, lab := buildTinySystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	target := tasystem.NewBitSet(sys.NumLabels())
	target.Set(int(lab))
	graph, _, err := covreach.Run(engine, covreach.RunOptions{Target: target})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, output.WriteDOT(&buf, sys, graph, target))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph tachecker {"))
	require.Contains(t, out, "n0")
	require.Contains(t, out, "n1")
	require.Contains(t, out, `label="go"`)
	require.Contains(t, out, "initial")
	require.Contains(t, out, "final")

	var buf2 strings.Builder
	require.NoError(t, output.WriteDOT(&buf2, sys, graph, target))
	require.Equal(t, out, buf2.String(), "dump must be deterministic across calls")
}
