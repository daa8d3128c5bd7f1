package covreach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/covgraph"
	"github.com/tchecker-go/tachecker/covreach"
	"github.com/tchecker-go/tachecker/tasystem"
	"github.com/tchecker-go/tachecker/zonegraph"
)

func targetBitset(sys *tasystem.System, lab tasystem.LabelID) tasystem.BitSet {
	bs := tasystem.NewBitSet(sys.NumLabels())
	bs.Set(int(lab))

	return bs
}

func TestRun_FindsAcceptingLabel(t *testing.T) {
	sys, lab := buildLightSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	graph, stats, err := covreach.Run(engine, covreach.RunOptions{Target: targetBitset(sys, lab)})
	require.NoError(t, err)
	require.True(t, stats.Reachable)
	require.GreaterOrEqual(t, stats.Visited, 1)
	require.NotNil(t, graph)
}

func TestRun_EmptyTargetExhaustsStateSpace(t *testing.T) {
	sys, _ := buildLightSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	_, stats, err := covreach.Run(engine, covreach.RunOptions{Target: tasystem.NewBitSet(sys.NumLabels())})
	require.NoError(t, err)
	require.False(t, stats.Reachable)
	require.Equal(t, 2, stats.Visited, "idle and busy, no further successors")
}

func TestRun_DfsSearchOrder(t *testing.T) {
	sys, lab := buildLightSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	_, stats, err := covreach.Run(engine, covreach.RunOptions{
		Target:      targetBitset(sys, lab),
		SearchOrder: covreach.Dfs,
	})
	require.NoError(t, err)
	require.True(t, stats.Reachable)
}

func TestRun_CoveringFullTerminatesSelfLoop(t *testing.T) {
	sys := buildLoopSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraM)
	require.NoError(t, err)

	graph, stats, err := covreach.Run(engine, covreach.RunOptions{
		Target: tasystem.NewBitSet(sys.NumLabels()),
		Policy: covgraph.CoveringFull,
	})
	require.NoError(t, err)
	require.False(t, stats.Reachable)
	require.Less(t, stats.Visited, 50, "aM extrapolation + covering must bound the self-loop's exploration")
	require.NotNil(t, graph)
}

func TestRun_UnknownSearchOrderErrors(t *testing.T) {
	sys, lab := buildLightSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	_, _, err = covreach.Run(engine, covreach.RunOptions{
		Target:      targetBitset(sys, lab),
		SearchOrder: covreach.SearchOrder(99),
	})
	require.ErrorIs(t, err, covreach.ErrUnknownSearchOrder)
}

func TestRun_BlockAndTableSizeRouteThroughPooledGraph(t *testing.T) {
	sys, lab := buildLightSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	graph, stats, err := covreach.Run(engine, covreach.RunOptions{
		Target:    targetBitset(sys, lab),
		BlockSize: 4,
		TableSize: 8,
	})
	require.NoError(t, err)
	require.True(t, stats.Reachable)
	require.NotNil(t, graph)
}
