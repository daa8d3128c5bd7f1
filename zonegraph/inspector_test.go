package zonegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/zonegraph"
)

func TestIsInitial_TrueOnlyForInitialState(t *testing.T) {
	sys, _, lab := buildLightSystem(t)
	engine, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	initial, err := engine.Initial()
	require.NoError(t, err)
	require.True(t, zonegraph.IsInitial(sys, initial))
	require.False(t, zonegraph.IsFinal(sys, initial, labelBitset(sys, lab)))

	succs := engine.Outgoing(initial, zonegraph.OkOnly)
	require.Len(t, succs, 1)
	require.False(t, zonegraph.IsInitial(sys, succs[0].State))
	require.True(t, zonegraph.IsFinal(sys, succs[0].State, labelBitset(sys, lab)))
	require.Equal(t, labelBitset(sys, lab), zonegraph.Labels(sys, succs[0].State))
}
