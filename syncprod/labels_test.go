package syncprod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/tasystem"
)

func TestLabels_UnionAndFinal(t *testing.T) {
	sys := buildSyncSystem(t)
	vloc := syncprod.Initial(sys)

	require.Equal(t, 0, syncprod.Labels(sys, vloc).PopCount(), "initial state carries no labels")

	out := syncprod.Outgoing(sys, vloc)
	var fired syncprod.Transition
	for _, tr := range out {
		if tr.SyncID != syncprod.NoSync {
			fired = tr
		}
	}
	next, err := syncprod.Apply(sys, vloc, fired)
	require.NoError(t, err)

	target := tasystem.NewBitSet(sys.NumLabels())
	target.Set(0)

	require.True(t, syncprod.IsFinal(sys, next, target), "both processes land in their 'done'-labeled location")
	require.False(t, syncprod.IsFinal(sys, vloc, target))
}
