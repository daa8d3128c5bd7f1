package syncprod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/syncprod"
)

func TestIncoming_MatchesForwardFiring(t *testing.T) {
	sys := buildSyncSystem(t)
	vloc := syncprod.Initial(sys)

	out := syncprod.Outgoing(sys, vloc)
	var fired syncprod.Transition
	for _, tr := range out {
		if tr.SyncID != syncprod.NoSync {
			fired = tr
		}
	}
	next, err := syncprod.Apply(sys, vloc, fired)
	require.NoError(t, err)

	in := syncprod.Incoming(sys, next)
	var found bool
	for _, tr := range in {
		if tr.SyncID == fired.SyncID {
			found = true
		}
	}
	require.True(t, found, "the sync vector that produced next must appear in its incoming set")
}

func TestIncoming_CommittedSourceAllowsTuple(t *testing.T) {
	sys := buildCommittedSystem(t)
	vloc := syncprod.Initial(sys)

	out := syncprod.Outgoing(sys, vloc)
	require.Len(t, out, 1)
	next, err := syncprod.Apply(sys, vloc, out[0])
	require.NoError(t, err)

	in := syncprod.Incoming(sys, next)
	require.NotEmpty(t, in, "the edge out of the committed source must be reachable via Incoming")
}
