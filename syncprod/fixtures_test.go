package syncprod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/tasystem"
)

// buildSyncSystem builds a 2-process system with a STRONG-STRONG
// synchronized event "sync" and an asynchronous event "tick" local to P0.
func buildSyncSystem(t *testing.T) *tasystem.System {
	t.Helper()
	b := tasystem.NewBuilder()

	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)

	sync, err := b.AddEvent("sync")
	require.NoError(t, err)
	tick, err := b.AddEvent("tick")
	require.NoError(t, err)

	lab, err := b.AddLabel("done")
	require.NoError(t, err)

	i0, err := b.AddLocation(p0, "P0.idle", true, false)
	require.NoError(t, err)
	b0, err := b.AddLocation(p0, "P0.busy", false, false, lab)
	require.NoError(t, err)
	i1, err := b.AddLocation(p1, "P1.idle", true, false)
	require.NoError(t, err)
	b1, err := b.AddLocation(p1, "P1.busy", false, false, lab)
	require.NoError(t, err)

	_, err = b.AddEdge(p0, i0, b0, sync)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, i1, b1, sync)
	require.NoError(t, err)
	_, err = b.AddEdge(p0, i0, i0, tick)
	require.NoError(t, err)

	_, err = b.AddSyncVector(
		tasystem.SyncParticipant{Process: p0, Event: sync, Strength: tasystem.Strong},
		tasystem.SyncParticipant{Process: p1, Event: sync, Strength: tasystem.Strong},
	)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)

	return sys
}

// buildWeakSystem builds a 3-process system where P2 participates WEAKly
// in a synchronization vector with P0/P1 STRONG.
func buildWeakSystem(t *testing.T) *tasystem.System {
	t.Helper()
	b := tasystem.NewBuilder()

	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)
	p2, err := b.AddProcess("P2")
	require.NoError(t, err)

	ev, err := b.AddEvent("bcast")
	require.NoError(t, err)

	i0, err := b.AddLocation(p0, "P0.idle", true, false)
	require.NoError(t, err)
	b0, err := b.AddLocation(p0, "P0.busy", false, false)
	require.NoError(t, err)
	i1, err := b.AddLocation(p1, "P1.idle", true, false)
	require.NoError(t, err)
	b1, err := b.AddLocation(p1, "P1.busy", false, false)
	require.NoError(t, err)
	i2, err := b.AddLocation(p2, "P2.idle", true, false)
	require.NoError(t, err)
	b2, err := b.AddLocation(p2, "P2.busy", false, false)
	require.NoError(t, err)

	_, err = b.AddEdge(p0, i0, b0, ev)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, i1, b1, ev)
	require.NoError(t, err)
	_, err = b.AddEdge(p2, i2, b2, ev)
	require.NoError(t, err)

	_, err = b.AddSyncVector(
		tasystem.SyncParticipant{Process: p0, Event: ev, Strength: tasystem.Strong},
		tasystem.SyncParticipant{Process: p1, Event: ev, Strength: tasystem.Strong},
		tasystem.SyncParticipant{Process: p2, Event: ev, Strength: tasystem.Weak},
	)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)

	return sys
}

// buildCommittedSystem builds a 2-process system where P0's initial
// location is committed and only has a local (non-synchronized) edge.
func buildCommittedSystem(t *testing.T) *tasystem.System {
	t.Helper()
	b := tasystem.NewBuilder()

	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)

	urgent, err := b.AddEvent("urgent")
	require.NoError(t, err)
	other, err := b.AddEvent("other")
	require.NoError(t, err)

	i0, err := b.AddLocation(p0, "P0.committed", true, true)
	require.NoError(t, err)
	b0, err := b.AddLocation(p0, "P0.after", false, false)
	require.NoError(t, err)
	i1, err := b.AddLocation(p1, "P1.idle", true, false)
	require.NoError(t, err)
	b1, err := b.AddLocation(p1, "P1.busy", false, false)
	require.NoError(t, err)

	_, err = b.AddEdge(p0, i0, b0, urgent)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, i1, b1, other)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)

	return sys
}
