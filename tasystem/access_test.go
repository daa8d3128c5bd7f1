package tasystem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/refclock"
	"github.com/tchecker-go/tachecker/tasystem"
)

func TestAccessMap_SingleProcessPerClock(t *testing.T) {
	sys := buildSimpleSystem(t)
	counts := sys.ClockAccessCounts()
	require.Len(t, counts, 1)
	require.Equal(t, 1, counts[0], "clock x is only guarded/reset by P0")
}

func TestAccessMap_DetectsSharedClock(t *testing.T) {
	b := tasystem.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)
	ev, err := b.AddEvent("go")
	require.NoError(t, err)
	clk, err := b.AddClock("shared", 1)
	require.NoError(t, err)

	l0, err := b.AddLocation(p0, "a0", true, false)
	require.NoError(t, err)
	l1, err := b.AddLocation(p0, "b0", false, false)
	require.NoError(t, err)
	e0, err := b.AddEdge(p0, l0, l1, ev)
	require.NoError(t, err)
	require.NoError(t, b.SetEdgeGuard(e0, nil, nil, []refclock.Reset{{X: int(clk), Y: 0, V: 0}}, nil))

	m0, err := b.AddLocation(p1, "a1", true, false)
	require.NoError(t, err)
	n0, err := b.AddLocation(p1, "b1", false, false)
	require.NoError(t, err)
	e1, err := b.AddEdge(p1, m0, n0, ev)
	require.NoError(t, err)
	require.NoError(t, b.SetEdgeGuard(e1, nil, nil, []refclock.Reset{{X: int(clk), Y: 0, V: 0}}, nil))

	sys, err := b.Build()
	require.NoError(t, err)

	counts := sys.ClockAccessCounts()
	require.Equal(t, 2, counts[0])

	err = refclock.ValidateDecomposition(counts)
	require.Error(t, err)
}
