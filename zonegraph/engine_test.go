package zonegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/dbm"
	"github.com/tchecker-go/tachecker/syncprod"
	"github.com/tchecker-go/tachecker/zonegraph"
)

func TestEngine_InitialSatisfiesInvariant(t *testing.T) {
	sys, _, _ := buildLightSystem(t)
	e, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	init, err := e.Initial()
	require.NoError(t, err)
	require.False(t, dbm.IsEmpty0(init.Zone))
}

func TestEngine_Step_GuardSatisfiedReachesBusy(t *testing.T) {
	sys, _, lab := buildLightSystem(t)
	e, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	init, err := e.Initial()
	require.NoError(t, err)

	transitions := syncprod.Outgoing(sys, init.Vloc)
	require.Len(t, transitions, 1)

	status, next, err := e.Step(init, transitions[0])
	require.NoError(t, err)
	require.Equal(t, zonegraph.StateOK, status)
	require.True(t, syncprod.IsFinal(sys, next.Vloc, labelBitset(sys, lab)))
}

func TestEngine_Step_ClockGuardViolated(t *testing.T) {
	sys, clk, _ := buildLightSystem(t)
	e, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	init, err := e.Initial()
	require.NoError(t, err)
	// Elapse, then force x past the edge guard (x<=5) so the guard cannot
	// hold on the source zone.
	dbm.OpenUp(init.Zone)
	require.NoError(t, constrainPastGuard(init.Zone, clk))

	transitions := syncprod.Outgoing(sys, init.Vloc)
	status, _, err := e.Step(init, transitions[0])
	require.NoError(t, err)
	require.Equal(t, zonegraph.ClocksGuardViolated, status)
}

func TestEngine_Step_IntVarGuardViolated(t *testing.T) {
	sys, _ := buildIntVarSystem(t)
	e, err := zonegraph.NewEngine(sys, zonegraph.Elapsed, zonegraph.ExtraNone)
	require.NoError(t, err)

	init, err := e.Initial()
	require.NoError(t, err)

	transitions := syncprod.Outgoing(sys, init.Vloc)
	require.Len(t, transitions, 1)

	status, _, err := e.Step(init, transitions[0])
	require.NoError(t, err)
	require.Equal(t, zonegraph.IntVarsGuardViolated, status, "n starts at 0, guard requires n>=1")
}
