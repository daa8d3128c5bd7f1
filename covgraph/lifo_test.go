package covgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/covgraph"
)

func TestLIFO_OrdersLastInFirstOut(t *testing.T) {
	s := covgraph.NewLIFO()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	top, err := s.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(3), top)

	require.NoError(t, s.RemoveFirst())
	top, err = s.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(2), top)
}

func TestLIFO_RemoveMidStack(t *testing.T) {
	s := covgraph.NewLIFO()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	require.NoError(t, s.Remove(2))
	require.Equal(t, 2, s.Len())
	require.ErrorIs(t, s.Remove(2), covgraph.ErrNotInStore)
}

func TestFastLIFO_RemoveFirstAndEmpty(t *testing.T) {
	s := covgraph.NewFastLIFO()
	require.True(t, s.Empty())
	_, err := s.First()
	require.ErrorIs(t, err, covgraph.ErrEmptyStore)

	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	require.NoError(t, s.RemoveFirst())
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Remove(1))
	require.Equal(t, 1, s.Len())

	s.Clear()
	require.True(t, s.Empty())
}
