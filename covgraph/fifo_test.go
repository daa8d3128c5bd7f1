package covgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/covgraph"
)

func TestFIFO_OrdersFirstInFirstOut(t *testing.T) {
	q := covgraph.NewFIFO()
	q.Insert(1)
	q.Insert(2)
	q.Insert(3)

	first, err := q.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(1), first)

	require.NoError(t, q.RemoveFirst())
	first, err = q.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(2), first)
}

func TestFIFO_RemoveMidQueue(t *testing.T) {
	q := covgraph.NewFIFO()
	q.Insert(1)
	q.Insert(2)
	q.Insert(3)
	require.NoError(t, q.Remove(2))
	require.Equal(t, 2, q.Len())
	require.ErrorIs(t, q.Remove(2), covgraph.ErrNotInStore)
}

func TestFastFIFO_RemoveAndEmpty(t *testing.T) {
	q := covgraph.NewFastFIFO()
	require.True(t, q.Empty())
	_, err := q.First()
	require.ErrorIs(t, err, covgraph.ErrEmptyStore)

	q.Insert(1)
	q.Insert(2)
	require.NoError(t, q.Remove(1))
	require.Equal(t, 1, q.Len())

	q.Clear()
	require.True(t, q.Empty())
}
