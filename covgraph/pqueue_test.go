package covgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/covgraph"
)

func byValue(a, b covgraph.NodeID) bool { return a < b }

func TestPQueue_OrdersByLess(t *testing.T) {
	q := covgraph.NewPQueue(byValue)
	q.Insert(5)
	q.Insert(1)
	q.Insert(3)

	first, err := q.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(1), first)

	require.NoError(t, q.RemoveFirst())
	first, err = q.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(3), first)
}

func TestPQueue_RemoveArbitrary(t *testing.T) {
	q := covgraph.NewPQueue(byValue)
	q.Insert(5)
	q.Insert(1)
	q.Insert(3)
	require.NoError(t, q.Remove(3))
	require.Equal(t, 2, q.Len())
	require.ErrorIs(t, q.Remove(3), covgraph.ErrNotInStore)

	first, err := q.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(1), first)
}

func TestFastPQueue_OrdersAndRemovesByIndex(t *testing.T) {
	q := covgraph.NewFastPQueue(byValue)
	require.True(t, q.Empty())
	_, err := q.First()
	require.ErrorIs(t, err, covgraph.ErrEmptyStore)

	q.Insert(5)
	q.Insert(1)
	q.Insert(3)

	require.NoError(t, q.Remove(1))
	require.Equal(t, 2, q.Len())

	first, err := q.First()
	require.NoError(t, err)
	require.Equal(t, covgraph.NodeID(3), first)

	q.Clear()
	require.True(t, q.Empty())
}
