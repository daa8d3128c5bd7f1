package dbm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tachecker/bound"
	"github.com/tchecker-go/tachecker/dbm"
)

func TestIsUniversal(t *testing.T) {
	m, err := dbm.Universal(3)
	require.NoError(t, err)
	require.True(t, dbm.IsUniversal(m))
	require.False(t, dbm.IsUniversalPositive(m))
}

func TestIsUniversalPositive(t *testing.T) {
	m, err := dbm.UniversalPositive(3)
	require.NoError(t, err)
	require.True(t, dbm.IsUniversalPositive(m))
	require.True(t, dbm.IsTight(m))
}

func TestIsEqualAndIsLE(t *testing.T) {
	m1, err := dbm.UniversalPositive(2)
	require.NoError(t, err)
	m2 := m1.Clone()

	eq, err := dbm.IsEqual(m1, m2)
	require.NoError(t, err)
	require.True(t, eq)

	_, err = dbm.Constrain(m2, 1, 0, bound.LE, 2)
	require.NoError(t, err)

	eq, err = dbm.IsEqual(m1, m2)
	require.NoError(t, err)
	require.False(t, eq)

	le, err := dbm.IsLE(m2, m1)
	require.NoError(t, err)
	require.True(t, le, "the narrower zone must be included in the wider one")

	le, err = dbm.IsLE(m1, m2)
	require.NoError(t, err)
	require.False(t, le)
}

func TestIsEmpty0_FalseForUniversal(t *testing.T) {
	m, err := dbm.Universal(2)
	require.NoError(t, err)
	require.False(t, dbm.IsEmpty0(m))
}

func TestZero_EveryEntryIsLEZero(t *testing.T) {
	m, err := dbm.Zero(3)
	require.NoError(t, err)
	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, bound.LEZero, v)
		}
	}
}

func TestNew_RejectsNonPositiveDimension(t *testing.T) {
	_, err := dbm.New(0)
	require.Error(t, err)
}

func TestAt_RejectsOutOfRange(t *testing.T) {
	m, err := dbm.Universal(2)
	require.NoError(t, err)
	_, err = m.At(5, 0)
	require.Error(t, err)
}
