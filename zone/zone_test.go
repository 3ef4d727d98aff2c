package zone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/zone"
)

func TestNew_IsUniversalPositive(t *testing.T) {
	t.Parallel()

	z, err := zone.New(2)
	require.NoError(t, err)
	require.True(t, z.IsUniversalPositive())
	require.False(t, z.IsEmpty())
}

func forceEmpty(t *testing.T, z *zone.Zone) {
	t.Helper()
	// x <= 5 && x >= 10 is unsatisfiable.
	_, err := dbm.Constrain(z.DBM, clock.ID(1), clock.Zero, clock.LE, 5)
	require.NoError(t, err)
	_, err = dbm.Constrain(z.DBM, clock.Zero, clock.ID(1), clock.LT, -10)
	require.NoError(t, err)
}

func TestEqual_TreatsAllEmptyZonesAsEqual(t *testing.T) {
	t.Parallel()

	a, err := zone.New(2)
	require.NoError(t, err)
	b, err := zone.New(2)
	require.NoError(t, err)
	forceEmpty(t, a)
	forceEmpty(t, b)

	require.True(t, a.Equal(b))
}

func TestLe_EmptyZoneIsIncludedInEverything(t *testing.T) {
	t.Parallel()

	empty, err := zone.New(2)
	require.NoError(t, err)
	forceEmpty(t, empty)

	full, err := zone.New(2)
	require.NoError(t, err)

	require.True(t, empty.Le(full))
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	z, err := zone.New(2)
	require.NoError(t, err)
	c := z.Clone()
	require.True(t, z.Equal(c))

	forceEmpty(t, c)
	require.False(t, z.Equal(c))
}
