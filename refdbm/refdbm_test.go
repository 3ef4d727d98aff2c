package refdbm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/refdbm"
)

// a 2-process system: reference clocks 0,1; system clocks 2 (ref 0), 3 (ref 1).
func twoProcessLayout() refdbm.RefClocks {
	return refdbm.NewRefClocks(2, []clock.ID{0, 1})
}

func mustNew(t *testing.T, dim int) *dbm.DBM {
	t.Helper()
	m, err := dbm.New(dim)
	require.NoError(t, err)
	return m
}

func TestUniversal_IsSynchronizable(t *testing.T) {
	t.Parallel()

	r := twoProcessLayout()
	m := mustNew(t, r.Size)
	refdbm.Universal(m, r)

	require.True(t, refdbm.IsSynchronizable(m, r))
}

func TestSynchronize_EqualsReferenceClocks(t *testing.T) {
	t.Parallel()

	r := twoProcessLayout()
	m := mustNew(t, r.Size)
	refdbm.UniversalPositive(m, r)

	st := refdbm.Synchronize(m, r)
	require.NotEqual(t, dbm.Status(dbm.Empty), st)
	require.True(t, refdbm.IsSynchronized(m, r))
}

func TestBoundSpread_UnboundedIsNoOp(t *testing.T) {
	t.Parallel()

	r := twoProcessLayout()
	m := mustNew(t, r.Size)
	refdbm.UniversalPositive(m, r)
	before := m.Clone()

	st := refdbm.BoundSpread(m, r, refdbm.UnboundedSpread)
	require.NotEqual(t, dbm.Status(dbm.Empty), st)
	require.True(t, dbm.IsEqual(before, m))
}

func TestBoundSpread_RestrictsReferenceClocks(t *testing.T) {
	t.Parallel()

	r := twoProcessLayout()
	m := mustNew(t, r.Size)
	refdbm.UniversalPositive(m, r)
	// Drive reference clock 1 far ahead of reference clock 0.
	_, err := dbm.Constrain(m, clock.ID(0), clock.ID(1), clock.LE, -100)
	require.NoError(t, err)
	dbm.Tighten(m)

	st := refdbm.BoundSpread(m, r, 5)
	require.Equal(t, dbm.Status(dbm.Empty), st)
}

func TestResetToReferenceClock_Synchronizes(t *testing.T) {
	t.Parallel()

	r := twoProcessLayout()
	m := mustNew(t, r.Size)
	refdbm.UniversalPositive(m, r)

	refdbm.ResetToReferenceClock(m, r, clock.ID(2))

	got := m.At(clock.ID(2), clock.ID(0))
	require.Equal(t, dbm.LEZero, got)
}

func TestToDbm_ExtractsSynchronizedZone(t *testing.T) {
	t.Parallel()

	r := twoProcessLayout()
	m := mustNew(t, r.Size)
	refdbm.UniversalPositive(m, r)
	_, err := dbm.Constrain(m, clock.ID(2), clock.ID(0), clock.LE, 7)
	require.NoError(t, err)
	st := refdbm.Synchronize(m, r)
	require.NotEqual(t, dbm.Status(dbm.Empty), st)
	out := mustNew(t, r.Size-r.RefCount+1)
	err = refdbm.ToDbm(m, r, out)
	require.NoError(t, err)
	got := out.At(clock.ID(1), clock.Zero).Value
	require.Equal(t, int32(7), got)
}
