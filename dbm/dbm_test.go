package dbm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.True(t, errors.Is(err, target))
}

func mustNew(t *testing.T, dim int) *dbm.DBM {
	t.Helper()
	m, err := dbm.New(dim)
	require.NoError(t, err)
	return m
}

func TestNew_RejectsBadDimension(t *testing.T) {
	t.Parallel()

	_, err := dbm.New(0)
	assertErrorIs(t, err, dbm.ErrBadDimension)
}

func TestUniversal_IsConsistentAndNonEmpty(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3)
	dbm.Universal(m)

	require.True(t, dbm.IsConsistent(m))
	require.False(t, dbm.IsEmpty0(m))
	require.True(t, dbm.IsUniversal(m))
}

func TestZero_ContainsOnlyTheOrigin(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.Zero(m)

	require.True(t, dbm.ContainsZero(m))
	require.True(t, dbm.IsSingleValuation(m))
}

// A single-clock DBM of dim 2 constrained to [0,1]=(<,0) and [1,0]=(<,+inf)
// is non-empty and tight: this is the canonical "x > 0" zone.
func TestConstrain_StrictLowerBound_NonEmptyAndTight(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)

	_, err := dbm.Constrain(m, clock.Zero, clock.ID(1), clock.LT, 0)
	require.NoError(t, err)
	require.False(t, dbm.IsEmpty0(m))
	require.True(t, dbm.IsTight(m))
	got := m.At(clock.Zero, clock.ID(1))
	require.Equal(t, clock.LT, got.Cmp)
	require.Equal(t, int32(0), got.Value)
}

func TestConstrain_Idempotent(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3)
	dbm.UniversalPositive(m)
	c := clock.Constraint{X: clock.ID(1), Y: clock.Zero, Cmp: clock.LE, Value: 5}

	_, err := dbm.ConstrainC(m, c)
	require.NoError(t, err)
	once := m.Clone()

	_, err = dbm.ConstrainC(m, c)
	require.NoError(t, err)
	require.True(t, dbm.IsEqual(once, m))
}

func TestConstrain_MakesContradictionEmpty(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)

	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 3)
	require.NoError(t, err)
	_, err = dbm.Constrain(m, clock.Zero, clock.ID(1), clock.LT, -3)
	require.NoError(t, err)
	require.True(t, dbm.IsEmpty0(m))
}

func TestOpenUp_IsIdempotent(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 10)
	require.NoError(t, err)
	dbm.OpenUp(m)
	once := m.Clone()
	dbm.OpenUp(m)

	require.True(t, dbm.IsEqual(once, m))
}

func TestResetToValue_PinsClockToZero(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 10)
	require.NoError(t, err)
	dbm.ResetToValue(m, clock.ID(1), 0)

	require.True(t, dbm.HasFixedValue(m, clock.ID(1)))
	got := m.At(clock.ID(1), clock.Zero).Value
	require.Equal(t, int32(0), got)
}

func TestIntersection_OfDisjointZonesIsEmpty(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2)
	dbm.UniversalPositive(a)
	_, err := dbm.Constrain(a, clock.ID(1), clock.Zero, clock.LE, 3)
	require.NoError(t, err)
	b := mustNew(t, 2)
	dbm.UniversalPositive(b)
	_, err = dbm.Constrain(b, clock.Zero, clock.ID(1), clock.LT, -5)
	require.NoError(t, err)
	require.True(t, dbm.Disjoint(a, b))
}

func TestConvexUnion_OfAdjacentIntervalsIsConvex(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2)
	dbm.UniversalPositive(a)
	_, err := dbm.Constrain(a, clock.ID(1), clock.Zero, clock.LE, 3)
	require.NoError(t, err)
	b := mustNew(t, 2)
	dbm.UniversalPositive(b)
	_, err = dbm.Constrain(b, clock.Zero, clock.ID(1), clock.LE, -3)
	require.NoError(t, err)
	result := mustNew(t, 2)
	status := dbm.ConvexUnion(result, a, b)
	require.Equal(t, dbm.UnionIsConvex, status)
	require.True(t, dbm.IsUniversalPositive(result))
}

func TestExtraLU_ClampsBeyondBound(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 100)
	require.NoError(t, err)
	L := []int32{5}
	U := []int32{5}
	dbm.ExtraLU(m, L, U)

	got := m.At(clock.ID(1), clock.Zero)
	require.Equal(t, dbm.LTInfinity, got)
}

func TestOutput_ParseZone_RoundTrip(t *testing.T) {
	t.Parallel()

	names := map[string]clock.ID{"x": 1}
	lookup := func(s string) (clock.ID, bool) { id, ok := names[s]; return id, ok }
	clockName := func(id clock.ID) string {
		for n, i := range names {
			if i == id {
				return n
			}
		}
		return "?"
	}

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 7)
	require.NoError(t, err)
	text := dbm.Output(m, clockName)

	reparsed := mustNew(t, 2)
	dbm.UniversalPositive(reparsed)
	err = dbm.ParseZone(reparsed, text, lookup)
	require.NoError(t, err)
	require.True(t, dbm.IsEqual(m, reparsed))
}

func TestParseZone_RejectsUnknownClock(t *testing.T) {
	t.Parallel()

	lookup := func(string) (clock.ID, bool) { return 0, false }
	m := mustNew(t, 2)
	dbm.UniversalPositive(m)

	err := dbm.ParseZone(m, "y <= 3", lookup)
	assertErrorIs(t, err, dbm.ErrParse)
}
