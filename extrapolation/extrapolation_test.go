package extrapolation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/extrapolation"
)

type fakeOracle struct {
	global clock.Bounds
	local  clock.Bounds
}

func (f fakeOracle) Global() clock.Bounds        { return f.global }
func (f fakeOracle) Local(vloc any) clock.Bounds { return f.local }

func mustNew(t *testing.T, dim int) *dbm.DBM {
	t.Helper()
	m, err := dbm.New(dim)
	require.NoError(t, err)
	return m
}

func TestNone_LeavesDbmUnchanged(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)
	before := m.Clone()

	extrapolation.None{}.Extrapolate(m, nil)

	require.True(t, dbm.IsEqual(m, before))
}

func TestGlobalLU_ClampsBeyondBound(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 100)
	require.NoError(t, err)
	g := extrapolation.GlobalLU{Bounds: clock.Bounds{L: []int32{5}, U: []int32{5}}}
	g.Extrapolate(m, nil)

	ref := mustNew(t, 2)
	dbm.UniversalPositive(ref)
	require.True(t, dbm.IsALULe(ref, m, []int32{5}, []int32{5}))
}

func TestLocalM_QueriesOraclePerCall(t *testing.T) {
	t.Parallel()

	o := fakeOracle{local: clock.Bounds{M: []int32{3}}}
	s := extrapolation.LocalM{Oracle: o}

	m := mustNew(t, 2)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 50)
	require.NoError(t, err)
	s.Extrapolate(m, "loc-A")

	ref := mustNew(t, 2)
	dbm.UniversalPositive(ref)
	require.True(t, dbm.IsAMLe(ref, m, []int32{3}))
}

func TestKNorm_SymmetrizesLAndU(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3)
	dbm.UniversalPositive(m)
	_, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 1000)
	require.NoError(t, err)
	k := extrapolation.NewKNorm(clock.Bounds{L: []int32{1, 2}, U: []int32{5, 2}})
	require.Equal(t, int32(5), k.L[0])
	require.Equal(t, int32(5), k.U[0])
	k.Extrapolate(m, nil)

	ref := mustNew(t, 3)
	dbm.UniversalPositive(ref)
	require.True(t, dbm.IsALULe(ref, m, k.L, k.U))
}

func TestFactory_BuildsEveryKind(t *testing.T) {
	t.Parallel()

	o := fakeOracle{
		global: clock.Bounds{L: []int32{1}, U: []int32{1}, M: []int32{1}},
		local:  clock.Bounds{L: []int32{1}, U: []int32{1}, M: []int32{1}},
	}
	kinds := []extrapolation.Kind{
		extrapolation.KindNone,
		extrapolation.KindExtraLUGlobal, extrapolation.KindExtraLULocal,
		extrapolation.KindExtraLUPlusGlobal, extrapolation.KindExtraLUPlusLocal,
		extrapolation.KindExtraMGlobal, extrapolation.KindExtraMLocal,
		extrapolation.KindExtraMPlusGlobal, extrapolation.KindExtraMPlusLocal,
		extrapolation.KindExtraKNorm,
	}
	for _, k := range kinds {
		_, err := extrapolation.New(k, o)
		require.NoError(t, err)
	}
	_, err := extrapolation.New(extrapolation.Kind(99), o)
	require.Error(t, err)
}
