package vcg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/vcg"
)

func TestNewVC_IsUniversalAndNonEmpty(t *testing.T) {
	t.Parallel()

	v, err := vcg.NewVC(2)
	require.NoError(t, err)
	require.False(t, v.IsEmpty())
	require.Equal(t, 2, v.NumVirtualClocks())
}

func TestFromDBM_RoundTripsTheVirtualSubmatrix(t *testing.T) {
	t.Parallel()

	// dim 4: refclock, one original clock, two virtual clocks.
	m, err := dbm.New(4)
	require.NoError(t, err)
	dbm.Universal(m)
	_, err = dbm.Constrain(m, clock.ID(2), clock.Zero, clock.LE, 3)
	require.NoError(t, err)
	v, err := vcg.FromDBM(m, 2)
	require.NoError(t, err)
	require.False(t, v.IsEmpty())
	got := v.DBM.At(clock.ID(1), clock.Zero)
	require.Equal(t, int32(3), got.Value)
}

func TestGetVC_RendersConstraintsAtOffset(t *testing.T) {
	t.Parallel()

	v, err := vcg.NewVC(1)
	require.NoError(t, err)
	_, err = dbm.Constrain(v.DBM, clock.ID(1), clock.Zero, clock.LE, 7)
	require.NoError(t, err)
	cs := v.GetVC(3)
	found := false
	for _, c := range cs {
		if c.X == clock.ID(4) && c.Y == clock.Zero && c.Value == 7 {
			found = true
		}
	}
	require.True(t, found)
}

func TestLogicAnd_IntersectsTwoVCs(t *testing.T) {
	t.Parallel()

	a, _ := vcg.NewVC(1)
	dbm.Constrain(a.DBM, clock.ID(1), clock.Zero, clock.LE, 5)

	b, _ := vcg.NewVC(1)
	dbm.Constrain(b.DBM, clock.Zero, clock.ID(1), clock.LE, -2)

	result, st, err := a.LogicAnd(b)
	require.NoError(t, err)
	require.NotEqual(t, dbm.Empty, st)
	require.False(t, result.IsEmpty())
}

func TestLogicAnd_RejectsDimensionMismatch(t *testing.T) {
	t.Parallel()

	a, _ := vcg.NewVC(1)
	b, _ := vcg.NewVC(2)

	_, _, err := a.LogicAnd(b)
	require.ErrorIs(t, err, vcg.ErrDimensionMismatch)
}

func TestNegLogicAnd_OtherMinusVCCoversTheComplement(t *testing.T) {
	t.Parallel()

	// vc: x1 <= 3. other: universal. other ∧ ¬vc should be exactly x1 > 3,
	// so vc together with that complement covers the whole space --
	// checked here via IsSuperset instead of reaching into the container's
	// internals.
	vc, _ := vcg.NewVC(1)
	dbm.Constrain(vc.DBM, clock.ID(1), clock.Zero, clock.LE, 3)

	other, _ := vcg.NewVC(1)

	complement := vc.NegLogicAnd(other)
	require.False(t, complement.IsEmpty())

	// The complement union, together with vc itself, must cover the
	// universal VC: combine them and check the full space is a superset of
	// a point known to lie in vc (x1=0) and a point known to lie in the
	// complement (x1=100).
	full := vcg.NewContainer(1)
	full.AppendZone(vc)
	full.AppendContainer(complement)

	inBoth, _ := vcg.NewVC(1)
	dbm.Constrain(inBoth.DBM, clock.ID(1), clock.Zero, clock.LE, 0)
	dbm.Constrain(inBoth.DBM, clock.Zero, clock.ID(1), clock.LE, 0)
	require.True(t, full.IsSuperset(inBoth))

	inComplement, _ := vcg.NewVC(1)
	dbm.Constrain(inComplement.DBM, clock.ID(1), clock.Zero, clock.LE, 100)
	dbm.Constrain(inComplement.DBM, clock.Zero, clock.ID(1), clock.LE, -100)
	require.True(t, full.IsSuperset(inComplement))
}

func TestContainer_CompressMergesConvexPieces(t *testing.T) {
	t.Parallel()

	// [0,3] and [3,10] on x1 compress to a single [0,10] piece.
	lo, _ := vcg.NewVC(1)
	dbm.Constrain(lo.DBM, clock.ID(1), clock.Zero, clock.LE, 3)
	dbm.Constrain(lo.DBM, clock.Zero, clock.ID(1), clock.LE, 0)

	hi, _ := vcg.NewVC(1)
	dbm.Constrain(hi.DBM, clock.ID(1), clock.Zero, clock.LE, 10)
	dbm.Constrain(hi.DBM, clock.Zero, clock.ID(1), clock.LE, -3)

	c := vcg.NewContainer(1)
	c.AppendZone(lo)
	c.AppendZone(hi)
	c.Compress()

	require.Equal(t, 1, c.Size())
}

func TestContainer_IsSupersetOfUniversalIsFalseWhenPartial(t *testing.T) {
	t.Parallel()

	bounded, _ := vcg.NewVC(1)
	dbm.Constrain(bounded.DBM, clock.ID(1), clock.Zero, clock.LE, 3)

	c := vcg.NewContainer(1)
	c.AppendZone(bounded)

	universal, _ := vcg.NewVC(1)
	require.False(t, c.IsSuperset(universal))
}

func TestCombine_ProducesPairwiseDisjointResult(t *testing.T) {
	t.Parallel()

	a, _ := vcg.NewVC(1)
	dbm.Constrain(a.DBM, clock.ID(1), clock.Zero, clock.LE, 5)

	b, _ := vcg.NewVC(1)
	dbm.Constrain(b.DBM, clock.ID(1), clock.Zero, clock.LE, 8)

	in := vcg.NewContainer(1)
	in.AppendZone(a)
	in.AppendZone(b)

	out := vcg.Combine(in, 1)
	require.False(t, out.IsEmpty())

	for i := 0; i < out.Size(); i++ {
		for j := i + 1; j < out.Size(); j++ {
			inter, st, err := out.At(i).LogicAnd(out.At(j))
			require.NoError(t, err)
			require.False(t, st != dbm.Empty && !inter.IsEmpty())
		}
	}
}

func TestGenerateSynchronizedZones_IdentifiesOriginalsWithVirtuals(t *testing.T) {
	t.Parallel()

	vc, err := vcg.NewVC(1)
	require.NoError(t, err)
	dbm.Constrain(vc.DBM, clock.ID(1), clock.Zero, clock.LE, 5)
	dbm.Constrain(vc.DBM, clock.Zero, clock.ID(1), clock.LE, -2)

	first, second, err := vc.GenerateSynchronizedZones(1, 1)
	require.NoError(t, err)
	require.False(t, first.IsEmpty() || second.IsEmpty())
	// clock 1 (original) must have been identified with clock 2 (virtual).
	got := first.DBM.At(clock.ID(1), clock.ID(2))
	require.Equal(t, dbm.LEZero, got)
}

func TestSync_RejectsResetsNotToZero(t *testing.T) {
	t.Parallel()

	m1 := mustUniversal(t, 6)
	m2 := mustUniversal(t, 6)

	bad := clock.Resets{{X: clock.ID(1), Y: clock.ID(2), Value: 0}}
	err := vcg.Sync(m1, m2, 2, 2, bad, nil)
	require.ErrorIs(t, err, vcg.ErrUnsupportedReset)
}

func TestSync_ResetsTheMatchingVirtualClocks(t *testing.T) {
	t.Parallel()

	// dim 7 on each side: refclock, 2 originals, 2 side-1 virtuals, 2
	// side-2 virtuals (numOrig1 = numOrig2 = 2).
	m1 := mustUniversal(t, 7)
	m2 := mustUniversal(t, 7)

	resets1 := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}
	err := vcg.Sync(m1, m2, 2, 2, resets1, nil)
	require.NoError(t, err)
	// side-1 clock 1's virtual counterpart in dbm1 sits at id 1+numOrig1=3.
	got := m1.At(clock.ID(3), clock.Zero)
	require.Equal(t, dbm.LEZero, got)
	got = m2.At(clock.ID(3), clock.Zero)
	require.Equal(t, dbm.LEZero, got)
}

func mustUniversal(t *testing.T, dim int) *dbm.DBM {
	t.Helper()
	m, err := dbm.New(dim)
	require.NoError(t, err)
	dbm.Universal(m)
	return m
}
