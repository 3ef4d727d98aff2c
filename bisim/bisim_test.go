package bisim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/bisim"
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/vcg"
	"github.com/ntacheck/ntacheck/zg"
)

// buildOneClockLoop declares a single process with one location (invariant
// x1<=bound) and a self-edge on event "go" guarded by x1>=lower,
// resetting x1. Every system under test declares 3 clocks: the one
// original clock x1 plus two bookkeeping virtual clocks never touched by
// any guard/invariant/reset (their slots exist only so the VCG built over
// this decl has room for NumVirtualClocks=2).
func buildOneClockLoop(t *testing.T, lower, bound int32) system.SystemDecl {
	t.Helper()
	b := system.NewBuilder(3)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")

	invariant := clock.Constraints{{X: clock.ID(1), Y: clock.Zero, Cmp: clock.LE, Value: bound}}
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -lower}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}

	loc, err := b.AddLocation(p, "loc0", invariant, system.WithInitial())
	require.NoError(t, err)
	err = b.AddEdge(p, loc, loc, ev, guard, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func buildVCG(t *testing.T, decl system.SystemDecl, firstOrSecond bool) *vcg.VCG {
	t.Helper()
	v, err := vcg.Factory(decl, firstOrSecond, 1, 2, semantics.KindStandard, extrapolation.KindNone, nil)
	require.NoError(t, err)
	return v
}

func initialState(t *testing.T, v *vcg.VCG) *zg.State {
	t.Helper()
	ies, err := v.InitialEdges()
	require.NoError(t, err)
	require.NotEqual(t, 0, len(ies))
	s, status, err := v.Initial(ies[0])
	require.NoError(t, err)
	require.True(t, status.IsOK())
	return s
}

func TestCheckForVirtBisim_IdenticalSystemsAreBisimilar(t *testing.T) {
	t.Parallel()

	declA := buildOneClockLoop(t, 2, 10)
	declB := buildOneClockLoop(t, 2, 10)
	vA := buildVCG(t, declA, true)
	vB := buildVCG(t, declB, false)

	res, err := bisim.CheckForVirtBisim(vA, vB, initialState(t, vA), initialState(t, vB), bisim.NewPairStore(bisim.SubsetConvexUnion, 2))
	require.NoError(t, err)
	require.True(t, res.IsEmpty())
}

func TestCheckForVirtBisim_DifferentGuardsAreNotBisimilar(t *testing.T) {
	t.Parallel()

	declA := buildOneClockLoop(t, 2, 10)
	declB := buildOneClockLoop(t, 5, 10)
	vA := buildVCG(t, declA, true)
	vB := buildVCG(t, declB, false)

	res, err := bisim.CheckForVirtBisim(vA, vB, initialState(t, vA), initialState(t, vB), bisim.NewPairStore(bisim.SubsetConvexUnion, 2))
	require.NoError(t, err)
	require.False(t, res.IsEmpty())
}

func TestCheckForVirtBisimWitness_RecordsTheInitialPair(t *testing.T) {
	t.Parallel()

	declA := buildOneClockLoop(t, 2, 10)
	declB := buildOneClockLoop(t, 5, 10)
	vA := buildVCG(t, declA, true)
	vB := buildVCG(t, declB, false)

	res, w, err := bisim.CheckForVirtBisimWitness(vA, vB, initialState(t, vA), initialState(t, vB), bisim.NewPairStore(bisim.SubsetConvexUnion, 2))
	require.NoError(t, err)
	require.False(t, res.IsEmpty())
	require.NotEqual(t, 0, len(w.Nodes()))
	require.NotEqual(t, 0, len(w.Edges()))
}

func TestPairStore_ConvexUnionCutsOffASubsequentSubset(t *testing.T) {
	t.Parallel()

	vlocA := system.VLoc{0}
	vlocB := system.VLoc{0}
	ivA := system.IntVal{}
	ivB := system.IntVal{}

	wide, err := vcg.NewVC(2)
	require.NoError(t, err)
	narrow, err := vcg.NewVC(2)
	require.NoError(t, err)
	_, err = dbm.Constrain(narrow.DBM, clock.ID(1), clock.Zero, clock.LE, 3)
	require.NoError(t, err)

	p := bisim.NewPairStore(bisim.SubsetConvexUnion, 2)
	require.False(t, p.Seen(vlocA, vlocB, ivA, ivB, wide, narrow))
	p.Mark(vlocA, vlocB, ivA, ivB, wide, wide)
	require.True(t, p.Seen(vlocA, vlocB, ivA, ivB, narrow, narrow))
}
