package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/system"
)

// buildTwoLocationProcess builds a single-process, single-clock system:
// idle --[go, x>=2]--> busy, invariant x<=10 on idle.
func buildTwoLocationProcess(t *testing.T) *system.Model {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	goEvt := b.DeclareEvent("go")

	idle, err := b.AddLocation(p, "idle",
		clock.Constraints{{X: clock.ID(1), Y: clock.Zero, Cmp: clock.LE, Value: 10}},
		system.WithInitial())
	require.NoError(t, err)
	busy, err := b.AddLocation(p, "busy", nil)
	require.NoError(t, err)
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -2}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}
	err = b.AddEdge(p, idle, busy, goEvt, guard, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestBuilder_RoundTripsDeclaredModel(t *testing.T) {
	t.Parallel()

	m := buildTwoLocationProcess(t)
	require.Equal(t, 1, m.ProcessCount())
	idle, err := m.InitialLocation(0)
	require.NoError(t, err)
	edges := m.OutgoingEdges(0, idle)
	require.Equal(t, 1, len(edges))
	require.Equal(t, "go", m.EventName(edges[0].Event))
}

func TestBuilder_RejectsMissingInitialLocation(t *testing.T) {
	t.Parallel()

	b := system.NewBuilder(1)
	b.AddProcess()
	_, err := b.Build()
	require.ErrorIs(t, err, system.ErrNoInitialLocation)
}

func TestBuilder_RejectsEdgeToUnknownLocation(t *testing.T) {
	t.Parallel()

	b := system.NewBuilder(1)
	p := b.AddProcess()
	evt := b.DeclareEvent("e")
	loc, err := b.AddLocation(p, "l0", nil, system.WithInitial())
	require.NoError(t, err)
	err = b.AddEdge(p, loc, system.LocationID(99), evt, nil, nil)
	require.ErrorIs(t, err, system.ErrBadEdgeEndpoint)
}

func TestVLoc_EqualAndHash(t *testing.T) {
	t.Parallel()

	a := system.VLoc{1, 2}
	b := a.Clone()
	require.True(t, a.Equal(b))
	require.Equal(t, b.Hash(), a.Hash())
	b[0] = 9
	require.False(t, a.Equal(b))
}

func TestDefaultOracle_InfersMaxConstantPerClock(t *testing.T) {
	t.Parallel()

	m := buildTwoLocationProcess(t)
	o := system.NewDefaultOracle(m)
	g := o.Global()
	require.Equal(t, 1, len(g.U))
	require.Equal(t, int32(10), g.U[0])
	require.Equal(t, 1, len(g.L))
	require.Equal(t, int32(2), g.L[0])
}
