package liveness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/liveness"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// buildSelfLoop declares a single process with one location loc0
// (invariant x1<=10, labelled "acc") and a self-edge on event "go"
// guarded by x1>=2 and resetting x1, so the zone graph has exactly one
// reachable state with a self-loop back to itself.
func buildSelfLoop(t *testing.T) (*zg.ZG, system.LabelID) {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	acc := b.DeclareLabel("acc")

	invariant := clock.Constraints{{X: clock.ID(1), Y: clock.Zero, Cmp: clock.LE, Value: 10}}
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -2}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}

	loc0, err := b.AddLocation(p, "loc0", invariant, system.WithInitial(), system.WithLabels(acc))
	require.NoError(t, err)
	err = b.AddEdge(p, loc0, loc0, ev, guard, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	g := zg.New(m, semantics.Standard{}, extrapolation.None{})
	return g, acc
}

// buildAcyclicChain declares a single process with an acyclic chain
// loc0 -> loc1, so no lasso exists regardless of accepting labels.
func buildAcyclicChain(t *testing.T) (*zg.ZG, system.LabelID) {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	acc := b.DeclareLabel("acc")

	invariant := clock.Constraints{{X: clock.ID(1), Y: clock.Zero, Cmp: clock.LE, Value: 10}}
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -2}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}

	loc0, err := b.AddLocation(p, "loc0", invariant, system.WithInitial())
	require.NoError(t, err)
	loc1, err := b.AddLocation(p, "loc1", invariant, system.WithLabels(acc))
	require.NoError(t, err)
	err = b.AddEdge(p, loc0, loc1, ev, guard, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	g := zg.New(m, semantics.Standard{}, extrapolation.None{})
	return g, acc
}

func TestNestedDFS_FindsSelfLoopLasso(t *testing.T) {
	t.Parallel()
	g, acc := buildSelfLoop(t)

	res, err := liveness.NestedDFS(g, []system.LabelID{acc})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.NotEqual(t, nil, res.Lasso)
	require.False(t, len(res.Lasso.Cycle.Nodes) < 2)
	require.True(t, res.Stats.Cycle)
}

func TestNestedDFS_AcyclicChainHasNoLasso(t *testing.T) {
	t.Parallel()
	g, acc := buildAcyclicChain(t)

	res, err := liveness.NestedDFS(g, []system.LabelID{acc})
	require.NoError(t, err)
	require.False(t, res.Found)
}

func TestCouvreurSCC_FindsSelfLoopLasso(t *testing.T) {
	t.Parallel()
	g, acc := buildSelfLoop(t)

	res, err := liveness.CouvreurSCC(g, []system.LabelID{acc})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.NotEqual(t, nil, res.Lasso)
	require.NotEqual(t, 0, len(res.Lasso.Cycle.Edges))
}

func TestCouvreurSCC_AcyclicChainHasNoLasso(t *testing.T) {
	t.Parallel()
	g, acc := buildAcyclicChain(t)

	res, err := liveness.CouvreurSCC(g, []system.LabelID{acc})
	require.NoError(t, err)
	require.False(t, res.Found)
}
