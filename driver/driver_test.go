package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/driver"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/system"
)

// buildReachable declares a two-location, single-clock process: loc0 ->
// loc1 on event "go", guarded by x >= lower, resetting x; loc1 carries
// label "reached".
func buildReachable(t *testing.T, lower int32) (system.SystemDecl, system.LabelID) {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	label := b.DeclareLabel("reached")

	loc0, err := b.AddLocation(p, "loc0", nil, system.WithInitial())
	require.NoError(t, err)
	loc1, err := b.AddLocation(p, "loc1", nil, system.WithLabels(label))
	require.NoError(t, err)
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -lower}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}
	err = b.AddEdge(p, loc0, loc1, ev, guard, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m, label
}

// buildSelfLoop declares a single location with a self-loop labeled "loop",
// the E5 liveness fixture.
func buildSelfLoop(t *testing.T) (system.SystemDecl, system.LabelID) {
	t.Helper()
	b := system.NewBuilder(0)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	label := b.DeclareLabel("loop")
	loc, err := b.AddLocation(p, "loc0", nil, system.WithInitial(), system.WithLabels(label))
	require.NoError(t, err)
	err = b.AddEdge(p, loc, loc, ev, nil, nil)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m, label
}

func TestRunReach_FindsLabeledState(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t, 1)
	res, err := driver.RunReach(decl, driver.WithLabels(label))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.True(t, res.Stats.Reachable)
}

func TestRunReach_NilDeclIsRejected(t *testing.T) {
	t.Parallel()

	_, err := driver.RunReach(nil)
	require.ErrorIs(t, err, driver.ErrDeclNil)
}

func TestRunCovReach_FindsLabeledStateWithCovering(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t, 0)
	res, err := driver.RunCovReach(decl, driver.WithLabels(label), driver.WithCovering(search.CoveringFull))
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestRunNDFS_FindsSelfLoopCycle(t *testing.T) {
	t.Parallel()

	decl, label := buildSelfLoop(t)
	res, err := driver.RunNDFS(decl, driver.WithLabels(label))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.NotEqual(t, nil, res.Lasso)
}

func TestRunCouvSCC_FindsSelfLoopCycle(t *testing.T) {
	t.Parallel()

	decl, label := buildSelfLoop(t)
	res, err := driver.RunCouvSCC(decl, driver.WithLabels(label))
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestRunConcur19_RequiresClockOwners(t *testing.T) {
	t.Parallel()

	decl, _ := buildReachable(t, 1)
	_, err := driver.RunConcur19(decl)
	require.ErrorIs(t, err, driver.ErrMissingClockOwners)
}

func TestRunConcur19_ExploresWithOwnedClocks(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t, 1)
	res, err := driver.RunConcur19(decl, driver.WithLabels(label), driver.WithClockOwners([]clock.ID{0}))
	require.NoError(t, err)
	require.True(t, res.Found)
}

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

func TestRunBisim_IdenticalSystemsAreFulfilled(t *testing.T) {
	t.Parallel()

	declA := buildOneClockLoop(t, 2, 10)
	declB := buildOneClockLoop(t, 2, 10)
	res, err := driver.RunBisim(declA, declB, driver.WithWitness(true))
	require.NoError(t, err)
	require.True(t, res.Fulfilled)
	require.NotEqual(t, nil, res.Witness)
	require.NotEqual(t, 0, len(res.Witness.Nodes()))
	require.True(t, res.Stats.RelationshipFulfilled)
}

func TestRunBisim_DifferentGuardsAreNotFulfilled(t *testing.T) {
	t.Parallel()

	declA := buildOneClockLoop(t, 2, 10)
	declB := buildOneClockLoop(t, 5, 10)
	res, err := driver.RunBisim(declA, declB)
	require.NoError(t, err)
	require.False(t, res.Fulfilled)
	require.False(t, res.Divergence.IsEmpty())
}

func TestRunBatch_RunsJobsConcurrently(t *testing.T) {
	t.Parallel()

	declA, labelA := buildReachable(t, 1)
	declB, labelB := buildSelfLoop(t)

	results, err := driver.RunBatch(
		func() (any, error) { return driver.RunReach(declA, driver.WithLabels(labelA)) },
		func() (any, error) { return driver.RunNDFS(declB, driver.WithLabels(labelB)) },
	)
	require.NoError(t, err)
	require.Equal(t, 2, len(results))
}
