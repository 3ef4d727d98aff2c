package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// buildChain declares a single process with clock x1 and a chain
// loc0 -> loc1 -> loc2 on event "go", guarded by x1>=2 each time and
// resetting x1 on the first edge only. loc2 carries the label "done".
// Every location carries the invariant x1<=10, so every reachable zone's
// clock is bounded both above and below.
func buildChain(t *testing.T) (*zg.ZG, system.LabelID) {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	done := b.DeclareLabel("done")

	invariant := clock.Constraints{{X: clock.ID(1), Y: clock.Zero, Cmp: clock.LE, Value: 10}}
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -2}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}

	loc0, err := b.AddLocation(p, "loc0", invariant, system.WithInitial())
	require.NoError(t, err)
	loc1, err := b.AddLocation(p, "loc1", invariant)
	require.NoError(t, err)
	loc2, err := b.AddLocation(p, "loc2", invariant, system.WithLabels(done))
	require.NoError(t, err)
	err = b.AddEdge(p, loc0, loc1, ev, guard, resets)
	require.NoError(t, err)
	err = b.AddEdge(p, loc1, loc2, ev, guard, nil)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	g := zg.New(m, semantics.Standard{}, extrapolation.None{})
	return g, done
}

func TestRun_ReachesLabelledState(t *testing.T) {
	t.Parallel()
	g, done := buildChain(t)

	res, err := search.Run(g, search.Config{
		Order:    search.BFS,
		Equiv:    search.Equality,
		Covering: search.CoveringNone,
		Labels:   []system.LabelID{done},
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.NotEqual(t, nil, res.Target)
	require.True(t, res.Stats.Reachable)
	require.NotEqual(t, uint64(0), res.Stats.VisitedStates)
}

func TestRun_ExhaustiveExplorationVisitsEveryState(t *testing.T) {
	t.Parallel()
	g, _ := buildChain(t)

	res, err := search.Run(g, search.Config{
		Order:    search.BFS,
		Equiv:    search.Equality,
		Covering: search.CoveringNone,
	})
	require.NoError(t, err)
	require.False(t, res.Found)
	got := len(res.Graph.Nodes())
	require.False(t, got < 3)
}

func TestExtractSymbolicCounterExample_ReachesTarget(t *testing.T) {
	t.Parallel()
	g, done := buildChain(t)

	res, err := search.Run(g, search.Config{
		Order:    search.BFS,
		Equiv:    search.Equality,
		Covering: search.CoveringNone,
		Labels:   []system.LabelID{done},
	})
	require.NoError(t, err)
	require.True(t, res.Found)

	path, err := search.ExtractSymbolicCounterExample(res.Graph, res.Target)
	require.NoError(t, err)
	require.False(t, len(path.Nodes) < 2)
	require.True(t, path.Nodes[0].Initial)
	require.Equal(t, res.Target, path.Nodes[len(path.Nodes)-1])

	steps, err := search.ExtractConcreteCounterExample(g, path)
	require.NoError(t, err)
	require.Equal(t, len(path.Nodes), len(steps))
	for i, step := range steps {
		require.Equal(t, int32(0), step.Values[0])
	}
}

func TestCovers_RequiresMatchingDiscretePart(t *testing.T) {
	t.Parallel()
	g, _ := buildChain(t)

	ies, err := g.InitialEdges()
	require.NoError(t, err)
	s0, _, err := g.Initial(ies[0])
	require.NoError(t, err)
	ves := g.OutgoingEdges(s0)
	require.NotEqual(t, 0, len(ves))
	s1, status, err := g.Next(s0, ves[0])
	require.NoError(t, err)
	require.True(t, status.IsOK())

	require.False(t, search.Covers(search.Equality, nil, s0, s1))
	require.True(t, search.Covers(search.Equality, nil, s0, s0))
}
