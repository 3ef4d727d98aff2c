package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

func buildOneProcess(t *testing.T) *system.Model {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	loc0, err := b.AddLocation(p, "loc0", nil, system.WithInitial())
	require.NoError(t, err)
	loc1, err := b.AddLocation(p, "loc1", nil)
	require.NoError(t, err)
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}
	err = b.AddEdge(p, loc0, loc1, ev, nil, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestGraph_AddNodeAndEdge(t *testing.T) {
	t.Parallel()
	m := buildOneProcess(t)
	g := zg.New(m, semantics.Standard{}, extrapolation.None{})
	ies, _ := g.InitialEdges()
	s0, _, err := g.Initial(ies[0])
	require.NoError(t, err)
	ves := g.OutgoingEdges(s0)
	s1, _, err := g.Next(s0, ves[0])
	require.NoError(t, err)

	gr := graph.New()
	n0 := gr.AddNode(s0, true, false)
	n1 := gr.AddNode(s1, false, true)
	gr.AddEdge(n0.ID, n1.ID, ves[0])

	require.Equal(t, 1, len(gr.Out(n0.ID)))
	require.Equal(t, 1, len(gr.In(n1.ID)))

	attrs, err := graph.NodeAttributes(m, n1)
	require.NoError(t, err)
	require.Equal(t, "loc1", attrs["vloc"])
	require.Equal(t, "true", attrs["final"])

	eattrs := graph.EdgeAttributes(m, gr.Out(n0.ID)[0])
	require.True(t, strings.Contains(eattrs["vedge"], "go"))
}

func TestGraph_RemoveNodeDropsItsEdges(t *testing.T) {
	t.Parallel()
	m := buildOneProcess(t)
	g := zg.New(m, semantics.Standard{}, extrapolation.None{})
	ies, _ := g.InitialEdges()
	s0, _, _ := g.Initial(ies[0])
	ves := g.OutgoingEdges(s0)
	s1, _, _ := g.Next(s0, ves[0])

	gr := graph.New()
	n0 := gr.AddNode(s0, true, false)
	n1 := gr.AddNode(s1, false, true)
	gr.AddEdge(n0.ID, n1.ID, ves[0])
	gr.AddSubsumption(n0.ID, n1.ID)

	gr.RemoveNode(n1.ID)

	require.Equal(t, nil, gr.Node(n1.ID))
	require.Equal(t, 0, len(gr.Out(n0.ID)))
}
