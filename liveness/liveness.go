package liveness

import (
	"errors"

	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/stats"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// ErrNoCycleInSCC is an internal invariant violation: a strongly-connected
// component identified as non-trivial must contain a cycle through its
// root by definition.
var ErrNoCycleInSCC = errors.New("liveness: strongly-connected component has no cycle through its root")

// Result is the outcome of a liveness search: the reachability graph built
// while searching, the search statistics, and the lasso counter-example
// when one was found.
type Result struct {
	Graph *graph.Graph
	Stats *stats.Record
	Found bool
	Lasso *graph.Lasso
}

// nodeIndex shares graph nodes across repeated visits to the same
// zone-graph state, relying on zg.ZG.Share having already canonicalised
// equal states to the same pointer.
type nodeIndex struct {
	byState map[*zg.State]*graph.Node
}

func newNodeIndex() *nodeIndex {
	return &nodeIndex{byState: make(map[*zg.State]*graph.Node)}
}

// getOrAdd returns the existing node for s, or adds a fresh one; the
// second return reports whether a new node was created.
func (idx *nodeIndex) getOrAdd(gr *graph.Graph, s *zg.State, initial bool) (*graph.Node, bool) {
	if n, ok := idx.byState[s]; ok {
		return n, false
	}
	n := gr.AddNode(s, initial, false)
	idx.byState[s] = n
	return n, true
}

// hasAllLabels reports whether n satisfies every label in want. An empty
// want is never satisfied: it reports false.
func hasAllLabels(g *zg.ZG, n *graph.Node, want []system.LabelID) (bool, error) {
	if len(want) == 0 {
		return false, nil
	}
	ls, err := g.Labels(n.State)
	if err != nil {
		return false, err
	}
	have := make(map[system.LabelID]bool, len(ls))
	for _, l := range ls {
		have[l] = true
	}
	for _, l := range want {
		if !have[l] {
			return false, nil
		}
	}
	return true, nil
}

// seedInitialNodes adds one node per initial edge of g to gr/idx, marking
// it Final whenever it already satisfies every label in labels; returns
// the seeded nodes in the same order as g.InitialEdges.
func seedInitialNodes(g *zg.ZG, gr *graph.Graph, idx *nodeIndex, rec *stats.Record) ([]*graph.Node, error) {
	ies, err := g.InitialEdges()
	if err != nil {
		return nil, err
	}
	var nodes []*graph.Node
	for _, ie := range ies {
		s, status, err := g.Initial(ie)
		if err != nil {
			return nil, err
		}
		if !status.IsOK() {
			continue
		}
		s = g.Share(s)
		n, isNew := idx.getOrAdd(gr, s, true)
		if isNew {
			rec.IncVisitedStates()
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
