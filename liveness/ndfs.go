package liveness

import (
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/stats"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

type color int

const (
	white color = iota
	cyan
	blue
)

// NestedDFS runs the nested depth-first search: an outer
// DFS enumerates states; whenever it pops a fully-expanded state
// satisfying every label in labels, an inner DFS starts from that state
// and searches for a path back to it using its own cyan/red colour set.
// Red is shared across inner searches seeded by different outer nodes, so
// a subtree proven cycle-free once is never re-explored.
func NestedDFS(g *zg.ZG, labels []system.LabelID) (*Result, error) {
	rec := stats.New()
	gr := graph.New()
	idx := newNodeIndex()
	outerColor := make(map[*graph.Node]color)
	red := make(map[*graph.Node]bool)

	roots, err := seedInitialNodes(g, gr, idx, rec)
	if err != nil {
		return nil, err
	}

	res := &Result{Graph: gr, Stats: rec}

	var lasso *graph.Lasso
	var outer func(n *graph.Node) error
	outer = func(n *graph.Node) error {
		outerColor[n] = cyan
		for _, ve := range g.OutgoingEdges(n.State) {
			tgt, status, err := g.Next(n.State, ve)
			if err != nil {
				return err
			}
			rec.IncVisitedTransitions()
			if !status.IsOK() {
				continue
			}
			tgt = g.Share(tgt)
			tn, isNew := idx.getOrAdd(gr, tgt, false)
			if isNew {
				rec.IncVisitedStates()
			}
			gr.AddEdge(n.ID, tn.ID, ve)
			if lasso != nil {
				return nil
			}
			if outerColor[tn] == white {
				if err := outer(tn); err != nil {
					return err
				}
				if lasso != nil {
					return nil
				}
			}
		}
		outerColor[n] = blue

		accepting, err := hasAllLabels(g, n, labels)
		if err != nil {
			return err
		}
		if !accepting {
			return nil
		}
		innerColor := make(map[*graph.Node]color)
		cycle, found, err := innerDFS(g, gr, idx, rec, n, n, innerColor, red, nil, nil)
		if err != nil {
			return err
		}
		if found {
			stem, err := search.ExtractSymbolicCounterExample(gr, n)
			if err != nil {
				return err
			}
			lasso = &graph.Lasso{Stem: stem, Cycle: cycle}
		}
		return nil
	}

	for _, r := range roots {
		if outerColor[r] != white {
			continue
		}
		if err := outer(r); err != nil {
			return nil, err
		}
		if lasso != nil {
			break
		}
	}

	rec.Cycle = lasso != nil
	res.Found = lasso != nil
	res.Lasso = lasso
	rec.Finish()
	return res, nil
}

// innerDFS searches for a path from cur back to target, exploring fresh
// transitions via g.Next and sharing discovered nodes through idx. stack
// and stackEdges carry the path accumulated so far from target to cur.
func innerDFS(g *zg.ZG, gr *graph.Graph, idx *nodeIndex, rec *stats.Record, target, cur *graph.Node, innerColor map[*graph.Node]color, red map[*graph.Node]bool, stack []*graph.Node, stackEdges []*graph.Edge) (graph.FinitePath, bool, error) {
	innerColor[cur] = cyan
	for _, ve := range g.OutgoingEdges(cur.State) {
		tgt, status, err := g.Next(cur.State, ve)
		if err != nil {
			return graph.FinitePath{}, false, err
		}
		rec.IncVisitedTransitions()
		if !status.IsOK() {
			continue
		}
		tgt = g.Share(tgt)
		tn, isNew := idx.getOrAdd(gr, tgt, false)
		if isNew {
			rec.IncVisitedStates()
		}
		e := gr.AddEdge(cur.ID, tn.ID, ve)

		if tn == target {
			nodes := append(append([]*graph.Node{}, stack...), cur, target)
			edges := append(append([]*graph.Edge{}, stackEdges...), e)
			return graph.FinitePath{Nodes: nodes, Edges: edges}, true, nil
		}
		if red[tn] || innerColor[tn] != white {
			continue
		}
		newStack := append(append([]*graph.Node{}, stack...), cur)
		newEdges := append(append([]*graph.Edge{}, stackEdges...), e)
		path, found, err := innerDFS(g, gr, idx, rec, target, tn, innerColor, red, newStack, newEdges)
		if err != nil {
			return graph.FinitePath{}, false, err
		}
		if found {
			return path, true, nil
		}
	}
	innerColor[cur] = blue
	red[cur] = true
	return graph.FinitePath{}, false, nil
}
