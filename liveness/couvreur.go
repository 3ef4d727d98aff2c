package liveness

import (
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/stats"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// CouvreurSCC runs the Tarjan-style single-pass SCC algorithm: the same
// depth-first search that discovers the zone graph
// maintains a stack of SCC roots, and as each maximal strongly-connected
// component closes it is checked for a non-trivial cycle that together
// witnesses every label in labels.
func CouvreurSCC(g *zg.ZG, labels []system.LabelID) (*Result, error) {
	rec := stats.New()
	gr := graph.New()
	idx := newNodeIndex()

	roots, err := seedInitialNodes(g, gr, idx, rec)
	if err != nil {
		return nil, err
	}

	res := &Result{Graph: gr, Stats: rec}

	nextIndex := 0
	indices := make(map[*graph.Node]int)
	lowlink := make(map[*graph.Node]int)
	onStack := make(map[*graph.Node]bool)
	var stack []*graph.Node

	var lasso *graph.Lasso
	var strongconnect func(v *graph.Node) error
	strongconnect = func(v *graph.Node) error {
		indices[v] = nextIndex
		lowlink[v] = nextIndex
		nextIndex++
		stack = append(stack, v)
		onStack[v] = true

		for _, ve := range g.OutgoingEdges(v.State) {
			tgt, status, err := g.Next(v.State, ve)
			if err != nil {
				return err
			}
			rec.IncVisitedTransitions()
			if !status.IsOK() {
				continue
			}
			tgt = g.Share(tgt)
			w, isNew := idx.getOrAdd(gr, tgt, false)
			if isNew {
				rec.IncVisitedStates()
			}
			gr.AddEdge(v.ID, w.ID, ve)
			if lasso != nil {
				return nil
			}

			if _, seen := indices[w]; !seen {
				if err := strongconnect(w); err != nil {
					return err
				}
				if lasso != nil {
					return nil
				}
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		if lowlink[v] != indices[v] {
			return nil
		}

		var scc []*graph.Node
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}

		found, err := checkSCC(g, gr, scc, labels)
		if err != nil {
			return err
		}
		if found != nil {
			lasso = found
		}
		return nil
	}

	for _, r := range roots {
		if _, seen := indices[r]; seen {
			continue
		}
		if err := strongconnect(r); err != nil {
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

// checkSCC reports the lasso witnessed by scc if it is a non-trivial
// strongly-connected component (more than one node, or a single node with
// a self-loop) whose union of labels covers every label in labels.
func checkSCC(g *zg.ZG, gr *graph.Graph, scc []*graph.Node, labels []system.LabelID) (*graph.Lasso, error) {
	nontrivial := len(scc) > 1
	if !nontrivial && len(scc) == 1 {
		for _, e := range gr.Out(scc[0].ID) {
			if e.Tgt == scc[0].ID {
				nontrivial = true
				break
			}
		}
	}
	if !nontrivial {
		return nil, nil
	}

	want := make(map[system.LabelID]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	covered := make(map[system.LabelID]bool, len(labels))
	for _, n := range scc {
		ls, err := g.Labels(n.State)
		if err != nil {
			return nil, err
		}
		for _, l := range ls {
			if want[l] {
				covered[l] = true
			}
		}
	}
	for l := range want {
		if !covered[l] {
			return nil, nil
		}
	}

	root := scc[len(scc)-1]
	sccSet := make(map[*graph.Node]bool, len(scc))
	for _, n := range scc {
		sccSet[n] = true
	}
	cycle, err := cycleWithinSCC(gr, sccSet, root)
	if err != nil {
		return nil, err
	}

	stem, err := search.ExtractSymbolicCounterExample(gr, root)
	if err != nil {
		return nil, err
	}
	return &graph.Lasso{Stem: stem, Cycle: cycle}, nil
}

// cycleWithinSCC finds a path from root back to root, using only nodes in
// sccSet and edges already recorded in gr (every SCC node is reachable
// from root without leaving the component, and root is reachable back to
// itself, by definition of a strongly-connected component).
func cycleWithinSCC(gr *graph.Graph, sccSet map[*graph.Node]bool, root *graph.Node) (graph.FinitePath, error) {
	visited := map[*graph.Node]bool{root: true}
	var walk func(cur *graph.Node, nodes []*graph.Node, edges []*graph.Edge) (graph.FinitePath, bool)
	walk = func(cur *graph.Node, nodes []*graph.Node, edges []*graph.Edge) (graph.FinitePath, bool) {
		for _, e := range gr.Out(cur.ID) {
			tgt := gr.Node(e.Tgt)
			if tgt == nil || !sccSet[tgt] {
				continue
			}
			if tgt == root {
				return graph.FinitePath{
					Nodes: append(append([]*graph.Node{}, nodes...), cur, root),
					Edges: append(append([]*graph.Edge{}, edges...), e),
				}, true
			}
			if visited[tgt] {
				continue
			}
			visited[tgt] = true
			if path, ok := walk(tgt, append(append([]*graph.Node{}, nodes...), cur), append(append([]*graph.Edge{}, edges...), e)); ok {
				return path, true
			}
		}
		return graph.FinitePath{}, false
	}
	if path, ok := walk(root, nil, nil); ok {
		return path, nil
	}
	return graph.FinitePath{}, ErrNoCycleInSCC
}
