package search

import (
	"errors"

	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
	"github.com/ntacheck/ntacheck/zone"
)

// ErrNoPath is returned when target is not reachable from an initial node
// of gr through the edges recorded so far.
var ErrNoPath = errors.New("search: no path to target in graph")

// ErrInfeasibleConcretePath is returned when a symbolic path's backward
// concretization collapses to an empty zone, which cannot happen for a
// path actually produced by Run but can for a hand-built one.
var ErrInfeasibleConcretePath = errors.New("search: symbolic path has no concrete witness")

// ExtractSymbolicCounterExample walks gr backward from target along In
// edges until it reaches an initial node, then reverses the walk into a
// forward FinitePath. Ties are broken by
// picking the first predecessor found; the search graph built by Run is a
// tree under covering-free exploration, so this is the only path in that
// common case.
func ExtractSymbolicCounterExample(gr *graph.Graph, target *graph.Node) (graph.FinitePath, error) {
	var nodes []*graph.Node
	var edges []*graph.Edge

	cur := target
	visited := map[*graph.Node]bool{cur: true}
	for !cur.Initial {
		in := gr.In(cur.ID)
		if len(in) == 0 {
			return graph.FinitePath{}, ErrNoPath
		}
		e := in[0]
		pred := gr.Node(e.Src)
		if pred == nil || visited[pred] {
			return graph.FinitePath{}, ErrNoPath
		}
		visited[pred] = true
		nodes = append(nodes, cur)
		edges = append(edges, e)
		cur = pred
	}
	nodes = append(nodes, cur)

	// nodes/edges were collected target-to-initial; reverse into
	// initial-to-target order.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return graph.FinitePath{Nodes: nodes, Edges: edges}, nil
}

// ConcreteStep is one state of a concretized run: a fixed clock valuation
// (index 0 is always 0) paired with its discrete part, and the vedge
// fired to reach the next step (nil on the last step).
type ConcreteStep struct {
	Values []int32
	VLoc   system.VLoc
	IntVal system.IntVal
	Vedge  zg.Vedge
}

// ExtractConcreteCounterExample picks one concrete run witnessing path,
// working backward from a single integer valuation in the target's zone
// through g.Prev at each step, restricting each predecessor zone to that
// node's own zone on path and re-narrowing it to a single valuation.
// path must be a path actually produced by Run (or an equally feasible
// hand-built one); an infeasible path reports ErrInfeasibleConcretePath.
func ExtractConcreteCounterExample(g *zg.ZG, path graph.FinitePath) ([]ConcreteStep, error) {
	n := len(path.Nodes)
	if n == 0 {
		return nil, nil
	}

	zones := make([]*zone.Zone, n)
	last := path.Nodes[n-1].State.Zone.Clone()
	if _, err := dbm.ConstrainToSingleValuation(last.DBM); err != nil {
		return nil, err
	}
	if last.IsEmpty() {
		return nil, ErrInfeasibleConcretePath
	}
	zones[n-1] = last

	for i := n - 2; i >= 0; i-- {
		ve := path.Edges[i].Vedge
		tgtState := &zg.State{
			VLoc:   path.Nodes[i+1].State.VLoc,
			IntVal: path.Nodes[i+1].State.IntVal,
			Zone:   zones[i+1],
		}
		predState, status, err := g.Prev(tgtState, ve)
		if err != nil {
			return nil, err
		}
		if !status.IsOK() {
			return nil, ErrInfeasibleConcretePath
		}
		pz := predState.Zone.Clone()
		if dbm.Intersection(pz.DBM, pz.DBM, path.Nodes[i].State.Zone.DBM) == dbm.Empty {
			return nil, ErrInfeasibleConcretePath
		}
		if _, err := dbm.ConstrainToSingleValuation(pz.DBM); err != nil {
			return nil, err
		}
		if pz.IsEmpty() {
			return nil, ErrInfeasibleConcretePath
		}
		zones[i] = pz
	}

	steps := make([]ConcreteStep, n)
	for i, nd := range path.Nodes {
		vals := make([]int32, zones[i].Dim())
		if err := dbm.SatisfyingIntegerValuation(zones[i].DBM, vals); err != nil {
			return nil, err
		}
		steps[i] = ConcreteStep{Values: vals, VLoc: nd.State.VLoc, IntVal: nd.State.IntVal}
		if i < n-1 {
			steps[i].Vedge = path.Edges[i].Vedge
		}
	}
	return steps, nil
}
