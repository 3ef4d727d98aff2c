package graph

import (
	"github.com/google/uuid"

	"github.com/ntacheck/ntacheck/zg"
)

// Node is one vertex of the state space: a shared zone-graph state plus
// its initial/final flags.
type Node struct {
	ID      uuid.UUID
	State   *zg.State
	Initial bool
	Final   bool
}

// Edge is a transition between two nodes of the state space, labelled
// with the vedge that fired. Condition is set only by bisim witness
// graphs, recording the extra condition each witness edge carries.
type Edge struct {
	Src, Tgt uuid.UUID
	Vedge    zg.Vedge
	Condition string
}

// SubsumptionEdge records that Tgt's state was discarded because Src's
// state already covers it.
type SubsumptionEdge struct {
	Src, Tgt uuid.UUID
}

// Graph is a directed graph of Node/Edge/SubsumptionEdge, built
// incrementally by package search, liveness or bisim.
type Graph struct {
	nodes       map[uuid.UUID]*Node
	out         map[uuid.UUID][]*Edge
	in          map[uuid.UUID][]*Edge
	subOut      map[uuid.UUID][]*SubsumptionEdge
	subIn       map[uuid.UUID][]*SubsumptionEdge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:  make(map[uuid.UUID]*Node),
		out:    make(map[uuid.UUID][]*Edge),
		in:     make(map[uuid.UUID][]*Edge),
		subOut: make(map[uuid.UUID][]*SubsumptionEdge),
		subIn:  make(map[uuid.UUID][]*SubsumptionEdge),
	}
}

// AddNode inserts a fresh node wrapping s and returns it.
func (g *Graph) AddNode(s *zg.State, initial, final bool) *Node {
	n := &Node{ID: uuid.New(), State: s, Initial: initial, Final: final}
	g.nodes[n.ID] = n
	return n
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id uuid.UUID) *Node { return g.nodes[id] }

// Nodes returns every node, in no particular order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// AddEdge records a transition src--ve-->tgt.
func (g *Graph) AddEdge(src, tgt uuid.UUID, ve zg.Vedge) *Edge {
	e := &Edge{Src: src, Tgt: tgt, Vedge: ve}
	g.out[src] = append(g.out[src], e)
	g.in[tgt] = append(g.in[tgt], e)
	return e
}

// Out returns every edge leaving id.
func (g *Graph) Out(id uuid.UUID) []*Edge { return g.out[id] }

// In returns every edge entering id.
func (g *Graph) In(id uuid.UUID) []*Edge { return g.in[id] }

// AddSubsumption records that src covers tgt.
func (g *Graph) AddSubsumption(src, tgt uuid.UUID) *SubsumptionEdge {
	e := &SubsumptionEdge{Src: src, Tgt: tgt}
	g.subOut[src] = append(g.subOut[src], e)
	g.subIn[tgt] = append(g.subIn[tgt], e)
	return e
}

// SubsumptionOut returns the subsumption edges where id is the covering
// node.
func (g *Graph) SubsumptionOut(id uuid.UUID) []*SubsumptionEdge { return g.subOut[id] }

// SubsumptionIn returns the subsumption edges where id is the covered
// node.
func (g *Graph) SubsumptionIn(id uuid.UUID) []*SubsumptionEdge { return g.subIn[id] }

// RemoveNode deletes a node and every edge touching it. Subsumption edges recorded elsewhere that still name id are
// not scrubbed: COVERING_FULL only ever removes a node that was itself
// covered, never one that covers others, so no dangling subOut entry can
// point at a removed id.
func (g *Graph) RemoveNode(id uuid.UUID) {
	delete(g.nodes, id)
	delete(g.out, id)
	delete(g.in, id)
	delete(g.subOut, id)
	delete(g.subIn, id)
	for src, edges := range g.out {
		g.out[src] = filterEdges(edges, id)
	}
	for tgt, edges := range g.in {
		g.in[tgt] = filterEdges(edges, id)
	}
}

func filterEdges(edges []*Edge, dead uuid.UUID) []*Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.Src != dead && e.Tgt != dead {
			kept = append(kept, e)
		}
	}
	return kept
}
