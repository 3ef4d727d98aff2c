package bisim

import (
	"github.com/google/uuid"

	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/vcg"
)

// WitnessNode is one (state_A, state_B) pair CheckForVirtBisimWitness
// recursed into, identified by its discrete part only.
type WitnessNode struct {
	ID               uuid.UUID
	VLocA, VLocB     system.VLoc
	IntValA, IntValB system.IntVal
}

// WitnessEdge is one recursive step CheckForVirtBisimWitness took from Src
// to Tgt, annotated with the virtual-constraint container that step
// contributed to the overall non-bisimilarity result (empty when the step
// found the two sides fully equivalent).
type WitnessEdge struct {
	Src, Tgt uuid.UUID
	VC       *vcg.Container
}

// Witness is the pair graph built during bisimulation checking: a record
// of every discrete pair CheckForVirtBisimWitness visited and the
// divergence found along each step between them, usable the same way
// graph.Graph's reachability graph is for a counter-example, but over
// pairs rather than single states.
type Witness struct {
	nodes map[uint64]*WitnessNode
	order []*WitnessNode
	edges []*WitnessEdge
}

// NewWitness returns an empty pair graph.
func NewWitness() *Witness {
	return &Witness{nodes: make(map[uint64]*WitnessNode)}
}

// Nodes returns every recorded pair, in first-visited order.
func (w *Witness) Nodes() []*WitnessNode { return w.order }

// Edges returns every recorded step, in the order it was taken.
func (w *Witness) Edges() []*WitnessEdge { return w.edges }

// node returns the id of the node for (vlocA, vlocB, intvalA, intvalB),
// creating it on first reference. Idempotent: calling it twice for the
// same discrete pair returns the same id, whether from inside the
// recursive call that owns the pair or from the call site recording the
// edge into it.
func (w *Witness) node(vlocA, vlocB system.VLoc, intvalA, intvalB system.IntVal) uuid.UUID {
	key := pairHash(vlocA, vlocB, intvalA, intvalB)
	if n, ok := w.nodes[key]; ok {
		return n.ID
	}
	n := &WitnessNode{
		ID:      uuid.New(),
		VLocA:   vlocA.Clone(), VLocB: vlocB.Clone(),
		IntValA: intvalA.Clone(), IntValB: intvalB.Clone(),
	}
	w.nodes[key] = n
	w.order = append(w.order, n)
	return n.ID
}

// addEdge records a step from src to tgt annotated with vc.
func (w *Witness) addEdge(src, tgt uuid.UUID, vc *vcg.Container) {
	w.edges = append(w.edges, &WitnessEdge{Src: src, Tgt: tgt, VC: vc})
}
