package zg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zone"
)

// ZG is a zone-graph transition system over a system.SystemDecl, parameterised by a pluggable semantics.Semantics and
// extrapolation.Strategy the way zg_t is parameterised by SEMANTICS and
// EXTRAPOLATION template arguments in the original.
type ZG struct {
	Decl  system.SystemDecl
	Sem   semantics.Semantics
	Extra extrapolation.Strategy

	dim   int
	alloc *allocator
}

// New builds a ZG over decl with the given semantics and extrapolation
// strategy.
func New(decl system.SystemDecl, sem semantics.Semantics, extra extrapolation.Strategy) *ZG {
	return NewSized(decl, sem, extra, 0)
}

// NewSized is New with a capacity hint for the state-sharing allocator;
// 0 keeps the default sizing.
func NewSized(decl system.SystemDecl, sem semantics.Semantics, extra extrapolation.Strategy, blockSize int) *ZG {
	return &ZG{
		Decl:  decl,
		Sem:   sem,
		Extra: extra,
		dim:   decl.ClockCount() + 1,
		alloc: newAllocatorSized(blockSize),
	}
}

// InitialEdges returns one InitialEdge per initial vloc. The in-memory
// system.Model always declares exactly one initial location per process,
// so this is always a single-element slice.
func (g *ZG) InitialEdges() ([]InitialEdge, error) {
	v, err := initialVLoc(g.Decl)
	if err != nil {
		return nil, err
	}
	return []InitialEdge{{VLoc: v}}, nil
}

// Initial builds the initial state for ie.
func (g *ZG) Initial(ie InitialEdge) (*State, semantics.Status, error) {
	z, err := zone.New(g.dim)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	allowDelay, err := delayAllowed(g.Decl, ie.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	inv, err := invariantOf(g.Decl, ie.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	st := g.Sem.Initial(z.DBM, inv, allowDelay)
	if !st.IsOK() {
		return nil, st, nil
	}
	g.Extra.Extrapolate(z.DBM, ie.VLoc)
	s := &State{VLoc: ie.VLoc.Clone(), IntVal: g.Decl.InitialIntVal(), Zone: z}
	return s, st, nil
}

// OutgoingEdges enumerates every vedge leaving s's vloc, without yet checking guard/invariant satisfiability:
// callers combine this with Next.
func (g *ZG) OutgoingEdges(s *State) []Vedge {
	return outgoingVedges(g.Decl, s.VLoc)
}

// Next fires ve from s: composes the vedge's
// guard/resets with the src/tgt invariants, advancing s's zone through the
// chosen semantics, then extrapolating.
func (g *ZG) Next(s *State, ve Vedge) (*State, semantics.Status, error) {
	tgtVLoc, srcInv, guard, resets, tgtInv, err := fire(g.Decl, s.VLoc, ve)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	srcDelay, err := delayAllowed(g.Decl, s.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	tgtDelay, err := delayAllowed(g.Decl, tgtVLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	z := s.Zone.Clone()
	st := g.Sem.Next(z.DBM, srcInv, srcDelay, guard, resets, tgtInv, tgtDelay)
	if !st.IsOK() {
		return nil, st, nil
	}
	g.Extra.Extrapolate(z.DBM, tgtVLoc)
	tgtIntVal, err := applyResets(g.Decl, s.IntVal, ve)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	return &State{VLoc: tgtVLoc, IntVal: tgtIntVal, Zone: z}, st, nil
}

// IncomingEdges enumerates every vedge entering s's vloc, the backward dual of OutgoingEdges.
func (g *ZG) IncomingEdges(s *State) []Vedge {
	return incomingVedges(g.Decl, s.VLoc)
}

// Prev computes the weakest precondition of ve ending at s: the dual of Next.
func (g *ZG) Prev(s *State, ve Vedge) (*State, semantics.Status, error) {
	srcVLoc, srcInv, guard, resets, tgtInv, err := unfire(g.Decl, s.VLoc, ve)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	srcDelay, err := delayAllowed(g.Decl, srcVLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	tgtDelay, err := delayAllowed(g.Decl, s.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	z := s.Zone.Clone()
	st := g.Sem.Prev(z.DBM, tgtInv, tgtDelay, guard, resets, srcInv, srcDelay)
	if !st.IsOK() {
		return nil, st, nil
	}
	g.Extra.Extrapolate(z.DBM, srcVLoc)
	return &State{VLoc: srcVLoc, IntVal: s.IntVal.Clone(), Zone: z}, st, nil
}

// FinalEdges enumerates every (vloc, intval) whose labels intersect
// labels, exponential in the number of processes and integer variables;
// used only by backward/liveness search,
// never on the forward-reachable path.
func (g *ZG) FinalEdges(labels []system.LabelID) ([]FinalEdge, error) {
	want := make(map[system.LabelID]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	var out []FinalEdge
	for _, v := range allVLocs(g.Decl) {
		ls, err := labelsOf(g.Decl, v)
		if err != nil {
			return nil, err
		}
		hit := false
		for _, l := range ls {
			if want[l] {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		for _, iv := range allIntVals(g.Decl) {
			out = append(out, FinalEdge{VLoc: v.Clone(), IntVal: iv})
		}
	}
	return out, nil
}

// Final builds the final (co-reachable-from-infinity) state for fe.
func (g *ZG) Final(fe FinalEdge) (*State, semantics.Status, error) {
	z, err := zone.New(g.dim)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	inv, err := invariantOf(g.Decl, fe.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	st := g.Sem.Final(z.DBM, inv)
	if !st.IsOK() {
		return nil, st, nil
	}
	g.Extra.Extrapolate(z.DBM, fe.VLoc)
	return &State{VLoc: fe.VLoc.Clone(), IntVal: fe.IntVal.Clone(), Zone: z}, st, nil
}

// IsValidFinal reports whether s's zone survives application of the final
// semantics without collapsing to empty.
func (g *ZG) IsValidFinal(s *State) (bool, error) {
	inv, err := invariantOf(g.Decl, s.VLoc)
	if err != nil {
		return false, err
	}
	z := s.Zone.Clone()
	return g.Sem.Final(z.DBM, inv).IsOK(), nil
}

// IsInitial reports whether s's (vloc, intval) pair is the system's
// initial one: only the discrete part is
// compared, not the zone, since many zones can cover the initial location.
func (g *ZG) IsInitial(s *State) (bool, error) {
	v, err := initialVLoc(g.Decl)
	if err != nil {
		return false, err
	}
	return s.VLoc.Equal(v) && s.IntVal.Equal(g.Decl.InitialIntVal()), nil
}

// Labels returns the labels active at s.
func (g *ZG) Labels(s *State) ([]system.LabelID, error) {
	return labelsOf(g.Decl, s.VLoc)
}

// Attributes is the typed certificate-facing counterpart of a serialized
// attribute map: since parsing the
// modelling language is out of scope (system.SystemDecl's doc comment),
// Build/Attributes exchange the structured triple directly rather than a
// map[string]string of textual expressions.
type Attributes struct {
	VLoc   system.VLoc
	IntVal system.IntVal
	Zone   *zone.Zone
}

// Build reconstructs a State from attrs, failing with ErrBadAttributes if
// any field is missing or dimensionally inconsistent.
func (g *ZG) Build(attrs Attributes) (*State, error) {
	if attrs.VLoc == nil || attrs.IntVal == nil || attrs.Zone == nil {
		return nil, ErrBadAttributes
	}
	if len(attrs.VLoc) != g.Decl.ProcessCount() || attrs.Zone.Dim() != g.dim {
		return nil, ErrBadAttributes
	}
	return &State{VLoc: attrs.VLoc.Clone(), IntVal: attrs.IntVal.Clone(), Zone: attrs.Zone.Clone()}, nil
}

// AttributesOf renders s as an Attributes value (the dual of Build).
func (g *ZG) AttributesOf(s *State) Attributes {
	return Attributes{VLoc: s.VLoc.Clone(), IntVal: s.IntVal.Clone(), Zone: s.Zone.Clone()}
}

// Share canonicalises s through the allocator's hash-consing table:
// repeated Share calls with Equal states return
// the same pointer.
func (g *ZG) Share(s *State) *State {
	return g.alloc.share(s)
}

// Split partitions s's zone by c into a satisfying and a refuting branch,
// used by the counterexample extractor to narrow
// a symbolic state down along one constraint at a time. Either branch may
// come back with an empty zone if c holds (or fails) everywhere in s.
func (g *ZG) Split(s *State, c clock.Constraint) (sat *State, refute *State) {
	satZone := s.Zone.Clone()
	if _, err := dbm.ConstrainC(satZone.DBM, c); err != nil {
		dbm.SetEmpty(satZone.DBM)
	}

	refuteZone := s.Zone.Clone()
	neg := negate(c)
	if _, err := dbm.ConstrainC(refuteZone.DBM, neg); err != nil {
		dbm.SetEmpty(refuteZone.DBM)
	}

	sat = &State{VLoc: s.VLoc.Clone(), IntVal: s.IntVal.Clone(), Zone: satZone}
	refute = &State{VLoc: s.VLoc.Clone(), IntVal: s.IntVal.Clone(), Zone: refuteZone}
	return sat, refute
}

// negate returns the complementary constraint of c: x - y < v becomes
// y - x <= -v, and x - y <= v becomes y - x < -v.
func negate(c clock.Constraint) clock.Constraint {
	if c.Cmp == clock.LT {
		return clock.Constraint{X: c.Y, Y: c.X, Cmp: clock.LE, Value: -c.Value}
	}
	return clock.Constraint{X: c.Y, Y: c.X, Cmp: clock.LT, Value: -c.Value}
}

// applyResets advances intval under any integer-variable side effects of
// ve. The current system model carries no integer-variable updates on
// edges (system.Edge has no int-assignment field), so this is the
// identity; it exists as the hook future int-variable-update support
// attaches to without touching Next's signature.
func applyResets(decl system.SystemDecl, iv system.IntVal, ve Vedge) (system.IntVal, error) {
	return iv.Clone(), nil
}
