package refzg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/refdbm"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
	"github.com/ntacheck/ntacheck/zone"
)

// BoundSpread is the sync-event spread bound ("bound_spread
// by 1 whenever a sync event constrains them"): synchronizing processes'
// reference clocks are kept within this many time units of each other,
// which is what keeps the local-time zone graph's reachable state space
// finite without forcing every process back to a single shared clock.
const BoundSpread int32 = 1

// RefZG is the local-time zone-graph transition system,
// the CONCUR'19 counterpart of package zg's ZG built over reference DBMs.
type RefZG struct {
	Decl system.SystemDecl
	Ref  refdbm.RefClocks

	dim int
}

// New builds a RefZG over decl using the given reference-clock layout. ref
// must own exactly one reference clock per process and one offset slot per
// system clock declared in decl.
func New(decl system.SystemDecl, ref refdbm.RefClocks) (*RefZG, error) {
	if ref.RefCount != decl.ProcessCount() || ref.Size-ref.RefCount != decl.ClockCount() {
		return nil, ErrBadRefClocks
	}
	return &RefZG{Decl: decl, Ref: ref, dim: ref.Size}, nil
}

func constrainAll(m *dbm.DBM, cs clock.Constraints) bool {
	st, err := dbm.ConstrainAll(m, cs)
	if err != nil {
		panic(err)
	}
	return st != dbm.Status(dbm.Empty)
}

// InitialEdges returns one InitialEdge per initial vloc, mirroring
// zg.ZG.InitialEdges.
func (g *RefZG) InitialEdges() ([]InitialEdge, error) {
	v, err := initialVLoc(g.Decl)
	if err != nil {
		return nil, err
	}
	return []InitialEdge{{VLoc: v}}, nil
}

// Initial builds the initial state for ie: every reference clock and every
// system clock start at 0 (in particular, already synchronized), narrowed
// by the initial location's invariant.
func (g *RefZG) Initial(ie InitialEdge) (*State, semantics.Status, error) {
	m, err := dbm.New(g.dim)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	dbm.Zero(m)
	inv, err := invariantOf(g.Decl, ie.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	if !constrainAll(m, refConstraints(g.Ref, inv)) {
		return nil, semantics.StateClocksSrcInvariantViolated, nil
	}
	s := &State{VLoc: ie.VLoc.Clone(), IntVal: g.Decl.InitialIntVal(), RDBM: m}
	return s, semantics.StateOK, nil
}

// OutgoingEdges enumerates every vedge leaving s's vloc, mirroring
// zg.ZG.OutgoingEdges.
func (g *RefZG) OutgoingEdges(s *State) []Vedge {
	return outgoingVedges(g.Decl, s.VLoc)
}

// Next fires ve from s: the standard RefDBM next
// (srcInvariant, guard, reset, tgtInvariant, standard_semantics_t's
// before-the-guard delay ordering) plus an asynchronous open_up scoped to
// ve's firing processes in place of the ordinary zone graph's single
// global delay, plus a bound_spread of 1 on exactly those processes'
// reference clocks when ve synchronizes more than one of them.
func (g *RefZG) Next(s *State, ve Vedge) (*State, semantics.Status, error) {
	tgtVLoc, srcInv, guard, resets, tgtInv, err := fire(g.Decl, s.VLoc, ve)
	if err != nil {
		return nil, semantics.StateBad, err
	}
	srcDelay, err := delayAllowed(g.Decl, s.VLoc)
	if err != nil {
		return nil, semantics.StateBad, err
	}

	m := s.RDBM.Clone()
	if !constrainAll(m, refConstraints(g.Ref, srcInv)) {
		return nil, semantics.StateClocksSrcInvariantViolated, nil
	}
	if srcDelay {
		mask := processMask(g.Ref, participants(ve))
		refdbm.AsynchronousOpenUpMasked(m, g.Ref, mask)
		if !constrainAll(m, refConstraints(g.Ref, srcInv)) {
			return nil, semantics.StateClocksSrcInvariantViolated, nil
		}
	}
	if !constrainAll(m, refConstraints(g.Ref, guard)) {
		return nil, semantics.StateClocksGuardViolated, nil
	}
	for _, rs := range resets {
		x, y, value := refResetXY(g.Ref, rs)
		dbm.ResetToSum(m, x, y, value)
	}
	if !constrainAll(m, refConstraints(g.Ref, tgtInv)) {
		return nil, semantics.StateClocksTgtInvariantViolated, nil
	}
	if parts := participants(ve); len(parts) > 1 {
		mask := processMask(g.Ref, parts)
		if refdbm.BoundSpreadOn(m, g.Ref, BoundSpread, mask) == dbm.Status(dbm.Empty) {
			return nil, semantics.StateClocksTgtInvariantViolated, nil
		}
	}
	dbm.Tighten(m)

	return &State{VLoc: tgtVLoc, IntVal: s.IntVal.Clone(), RDBM: m}, semantics.StateOK, nil
}

// IncomingEdges always returns nil: it does not enumerate the vedges
// entering s's vloc, and the local-time zone graph offers forward
// exploration (Explore) only.
func (g *RefZG) IncomingEdges(s *State) []Vedge {
	return nil
}

// Project synchronizes s's reference DBM and extracts the ordinary,
// single-zero-clock zone-graph state it denotes (refdbm.ToDbm), the form
// package graph/search/certificate already know how to store and render.
// A state that is not synchronizable has no projection.
func (g *RefZG) Project(s *State) (*zg.State, bool, error) {
	rdbm := s.RDBM.Clone()
	if refdbm.Synchronize(rdbm, g.Ref) == dbm.Status(dbm.Empty) {
		return nil, false, nil
	}
	out, err := dbm.New(g.Decl.ClockCount() + 1)
	if err != nil {
		return nil, false, err
	}
	if err := refdbm.ToDbm(rdbm, g.Ref, out); err != nil {
		return nil, false, err
	}
	return &zg.State{VLoc: s.VLoc.Clone(), IntVal: s.IntVal.Clone(), Zone: &zone.Zone{DBM: out}}, true, nil
}
