package zg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zone"
)

// Vedge is the set of process edges fired synchronously by one zone-graph
// step: a single entry for a private (interleaved)
// event, one entry per participant for a synchronizing event.
type Vedge []system.Edge

// State is a zone-graph state. Two
// states are semantically equal iff all three match.
type State struct {
	VLoc   system.VLoc
	IntVal system.IntVal
	Zone   *zone.Zone
}

// Equal reports whether s and other denote the same state.
func (s *State) Equal(other *State) bool {
	return s.VLoc.Equal(other.VLoc) && s.IntVal.Equal(other.IntVal) && s.Zone.Equal(other.Zone)
}

// Hash returns a content hash of s, used by the allocator's hash-consing
// table.
func (s *State) Hash() uint64 {
	return s.VLoc.Hash() ^ (s.IntVal.Hash() * 31) ^ s.Zone.Hash()
}

// Clone returns an independent deep copy of s.
func (s *State) Clone() *State {
	return &State{VLoc: s.VLoc.Clone(), IntVal: s.IntVal.Clone(), Zone: s.Zone.Clone()}
}

// Transition is a zone-graph transition record: the vedge that was fired plus the constraint/reset pipeline
// that produced the target zone from the source zone.
type Transition struct {
	Vedge        Vedge
	SrcInvariant clock.Constraints
	Guard        clock.Constraints
	Resets       clock.Resets
	TgtInvariant clock.Constraints
}

// InitialEdge designates which location tuple to build an initial state
// from. The in-memory system.Model always has exactly one initial
// vloc, since every process declares exactly one initial location.
type InitialEdge struct {
	VLoc system.VLoc
}

// FinalEdge designates a (vloc, intval) combination to build a final state
// from during backward search: it ranges over
// every combination whose labels intersect the requested label set.
type FinalEdge struct {
	VLoc   system.VLoc
	IntVal system.IntVal
}
