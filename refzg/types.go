package refzg

import (
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/refdbm"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// Vedge reuses package zg's vedge type directly: a vedge fired over a
// local-time zone graph composes the same per-process system.Edge values
// as one fired over an ordinary zone graph.
type Vedge = zg.Vedge

// State is a local-time zone-graph state: the discrete
// part is identical to package zg's State, but the continuous part is a
// reference DBM whose reference clocks need not be synchronized.
type State struct {
	VLoc   system.VLoc
	IntVal system.IntVal
	RDBM   *dbm.DBM
}

// Clone returns an independent deep copy of s.
func (s *State) Clone() *State {
	return &State{VLoc: s.VLoc.Clone(), IntVal: s.IntVal.Clone(), RDBM: s.RDBM.Clone()}
}

// InitialEdge designates which location tuple to build an initial state
// from, mirroring zg.InitialEdge.
type InitialEdge struct {
	VLoc system.VLoc
}

// processMask builds a RefCount-length boolean mask, true at the
// reference clock of every process named in procs.
func processMask(r refdbm.RefClocks, procs []system.ProcessID) []bool {
	mask := make([]bool, r.RefCount)
	for _, p := range procs {
		mask[int(p)] = true
	}
	return mask
}

// participants returns the distinct processes firing ve.
func participants(ve Vedge) []system.ProcessID {
	out := make([]system.ProcessID, 0, len(ve))
	seen := make(map[system.ProcessID]bool, len(ve))
	for _, e := range ve {
		if !seen[e.Process] {
			seen[e.Process] = true
			out = append(out, e.Process)
		}
	}
	return out
}
