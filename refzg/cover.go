package refzg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/refdbm"
	"github.com/ntacheck/ntacheck/system"
)

// Covering selects the relation Explore uses to discard a newly reached
// local-time state already covered by one explored before it. Both variants first restrict each side
// to its synchronized sub-zone (refdbm.Synchronize), the step an ordinary
// aLU/aM check never performs, before applying the abstraction.
type Covering int

const (
	// CoveringSyncALU restricts each side to its synchronized valuations,
	// then checks aLU-inclusion with per-location L/U bounds from Oracle.
	CoveringSyncALU Covering = iota
	// CoveringSyncAM is the aM specialisation of CoveringSyncALU.
	CoveringSyncAM
)

// covers reports whether candidate is covered by explored under cov: both
// must share the same discrete part, and candidate's synchronized
// sub-zone must be aLU/aM-included in explored's.
func covers(cov Covering, oracle clock.Oracle, ref refdbm.RefClocks, explored, candidate *State) bool {
	if !explored.VLoc.Equal(candidate.VLoc) || !system.IntVal(explored.IntVal).Equal(candidate.IntVal) {
		return false
	}
	if oracle == nil {
		return refdbm.IsSyncALULe(candidate.RDBM, explored.RDBM, ref, nil, nil)
	}
	bounds := oracle.Local(explored.VLoc)
	switch cov {
	case CoveringSyncAM:
		return refdbm.IsSyncAMLe(candidate.RDBM, explored.RDBM, ref, bounds.M)
	default:
		return refdbm.IsSyncALULe(candidate.RDBM, explored.RDBM, ref, bounds.L, bounds.U)
	}
}
