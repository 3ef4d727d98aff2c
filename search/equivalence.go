package search

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// Equivalence selects how node covering decides "already explored". sync-aLU (for the
// local-time zone graph) is implemented in package refzg instead, since it
// needs RefDBM-specific restriction before applying aLU.
type Equivalence int

const (
	// Equality requires an identical zone.
	Equality Equivalence = iota
	// Inclusion covers by zone-inclusion ("<=").
	Inclusion
	// ALU covers by inclusion under aLU abstraction with a bound oracle.
	ALU
)

// Covers reports whether explored covers candidate under eq: both must
// share the same discrete part (vloc, intval), and candidate's zone must
// be covered by explored's zone per the chosen relation.
func Covers(eq Equivalence, oracle clock.Oracle, explored, candidate *zg.State) bool {
	if !explored.VLoc.Equal(candidate.VLoc) || !system.IntVal(explored.IntVal).Equal(candidate.IntVal) {
		return false
	}
	switch eq {
	case Equality:
		return candidate.Zone.Equal(explored.Zone)
	case Inclusion:
		return candidate.Zone.Le(explored.Zone)
	case ALU:
		if oracle == nil {
			return candidate.Zone.Le(explored.Zone)
		}
		bounds := oracle.Local(explored.VLoc)
		return candidate.Zone.IsALULe(explored.Zone, bounds.L, bounds.U)
	default:
		return false
	}
}
