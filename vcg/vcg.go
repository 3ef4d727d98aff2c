package vcg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
	"github.com/ntacheck/ntacheck/zone"
)

// VCG is a zone graph extended with virtual clocks: it
// wraps a zg.ZG built over a system already declaring NumVirtualClocks
// extra clocks, and knows where those virtual clocks sit (right after the
// NumOrigClocks original clocks of the side it represents).
type VCG struct {
	*zg.ZG
	NumVirtualClocks int
	NumOrigClocks    int
	FirstOrSecond    bool
}

// New wraps base (already built over a system with NumVirtualClocks extra
// clocks) into a VCG.
func New(base *zg.ZG, numVirtualClocks, numOrigClocks int, firstOrSecond bool) *VCG {
	return &VCG{ZG: base, NumVirtualClocks: numVirtualClocks, NumOrigClocks: numOrigClocks, FirstOrSecond: firstOrSecond}
}

// AvailEvents returns the set of synchronised events reachable from s in
// one step.
func (v *VCG) AvailEvents(s *zg.State) []system.EventID {
	seen := make(map[system.EventID]bool)
	var out []system.EventID
	for _, ve := range v.OutgoingEdges(s) {
		if len(ve) == 0 {
			continue
		}
		e := ve[0].Event
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// NextWithSymbol filters s's outgoing vedges to those firing event sigma.
func (v *VCG) NextWithSymbol(s *zg.State, sigma system.EventID) []zg.Vedge {
	var out []zg.Vedge
	for _, ve := range v.OutgoingEdges(s) {
		if len(ve) > 0 && ve[0].Event == sigma {
			out = append(out, ve)
		}
	}
	return out
}

// EdgeOfEvent returns the lone vedge firing sigma from s, failing if it is
// not unique.
func (v *VCG) EdgeOfEvent(s *zg.State, sigma system.EventID) (zg.Vedge, error) {
	ves := v.NextWithSymbol(s, sigma)
	if len(ves) != 1 {
		return nil, ErrNotUniqueEdge
	}
	return ves[0], nil
}

// RevertActionTrans returns the maximal VC of srcZone whose image under
// the transition (guard -- resets --> tgtInvariant) lies in phiSplit
//: intersect the source with the
// guard, apply the resets and the target invariant, intersect with
// phiSplit, revert the resets, then project onto the virtual clocks.
func (v *VCG) RevertActionTrans(srcZone *zone.Zone, guard clock.Constraints, resets clock.Resets, tgtInvariant clock.Constraints, phiSplit *VC) (*VC, error) {
	dim := srcZone.Dim()
	guarded := srcZone.DBM.Clone()
	if _, err := dbm.ConstrainAll(guarded, guard); err != nil {
		return nil, err
	}
	if dbm.IsEmpty0(guarded) {
		return NewVC(v.NumVirtualClocks)
	}

	split := guarded.Clone()
	dbm.ResetAll(split, resets)
	if _, err := dbm.ConstrainAll(split, tgtInvariant); err != nil {
		return nil, err
	}
	if _, err := dbm.ConstrainAll(split, phiSplit.GetVC(v.NumOrigClocks)); err != nil {
		return nil, err
	}
	if dbm.IsEmpty0(split) {
		return NewVC(v.NumVirtualClocks)
	}

	reverted, err := dbm.New(dim)
	if err != nil {
		return nil, err
	}
	if dbm.RevertMultipleReset(reverted, guarded, split, resets) == dbm.Empty {
		return NewVC(v.NumVirtualClocks)
	}
	return FromDBM(reverted, v.NumVirtualClocks)
}

// RevertEpsilonTrans is the inverse of open_down: intersect srcZone with
// the downward closure of phiSplit.
func (v *VCG) RevertEpsilonTrans(srcZone *zone.Zone, phiSplit *VC) (*VC, error) {
	m := srcZone.DBM.Clone()
	if _, err := dbm.ConstrainAll(m, phiSplit.GetVC(v.NumOrigClocks)); err != nil {
		return nil, err
	}
	if dbm.IsEmpty0(m) {
		return NewVC(v.NumVirtualClocks)
	}
	dbm.OpenDown(m)
	return FromDBM(m, v.NumVirtualClocks)
}
