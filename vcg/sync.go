package vcg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// Sync replays, on both dbm1 and dbm2, the resets a synchronised action
// performs on each side's original clocks, resetting the matching virtual
// clocks instead. dbm1 is laid out as
// [refclock | side-1 originals | side-1 virtuals | side-2 virtuals], and
// dbm2 as [refclock | side-2 originals | side-1 virtuals | side-2
// virtuals]; resets1/resets2 must all be resets-to-zero of a side's own
// original clocks.
func Sync(dbm1, dbm2 *dbm.DBM, numOrig1, numOrig2 int, resets1, resets2 clock.Resets) error {
	for _, r := range resets1 {
		if r.Y != clock.Zero || r.Value != 0 {
			return ErrUnsupportedReset
		}
		dbm.ResetToValue(dbm1, clock.ID(int(r.X)+numOrig1), 0)
		dbm.ResetToValue(dbm2, clock.ID(int(r.X)+numOrig2), 0)
	}
	for _, r := range resets2 {
		if r.Y != clock.Zero || r.Value != 0 {
			return ErrUnsupportedReset
		}
		dbm.ResetToValue(dbm1, clock.ID(int(r.X)+numOrig1+numOrig1), 0)
		dbm.ResetToValue(dbm2, clock.ID(int(r.X)+numOrig2+numOrig1), 0)
	}
	return nil
}

// RevertSync is the inverse of Sync: given a virtual constraint phiE over
// the combined virtual clocks, it identifies which of dbm1's and dbm2's
// original clocks were reset to zero in the pre-state and reverts those
// resets, returning the resulting virtual constraints on each side.
func RevertSync(dbm1, dbm2 *dbm.DBM, numOrig1, numOrig2 int, phiE *VC) (*VC, *VC, error) {
	zero := dbm.Bound{Cmp: clock.LT, Value: 0}

	var resetA, resetB clock.Resets
	for i := 1; i <= numOrig1; i++ {
		if dbm1.At(clock.ID(i), clock.Zero) == zero && dbm1.At(clock.Zero, clock.ID(i)) == zero {
			resetA = append(resetA, clock.Reset{X: clock.ID(i + numOrig1), Y: clock.Zero, Value: 0})
			resetB = append(resetB, clock.Reset{X: clock.ID(i + numOrig2), Y: clock.Zero, Value: 0})
		}
	}
	for i := 1; i <= numOrig2; i++ {
		if dbm2.At(clock.ID(i), clock.Zero) == zero && dbm2.At(clock.Zero, clock.ID(i)) == zero {
			resetA = append(resetA, clock.Reset{X: clock.ID(i + numOrig1 + numOrig1), Y: clock.Zero, Value: 0})
			resetB = append(resetB, clock.Reset{X: clock.ID(i + numOrig1 + numOrig2), Y: clock.Zero, Value: 0})
		}
	}

	combined := numOrig1 + numOrig2

	clone1 := dbm1.Clone()
	if _, err := dbm.ConstrainAll(clone1, phiE.GetVC(combined)); err != nil {
		return nil, nil, err
	}
	reverted1, err := dbm.New(dbm1.Dim)
	if err != nil {
		return nil, nil, err
	}
	if dbm.RevertMultipleReset(reverted1, dbm1, clone1, resetA) == dbm.Empty {
		first, err := NewVC(combined)
		if err != nil {
			return nil, nil, err
		}
		return first, nil, nil
	}
	first, err := FromDBM(reverted1, combined)
	if err != nil {
		return nil, nil, err
	}

	clone2 := dbm2.Clone()
	if _, err := dbm.ConstrainAll(clone2, phiE.GetVC(combined)); err != nil {
		return nil, nil, err
	}
	reverted2, err := dbm.New(dbm2.Dim)
	if err != nil {
		return nil, nil, err
	}
	if dbm.RevertMultipleReset(reverted2, dbm2, clone2, resetB) == dbm.Empty {
		second, err := NewVC(combined)
		if err != nil {
			return nil, nil, err
		}
		return first, second, nil
	}
	second, err := FromDBM(reverted2, combined)
	if err != nil {
		return nil, nil, err
	}

	return first, second, nil
}
