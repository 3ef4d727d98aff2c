package refdbm

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// IsSynchronized reports whether every pair of reference clocks is equal in
// rdbm: rdbm[i,j] <= 0 for every i,j < RefCount.
func IsSynchronized(rdbm *dbm.DBM, r RefClocks) bool {
	for i := 0; i < r.RefCount; i++ {
		for j := 0; j < r.RefCount; j++ {
			if i == j {
				continue
			}
			if dbm.Less(dbm.LEZero, rdbm.At(clock.ID(i), clock.ID(j))) {
				return false
			}
		}
	}
	return true
}

// IsSynchronizedOn restricts IsSynchronized to the reference clocks flagged
// true in mask.
func IsSynchronizedOn(rdbm *dbm.DBM, r RefClocks, mask []bool) bool {
	for i := 0; i < r.RefCount; i++ {
		if !mask[i] {
			continue
		}
		for j := 0; j < r.RefCount; j++ {
			if i == j || !mask[j] {
				continue
			}
			if dbm.Less(dbm.LEZero, rdbm.At(clock.ID(i), clock.ID(j))) {
				return false
			}
		}
	}
	return true
}

// IsSynchronizable reports whether rdbm contains at least one synchronized
// valuation: equivalent to Synchronize not making a clone of rdbm empty.
func IsSynchronizable(rdbm *dbm.DBM, r RefClocks) bool {
	clone := rdbm.Clone()
	return Synchronize(clone, r) != dbm.Status(dbm.Empty)
}

// Synchronize restricts rdbm to its subset of synchronized valuations by
// equating every pair of reference clocks.
func Synchronize(rdbm *dbm.DBM, r RefClocks) dbm.Status {
	for i := 0; i < r.RefCount; i++ {
		for j := i + 1; j < r.RefCount; j++ {
			if _, err := dbm.Constrain(rdbm, clock.ID(i), clock.ID(j), clock.LE, 0); err != nil {
				dbm.SetEmpty(rdbm)
				return dbm.Status(dbm.Empty)
			}
			if dbm.IsEmpty0(rdbm) {
				return dbm.Status(dbm.Empty)
			}
			if _, err := dbm.Constrain(rdbm, clock.ID(j), clock.ID(i), clock.LE, 0); err != nil {
				dbm.SetEmpty(rdbm)
				return dbm.Status(dbm.Empty)
			}
			if dbm.IsEmpty0(rdbm) {
				return dbm.Status(dbm.Empty)
			}
		}
	}
	return dbm.NonEmpty
}

// SynchronizeOn restricts rdbm to valuations synchronized over the reference
// clocks flagged true in syncRefClocks only.
func SynchronizeOn(rdbm *dbm.DBM, r RefClocks, syncRefClocks []bool) dbm.Status {
	for i := 0; i < r.RefCount; i++ {
		if !syncRefClocks[i] {
			continue
		}
		for j := i + 1; j < r.RefCount; j++ {
			if !syncRefClocks[j] {
				continue
			}
			if _, err := dbm.Constrain(rdbm, clock.ID(i), clock.ID(j), clock.LE, 0); err != nil {
				dbm.SetEmpty(rdbm)
				return dbm.Status(dbm.Empty)
			}
			if dbm.IsEmpty0(rdbm) {
				return dbm.Status(dbm.Empty)
			}
			if _, err := dbm.Constrain(rdbm, clock.ID(j), clock.ID(i), clock.LE, 0); err != nil {
				dbm.SetEmpty(rdbm)
				return dbm.Status(dbm.Empty)
			}
			if dbm.IsEmpty0(rdbm) {
				return dbm.Status(dbm.Empty)
			}
		}
	}
	return dbm.NonEmpty
}

// UnboundedSpread is the sentinel spread value meaning "no spread bound".
const UnboundedSpread int32 = -1

// BoundSpread restricts rdbm to valuations where every pair of reference
// clocks differs by at most spread. A spread
// of UnboundedSpread is a no-op.
func BoundSpread(rdbm *dbm.DBM, r RefClocks, spread int32) dbm.Status {
	if spread == UnboundedSpread {
		return dbm.NonEmpty
	}
	for i := 0; i < r.RefCount; i++ {
		for j := 0; j < r.RefCount; j++ {
			if i == j {
				continue
			}
			if _, err := dbm.Constrain(rdbm, clock.ID(i), clock.ID(j), clock.LE, spread); err != nil {
				dbm.SetEmpty(rdbm)
				return dbm.Status(dbm.Empty)
			}
			if dbm.IsEmpty0(rdbm) {
				return dbm.Status(dbm.Empty)
			}
		}
	}
	return dbm.NonEmpty
}

// BoundSpreadOn restricts BoundSpread to the reference clocks flagged true
// in refClocks.
func BoundSpreadOn(rdbm *dbm.DBM, r RefClocks, spread int32, refClocks []bool) dbm.Status {
	if spread == UnboundedSpread {
		return dbm.NonEmpty
	}
	for i := 0; i < r.RefCount; i++ {
		if !refClocks[i] {
			continue
		}
		for j := 0; j < r.RefCount; j++ {
			if i == j || !refClocks[j] {
				continue
			}
			if _, err := dbm.Constrain(rdbm, clock.ID(i), clock.ID(j), clock.LE, spread); err != nil {
				dbm.SetEmpty(rdbm)
				return dbm.Status(dbm.Empty)
			}
			if dbm.IsEmpty0(rdbm) {
				return dbm.Status(dbm.Empty)
			}
		}
	}
	return dbm.NonEmpty
}
