package refdbm

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// Universal sets rdbm to the universal reference DBM: delegates entirely to
// dbm.Universal since reference clocks are ordinary variables at this stage
// (no synchronization is implied by the universal DBM).
func Universal(rdbm *dbm.DBM, r RefClocks) {
	dbm.Universal(rdbm)
}

// UniversalPositive restricts every variable (reference clocks included) to
// be non-negative.
func UniversalPositive(rdbm *dbm.DBM, r RefClocks) {
	dbm.UniversalPositive(rdbm)
}

// Empty marks rdbm empty.
func Empty(rdbm *dbm.DBM, r RefClocks) {
	dbm.SetEmpty(rdbm)
}

// Zero sets rdbm to the single valuation where every variable is 0.
func Zero(rdbm *dbm.DBM, r RefClocks) {
	dbm.Zero(rdbm)
}

// IsEmpty0 is the fast emptiness check.
func IsEmpty0(rdbm *dbm.DBM, r RefClocks) bool {
	return dbm.IsEmpty0(rdbm)
}

// IsUniversal reports whether rdbm is exactly the universal reference DBM.
func IsUniversal(rdbm *dbm.DBM, r RefClocks) bool {
	return dbm.IsUniversal(rdbm)
}

// IsPositive reports whether every variable is non-negative in rdbm.
func IsPositive(rdbm *dbm.DBM, r RefClocks) bool {
	return dbm.IsPositive(rdbm)
}

// IsUniversalPositive combines IsUniversal and IsPositive.
func IsUniversalPositive(rdbm *dbm.DBM, r RefClocks) bool {
	return dbm.IsUniversalPositive(rdbm)
}

// IsConsistent reports whether every diagonal entry of rdbm is <= 0.
func IsConsistent(rdbm *dbm.DBM, r RefClocks) bool {
	return dbm.IsConsistent(rdbm)
}

// IsTight reports whether rdbm satisfies the triangle inequality.
func IsTight(rdbm *dbm.DBM, r RefClocks) bool {
	return dbm.IsTight(rdbm)
}

// IsOpenUp reports whether every entry rdbm[x,t] (x != t) of every
// reference clock t's column is already infinite, the form
// AsynchronousOpenUp leaves, i.e. rdbm admits letting time elapse freely on
// every process.
func IsOpenUp(rdbm *dbm.DBM, r RefClocks) bool {
	for t := 0; t < r.RefCount; t++ {
		for x := 0; x < rdbm.Dim; x++ {
			if x != t && rdbm.At(clock.ID(x), clock.ID(t)) != dbm.LTInfinity {
				return false
			}
		}
	}
	return true
}

// Tighten applies Floyd-Warshall to rdbm.
func Tighten(rdbm *dbm.DBM, r RefClocks) dbm.Status {
	return dbm.Tighten(rdbm)
}
