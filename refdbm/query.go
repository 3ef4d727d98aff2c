package refdbm

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// Hash returns a content hash of rdbm.
func Hash(rdbm *dbm.DBM, r RefClocks) uint64 {
	return dbm.Hash(rdbm)
}

// IsEqual reports whether two reference DBMs of the same layout are equal.
func IsEqual(a, b *dbm.DBM, r RefClocks) bool {
	return dbm.IsEqual(a, b)
}

// IsLe reports whether a is included in b.
func IsLe(a, b *dbm.DBM, r RefClocks) bool {
	return dbm.IsLe(a, b)
}

// LexicalCmp gives a total (dimension-then-entrywise) order over reference DBMs.
func LexicalCmp(a, b *dbm.DBM) int {
	return dbm.LexicalCmp(a, b)
}

// offsetBounds expands a per-offset-clock L/U array into the dbm package's
// per-variable-ID convention (indexed 0..Size-2, for clock IDs 1..Size-1),
// leaving reference clocks (other than clock 0) at clock.NoBound since they
// carry no individual clock bound of their own.
func offsetBounds(r RefClocks, lu []int32) []int32 {
	out := make([]int32, r.Size-1)
	for i := range out {
		out[i] = clock.NoBound
	}
	for k, v := range lu {
		id := r.RefCount + k
		if id >= 1 && id <= r.Size-1 {
			out[id-1] = v
		}
	}
	return out
}

// IsALUStarLe checks inclusion w.r.t. the aLU abstraction lifted to
// reference DBMs: l and u give bounds for
// offset (system) clocks only, indexed from the first offset clock.
func IsALUStarLe(a, b *dbm.DBM, r RefClocks, l, u []int32) bool {
	return dbm.IsALULe(a, b, offsetBounds(r, l), offsetBounds(r, u))
}

// IsAMStarLe is the aM specialisation of IsALUStarLe.
func IsAMStarLe(a, b *dbm.DBM, r RefClocks, m []int32) bool {
	return dbm.IsAMLe(a, b, offsetBounds(r, m))
}

// IsSyncALULe checks aLU-inclusion restricted to synchronized valuations of
// a and b: synchronize independent copies of
// a and b first, then apply the ordinary aLU* check.
func IsSyncALULe(a, b *dbm.DBM, r RefClocks, l, u []int32) bool {
	sa := a.Clone()
	sb := b.Clone()
	if Synchronize(sa, r) == dbm.Status(dbm.Empty) {
		return true
	}
	if Synchronize(sb, r) == dbm.Status(dbm.Empty) {
		return false
	}
	return IsALUStarLe(sa, sb, r, l, u)
}

// IsSyncAMLe is the aM specialisation of IsSyncALULe.
func IsSyncAMLe(a, b *dbm.DBM, r RefClocks, m []int32) bool {
	return IsSyncALULe(a, b, r, m, m)
}
