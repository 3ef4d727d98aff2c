package refdbm

import "github.com/ntacheck/ntacheck/clock"

// RefClocks describes the reference-clock layout of a reference DBM:
// variables 0..RefCount-1 are the reference clocks
// themselves (one per process), variables RefCount..Size-1 are system
// clocks, each mapped by RefMap to the reference clock it offsets against.
type RefClocks struct {
	// Size is the total dimension of the reference DBM (refcount + system clocks).
	Size int
	// RefCount is the number of reference clocks (processes).
	RefCount int
	// RefMap maps every variable index to its reference clock. For i <
	// RefCount, RefMap[i] == i (a reference clock is its own reference).
	RefMap []clock.ID
}

// NewRefClocks builds a RefClocks from an explicit per-system-clock
// reference-clock assignment: refOf[k] is the reference clock of system
// clock RefCount+k.
func NewRefClocks(refCount int, refOf []clock.ID) RefClocks {
	size := refCount + len(refOf)
	refMap := make([]clock.ID, size)
	for i := 0; i < refCount; i++ {
		refMap[i] = clock.ID(i)
	}
	for k, ref := range refOf {
		refMap[refCount+k] = ref
	}
	return RefClocks{Size: size, RefCount: refCount, RefMap: refMap}
}

// IsRef reports whether variable x is itself a reference clock.
func (r RefClocks) IsRef(x clock.ID) bool {
	return int(x) < r.RefCount
}

// RefOf returns the reference clock of variable x (x itself, if x is a
// reference clock).
func (r RefClocks) RefOf(x clock.ID) clock.ID {
	return r.RefMap[x]
}
