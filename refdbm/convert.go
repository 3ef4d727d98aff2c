package refdbm

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// ToDbm extracts an ordinary DBM from a synchronized reference DBM:
// the shared reference clock value becomes the zero clock,
// and every system clock's offset against its own reference clock becomes
// its value in out.
//
// Preconditions: rdbm is non-empty, consistent, tight and synchronized;
// out.Dim == r.Size - r.RefCount + 1.
func ToDbm(rdbm *dbm.DBM, r RefClocks, out *dbm.DBM) error {
	wantDim := r.Size - r.RefCount + 1
	if out.Dim != wantDim {
		return dbm.ErrBadDimension
	}
	dbm.Universal(out)

	// offsetIndex[x] maps reference-DBM variable x (a system clock, x >=
	// RefCount) to its 1-based index in out; reference clocks all collapse
	// onto out's zero clock.
	mapIdx := func(x int) clock.ID {
		if x < r.RefCount {
			return clock.Zero
		}
		return clock.ID(x - r.RefCount + 1)
	}

	for i := 0; i < r.Size; i++ {
		oi := mapIdx(i)
		for j := 0; j < r.Size; j++ {
			oj := mapIdx(j)
			if oi == oj {
				continue
			}
			b := rdbm.At(clock.ID(i), clock.ID(j))
			if dbm.Less(b, out.At(oi, oj)) {
				out.Set(oi, oj, b)
			}
		}
	}
	dbm.Tighten(out)
	return nil
}
