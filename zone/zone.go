package zone

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// Zone owns a DBM of a fixed dimension. It is always
// constructed non-nil and non-aliased: New and Clone each allocate a fresh
// underlying DBM, matching the pool-allocated-but-uniquely-owned lifecycle
// the zone-graph allocator (package zg) expects before it hash-conses a
// state into a shared, reference-counted zone.
type Zone struct {
	DBM *dbm.DBM
}

// New allocates a zone of the given dimension, initialised to the universal
// positive zone.
func New(dim int) (*Zone, error) {
	m, err := dbm.New(dim)
	if err != nil {
		return nil, err
	}
	dbm.UniversalPositive(m)
	return &Zone{DBM: m}, nil
}

// Dim returns the zone's dimension.
func (z *Zone) Dim() int {
	return z.DBM.Dim
}

// Clone returns an independent deep copy of z.
func (z *Zone) Clone() *Zone {
	return &Zone{DBM: z.DBM.Clone()}
}

// MakeUniversal resets z to the universal zone.
func (z *Zone) MakeUniversal() {
	dbm.Universal(z.DBM)
}

// MakeUniversalPositive resets z to the universal positive zone.
func (z *Zone) MakeUniversalPositive() {
	dbm.UniversalPositive(z.DBM)
}

// IsEmpty reports whether z contains no valuation.
func (z *Zone) IsEmpty() bool {
	return dbm.IsEmpty0(z.DBM)
}

// IsUniversalPositive reports whether z is exactly the universal positive zone.
func (z *Zone) IsUniversalPositive() bool {
	return dbm.IsUniversalPositive(z.DBM)
}

// Equal reports whether z and other denote the same zone, treating all
// empty zones of matching dimension as equal regardless of their internal
// representation.
func (z *Zone) Equal(other *Zone) bool {
	if z.Dim() != other.Dim() {
		return false
	}
	ez, eo := z.IsEmpty(), other.IsEmpty()
	if ez || eo {
		return ez && eo
	}
	return dbm.IsEqual(z.DBM, other.DBM)
}

// Le reports whether z is included in other ("operator<=").
func (z *Zone) Le(other *Zone) bool {
	if z.Dim() != other.Dim() {
		return false
	}
	if z.IsEmpty() {
		return true
	}
	if other.IsEmpty() {
		return false
	}
	return dbm.IsLe(z.DBM, other.DBM)
}

// IsAMLe checks aM-inclusion against other.
func (z *Zone) IsAMLe(other *Zone, m []int32) bool {
	if z.IsEmpty() {
		return true
	}
	if other.IsEmpty() {
		return false
	}
	return dbm.IsAMLe(z.DBM, other.DBM, m)
}

// IsALULe checks aLU-inclusion against other.
func (z *Zone) IsALULe(other *Zone, l, u []int32) bool {
	if z.IsEmpty() {
		return true
	}
	if other.IsEmpty() {
		return false
	}
	return dbm.IsALULe(z.DBM, other.DBM, l, u)
}

// LexicalCmp gives a total order over zones, used by the explored-state
// stores that need a deterministic iteration order.
func (z *Zone) LexicalCmp(other *Zone) int {
	return dbm.LexicalCmp(z.DBM, other.DBM)
}

// Hash returns a content hash of z.
func (z *Zone) Hash() uint64 {
	return dbm.Hash(z.DBM)
}

// Output renders z as a conjunction of clock constraints.
func (z *Zone) Output(name func(clock.ID) string) string {
	return dbm.Output(z.DBM, name)
}

// ToDbm copies z's DBM into dst (which must share z's dimension).
func (z *Zone) ToDbm(dst *dbm.DBM) error {
	return dbm.Copy(dst, z.DBM)
}

// Belongs reports whether clockval (sized z.Dim(), clockval[0]==0) is a
// valuation of z.
func (z *Zone) Belongs(clockval []int32) bool {
	return dbm.SatisfiesValuation(z.DBM, clockval)
}
