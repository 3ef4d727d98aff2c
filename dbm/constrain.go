package dbm

import "github.com/ntacheck/ntacheck/clock"

// Constrain intersects m with the difference constraint x - y Cmp value.
// If m[x,y] is already tighter than the new bound this is a
// no-op; otherwise the entry is replaced and propagated via TightenEdge.
//
// Preconditions: m is consistent and tight; x != y; 0 <= x,y < m.Dim.
func Constrain(m *DBM, x, y clock.ID, cmp clock.Cmp, value int32) (Status, error) {
	if err := checkClock(m, x); err != nil {
		return Status(Empty), err
	}
	if err := checkClock(m, y); err != nil {
		return Status(Empty), err
	}
	if x == y {
		return Status(Empty), ErrSameClock
	}
	if value >= InfValue || value <= -InfValue {
		return Status(Empty), ErrValueOverflow
	}

	nb := Bound{Cmp: cmp, Value: value}
	if LessEq(m.At(x, y), nb) {
		return NonEmpty, nil
	}
	m.Set(x, y, nb)
	st := TightenEdge(m, x, y)
	if st == Status(Empty) {
		return Status(Empty), nil
	}
	return NonEmpty, nil
}

// ConstrainC intersects m with a single clock.Constraint.
func ConstrainC(m *DBM, c clock.Constraint) (Status, error) {
	return Constrain(m, c.X, c.Y, c.Cmp, c.Value)
}

// ConstrainAll intersects m with every constraint in cs, in order, stopping
// early (returning Empty) as soon as the zone becomes empty.
func ConstrainAll(m *DBM, cs clock.Constraints) (Status, error) {
	for _, c := range cs {
		st, err := ConstrainC(m, c)
		if err != nil {
			return Status(Empty), err
		}
		if st == Status(Empty) {
			return Status(Empty), nil
		}
	}
	return NonEmpty, nil
}

// IsEqual reports whether two tight DBMs of the same dimension are equal.
func IsEqual(a, b *DBM) bool {
	if a.Dim != b.Dim {
		return false
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false
		}
	}
	return true
}

// IsLe reports whether a is included in b (pointwise a[i,j] <= b[i,j]).
func IsLe(a, b *DBM) bool {
	if a.Dim != b.Dim {
		return false
	}
	for i := range a.Data {
		if !LessEq(a.Data[i], b.Data[i]) {
			return false
		}
	}
	return true
}

// Satisfies reports whether every valuation in m satisfies the constraint
// x - y Cmp value, without allocating: this holds iff intersecting m with
// the negation of the constraint is empty, which is checked directly by
// comparing the bound m[x,y] with (cmp, value) rather than by actually
// mutating a copy.
func Satisfies(m *DBM, x, y clock.ID, cmp clock.Cmp, value int32) bool {
	// m |= x - y # value  iff  m[x,y] <= (cmp, value).
	return LessEq(m.At(x, y), Bound{Cmp: cmp, Value: value})
}

// SatisfiesC reports whether every valuation in m satisfies clock
// constraint c.
func SatisfiesC(m *DBM, c clock.Constraint) bool {
	return Satisfies(m, c.X, c.Y, c.Cmp, c.Value)
}
