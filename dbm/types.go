package dbm

import "github.com/ntacheck/ntacheck/clock"

// InfValue is the internal representation of +infinity. It sits well below
// the midpoint of int32 so that two InfValue-scaled bounds can be added
// together (during tighten/constrain) without wrapping.
const InfValue int32 = 1<<29 - 1

// Bound is a tagged pair (Cmp, Value) representing a difference bound
// x - y Cmp Value. The zero Bound is NOT meaningful on its own;
// use the LEZero/LTInfinity constructors or Bound literals below.
type Bound struct {
	Cmp   clock.Cmp
	Value int32
}

// LEZero is the bound <=0, the diagonal value of every tight, non-empty DBM.
var LEZero = Bound{Cmp: clock.LE, Value: 0}

// LTInfinity is the bound <+infinity, the "no constraint" entry.
var LTInfinity = Bound{Cmp: clock.LT, Value: InfValue}

// LTZero is the bound <0, used to mark an empty DBM's [0,0] entry.
var LTZero = Bound{Cmp: clock.LT, Value: 0}

// weaker returns the weaker (looser) of two comparators at equal value:
// LE is weaker than LT (x<=v admits more valuations than x<v).
func weaker(a, b clock.Cmp) clock.Cmp {
	if a == clock.LE || b == clock.LE {
		return clock.LE
	}
	return clock.LT
}

// Less reports whether bound a is strictly smaller than bound b in the
// total order over bounds: ordered by Value, ties broken by Cmp with <=
// bigger than < (i.e. (v,<=) > (v,<)).
func Less(a, b Bound) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	return a.Cmp == clock.LT && b.Cmp == clock.LE
}

// LessEq reports whether a <= b in the bound order.
func LessEq(a, b Bound) bool {
	return a == b || Less(a, b)
}

// Min returns the smaller of a, b.
func Min(a, b Bound) Bound {
	if Less(b, a) {
		return b
	}
	return a
}

// Add implements difference-bound addition:
// (c1,v1)+(c2,v2) = (min(c1,c2), v1+v2); +infinity absorbs.
func Add(a, b Bound) Bound {
	if a.Value >= InfValue || b.Value >= InfValue {
		return LTInfinity
	}
	sum := a.Value + b.Value
	if sum >= InfValue {
		return LTInfinity
	}
	cmp := clock.LE
	if a.Cmp == clock.LT || b.Cmp == clock.LT {
		cmp = clock.LT
	}
	return Bound{Cmp: cmp, Value: sum}
}

// DBM is a dim*dim array of Bound, row-major: entry (i,j) is at
// Data[i*Dim+j] and encodes x_i - x_j Cmp Value.
type DBM struct {
	Dim  int
	Data []Bound
}

// New allocates a DBM of the given dimension. The returned DBM's contents
// are the zero Bound everywhere (NOT a valid zone); callers must initialise
// it with Universal, UniversalPositive, Zero or SetEmpty before use.
func New(dim int) (*DBM, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	return &DBM{Dim: dim, Data: make([]Bound, dim*dim)}, nil
}

// At returns dbm[i,j].
func (m *DBM) At(i, j clock.ID) Bound {
	return m.Data[int(i)*m.Dim+int(j)]
}

// Set sets dbm[i,j] = b.
func (m *DBM) Set(i, j clock.ID, b Bound) {
	m.Data[int(i)*m.Dim+int(j)] = b
}

// Clone returns a deep copy of m.
func (m *DBM) Clone() *DBM {
	out := &DBM{Dim: m.Dim, Data: make([]Bound, len(m.Data))}
	copy(out.Data, m.Data)
	return out
}

// Copy copies src into dst in place; both must share the same dimension.
func Copy(dst, src *DBM) error {
	if dst.Dim != src.Dim {
		return ErrBadDimension
	}
	copy(dst.Data, src.Data)
	return nil
}

func checkClock(m *DBM, x clock.ID) error {
	if int(x) >= m.Dim {
		return ErrClockOutOfRange
	}
	return nil
}
