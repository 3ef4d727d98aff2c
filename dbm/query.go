package dbm

import (
	"github.com/OneOfOne/xxhash"

	"github.com/ntacheck/ntacheck/clock"
)

// Hash returns a content hash of m, used by the zone-graph allocator's
// hash-consing tables.
func Hash(m *DBM) uint64 {
	h := xxhash.New64()
	buf := make([]byte, 5*len(m.Data))
	for i, b := range m.Data {
		off := i * 5
		buf[off] = byte(b.Cmp)
		v := uint32(b.Value)
		buf[off+1] = byte(v)
		buf[off+2] = byte(v >> 8)
		buf[off+3] = byte(v >> 16)
		buf[off+4] = byte(v >> 24)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

// LexicalCmp returns 0 if a and b are equal, <0 if a is smaller, >0
// otherwise, comparing dimension first and then entries in row-major order.
func LexicalCmp(a *DBM, b *DBM) int {
	if a.Dim != b.Dim {
		return a.Dim - b.Dim
	}
	for i := range a.Data {
		if Less(a.Data[i], b.Data[i]) {
			return -1
		}
		if Less(b.Data[i], a.Data[i]) {
			return 1
		}
	}
	return 0
}

// Gcd returns the greatest common divisor of all non-infinity entries in m,
// or 0 if all non-infinity entries are 0.
func Gcd(m *DBM) int32 {
	var g int32
	for _, b := range m.Data {
		if b.Value >= InfValue || b.Value <= -InfValue {
			continue
		}
		v := b.Value
		if v < 0 {
			v = -v
		}
		g = gcd32(g, v)
	}
	return g
}

func gcd32(a, b int32) int32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ScaleUp multiplies every non-infinity entry of m by factor (factor > 0).
func ScaleUp(m *DBM, factor int32) error {
	if factor <= 0 {
		return ErrBadFactor
	}
	for i, b := range m.Data {
		if b.Value >= InfValue {
			continue
		}
		nv := int64(b.Value) * int64(factor)
		if nv >= int64(InfValue) {
			return ErrArithOverflow
		}
		if nv <= -int64(InfValue) {
			return ErrArithUnderflow
		}
		m.Data[i].Value = int32(nv)
	}
	return nil
}

// ScaleDown divides every non-infinity entry of m by factor (factor > 0,
// and must divide every entry exactly).
func ScaleDown(m *DBM, factor int32) error {
	if factor <= 0 {
		return ErrBadFactor
	}
	for _, b := range m.Data {
		if b.Value >= InfValue {
			continue
		}
		if b.Value%factor != 0 {
			return ErrBadFactor
		}
	}
	for i, b := range m.Data {
		if b.Value >= InfValue {
			continue
		}
		m.Data[i].Value = b.Value / factor
	}
	return nil
}

// HasFixedValue reports whether clock x has a single fixed value in m:
// m[x,0] == -m[0,x] and both are non-strict (<=).
func HasFixedValue(m *DBM, x clock.ID) bool {
	up := m.At(x, clock.Zero)
	lo := m.At(clock.Zero, x)
	return up.Cmp == clock.LE && lo.Cmp == clock.LE && up.Value == -lo.Value
}

// AdmitsIntegerValue reports whether clock x can take an integer value in m.
func AdmitsIntegerValue(m *DBM, x clock.ID) bool {
	up := m.At(x, clock.Zero)
	lo := m.At(clock.Zero, x)
	lowBound := -lo.Value
	highBound := up.Value
	if lowBound > highBound {
		return false
	}
	if lowBound < highBound {
		return true
	}
	// lowBound == highBound: only an integer if both bounds are non-strict.
	return up.Cmp == clock.LE && lo.Cmp == clock.LE
}

// IsSingleValuation reports whether m contains exactly one clock valuation:
// every clock has a fixed value and clock differences are pinned too
// (equivalent, for a tight DBM, to every clock having HasFixedValue).
func IsSingleValuation(m *DBM) bool {
	for i := 1; i < m.Dim; i++ {
		if !HasFixedValue(m, clock.ID(i)) {
			return false
		}
	}
	return true
}

// ConstrainToSingleValuation scales m up (if needed) and narrows it to a
// single integer valuation, returning the scale factor applied. This is
// used by the concrete-counterexample extractor to pick one
// concrete valuation out of a symbolic target zone.
//
// m is first replaced by its integer hull (every strict bound (<,c) read as
// (<=,c-1)). Only when that hull is empty is m scaled by 2 and the hull
// taken again; a zone with no integer point even then is reported as
// ErrNotSingleValuation. Each clock is then pinned to its hull upper bound,
// or to its lower bound when it has no upper bound.
func ConstrainToSingleValuation(m *DBM) (int32, error) {
	factor := int32(1)
	for !IsSingleValuation(m) {
		hull := m.Clone()
		for k, b := range hull.Data {
			if b.Cmp == clock.LT && b.Value < InfValue {
				hull.Data[k] = Bound{Cmp: clock.LE, Value: b.Value - 1}
			}
		}
		if Tighten(hull) != Empty {
			copy(m.Data, hull.Data)
			break
		}
		if factor > 1 {
			return 0, ErrNotSingleValuation
		}
		factor = 2
		if err := ScaleUp(m, factor); err != nil {
			return 0, err
		}
	}
	for i := 1; i < m.Dim; i++ {
		if HasFixedValue(m, clock.ID(i)) {
			continue
		}
		up := m.At(clock.ID(i), clock.Zero)
		v := up.Value
		if v >= InfValue {
			v = -m.At(clock.Zero, clock.ID(i)).Value
		}
		if _, err := Constrain(m, clock.ID(i), clock.Zero, clock.LE, v); err != nil {
			return 0, err
		}
		if _, err := Constrain(m, clock.Zero, clock.ID(i), clock.LE, -v); err != nil {
			return 0, err
		}
	}
	return factor, nil
}

// SatisfyingIntegerValuation extracts the (unique) integer valuation from a
// single-valuation DBM m into clockValues (sized m.Dim, index 0 is always
// 0).
func SatisfyingIntegerValuation(m *DBM, clockValues []int32) error {
	if !IsSingleValuation(m) {
		return ErrNotSingleValuation
	}
	clockValues[0] = 0
	for i := 1; i < m.Dim; i++ {
		clockValues[i] = m.At(clock.ID(i), clock.Zero).Value
	}
	return nil
}

// ClockOrdering is the result of ClockCmp.
type ClockOrdering int

const (
	ClkLT ClockOrdering = iota
	ClkLE
	ClkEQ
	ClkGE
	ClkGT
	ClkIncomparable
)

// ClockCmp compares two clocks' values across every valuation in m.
func ClockCmp(m *DBM, x1, x2 clock.ID) ClockOrdering {
	strictZero := Bound{Cmp: clock.LT, Value: 0}
	lt := LessEq(m.At(x1, x2), strictZero)
	le := LessEq(m.At(x1, x2), LEZero)
	gt := LessEq(m.At(x2, x1), strictZero)
	ge := LessEq(m.At(x2, x1), LEZero)
	switch {
	case le && ge:
		return ClkEQ
	case lt:
		return ClkLT
	case gt:
		return ClkGT
	case le:
		return ClkLE
	case ge:
		return ClkGE
	default:
		return ClkIncomparable
	}
}

// ClockPosition is the result of ClockPositionOf.
type ClockPosition int

const (
	ClkAhead ClockPosition = iota
	ClkBehind
	ClkSynchronized
	ClkSynchronizable
)

// ClockPositionOf reports the relative timeline position of two clocks.
func ClockPositionOf(m *DBM, x1, x2 clock.ID) ClockPosition {
	switch ClockCmp(m, x1, x2) {
	case ClkEQ:
		return ClkSynchronized
	case ClkGT, ClkGE:
		return ClkAhead
	case ClkLT, ClkLE:
		return ClkBehind
	default:
		return ClkSynchronizable
	}
}

// SatisfiesValuation reports whether clockval (sized m.Dim, clockval[0]==0)
// satisfies every constraint in m.
func SatisfiesValuation(m *DBM, clockval []int32) bool {
	n := m.Dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := m.Data[i*n+j]
			if b.Value >= InfValue {
				continue
			}
			diff := clockval[i] - clockval[j]
			if b.Cmp == clock.LE {
				if diff > b.Value {
					return false
				}
			} else if diff >= b.Value {
				return false
			}
		}
	}
	return true
}
