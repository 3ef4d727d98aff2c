package dbm

import "github.com/ntacheck/ntacheck/clock"

// ResetToValue applies x := value.
// Preconditions: m consistent & tight; value >= 0.
func ResetToValue(m *DBM, x clock.ID, value int32) {
	n := m.Dim
	for i := 0; i < n; i++ {
		if i == int(x) {
			continue
		}
		m.Data[int(x)*n+i] = Add(Bound{Cmp: clock.LE, Value: value}, m.Data[0*n+i])
		m.Data[i*n+int(x)] = Add(m.Data[i*n+0], Bound{Cmp: clock.LE, Value: -value})
	}
	m.Set(x, x, LEZero)
}

// ResetToClock applies x := y.
func ResetToClock(m *DBM, x, y clock.ID) {
	n := m.Dim
	for i := 0; i < n; i++ {
		if i == int(x) {
			continue
		}
		m.Data[int(x)*n+i] = m.Data[int(y)*n+i]
		m.Data[i*n+int(x)] = m.Data[i*n+int(y)]
	}
	m.Set(x, x, LEZero)
	m.Set(x, y, LEZero)
	m.Set(y, x, LEZero)
}

// ResetToSum applies x := y + value, value >= 0.
func ResetToSum(m *DBM, x, y clock.ID, value int32) {
	n := m.Dim
	for i := 0; i < n; i++ {
		if i == int(x) {
			continue
		}
		m.Data[int(x)*n+i] = Add(Bound{Cmp: clock.LE, Value: value}, m.Data[int(y)*n+i])
		m.Data[i*n+int(x)] = Add(m.Data[i*n+int(y)], Bound{Cmp: clock.LE, Value: -value})
	}
	m.Set(x, x, LEZero)
	m.Set(x, y, Bound{Cmp: clock.LE, Value: value})
	m.Set(y, x, Bound{Cmp: clock.LE, Value: -value})
}

// Reset dispatches on y and value: y==Zero resets to a constant, value==0
// resets to another clock, both non-zero resets to a sum.
func Reset(m *DBM, x, y clock.ID, value int32) {
	switch {
	case y == clock.Zero:
		ResetToValue(m, x, value)
	case value == 0:
		ResetToClock(m, x, y)
	default:
		ResetToSum(m, x, y, value)
	}
}

// ResetAll applies a sequence of resets, in order.
func ResetAll(m *DBM, rs clock.Resets) {
	for _, r := range rs {
		Reset(m, r.X, r.Y, r.Value)
	}
}

// FreeClock removes all constraints on clock x: m becomes the set of
// valuations v such that v[x:=d] belongs to the original m for some d. This
// is the reverse of a reset to a constant/clock.
func FreeClock(m *DBM, x clock.ID) {
	n := m.Dim
	for i := 0; i < n; i++ {
		if i == int(x) {
			continue
		}
		m.Data[int(x)*n+i] = LTInfinity
		m.Data[i*n+int(x)] = LTInfinity
	}
	m.Set(x, x, LEZero)
	m.Set(x, clock.Zero, LTInfinity)
	m.Set(clock.Zero, x, LEZero)
	Tighten(m)
}

// FreeClockReset undoes a single reset.
func FreeClockReset(m *DBM, r clock.Reset) {
	FreeClock(m, r.X)
}

// FreeClockAll undoes a sequence of resets, each independently.
func FreeClockAll(m *DBM, rs clock.Resets) {
	for _, r := range rs {
		FreeClockReset(m, r)
	}
}
