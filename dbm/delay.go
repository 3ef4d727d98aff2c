package dbm

// OpenUp removes all upper bounds on clocks (lets time elapse): [i,0] :=
// LTInfinity for every clock i>0. Tight.
func OpenUp(m *DBM) {
	n := m.Dim
	for i := 1; i < n; i++ {
		m.Data[i*n+0] = LTInfinity
	}
}

// OpenDown is the reverse delay: [0,j] := LEZero for every clock j, i.e. the
// set of valuations v such that v+d belongs to the original m for some
// delay d >= 0.
func OpenDown(m *DBM) {
	n := m.Dim
	for j := 0; j < n; j++ {
		m.Data[0*n+j] = LEZero
	}
}

// AsynchronousOpenUp is OpenUp restricted to a subset of clocks (used by the
// refdbm kernel's asynchronous delay and, indirectly, by zone graphs that
// only let some processes' clocks elapse). mask[i] true means clock i is
// allowed to grow unboundedly.
func AsynchronousOpenUp(m *DBM, mask []bool) {
	n := m.Dim
	for i := 1; i < n; i++ {
		if mask[i] {
			m.Data[i*n+0] = LTInfinity
		}
	}
}
