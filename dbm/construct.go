package dbm

import "github.com/ntacheck/ntacheck/clock"

// Universal sets m to the universal zone: every off-diagonal entry is
// <+infinity, every diagonal entry is <=0. Tight.
func Universal(m *DBM) {
	for i := 0; i < m.Dim; i++ {
		for j := 0; j < m.Dim; j++ {
			if i == j {
				m.Data[i*m.Dim+j] = LEZero
			} else {
				m.Data[i*m.Dim+j] = LTInfinity
			}
		}
	}
}

// UniversalPositive sets m to the universal zone restricted to x>=0 for
// every clock x (i.e. Universal plus [0,i] = LEZero for i>0). Tight.
func UniversalPositive(m *DBM) {
	Universal(m)
	for i := 1; i < m.Dim; i++ {
		m.Data[0*m.Dim+i] = LEZero
	}
}

// Zero sets m to the zone containing only the all-zero valuation: every
// entry is LEZero. Tight.
func Zero(m *DBM) {
	for i := range m.Data {
		m.Data[i] = LEZero
	}
}

// SetEmpty sets m to the empty zone by marking [0,0] below LEZero. The
// resulting DBM is deliberately NOT tight: empty DBMs cannot be tightened
// (there is no shortest path from a clock to itself once a negative cycle
// exists). Named apart from the Empty Status constant it produces.
func SetEmpty(m *DBM) {
	m.Set(clock.Zero, clock.Zero, LTZero)
}

// IsEmpty0 is the fast emptiness check: it only inspects
// [0,0], and is sound for any DBM produced by this package (every mutator
// here sets [0,0] below LEZero exactly when it produces EMPTY).
func IsEmpty0(m *DBM) bool {
	return Less(m.At(clock.Zero, clock.Zero), LEZero)
}

// IsConsistent reports whether every diagonal entry of m is <= LEZero.
func IsConsistent(m *DBM) bool {
	for i := 0; i < m.Dim; i++ {
		if Less(LEZero, m.Data[i*m.Dim+i]) {
			return false
		}
	}
	return true
}

// IsUniversal reports whether m is exactly the universal zone.
func IsUniversal(m *DBM) bool {
	for i := 0; i < m.Dim; i++ {
		for j := 0; j < m.Dim; j++ {
			want := LTInfinity
			if i == j {
				want = LEZero
			}
			if m.Data[i*m.Dim+j] != want {
				return false
			}
		}
	}
	return true
}

// IsPositive reports whether every valuation in m has every clock >= 0,
// i.e. [0,i] <= LEZero for every clock i (a looser bound than LEZero would
// mean x_i < 0 is still permitted; IsPositive asks whether that bound is at
// most LEZero, matching the semantics of "0 - x_i <= 0").
func IsPositive(m *DBM) bool {
	for i := 1; i < m.Dim; i++ {
		if Less(LEZero, m.Data[0*m.Dim+i]) {
			return false
		}
	}
	return true
}

// IsUniversalPositive is an efficient combination of IsUniversal and
// IsPositive.
func IsUniversalPositive(m *DBM) bool {
	for i := 0; i < m.Dim; i++ {
		for j := 0; j < m.Dim; j++ {
			if i == j {
				if m.Data[i*m.Dim+j] != LEZero {
					return false
				}
				continue
			}
			if i == 0 {
				if m.Data[j] != LEZero {
					return false
				}
				continue
			}
			if m.Data[i*m.Dim+j] != LTInfinity {
				return false
			}
		}
	}
	return true
}

// ContainsZero reports whether m contains the all-zero valuation: every
// off-diagonal bound x_i - x_j # c must admit 0, i.e. every [i,j] >= LEZero.
//
// Precondition: m is consistent and tight.
func ContainsZero(m *DBM) bool {
	for i := 0; i < m.Dim; i++ {
		for j := 0; j < m.Dim; j++ {
			if i != j && Less(m.Data[i*m.Dim+j], LEZero) {
				return false
			}
		}
	}
	return true
}
