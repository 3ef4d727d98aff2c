package dbm

import "github.com/ntacheck/ntacheck/clock"

// Tighten applies Floyd-Warshall to m, seen as a weighted graph over clocks
// where the weight of edge i->j is m[i,j]. Loop order is fixed (k -> i -> j)
// for deterministic accumulation.
//
// Returns Empty if a negative cycle appears on some clock's diagonal (in
// which case [0,0] is set below LEZero and m is left NOT tight); returns
// NonEmpty and leaves m tight otherwise.
func Tighten(m *DBM) Status {
	n := m.Dim
	data := m.Data

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik.Value >= InfValue {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj.Value >= InfValue {
					continue
				}
				cand := Add(ik, kj)
				if Less(cand, data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if Less(data[i*n+i], LEZero) {
			SetEmpty(m)
			return Status(Empty)
		}
	}
	return NonEmpty
}

// TightenEdge tightens m with respect to a single updated entry m[x,y] (the
// edge x->y): every entry m[u,v] is relaxed through u->x->y->v. O(dim^2),
// used after Constrain touches exactly one entry.
//
// Returns Empty if a negative diagonal cycle appears (then [0,0] is marked
// and m is left not tight), MayBeEmpty otherwise: unlike Tighten, the caller
// is responsible for knowing the rest of m was already tight, so MayBeEmpty
// does not by itself guarantee non-emptiness.
func TightenEdge(m *DBM, x, y clock.ID) Status {
	n := m.Dim
	data := m.Data
	xy := data[int(x)*n+int(y)]

	for u := 0; u < n; u++ {
		ux := data[u*n+int(x)]
		if ux.Value >= InfValue {
			continue
		}
		uxy := Add(ux, xy)
		for v := 0; v < n; v++ {
			yv := data[int(y)*n+v]
			if yv.Value >= InfValue {
				continue
			}
			cand := Add(uxy, yv)
			if Less(cand, data[u*n+v]) {
				data[u*n+v] = cand
			}
		}
	}

	for i := 0; i < n; i++ {
		if Less(data[i*n+i], LEZero) {
			SetEmpty(m)
			return Status(Empty)
		}
	}
	return MayBeEmpty
}

// IsTight reports whether m satisfies the triangle inequality
// m[i,j] <= m[i,k]+m[k,j] for all i,j,k.
func IsTight(m *DBM) bool {
	n := m.Dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij := m.Data[i*n+j]
			for k := 0; k < n; k++ {
				cand := Add(m.Data[i*n+k], m.Data[k*n+j])
				if Less(cand, ij) {
					return false
				}
			}
		}
	}
	return true
}
