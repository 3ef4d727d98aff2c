package dbm

import "github.com/ntacheck/ntacheck/clock"

// Intersection sets dst to the intersection of a and b (pointwise min, then
// tightened). dst may alias a or b.
func Intersection(dst, a, b *DBM) Status {
	n := a.Dim
	if dst != a && dst != b {
		dst.Dim = n
		if len(dst.Data) != len(a.Data) {
			dst.Data = make([]Bound, len(a.Data))
		}
	}
	for i := 0; i < n*n; i++ {
		dst.Data[i] = Min(a.Data[i], b.Data[i])
	}
	return Tighten(dst)
}

// Disjoint reports whether the intersection of a and b is empty, without
// mutating either argument.
func Disjoint(a, b *DBM) bool {
	tmp := a.Clone()
	return Intersection(tmp, tmp, b) == Status(Empty)
}

// UnionConvex is the return value of ConvexUnion.
type UnionConvex int

const (
	// UnionIsConvex means result holds a DBM representing the union.
	UnionIsConvex UnionConvex = iota
	// UnionIsNotConvex means the union of a and b cannot be represented by
	// a single DBM.
	UnionIsNotConvex
)

// ConvexUnion attempts to represent the union of a and b as a single DBM,
// following Rokicki's test: the union of two zones is convex iff,
// for every entry that would have to be loosened to the pointwise max, that
// loosening is "covered" by the other zone still being included once that
// one entry is relaxed. We use the standard two-pass formulation: the
// candidate result is the pointwise max of a and b; it is exact iff for
// every entry (i,j) where a[i,j] < candidate[i,j], b is already included in
// a after only relaxing (i,j) to b[i,j] (and symmetrically for b).
func ConvexUnion(result, a, b *DBM) UnionConvex {
	n := a.Dim
	if result != a && result != b {
		if len(result.Data) != len(a.Data) {
			result.Data = make([]Bound, len(a.Data))
		}
		result.Dim = n
	}

	cand := make([]Bound, n*n)
	for i := range cand {
		cand[i] = maxBound(a.Data[i], b.Data[i])
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			idx := i*n + j
			if a.Data[idx] != cand[idx] {
				if !coveredByRelaxingOne(b, a, i, j, n) {
					return UnionIsNotConvex
				}
			}
			if b.Data[idx] != cand[idx] {
				if !coveredByRelaxingOne(a, b, i, j, n) {
					return UnionIsNotConvex
				}
			}
		}
	}

	copy(result.Data, cand)
	return UnionIsConvex
}

// coveredByRelaxingOne checks whether "other" is included in "base" once
// base's (i,j) entry alone is relaxed to other's value at (i,j): i.e. for
// every (p,q), other[p,q] <= base[p,q] or (p,q)==(i,j).
func coveredByRelaxingOne(other, base *DBM, i, j, n int) bool {
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == i && q == j {
				continue
			}
			if !LessEq(other.Data[p*n+q], base.Data[p*n+q]) {
				return false
			}
		}
	}
	return true
}

func maxBound(a, b Bound) Bound {
	if Less(a, b) {
		return b
	}
	return a
}

// RevertMultipleReset computes the maximal sub-zone of origZone whose image
// under resets lies in zoneSplit.
//
// Algorithm, following the original source note ("see the TR of Lieb et
// al."): start from zoneSplit, free every clock that resets assigns (so
// its post-reset value no longer constrains the result), then intersect
// with origZone, which restores the pre-state constraints on those clocks.
func RevertMultipleReset(result, origZone *DBM, zoneSplit *DBM, resets clock.Resets) Status {
	Copy(result, zoneSplit)
	for _, r := range resets {
		FreeClock(result, r.X)
	}
	return Intersection(result, result, origZone)
}
