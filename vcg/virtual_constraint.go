package vcg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/zone"
)

// VC is a virtual constraint: a tight-or-empty DBM of
// dimension numVirtualClocks+1, modelled as a zone over the virtual
// clocks alone.
type VC struct {
	DBM *dbm.DBM
}

// NewVC allocates the universal VC over numVirtual virtual clocks.
func NewVC(numVirtual int) (*VC, error) {
	m, err := dbm.New(numVirtual + 1)
	if err != nil {
		return nil, err
	}
	dbm.Universal(m)
	return &VC{DBM: m}, nil
}

// NumVirtualClocks returns the number of virtual clocks vc is defined over.
func (vc *VC) NumVirtualClocks() int { return vc.DBM.Dim - 1 }

// Dim returns vc's DBM dimension (NumVirtualClocks()+1).
func (vc *VC) Dim() int { return vc.DBM.Dim }

// Clone returns an independent copy of vc.
func (vc *VC) Clone() *VC { return &VC{DBM: vc.DBM.Clone()} }

// IsEmpty reports whether vc denotes no valuation.
func (vc *VC) IsEmpty() bool { return dbm.IsEmpty0(vc.DBM) }

// FromDBM extracts the virtual constraint embedded in src at its last
// numVirtual clocks.
func FromDBM(src *dbm.DBM, numVirtual int) (*VC, error) {
	dim := src.Dim
	if dim <= numVirtual {
		return nil, ErrBadDimension
	}
	vc, err := NewVC(numVirtual)
	if err != nil {
		return nil, err
	}
	indices := make([]clock.ID, 0, numVirtual+1)
	indices = append(indices, clock.Zero)
	for i := dim - numVirtual; i < dim; i++ {
		indices = append(indices, clock.ID(i))
	}
	for i, si := range indices {
		for j, sj := range indices {
			vc.DBM.Set(clock.ID(i), clock.ID(j), src.At(si, sj))
		}
	}
	return vc, nil
}

// FromZone is FromDBM over a zone.Zone's underlying DBM.
func FromZone(z *zone.Zone, numVirtual int) (*VC, error) {
	return FromDBM(z.DBM, numVirtual)
}

// ToDBM returns an independent copy of vc's DBM.
func (vc *VC) ToDBM() *dbm.DBM { return vc.DBM.Clone() }

// GetVC renders vc as a conjunction of constraints over a larger zone's
// clock numbering, where virtual clock i (1..NumVirtualClocks()) maps to
// clock id origOffset+i in that zone.
func (vc *VC) GetVC(origOffset int) clock.Constraints {
	n := vc.NumVirtualClocks()
	var out clock.Constraints
	for i := 1; i <= n; i++ {
		cur := clock.ID(origOffset + i)
		b0i := vc.DBM.At(clock.Zero, clock.ID(i))
		bi0 := vc.DBM.At(clock.ID(i), clock.Zero)
		out = append(out,
			clock.Constraint{X: clock.Zero, Y: cur, Cmp: b0i.Cmp, Value: b0i.Value},
			clock.Constraint{X: cur, Y: clock.Zero, Cmp: bi0.Cmp, Value: bi0.Value},
		)
		for j := i + 1; j <= n; j++ {
			second := clock.ID(origOffset + j)
			bji := vc.DBM.At(clock.ID(j), clock.ID(i))
			bij := vc.DBM.At(clock.ID(i), clock.ID(j))
			out = append(out,
				clock.Constraint{X: second, Y: cur, Cmp: bji.Cmp, Value: bji.Value},
				clock.Constraint{X: cur, Y: second, Cmp: bij.Cmp, Value: bij.Value},
			)
		}
	}
	return out
}

// LogicAnd intersects vc and other, both of the same dimension.
func (vc *VC) LogicAnd(other *VC) (*VC, dbm.Status, error) {
	if vc.Dim() != other.Dim() {
		return nil, dbm.Empty, ErrDimensionMismatch
	}
	result, err := NewVC(vc.NumVirtualClocks())
	if err != nil {
		return nil, dbm.Empty, err
	}
	st := dbm.Intersection(result.DBM, vc.DBM, other.DBM)
	return result, st, nil
}

// LogicAndZone embeds vc's constraints (at origOffset) into a clone of z
// and tightens.
func (vc *VC) LogicAndZone(z *zone.Zone, origOffset int) (*zone.Zone, dbm.Status, error) {
	out := z.Clone()
	st, err := dbm.ConstrainAll(out.DBM, vc.GetVC(origOffset))
	return out, st, err
}

// invertBound returns the complementary bound of b: the negation of
// "x - y Cmp Value" is "y - x Cmp' -Value" with Cmp' the opposite strictness.
func invertBound(b dbm.Bound) dbm.Bound {
	if b.Cmp == clock.LE {
		return dbm.Bound{Cmp: clock.LT, Value: -b.Value}
	}
	return dbm.Bound{Cmp: clock.LE, Value: -b.Value}
}

// addNegSingle appends to result the disjunct of cur ∧ ¬(entry (i,j) of
// upperBound) when that disjunct is non-trivial, mirroring
// virtual_constraint.cc's add_neg_single.
func addNegSingle(result *Container, cur *VC, i, j int, upperBound dbm.Bound) {
	if i == 0 && dbm.Less(dbm.LEZero, upperBound) {
		upperBound = dbm.LEZero
	}
	curIJ := cur.DBM.At(clock.ID(i), clock.ID(j))
	if !dbm.Less(curIJ, upperBound) {
		return
	}
	toInsert := cur.Clone()
	toInsert.DBM.Set(clock.ID(j), clock.ID(i), invertBound(curIJ))
	toInsert.DBM.Set(clock.ID(i), clock.ID(j), upperBound)
	result.zones = append(result.zones, toInsert)
}

func addNeg(result *Container, cur *VC, i, j int, maxIJ, maxJI dbm.Bound) {
	addNegSingle(result, cur, i, j, maxIJ)
	addNegSingle(result, cur, j, i, maxJI)
}

// negHelper computes the disjoint union representing upperBounds ∧ ¬vc.
func (vc *VC) negHelper(upperBounds *dbm.DBM) *Container {
	dim := vc.Dim()
	inter := &Container{dim: dim}

	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			prior := append([]*VC(nil), inter.zones...)
			maxIJ := upperBounds.At(clock.ID(i), clock.ID(j))
			maxJI := upperBounds.At(clock.ID(j), clock.ID(i))

			addNeg(inter, vc, i, j, maxIJ, maxJI)
			for _, h := range prior {
				addNeg(inter, h, i, j, maxIJ, maxJI)
			}
		}
	}

	result := &Container{dim: dim}
	for _, z := range inter.zones {
		if dbm.Tighten(z.DBM) == dbm.Empty {
			continue
		}
		if dbm.Intersection(z.DBM, z.DBM, upperBounds) == dbm.Empty {
			continue
		}
		result.zones = append(result.zones, z)
	}
	result.Compress()
	return result
}

// NegLogicAnd returns other ∧ ¬vc as a compressed disjoint union.
func (vc *VC) NegLogicAnd(other *VC) *Container {
	return vc.negHelper(other.DBM)
}

// GenerateSynchronizedZones materialises a zone on each side of a pair by
// identifying the original clocks with the corresponding virtual clocks.
func (vc *VC) GenerateSynchronizedZones(numOrigFirst, numOrigSecond int) (*zone.Zone, *zone.Zone, error) {
	dimFirst := numOrigFirst + vc.Dim()
	mFirst, err := dbm.New(dimFirst)
	if err != nil {
		return nil, nil, err
	}
	dbm.Universal(mFirst)
	if _, err := dbm.ConstrainAll(mFirst, vc.GetVC(numOrigFirst)); err != nil {
		return nil, nil, err
	}
	for i := 1; i <= numOrigFirst; i++ {
		dbm.ResetToClock(mFirst, clock.ID(i), clock.ID(i+numOrigFirst))
	}
	first := &zone.Zone{DBM: mFirst}

	dimSecond := numOrigSecond + vc.Dim()
	mSecond, err := dbm.New(dimSecond)
	if err != nil {
		return nil, nil, err
	}
	dbm.Universal(mSecond)
	if _, err := dbm.ConstrainAll(mSecond, vc.GetVC(numOrigSecond)); err != nil {
		return nil, nil, err
	}
	for i := 1; i <= numOrigSecond; i++ {
		dbm.ResetToClock(mSecond, clock.ID(i), clock.ID(i+numOrigSecond))
	}
	second := &zone.Zone{DBM: mSecond}

	return first, second, nil
}
