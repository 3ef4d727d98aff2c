package bisim

import (
	"github.com/dchest/siphash"

	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/vcg"
)

// SubsetMode selects how PairStore decides that a pair of virtual-clock
// states has already been explored, trading precision for speed.
type SubsetMode int

const (
	// SubsetEquality only cuts off a pair seen with exactly the same
	// discrete parts and virtual constraints on both sides: the cheapest
	// test, used when only a strict re-visit is worth cutting off.
	SubsetEquality SubsetMode = iota
	// SubsetConvexUnion cuts off a pair whenever the convex union of
	// virtual constraints already recorded for the same discrete parts
	// is a superset of this pair's own virtual constraints on both
	// sides. The default: cheap to maintain (vcg.Container.Compress on
	// insert) and sound, at the cost of occasionally missing a cutoff a
	// precise disjoint-union test would have taken.
	SubsetConvexUnion
	// SubsetApprox cuts off a pair whenever its discrete parts alone have
	// been seen before, ignoring the virtual constraints entirely. Only
	// sound for systems known to visit each discrete pair through a
	// bounded set of zones; offered for callers who have made that
	// determination themselves.
	SubsetApprox
)

// bucket holds every entry recorded for one discrete (vlocA, intvalA,
// vlocB, intvalB) pair, plus the running compressed union of the virtual
// constraints seen for it on each side.
type bucket struct {
	vlocA, vlocB     system.VLoc
	intvalA, intvalB system.IntVal
	unionA, unionB   *vcg.Container
	exactA, exactB   []*vcg.VC
}

// PairStore memoises the (vloc_A, intval_A, vloc_B, intval_B, phi_A,
// phi_B) tuples CheckForVirtBisim has already recursed into, cutting off
// the otherwise infinite recursion a cyclic pair of zone graphs would
// cause.
type PairStore struct {
	mode       SubsetMode
	numVirtual int
	buckets    map[uint64][]*bucket
}

// NewPairStore allocates an empty store using mode to decide membership,
// over VCs of numVirtual virtual clocks each.
func NewPairStore(mode SubsetMode, numVirtual int) *PairStore {
	return &PairStore{mode: mode, numVirtual: numVirtual, buckets: make(map[uint64][]*bucket)}
}

func pairHash(vlocA, vlocB system.VLoc, intvalA, intvalB system.IntVal) uint64 {
	h := vlocA.Hash() ^ (vlocB.Hash() * 1000003) ^ (intvalA.Hash() * 16777619) ^ (intvalB.Hash() * 2654435761)
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (8 * i))
	}
	return siphash.Hash(0, 0, buf)
}

func discreteEqual(b *bucket, vlocA, vlocB system.VLoc, intvalA, intvalB system.IntVal) bool {
	return b.vlocA.Equal(vlocA) && b.vlocB.Equal(vlocB) && b.intvalA.Equal(intvalA) && b.intvalB.Equal(intvalB)
}

// Seen reports whether (vlocA, intvalA, phiA, vlocB, intvalB, phiB) is
// already covered by what this store has recorded, per p.mode. It never
// mutates the store; call Mark afterwards to record a fresh exploration.
func (p *PairStore) Seen(vlocA, vlocB system.VLoc, intvalA, intvalB system.IntVal, phiA, phiB *vcg.VC) bool {
	key := pairHash(vlocA, vlocB, intvalA, intvalB)
	for _, b := range p.buckets[key] {
		if !discreteEqual(b, vlocA, vlocB, intvalA, intvalB) {
			continue
		}
		switch p.mode {
		case SubsetApprox:
			return true
		case SubsetConvexUnion:
			if b.unionA.IsSuperset(phiA) && b.unionB.IsSuperset(phiB) {
				return true
			}
		default: // SubsetEquality
			for i, ea := range b.exactA {
				if vcEqual(ea, phiA) && vcEqual(b.exactB[i], phiB) {
					return true
				}
			}
		}
	}
	return false
}

// Mark records (vlocA, intvalA, phiA, vlocB, intvalB, phiB) as explored,
// folding phiA/phiB into the matching bucket's running union (or starting
// a fresh bucket).
func (p *PairStore) Mark(vlocA, vlocB system.VLoc, intvalA, intvalB system.IntVal, phiA, phiB *vcg.VC) {
	key := pairHash(vlocA, vlocB, intvalA, intvalB)
	for _, b := range p.buckets[key] {
		if discreteEqual(b, vlocA, vlocB, intvalA, intvalB) {
			b.unionA.AppendZone(phiA)
			b.unionA.Compress()
			b.unionB.AppendZone(phiB)
			b.unionB.Compress()
			b.exactA = append(b.exactA, phiA.Clone())
			b.exactB = append(b.exactB, phiB.Clone())
			return
		}
	}
	unionA := vcg.NewContainer(p.numVirtual)
	unionA.AppendZone(phiA)
	unionB := vcg.NewContainer(p.numVirtual)
	unionB.AppendZone(phiB)
	p.buckets[key] = append(p.buckets[key], &bucket{
		vlocA: vlocA.Clone(), vlocB: vlocB.Clone(),
		intvalA: intvalA.Clone(), intvalB: intvalB.Clone(),
		unionA: unionA, unionB: unionB,
		exactA: []*vcg.VC{phiA.Clone()}, exactB: []*vcg.VC{phiB.Clone()},
	})
}

// vcEqual reports whether a and b denote the same virtual constraint: both
// empty, or neither empty and each a superset of the other (mutual
// containment via NegLogicAnd, the same exactness IsSuperset already
// relies on).
func vcEqual(a, b *vcg.VC) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.IsEmpty() != b.IsEmpty() {
		return false
	}
	ca := vcg.NewContainer(a.NumVirtualClocks())
	ca.AppendZone(a)
	cb := vcg.NewContainer(b.NumVirtualClocks())
	cb.AppendZone(b)
	return ca.IsSuperset(b) && cb.IsSuperset(a)
}
