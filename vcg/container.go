package vcg

import "github.com/ntacheck/ntacheck/dbm"

// Container is an ordered multi-set of VCs with compression.
type Container struct {
	dim   int
	zones []*VC
}

// NewContainer allocates an empty container of VCs over numVirtual clocks.
func NewContainer(numVirtual int) *Container {
	return &Container{dim: numVirtual + 1}
}

// Dim returns the DBM dimension every VC in the container shares.
func (c *Container) Dim() int { return c.dim }

// IsEmpty reports whether the container holds no VC.
func (c *Container) IsEmpty() bool { return len(c.zones) == 0 }

// Size returns the number of VCs currently stored.
func (c *Container) Size() int { return len(c.zones) }

// At returns the i-th VC.
func (c *Container) At(i int) *VC { return c.zones[i] }

// Zones returns the container's VCs, in storage order. The slice is owned
// by the caller; mutating its elements mutates the container.
func (c *Container) Zones() []*VC { return c.zones }

// AppendUniversal appends the universal VC.
func (c *Container) AppendUniversal() error {
	vc, err := NewVC(c.dim - 1)
	if err != nil {
		return err
	}
	c.zones = append(c.zones, vc)
	return nil
}

// AppendZone appends a clone of vc.
func (c *Container) AppendZone(vc *VC) { c.zones = append(c.zones, vc.Clone()) }

// AppendContainer appends clones of every VC in other.
func (c *Container) AppendContainer(other *Container) {
	for _, z := range other.zones {
		c.AppendZone(z)
	}
}

// RemoveBack removes the last VC.
func (c *Container) RemoveBack() {
	if len(c.zones) > 0 {
		c.zones = c.zones[:len(c.zones)-1]
	}
}

// Back returns the last VC.
func (c *Container) Back() *VC { return c.zones[len(c.zones)-1] }

// Compress greedily fuses convex-unionable pairs of VCs until a fixpoint.
func (c *Container) Compress() {
	for {
		merged := false
		for i := 0; i < len(c.zones); i++ {
			for j := i + 1; j < len(c.zones); j++ {
				union := c.zones[i].Clone()
				if dbm.ConvexUnion(union.DBM, c.zones[i].DBM, c.zones[j].DBM) == dbm.UnionIsConvex {
					c.zones[i] = union
					c.zones = append(c.zones[:j], c.zones[j+1:]...)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
		if !merged {
			return
		}
	}
}

// IsSuperset reports whether the union the container represents contains
// vc: it computes vc minus every entry of c in turn via NegLogicAnd and
// checks the remainder is empty, so the answer is exact for this
// container's contents.
func (c *Container) IsSuperset(vc *VC) bool {
	remaining := []*VC{vc}
	for _, z := range c.zones {
		var next []*VC
		for _, r := range remaining {
			rest := z.NegLogicAnd(r)
			for _, piece := range rest.zones {
				if !piece.IsEmpty() {
					next = append(next, piece)
				}
			}
		}
		remaining = next
		if len(remaining) == 0 {
			return true
		}
	}
	return len(remaining) == 0
}

// Combine canonicalises loVC into a pairwise-disjoint container.
func Combine(loVC *Container, numVirtual int) *Container {
	loVC.Compress()
	result := NewContainer(numVirtual)

	for _, z := range loVC.zones {
		inter := &Container{dim: numVirtual + 1, zones: []*VC{z.Clone()}}

		for _, phiR := range result.zones {
			helper := &Container{dim: numVirtual + 1}
			for _, phiInter := range inter.zones {
				toAppend := phiR.NegLogicAnd(phiInter)
				helper.AppendContainer(toAppend)
			}
			inter = helper
		}

		for _, phi := range inter.zones {
			if !phi.IsEmpty() {
				result.AppendZone(phi)
			}
		}
		result.Compress()
	}

	return result
}
