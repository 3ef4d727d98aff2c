package system

import "github.com/ntacheck/ntacheck/clock"

// DefaultOracle is a reference clock.Oracle implementation: it scans every
// location invariant and edge guard once, at construction, and assigns
// each clock the largest constant that appears against it: U from the
// constraints bounding it from above, L from those bounding it from below,
// and M from both. This is a safe, naive over-approximation of the
// clock-bounds analysis (it never under-counts a clock's true bound, so
// extrapolation built on it stays sound) rather than the tighter
// propagate-through-resets analysis a parser-driven oracle would compute.
//
// Local(vloc) returns the same global maps for every location tuple
// (DefaultOracle never refines per-location); a model with genuinely
// per-location bounds needs its own clock.Oracle.
type DefaultOracle struct {
	global clock.Bounds
}

var _ clock.Oracle = (*DefaultOracle)(nil)

// NewDefaultOracle scans decl and builds a DefaultOracle over its clocks.
func NewDefaultOracle(decl SystemDecl) *DefaultOracle {
	n := decl.ClockCount()
	global := clock.NewBounds(n)
	observe := func(c clock.Constraint) {
		if c.X != clock.Zero {
			bump(global.U, c.X, c.Value)
			bump(global.M, c.X, c.Value)
		}
		if c.Y != clock.Zero {
			v := -c.Value
			bump(global.L, c.Y, v)
			bump(global.M, c.Y, v)
		}
	}
	for p := 0; p < decl.ProcessCount(); p++ {
		pid := ProcessID(p)
		for _, lid := range decl.Locations(pid) {
			loc, err := decl.Location(pid, lid)
			if err != nil {
				continue
			}
			for _, c := range loc.Invariant {
				observe(c)
			}
			for _, e := range decl.OutgoingEdges(pid, lid) {
				for _, c := range e.Guard {
					observe(c)
				}
			}
		}
	}
	return &DefaultOracle{global: global}
}

// bump raises b[x-1] to v if v is larger; a NoBound entry is replaced by v.
func bump(b []int32, x clock.ID, v int32) {
	i := int(x) - 1
	if i < 0 || i >= len(b) {
		return
	}
	if b[i] == clock.NoBound {
		b[i] = v
		return
	}
	if v > b[i] {
		b[i] = v
	}
}

func (o *DefaultOracle) Global() clock.Bounds { return o.global }

func (o *DefaultOracle) Local(vloc any) clock.Bounds { return o.global }
