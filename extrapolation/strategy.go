package extrapolation

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// Strategy abstracts a zone in place to bound the number of distinct zones
// a zone graph can reach. vloc is opaque here (a
// system.VLoc, typically); implementations that don't need it (None,
// global variants, KNorm) ignore it.
type Strategy interface {
	Extrapolate(m *dbm.DBM, vloc any)
}

// None performs no extrapolation, used when
// the zone graph is known finite without it or for exact exploration.
type None struct{}

func (None) Extrapolate(m *dbm.DBM, vloc any) {}

// GlobalLU applies ExtraLU (or ExtraLU+ when Plus is set) with a single
// L/U bound map shared by every location.
type GlobalLU struct {
	Bounds clock.Bounds
	Plus   bool
}

func (g GlobalLU) Extrapolate(m *dbm.DBM, vloc any) {
	if g.Plus {
		dbm.ExtraLUPlus(m, g.Bounds.L, g.Bounds.U)
		return
	}
	dbm.ExtraLU(m, g.Bounds.L, g.Bounds.U)
}

// GlobalM applies ExtraM (or ExtraM+) with a single M bound map shared by
// every location.
type GlobalM struct {
	Bounds clock.Bounds
	Plus   bool
}

func (g GlobalM) Extrapolate(m *dbm.DBM, vloc any) {
	if g.Plus {
		dbm.ExtraMPlus(m, g.Bounds.M)
		return
	}
	dbm.ExtraM(m, g.Bounds.M)
}

// LocalLU applies ExtraLU (or ExtraLU+) with an L/U bound map recomputed
// from Oracle for each location tuple passed to Extrapolate.
type LocalLU struct {
	Oracle clock.Oracle
	Plus   bool
}

func (l LocalLU) Extrapolate(m *dbm.DBM, vloc any) {
	b := l.Oracle.Local(vloc)
	if l.Plus {
		dbm.ExtraLUPlus(m, b.L, b.U)
		return
	}
	dbm.ExtraLU(m, b.L, b.U)
}

// LocalM applies ExtraM (or ExtraM+) with an M bound map recomputed from
// Oracle for each location tuple passed to Extrapolate.
type LocalM struct {
	Oracle clock.Oracle
	Plus   bool
}

func (l LocalM) Extrapolate(m *dbm.DBM, vloc any) {
	b := l.Oracle.Local(vloc)
	if l.Plus {
		dbm.ExtraMPlus(m, b.M)
		return
	}
	dbm.ExtraM(m, b.M)
}

// KNorm applies k-normalisation as ExtraLU with symmetric per-clock bounds
// L := max(L,U), U := max(L,U), computed once from
// the global bound map at construction time ("cached on first
// construction").
type KNorm struct {
	L, U []int32
}

// NewKNorm derives KNorm's symmetric bounds from a global clock.Bounds.
func NewKNorm(global clock.Bounds) KNorm {
	n := len(global.L)
	sym := make([]int32, n)
	for i := range sym {
		l, u := global.L[i], global.U[i]
		if l == clock.NoBound || u == clock.NoBound {
			sym[i] = clock.NoBound
			continue
		}
		if l > u {
			sym[i] = l
		} else {
			sym[i] = u
		}
	}
	return KNorm{L: sym, U: sym}
}

func (k KNorm) Extrapolate(m *dbm.DBM, vloc any) {
	dbm.ExtraLU(m, k.L, k.U)
}
