package zg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
)

// Factory builds a ZG over decl from named semantics/extrapolation kinds,
// mirroring zg.cc's two factory() overloads (one taking an already-built
// extrapolation::ne_t, one taking an extrapolation kind plus a
// clockbounds oracle).
func Factory(decl system.SystemDecl, semKind semantics.Kind, extraKind extrapolation.Kind, oracle clock.Oracle) (*ZG, error) {
	return FactorySized(decl, semKind, extraKind, oracle, 0)
}

// FactorySized is Factory with a block_size capacity hint, see NewSized.
func FactorySized(decl system.SystemDecl, semKind semantics.Kind, extraKind extrapolation.Kind, oracle clock.Oracle, blockSize int) (*ZG, error) {
	sem, err := semantics.New(semKind)
	if err != nil {
		return nil, err
	}
	extra, err := extrapolation.New(extraKind, oracle)
	if err != nil {
		return nil, err
	}
	return NewSized(decl, sem, extra, blockSize), nil
}

// FactoryWithStrategy builds a ZG from an already-constructed
// extrapolation.Strategy, the overload used when the caller wants to
// share one cached Strategy (e.g. a KNorm) across several ZG instances.
func FactoryWithStrategy(decl system.SystemDecl, semKind semantics.Kind, extra extrapolation.Strategy) (*ZG, error) {
	sem, err := semantics.New(semKind)
	if err != nil {
		return nil, err
	}
	return New(decl, sem, extra), nil
}
