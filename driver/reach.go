package driver

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

func buildZG(decl system.SystemDecl, o Options) (*zg.ZG, error) {
	oracle := o.Oracle
	if oracle == nil {
		oracle = noBoundsOracle{}
	}
	return zg.FactorySized(decl, o.Semantics, o.Extrapolation, oracle, o.BlockSize)
}

// noBoundsOracle answers empty bound vectors, which the dbm extrapolation
// and inclusion helpers read as NO_BOUND for every clock; the default for
// extrapolation.KindNone and Equality/Inclusion covering, which never
// consult an oracle but still need one wired through by value.
type noBoundsOracle struct{}

func (noBoundsOracle) Global() clock.Bounds       { return clock.Bounds{} }
func (noBoundsOracle) Local(vloc any) clock.Bounds { return clock.Bounds{} }

func runSearch(decl system.SystemDecl, o Options, covering search.CoveringPolicy, op string) (*search.Result, error) {
	if decl == nil {
		return nil, ErrDeclNil
	}
	g, err := buildZG(decl, o)
	if err != nil {
		logError(o, op, err)
		return nil, err
	}
	cfg := search.Config{
		Order:     o.Order,
		Equiv:     o.Equivalence,
		Covering:  covering,
		Oracle:    o.Oracle,
		Labels:    o.Labels,
		TableSize: o.TableSize,
	}
	res, err := search.Run(g, cfg)
	if err != nil {
		logError(o, op, err)
		return nil, err
	}
	logProgress(o, op, res.Stats)
	return res, nil
}

// RunReach runs run_reach: an exhaustive, non-subsuming
// forward reachability search. WithCovering is ignored, since
// distinguishing run_reach from RunCovReach is exactly "no subsumption".
func RunReach(decl system.SystemDecl, opts ...Option) (*search.Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return runSearch(decl, o, search.CoveringNone, "run_reach")
}

// RunCovReach runs run_covreach: forward reachability with
// subsumption, per WithCovering/WithEquivalence (CoveringFull by
// default).
func RunCovReach(decl system.SystemDecl, opts ...Option) (*search.Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return runSearch(decl, o, o.Covering, "run_covreach")
}
