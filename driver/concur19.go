package driver

import (
	"github.com/ntacheck/ntacheck/refzg"
	"github.com/ntacheck/ntacheck/system"
)

// RunConcur19 runs run_concur19: a local-time zone-graph
// reachability search (refzg.Explore), always breadth-first. Requires
// WithClockOwners; WithSearchOrder/WithEquivalence are ignored, since the
// local-time graph is only known sound breadth-first and always covers
// with sync-aLU/sync-aM (WithLocalCovering).
func RunConcur19(decl system.SystemDecl, opts ...Option) (*refzg.Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if decl == nil {
		return nil, ErrDeclNil
	}
	if len(o.ClockOwners) == 0 {
		return nil, ErrMissingClockOwners
	}

	ref := refzg.OneRefClockPerProcess(decl.ProcessCount(), o.ClockOwners)
	g, err := refzg.New(decl, ref)
	if err != nil {
		logError(o, "run_concur19", err)
		return nil, err
	}

	cfg := refzg.Config{
		Covering: o.LocalCovering,
		Oracle:   o.Oracle,
		Labels:   o.Labels,
	}
	res, err := refzg.Explore(g, cfg)
	if err != nil {
		logError(o, "run_concur19", err)
		return nil, err
	}
	logProgress(o, "run_concur19", res.Stats)
	return res, nil
}
