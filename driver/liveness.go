package driver

import (
	"github.com/ntacheck/ntacheck/liveness"
	"github.com/ntacheck/ntacheck/system"
)

// RunNDFS runs run_ndfs: the nested depth-first search liveness
// check. WithLabels names the accepting label set; WithSearchOrder/
// WithCovering/WithEquivalence don't apply, since nested DFS always
// explores exhaustively without subsumption (liveness needs every
// reachable state, search.CoveringNone's doc comment).
func RunNDFS(decl system.SystemDecl, opts ...Option) (*liveness.Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if decl == nil {
		return nil, ErrDeclNil
	}
	g, err := buildZG(decl, o)
	if err != nil {
		logError(o, "run_ndfs", err)
		return nil, err
	}
	res, err := liveness.NestedDFS(g, o.Labels)
	if err != nil {
		logError(o, "run_ndfs", err)
		return nil, err
	}
	logProgress(o, "run_ndfs", res.Stats)
	return res, nil
}

// RunCouvSCC runs run_couvscc: the Couvreur SCC-based liveness
// check, the same shape as RunNDFS.
func RunCouvSCC(decl system.SystemDecl, opts ...Option) (*liveness.Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if decl == nil {
		return nil, ErrDeclNil
	}
	g, err := buildZG(decl, o)
	if err != nil {
		logError(o, "run_couvscc", err)
		return nil, err
	}
	res, err := liveness.CouvreurSCC(g, o.Labels)
	if err != nil {
		logError(o, "run_couvscc", err)
		return nil, err
	}
	logProgress(o, "run_couvscc", res.Stats)
	return res, nil
}
