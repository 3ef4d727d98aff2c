package vcg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// Factory builds a VCG over decl (whose system already declares
// numVirtualClocks extra clocks beyond its own numOrigClocks), mirroring
// vcg.hh's factory().
func Factory(decl system.SystemDecl, firstOrSecond bool, numOrigClocks, numVirtualClocks int, semKind semantics.Kind, extraKind extrapolation.Kind, oracle clock.Oracle) (*VCG, error) {
	base, err := zg.Factory(decl, semKind, extraKind, oracle)
	if err != nil {
		return nil, err
	}
	return New(base, numVirtualClocks, numOrigClocks, firstOrSecond), nil
}
