package simulate

import (
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// ConcreteState is a single concrete clock valuation drawn out of a
// symbolic state's zone (concrete_simulate.hh's concrete_state_t):
// ClockValues[0] is always 0 (the reference clock), ClockValues[i] is
// clock i's value after Scale has been applied to turn every rational
// corner of the zone into an integer point. Scale == 1 means the zone
// already admitted an integer corner; Scale == 2 means every clock
// constraint must be read as "value / 2" to recover the original units.
type ConcreteState struct {
	VLoc        system.VLoc
	IntVal      system.IntVal
	ClockValues []int32
	Scale       int32
}

// Concretize narrows s's zone down to a single integer clock valuation
// (dbm.ConstrainToSingleValuation), the concrete-counterexample
// extractor's single-valuation extractor. It
// operates on a clone of s's zone DBM; s itself is left untouched.
func Concretize(s *zg.State) (*ConcreteState, error) {
	m := s.Zone.DBM.Clone()
	scale, err := dbm.ConstrainToSingleValuation(m)
	if err != nil {
		return nil, err
	}
	values := make([]int32, m.Dim)
	if err := dbm.SatisfyingIntegerValuation(m, values); err != nil {
		return nil, err
	}
	return &ConcreteState{
		VLoc:        s.VLoc.Clone(),
		IntVal:      s.IntVal.Clone(),
		ClockValues: values,
		Scale:       scale,
	}, nil
}

// ConcreteWalk layers concrete valuation extraction onto a symbolic Walk
// (concrete_simulator_t: "_zg" plus a vector of (status, state,
// transition) triples, each concretized for display).
type ConcreteWalk struct {
	*Walk
}

// NewConcreteWalk returns a ConcreteWalk with an empty trace over g.
func NewConcreteWalk(g *zg.ZG) *ConcreteWalk {
	return &ConcreteWalk{Walk: NewWalk(g)}
}

// ConcretizeCurrent extracts a single concrete valuation out of the walk's
// current state.
func (w *ConcreteWalk) ConcretizeCurrent() (*ConcreteState, error) {
	if w.Current() == nil {
		return nil, ErrNotStarted
	}
	return Concretize(w.Current().State)
}
