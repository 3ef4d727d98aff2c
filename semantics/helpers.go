package semantics

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// constrainAll intersects m with cs and reports whether the result is
// non-empty. A non-nil error out of dbm.ConstrainAll means the caller passed
// a malformed constraint (out-of-range clock, same-clock constraint): a
// programmer/model-building error, not a runtime condition a search ever
// needs to recover from, so it panics rather than threading another error
// return through every semantics method.
func constrainAll(m *dbm.DBM, cs clock.Constraints) bool {
	st, err := dbm.ConstrainAll(m, cs)
	if err != nil {
		panic(err)
	}
	return st != dbm.Status(dbm.Empty)
}

// resetsToConstraints turns a set of resets x := y + value into the
// equality constraints it implies (x - y <= value && y - x <= -value). prev
// intersects the target zone with these before freeing the reset clocks, so
// that a target zone which was not actually reachable by these resets (e.g.
// an arbitrary zone supplied during backward counterexample search) is
// rejected instead of silently producing a wrong predecessor.
func resetsToConstraints(rs clock.Resets) clock.Constraints {
	out := make(clock.Constraints, 0, 2*len(rs))
	for _, r := range rs {
		out = append(out,
			clock.Constraint{X: r.X, Y: r.Y, Cmp: clock.LE, Value: r.Value},
			clock.Constraint{X: r.Y, Y: r.X, Cmp: clock.LE, Value: -r.Value},
		)
	}
	return out
}

// initialHelper computes the initial zone for a location with the given
// invariant: the zero valuation, narrowed by the invariant.
func initialHelper(m *dbm.DBM, invariant clock.Constraints) Status {
	dbm.Zero(m)
	if !constrainAll(m, invariant) {
		return StateClocksSrcInvariantViolated
	}
	return StateOK
}

// finalHelper computes the final zone for a location with the given
// invariant: every valuation, narrowed by the invariant.
func finalHelper(m *dbm.DBM, invariant clock.Constraints) Status {
	dbm.UniversalPositive(m)
	if !constrainAll(m, invariant) {
		return StateClocksTgtInvariantViolated
	}
	return StateOK
}

// nextHelper computes the successor zone of an edge src_invariant --
// [delay] --> guard -- reset --> tgt_invariant, delaying before the guard
// iff srcDelayAllowed.
func nextHelper(m *dbm.DBM, srcInvariant clock.Constraints, srcDelayAllowed bool, guard clock.Constraints, resets clock.Resets, tgtInvariant clock.Constraints) Status {
	if !constrainAll(m, srcInvariant) {
		return StateClocksSrcInvariantViolated
	}
	if srcDelayAllowed {
		dbm.OpenUp(m)
		if !constrainAll(m, srcInvariant) {
			return StateClocksSrcInvariantViolated
		}
	}
	if !constrainAll(m, guard) {
		return StateClocksGuardViolated
	}
	dbm.ResetAll(m, resets)
	if !constrainAll(m, tgtInvariant) {
		return StateClocksTgtInvariantViolated
	}
	return StateOK
}

// prevHelper computes the weakest-precondition zone of the same edge, given
// a target zone m, delaying after undoing the guard iff srcDelayAllowed.
func prevHelper(m *dbm.DBM, tgtInvariant clock.Constraints, guard clock.Constraints, resets clock.Resets, srcInvariant clock.Constraints, srcDelayAllowed bool) Status {
	if !constrainAll(m, tgtInvariant) {
		return StateClocksTgtInvariantViolated
	}
	if !constrainAll(m, resetsToConstraints(resets)) {
		return StateClocksResetFailed
	}
	dbm.FreeClockAll(m, resets)
	if !constrainAll(m, guard) {
		return StateClocksGuardViolated
	}
	if !constrainAll(m, srcInvariant) {
		return StateClocksSrcInvariantViolated
	}
	if srcDelayAllowed {
		dbm.OpenDown(m)
		if !constrainAll(m, srcInvariant) {
			return StateClocksSrcInvariantViolated
		}
	}
	return StateOK
}

// delayHelper lets time elapse in place, narrowed by invariant. Shared by
// every semantics variant: Standard and Elapsed fold it into next/prev,
// Distinguished also exposes it as its own transition kind.
func delayHelper(m *dbm.DBM, invariant clock.Constraints) Status {
	dbm.OpenUp(m)
	if !constrainAll(m, invariant) {
		return StateClocksSrcInvariantViolated
	}
	return StateOK
}
