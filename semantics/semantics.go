package semantics

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// Semantics computes the four zone-graph primitives over a
// DBM in place. Implementations differ only in when delay is folded into
// next/prev (or kept as a distinct transition kind); the invariant/guard/
// reset ordering within a single action is shared.
type Semantics interface {
	// Initial sets m to the initial zone of a location with the given
	// invariant. delayAllowed lets the variant additionally let time
	// elapse before returning (only Elapsed does).
	Initial(m *dbm.DBM, invariant clock.Constraints, delayAllowed bool) Status
	// Final sets m to the final (co-reachable-from-infinity) zone of a
	// location with the given invariant.
	Final(m *dbm.DBM, invariant clock.Constraints) Status
	// Next advances m along one edge: srcInvariant -- guard --
	// resets --> tgtInvariant. srcDelayAllowed/tgtDelayAllowed say
	// whether time may elapse in the source/target location; each variant
	// uses at most one of them.
	Next(m *dbm.DBM, srcInvariant clock.Constraints, srcDelayAllowed bool, guard clock.Constraints, resets clock.Resets, tgtInvariant clock.Constraints, tgtDelayAllowed bool) Status
	// Prev computes the weakest precondition of the same edge: m starts
	// as the target zone and ends as the source zone.
	Prev(m *dbm.DBM, tgtInvariant clock.Constraints, tgtDelayAllowed bool, guard clock.Constraints, resets clock.Resets, srcInvariant clock.Constraints, srcDelayAllowed bool) Status
}

// Standard implements standard_semantics_t: delay happens
// before the guard, in the source location.
type Standard struct{}

func (Standard) Initial(m *dbm.DBM, invariant clock.Constraints, delayAllowed bool) Status {
	return initialHelper(m, invariant)
}

func (Standard) Final(m *dbm.DBM, invariant clock.Constraints) Status {
	return finalHelper(m, invariant)
}

func (Standard) Next(m *dbm.DBM, srcInvariant clock.Constraints, srcDelayAllowed bool, guard clock.Constraints, resets clock.Resets, tgtInvariant clock.Constraints, tgtDelayAllowed bool) Status {
	return nextHelper(m, srcInvariant, srcDelayAllowed, guard, resets, tgtInvariant)
}

func (Standard) Prev(m *dbm.DBM, tgtInvariant clock.Constraints, tgtDelayAllowed bool, guard clock.Constraints, resets clock.Resets, srcInvariant clock.Constraints, srcDelayAllowed bool) Status {
	return prevHelper(m, tgtInvariant, guard, resets, srcInvariant, srcDelayAllowed)
}

// Delay lets time elapse in m's current location, shared with Distinguished.
func (Standard) Delay(m *dbm.DBM, invariant clock.Constraints) Status {
	return delayHelper(m, invariant)
}

// Elapsed implements elapsed_semantics_t: delay happens after the guard and
// reset, in the target location, instead of before it.
type Elapsed struct{}

func (Elapsed) Initial(m *dbm.DBM, invariant clock.Constraints, delayAllowed bool) Status {
	if st := initialHelper(m, invariant); !st.IsOK() {
		return st
	}
	if delayAllowed {
		return delayHelper(m, invariant)
	}
	return StateOK
}

func (Elapsed) Final(m *dbm.DBM, invariant clock.Constraints) Status {
	return finalHelper(m, invariant)
}

// Next constrains src_invariant, fires the guard and reset with no delay
// beforehand, then delays in the target location iff tgtDelayAllowed.
func (Elapsed) Next(m *dbm.DBM, srcInvariant clock.Constraints, srcDelayAllowed bool, guard clock.Constraints, resets clock.Resets, tgtInvariant clock.Constraints, tgtDelayAllowed bool) Status {
	if st := nextHelper(m, srcInvariant, false, guard, resets, tgtInvariant); !st.IsOK() {
		return st
	}
	if tgtDelayAllowed {
		return delayHelper(m, tgtInvariant)
	}
	return StateOK
}

// Prev undoes the target-location delay first, then the guard/reset, with
// no delay undone in the source location (the mirror of Next).
func (Elapsed) Prev(m *dbm.DBM, tgtInvariant clock.Constraints, tgtDelayAllowed bool, guard clock.Constraints, resets clock.Resets, srcInvariant clock.Constraints, srcDelayAllowed bool) Status {
	if tgtDelayAllowed {
		if !constrainAll(m, tgtInvariant) {
			return StateClocksTgtInvariantViolated
		}
		dbm.OpenDown(m)
	}
	return prevHelper(m, tgtInvariant, guard, resets, srcInvariant, false)
}

// Distinguished implements distinguished_semantics_t: delay and action are
// always two separate transition kinds, so Next/Prev never fold a delay in
// (both delay flags are ignored), and Delay is the only way to let time
// elapse.
type Distinguished struct{}

func (Distinguished) Initial(m *dbm.DBM, invariant clock.Constraints, delayAllowed bool) Status {
	return initialHelper(m, invariant)
}

func (Distinguished) Final(m *dbm.DBM, invariant clock.Constraints) Status {
	return finalHelper(m, invariant)
}

func (Distinguished) Next(m *dbm.DBM, srcInvariant clock.Constraints, srcDelayAllowed bool, guard clock.Constraints, resets clock.Resets, tgtInvariant clock.Constraints, tgtDelayAllowed bool) Status {
	return nextHelper(m, srcInvariant, false, guard, resets, tgtInvariant)
}

func (Distinguished) Prev(m *dbm.DBM, tgtInvariant clock.Constraints, tgtDelayAllowed bool, guard clock.Constraints, resets clock.Resets, srcInvariant clock.Constraints, srcDelayAllowed bool) Status {
	return prevHelper(m, tgtInvariant, guard, resets, srcInvariant, false)
}

// Delay lets time elapse in m's current location; this is the only way
// Distinguished semantics advances time.
func (Distinguished) Delay(m *dbm.DBM, invariant clock.Constraints) Status {
	return delayHelper(m, invariant)
}
