package refdbm

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// ResetToReferenceClock resets system clock x to its own reference clock:
// x becomes equal to r.RefOf(x), every other variable
// unchanged.
func ResetToReferenceClock(rdbm *dbm.DBM, r RefClocks, x clock.ID) {
	dbm.ResetToClock(rdbm, x, r.RefOf(x))
}

// Reset applies a single clock reset, which must be a reset to the clock's
// own reference clock with value 0.
func Reset(rdbm *dbm.DBM, r RefClocks, reset clock.Reset) {
	ResetToReferenceClock(rdbm, r, reset.X)
}

// ResetAll applies a sequence of reference-clock resets, in order.
func ResetAll(rdbm *dbm.DBM, r RefClocks, resets clock.Resets) {
	for _, rs := range resets {
		Reset(rdbm, r, rs)
	}
}

// AsynchronousOpenUp removes upper bounds against every reference clock,
// letting every process's time elapse independently: for
// every reference clock t and every variable x, x-t is set to
// <+infinity (column t is cleared).
func AsynchronousOpenUp(rdbm *dbm.DBM, r RefClocks) {
	n := rdbm.Dim
	for t := 0; t < r.RefCount; t++ {
		for x := 0; x < n; x++ {
			if x == t {
				continue
			}
			rdbm.Set(clock.ID(x), clock.ID(t), dbm.LTInfinity)
		}
	}
}

// AsynchronousOpenUpMasked is AsynchronousOpenUp restricted to the reference
// clocks flagged true in delayAllowed.
func AsynchronousOpenUpMasked(rdbm *dbm.DBM, r RefClocks, delayAllowed []bool) {
	n := rdbm.Dim
	for t := 0; t < r.RefCount; t++ {
		if !delayAllowed[t] {
			continue
		}
		for x := 0; x < n; x++ {
			if x == t {
				continue
			}
			rdbm.Set(clock.ID(x), clock.ID(t), dbm.LTInfinity)
		}
	}
}
