package refzg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/refdbm"
)

// OneRefClockPerProcess builds the refdbm.RefClocks a RefZG typically
// needs: one reference clock per process, every system clock k offset against the
// reference clock of the process that owns it, per ownerOfClock.
//
// ownerOfClock is the distributed-clocks precondition the reference-clock
// construction requires (Bengtsson, Jonsson, Lilius & Yi, CONCUR 1998):
// every clock must belong to exactly one process for its reference clock
// to mean anything; ownerOfClock[k] names that process for clock k+1.
func OneRefClockPerProcess(nbProcesses int, ownerOfClock []clock.ID) refdbm.RefClocks {
	return refdbm.NewRefClocks(nbProcesses, ownerOfClock)
}
