// Package refdbm implements DBMs indexed by reference clocks:
// a generalisation of package dbm where the first RefCount variables are
// reference clocks (one per process) and every other variable is a system
// clock offset against its own reference clock. Reference DBMs originate as
// "offset DBMs" in Bengtsson, Jonsson, Lilius & Yi, "Partial Order Reduction
// for Timed Systems" (CONCUR 1998), and are the representation used by the
// local-time zone graph.
//
// A reference DBM is synchronized when all of its reference clocks are
// equal; synchronizing it and reading the synchronized entries off against
// the zero clock recovers an ordinary dbm.DBM (ToDbm).
package refdbm
