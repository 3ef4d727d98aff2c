// Package refzg implements the local-time zone graph, the
// CONCUR'19 variant of package zg built over package refdbm's reference
// DBMs instead of a single shared zero clock. Each process owns a
// reference clock that measures its own elapsed time independently of
// every other process; system clocks are stored as offsets against their
// owning process's reference clock (Bengtsson, Jonsson, Lilius & Yi,
// "Partial Order Reduction for Timed Systems", CONCUR 1998; the covering
// relation below follows Herbreteau, Srivathsan & Walukiewicz's local-time
// semantics, CONCUR 2019).
//
// next is the standard RefDBM next (srcInvariant, guard, reset,
// tgtInvariant, package semantics' own ordering) plus an asynchronous
// open_up restricted to the firing processes' reference clocks in place of
// a single global delay, followed by a bound_spread of 1 on exactly those
// reference clocks whenever the firing vedge is a synchronization (more
// than one participant). Covering is sync-aLU/sync-aM: package search's
// Equivalence deliberately stops short of it (search/equivalence.go), since
// it first needs RefDBM's own Synchronize restriction before the ordinary
// aLU/aM abstraction applies.
//
// Exploration (Explore) still produces an ordinary package graph state
// space: every recorded node is a ZG-compatible state whose zone is the
// synchronized reference DBM projected back to a single shared zero clock
// (refdbm.ToDbm), so that certificate/stats/graph tooling built against
// package zg's State needs no local-time-specific counterpart.
package refzg
