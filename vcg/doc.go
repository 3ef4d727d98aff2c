// Package vcg implements the virtual clock graph and its
// virtual constraints: a VCG is a zone graph (package zg) whose
// clock set has been extended with one virtual clock per clock of a paired
// NTA, used by the strong-timed-bisimulation check (package bisim) to
// compare two systems' reachable zones region by region. A VC (virtual
// constraint) is a tight-or-empty DBM over the virtual clocks alone; a
// Container is an ordered, compressible multi-set of VCs representing a
// (possibly disjoint) union of regions.
//
// This package targets the zero-clock convention of package zg, not the
// per-process reference clocks of package refzg: the original's
// REFCLOCK_ID indirection (used when a VCG is built over a local-time zone
// graph) collapses to clock.Zero here, since nothing in this module pairs
// a VCG with a refzg.
package vcg
