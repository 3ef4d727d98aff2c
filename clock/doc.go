// Package clock defines the shared value types that both the dbm and refdbm
// kernels, and everything built above them, use to talk about clocks:
// clock identifiers, difference constraints, resets, and the clock-bound
// maps produced by an external clock-bounds oracle.
//
// None of these types carry any DBM arithmetic themselves (that lives in
// dbm/refdbm); this package only fixes the vocabulary so the kernels, the
// zone-graph and the bisimulation core all agree on what a "clock" is.
package clock
