// Package zone implements the zone type: a thin,
// dimension-checked owning wrapper around a package dbm DBM, used
// everywhere a zone-graph state's symbolic clock valuation is stored or
// compared. The virtual-constraint-aware operations that compare zones up
// to a projection on a subset of "virtual" clocks (is_virtual_equivalent,
// get_virtual_overhang) live in package vcg instead, which depends on this
// package rather than the other way around: zone itself has no notion of
// virtual clocks.
package zone
