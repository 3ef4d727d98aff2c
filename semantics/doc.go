// Package semantics implements the pluggable zone-graph semantics:
// Standard (delay-then-fire), Elapsed (fire-then-delay) and
// Distinguished (delay and fire as two separate transition kinds). Each
// variant is a strategy value satisfying the Semantics interface, consumed
// by the zone-graph transition system (package zg) the same way an
// extrapolation strategy (package extrapolation) is.
package semantics
