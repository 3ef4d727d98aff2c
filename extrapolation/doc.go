// Package extrapolation wraps the four BBLP'06 zone-abstraction operators
// of package dbm (ExtraLU, ExtraLU+, ExtraM, ExtraM+) plus the no-op and
// k-normalisation abstractions into pluggable Strategy values, each bound either to a single global clock.Bounds (computed once)
// or to a clock.Oracle queried per location tuple for a local variant.
package extrapolation
