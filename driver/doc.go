// Package driver exposes the language-neutral search/bisimulation entry
// points ("Search driver API", "Bisim driver API"): each
// Run* function wires a system.SystemDecl together with a semantics, an
// extrapolation strategy and a clock-bounds oracle into one of the
// packages doing the actual exploration (search, refzg, liveness, bisim),
// and returns that package's stats/state-space alongside a uniform error.
//
// Configuration follows the functional-options idiom: DefaultOptions()
// plus any number of Option values, with invalid options recorded and
// surfaced as ErrOptionViolation at call time rather than panicking.
package driver
