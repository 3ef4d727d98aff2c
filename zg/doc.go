// Package zg implements the zone-graph transition system:
// a state is a (vloc, intval, zone) triple; an edge composes one process
// edge per synchronization participant (or a single process edge for a
// private event) into a vedge, then runs it through a pluggable
// semantics.Semantics and extrapolation.Strategy. States and transitions
// are allocated from an in-memory pool with opt-in hash-consing ("share"),
// mirroring the original's block/shared-pointer allocator with Go value
// ownership and a xxhash-keyed canonicalisation table instead.
package zg
