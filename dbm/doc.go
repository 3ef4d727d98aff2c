// Package dbm implements the Difference-Bound-Matrix kernel: the canonical
// representation of a zone (a convex set of clock valuations) as a square
// matrix of pairwise difference constraints, and every operation the rest of
// this module needs on it: tightening, constraining, resets, delay,
// intersection, convex union, the ExtraLU/ExtraM extrapolation family, and
// the aLU/aM subsumption tests.
//
// A DBM of dimension dim has clock 0 (the synthetic zero-clock, always
// valued 0) and dim-1 system clocks with indices 1..dim-1. Entry [i,j]
// encodes the constraint x_i - x_j <= v (or < v): seen as a weighted graph
// over clocks, the weight of edge i->j is the bound on x_i - x_j. A DBM is
// tight when every entry is the shortest path in that graph; tightening is
// Floyd-Warshall. A DBM is consistent when every diagonal entry is <=0; it
// is empty exactly when entry [0,0] has been pushed below <=0, which no
// consistent DBM can have (a negative self-loop). That is the "is_empty_0"
// convention every mutator in this package establishes: on EMPTY, [0,0] is
// set to (<,0) and left as the only witness of emptiness, so callers that
// only ever see DBMs produced by this package can check emptiness in O(1).
//
// Every operation here is a pure function over caller-owned *DBM values: the
// package holds no global state; every operation is pure or mutates its
// explicit out-parameter.
package dbm
