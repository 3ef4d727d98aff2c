// Package liveness implements the two liveness-search algorithms
// over a zone graph: nested depth-first search and Couvreur
// SCC detection. Both accept a set of accepting labels and emit a lasso
// counter-example (stem plus cycle) in a reachability graph built as they
// explore.
package liveness
