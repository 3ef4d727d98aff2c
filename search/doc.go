// Package search implements the forward reachability search:
// a waiting list (BFS queue or DFS stack) of frontier nodes, a store
// of explored nodes indexed by discrete part for covering lookups, a
// pluggable node-equivalence relation (equality, zone inclusion, aLU), and
// a covering policy (COVERING_FULL or COVERING_LEAF_NODES). It also
// extracts symbolic and concrete counter-examples from the resulting
// reachability graph.
package search
