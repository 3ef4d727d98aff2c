// Package graph implements the reachability/subsumption graph:
// nodes hold shared zone-graph states, edges hold the vedges that
// fired between them, and a parallel set of subsumption edges records
// covering decisions made by package search. It also implements the
// certificate attribute surface (a node/edge visitor that writes
// attribute maps) and the FinitePath/Lasso counter-example shapes used by
// packages search, liveness and bisim.
package graph
