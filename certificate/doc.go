// Package certificate provides reference CounterexampleSink
// implementations: a DOT-like attributed-graph text writer and
// a JSON writer, plus an optional gzip-compressed wrapper for large
// state-space exports. Neither writer parses its own output back; they
// exist only to give the search/bisim/liveness drivers a concrete place
// to send a graph.Graph, graph.FinitePath or graph.Lasso.
package certificate
