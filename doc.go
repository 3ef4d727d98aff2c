// Package ntacheck is a model checker for networks of timed automata.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	clock/          - clock identifiers, constraints, resets, bound vectors
//	dbm/            - difference bound matrix kernel (canonical form, the
//	                   eleven operations, ExtraLU/ExtraM extrapolation primitives)
//	refdbm/         - reference-clock DBM, one reference clock per process,
//	                   the representation refzg builds its sync operations on
//	zone/           - a thin wrapper around a single DBM
//	semantics/      - pluggable delay semantics (standard, elapsed, distinguished)
//	extrapolation/  - pluggable abstraction operators (LU/M, global/local, k-norm)
//	system/         - the declarative network-of-timed-automata input format
//	graph/          - the generic (VLoc, DBM) state graph and its attribute
//	                   maps, shared by search, liveness, refzg, simulate and
//	                   certificate
//	zg/             - the zone graph: explores a system one successor at a time
//	refzg/          - the local-time zone graph, for networks without a
//	                   global clock
//	vcg/            - virtual-clock graphs and zone containers, the machinery
//	                   bisim's strong timed bisimulation check runs over
//	stats/          - run statistics, their string-keyed map form and a
//	                   Prometheus exporter
//	search/         - BFS/DFS reachability search over a zg, with covering
//	                   and inclusion/equality equivalence
//	liveness/       - nested-DFS and Couvreur SCC-based liveness checking
//	bisim/          - strong timed bisimulation between two systems
//	driver/         - one-call entry points wiring system+semantics+
//	                   extrapolation+search/liveness/bisim into a single run
//	simulate/       - interactive and random symbolic/concrete simulation
//	certificate/    - DOT/JSON/gzip counterexample and witness sinks
//
// A typical program builds a system.SystemDecl with system.NewBuilder, picks
// a driver.Option set, and calls driver.RunReach/RunNDFS/RunBisim to get a
// result it can render with a certificate.Sink.
package ntacheck
