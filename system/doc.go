// Package system declares the NTA model vocabulary: the
// SystemDecl collaborator interface a parser would implement, the VLoc
// (location tuple) and IntVal (bounded-integer valuation) value types every
// zone-graph state carries alongside its zone, and a programmatic in-memory
// Builder used by tests, examples and this module's own reference oracle:
// NOT a parser, building a system here is a matter of calling
// AddProcess/AddLocation/AddEdge by hand, one call at a time.
package system
