package graph

// FinitePath is a sequence of nodes connected by the edges fired between
// them.
type FinitePath struct {
	Nodes []*Node
	Edges []*Edge
}

// Lasso is a stem ending at the first state of a cycle back to itself.
type Lasso struct {
	Stem  FinitePath
	Cycle FinitePath
}
