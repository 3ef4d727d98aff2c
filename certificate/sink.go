package certificate

import (
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/system"
)

// Sink is the certificate serialisation surface: a
// write-only visitor that accepts node and edge records, each carrying an
// attribute map (required node attributes: vloc, intval, zone, initial,
// final; required edge attributes: vedge, and condition for bisim
// witnesses; graph.NodeAttributes/EdgeAttributes already produce exactly
// these maps). Close flushes and terminates the serialisation; no further
// writes are valid afterwards.
type Sink interface {
	WriteNode(id string, attrs map[string]string) error
	WriteEdge(src, tgt string, attrs map[string]string) error
	Close() error
}

// WriteGraph serialises every node of gr, then every edge, in the order
// gr.Nodes/gr.Out return them. Nodes are written before any edge so a
// streaming sink (DotSink) never has to forward-reference an undeclared
// node.
func WriteGraph(sink Sink, decl system.SystemDecl, gr *graph.Graph) error {
	nodes := gr.Nodes()
	for _, n := range nodes {
		attrs, err := graph.NodeAttributes(decl, n)
		if err != nil {
			return err
		}
		if err := sink.WriteNode(n.ID.String(), attrs); err != nil {
			return err
		}
	}
	for _, n := range nodes {
		for _, e := range gr.Out(n.ID) {
			if err := sink.WriteEdge(e.Src.String(), e.Tgt.String(), graph.EdgeAttributes(decl, e)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFinitePath serialises p's nodes in path order followed by its
// edges, the shape of a symbolic counter-example.
func WriteFinitePath(sink Sink, decl system.SystemDecl, p graph.FinitePath) error {
	for _, n := range p.Nodes {
		attrs, err := graph.NodeAttributes(decl, n)
		if err != nil {
			return err
		}
		if err := sink.WriteNode(n.ID.String(), attrs); err != nil {
			return err
		}
	}
	for _, e := range p.Edges {
		if err := sink.WriteEdge(e.Src.String(), e.Tgt.String(), graph.EdgeAttributes(decl, e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteLasso serialises l's stem followed by its cycle. The cycle's
// first node is the stem's last node by construction, so it is written
// once, as part of the stem.
func WriteLasso(sink Sink, decl system.SystemDecl, l graph.Lasso) error {
	if err := WriteFinitePath(sink, decl, l.Stem); err != nil {
		return err
	}
	cycle := l.Cycle
	if len(cycle.Nodes) > 0 && len(l.Stem.Nodes) > 0 && cycle.Nodes[0].ID == l.Stem.Nodes[len(l.Stem.Nodes)-1].ID {
		cycle.Nodes = cycle.Nodes[1:]
	}
	return WriteFinitePath(sink, decl, cycle)
}
