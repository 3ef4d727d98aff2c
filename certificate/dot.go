package certificate

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DotSink writes an attributed graph as DOT text. Every attribute is
// quoted; keys are written in sorted order so the output is byte-stable
// across runs of the same graph.
type DotSink struct {
	w      io.Writer
	closed bool
}

// NewDotSink writes the opening "digraph name {" line to w and returns a
// Sink ready to accept nodes and edges.
func NewDotSink(w io.Writer, name string) (*DotSink, error) {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", quote(name)); err != nil {
		return nil, err
	}
	return &DotSink{w: w}, nil
}

func (s *DotSink) WriteNode(id string, attrs map[string]string) error {
	if s.closed {
		return ErrSinkClosed
	}
	_, err := fmt.Fprintf(s.w, "  %s%s;\n", quote(id), attrList(attrs))
	return err
}

func (s *DotSink) WriteEdge(src, tgt string, attrs map[string]string) error {
	if s.closed {
		return ErrSinkClosed
	}
	_, err := fmt.Fprintf(s.w, "  %s -> %s%s;\n", quote(src), quote(tgt), attrList(attrs))
	return err
}

// Close writes the closing brace. It does not close w: callers that wrap
// w in a gzip.Writer or an *os.File must close that separately, since
// DotSink never owns w's lifetime.
func (s *DotSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_, err := fmt.Fprintln(s.w, "}")
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func attrList(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + quote(attrs[k])
	}
	return " [" + strings.Join(parts, ", ") + "]"
}
