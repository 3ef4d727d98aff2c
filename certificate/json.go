package certificate

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

type jsonNode struct {
	ID    string            `json:"id"`
	Attrs map[string]string `json:"attrs"`
}

type jsonEdge struct {
	Src   string            `json:"src"`
	Tgt   string            `json:"tgt"`
	Attrs map[string]string `json:"attrs"`
}

type jsonDoc struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

// JSONSink accumulates nodes and edges in memory and writes them to w as
// one JSON document on Close: a single well-formed document is a more
// useful contract for a Go caller that wants to decode this back than a
// stream of standalone JSON objects.
type JSONSink struct {
	w      io.Writer
	doc    jsonDoc
	closed bool
}

// NewJSONSink returns a Sink that writes its accumulated document to w
// when Close is called.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) WriteNode(id string, attrs map[string]string) error {
	if s.closed {
		return ErrSinkClosed
	}
	s.doc.Nodes = append(s.doc.Nodes, jsonNode{ID: id, Attrs: attrs})
	return nil
}

func (s *JSONSink) WriteEdge(src, tgt string, attrs map[string]string) error {
	if s.closed {
		return ErrSinkClosed
	}
	s.doc.Edges = append(s.doc.Edges, jsonEdge{Src: src, Tgt: tgt, Attrs: attrs})
	return nil
}

// Close marshals the accumulated document via jsoniter and writes it to
// w. It does not close w.
func (s *JSONSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s.doc)
	if err != nil {
		return err
	}
	_, err = s.w.Write(b)
	return err
}
