package certificate

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipSink wraps another Sink, compressing everything it writes. Large
// state-space exports (a full reachability graph's worth of DOT/JSON
// attributes) compress well, since zone and vloc attribute strings repeat
// across sibling nodes.
type GzipSink struct {
	inner Sink
	gz    *gzip.Writer
}

// NewGzipSink wraps w in a klauspost/compress/gzip.Writer and passes it to
// newSink to build the inner Sink (e.g. func(w io.Writer) (Sink, error) {
// return certificate.NewDotSink(w, name) }). Close flushes and closes
// both the inner sink and the gzip stream, in that order.
func NewGzipSink(w io.Writer, newSink func(io.Writer) (Sink, error)) (*GzipSink, error) {
	gz := gzip.NewWriter(w)
	inner, err := newSink(gz)
	if err != nil {
		_ = gz.Close()
		return nil, err
	}
	return &GzipSink{inner: inner, gz: gz}, nil
}

func (s *GzipSink) WriteNode(id string, attrs map[string]string) error {
	return s.inner.WriteNode(id, attrs)
}

func (s *GzipSink) WriteEdge(src, tgt string, attrs map[string]string) error {
	return s.inner.WriteEdge(src, tgt, attrs)
}

func (s *GzipSink) Close() error {
	if err := s.inner.Close(); err != nil {
		return err
	}
	return s.gz.Close()
}
