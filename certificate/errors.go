package certificate

import "errors"

// ErrSinkClosed is returned by WriteNode/WriteEdge once Close has already
// been called on the sink.
var ErrSinkClosed = errors.New("certificate: sink is closed")
