package vcg

import "errors"

var (
	// ErrBadDimension is returned when a source DBM is too small to hold
	// the requested number of virtual clocks.
	ErrBadDimension = errors.New("vcg: bad dimension")
	// ErrDimensionMismatch is returned when two virtual constraints
	// expected to share a dimension don't.
	ErrDimensionMismatch = errors.New("vcg: dimension mismatch")
	// ErrNotUniqueEdge is returned when a state has zero or more than one
	// outgoing vedge firing a given event.
	ErrNotUniqueEdge = errors.New("vcg: edge for event is not unique")
	// ErrUnsupportedReset is returned when a synchronised reset is not a
	// reset-to-zero of a side's own original clock.
	ErrUnsupportedReset = errors.New("vcg: unsupported reset shape")
)
