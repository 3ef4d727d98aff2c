package system

import "errors"

var (
	// ErrUnknownProcess is returned for a ProcessID with no registered process.
	ErrUnknownProcess = errors.New("system: unknown process")
	// ErrUnknownLocation is returned for a LocationID with no registered location.
	ErrUnknownLocation = errors.New("system: unknown location")
	// ErrDuplicateLocation is returned when a location id is registered twice.
	ErrDuplicateLocation = errors.New("system: duplicate location id")
	// ErrNoInitialLocation is returned when Build is asked to finalize a
	// process that never had an initial location marked.
	ErrNoInitialLocation = errors.New("system: process has no initial location")
	// ErrBadEdgeEndpoint is returned when an edge names a location that was
	// never added to its process.
	ErrBadEdgeEndpoint = errors.New("system: edge endpoint not registered")
	// ErrVLocLengthMismatch is returned when a VLoc's length does not match
	// the process count of the system being consulted.
	ErrVLocLengthMismatch = errors.New("system: vloc length mismatch")
)
