package zg

import "errors"

var (
	// ErrNoParticipant is returned when a declared synchronization event
	// has no process that can currently fire it.
	ErrNoParticipant = errors.New("zg: synchronization event has no enabled participant")
	// ErrBadAttributes is returned by Build when the attribute map cannot
	// be turned into a state.
	ErrBadAttributes = errors.New("zg: malformed state attributes")
)
