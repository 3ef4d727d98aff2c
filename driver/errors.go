package driver

import "errors"

// ErrOptionViolation is returned when an invalid Option was supplied.
var ErrOptionViolation = errors.New("driver: invalid option supplied")

// ErrDeclNil is returned when a Run* function is given a nil SystemDecl.
var ErrDeclNil = errors.New("driver: system declaration is nil")

// ErrMissingClockOwners is returned by RunConcur19 when no WithClockOwners
// option was supplied: the local-time zone graph cannot assign reference
// clocks without knowing which process owns each clock (refzg.Config's
// distributed-clocks precondition).
var ErrMissingClockOwners = errors.New("driver: run_concur19 requires WithClockOwners")

// ErrNoInitialState is returned by RunBisim when a side's VCG declares no
// initial edge, or its initial state fails the declared invariant.
var ErrNoInitialState = errors.New("driver: system has no valid initial state")
