package simulate

import "errors"

// ErrNoSteps is returned when a walk has no outgoing steps to choose from
// (the current state is a deadlock, or no initial state exists).
var ErrNoSteps = errors.New("simulate: no steps available")

// ErrInvalidSelection is returned when a Selector picks an index outside
// [0, len(steps)).
var ErrInvalidSelection = errors.New("simulate: selector returned an out-of-range index")

// ErrNotStarted is returned when Step or ConcretizeCurrent is called before
// Start.
var ErrNotStarted = errors.New("simulate: walk has not been started")
