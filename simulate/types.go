package simulate

import (
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/zg"
)

// Step is one candidate successor of a simulation state: the zone-graph
// status obtained by firing Vedge, and the resulting state (nil when
// Status is not OK). A zero Vedge (empty slice) designates an initial
// step, firing no edge.
type Step struct {
	Status semantics.Status
	State  *zg.State
	Vedge  zg.Vedge
}

// Selector picks one element of a non-empty slice of candidate Steps,
// returning its index. Implementations back onestep_simulation
// (FirstSelector), randomized_simulation (NewRandomSelector) and
// interactive_simulation (a caller-supplied selector reading a choice from
// whatever UI the embedding application has).
type Selector func(steps []Step) (int, error)
