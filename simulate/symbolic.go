package simulate

import (
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/zg"
)

// InitialSteps lists the candidate starting states of g (symbolic_simulate.hh's
// starting-state enumeration): one Step per initial edge, Vedge left empty
// since no transition fires to reach an initial state.
func InitialSteps(g *zg.ZG) ([]Step, error) {
	ies, err := g.InitialEdges()
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(ies))
	for _, ie := range ies {
		s, status, err := g.Initial(ie)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Status: status, State: s})
	}
	return steps, nil
}

// OutgoingSteps lists every successor of s, firing each of s's outgoing
// vedges (symbolic_simulate.hh's onestep_simulation: "list the one-step
// successors a human/driver can pick from"). A Step whose Status is not OK
// still appears, carrying a nil State, so a caller can tell a blocked
// transition from one that was never tried.
func OutgoingSteps(g *zg.ZG, s *zg.State) ([]Step, error) {
	ves := g.OutgoingEdges(s)
	steps := make([]Step, 0, len(ves))
	for _, ve := range ves {
		tgt, status, err := g.Next(s, ve)
		if err != nil {
			return nil, err
		}
		if !status.IsOK() {
			tgt = nil
		}
		steps = append(steps, Step{Status: status, State: tgt, Vedge: ve})
	}
	return steps, nil
}

// usableSteps returns the subset of steps whose Status is OK.
func usableSteps(steps []Step) []Step {
	out := make([]Step, 0, len(steps))
	for _, st := range steps {
		if st.Status.IsOK() {
			out = append(out, st)
		}
	}
	return out
}

// Walk accumulates a simulation trace as a graph.Graph over g, one node per
// visited state and one edge per fired vedge (symbolic_graph.hh's
// graph_t): the same node/edge shapes package search's reachability graph
// uses, since a simulation trace is a degenerate, linear reachability
// graph.
type Walk struct {
	g       *zg.ZG
	gr      *graph.Graph
	current *graph.Node
}

// NewWalk returns a Walk with an empty trace over g.
func NewWalk(g *zg.ZG) *Walk {
	return &Walk{g: g, gr: graph.New()}
}

// Graph returns the trace built so far.
func (w *Walk) Graph() *graph.Graph { return w.gr }

// Current returns the most recently visited node, or nil before Start.
func (w *Walk) Current() *graph.Node { return w.current }

// Start seeds the walk: it lists InitialSteps, asks sel to choose one, and
// records the chosen state as the trace's root node. Calling Start again
// discards no prior trace; it simply adds a second root, matching
// concrete_simulator_t's ability to restart a simulation from a fresh
// starting-state selection.
func (w *Walk) Start(sel Selector) (*graph.Node, error) {
	steps, err := InitialSteps(w.g)
	if err != nil {
		return nil, err
	}
	usable := usableSteps(steps)
	if len(usable) == 0 {
		return nil, ErrNoSteps
	}
	i, err := sel(usable)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(usable) {
		return nil, ErrInvalidSelection
	}
	chosen := usable[i]
	s := w.g.Share(chosen.State)
	n := w.gr.AddNode(s, true, false)
	w.current = n
	return n, nil
}

// Step advances the walk one transition: it lists OutgoingSteps of the
// current state, asks sel to choose among the OK ones, and appends the
// chosen successor to the trace. ErrNoSteps reports a deadlocked state
// (no OK successor), not a selector failure.
func (w *Walk) Step(sel Selector) (*graph.Node, error) {
	if w.current == nil {
		return nil, ErrNotStarted
	}
	steps, err := OutgoingSteps(w.g, w.current.State)
	if err != nil {
		return nil, err
	}
	usable := usableSteps(steps)
	if len(usable) == 0 {
		return nil, ErrNoSteps
	}
	i, err := sel(usable)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(usable) {
		return nil, ErrInvalidSelection
	}
	chosen := usable[i]
	s := w.g.Share(chosen.State)
	n := w.gr.AddNode(s, false, false)
	w.gr.AddEdge(w.current.ID, n.ID, chosen.Vedge)
	w.current = n
	return n, nil
}

// Run performs Start (if the walk has not started yet) followed by up to
// nsteps calls to Step, stopping early without error the moment a
// deadlocked state is reached (randomized_simulation's "simulation stops
// if Step returns no selectable successor"). It returns the number of
// Step calls actually performed.
func Run(w *Walk, nsteps int, sel Selector) (int, error) {
	if w.current == nil {
		if _, err := w.Start(sel); err != nil {
			return 0, err
		}
	}
	for i := 0; i < nsteps; i++ {
		if _, err := w.Step(sel); err != nil {
			if err == ErrNoSteps {
				return i, nil
			}
			return i, err
		}
	}
	return nsteps, nil
}
