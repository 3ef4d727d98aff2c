package search

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/stats"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// Config gathers the parameters of a reachability search:
// the exploration order, the node-equivalence relation, the covering
// policy, an optional clock-bounds oracle (required by ALU), and the
// labels that mark a final/accepting state.
type Config struct {
	Order    Order
	Equiv    Equivalence
	Covering CoveringPolicy
	Oracle   clock.Oracle
	Labels   []system.LabelID

	// TableSize is a capacity hint for the explored-state store. Zero keeps the default sizing.
	TableSize int
}

// Result is the outcome of a Run: the reachability graph built so far,
// the search statistics, and whether a final state was reached (and
// which node, for extracting a counter-example).
type Result struct {
	Graph  *graph.Graph
	Stats  *stats.Record
	Found  bool
	Target *graph.Node
}

// Run explores g forward from its initial states according to cfg,
// stopping as soon as a state satisfying cfg.Labels is reached. Passing a nil or empty cfg.Labels
// explores the whole reachable state space and never reports Found.
func Run(g *zg.ZG, cfg Config) (*Result, error) {
	rec := stats.New()
	gr := graph.New()
	st := newStoreSized(cfg.TableSize)
	wl := newWaitingList[*graph.Node](cfg.Order)

	ies, err := g.InitialEdges()
	if err != nil {
		return nil, err
	}
	for _, ie := range ies {
		s, status, err := g.Initial(ie)
		if err != nil {
			return nil, err
		}
		if !status.IsOK() {
			continue
		}
		s = g.Share(s)
		n := gr.AddNode(s, true, false)
		rec.IncVisitedStates()
		st.insert(n)
		wl.push(n)
	}

	res := &Result{Graph: gr, Stats: rec}
	if hit, err := checkFinal(g, cfg, gr, rec, res); err != nil {
		return nil, err
	} else if hit {
		rec.Reachable = true
		rec.Finish()
		return res, nil
	}

	for {
		n, ok := wl.pop()
		if !ok {
			break
		}
		for _, ve := range g.OutgoingEdges(n.State) {
			tgt, status, err := g.Next(n.State, ve)
			if err != nil {
				return nil, err
			}
			rec.IncVisitedTransitions()
			if !status.IsOK() {
				continue
			}
			tgt = g.Share(tgt)

			if cfg.Covering != CoveringNone {
				if covering := st.findCovering(cfg.Equiv, cfg.Oracle, tgt); covering != nil {
					gr.AddSubsumption(covering.ID, n.ID)
					rec.IncVisitedPairOfStates()
					continue
				}
			}

			tn := gr.AddNode(tgt, false, false)
			gr.AddEdge(n.ID, tn.ID, ve)
			rec.IncVisitedStates()

			if cfg.Covering == CoveringFull {
				for _, covered := range st.findCovered(cfg.Equiv, cfg.Oracle, tgt) {
					st.remove(covered)
					gr.AddSubsumption(tn.ID, covered.ID)
				}
			}
			st.insert(tn)
			rec.SetStoredStates(uint64(len(gr.Nodes())))

			if hit, err := checkFinalNode(g, cfg, gr, rec, tn, res); err != nil {
				return nil, err
			} else if hit {
				rec.Reachable = true
				rec.Finish()
				return res, nil
			}

			wl.push(tn)
		}
	}
	rec.SetStoredStates(uint64(len(gr.Nodes())))
	rec.Finish()
	return res, nil
}

func checkFinal(g *zg.ZG, cfg Config, gr *graph.Graph, rec *stats.Record, res *Result) (bool, error) {
	for _, n := range gr.Nodes() {
		if hit, err := checkFinalNode(g, cfg, gr, rec, n, res); err != nil {
			return false, err
		} else if hit {
			return true, nil
		}
	}
	return false, nil
}

// checkFinalNode marks n final and records it as the search's Target when
// n's labels intersect cfg.Labels. An empty cfg.Labels means "no target",
// i.e. an exhaustive exploration.
func checkFinalNode(g *zg.ZG, cfg Config, gr *graph.Graph, rec *stats.Record, n *graph.Node, res *Result) (bool, error) {
	if len(cfg.Labels) == 0 {
		return false, nil
	}
	ls, err := g.Labels(n.State)
	if err != nil {
		return false, err
	}
	want := make(map[system.LabelID]bool, len(cfg.Labels))
	for _, l := range cfg.Labels {
		want[l] = true
	}
	for _, l := range ls {
		if want[l] {
			n.Final = true
			res.Found = true
			res.Target = n
			return true, nil
		}
	}
	return false, nil
}
