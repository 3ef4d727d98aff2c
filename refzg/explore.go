package refzg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/stats"
	"github.com/ntacheck/ntacheck/system"
)

// Config gathers the parameters of a local-time reachability search,
// the refzg counterpart of search.Config.
type Config struct {
	Covering Covering
	Oracle   clock.Oracle
	Labels   []system.LabelID
}

// Result is the outcome of Explore: the ZG-compatible reachability graph
// built so far (every node already projected via RefZG.Project), the
// search statistics, and whether a final state was reached.
type Result struct {
	Graph  *graph.Graph
	Stats  *stats.Record
	Found  bool
	Target *graph.Node
}

// Explore runs a breadth-first local-time reachability search over g,
// stopping as soon as a state whose labels intersect cfg.Labels is
// reached. An empty cfg.Labels explores the whole reachable state space
// and never reports Found.
//
// Local-time search is always breadth-first: unlike package search's
// pluggable Order, interleaving a depth-first local-time search with
// sync-aLU covering has no known sound treatment, so only the order known
// to be sound is offered.
func Explore(g *RefZG, cfg Config) (*Result, error) {
	rec := stats.New()
	gr := graph.New()
	st := newRefStore()

	ies, err := g.InitialEdges()
	if err != nil {
		return nil, err
	}

	var queue []*entry
	res := &Result{Graph: gr, Stats: rec}

	for _, ie := range ies {
		s, status, err := g.Initial(ie)
		if err != nil {
			return nil, err
		}
		if !status.IsOK() {
			continue
		}
		e, err := g.record(gr, st, rec, s, true)
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue
		}
		rec.IncVisitedStates()
		if hit, err := g.checkFinal(cfg, rec, res, e); err != nil {
			return nil, err
		} else if hit {
			rec.Reachable = true
			rec.Finish()
			return res, nil
		}
		queue = append(queue, e)
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		for _, ve := range g.OutgoingEdges(e.rstate) {
			tgt, status, err := g.Next(e.rstate, ve)
			if err != nil {
				return nil, err
			}
			rec.IncVisitedTransitions()
			if !status.IsOK() {
				continue
			}

			var coveredBy *entry
			for _, cand := range st.candidates(tgt) {
				if covers(cfg.Covering, cfg.Oracle, g.Ref, cand.rstate, tgt) {
					coveredBy = cand
					break
				}
			}
			if coveredBy != nil {
				gr.AddSubsumption(coveredBy.node.ID, e.node.ID)
				rec.IncVisitedPairOfStates()
				continue
			}

			tn, err := g.record(gr, st, rec, tgt, false)
			if err != nil {
				return nil, err
			}
			if tn == nil {
				// Not synchronizable: no valid projection exists, so the
				// state cannot be recorded or explored further, but it is
				// not an error (a local-time zone can legitimately forbid
				// every process from ever resynchronising beyond here).
				continue
			}
			gr.AddEdge(e.node.ID, tn.node.ID, ve)
			rec.IncVisitedStates()
			rec.SetStoredStates(uint64(len(gr.Nodes())))

			if hit, err := g.checkFinal(cfg, rec, res, tn); err != nil {
				return nil, err
			} else if hit {
				rec.Reachable = true
				rec.Finish()
				return res, nil
			}
			queue = append(queue, tn)
		}
	}

	rec.SetStoredStates(uint64(len(gr.Nodes())))
	rec.Finish()
	return res, nil
}

// record projects rs to its ZG-compatible state, inserts it into both the
// output graph and the covering store, and returns the resulting entry (nil
// if rs has no synchronized projection).
func (g *RefZG) record(gr *graph.Graph, st *refStore, rec *stats.Record, rs *State, initial bool) (*entry, error) {
	projected, ok, err := g.Project(rs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	n := gr.AddNode(projected, initial, false)
	e := &entry{node: n, rstate: rs}
	st.insert(e)
	return e, nil
}

// checkFinal marks e's node final and records it as the search's Target
// when its labels intersect cfg.Labels.
func (g *RefZG) checkFinal(cfg Config, rec *stats.Record, res *Result, e *entry) (bool, error) {
	if len(cfg.Labels) == 0 {
		return false, nil
	}
	ls, err := labelsOf(g.Decl, e.rstate.VLoc)
	if err != nil {
		return false, err
	}
	want := make(map[system.LabelID]bool, len(cfg.Labels))
	for _, l := range cfg.Labels {
		want[l] = true
	}
	for _, l := range ls {
		if want[l] {
			e.node.Final = true
			res.Found = true
			res.Target = e.node
			return true, nil
		}
	}
	return false, nil
}
