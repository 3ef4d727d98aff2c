package zg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/system"
)

// locationsOf returns the current system.Location of every process in vloc.
func locationsOf(decl system.SystemDecl, vloc system.VLoc) ([]system.Location, error) {
	out := make([]system.Location, len(vloc))
	for p, l := range vloc {
		loc, err := decl.Location(system.ProcessID(p), l)
		if err != nil {
			return nil, err
		}
		out[p] = loc
	}
	return out, nil
}

// delayAllowed reports whether time may elapse with every process at its
// vloc location: no participating location may be urgent or committed
// (resolves the urgency Open Question of DESIGN.md at the semantics
// boundary, not inside extrapolation).
func delayAllowed(decl system.SystemDecl, vloc system.VLoc) (bool, error) {
	locs, err := locationsOf(decl, vloc)
	if err != nil {
		return false, err
	}
	for _, l := range locs {
		if l.Urgent || l.Committed {
			return false, nil
		}
	}
	return true, nil
}

// invariantOf aggregates the conjunction of every process's current
// location invariant: clocks are shared across all processes, so a
// location invariant of any process constrains the whole state.
func invariantOf(decl system.SystemDecl, vloc system.VLoc) (clock.Constraints, error) {
	locs, err := locationsOf(decl, vloc)
	if err != nil {
		return nil, err
	}
	var out clock.Constraints
	for _, l := range locs {
		out = append(out, l.Invariant...)
	}
	return out, nil
}

// labelsOf returns the union of label ids active at vloc.
func labelsOf(decl system.SystemDecl, vloc system.VLoc) ([]system.LabelID, error) {
	locs, err := locationsOf(decl, vloc)
	if err != nil {
		return nil, err
	}
	var out []system.LabelID
	for _, l := range locs {
		out = append(out, l.Labels...)
	}
	return out, nil
}

// initialVLoc builds the single initial location tuple of decl.
func initialVLoc(decl system.SystemDecl) (system.VLoc, error) {
	n := decl.ProcessCount()
	v := make(system.VLoc, n)
	for p := 0; p < n; p++ {
		l, err := decl.InitialLocation(system.ProcessID(p))
		if err != nil {
			return nil, err
		}
		v[p] = l
	}
	return v, nil
}

type candidate struct {
	process system.ProcessID
	edge    system.Edge
}

// outgoingVedges enumerates every synchronizable vedge leaving vloc:
// a private event's edges each fire
// alone; a synchronizing event only fires when every declared participant
// has an enabled edge on it, combined as a cartesian product of their
// individual candidate edges.
func outgoingVedges(decl system.SystemDecl, vloc system.VLoc) []Vedge {
	byEvent := make(map[system.EventID][]candidate)
	for p, l := range vloc {
		for _, e := range decl.OutgoingEdges(system.ProcessID(p), l) {
			byEvent[e.Event] = append(byEvent[e.Event], candidate{process: system.ProcessID(p), edge: e})
		}
	}

	var out []Vedge
	for event, cands := range byEvent {
		participants := decl.SyncParticipants(event)
		if len(participants) <= 1 {
			for _, c := range cands {
				out = append(out, Vedge{c.edge})
			}
			continue
		}
		perParticipant := make([][]system.Edge, len(participants))
		complete := true
		for i, p := range participants {
			for _, c := range cands {
				if c.process == p {
					perParticipant[i] = append(perParticipant[i], c.edge)
				}
			}
			if len(perParticipant[i]) == 0 {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for _, combo := range cartesian(perParticipant) {
			out = append(out, Vedge(combo))
		}
	}
	return out
}

// incomingVedges enumerates every synchronizable vedge entering vloc, the
// time-reverse dual of outgoingVedges.
func incomingVedges(decl system.SystemDecl, vloc system.VLoc) []Vedge {
	byEvent := make(map[system.EventID][]candidate)
	for p, l := range vloc {
		for _, e := range decl.IncomingEdges(system.ProcessID(p), l) {
			byEvent[e.Event] = append(byEvent[e.Event], candidate{process: system.ProcessID(p), edge: e})
		}
	}
	var out []Vedge
	for event, cands := range byEvent {
		participants := decl.SyncParticipants(event)
		if len(participants) <= 1 {
			for _, c := range cands {
				out = append(out, Vedge{c.edge})
			}
			continue
		}
		perParticipant := make([][]system.Edge, len(participants))
		complete := true
		for i, p := range participants {
			for _, c := range cands {
				if c.process == p {
					perParticipant[i] = append(perParticipant[i], c.edge)
				}
			}
			if len(perParticipant[i]) == 0 {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for _, combo := range cartesian(perParticipant) {
			out = append(out, Vedge(combo))
		}
	}
	return out
}

// cartesian returns every combination picking one element from each slot.
func cartesian(slots [][]system.Edge) [][]system.Edge {
	if len(slots) == 0 {
		return [][]system.Edge{nil}
	}
	rest := cartesian(slots[1:])
	out := make([][]system.Edge, 0, len(slots[0])*len(rest))
	for _, e := range slots[0] {
		for _, r := range rest {
			combo := make([]system.Edge, 0, len(r)+1)
			combo = append(combo, e)
			combo = append(combo, r...)
			out = append(out, combo)
		}
	}
	return out
}

// fire composes a forward step: ve leaves src in place for every
// non-participating process and moves each participant to its edge's
// target, returning the aggregated src/guard/resets/tgt pipeline.
func fire(decl system.SystemDecl, src system.VLoc, ve Vedge) (tgt system.VLoc, srcInv, guard clock.Constraints, resets clock.Resets, tgtInv clock.Constraints, err error) {
	tgt = src.Clone()
	for _, e := range ve {
		tgt[e.Process] = e.Tgt
		guard = append(guard, e.Guard...)
		resets = append(resets, e.Resets...)
	}
	srcInv, err = invariantOf(decl, src)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	tgtInv, err = invariantOf(decl, tgt)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return tgt, srcInv, guard, resets, tgtInv, nil
}

// unfire composes a backward step: the dual of fire, starting from the
// target vloc and recovering the source vloc from ve's edges.
func unfire(decl system.SystemDecl, tgt system.VLoc, ve Vedge) (src system.VLoc, srcInv, guard clock.Constraints, resets clock.Resets, tgtInv clock.Constraints, err error) {
	src = tgt.Clone()
	for _, e := range ve {
		src[e.Process] = e.Src
		guard = append(guard, e.Guard...)
		resets = append(resets, e.Resets...)
	}
	srcInv, err = invariantOf(decl, src)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	tgtInv, err = invariantOf(decl, tgt)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return src, srcInv, guard, resets, tgtInv, nil
}

// allVLocs enumerates every location tuple of decl: exponential in the
// number of processes, used only by final_edges/incoming_edges' backward range.
func allVLocs(decl system.SystemDecl) []system.VLoc {
	n := decl.ProcessCount()
	perProcess := make([][]system.LocationID, n)
	for p := 0; p < n; p++ {
		perProcess[p] = decl.Locations(system.ProcessID(p))
	}
	var out []system.VLoc
	var rec func(i int, cur system.VLoc)
	rec = func(i int, cur system.VLoc) {
		if i == n {
			out = append(out, cur.Clone())
			return
		}
		for _, l := range perProcess[i] {
			cur[i] = l
			rec(i+1, cur)
		}
	}
	rec(0, make(system.VLoc, n))
	return out
}

// allIntVals enumerates every integer valuation within the declared
// domains: exponential in the number of integer variables, same caveat as
// allVLocs.
func allIntVals(decl system.SystemDecl) []system.IntVal {
	n := decl.IntVarCount()
	if n == 0 {
		return []system.IntVal{{}}
	}
	domains := make([][2]int32, n)
	for i := 0; i < n; i++ {
		lo, hi := decl.IntVarDomain(system.VarID(i))
		domains[i] = [2]int32{lo, hi}
	}
	var out []system.IntVal
	var rec func(i int, cur system.IntVal)
	rec = func(i int, cur system.IntVal) {
		if i == n {
			out = append(out, cur.Clone())
			return
		}
		for v := domains[i][0]; v <= domains[i][1]; v++ {
			cur[i] = v
			rec(i+1, cur)
		}
	}
	rec(0, make(system.IntVal, n))
	return out
}
