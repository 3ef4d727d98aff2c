package refzg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/system"
)

// locationsOf, delayAllowed, invariantOf, initialVLoc, outgoingVedges and
// fire below duplicate zg/ta.go's unexported helpers of the same name:
// zg keeps its composition logic private, so the local-time zone graph
// recomputes it directly against the exported system.SystemDecl surface
// rather than exporting zg internals it does not otherwise need.

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

func outgoingVedges(decl system.SystemDecl, vloc system.VLoc) []Vedge {
	byEvent := make(map[system.EventID][]candidate)
	for p, l := range vloc {
		for _, e := range decl.OutgoingEdges(system.ProcessID(p), l) {
			byEvent[e.Event] = append(byEvent[e.Event], candidate{process: system.ProcessID(p), edge: e})
		}
	}
	var out []Vedge
	for event, cands := range byEvent {
		parts := decl.SyncParticipants(event)
		if len(parts) <= 1 {
			for _, c := range cands {
				out = append(out, Vedge{c.edge})
			}
			continue
		}
		perParticipant := make([][]system.Edge, len(parts))
		complete := true
		for i, p := range parts {
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

// fire composes a forward step exactly as zg/ta.go's fire does, additionally
// returning the set of participating processes (refzg's delay/bound_spread
// restriction needs to know exactly who fired).
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
