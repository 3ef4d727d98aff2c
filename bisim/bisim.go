package bisim

import (
	"github.com/google/uuid"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/vcg"
	"github.com/ntacheck/ntacheck/zg"
)

// CheckForVirtBisimWitness behaves exactly as CheckForVirtBisim, additionally
// building a Witness pair graph over every discrete (state_A, state_B) pair
// it recurses into.
func CheckForVirtBisimWitness(vA, vB *vcg.VCG, sA, sB *zg.State, visited *PairStore) (*vcg.Container, *Witness, error) {
	w := NewWitness()
	w.node(sA.VLoc, sB.VLoc, sA.IntVal, sB.IntVal)
	result, err := checkVirtBisim(vA, vB, sA, sB, nil, nil, visited, w)
	return result, w, err
}

// CheckForVirtBisim decides strong timed bisimilarity between the initial
// states of two virtual clock graphs over a common event alphabet, returning a compressed container of the
// virtual-constraint sub-regions where sA and sB diverge. An empty,
// non-nil container means the two systems are bisimilar at (sA, sB).
//
// Unlike the textbook signature, this entry point takes only one state
// per side: check_for_virt_bisim(s_A, t_A, s_B, t_B, visited) names
// t_A/t_B as parameters but its own pseudocode body never reads them,
// and its soundness clause speaks only of "the pair of initial states":
// the second state of each pair is a leftover from an earlier draft of
// the algorithm, not part of its actual contract (see DESIGN.md).
func CheckForVirtBisim(vA, vB *vcg.VCG, sA, sB *zg.State, visited *PairStore) (*vcg.Container, error) {
	return checkVirtBisim(vA, vB, sA, sB, nil, nil, visited, nil)
}

// checkVirtBisim is the recursive core: resetsA/resetsB are the resets of
// the transition that produced sA/sB (nil at the top-level call, since the
// initial states enter via no transition at all). w is nil unless called
// from CheckForVirtBisimWitness, in which case every pair recursed into is
// recorded as a Witness node and every recursive step as a WitnessEdge.
func checkVirtBisim(vA, vB *vcg.VCG, sA, sB *zg.State, resetsA, resetsB clock.Resets, visited *PairStore, w *Witness) (*vcg.Container, error) {
	var self uuid.UUID
	if w != nil {
		self = w.node(sA.VLoc, sB.VLoc, sA.IntVal, sB.IntVal)
	}
	recurse := func(ra, rb *zg.State, resA, resB clock.Resets) (*vcg.Container, error) {
		sub, err := checkVirtBisim(vA, vB, ra, rb, resA, resB, visited, w)
		if err != nil {
			return nil, err
		}
		if w != nil {
			child := w.node(ra.VLoc, rb.VLoc, ra.IntVal, rb.IntVal)
			w.addEdge(self, child, sub)
		}
		return sub, nil
	}
	numVirtual := vA.NumVirtualClocks
	result := vcg.NewContainer(numVirtual)

	// Step 1: project each side onto its virtual clocks and record the
	// region one side has that the other entirely lacks.
	phiA, err := vcg.FromZone(sA.Zone, numVirtual)
	if err != nil {
		return nil, err
	}
	phiB, err := vcg.FromZone(sB.Zone, numVirtual)
	if err != nil {
		return nil, err
	}
	result.AppendContainer(phiB.NegLogicAnd(phiA)) // phi_A and not phi_B
	result.AppendContainer(phiA.NegLogicAnd(phiB)) // phi_B and not phi_A

	// Step 2: sync each side's zone with the other's virtual region, then
	// replay the entering transition's resets on the matching virtual
	// clocks.
	zAs, _, err := phiB.LogicAndZone(sA.Zone, vA.NumOrigClocks)
	if err != nil {
		return nil, err
	}
	zBs, _, err := phiA.LogicAndZone(sB.Zone, vB.NumOrigClocks)
	if err != nil {
		return nil, err
	}
	if err := vcg.Sync(zAs.DBM, zBs.DBM, vA.NumOrigClocks, vB.NumOrigClocks, resetsA, resetsB); err != nil {
		return nil, err
	}

	// Step 3: normalize with each side's own extrapolation strategy, then
	// cut recursion off against the visited set.
	vA.Extra.Extrapolate(zAs.DBM, sA.VLoc)
	vB.Extra.Extrapolate(zBs.DBM, sB.VLoc)

	phiSyncA, err := vcg.FromZone(zAs, numVirtual)
	if err != nil {
		return nil, err
	}
	phiSyncB, err := vcg.FromZone(zBs, numVirtual)
	if err != nil {
		return nil, err
	}
	if visited.Seen(sA.VLoc, sB.VLoc, sA.IntVal, sB.IntVal, phiSyncA, phiSyncB) {
		result.Compress()
		return result, nil
	}
	visited.Mark(sA.VLoc, sB.VLoc, sA.IntVal, sB.IntVal, phiSyncA, phiSyncB)

	stateAs := &zg.State{VLoc: sA.VLoc, IntVal: sA.IntVal, Zone: zAs}
	stateBs := &zg.State{VLoc: sB.VLoc, IntVal: sB.IntVal, Zone: zBs}

	// Step 4: epsilon step. Only compared when both sides can actually
	// let time elapse from here; a location where exactly one side is
	// urgent/committed has no delay move on that side to pair against.
	if delayAllowed(vA.Decl, sA.VLoc) && delayAllowed(vB.Decl, sB.VLoc) {
		invA, err := locationInvariant(vA.Decl, sA.VLoc)
		if err != nil {
			return nil, err
		}
		invB, err := locationInvariant(vB.Decl, sB.VLoc)
		if err != nil {
			return nil, err
		}
		dzA := zAs.Clone()
		dbm.OpenUp(dzA.DBM)
		stA, errA := dbm.ConstrainAll(dzA.DBM, invA)
		dzB := zBs.Clone()
		dbm.OpenUp(dzB.DBM)
		stB, errB := dbm.ConstrainAll(dzB.DBM, invB)
		if errA != nil {
			return nil, errA
		}
		if errB != nil {
			return nil, errB
		}
		if stA != dbm.Empty && stB != dbm.Empty {
			epsA := &zg.State{VLoc: sA.VLoc, IntVal: sA.IntVal, Zone: dzA}
			epsB := &zg.State{VLoc: sB.VLoc, IntVal: sB.IntVal, Zone: dzB}
			sub, err := recurse(epsA, epsB, nil, nil)
			if err != nil {
				return nil, err
			}
			for _, piece := range sub.Zones() {
				revA, err := vA.RevertEpsilonTrans(zAs, piece)
				if err != nil {
					return nil, err
				}
				revB, err := vB.RevertEpsilonTrans(zBs, piece)
				if err != nil {
					return nil, err
				}
				result.AppendZone(revA)
				result.AppendZone(revB)
			}
		}
	}

	// Step 5: action steps, one synchronised event at a time. An event
	// available on only one side is itself a witness of non-bisimilarity
	// over the whole region where its edge is enabled.
	eventsA := vA.AvailEvents(stateAs)
	eventsB := vB.AvailEvents(stateBs)
	have := make(map[system.EventID]bool, len(eventsA)+len(eventsB))
	var events []system.EventID
	for _, e := range eventsA {
		if !have[e] {
			have[e] = true
			events = append(events, e)
		}
	}
	for _, e := range eventsB {
		if !have[e] {
			have[e] = true
			events = append(events, e)
		}
	}

	universal, err := vcg.NewVC(numVirtual)
	if err != nil {
		return nil, err
	}

	for _, sigma := range events {
		edgesA := vA.NextWithSymbol(stateAs, sigma)
		edgesB := vB.NextWithSymbol(stateBs, sigma)

		if len(edgesA) == 0 {
			for _, eB := range edgesB {
				guardB, resB := edgeGuardAndResets(eB)
				tgtVLocB := fireVLoc(sB.VLoc, eB)
				tgtInvB, err := locationInvariant(vB.Decl, tgtVLocB)
				if err != nil {
					return nil, err
				}
				revB, err := vB.RevertActionTrans(zBs, guardB, resB, tgtInvB, universal)
				if err != nil {
					return nil, err
				}
				result.AppendZone(revB)
			}
			continue
		}
		if len(edgesB) == 0 {
			for _, eA := range edgesA {
				guardA, resA := edgeGuardAndResets(eA)
				tgtVLocA := fireVLoc(sA.VLoc, eA)
				tgtInvA, err := locationInvariant(vA.Decl, tgtVLocA)
				if err != nil {
					return nil, err
				}
				revA, err := vA.RevertActionTrans(zAs, guardA, resA, tgtInvA, universal)
				if err != nil {
					return nil, err
				}
				result.AppendZone(revA)
			}
			continue
		}

		for _, eA := range edgesA {
			guardA, resA := edgeGuardAndResets(eA)
			tgtA, statusA, err := vA.Next(stateAs, eA)
			if err != nil {
				return nil, err
			}
			if !statusA.IsOK() {
				continue
			}
			tgtA = vA.Share(tgtA)

			for _, eB := range edgesB {
				guardB, resB := edgeGuardAndResets(eB)
				tgtB, statusB, err := vB.Next(stateBs, eB)
				if err != nil {
					return nil, err
				}
				if !statusB.IsOK() {
					continue
				}
				tgtB = vB.Share(tgtB)

				sub, err := recurse(tgtA, tgtB, resA, resB)
				if err != nil {
					return nil, err
				}
				if sub.IsEmpty() {
					continue
				}

				tgtInvA, err := locationInvariant(vA.Decl, tgtA.VLoc)
				if err != nil {
					return nil, err
				}
				tgtInvB, err := locationInvariant(vB.Decl, tgtB.VLoc)
				if err != nil {
					return nil, err
				}
				for _, piece := range sub.Zones() {
					revA, err := vA.RevertActionTrans(zAs, guardA, resA, tgtInvA, piece)
					if err != nil {
						return nil, err
					}
					revB, err := vB.RevertActionTrans(zBs, guardB, resB, tgtInvB, piece)
					if err != nil {
						return nil, err
					}
					result.AppendZone(revA)
					result.AppendZone(revB)
				}
			}
		}
	}

	// Step 6 (revert the step-2 sync) is subsumed above: every revert call
	// takes the synced zone (zAs/zBs) itself as its source, so the pulled
	// back region is already expressed against the pre-sync virtual
	// clocks without a further explicit unsync.

	// Step 7: compress and return.
	result.Compress()
	return result, nil
}

// edgeGuardAndResets concatenates the guard and reset of every component
// edge of a vedge, mirroring zg/ta.go's fire() without needing its
// unexported helpers: a Vedge's system.Edge values already carry their own
// Guard/Resets directly.
func edgeGuardAndResets(ve zg.Vedge) (clock.Constraints, clock.Resets) {
	var guard clock.Constraints
	var resets clock.Resets
	for _, e := range ve {
		guard = append(guard, e.Guard...)
		resets = append(resets, e.Resets...)
	}
	return guard, resets
}

// fireVLoc returns the location tuple reached by firing ve from src: every
// non-participating process stays in place, each participant moves to its
// edge's target (the same composition zg/ta.go's fire() performs).
func fireVLoc(src system.VLoc, ve zg.Vedge) system.VLoc {
	tgt := src.Clone()
	for _, e := range ve {
		tgt[e.Process] = e.Tgt
	}
	return tgt
}

// locationInvariant aggregates the conjunction of every process's current
// location invariant at vloc (the same aggregation zg/ta.go's invariantOf
// performs, recomputed here directly against decl since it is exported).
func locationInvariant(decl system.SystemDecl, vloc system.VLoc) (clock.Constraints, error) {
	var out clock.Constraints
	for p, l := range vloc {
		loc, err := decl.Location(system.ProcessID(p), l)
		if err != nil {
			return nil, err
		}
		out = append(out, loc.Invariant...)
	}
	return out, nil
}

// delayAllowed reports whether time may elapse with every process at its
// vloc location (the same rule zg/ta.go's delayAllowed applies).
func delayAllowed(decl system.SystemDecl, vloc system.VLoc) bool {
	for p, l := range vloc {
		loc, err := decl.Location(system.ProcessID(p), l)
		if err != nil {
			return false
		}
		if loc.Urgent || loc.Committed {
			return false
		}
	}
	return true
}
