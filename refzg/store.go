package refzg

import "github.com/ntacheck/ntacheck/graph"

// entry pairs a graph node (holding the state's ZG-compatible projection)
// with the local-time state that produced it, since covering must compare
// reference DBMs directly (sync-aLU restricts each side to its own
// synchronized sub-zone first, a step the projection has already collapsed
// away).
type entry struct {
	node   *graph.Node
	rstate *State
}

// refStore indexes explored entries by discrete part for covering lookups,
// mirroring package search's store.
type refStore struct {
	byDiscrete map[uint64][]*entry
}

func newRefStore() *refStore {
	return &refStore{byDiscrete: make(map[uint64][]*entry)}
}

func discreteKey(s *State) uint64 {
	return s.VLoc.Hash() ^ (s.IntVal.Hash() * 1000003)
}

func (st *refStore) insert(e *entry) {
	key := discreteKey(e.rstate)
	st.byDiscrete[key] = append(st.byDiscrete[key], e)
}

func (st *refStore) candidates(s *State) []*entry {
	return st.byDiscrete[discreteKey(s)]
}
