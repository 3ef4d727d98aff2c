package search

import (
	"encoding/binary"

	cuckoo "github.com/seiflotfy/cuckoofilter"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/graph"
	"github.com/ntacheck/ntacheck/zg"
)

// filterSize is the initial capacity of a store's fast-reject filter; the
// filter auto-expands past it (seiflotfy/cuckoofilter grows its bucket
// array on insert pressure), so this only tunes the common case's false
// positive rate rather than bounding store size.
const filterSize = 1 << 14

// store indexes explored nodes by discrete part (vloc, intval) for
// covering lookups. filter is an approximate
// membership probe consulted before the exact map lookup: a miss there is
// certain, so candidates/findCovering/findCovered skip the map entirely
// for discrete parts never inserted, at the cost of occasionally walking
// the map for a false positive.
type store struct {
	byDiscrete map[uint64][]*graph.Node
	filter     *cuckoo.Filter
}

func newStore() *store {
	return newStoreSized(0)
}

// newStoreSized is newStore with a caller-supplied capacity hint: hint preallocates the discrete-part
// map and sizes the fast-reject filter to the expected state count instead
// of the generic default, cutting rehashing/filter-growth on a caller who
// already knows roughly how large the state space will get. hint<=0 keeps
// the defaults.
func newStoreSized(hint int) *store {
	fsize := uint(filterSize)
	if hint > 0 {
		fsize = uint(hint)
	}
	return &store{
		byDiscrete: make(map[uint64][]*graph.Node, hint),
		filter:     cuckoo.NewFilter(fsize),
	}
}

func discreteKey(s *zg.State) uint64 {
	return s.VLoc.Hash() ^ (s.IntVal.Hash() * 1000003)
}

func keyBytes(key uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], key)
	return b[:]
}

// candidates returns every stored node sharing candidate's discrete part.
func (st *store) candidates(s *zg.State) []*graph.Node {
	key := discreteKey(s)
	if !st.filter.Lookup(keyBytes(key)) {
		return nil
	}
	return st.byDiscrete[key]
}

// insert adds n to the store.
func (st *store) insert(n *graph.Node) {
	key := discreteKey(n.State)
	st.filter.InsertUnique(keyBytes(key))
	st.byDiscrete[key] = append(st.byDiscrete[key], n)
}

// remove drops n from the store. The filter is left untouched: cuckoofilter deletes are only
// safe for keys actually inserted via InsertUnique without a duplicate
// insert racing it, a guarantee this store cannot make across its whole
// bucket lifetime, and a stale filter entry only ever costs an extra,
// harmless map lookup that returns an empty bucket.
func (st *store) remove(n *graph.Node) {
	key := discreteKey(n.State)
	bucket := st.byDiscrete[key]
	for i, cand := range bucket {
		if cand.ID == n.ID {
			st.byDiscrete[key] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// findCovering returns the first stored node that covers candidate under
// eq, or nil.
func (st *store) findCovering(eq Equivalence, oracle clock.Oracle, candidate *zg.State) *graph.Node {
	for _, cand := range st.candidates(candidate) {
		if Covers(eq, oracle, cand.State, candidate) {
			return cand
		}
	}
	return nil
}

// findCovered returns every stored node that candidate covers under eq
// (the reverse direction, for COVERING_FULL's "remove subsumed" step).
func (st *store) findCovered(eq Equivalence, oracle clock.Oracle, candidate *zg.State) []*graph.Node {
	var out []*graph.Node
	for _, cand := range st.candidates(candidate) {
		if Covers(eq, oracle, candidate, cand.State) {
			out = append(out, cand)
		}
	}
	return out
}
