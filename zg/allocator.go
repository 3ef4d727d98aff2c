package zg

// allocator hash-conses States by content hash, mirroring the original's
// block allocator + shared-pointer canonicalisation with a plain Go map instead of a memory pool: Go's GC already owns
// the states' lifetime, so the only thing worth keeping is canonicalisation
// (so that Equal states collapse to a single pointer, shrinking explored
// stores that key on pointer identity upstream).
type allocator struct {
	table map[uint64][]*State
}

func newAllocator() *allocator {
	return newAllocatorSized(0)
}

// newAllocatorSized is newAllocator with a caller-supplied capacity hint:
// a caller who already knows
// roughly how many distinct states it will share can avoid the table's
// early rehashing.
func newAllocatorSized(hint int) *allocator {
	return &allocator{table: make(map[uint64][]*State, hint)}
}

// share returns a canonical pointer equal to s: an existing entry if one
// matches, otherwise s itself after registering it.
func (a *allocator) share(s *State) *State {
	h := s.Hash()
	for _, cand := range a.table[h] {
		if cand.Equal(s) {
			return cand
		}
	}
	a.table[h] = append(a.table[h], s)
	return s
}
