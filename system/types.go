package system

import (
	"github.com/OneOfOne/xxhash"

	"github.com/ntacheck/ntacheck/clock"
)

// ProcessID identifies one sequential timed process within an NTA.
type ProcessID uint32

// LocationID identifies a location within its process. Location ids are
// only unique per-process, not across the whole system.
type LocationID uint32

// EventID identifies a synchronisation event shared by name across
// processes.
type EventID uint32

// LabelID identifies a user-declared label attached to locations.
type LabelID uint32

// VarID identifies a bounded-integer variable.
type VarID uint32

// Location is one control state of a process.
type Location struct {
	ID        LocationID
	Process   ProcessID
	Name      string
	Invariant clock.Constraints
	Labels    []LabelID
	Initial   bool
	Urgent    bool
	Committed bool
}

// Edge is one transition of a process.
type Edge struct {
	Src, Tgt LocationID
	Process  ProcessID
	Event    EventID
	Guard    clock.Constraints
	Resets   clock.Resets
}

// VLoc is a location tuple, one location id per process, in process order.
type VLoc []LocationID

// Clone returns an independent copy of v.
func (v VLoc) Clone() VLoc {
	out := make(VLoc, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and other name the same location in every process.
func (v VLoc) Equal(other VLoc) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Hash returns a content hash of v, used by the zone-graph allocator's
// hash-consing tables.
func (v VLoc) Hash() uint64 {
	h := xxhash.New64()
	buf := make([]byte, 4*len(v))
	for i, id := range v {
		off := i * 4
		buf[off] = byte(id)
		buf[off+1] = byte(id >> 8)
		buf[off+2] = byte(id >> 16)
		buf[off+3] = byte(id >> 24)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

// IntVal is a bounded-integer valuation, indexed directly by VarID.
type IntVal []int32

// Clone returns an independent copy of iv.
func (iv IntVal) Clone() IntVal {
	out := make(IntVal, len(iv))
	copy(out, iv)
	return out
}

// Equal reports whether iv and other assign the same value to every variable.
func (iv IntVal) Equal(other IntVal) bool {
	if len(iv) != len(other) {
		return false
	}
	for i := range iv {
		if iv[i] != other[i] {
			return false
		}
	}
	return true
}

// Hash returns a content hash of iv, used alongside VLoc.Hash for
// zone-graph state hash-consing.
func (iv IntVal) Hash() uint64 {
	h := xxhash.New64()
	buf := make([]byte, 4*len(iv))
	for i, v := range iv {
		off := i * 4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}
