package clock

import "fmt"

// ID identifies a clock within a DBM of some fixed dimension. Index 0 is
// reserved for the synthetic zero-clock; real clocks start at 1.
type ID uint32

// Zero is the reserved zero-clock index.
const Zero ID = 0

// Cmp is the comparator of a difference constraint x - y Cmp value.
type Cmp uint8

const (
	// LT is strict inequality <.
	LT Cmp = iota
	// LE is non-strict inequality <=.
	LE
)

// String renders the comparator as it appears in the serialised zone format.
func (c Cmp) String() string {
	if c == LE {
		return "<="
	}
	return "<"
}

// Constraint is a single difference constraint x - y Cmp Value.
// Y == Zero means the constraint is a simple bound on X (x <= value or
// x < value); X == Zero encodes a lower bound on Y.
type Constraint struct {
	X, Y  ID
	Cmp   Cmp
	Value int32
}

// String prints the constraint the way the serialised zone format does,
// omitting the zero-clock operand.
func (c Constraint) String() string {
	if c.Y == Zero {
		return fmt.Sprintf("x%d %s %d", c.X, c.Cmp, c.Value)
	}
	return fmt.Sprintf("x%d - x%d %s %d", c.X, c.Y, c.Cmp, c.Value)
}

// Constraints is a conjunction of Constraint, in the fixed order they were
// declared.
type Constraints []Constraint

// Reset is a clock reset x := y + value. The bisimulation core only ever
// admits resets with Y == refclock and Value == 0; other components allow
// the general form.
type Reset struct {
	X, Y  ID
	Value int32
}

// Resets is a set of clock resets fired together by one transition.
type Resets []Reset

// NoBound is the sentinel returned by a clock-bounds oracle for a clock that
// has no constraint in the system. It compares above
// every bound a real constraint could carry, so ExtraLU/ExtraM treat an
// unbounded clock as never eligible for clamping.
const NoBound int32 = 1<<30 - 1

// Bounds holds the per-clock L/U/M maps produced by a clock-bounds oracle
// for one NTA. Index 0 (the slice index, not the clock ID) maps
// to clock ID 1, matching the C++ convention "L[0] is the bound for clock 1"
// that the dbm kernel's extrapolation entry points also follow.
type Bounds struct {
	L []int32
	U []int32
	M []int32
}

// NewBounds allocates a Bounds for nbClocks system clocks (clocks 1..nbClocks),
// all bounds initialised to NoBound.
func NewBounds(nbClocks int) Bounds {
	b := Bounds{
		L: make([]int32, nbClocks),
		U: make([]int32, nbClocks),
		M: make([]int32, nbClocks),
	}
	for i := range b.L {
		b.L[i] = NoBound
		b.U[i] = NoBound
		b.M[i] = NoBound
	}
	return b
}

// Oracle is the external clock-bounds collaborator: given a
// system and, for the local variants, a location tuple, it returns the
// global or per-location L/U/M maps. The core never computes these bounds
// itself; it only consumes them.
type Oracle interface {
	// Global returns the global L, U, M maps over all system clocks.
	Global() Bounds
	// Local returns the L, U, M maps for the given location tuple. The
	// vloc argument is opaque to this package; concrete oracles are built
	// against a concrete system.VLoc type.
	Local(vloc any) Bounds
}
