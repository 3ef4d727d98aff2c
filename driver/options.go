package driver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ntacheck/ntacheck/bisim"
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/refzg"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// Option configures a Run* call via functional arguments. An invalid
// Option (e.g. a negative size hint) is recorded internally and surfaced
// as ErrOptionViolation when the driver runs.
type Option func(*Options)

// Options gathers every parameter a Run* function draws on, a superset of
// every Run* function's parameters: not every field applies to every entry
// point (a forward reachability run ignores WantWitness, RunBisim ignores
// Order), each Run* documents which of these it consults.
type Options struct {
	// Order selects the waiting-list discipline of a forward search.
	// Ignored by RunConcur19, which is always breadth-first
	// (refzg.Explore's doc comment).
	Order search.Order
	// Covering selects the subsumption policy of a forward search.
	Covering search.CoveringPolicy
	// LocalCovering is Covering's refzg counterpart, consulted only by
	// RunConcur19.
	LocalCovering refzg.Covering
	// Equivalence selects the node-equivalence relation ordinary
	// (non-local-time) searches use to decide covering.
	Equivalence search.Equivalence

	// Semantics selects the zone-graph semantics every Run* builds its
	// zg.ZG/refzg.RefZG/vcg.VCG over.
	Semantics semantics.Kind
	// Extrapolation selects the abstraction strategy every Run* except
	// RunBisim (whose VCGs are built with extrapolation.KindNone, see
	// RunBisim's doc comment) applies after each step.
	Extrapolation extrapolation.Kind
	// Oracle supplies clock bounds to both Extrapolation and ALU/sync-aLU
	// covering. A nil Oracle is valid for extrapolation.KindNone plus
	// Equivalence values that don't need bounds (Equality, Inclusion).
	Oracle clock.Oracle

	// Labels marks the states a reachability/liveness run treats as
	// final. Empty explores the whole state space.
	Labels []system.LabelID

	// BlockSize is a capacity hint for the zone-graph's state-sharing
	// allocator. Zero keeps the default sizing.
	BlockSize int
	// TableSize is a capacity hint for the explored-state store. Zero keeps the default sizing.
	TableSize int

	// ClockOwners assigns each system clock to the process that owns it
	// (clock.ID(k+1) owned by ClockOwners[k]), the distributed-clocks
	// precondition RunConcur19's reference-clock construction requires
	// (refzg.OneRefClockPerProcess's doc comment). Required by
	// RunConcur19, unused elsewhere.
	ClockOwners []clock.ID

	// PairMode selects RunBisim's visited-pair cutoff.
	PairMode bisim.SubsetMode
	// NumVirtualClocks is the number of bookkeeping virtual clocks each
	// side's VCG declares in addition to its own original clocks,
	// consulted only by RunBisim.
	NumVirtualClocks int
	// WantWitness requests the pair witness graph alongside RunBisim's
	// verdict.
	WantWitness bool
	// StartA/StartB override RunBisim's starting state on each side; nil
	// keeps the side's own initial state.
	StartA, StartB *zg.State

	// Logger receives structured progress/error events. Nil (the
	// default) is a valid, fully-silent logger: every log call site
	// checks Logger == nil first, so a nil Logger costs one comparison
	// rather than a nil-pointer panic.
	Logger *zerolog.Logger

	err error
}

// DefaultOptions returns the Options a bare Run* call uses: breadth-first
// order, full covering, zone-inclusion equivalence, standard semantics, no
// extrapolation, no oracle, no size hints, convex-union bisim cutoff with
// two virtual clocks per side, witness graphs off, logging disabled.
func DefaultOptions() Options {
	return Options{
		Order:            search.BFS,
		Covering:         search.CoveringFull,
		LocalCovering:    refzg.CoveringSyncALU,
		Equivalence:      search.Inclusion,
		Semantics:        semantics.KindStandard,
		Extrapolation:    extrapolation.KindNone,
		PairMode:         bisim.SubsetConvexUnion,
		NumVirtualClocks: 2,
	}
}

// WithSearchOrder sets the forward-search exploration order.
func WithSearchOrder(o search.Order) Option {
	return func(opt *Options) { opt.Order = o }
}

// WithCovering sets the forward-search subsumption policy.
func WithCovering(c search.CoveringPolicy) Option {
	return func(opt *Options) { opt.Covering = c }
}

// WithLocalCovering sets RunConcur19's sync-aLU/sync-aM covering choice.
func WithLocalCovering(c refzg.Covering) Option {
	return func(opt *Options) { opt.LocalCovering = c }
}

// WithEquivalence sets the node-equivalence relation a forward search
// covers by.
func WithEquivalence(e search.Equivalence) Option {
	return func(opt *Options) { opt.Equivalence = e }
}

// WithSemantics selects the zone-graph semantics.
func WithSemantics(k semantics.Kind) Option {
	return func(opt *Options) { opt.Semantics = k }
}

// WithExtrapolation selects the extrapolation strategy.
func WithExtrapolation(k extrapolation.Kind) Option {
	return func(opt *Options) { opt.Extrapolation = k }
}

// WithOracle supplies the clock-bounds oracle. A nil oracle is left in
// place (DefaultOptions' nil, not an error): callers who only need
// Equality/Inclusion covering and KindNone extrapolation never need one.
func WithOracle(o clock.Oracle) Option {
	return func(opt *Options) { opt.Oracle = o }
}

// WithLabels sets the accepting/final label set.
func WithLabels(labels ...system.LabelID) Option {
	return func(opt *Options) { opt.Labels = labels }
}

// WithBlockSize sets the zone-graph allocator's capacity hint. Negative
// values are an ErrOptionViolation.
func WithBlockSize(n int) Option {
	return func(opt *Options) {
		if n < 0 {
			opt.err = fmt.Errorf("%w: block size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		opt.BlockSize = n
	}
}

// WithTableSize sets the explored-state store's capacity hint. Negative
// values are an ErrOptionViolation.
func WithTableSize(n int) Option {
	return func(opt *Options) {
		if n < 0 {
			opt.err = fmt.Errorf("%w: table size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		opt.TableSize = n
	}
}

// WithClockOwners sets RunConcur19's clock-to-process ownership map.
func WithClockOwners(owners []clock.ID) Option {
	return func(opt *Options) { opt.ClockOwners = owners }
}

// WithPairMode sets RunBisim's visited-pair cutoff.
func WithPairMode(m bisim.SubsetMode) Option {
	return func(opt *Options) { opt.PairMode = m }
}

// WithNumVirtualClocks sets the virtual-clock count RunBisim declares on
// each side. Values below 2 are an ErrOptionViolation. Each system passed
// to RunBisim declares these virtual clocks after its own clocks.
func WithNumVirtualClocks(n int) Option {
	return func(opt *Options) {
		if n < 2 {
			opt.err = fmt.Errorf("%w: NumVirtualClocks must be at least 2 (%d)", ErrOptionViolation, n)
			return
		}
		opt.NumVirtualClocks = n
	}
}

// WithWitness requests RunBisim to also build the pair witness graph.
func WithWitness(want bool) Option {
	return func(opt *Options) { opt.WantWitness = want }
}

// WithStartStates overrides RunBisim's starting states. Either argument
// may be nil to keep that side's own initial state.
func WithStartStates(startA, startB *zg.State) Option {
	return func(opt *Options) {
		opt.StartA = startA
		opt.StartB = startB
	}
}

// WithLogger attaches a structured logger. A nil logger is equivalent to
// omitting WithLogger (logging stays disabled).
func WithLogger(l *zerolog.Logger) Option {
	return func(opt *Options) {
		if l != nil {
			opt.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
