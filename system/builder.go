package system

import "github.com/ntacheck/ntacheck/clock"

// LocationOption customizes a location added by Builder.AddLocation.
type LocationOption func(*Location)

// WithInitial marks the location as its process's initial location.
func WithInitial() LocationOption {
	return func(l *Location) { l.Initial = true }
}

// WithUrgent marks the location urgent.
func WithUrgent() LocationOption {
	return func(l *Location) { l.Urgent = true }
}

// WithCommitted marks the location committed.
func WithCommitted() LocationOption {
	return func(l *Location) { l.Committed = true }
}

// WithLabels attaches user labels to the location.
func WithLabels(labels ...LabelID) LocationOption {
	return func(l *Location) { l.Labels = append(l.Labels, labels...) }
}

type varDomain struct{ lo, hi int32 }

type processDecl struct {
	locations  map[LocationID]Location
	order      []LocationID
	initial    LocationID
	hasInitial bool
	outgoing   map[LocationID][]Edge
	incoming   map[LocationID][]Edge
}

// Model is the in-memory SystemDecl built by Builder: a programmatic
// reference system, not a parser.
type Model struct {
	processes     []processDecl
	clockCount    int
	intVars       []varDomain
	initialIntVal IntVal
	labelNames    []string
	eventNames    []string
	sync          map[EventID][]ProcessID
}

var _ SystemDecl = (*Model)(nil)

func (m *Model) ProcessCount() int { return len(m.processes) }
func (m *Model) ClockCount() int   { return m.clockCount }
func (m *Model) IntVarCount() int  { return len(m.intVars) }

func (m *Model) IntVarDomain(id VarID) (lo, hi int32) {
	d := m.intVars[int(id)]
	return d.lo, d.hi
}

func (m *Model) InitialIntVal() IntVal { return m.initialIntVal.Clone() }

func (m *Model) InitialLocation(p ProcessID) (LocationID, error) {
	if int(p) >= len(m.processes) {
		return 0, ErrUnknownProcess
	}
	pd := m.processes[p]
	if !pd.hasInitial {
		return 0, ErrNoInitialLocation
	}
	return pd.initial, nil
}

func (m *Model) Location(p ProcessID, l LocationID) (Location, error) {
	if int(p) >= len(m.processes) {
		return Location{}, ErrUnknownProcess
	}
	loc, ok := m.processes[p].locations[l]
	if !ok {
		return Location{}, ErrUnknownLocation
	}
	return loc, nil
}

func (m *Model) Locations(p ProcessID) []LocationID {
	if int(p) >= len(m.processes) {
		return nil
	}
	return m.processes[p].order
}

func (m *Model) OutgoingEdges(p ProcessID, l LocationID) []Edge {
	if int(p) >= len(m.processes) {
		return nil
	}
	return m.processes[p].outgoing[l]
}

func (m *Model) IncomingEdges(p ProcessID, l LocationID) []Edge {
	if int(p) >= len(m.processes) {
		return nil
	}
	return m.processes[p].incoming[l]
}

// SyncParticipants returns the declared participants of e, or nil if e was
// never declared synchronizing (a private, interleaved event).
func (m *Model) SyncParticipants(e EventID) []ProcessID {
	return m.sync[e]
}

func (m *Model) LabelName(id LabelID) string {
	if int(id) >= len(m.labelNames) {
		return ""
	}
	return m.labelNames[id]
}

func (m *Model) EventName(id EventID) string {
	if int(id) >= len(m.eventNames) {
		return ""
	}
	return m.eventNames[id]
}

// Builder constructs a Model one process/location/edge at a time: mutating
// methods returning an error instead of functional options, since edges
// and locations here carry too much per-call state for an option list.
type Builder struct {
	m *Model
}

// NewBuilder starts a Builder for a system with clockCount real clocks.
func NewBuilder(clockCount int) *Builder {
	return &Builder{m: &Model{clockCount: clockCount}}
}

// DeclareIntVar registers a bounded-integer variable and returns its id.
func (b *Builder) DeclareIntVar(lo, hi int32) VarID {
	id := VarID(len(b.m.intVars))
	b.m.intVars = append(b.m.intVars, varDomain{lo: lo, hi: hi})
	b.m.initialIntVal = append(b.m.initialIntVal, lo)
	return id
}

// DeclareLabel registers a user label and returns its id.
func (b *Builder) DeclareLabel(name string) LabelID {
	id := LabelID(len(b.m.labelNames))
	b.m.labelNames = append(b.m.labelNames, name)
	return id
}

// DeclareEvent registers a synchronisation event and returns its id.
func (b *Builder) DeclareEvent(name string) EventID {
	id := EventID(len(b.m.eventNames))
	b.m.eventNames = append(b.m.eventNames, name)
	return id
}

// DeclareSync marks event e as requiring joint participation from every
// process in participants: it can only fire when all of them have an
// edge on e enabled simultaneously.
func (b *Builder) DeclareSync(e EventID, participants ...ProcessID) {
	if b.m.sync == nil {
		b.m.sync = make(map[EventID][]ProcessID)
	}
	b.m.sync[e] = append([]ProcessID(nil), participants...)
}

// AddProcess registers a new sequential process and returns its id.
func (b *Builder) AddProcess() ProcessID {
	id := ProcessID(len(b.m.processes))
	b.m.processes = append(b.m.processes, processDecl{
		locations: make(map[LocationID]Location),
		outgoing:  make(map[LocationID][]Edge),
		incoming:  make(map[LocationID][]Edge),
	})
	return id
}

// AddLocation registers a location of process p and returns its id.
func (b *Builder) AddLocation(p ProcessID, name string, invariant clock.Constraints, opts ...LocationOption) (LocationID, error) {
	if int(p) >= len(b.m.processes) {
		return 0, ErrUnknownProcess
	}
	pd := &b.m.processes[p]
	id := LocationID(len(pd.order))
	if _, exists := pd.locations[id]; exists {
		return 0, ErrDuplicateLocation
	}
	loc := Location{ID: id, Process: p, Name: name, Invariant: invariant}
	for _, opt := range opts {
		opt(&loc)
	}
	pd.locations[id] = loc
	pd.order = append(pd.order, id)
	if loc.Initial {
		pd.initial = id
		pd.hasInitial = true
	}
	return id, nil
}

// AddEdge registers an edge of process p from src to tgt.
func (b *Builder) AddEdge(p ProcessID, src, tgt LocationID, event EventID, guard clock.Constraints, resets clock.Resets) error {
	if int(p) >= len(b.m.processes) {
		return ErrUnknownProcess
	}
	pd := &b.m.processes[p]
	if _, ok := pd.locations[src]; !ok {
		return ErrBadEdgeEndpoint
	}
	if _, ok := pd.locations[tgt]; !ok {
		return ErrBadEdgeEndpoint
	}
	e := Edge{Src: src, Tgt: tgt, Process: p, Event: event, Guard: guard, Resets: resets}
	pd.outgoing[src] = append(pd.outgoing[src], e)
	pd.incoming[tgt] = append(pd.incoming[tgt], e)
	return nil
}

// Build validates that every process has an initial location and returns
// the finished Model.
func (b *Builder) Build() (*Model, error) {
	for _, pd := range b.m.processes {
		if !pd.hasInitial {
			return nil, ErrNoInitialLocation
		}
	}
	return b.m, nil
}
