package system

// SystemDecl is the external collaborator: it yields the
// NTA a zone graph is built over (processes, locations, urgency, events,
// edges with guards/resets, invariants, variables, labels). Parsing the
// modelling language into a SystemDecl is out of scope; this
// module only consumes the interface, via either a hand-supplied
// implementation or the in-memory Builder below.
type SystemDecl interface {
	// ProcessCount returns the number of sequential processes.
	ProcessCount() int
	// ClockCount returns the number of real clocks (excluding the
	// synthetic zero-clock at index 0).
	ClockCount() int
	// IntVarCount returns the number of bounded-integer variables.
	IntVarCount() int
	// IntVarDomain returns the declared [lo, hi] domain of a variable.
	IntVarDomain(id VarID) (lo, hi int32)
	// InitialLocation returns the initial location of process p.
	InitialLocation(p ProcessID) (LocationID, error)
	// InitialIntVal returns the initial integer valuation of the system.
	InitialIntVal() IntVal
	// Location returns the full declaration of location l in process p.
	Location(p ProcessID, l LocationID) (Location, error)
	// Locations returns every location id of process p.
	Locations(p ProcessID) []LocationID
	// OutgoingEdges returns every edge of process p leaving location l.
	OutgoingEdges(p ProcessID, l LocationID) []Edge
	// IncomingEdges returns every edge of process p entering location l.
	IncomingEdges(p ProcessID, l LocationID) []Edge
	// LabelName returns the user-facing name of a label.
	LabelName(id LabelID) string
	// EventName returns the user-facing name of an event.
	EventName(id EventID) string
	// SyncParticipants returns the processes that must jointly fire event
	// e for it to occur at all. A single-element (or empty) result means e is a private,
	// interleaved event: any one process with an enabled edge on e may
	// fire it alone.
	SyncParticipants(e EventID) []ProcessID
}
