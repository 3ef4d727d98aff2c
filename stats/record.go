package stats

import (
	"runtime"
	"time"
)

// Record holds the statistics kept for a single search/bisim run. Zero
// value is a valid, freshly-started record.
type Record struct {
	VisitedStates       uint64
	VisitedTransitions  uint64
	StoredStates        uint64
	Reachable           bool
	Cycle               bool
	RunTimeSeconds      float64
	MemoryMaxRSS        uint64
	VisitedPairOfStates uint64
	RelationshipFulfilled bool

	start time.Time
}

// New returns a Record with its run-time clock started.
func New() *Record {
	return &Record{start: time.Now()}
}

// IncVisitedStates increments the visited-state counter by one.
func (r *Record) IncVisitedStates() { r.VisitedStates++ }

// IncVisitedTransitions increments the visited-transition counter by one.
func (r *Record) IncVisitedTransitions() { r.VisitedTransitions++ }

// SetStoredStates sets the stored-state counter to n.
func (r *Record) SetStoredStates(n uint64) { r.StoredStates = n }

// IncVisitedPairOfStates increments the bisim pair-visited counter by one.
func (r *Record) IncVisitedPairOfStates() { r.VisitedPairOfStates++ }

// Finish stops the run-time clock and records the Go runtime's total memory
// obtained from the OS (runtime.MemStats.Sys) as MemoryMaxRSS, not a measured
// peak resident set size; callers invoke this once, after
// the search or bisim algorithm returns.
func (r *Record) Finish() {
	r.RunTimeSeconds = time.Since(r.start).Seconds()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	r.MemoryMaxRSS = ms.Sys
}

// AsMap renders the record as a string-keyed map, for callers that
// serialise statistics generically (e.g. the certificate sink).
func (r *Record) AsMap() map[string]string {
	return map[string]string{
		"VISITED_STATES":         uitoa(r.VisitedStates),
		"VISITED_TRANSITIONS":    uitoa(r.VisitedTransitions),
		"STORED_STATES":          uitoa(r.StoredStates),
		"REACHABLE":              btoa(r.Reachable),
		"CYCLE":                  btoa(r.Cycle),
		"RUN_TIME_SECONDS":       ftoa(r.RunTimeSeconds),
		"MEMORY_MAX_RSS":         uitoa(r.MemoryMaxRSS),
		"VISITED_PAIR_OF_STATES": uitoa(r.VisitedPairOfStates),
		"RELATIONSHIP_FULFILLED": btoa(r.RelationshipFulfilled),
	}
}
