package driver

import "github.com/ntacheck/ntacheck/stats"

// logProgress emits one Debug-level event per Run* completion carrying
// the statistics fields (visited_states, stored_states, ...), and one
// Trace-level event with covering_hit and extrapolation_applied. A nil
// Logger is a no-op:
// every call site checks that before touching zerolog's API.
func logProgress(o Options, op string, rec *stats.Record) {
	if o.Logger == nil {
		return
	}
	ev := o.Logger.Debug()
	ev.Str("operation", op).
		Uint64("visited_states", rec.VisitedStates).
		Uint64("visited_transitions", rec.VisitedTransitions).
		Uint64("stored_states", rec.StoredStates).
		Bool("reachable", rec.Reachable).
		Float64("run_time_seconds", rec.RunTimeSeconds).
		Msg("run complete")

	te := o.Logger.Trace()
	te.Str("operation", op).
		Bool("covering_hit", rec.StoredStates < rec.VisitedStates).
		Str("extrapolation_applied", o.Extrapolation.String()).
		Msg("run detail")
}

// logError emits a single Error-level event carrying the operation name
// and the failure, so a caller can grep logs for run failures without
// inspecting the returned error directly.
func logError(o Options, op string, err error) {
	if o.Logger == nil || err == nil {
		return
	}
	o.Logger.Error().Str("operation", op).Msg("run failed: " + err.Error())
}
