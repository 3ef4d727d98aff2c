package stats

import "github.com/prometheus/client_golang/prometheus"

// Exporter mirrors a Record's counters and gauges into a Prometheus
// registry, for drivers run as long-lived services.
type Exporter struct {
	visitedStates       prometheus.Gauge
	visitedTransitions  prometheus.Gauge
	storedStates        prometheus.Gauge
	visitedPairOfStates prometheus.Gauge
	runTimeSeconds      prometheus.Gauge
	memoryMaxRSS        prometheus.Gauge
}

// NewExporter registers the metrics onto reg (use prometheus.NewRegistry
// for test isolation, or prometheus.DefaultRegisterer for a process-wide
// exporter). The metrics are gauges, not counters: a Record's fields are
// already running totals, and Observe replaces rather than accumulates.
func NewExporter(reg prometheus.Registerer) *Exporter {
	e := &Exporter{
		visitedStates:       prometheus.NewGauge(prometheus.GaugeOpts{Name: "ntacheck_visited_states", Help: "States visited by the search driver"}),
		visitedTransitions:  prometheus.NewGauge(prometheus.GaugeOpts{Name: "ntacheck_visited_transitions", Help: "Transitions visited by the search driver"}),
		storedStates:        prometheus.NewGauge(prometheus.GaugeOpts{Name: "ntacheck_stored_states", Help: "States currently held in the explored store"}),
		visitedPairOfStates: prometheus.NewGauge(prometheus.GaugeOpts{Name: "ntacheck_visited_pair_of_states", Help: "State pairs visited by the bisimulation check"}),
		runTimeSeconds:      prometheus.NewGauge(prometheus.GaugeOpts{Name: "ntacheck_run_time_seconds", Help: "Wall-clock run time of the last completed run"}),
		memoryMaxRSS:        prometheus.NewGauge(prometheus.GaugeOpts{Name: "ntacheck_memory_max_rss_bytes", Help: "Peak resident set size sampled at run completion"}),
	}
	reg.MustRegister(e.visitedStates, e.visitedTransitions, e.storedStates, e.visitedPairOfStates, e.runTimeSeconds, e.memoryMaxRSS)
	return e
}

// Observe pushes r's current counters into the exporter's metrics. Callers
// may call Observe repeatedly during a long search to keep a dashboard
// live, not only once at the end.
func (e *Exporter) Observe(r *Record) {
	e.visitedStates.Set(float64(r.VisitedStates))
	e.visitedTransitions.Set(float64(r.VisitedTransitions))
	e.storedStates.Set(float64(r.StoredStates))
	e.visitedPairOfStates.Set(float64(r.VisitedPairOfStates))
	e.runTimeSeconds.Set(r.RunTimeSeconds)
	e.memoryMaxRSS.Set(float64(r.MemoryMaxRSS))
}
