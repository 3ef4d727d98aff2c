package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ntacheck/ntacheck/stats"
)

func TestRecord_FinishPopulatesRunTime(t *testing.T) {
	t.Parallel()

	r := stats.New()
	r.IncVisitedStates()
	r.IncVisitedStates()
	r.IncVisitedTransitions()
	r.SetStoredStates(2)
	r.Reachable = true
	r.Finish()

	m := r.AsMap()
	require.Equal(t, "2", m["VISITED_STATES"])
	require.Equal(t, "true", m["REACHABLE"])
	require.False(t, r.RunTimeSeconds < 0)
}

func TestExporter_ObserveDoesNotPanic(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	e := stats.NewExporter(reg)

	r := stats.New()
	r.IncVisitedStates()
	r.Finish()
	e.Observe(r)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEqual(t, 0, len(families))
}
