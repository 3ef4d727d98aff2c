// Package stats implements the statistics record: the keys
// every search/bisim driver reports (visited/stored state counts, whether
// the target was reached, run time, peak memory, and the bisim-specific
// pair-visited/relationship-fulfilled counters), plus an optional
// Prometheus exporter for long-running driver processes.
package stats
