// Package simulate builds one-step, randomized and interactive simulation
// traces over a zone graph, in both symbolic and concrete variants: given
// a state, it lists every successor a driver or a human can choose from,
// and threads a chosen succession of choices into a trace graph the same
// way package search accumulates its reachability graph. A concrete
// stepper narrows a chosen symbolic successor down to a single integer
// clock valuation.
package simulate
