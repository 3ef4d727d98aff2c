// Package driver_test demonstrates the one-call entry points with
// runnable examples.
package driver_test

import (
	"fmt"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/driver"
	"github.com/ntacheck/ntacheck/system"
)

// ExampleRunReach demonstrates an exhaustive, non-subsuming reachability
// search over a single self-looping location, reset and guarded so that
// the loop always takes at least two time units.
func ExampleRunReach() {
	// 1) Declare a single process with one clock and a self-loop.
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	looped := b.DeclareLabel("looped")

	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -2}}
	reset := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}

	loc, _ := b.AddLocation(p, "loc0", nil, system.WithInitial(), system.WithLabels(looped))
	_ = b.AddEdge(p, loc, loc, ev, guard, reset)
	decl, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The initial state already carries the "looped" label, so
	//    RunReach reports it found on its very first visited state.
	res, err := driver.RunReach(decl, driver.WithLabels(looped))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v states=%d\n", res.Found, res.Stats.VisitedStates)
	// Output: found=true states=1
}

// ExampleRunBisim demonstrates strong timed bisimulation between two
// identical one-clock self-loops. Each system declares 3 clocks: the
// original clock x1 plus the two virtual clocks RunBisim uses by default.
func ExampleRunBisim() {
	build := func() system.SystemDecl {
		b := system.NewBuilder(3)
		p := b.AddProcess()
		ev := b.DeclareEvent("go")
		guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -2}}
		reset := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}
		loc, _ := b.AddLocation(p, "loc0", nil, system.WithInitial())
		_ = b.AddEdge(p, loc, loc, ev, guard, reset)
		decl, _ := b.Build()
		return decl
	}

	res, err := driver.RunBisim(build(), build())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("bisimilar=%v\n", res.Fulfilled)
	// Output: bisimilar=true
}
