package dbm_test

import (
	"fmt"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// ExampleConstrain builds the zone x>0 on a single clock and prints its
// emptiness and whether the constrained DBM is tight.
func ExampleConstrain() {
	m, err := dbm.New(2)
	if err != nil {
		panic(err)
	}
	dbm.UniversalPositive(m)

	if _, err := dbm.Constrain(m, clock.Zero, clock.ID(1), clock.LT, 0); err != nil {
		panic(err)
	}

	fmt.Println("empty:", dbm.IsEmpty0(m))
	fmt.Println("tight:", dbm.IsTight(m))
	// Output:
	// empty: false
	// tight: true
}

// ExampleOutput serialises a zone into the textual constraint format and
// parses it back.
func ExampleOutput() {
	names := map[string]clock.ID{"x": 1}
	lookup := func(s string) (clock.ID, bool) { id, ok := names[s]; return id, ok }
	clockName := func(id clock.ID) string { return "x" }

	m, err := dbm.New(2)
	if err != nil {
		panic(err)
	}
	dbm.UniversalPositive(m)
	if _, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 7); err != nil {
		panic(err)
	}

	text := dbm.Output(m, clockName)
	fmt.Println(text)

	reparsed, err := dbm.New(2)
	if err != nil {
		panic(err)
	}
	dbm.UniversalPositive(reparsed)
	if err := dbm.ParseZone(reparsed, text, lookup); err != nil {
		panic(err)
	}
	fmt.Println("round-trip equal:", dbm.IsEqual(m, reparsed))
	// Output:
	// x <= 7
	// round-trip equal: true
}
