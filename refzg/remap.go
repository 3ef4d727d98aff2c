package refzg

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/refdbm"
)

// refVar maps a system clock id in the shared-zero-clock numbering to its variable index in a
// refdbm.RefClocks-laid-out reference DBM. x must not be clock.Zero.
func refVar(r refdbm.RefClocks, x clock.ID) clock.ID {
	return clock.ID(r.RefCount) + x - 1
}

// refConstraint translates one guard/invariant constraint out of the
// shared-zero-clock numbering into r's reference-DBM numbering. A bound
// against the global zero clock (x<=v or v<=y) only has meaning relative to
// *some* origin; the local-time semantics' origin for clock x is x's own
// process's reference clock, recovered via r.RefOf. A genuine two-clock
// difference constraint carries no zero-clock operand and translates
// unchanged (a difference between two clocks does not depend on which
// clock is called "zero").
func refConstraint(r refdbm.RefClocks, c clock.Constraint) clock.Constraint {
	switch {
	case c.Y == clock.Zero:
		xv := refVar(r, c.X)
		return clock.Constraint{X: xv, Y: r.RefOf(xv), Cmp: c.Cmp, Value: c.Value}
	case c.X == clock.Zero:
		yv := refVar(r, c.Y)
		return clock.Constraint{X: r.RefOf(yv), Y: yv, Cmp: c.Cmp, Value: c.Value}
	default:
		return clock.Constraint{X: refVar(r, c.X), Y: refVar(r, c.Y), Cmp: c.Cmp, Value: c.Value}
	}
}

// refConstraints translates a whole conjunction, preserving order.
func refConstraints(r refdbm.RefClocks, cs clock.Constraints) clock.Constraints {
	if len(cs) == 0 {
		return nil
	}
	out := make(clock.Constraints, len(cs))
	for i, c := range cs {
		out[i] = refConstraint(r, c)
	}
	return out
}

// refResetXY translates a reset x := y + value into the (x, y, value)
// triple to apply directly against the reference DBM. y==Zero ("x :=
// value") becomes a reset to x's own reference clock plus value, matching
// how a process's local clock actually restarts relative to its own
// reference (not the global origin every other process also shares in the
// ordinary zone graph).
func refResetXY(r refdbm.RefClocks, reset clock.Reset) (x, y clock.ID, value int32) {
	xv := refVar(r, reset.X)
	if reset.Y == clock.Zero {
		return xv, r.RefOf(xv), reset.Value
	}
	return xv, refVar(r, reset.Y), reset.Value
}
