package dbm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ntacheck/ntacheck/clock"
)

// OutputMatrix renders m as a raw dim*dim matrix of "op v" entries, one row
// per line, mainly useful for debugging and tests.
func OutputMatrix(m *DBM) string {
	var sb strings.Builder
	for i := 0; i < m.Dim; i++ {
		for j := 0; j < m.Dim; j++ {
			if j > 0 {
				sb.WriteByte('\t')
			}
			b := m.Data[i*m.Dim+j]
			if b.Value >= InfValue {
				sb.WriteString("< inf")
			} else {
				fmt.Fprintf(&sb, "%s %d", b.Cmp, b.Value)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Output renders m as a conjunction-of-constraints string:
// "c1 && c2 && ..." where each ci is "x - y op n", omitting the zero-clock
// operand when y is clock 0. Entries equal to LTInfinity (no constraint) are
// dropped, and so is the implicit non-negativity entry [0,i]=LEZero, so a freshly
// constructed positive zone serialises to the empty conjunction.
func Output(m *DBM, clockName func(clock.ID) string) string {
	var parts []string
	n := m.Dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := m.Data[i*n+j]
			if b == LTInfinity {
				continue
			}
			if i == 0 && b == LEZero {
				continue
			}
			c := clock.Constraint{X: clock.ID(i), Y: clock.ID(j), Cmp: b.Cmp, Value: b.Value}
			parts = append(parts, constraintString(c, clockName))
		}
	}
	return strings.Join(parts, " && ")
}

func constraintString(c clock.Constraint, clockName func(clock.ID) string) string {
	if c.Y == clock.Zero {
		return fmt.Sprintf("%s %s %d", clockName(c.X), c.Cmp, c.Value)
	}
	return fmt.Sprintf("%s - %s %s %d", clockName(c.X), clockName(c.Y), c.Cmp, c.Value)
}

// ParseConstraint parses one "x - y op n" or "x op n" constraint, resolving
// clock names through lookup. op may additionally be "=", ">=" or ">", which
// are rewritten into one or two <=/< constraints by the caller (ParseZone
// handles that); ParseConstraint itself only accepts < and <=, returning the
// single resulting Constraint.
func ParseConstraint(s string, lookup func(string) (clock.ID, bool)) (clock.Constraint, error) {
	s = strings.TrimSpace(s)
	var xName, yName, opStr, valStr string
	if idx := strings.Index(s, " - "); idx >= 0 {
		xName = strings.TrimSpace(s[:idx])
		rest := strings.TrimSpace(s[idx+3:])
		opIdx, op := findOp(rest)
		if opIdx < 0 {
			return clock.Constraint{}, fmt.Errorf("%w: no comparator in %q", ErrParse, s)
		}
		yName = strings.TrimSpace(rest[:opIdx])
		opStr = op
		valStr = strings.TrimSpace(rest[opIdx+len(op):])
	} else {
		opIdx, op := findOp(s)
		if opIdx < 0 {
			return clock.Constraint{}, fmt.Errorf("%w: no comparator in %q", ErrParse, s)
		}
		xName = strings.TrimSpace(s[:opIdx])
		yName = ""
		opStr = op
		valStr = strings.TrimSpace(s[opIdx+len(op):])
	}

	x, ok := lookup(xName)
	if !ok {
		return clock.Constraint{}, fmt.Errorf("%w: unknown clock %q", ErrParse, xName)
	}
	y := clock.Zero
	if yName != "" {
		y, ok = lookup(yName)
		if !ok {
			return clock.Constraint{}, fmt.Errorf("%w: unknown clock %q", ErrParse, yName)
		}
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return clock.Constraint{}, fmt.Errorf("%w: bad value %q", ErrParse, valStr)
	}

	switch opStr {
	case "<":
		return clock.Constraint{X: x, Y: y, Cmp: clock.LT, Value: int32(val)}, nil
	case "<=":
		return clock.Constraint{X: x, Y: y, Cmp: clock.LE, Value: int32(val)}, nil
	default:
		return clock.Constraint{}, fmt.Errorf("%w: unsupported comparator %q (only < and <= are primitive; ParseZone rewrites =,>=,>)", ErrParse, opStr)
	}
}

func findOp(s string) (int, string) {
	for _, op := range []string{"<=", "<", ">=", ">", "="} {
		if idx := strings.Index(s, op); idx >= 0 {
			return idx, op
		}
	}
	return -1, ""
}

// ParseZone parses a full "c1 && c2 && ..." conjunction,
// expanding "=" into two constraints and ">="/">" into their dual x - y >= n
// <=> y - x <= -n form, and intersects the parsed constraints into m (which
// must already be Universal or otherwise initialised).
func ParseZone(m *DBM, s string, lookup func(string) (clock.ID, bool)) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, raw := range strings.Split(s, "&&") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		cs, err := parseOneDual(raw, lookup)
		if err != nil {
			return err
		}
		if _, err := ConstrainAll(m, cs); err != nil {
			return err
		}
	}
	return nil
}

func parseOneDual(raw string, lookup func(string) (clock.ID, bool)) (clock.Constraints, error) {
	idx, op := findOp(raw)
	if idx < 0 {
		return nil, fmt.Errorf("%w: no comparator in %q", ErrParse, raw)
	}
	lhs := strings.TrimSpace(raw[:idx])
	val := strings.TrimSpace(raw[idx+len(op):])

	x, y, err := resolveOperands(lhs, lookup)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("%w: bad value %q", ErrParse, val)
	}
	v := int32(n)

	switch op {
	case "<":
		return clock.Constraints{{X: x, Y: y, Cmp: clock.LT, Value: v}}, nil
	case "<=":
		return clock.Constraints{{X: x, Y: y, Cmp: clock.LE, Value: v}}, nil
	case "=":
		return clock.Constraints{
			{X: x, Y: y, Cmp: clock.LE, Value: v},
			{X: y, Y: x, Cmp: clock.LE, Value: -v},
		}, nil
	case ">=":
		return clock.Constraints{{X: y, Y: x, Cmp: clock.LE, Value: -v}}, nil
	case ">":
		return clock.Constraints{{X: y, Y: x, Cmp: clock.LT, Value: -v}}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported comparator %q", ErrParse, op)
	}
}

// resolveOperands resolves the left-hand side of a constraint ("x" or
// "x - y") to a pair of clock ids, substituting the zero-clock for a bare
// single-clock expression.
func resolveOperands(lhs string, lookup func(string) (clock.ID, bool)) (x, y clock.ID, err error) {
	xName := lhs
	yName := ""
	if idx := strings.Index(lhs, " - "); idx >= 0 {
		xName = strings.TrimSpace(lhs[:idx])
		yName = strings.TrimSpace(lhs[idx+3:])
	}
	x, ok := lookup(xName)
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown clock %q", ErrParse, xName)
	}
	y = clock.Zero
	if yName != "" {
		y, ok = lookup(yName)
		if !ok {
			return 0, 0, fmt.Errorf("%w: unknown clock %q", ErrParse, yName)
		}
	}
	return x, y, nil
}
