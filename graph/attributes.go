package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/system"
)

// NodeAttributes renders n's required certificate attributes.
func NodeAttributes(decl system.SystemDecl, n *Node) (map[string]string, error) {
	vlocNames := make([]string, len(n.State.VLoc))
	for p, l := range n.State.VLoc {
		loc, err := decl.Location(system.ProcessID(p), l)
		if err != nil {
			return nil, err
		}
		vlocNames[p] = loc.Name
	}
	intvalStrs := make([]string, len(n.State.IntVal))
	for i, v := range n.State.IntVal {
		intvalStrs[i] = strconv.FormatInt(int64(v), 10)
	}
	return map[string]string{
		"vloc":    strings.Join(vlocNames, ","),
		"intval":  strings.Join(intvalStrs, ","),
		"zone":    n.State.Zone.Output(clockName),
		"initial": strconv.FormatBool(n.Initial),
		"final":   strconv.FormatBool(n.Final),
	}, nil
}

// EdgeAttributes renders e's required certificate attributes.
func EdgeAttributes(decl system.SystemDecl, e *Edge) map[string]string {
	parts := make([]string, len(e.Vedge))
	for i, edge := range e.Vedge {
		parts[i] = fmt.Sprintf("%d:%s", edge.Process, decl.EventName(edge.Event))
	}
	attrs := map[string]string{"vedge": strings.Join(parts, ",")}
	if e.Condition != "" {
		attrs["condition"] = e.Condition
	}
	return attrs
}

func clockName(id clock.ID) string {
	if id == clock.Zero {
		return "0"
	}
	return fmt.Sprintf("x%d", id)
}
