package certificate_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntacheck/ntacheck/certificate"
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/extrapolation"
	"github.com/ntacheck/ntacheck/search"
	"github.com/ntacheck/ntacheck/semantics"
	"github.com/ntacheck/ntacheck/system"
	"github.com/ntacheck/ntacheck/zg"
)

// buildReachable declares a two-location, single-clock process: loc0 ->
// loc1 on event "go", guarded by x >= 1, resetting x; loc1 carries label
// "reached".
func buildReachable(t *testing.T) (system.SystemDecl, system.LabelID) {
	t.Helper()
	b := system.NewBuilder(1)
	p := b.AddProcess()
	ev := b.DeclareEvent("go")
	label := b.DeclareLabel("reached")

	loc0, err := b.AddLocation(p, "loc0", nil, system.WithInitial())
	require.NoError(t, err)
	loc1, err := b.AddLocation(p, "loc1", nil, system.WithLabels(label))
	require.NoError(t, err)
	guard := clock.Constraints{{X: clock.Zero, Y: clock.ID(1), Cmp: clock.LE, Value: -1}}
	resets := clock.Resets{{X: clock.ID(1), Y: clock.Zero, Value: 0}}
	err = b.AddEdge(p, loc0, loc1, ev, guard, resets)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m, label
}

func runSearch(t *testing.T, decl system.SystemDecl, label system.LabelID) *search.Result {
	t.Helper()
	g, err := zg.Factory(decl, semantics.KindStandard, extrapolation.KindNone, nil)
	require.NoError(t, err)
	res, err := search.Run(g, search.Config{Order: search.BFS, Equiv: search.Inclusion, Covering: search.CoveringNone, Labels: []system.LabelID{label}})
	require.NoError(t, err)
	require.True(t, res.Found)
	return res
}

func TestDotSink_WriteGraphProducesWellFormedDot(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t)
	res := runSearch(t, decl, label)

	var buf bytes.Buffer
	sink, err := certificate.NewDotSink(&buf, "reach")
	require.NoError(t, err)
	err = certificate.WriteGraph(sink, decl, res.Graph)
	require.NoError(t, err)
	err = sink.Close()
	require.NoError(t, err)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, `digraph "reach" {`))
	require.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "}"))
	require.True(t, strings.Contains(out, `vedge=`))
}

func TestDotSink_RejectsWritesAfterClose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink, err := certificate.NewDotSink(&buf, "g")
	require.NoError(t, err)
	err = sink.Close()
	require.NoError(t, err)
	err = sink.WriteNode("n0", nil)
	require.ErrorIs(t, err, certificate.ErrSinkClosed)
}

func TestJSONSink_WriteGraphProducesParseableJSON(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t)
	res := runSearch(t, decl, label)

	var buf bytes.Buffer
	sink := certificate.NewJSONSink(&buf)
	err := certificate.WriteGraph(sink, decl, res.Graph)
	require.NoError(t, err)
	err = sink.Close()
	require.NoError(t, err)
	out := buf.String()
	require.True(t, strings.Contains(out, `"nodes"`))
	require.True(t, strings.Contains(out, `"edges"`))
	require.True(t, strings.Contains(out, `"vloc"`))
}

func TestWriteFinitePath_WritesNodesThenEdgesInOrder(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t)
	res := runSearch(t, decl, label)
	path, err := search.ExtractSymbolicCounterExample(res.Graph, res.Target)
	require.NoError(t, err)
	require.Equal(t, 2, len(path.Nodes))

	var buf bytes.Buffer
	sink, err := certificate.NewDotSink(&buf, "counterexample")
	require.NoError(t, err)
	err = certificate.WriteFinitePath(sink, decl, path)
	require.NoError(t, err)
	err = sink.Close()
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "->"))
	out := buf.String()
	for _, n := range path.Nodes {
		nodeAt := strings.Index(out, "\n  \""+n.ID.String()+"\" [")
		require.True(t, nodeAt >= 0 && nodeAt < strings.Index(out, "->"))
	}
}

func TestGzipSink_RoundTripsThroughCompression(t *testing.T) {
	t.Parallel()

	decl, label := buildReachable(t)
	res := runSearch(t, decl, label)

	var buf bytes.Buffer
	gzSink, err := certificate.NewGzipSink(&buf, func(w io.Writer) (certificate.Sink, error) {
		return certificate.NewJSONSink(w), nil
	})
	require.NoError(t, err)
	err = certificate.WriteGraph(gzSink, decl, res.Graph)
	require.NoError(t, err)
	err = gzSink.Close()
	require.NoError(t, err)
	require.NotEqual(t, 0, buf.Len())
	// gzip member header magic bytes.
	require.Equal(t, byte(0x1f), buf.Bytes()[0])
	require.Equal(t, byte(0x8b), buf.Bytes()[1])
}
