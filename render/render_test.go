package render_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/render"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 1, 2, 2.5)
	mustAddEdge(t, g, 0, 2, 3)

	return g
}

func TestGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Graph(&buf, triangle(t)))
	assert.Equal(t, "Vertex 0: (1, 1), (2, 3)\nVertex 1: (0, 1), (2, 2.5)\nVertex 2: (1, 2.5), (0, 3)\n", buf.String())

	assert.ErrorIs(t, render.Graph(&buf, nil), render.ErrNilGraph)
}

func TestDistances(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Distances(&buf, 1, []float64{2, 0, 0.75, math.Inf(1)}))
	assert.Equal(t, strings.Join([]string{
		"Distance from 1 to 0: 2",
		"Distance from 1 to 1: 0",
		"Distance from 1 to 2: 0.75",
		"Distance from 1 to 3: unreachable",
		"",
	}, "\n"), buf.String())
}

func TestDistances_FromSolver(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 1, 2, 2)

	dist, err := dijkstra.ShortestPathsFrom(g, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Distances(&buf, 0, dist))
	assert.Equal(t, "Distance from 0 to 0: 0\nDistance from 0 to 1: 1\nDistance from 0 to 2: 3\nDistance from 0 to 3: unreachable\n", buf.String())
}

func TestDistances_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Distances(&buf, 0, nil))
	assert.Empty(t, buf.String())
}

func TestDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Dot(&buf, triangle(t), "tri"))
	assert.Equal(t, `digraph "tri" {
n0 [label="0"];
n0 -> n1 [label="1",dir=none];
n0 -> n2 [label="3",dir=none];
n1 [label="1"];
n1 -> n2 [label="2.5",dir=none];
n2 [label="2"];
}
`, buf.String())
}

func TestDot_LoopsAndParallelEdges(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	mustAddEdge(t, g, 1, 0, 4)
	mustAddEdge(t, g, 0, 1, 5)
	mustAddEdge(t, g, 1, 1, 6)

	var buf bytes.Buffer
	require.NoError(t, render.Dot(&buf, g, ""))
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "->"), "one arc per edge")
	assert.Contains(t, out, `n1 -> n0 [label="4",dir=none];`)
	assert.Contains(t, out, `n0 -> n1 [label="5",dir=none];`)
	assert.Contains(t, out, `n1 -> n1 [label="6",dir=none];`)
	assert.True(t, strings.HasPrefix(out, `digraph "" {`))
}

func TestDot_NilGraph(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Dot(&buf, nil, "g"), render.ErrNilGraph)
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteErrorsPropagate(t *testing.T) {
	g := triangle(t)
	assert.ErrorIs(t, render.Graph(failWriter{}, g), errWrite)
	assert.ErrorIs(t, render.Distances(failWriter{}, 0, []float64{0}), errWrite)
	assert.ErrorIs(t, render.Dot(failWriter{}, g, "g"), errWrite)
}

// mustAddEdge adds u-v with weight w and fails the test on error.
func mustAddEdge(t testing.TB, g *core.Graph, u, v int, w float64) {
	t.Helper()
	_, err := g.AddEdge(u, v, w)
	require.NoError(t, err)
}
