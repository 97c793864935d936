// Package render writes graphs and shortest-path results as text for people
// and as Graphviz DOT for tools.
//
// Text formats:
//
//	Vertex 0: (1, 10), (2, 20)        ← Graph, one line per vertex
//	Distance from 0 to 2: 3.5         ← Distances, one line per target
//	Distance from 0 to 4: unreachable
//
// Weights and distances use core.FormatWeight, the shortest decimal form that
// parses back to the same value.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-moremath/graph/graphout"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to a renderer.
var ErrNilGraph = errors.New("render: graph is nil")

// Unreachable is printed in place of an infinite distance.
const Unreachable = "unreachable"

// Graph writes the line-per-vertex text form of g (see core.Graph.String).
func Graph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	_, err := io.WriteString(w, g.String())

	return err
}

// Distances writes one "Distance from <source> to <i>: <d>" line per entry of dist.
// Entries equal to +Inf are written as "unreachable".
func Distances(w io.Writer, source int, dist []float64) error {
	bw := bufio.NewWriter(w)
	for i, d := range dist {
		text := Unreachable
		if !math.IsInf(d, 1) {
			text = core.FormatWeight(d)
		}
		fmt.Fprintf(bw, "Distance from %d to %d: %s\n", source, i, text)
	}

	return bw.Flush()
}

// Dot writes g as a Graphviz graph named name. Each undirected edge is drawn
// once, without an arrowhead, labeled with its weight.
func Dot(w io.Writer, g *core.Graph, name string) error {
	if g == nil {
		return ErrNilGraph
	}

	view := g.Oriented()
	d := graphout.Dot{
		Name: name,
		EdgeAttrs: func(node, edge int) []graphout.DotAttr {
			return []graphout.DotAttr{
				{Name: "label", Val: core.FormatWeight(view.OutWeight(node, edge))},
				{Name: "dir", Val: graphout.DotLiteral("none")},
			}
		},
	}

	return d.Fprint(w, view)
}
