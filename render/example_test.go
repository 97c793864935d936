package render_test

import (
	"os"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/render"
)

// ExampleDistances prints shortest distances, including an unreachable vertex.
func ExampleDistances() {
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 1, 1.5)

	dist, _ := dijkstra.ShortestPathsFrom(g, 0)
	_ = render.Distances(os.Stdout, 0, dist)
	// Output:
	// Distance from 0 to 0: 0
	// Distance from 0 to 1: 1.5
	// Distance from 0 to 2: unreachable
}

// ExampleDot draws a single weighted edge.
func ExampleDot() {
	g, _ := core.NewGraph(2)
	g.AddEdge(0, 1, 7)

	_ = render.Dot(os.Stdout, g, "pair")
	// Output:
	// digraph "pair" {
	// n0 [label="0"];
	// n0 -> n1 [label="7",dir=none];
	// n1 [label="1"];
	// }
}
