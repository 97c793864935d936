package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// benchGraph builds a random connected graph with 500 vertices and 2000 edges.
func benchGraph(b *testing.B) *core.Graph {
	g, err := builder.BuildGraph(500, nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
		builder.RandomConnected(500, 1501))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b) // pre‐build graph once
	b.ResetTimer()     // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, always starting Prim from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.MinimumSpanningTree(g)
	}
}

// BenchmarkPrim_Grid runs Prim on a 100×100 unit-weight grid, where every
// frontier edge ties.
func BenchmarkPrim_Grid(b *testing.B) {
	g, err := builder.BuildGraph(100*100, nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.MinimumSpanningTree(g)
	}
}
