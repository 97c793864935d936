// File: view.go
// Role: Read-only analysis views over the go-moremath graph interfaces,
//       and connectivity queries built on them.
// Determinism:
//   - Out(i) lists neighbors in adjacency (insertion) order.
// Concurrency:
//   - Every call snapshots under the read lock; views never mutate the graph.

package core

import (
	"github.com/aclements/go-moremath/graph"
	"github.com/aclements/go-moremath/graph/graphalg"
)

var (
	_ graph.Weighted = (*Graph)(nil)
	_ graph.Weighted = (*orientedView)(nil)
)

// NumNodes returns the number of vertices. It implements graph.Graph.
func (g *Graph) NumNodes() int {
	return g.n
}

// Out returns the opposite endpoints of the edges incident to node i,
// in adjacency order. Every undirected edge therefore appears as an arc in
// both directions. It implements graph.Graph and panics if i is out of range,
// as that interface requires valid node indexes.
func (g *Graph) Out(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency[i]))
	for j, eid := range g.adjacency[i] {
		out[j] = g.edges[eid].Other(i)
	}

	return out
}

// OutWeight returns the weight of the e'th edge out of node i, matching the
// order of Out(i). It implements graph.Weighted.
func (g *Graph) OutWeight(i, e int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[g.adjacency[i][e]].Weight
}

// Oriented returns a snapshot view that lists every edge exactly once, as an
// arc From -> To in the orientation it was added with. Renderers use it to
// avoid drawing each undirected edge twice.
//
// Complexity: O(V + E).
func (g *Graph) Oriented() graph.Weighted {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := &orientedView{
		out:    make([][]int, g.n),
		weight: make([][]float64, g.n),
	}
	for _, e := range g.edges {
		v.out[e.From] = append(v.out[e.From], e.To)
		v.weight[e.From] = append(v.weight[e.From], e.Weight)
	}

	return v
}

// orientedView is the immutable result of Oriented.
type orientedView struct {
	out    [][]int
	weight [][]float64
}

func (v *orientedView) NumNodes() int { return len(v.out) }

func (v *orientedView) Out(i int) []int { return v.out[i] }

func (v *orientedView) OutWeight(i, e int) float64 { return v.weight[i][e] }

// Reachable returns the vertices reachable from v (v included), in DFS
// pre-order.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, N).
//
// Complexity: O(V + E).
func (g *Graph) Reachable(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return graphalg.PreOrder(g, v), nil
}

// Connected reports whether every vertex is reachable from vertex 0.
// Graphs with fewer than two vertices are connected.
func (g *Graph) Connected() bool {
	if g.n < 2 {
		return true
	}

	return len(graphalg.PreOrder(g, 0)) == g.n
}
