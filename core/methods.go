// File: methods.go
// Role: Diagnostic text rendering of a Graph.
// Determinism:
//   - Vertices in index order; neighbors in adjacency (insertion) order.

package core

import (
	"strconv"
	"strings"
)

// String renders the graph one line per vertex:
//
//	Vertex 0: (1, 10), (2, 20)
//	Vertex 1: (0, 10)
//	Vertex 2: (0, 20)
//
// Each pair is (opposite endpoint, weight). A vertex without edges renders
// as "Vertex <i>:". Every line ends with '\n'. Weights use the shortest
// decimal form that round-trips (10, 2.5, 1e-07).
//
// Complexity: O(V + E). Concurrency: read lock.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for v := 0; v < g.n; v++ {
		sb.WriteString("Vertex ")
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(':')
		for i, eid := range g.adjacency[v] {
			e := g.edges[eid]
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(" (")
			sb.WriteString(strconv.Itoa(e.Other(v)))
			sb.WriteString(", ")
			sb.WriteString(FormatWeight(e.Weight))
			sb.WriteByte(')')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatWeight formats w the way String does.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
