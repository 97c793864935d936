// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves edge IDs and adjacency order exactly.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with the same vertex count and policy flags,
// but no edges. MST construction starts from it.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{
		rejectLoops: g.rejectLoops,
		rejectMulti: g.rejectMulti,
		n:           g.n,
		adjacency:   make([][]int, g.n),
	}
}

// Clone returns a deep copy of the Graph: same vertices, edges, edge IDs and
// adjacency order. The clone shares no storage with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for v, ids := range g.adjacency {
		if len(ids) == 0 {
			continue
		}
		clone.adjacency[v] = append([]int(nil), ids...)
	}

	return clone
}
