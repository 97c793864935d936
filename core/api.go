// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Size returns the number of vertices. It never changes after NewGraph.
//
// Complexity: O(1).
func (g *Graph) Size() int {
	return g.n
}

// Looped reports whether self-loops are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	return !g.rejectLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, a second AddEdge(u,v,...) rejects the operation with ErrMultiEdgeNotAllowed.
func (g *Graph) Multigraph() bool {
	return !g.rejectMulti
}

// EdgeCount returns the number of edges added so far.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the number of adjacency entries of v.
// A self-loop contributes one entry.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, N).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}

// TotalWeight returns the sum of all edge weights.
//
// Complexity: O(E). Concurrency: read lock.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for i := range g.edges {
		total += g.edges[i].Weight
	}

	return total
}
