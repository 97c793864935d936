// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges.
// Determinism:
//   - Edge IDs are dense and monotonic: 0, 1, 2, ...
//   - Edges() returns edges in ID order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge adds an undirected edge between u and v and returns its ID.
//
// Steps:
//  1. Validate u and v lie in [0, N).
//  2. Validate weight is finite, and the loop policy.
//  3. Lock mu, check the multi-edge policy.
//  4. Append the edge to the arena; its ID is the arena index.
//  5. Append the ID to adjacency[u] and, if u != v, to adjacency[v].
//
// Parallel edges and self-loops are kept unless the graph was built with
// RejectMultiEdges() / RejectLoops().
//
// Complexity: O(1) amortized; O(deg(u)) when multi-edges are rejected.
// Concurrency: write lock; do not call from inside an Adjacent loop.
func (g *Graph) AddEdge(u, v int, weight float64) (int, error) {
	// 1) Input validation
	if err := g.checkVertex(u); err != nil {
		return -1, err
	}
	if err := g.checkVertex(v); err != nil {
		return -1, err
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return -1, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if u == v && g.rejectLoops {
		return -1, ErrLoopNotAllowed
	}

	// 2) Insert edge under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rejectMulti {
		for _, eid := range g.adjacency[u] {
			if g.edges[eid].Other(u) == v {
				return -1, fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, u, v)
			}
		}
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: weight})
	g.adjacency[u] = append(g.adjacency[u], id)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], id)
	}

	return id, nil
}

// Edge returns a copy of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if id is not an existing edge ID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a snapshot of all edges in ID (insertion) order.
// The returned slice is owned by the caller.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
