// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Adjacent, IncidentEdges).
// Determinism:
//   - All views report edges in insertion order of edges touching the vertex.
// Concurrency:
//   - Snapshots hold the read lock while copying.
//   - Adjacent holds the read lock for the duration of the range loop.

package core

import "iter"

// Neighbors returns a snapshot of the edges incident to v, each reported from
// v's perspective: the opposite endpoint, the shared weight and the edge ID.
// A self-loop is reported once, with Vertex == v.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, N).
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, 0, len(g.adjacency[v]))
	for _, eid := range g.adjacency[v] {
		e := g.edges[eid]
		out = append(out, Neighbor{Vertex: e.Other(v), Weight: e.Weight, EdgeID: eid})
	}

	return out, nil
}

// Adjacent returns a lazy read-only view of v's neighbors, yielding
// (otherVertex, weight) pairs in insertion order.
//
// The neighbor list is copied when iteration starts, so the loop body may
// call any Graph method, AddEdge included. Edges added during the loop are
// not yielded.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, N).
func (g *Graph) Adjacent(v int) (iter.Seq2[int, float64], error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return func(yield func(int, float64) bool) {
		g.mu.RLock()
		snapshot := make([]Edge, len(g.adjacency[v]))
		for i, eid := range g.adjacency[v] {
			snapshot[i] = g.edges[eid]
		}
		g.mu.RUnlock()

		for _, e := range snapshot {
			if !yield(e.Other(v), e.Weight) {
				return
			}
		}
	}, nil
}

// IncidentEdges returns copies of the edges incident to v, in insertion order,
// with their original From/To orientation.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, N).
func (g *Graph) IncidentEdges(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.adjacency[v]))
	for _, eid := range g.adjacency[v] {
		out = append(out, g.edges[eid])
	}

	return out, nil
}
