// Package core defines the central Graph, Edge and Neighbor types for an
// undirected weighted graph over dense integer vertices, and provides
// thread-safe primitives for building, querying and cloning graphs.
//
// This file declares Edge, Neighbor, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument     - negative vertex count at construction.
//	ErrIndexOutOfRange     - vertex index outside [0, N).
//	ErrEdgeNotFound        - edge ID outside the edge arena.
//	ErrBadWeight           - NaN or infinite edge weight.
//	ErrLoopNotAllowed      - self-loop on a graph built with RejectLoops().
//	ErrMultiEdgeNotAllowed - parallel edge on a graph built with RejectMultiEdges().
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a construction argument outside its domain.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrIndexOutOfRange indicates a vertex index outside [0, N).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge ID.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is not a finite real number.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are rejected.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected weighted connection between two vertices.
//
// From and To keep the orientation the edge was added with; algorithms treat
// the pair as unordered. ID is the edge's position in the graph's edge arena,
// so it also records insertion order.
type Edge struct {
	// ID is the dense insertion index of this edge (0, 1, 2, ...).
	ID int

	// From is the first endpoint passed to AddEdge.
	From int

	// To is the second endpoint passed to AddEdge.
	To int

	// Weight is the cost of traversing the edge in either direction.
	Weight float64
}

// Other returns the endpoint of e opposite to v.
// For a self-loop, Other returns v. If v is not an endpoint, Other returns -1.
func (e Edge) Other(v int) int {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return -1
	}
}

// Neighbor is an edge reported from one endpoint's perspective.
type Neighbor struct {
	Vertex int     // opposite endpoint
	Weight float64 // shared edge weight
	EdgeID int     // arena index of the underlying edge
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// RejectLoops makes AddEdge(v, v, ...) fail with ErrLoopNotAllowed.
func RejectLoops() GraphOption {
	return func(g *Graph) { g.rejectLoops = true }
}

// RejectMultiEdges makes a second edge between the same pair fail with ErrMultiEdgeNotAllowed.
func RejectMultiEdges() GraphOption {
	return func(g *Graph) { g.rejectMulti = true }
}

// Graph is an undirected weighted (multi)graph over vertices 0..N-1.
//
// Edges live in a single arena; each vertex holds the IDs of its incident
// edges in insertion order. An edge is referenced from both endpoints
// (once for a self-loop), so weight and endpoints are consistent from
// either side by construction.
//
// mu guards edges and adjacency. The vertex count never changes.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph)
	rejectLoops bool
	rejectMulti bool

	// Storage
	n         int     // vertex count
	edges     []Edge  // edge arena, indexed by Edge.ID
	adjacency [][]int // adjacency[v] = incident edge IDs in insertion order
}

// NewGraph creates a Graph with n isolated vertices indexed 0..n-1.
// By default self-loops and parallel edges are permitted.
//
// Errors:
//   - ErrInvalidArgument if n < 0.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidArgument, n)
	}

	g := &Graph{
		n:         n,
		adjacency: make([][]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// checkVertex reports ErrIndexOutOfRange for v outside [0, g.n).
// g.n is immutable, so no lock is needed.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, v, g.n)
	}

	return nil
}
