// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/wgraph/core"
)

// ErrInvalidGraph indicates that a nil graph was passed to an MST algorithm.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Prim reports it when its frontier
// empties before every vertex is reached.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex for Prim; ignored when Method == MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(E log E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and is ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Prim from vertex 0:
//
//	– Method = MethodPrim
//	– Root   = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodPrim:    calls Prim(graph, opts.Root); an empty graph yields an empty tree.
//	– MethodKruskal: calls Kruskal(graph).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns a new *core.Graph holding only the tree edges; the input is not modified.
func Compute(graph *core.Graph, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Dispatch by method name
	switch cfg.Method {
	case MethodPrim:
		if graph != nil && graph.Size() == 0 {
			return graph.CloneEmpty(), nil
		}
		return Prim(graph, cfg.Root)
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return nil, ErrUnknownMethod
	}
}
