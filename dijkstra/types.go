// Core types and configuration options for Dijkstra's shortest-path
// algorithm on weighted graphs.
//
// Options:
//
//	- Source:           index of the starting vertex (required, must be in [0, N)).
//	- ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	- MaxDistance:      optional cap on distances to explore; vertices beyond this stay +Inf.
//	- InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	- CheckNegative:    if true, scan all edges first and fail on a negative weight.
//
// Errors (sentinel):
//
//	- ErrNoSource        if no Source option was given.
//	- ErrNilGraph        if the provided graph pointer is nil.
//	- ErrNegativeWeight  if CheckNegative is set and a negative edge weight exists.
//	- ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	- ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
//	- ErrNoPath          if PathTo is asked for an unreachable target.
//
// A source outside [0, N) is reported as core.ErrIndexOutOfRange.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the target is not reachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           - starting vertex index (required).
// ReturnPath       - if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      - optional cap on distances to explore. Must be ≥ 0. Default +Inf.
// InfEdgeThreshold - treat edges with weight ≥ this threshold as impassable. Must be > 0. Default +Inf.
// CheckNegative    - pre-scan edges and reject negative weights. Default false: non-negative
//
//	weights are then the caller's precondition and are not validated.
type Options struct {
	Source           int     // The index of the source vertex
	ReturnPath       bool    // Whether to return the predecessor slice
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
	CheckNegative    bool    // Whether to reject negative edge weights up front

	hasSource bool // set by the Source option
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and report +Inf. Negative values make Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Non-positive values make Dijkstra fail with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithNegativeWeightCheck makes Dijkstra scan all edges first and fail with
// ErrNegativeWeight if any weight is negative.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
// The source is left unset; Dijkstra requires the Source option.
//
// Defaults:
//   - Source:           unset.
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable vertices).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - CheckNegative:    false.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		CheckNegative:    false,
	}
}
