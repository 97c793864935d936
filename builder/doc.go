// Package builder generates deterministic core.Graph fixtures: paths, cycles,
// stars, complete graphs, grids and random graphs, with pluggable edge-weight
// distributions.
//
// Composition:
//
//	g, err := builder.BuildGraph(10, nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.Path(10),
//	    builder.RandomSparse(10, 0.2),
//	)
//
// BuildGraph allocates the vertices [0, n) and runs each Constructor in order.
// A constructor that needs k vertices works on [0, k) and fails with
// ErrTooFewVertices when k > n. Constructors never add vertices.
//
// Determinism:
//
//   - Edges are emitted in a documented order per constructor.
//   - Random choices come only from the configured *rand.Rand (WithSeed / WithRand);
//     the same seed, options and constructor order give the same graph.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed,
//     wrapped with the constructor name. core errors (e.g. core.ErrBadWeight from a
//     weight function, core.ErrMultiEdgeNotAllowed under RejectMultiEdges) propagate.
//
// Option constructors with meaningless literal arguments (nil functions, negative
// weight bounds) panic, as they can only be programmer errors. Constructors never panic.
package builder
