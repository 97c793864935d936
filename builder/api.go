// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before adding any edge
// and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any error is wrapped with the context "BuildGraph: %w" and returned
// immediately.
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// needVertices reports ErrTooFewVertices unless k ≥ min and g holds at least k vertices.
func needVertices(method string, g *core.Graph, k, min int) error {
	if k < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, k, min, ErrTooFewVertices)
	}
	if k > g.Size() {
		return fmt.Errorf("%s: n=%d exceeds graph size %d: %w", method, k, g.Size(), ErrTooFewVertices)
	}

	return nil
}

// addEdge draws a weight from cfg and adds u-v, wrapping failures with method context.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
