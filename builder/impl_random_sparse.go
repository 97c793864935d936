// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_sparse.go - random topologies.
//
// RandomSparse(n, p):
//   • Erdős–Rényi-like: include each unordered pair {i,j}, i<j, independently with prob p.
//   • n ≥ 1, 0 ≤ p ≤ 1; rng required when 0 < p < 1.
//   • Trial order: i asc, then j asc. p == 1 yields K_n, p == 0 yields no edges.
//
// RandomConnected(n, extra):
//   • A random spanning tree over 0..n-1 (each vertex i ≥ 1, in a shuffled order,
//     attaches to a uniformly chosen earlier vertex), then `extra` further edges
//     between distinct, not yet adjacent pairs.
//   • The result is connected and simple. rng is always required.
//   • extra must not exceed n(n-1)/2 - (n-1) (else ErrConstructFailed).
//
// Determinism: fixed seed ⇒ fixed draws ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomConnected   = "RandomConnected"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(methodRandomSparse, g, n, minRandomSparseVertices); err != nil {
			return err
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor that builds a random connected simple
// graph on n vertices with n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(methodRandomConnected, g, n, minRandomSparseVertices); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		available := n*(n-1)/2 - (n - 1)
		if extra < 0 || extra > available {
			return fmt.Errorf("%s: extra=%d not in [0, %d]: %w",
				methodRandomConnected, extra, available, ErrConstructFailed)
		}

		seen := make(map[[2]int]bool, n-1+extra)
		link := func(u, v int) error {
			if u > v {
				u, v = v, u
			}
			seen[[2]int{u, v}] = true

			return addEdge(methodRandomConnected, g, cfg, u, v)
		}

		// Random spanning tree: attach each vertex to one placed before it.
		order := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			if err := link(order[cfg.rng.Intn(i)], order[i]); err != nil {
				return err
			}
		}

		// Extra edges by rejection sampling over unused pairs.
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			if seen[[2]int{u, v}] {
				continue
			}
			if err := link(u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
