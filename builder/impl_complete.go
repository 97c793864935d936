// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go - Complete(n): the complete simple graph K_n.
//
// Contract:
//   • n ≥ 1 and n ≤ g.Size() (else ErrTooFewVertices).
//   • Edge order: lexicographic (i, j) with i < j.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that joins every pair of vertices in 0..n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(methodComplete, g, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
