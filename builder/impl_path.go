// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go - Path(n): the simple path 0-1-…-(n-1).
//
// Contract:
//   • n ≥ 2 and n ≤ g.Size() (else ErrTooFewVertices).
//   • Edge order: (i, i+1) for i ascending.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links vertices 0..n-1 into a path.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(methodPath, g, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
