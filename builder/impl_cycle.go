// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_cycle.go - Cycle(n): the simple cycle C_n over vertices 0..n-1.
//
// Contract:
//   • n ≥ 3 and n ≤ g.Size() (else ErrTooFewVertices).
//   • Edge order: (i, i+1) for i ascending, then the closing edge (n-1, 0).

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes vertices 0..n-1 into a ring.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(methodCycle, g, n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
