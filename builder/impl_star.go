// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - Star(n): center 0 joined to leaves 1..n-1.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that joins vertex 0 to each of 1..n-1, in
// ascending leaf order. n must be at least 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(methodStar, g, n, minStarNodes); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
