// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go - Grid(rows, cols): 2D orthogonal grid with 4-neighborhood.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≤ g.Size() (else ErrTooFewVertices).
//   • Cell (r, c) is vertex r*cols + c (row-major).
//   • For each cell in row-major order: edge to Right (r, c+1), then Bottom (r+1, c).
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridVertex returns the vertex index of cell (r, c) in a grid with cols columns.
func GridVertex(r, c, cols int) int {
	return r*cols + c
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := needVertices(methodGrid, g, rows*cols, minGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertex(r, c, cols)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, GridVertex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, GridVertex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
