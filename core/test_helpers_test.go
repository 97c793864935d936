// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by core tests.
//   - Avoid magic numbers in test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/core"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Weight1  = 1.0
	Weight2  = 2.0
	Weight3  = 3.0
	Weight10 = 10.0
	Weight20 = 20.0
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustGraph builds a graph of n vertices and adds edges given as {u, v, w} triples.
func mustGraph(t testing.TB, n int, edges ...[3]float64) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// neighborPairs flattens Neighbors(v) into (vertex, weight) pairs for compact assertions.
func neighborPairs(t testing.TB, g *core.Graph, v int) [][2]float64 {
	t.Helper()

	nbs, err := g.Neighbors(v)
	require.NoError(t, err)
	out := make([][2]float64, len(nbs))
	for i, nb := range nbs {
		out[i] = [2]float64{float64(nb.Vertex), nb.Weight}
	}

	return out
}
