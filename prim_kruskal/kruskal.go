// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It produces a new *core.Graph holding the tree edges.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| > 1 and the graph is not fully connected.
//
// Steps:
//  1. Validate graph != nil. |V| == 0 or 1 → trivial MST (no edges).
//  2. Collect all edges via graph.Edges(), skip self-loops.
//  3. Sort edges by ascending Weight (sort.SliceStable keeps ID order for ties).
//  4. Initialize DSU slices parent[] and rank[].
//  5. For each edge (u,v): if find(u) != find(v), union and include it.
//  6. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*core.Graph, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.Size()
	mst := graph.CloneEmpty()
	if n <= 1 {
		return mst, nil
	}

	// 2. Collect all edges, skipping self-loops to avoid trivial cycles.
	allEdges := graph.Edges()
	edges := allEdges[:0]
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort edges by ascending weight; ties keep ID order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize disjoint-set (union-find) structures.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// 5. Build MST by iterating over sorted edges.
	added := 0
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		// Union by rank: attach the shallower tree under the deeper root.
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		if _, err := mst.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		added++
		if added == n-1 {
			break
		}
	}

	// 6. Fewer than |V|-1 edges means the graph was disconnected.
	if added < n-1 {
		return nil, fmt.Errorf("%w: %d of %d tree edges found", ErrDisconnected, added, n-1)
	}

	return mst, nil
}
