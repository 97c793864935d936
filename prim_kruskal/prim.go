// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex using a min-heap of frontier edges.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/pq"
)

// MinimumSpanningTree returns a minimum spanning tree of g as a new graph
// with the same vertex count, computed by Prim's algorithm from vertex 0.
//
// An empty graph yields an empty result. See Prim for the error contract.
func MinimumSpanningTree(g *core.Graph) (*core.Graph, error) {
	if g != nil && g.Size() == 0 {
		return g.CloneEmpty(), nil
	}

	return Prim(g, 0)
}

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph        : if graph is nil.
//   - core.ErrIndexOutOfRange: if root is outside [0, N).
//   - ErrDisconnected        : if the frontier empties before every vertex is reached.
//
// Steps:
//  1. Validate graph and root.
//  2. Initialize:
//     - inTree marks vertices already in the MST (the set S).
//     - frontier holds candidate edges ordered by weight, then edge ID.
//     - mark root and push its incident edges.
//  3. While |S| < N:
//     a. Pop the cheapest edge; an empty frontier means ErrDisconnected.
//     b. If both or neither endpoint is in S, discard it (cycle or stale).
//     c. Otherwise add the outside endpoint v to S and record the edge in
//     the result oriented (inside, v, weight).
//     d. Push every edge from v to a vertex outside S.
//  4. Return the tree.
//
// Ties between equal weights are broken by ascending edge ID, i.e. insertion order.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) (*core.Graph, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.Size()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root %d not in [0, %d)", core.ErrIndexOutOfRange, root, n)
	}

	// 2. Initialize the result, visited set and frontier.
	mst := graph.CloneEmpty()
	inTree := make([]bool, n)
	reached := 0
	frontier := pq.New(lighter)

	// push adds v to S and queues its edges leaving S.
	push := func(v int) error {
		inTree[v] = true
		reached++
		edges, err := graph.IncidentEdges(v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !inTree[e.Other(v)] {
				frontier.Push(e)
			}
		}

		return nil
	}
	if err := push(root); err != nil {
		return nil, err
	}

	// 3. Main loop: extract the cheapest crossing edge until every vertex is reached.
	for reached < n {
		e, ok := frontier.Pop()
		if !ok {
			return nil, fmt.Errorf("%w: reached %d of %d vertices from %d", ErrDisconnected, reached, n, root)
		}

		var from, to int
		switch {
		case inTree[e.From] && !inTree[e.To]:
			from, to = e.From, e.To
		case inTree[e.To] && !inTree[e.From]:
			from, to = e.To, e.From
		default:
			// Both endpoints already in S: the edge would close a cycle.
			continue
		}

		if _, err := mst.AddEdge(from, to, e.Weight); err != nil {
			return nil, err
		}
		if err := push(to); err != nil {
			return nil, err
		}
	}

	// 4. Return the completed MST.
	return mst, nil
}

// lighter orders edges by ascending weight, then ascending ID.
func lighter(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.ID < b.ID
}
