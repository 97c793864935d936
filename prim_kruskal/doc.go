// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimal.
//
//   - Both algorithms return a new *core.Graph with the same vertex count and exactly |V|−1 edges.
//     The input graph is only read; the result shares no storage with it.
//
// Algorithms Provided
//
//   - MinimumSpanningTree(g) / Prim(g, root) (*core.Graph, error)
//
//   - Strategy: grow a single tree from root. A min-heap (pq.Queue) holds frontier edges ordered by
//     weight, ties broken by edge ID (insertion order). Popped edges with both endpoints already in
//     the tree are discarded. Each accepted edge is recorded oriented (tree vertex, new vertex).
//
//   - Termination: when every vertex is in the tree, or with ErrDisconnected as soon as the
//     frontier empties early. Prim never spins on a disconnected graph.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g) (*core.Graph, error)
//
//   - Strategy: stable-sort all non-loop edges by weight, then merge components with union-find.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodPrim|MethodKruskal) and WithRoot(v).
//
// Error Conditions
//
//	- ErrInvalidGraph          graph is nil.
//	- core.ErrIndexOutOfRange  Prim root outside [0, N).
//	- ErrDisconnected          not every vertex can be spanned.
//	- ErrUnknownMethod         Compute with an unrecognised method.
//
// Determinism
//
//   - Equal-weight edges are considered in insertion order by both algorithms, so
//     results are repeatable for a given graph.
//   - For a graph with distinct weights, Prim and Kruskal return the same edge set.
//
// Self-loops never join a tree; parallel edges compete like any other edges.
// Negative weights are handled correctly by both algorithms.
package prim_kruskal
