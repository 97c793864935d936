// Package dijkstra provides single-source shortest paths on undirected weighted
// graphs with non-negative edge weights.
//
// Overview:
//
//   - ShortestPathsFrom(g, s) returns a []float64 of length g.Size() where entry i is
//     the shortest distance from s to i, 0 for s itself and +Inf when i is unreachable.
//   - Dijkstra(g, opts...) is the configurable form. It also returns a predecessor slice
//     when WithReturnPath is set, and PathTo turns that slice into a vertex sequence.
//
// Algorithm:
//
//   - A min-heap of (distance, vertex) entries drives the expansion. Every strict
//     improvement of dist[v] pushes a fresh entry; the old one stays in the heap.
//   - On pop, an entry is discarded when its vertex is already finalized or when its
//     distance is no longer dist[v]. Each vertex is therefore finalized exactly once,
//     with its true shortest distance.
//   - Self-loops never improve a distance. Parallel edges are all relaxed, so the
//     lightest one wins.
//
// Options:
//
//   - Source(int):                required starting vertex.
//   - WithReturnPath():           also return prev, where prev[v] is v's parent or -1.
//   - WithMaxDistance(float64):   leave vertices farther than the cap at +Inf.
//   - WithInfEdgeThreshold(float64): skip edges whose weight is at or above the threshold.
//   - WithNegativeWeightCheck():  fail with ErrNegativeWeight instead of computing
//     meaningless distances on negative input.
//
// Invalid option values are reported as errors (ErrBadMaxDistance, ErrBadInfThreshold);
// nothing in this package panics on bad input.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst-case, dominated by stale heap entries.
//
// Thread safety:
//
//   - Each call reads the graph through its locked accessors and allocates its own state.
//     Concurrent queries on one graph are safe; a concurrent AddEdge may or may not be
//     observed by a running query.
package dijkstra
