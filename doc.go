// Package wgraph is a small toolkit for weighted undirected graphs whose
// vertices are the dense integers 0..N-1.
//
// What is in the box:
//
//   - Core primitives: a thread-safe multigraph with float64 edge weights,
//     self-loops and parallel edges allowed unless rejected by option
//   - Minimum spanning trees: Prim (priority queue) and Kruskal (union-find)
//   - Shortest paths: Dijkstra with lazy deletion, optional predecessor slice
//   - I/O: a plain-text adjacency-list format, a line-per-vertex text rendering
//     and Graphviz DOT output
//   - Builders: deterministic and seeded random graph shapes for tests and demos
//
// Everything is organized under these subpackages:
//
//	core/         - Graph, Edge, Neighbor and the locked mutation/query primitives
//	pq/           - generic binary min-heap with stable ordering among equal keys
//	prim_kruskal/ - MinimumSpanningTree, Prim, Kruskal and the Compute dispatcher
//	dijkstra/     - ShortestPathsFrom, Dijkstra, PathTo
//	adjlist/      - Read/Write of the adjacency-list text format
//	render/       - textual and DOT rendering of graphs and distance tables
//	builder/      - Path, Cycle, Star, Complete, Grid, RandomSparse, RandomConnected
//	cmd/wgraph/   - command-line front end over all of the above
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
// is a 4-cycle: core.NewGraph(4) followed by four AddEdge calls.
//
//	go install github.com/katalvlaran/wgraph/cmd/wgraph@latest
package wgraph
