// Package core provides a thread-safe in-memory undirected weighted Graph over
// dense integer vertices, with a minimal, composable API surface.
//
// The Graph G = (V,E) has these properties:
//
//   - Vertices are the indices 0..N-1, all created by NewGraph(N); N never changes.
//   - Edges are undirected and weighted (float64), stored once in an edge arena
//     and referenced by ID from the adjacency lists of both endpoints.
//   - Parallel edges and self-loops are permitted unless rejected by option.
//   - Edge IDs are dense and monotonic (0, 1, 2, ...) and record insertion order.
//   - A single sync.RWMutex serialises AddEdge against concurrent readers.
//
// Configuration Options (GraphOption):
//
//	– RejectLoops()
//	    AddEdge(v, v, ...) → ErrLoopNotAllowed.
//
//	– RejectMultiEdges()
//	    A second AddEdge between the same pair → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	CloneEmpty() *Graph                                  // O(V)
//	Clone() *Graph                                       // O(V+E)
//
//	// Edges
//	AddEdge(u, v int, weight float64) (edgeID int, err error) // O(1)†
//	Edge(id int) (Edge, error)                                // O(1)
//	Edges() []Edge                                            // O(E)
//	EdgeCount() int                                           // O(1)
//	TotalWeight() float64                                     // O(E)
//
//	// Adjacency
//	Neighbors(v int) ([]Neighbor, error)                   // O(deg v)
//	Adjacent(v int) (iter.Seq2[int, float64], error)       // lazy
//	IncidentEdges(v int) ([]Edge, error)                   // O(deg v)
//	Degree(v int) (int, error)                             // O(1)
//
//	// Analysis (go-moremath graph.Weighted)
//	NumNodes(), Out(i), OutWeight(i, e), Oriented()
//	Reachable(v int) ([]int, error), Connected() bool
//
//	† O(deg u) when RejectMultiEdges() is set.
//
// Errors:
//
//	ErrInvalidArgument, ErrIndexOutOfRange, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed. Test with errors.Is; several
//	are wrapped with the offending values.
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	g.AddEdge(0, 1, 10)
//	g.AddEdge(0, 2, 20)
//	fmt.Print(g)
//	// Vertex 0: (1, 10), (2, 20)
//	// Vertex 1: (0, 10)
//	// Vertex 2: (0, 20)
package core
