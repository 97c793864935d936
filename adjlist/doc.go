// Package adjlist reads and writes core.Graph values in a plain-text
// adjacency-list format.
//
// Format:
//
//	3           ← vertex count N, alone on the first non-comment line
//	1 10 2 20   ← line for vertex 0: pairs of "neighbor weight"
//	0 10        ← line for vertex 1
//	0 20        ← line for vertex 2
//
// Tokens are separated by any run of whitespace. Lines starting with '#'
// are comments and do not count as vertex lines. A blank vertex line lists
// no edges. Fewer than N vertex lines is fine; more is ErrTooManyLines.
//
// By default every listed pair becomes its own edge, so a file that lists
// each edge from both ends produces parallel edges. WithMirrorDedup pairs a
// listing (k, v, w) with an earlier (v, k, w) and adds the edge only once.
// Write always emits that symmetric form, so
//
//	Read(r, WithMirrorDedup())
//
// reproduces the graph that was written, up to edge order.
package adjlist
