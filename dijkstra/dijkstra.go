// Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and visited slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Lazy deletion: a relaxed vertex is pushed again with its new key. A popped entry is
//     skipped if its vertex is already finalized or its key is no longer the vertex's best
//     distance.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/pq"
)

// ShortestPathsFrom returns, for every vertex i, the length of the shortest
// path from source to i: 0 for source itself and +Inf for unreachable vertices.
// The result has length g.Size() and is owned by the caller.
//
// Edge weights must be non-negative; this is not validated. Use Dijkstra with
// WithNegativeWeightCheck to enforce it.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - core.ErrIndexOutOfRange if source is outside [0, N).
func ShortestPathsFrom(g *core.Graph, source int) ([]float64, error) {
	dist, _, err := Dijkstra(g, Source(source))

	return dist, err
}

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold, CheckNegative).
//
// Returns:
//
//   - dist: slice indexed by vertex; math.Inf(1) if unreachable (or beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; -1 for source and
//     unreachable vertices.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, N) (core.ErrIndexOutOfRange).
//  4. MaxDistance ≥ 0 (ErrBadMaxDistance), InfEdgeThreshold > 0 (ErrBadInfThreshold).
//  5. With CheckNegative, no edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Size()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: source %d not in [0, %d)", core.ErrIndexOutOfRange, cfg.Source, n)
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		return nil, nil, ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 || math.IsNaN(cfg.InfEdgeThreshold) {
		return nil, nil, ErrBadInfThreshold
	}

	// 3) Optional pre-scan for negative weights.
	if cfg.CheckNegative {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 4) Initialize runner state and run the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      pq.New(closer),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph         // The input graph; read-only within Dijkstra.
	options Options             // Configuration options (Source, thresholds, etc.).
	dist    []float64           // Vertex → current best distance from Source.
	prev    []int               // Vertex → predecessor on the shortest path; nil unless ReturnPath.
	visited []bool              // Tracks if a vertex's distance is finalized.
	pq      *pq.Queue[nodeItem] // Min-heap of (vertex, distance) entries, possibly stale.
}

// init sets dist[v] = +Inf (and prev[v] = -1) for all v, then seeds the heap with Source at 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = -1 // no predecessor yet
		}
	}
	r.dist[r.options.Source] = 0
	r.pq.Push(nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for {
		// 1) Pop the smallest-distance entry.
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		u := item.id

		// 2) Skip stale entries: vertex already finalized, or superseded by a later push.
		if r.visited[u] || item.dist != r.dist[u] {
			continue
		}

		// 3) Beyond MaxDistance nothing further can be finalized.
		if item.dist > r.options.MaxDistance {
			return nil
		}

		// 4) Mark u as visited. Its shortest distance is now final.
		r.visited[u] = true

		// 5) Relax all edges incident to u.
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax examines each edge incident to u and attempts to improve distances to its neighbors.
// If a shorter path to neighbor v is found (newDist < dist[v]), we update dist[v], prev[v],
// and push a new heap entry.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, nb := range neighbors {
		v, w := nb.Vertex, nb.Weight

		// Skip any edge marked impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor found.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy decrease-key: the old entry stays in the heap and is skipped when popped.
		r.pq.Push(nodeItem{id: v, dist: newDist})
	}

	return nil
}

// PathTo reconstructs the vertex sequence source → … → target from a predecessor
// slice returned by Dijkstra with WithReturnPath.
//
// Errors:
//   - core.ErrIndexOutOfRange if source or target is outside [0, len(prev)).
//   - ErrNoPath if target is unreachable from source.
func PathTo(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	for _, v := range [...]int{source, target} {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", core.ErrIndexOutOfRange, v, n)
		}
	}

	// Walk predecessors backwards; at most n steps on a well-formed slice.
	path := []int{target}
	for v := target; v != source; {
		v = prev[v]
		if v < 0 || len(path) > n {
			return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, target, source)
		}
		path = append(path, v)
	}

	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem represents a vertex and a candidate distance from the source.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source at push time
}

// closer orders heap entries by ascending distance.
func closer(a, b nodeItem) bool { return a.dist < b.dist }
