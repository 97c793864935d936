package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/wgraph/core"         // core.Graph, core.Edge, and core error types
	"github.com/katalvlaran/wgraph/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"         // assertion library
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	0-1 (weight 1), 1-2 (weight 2), 0-2 (weight 3).
//
// This graph’s MST consists of edges 0-1 and 1-2 with total weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 1, 2, 2)
	mustAddEdge(t, g, 0, 2, 3)

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
// - First, it ensures connectivity by adding a chain 0-1-...-(n-1) with random weights in [1, 11).
// - Then it adds (edgesCount - (n-1)) additional random edges with weights in [1, 101),
// skipping loops and pairs that already have an edge.
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int, seed int64) (*core.Graph, [][3]float64) {
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))

	var list [][3]float64
	seen := make(map[[2]int]bool)
	add := func(u, v int, w float64) {
		_, err := g.AddEdge(u, v, w)
		require.NoError(t, err)
		seen[[2]int{u, v}], seen[[2]int{v, u}] = true, true
		list = append(list, [3]float64{float64(u), float64(v), w})
	}

	for i := 1; i < n; i++ {
		add(i-1, i, 1.0+r.Float64()+float64(r.Intn(10)))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || seen[[2]int{u, v}] {
			continue
		}
		add(u, v, 1.0+r.Float64()+float64(r.Intn(100)))
		extra--
	}

	return g, list
}

// summary returns the edge count and total weight of a tree.
func summary(g *core.Graph) (int, float64) {
	return g.EdgeCount(), g.TotalWeight()
}

// TestPrim_Triangle checks the canonical triangle scenario.
func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle(t)
	before := g.String()

	mst, err := prim_kruskal.MinimumSpanningTree(g)
	require.NoError(t, err)

	assert.Equal(t, 3, mst.Size())
	assert.Equal(t, []core.Edge{
		{ID: 0, From: 0, To: 1, Weight: 1},
		{ID: 1, From: 1, To: 2, Weight: 2},
	}, mst.Edges())
	assert.Equal(t, 3.0, mst.TotalWeight())
	assert.Equal(t, before, g.String(), "input graph must not be modified")
}

// TestPrim_Orientation records tree edges as (tree vertex, new vertex).
func TestPrim_Orientation(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	mustAddEdge(t, g, 1, 0, 5)
	mustAddEdge(t, g, 2, 1, 6)

	mst, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{ID: 0, From: 0, To: 1, Weight: 5},
		{ID: 1, From: 1, To: 2, Weight: 6},
	}, mst.Edges())

	mst, err = prim_kruskal.Prim(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{ID: 0, From: 2, To: 1, Weight: 6},
		{ID: 1, From: 1, To: 0, Weight: 5},
	}, mst.Edges())
}

// TestPrim_TieBreakByInsertion picks the earliest-added edge among equal weights.
func TestPrim_TieBreakByInsertion(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	mustAddEdge(t, g, 0, 2, 1) // ID 0
	mustAddEdge(t, g, 0, 1, 1) // ID 1
	mustAddEdge(t, g, 1, 2, 1) // ID 2

	mst, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	edges := mst.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, 2, edges[0].To, "edge 0-2 was added first")
	assert.Equal(t, 1, edges[1].To)
}

// TestPrim_LoopsAndParallel ignores self-loops and takes the cheaper parallel edge.
func TestPrim_LoopsAndParallel(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	mustAddEdge(t, g, 0, 0, -10)
	mustAddEdge(t, g, 0, 1, 7)
	mustAddEdge(t, g, 1, 0, 4)
	mustAddEdge(t, g, 1, 1, -3)

	for _, compute := range []func(*core.Graph) (*core.Graph, error){prim_kruskal.MinimumSpanningTree, prim_kruskal.Kruskal} {
		mst, err := compute(g)
		require.NoError(t, err)
		n, total := summary(mst)
		assert.Equal(t, 1, n)
		assert.Equal(t, 4.0, total)
	}
}

// TestValidation_Disconnected verifies ErrDisconnected is returned promptly instead of hanging.
func TestValidation_Disconnected(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 2, 3, 1)
	mustAddEdge(t, g, 0, 0, 1)

	done := make(chan error, 1)
	go func() {
		_, err := prim_kruskal.MinimumSpanningTree(g)
		done <- err
	}()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	case <-time.After(5 * time.Second):
		t.Fatal("Prim did not terminate on a disconnected graph")
	}

	mst, err := prim_kruskal.Kruskal(g)
	assert.Nil(t, mst)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	// Isolated vertices are also disconnected.
	isolated, _ := core.NewGraph(2)
	_, err = prim_kruskal.Prim(isolated, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestValidation_Inputs covers nil graphs, bad roots and trivial sizes.
func TestValidation_Inputs(t *testing.T) {
	_, err := prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.MinimumSpanningTree(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g := buildTriangle(t)
	_, err = prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	mst, err := prim_kruskal.MinimumSpanningTree(empty)
	require.NoError(t, err)
	assert.Zero(t, mst.Size())
	mst, err = prim_kruskal.Kruskal(empty)
	require.NoError(t, err)
	assert.Zero(t, mst.Size())

	single, err := core.NewGraph(1)
	require.NoError(t, err)
	mustAddEdge(t, single, 0, 0, 2)
	mst, err = prim_kruskal.MinimumSpanningTree(single)
	require.NoError(t, err)
	assert.Equal(t, 1, mst.Size())
	assert.Zero(t, mst.EdgeCount())
}

// TestCompute_Dispatch checks the method/root options.
func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle(t)

	mst, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mst.TotalWeight())

	mst, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.Equal(t, 3.0, mst.TotalWeight())

	mst, err = prim_kruskal.Compute(g, prim_kruskal.WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, 2, mst.Edges()[0].From)

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	// Both methods agree on the empty graph.
	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		mst, err = prim_kruskal.Compute(empty, prim_kruskal.WithMethod(method))
		require.NoError(t, err, method)
		assert.Equal(t, 0, mst.Size(), method)
		assert.Equal(t, 0, mst.EdgeCount(), method)
	}
}

// TestMST_BruteForce compares against exhaustive enumeration of spanning trees for N ≤ 6.
func TestMST_BruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		n := 2 + r.Intn(5) // 2..6
		g, err := core.NewGraph(n)
		require.NoError(t, err)

		// random spanning chain for connectivity, then extras (loops and parallels allowed)
		perm := r.Perm(n)
		for i := 1; i < n; i++ {
			mustAddEdge(t, g, perm[i-1], perm[i], float64(r.Intn(20)))
		}
		for extra := r.Intn(5); extra > 0; extra-- {
			mustAddEdge(t, g, r.Intn(n), r.Intn(n), float64(r.Intn(20)))
		}

		want := bruteForceMST(n, g.Edges())
		for name, compute := range map[string]func(*core.Graph) (*core.Graph, error){
			"prim":    prim_kruskal.MinimumSpanningTree,
			"kruskal": prim_kruskal.Kruskal,
		} {
			mst, err := compute(g)
			require.NoError(t, err, name)
			require.Equal(t, n-1, mst.EdgeCount(), name)
			require.True(t, mst.Connected(), name)
			require.InDelta(t, want, mst.TotalWeight(), 1e-9, "%s on %s", name, g)
		}
	}
}

// bruteForceMST returns the minimum total weight over all spanning trees.
func bruteForceMST(n int, edges []core.Edge) float64 {
	best := math.Inf(1)
	var pick func(start, need int, chosen []core.Edge)
	pick = func(start, need int, chosen []core.Edge) {
		if need == 0 {
			if w, ok := spanningWeight(n, chosen); ok && w < best {
				best = w
			}
			return
		}
		for i := start; i <= len(edges)-need; i++ {
			pick(i+1, need-1, append(chosen, edges[i]))
		}
	}
	pick(0, n-1, nil)

	return best
}

// spanningWeight reports the weight of chosen if it is acyclic (and hence, with n-1 edges, spanning).
func spanningWeight(n int, chosen []core.Edge) (float64, bool) {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	var total float64
	for _, e := range chosen {
		a, b := find(e.From), find(e.To)
		if a == b {
			return 0, false
		}
		parent[a] = b
		total += e.Weight
	}

	return total, true
}

// TestMST_AgainstGonum cross-checks total weight with gonum's Prim on larger random graphs.
func TestMST_AgainstGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, list := buildMediumGraph(t, 80, 400, seed)

		ref := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < g.Size(); i++ {
			ref.AddNode(simple.Node(i))
		}
		for _, e := range list {
			ref.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(e[0])), T: simple.Node(int64(e[1])), W: e[2]})
		}
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := path.Prim(dst, ref)

		prim, err := prim_kruskal.MinimumSpanningTree(g)
		require.NoError(t, err)
		kruskal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		assert.Equal(t, g.Size()-1, prim.EdgeCount())
		assert.InDelta(t, want, prim.TotalWeight(), 1e-9)
		assert.InDelta(t, want, kruskal.TotalWeight(), 1e-9)
	}
}

// mustAddEdge adds u-v with weight w and fails the test on error.
func mustAddEdge(t testing.TB, g *core.Graph, u, v int, w float64) {
	t.Helper()
	_, err := g.AddEdge(u, v, w)
	require.NoError(t, err)
}
