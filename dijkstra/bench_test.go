package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// randomGraph builds a connected undirected graph: a chain plus extra random edges.
func randomGraph(n, extra int, seed int64) core.Adjacency {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i, 1+rng.Int63n(100))
	}
	for e := 0; e < extra; e++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u != v {
			_ = g.AddEdge(u, v, 1+rng.Int63n(100))
		}
	}

	return g.Adjacency()
}

// BenchmarkSolver_Undirected measures a full run with the settled-neighbour filter.
func BenchmarkSolver_Undirected(b *testing.B) {
	adj := randomGraph(5000, 20000, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.NewSolver(adj, 0)
	}
}

// BenchmarkSolver_Directed measures the same graph relaxing every edge.
func BenchmarkSolver_Directed(b *testing.B) {
	adj := randomGraph(5000, 20000, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.NewSolver(adj, 0, dijkstra.WithDirected(true))
	}
}
