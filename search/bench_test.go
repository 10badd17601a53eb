// File: search/bench_test.go
package search_test

import (
	"testing"

	"github.com/wayfarer-go/wayfarer/graphx"
	"github.com/wayfarer-go/wayfarer/grid"
	"github.com/wayfarer-go/wayfarer/search"
)

// BenchmarkDijkstra_Chain measures Dijkstra on a linear chain of N+1
// vertices and N unit edges, the worst case for frontier reuse.
func BenchmarkDijkstra_Chain(b *testing.B) {
	const N = 10000
	edges := make([]graphx.EdgeSpec, 0, N)
	for i := 0; i < N; i++ {
		edges = append(edges, graphx.EdgeSpec{From: i, To: i + 1, Cost: 1})
	}
	g, err := graphx.NewGraph(N+1, false, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Dijkstra(g, 0, N)
	}
}

// BenchmarkAStar_Grid measures A* corner to corner on a uniform 100x100
// grid, where the Manhattan heuristic prunes most of the frontier.
func BenchmarkAStar_Grid(b *testing.B) {
	const side = 100
	g, err := grid.NewGrid(side, side, nil)
	if err != nil {
		b.Fatal(err)
	}
	goal := g.Size() - 1

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(g, 0, goal)
	}
}

// BenchmarkResumableDijkstra_RepeatedQueries measures the amortized cost of
// answering many queries from one anchored frontier on a 100x100 grid.
func BenchmarkResumableDijkstra_RepeatedQueries(b *testing.B) {
	const side = 100
	g, err := grid.NewGrid(side, side, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, err := search.NewResumableDijkstra(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		for v := 0; v < g.Size(); v += side {
			_, _ = r.Distance(v)
		}
	}
}
