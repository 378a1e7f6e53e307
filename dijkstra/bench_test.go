package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/classics/dijkstra"
)

// BenchmarkShortestPath measures a single-pair query on a random graph with
// 10 000 nodes and 50 000 edges.
func BenchmarkShortestPath(b *testing.B) {
	g := randomGraph(rand.New(rand.NewSource(1)), 10000, 50000, 100) // pre‐build graph once
	b.ResetTimer()                                                   // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, 0, 9999)
	}
}

// BenchmarkDistances measures a full single-source run on the same graph.
func BenchmarkDistances(b *testing.B) {
	g := randomGraph(rand.New(rand.NewSource(1)), 10000, 50000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Distances(g, 0)
	}
}
