package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/pathfind"
	"github.com/katalvlaran/gridkit/position"
)

// benchMaze returns an n×n map with scattered walls and open corners.
func benchMaze(n int) *grid.Grid {
	rng := rand.New(rand.NewSource(7))
	g := grid.New(n, n, '.')
	for i := 0; i < n*n/4; i++ {
		g.Set(rng.Intn(n), rng.Intn(n), '#')
	}
	g.Set(0, 0, '.')
	g.Set(n-1, n-1, '.')
	return g
}

// BenchmarkShortestLengths measures length-only search on a 64×64 map.
func BenchmarkShortestLengths(b *testing.B) {
	g := benchMaze(64)
	start, finish := position.New(0, 0, position.East), position.Key{X: 63, Y: 63}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.ShortestLengths(g, start, finish, '.')
	}
}

// BenchmarkShortestPaths measures the same search while keeping histories.
func BenchmarkShortestPaths(b *testing.B) {
	g := benchMaze(64)
	start, finish := position.New(0, 0, position.East), position.Key{X: 63, Y: 63}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.ShortestPaths(g, start, finish, '.')
	}
}

// BenchmarkBoundedPaths measures turn-weighted search with the default slack
// on a 12×12 map.
func BenchmarkBoundedPaths(b *testing.B) {
	g := benchMaze(12)
	start, finish := position.New(0, 0, position.East), position.Key{X: 11, Y: 11}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.BoundedPaths(g, start, finish, 0, '.')
	}
}
