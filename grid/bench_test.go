package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
)

// randomGrid returns an n×n map over a small alphabet.
func randomGrid(n int, seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for y := range lines {
		row := make([]byte, n)
		for x := range row {
			row[x] = 'A' + byte(rng.Intn(4))
		}
		lines[y] = string(row)
	}
	return grid.FromLines(lines)
}

// BenchmarkRegions measures Regions on a random 500×500 map.
// Complexity: O(W×H).
func BenchmarkRegions(b *testing.B) {
	g := randomGrid(500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}

// BenchmarkFloodFill_Open measures a fill that covers a whole 1000×1000 map.
func BenchmarkFloodFill_Open(b *testing.B) {
	orig := grid.New(1000, 1000, '.')
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := orig.Clone()
		b.StartTimer()
		_ = work.FloodFill(500, 500, '.', orig, '-')
	}
}
