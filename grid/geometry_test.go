package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/position"
)

// cross is a plus-shaped region of A on a 3×3 map:
//
//	. A .
//	A A A
//	. A .
var cross = []string{
	".A.",
	"AAA",
	".A.",
}

func TestPerimeter(t *testing.T) {
	g := grid.FromLines(cross)
	want := [][]int{
		{4, 3, 4},
		{3, 0, 3},
		{4, 3, 4},
	}
	for y := range want {
		for x := range want[y] {
			assert.Equal(t, want[y][x], g.Perimeter(x, y), "Perimeter(%d,%d)", x, y)
		}
	}
	assert.Zero(t, g.Perimeter(-1, 0))
	assert.Zero(t, g.Perimeter(3, 3))
}

func TestEdgeTests(t *testing.T) {
	g := grid.FromLines(cross)

	// Top arm: border to the north, dots east and west, centre to the south.
	assert.True(t, g.IsEdgeDifferent(1, 0, position.North))
	assert.True(t, g.IsEdgeDifferent(1, 0, position.NorthEast))
	assert.True(t, g.IsEdgeDifferent(1, 0, position.East|position.West))
	assert.False(t, g.IsEdgeDifferent(1, 0, position.South))
	assert.False(t, g.IsEdgeDifferent(1, 0, position.SouthEast))

	assert.True(t, g.IsEdgeSame(1, 0, position.South))
	assert.False(t, g.IsEdgeSame(1, 0, position.North), "outside fails the same test")
	assert.False(t, g.IsEdgeSame(1, 0, position.SouthEast))
	assert.True(t, g.IsEdgeSame(1, 1, position.North|position.East|position.South|position.West))

	assert.False(t, g.IsEdgeDifferent(7, 7, position.North), "outside cell")
	assert.False(t, g.IsEdgeSame(7, 7, position.North), "outside cell")
}

func TestIsDiagonalDifferent(t *testing.T) {
	g := grid.FromLines(cross)
	for _, q := range position.Quadrants {
		assert.True(t, g.IsDiagonalDifferent(1, 1, q), "centre %s", q)
	}
	// Corners of the map look outside on three quadrants.
	assert.False(t, g.IsDiagonalDifferent(0, 0, position.NorthWest))
	assert.False(t, g.IsDiagonalDifferent(0, 0, position.NorthEast))
	assert.True(t, g.IsDiagonalDifferent(0, 0, position.SouthEast))
	assert.False(t, g.IsDiagonalDifferent(1, 1, position.North), "not a quadrant")
}

func TestCountCorners(t *testing.T) {
	g := grid.FromLines(cross)
	want := [][]int{
		{4, 2, 4},
		{2, 4, 2},
		{4, 2, 4},
	}
	for y := range want {
		for x := range want[y] {
			assert.Equal(t, want[y][x], g.CountCorners(x, y), "CountCorners(%d,%d)", x, y)
		}
	}
	assert.Zero(t, g.CountCorners(3, 0))
}
