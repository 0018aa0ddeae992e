package grid

import "github.com/katalvlaran/gridkit/position"

// Perimeter returns how many of the four sides of (x, y) are region edges:
// the grid border, or an axis neighbour holding a different value.
// Cells outside the grid have no perimeter.
func (g *Grid) Perimeter(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	n := 0
	for _, d := range position.Cardinals {
		if g.IsEdgeDifferent(x, y, d) {
			n++
		}
	}
	return n
}

// IsEdgeDifferent reports whether every axis neighbour of (x, y) named in
// dirs is outside the grid or holds a different value.
func (g *Grid) IsEdgeDifferent(x, y int, dirs position.Direction) bool {
	v, ok := g.Get(x, y)
	if !ok {
		return false
	}
	for _, d := range position.Cardinals {
		if dirs&d == 0 {
			continue
		}
		dx, dy := d.Delta()
		if g.IsValue(x+dx, y+dy, v) {
			return false
		}
	}
	return true
}

// IsEdgeSame reports whether every axis neighbour of (x, y) named in dirs is
// inside the grid and holds the same value. Outside neighbours fail the test.
func (g *Grid) IsEdgeSame(x, y int, dirs position.Direction) bool {
	v, ok := g.Get(x, y)
	if !ok {
		return false
	}
	for _, d := range position.Cardinals {
		if dirs&d == 0 {
			continue
		}
		dx, dy := d.Delta()
		if !g.IsValue(x+dx, y+dy, v) {
			return false
		}
	}
	return true
}

// IsDiagonalDifferent reports whether the diagonal neighbour of (x, y) in
// the given quadrant is inside the grid and holds a different value.
// Non-diagonal directions and outside neighbours yield false.
func (g *Grid) IsDiagonalDifferent(x, y int, corner position.Direction) bool {
	switch corner {
	case position.NorthEast, position.SouthEast, position.SouthWest, position.NorthWest:
	default:
		return false
	}
	v, ok := g.Get(x, y)
	if !ok {
		return false
	}
	dx, dy := corner.Delta()
	n, ok := g.Get(x+dx, y+dy)
	return ok && n != v
}

// CountCorners returns the corners (x, y) contributes to the outline of its
// region, 0 to 4: one per quadrant whose two orthogonal neighbours both
// differ (outer corner), or both match while the diagonal differs (inner corner).
func (g *Grid) CountCorners(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	corners := 0
	for _, q := range position.Quadrants {
		switch {
		case g.IsEdgeDifferent(x, y, q):
			corners++
		case g.IsEdgeSame(x, y, q) && g.IsDiagonalDifferent(x, y, q):
			corners++
		}
	}
	return corners
}
