package grid

import "github.com/katalvlaran/gridkit/position"

// DrawPath writes ch on every in-bounds cell of path.
func (g *Grid) DrawPath(path []position.Position, ch byte) {
	for _, p := range path {
		g.SetPosition(p, ch)
	}
}

// DrawPathDirection writes the facing glyph of every cell of path:
// ^ > v < for the cardinals and + for a position without facing.
func (g *Grid) DrawPathDirection(path []position.Position) {
	for _, p := range path {
		g.SetPosition(p, p.Dir.Glyph())
	}
}
