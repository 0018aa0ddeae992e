// Package grid provides a rectangular byte grid with bounds-checked access.
package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/position"
)

// Grid is a width×height map of single-byte cells stored row-major.
type Grid struct {
	width, height int
	cells         []byte
}

// New returns a width×height grid with every cell set to fill.
// Negative dimensions are treated as zero.
func New(width, height int, fill byte) *Grid {
	width, height = max(width, 0), max(height, 0)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
	g.Clear(fill)
	return g
}

// FromLines builds a grid with one row per line. The width is taken from the
// first line and the rows are trusted: a shorter row leaves its tail as zero
// bytes and a longer row is truncated. Use Parse to reject such input.
func FromLines(lines []string) *Grid {
	if len(lines) == 0 {
		return &Grid{}
	}
	w, h := len(lines[0]), len(lines)
	g := &Grid{width: w, height: h, cells: make([]byte, w*h)}
	for y, line := range lines {
		copy(g.cells[y*w:(y+1)*w], line)
	}
	return g
}

// Parse builds a grid from lines after checking they form a non-empty rectangle.
// Returns ErrEmptyGrid or ErrNonRectangular.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(line), w)
		}
	}
	return FromLines(lines), nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the grid rectangle for position movement.
func (g *Grid) Bounds() position.Bounds {
	return position.Rect(g.width, g.height)
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x, y) to its row-major offset. The caller checks bounds.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major offset back to (x, y).
// A grid without columns maps every offset to (0, 0).
func (g *Grid) Coordinate(idx int) (x, y int) {
	if g.width == 0 {
		return 0, 0
	}
	return idx % g.width, idx / g.width
}

// Get returns the cell at (x, y) and whether it exists.
func (g *Grid) Get(x, y int) (byte, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[g.index(x, y)], true
}

// At returns the cell under p and whether it exists.
func (g *Grid) At(p position.Position) (byte, bool) {
	return g.Get(p.X, p.Y)
}

// IsValue reports whether (x, y) is inside the grid and holds ch.
func (g *Grid) IsValue(x, y int, ch byte) bool {
	return g.InBounds(x, y) && g.cells[g.index(x, y)] == ch
}

// IsPositionValue reports whether p is inside the grid and its cell holds ch.
func (g *Grid) IsPositionValue(p position.Position, ch byte) bool {
	return g.IsValue(p.X, p.Y, ch)
}

// Set writes ch at (x, y). It returns false, leaving the grid unchanged,
// when (x, y) is outside.
func (g *Grid) Set(x, y int, ch byte) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = ch
	return true
}

// SetPosition writes ch under p. See Set.
func (g *Grid) SetPosition(p position.Position, ch byte) bool {
	return g.Set(p.X, p.Y, ch)
}

// SetNoOverwrite writes ch at (x, y) only when ref holds empty at the same
// cell, so an overlay never covers what the reference already marks.
// It reports whether the write happened.
func (g *Grid) SetNoOverwrite(x, y int, ch byte, ref *Grid, empty byte) bool {
	if !g.InBounds(x, y) || ref == nil || !ref.IsValue(x, y, empty) {
		return false
	}
	g.cells[g.index(x, y)] = ch
	return true
}

// Clear resets every cell to ch.
func (g *Grid) Clear(ch byte) {
	for i := range g.cells {
		g.cells[i] = ch
	}
}

// FindFirst returns the first cell holding ch in row-major order.
func (g *Grid) FindFirst(ch byte) (position.Position, bool) {
	for i, c := range g.cells {
		if c == ch {
			x, y := g.Coordinate(i)
			return position.At(x, y), true
		}
	}
	return position.Position{}, false
}

// FindAll returns every cell holding ch in row-major order.
func (g *Grid) FindAll(ch byte) []position.Position {
	var out []position.Position
	for i, c := range g.cells {
		if c == ch {
			x, y := g.Coordinate(i)
			out = append(out, position.At(x, y))
		}
	}
	return out
}

// Count returns the number of cells holding ch.
func (g *Grid) Count(ch byte) int {
	n := 0
	for _, c := range g.cells {
		if c == ch {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Lines renders the grid as Height lines of Width characters.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = string(g.cells[y*g.width : (y+1)*g.width])
	}
	return lines
}

// String implements fmt.Stringer; rows are joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
