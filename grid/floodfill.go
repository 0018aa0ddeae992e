package grid

// Shape summarizes a filled region.
type Shape struct {
	Area      int // cells in the region
	Perimeter int // region edges: grid border or differing neighbour
	Corners   int // outline corners, equal to the number of sides
}

// Price returns Area × Perimeter.
func (s Shape) Price() int {
	return s.Area * s.Perimeter
}

// BulkPrice returns Area × Corners, the price by number of sides.
func (s Shape) BulkPrice() int {
	return s.Area * s.Corners
}

// Add returns the component-wise sum of s and o.
func (s Shape) Add(o Shape) Shape {
	return Shape{Area: s.Area + o.Area, Perimeter: s.Perimeter + o.Perimeter, Corners: s.Corners + o.Corners}
}

// seed is a pending scanline start.
type seed struct {
	x, y int
}

// FloodFill fills the 4-connected region of fill cells containing (x, y).
// Every filled cell of g becomes visited; its perimeter and corners are read
// from original, which must hold the unfilled map. A nil original means a
// snapshot of g taken before filling.
//
// The fill is a stack-based scanline: each popped seed is extended right
// and then left along its row, and at most one new seed is pushed per
// contiguous run of fill cells directly above or below the scanned span.
//
// A seed outside the grid or not holding fill yields the zero Shape, so
// filling the same region twice returns zero the second time.
// visited must differ from fill.
//
// Complexity: O(A) time for a region of A cells, O(A) seed memory.
func (g *Grid) FloodFill(x, y int, fill byte, original *Grid, visited byte) Shape {
	var s Shape
	if fill == visited || !g.IsValue(x, y, fill) {
		return s
	}
	if original == nil {
		original = g.Clone()
	}

	stack := []seed{{x, y}}
	for len(stack) > 0 {
		sd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Already consumed by an earlier span.
		if !g.IsValue(sd.x, sd.y, fill) {
			continue
		}

		// The seed column's neighbours start the left scan so a run that
		// straddles the seed is pushed only once.
		upAtSeed := g.IsValue(sd.x, sd.y-1, fill)
		downAtSeed := g.IsValue(sd.x, sd.y+1, fill)

		up, down := false, false
		for x1 := sd.x; x1 < g.width && g.IsValue(x1, sd.y, fill); x1++ {
			stack, up, down = g.visitSpanCell(x1, sd.y, fill, original, visited, &s, stack, up, down)
		}
		up, down = upAtSeed, downAtSeed
		for x1 := sd.x - 1; x1 >= 0 && g.IsValue(x1, sd.y, fill); x1-- {
			stack, up, down = g.visitSpanCell(x1, sd.y, fill, original, visited, &s, stack, up, down)
		}
	}
	return s
}

// visitSpanCell marks (x, y), adds its metrics to s, and pushes a seed for
// the row above or below when a new run of fill cells starts there.
// prevUp/prevDown tell whether the previous column's neighbour was fill.
func (g *Grid) visitSpanCell(x, y int, fill byte, original *Grid, visited byte,
	s *Shape, stack []seed, prevUp, prevDown bool) ([]seed, bool, bool) {
	g.cells[g.index(x, y)] = visited
	s.Area++
	s.Perimeter += original.Perimeter(x, y)
	s.Corners += original.CountCorners(x, y)

	up := g.IsValue(x, y-1, fill)
	if up && !prevUp {
		stack = append(stack, seed{x, y - 1})
	}
	down := g.IsValue(x, y+1, fill)
	if down && !prevDown {
		stack = append(stack, seed{x, y + 1})
	}
	return stack, up, down
}
