package grid

import "github.com/katalvlaran/gridkit/position"

// Region is one 4-connected area of equal cells.
type Region struct {
	Value byte              // the shared cell value
	Seed  position.Position // first cell of the region in row-major order
	Shape Shape
}

// Regions flood-fills every region of g and returns them in row-major order
// of their first cell. g itself is left untouched; the fill runs on a copy.
//
// Complexity: O(W×H) time and memory.
func (g *Grid) Regions() []Region {
	work := g.Clone()
	marker, ok := g.unusedByte()
	if !ok {
		// Every byte value occurs; fall back to a mask so no value is lost.
		return g.regionsMasked()
	}

	var out []Region
	for i, v := range work.cells {
		if v == marker {
			continue
		}
		x, y := g.Coordinate(i)
		out = append(out, Region{
			Value: v,
			Seed:  position.At(x, y),
			Shape: work.FloodFill(x, y, v, g, marker),
		})
	}
	return out
}

// Totals sums the shapes of regions.
func Totals(regions []Region) (total Shape, price, bulkPrice int) {
	for _, r := range regions {
		total = total.Add(r.Shape)
		price += r.Shape.Price()
		bulkPrice += r.Shape.BulkPrice()
	}
	return total, price, bulkPrice
}

// unusedByte returns a byte value that no cell of g holds.
func (g *Grid) unusedByte() (byte, bool) {
	var seen [256]bool
	for _, c := range g.cells {
		seen[c] = true
	}
	for b := range seen {
		if !seen[b] {
			return byte(b), true
		}
	}
	return 0, false
}

// regionsMasked is the fill-free variant of Regions used when no spare byte
// can serve as the visited marker. It walks each region with an explicit
// stack and a visited mask.
func (g *Grid) regionsMasked() []Region {
	seen := make([]bool, len(g.cells))
	var out []Region
	for i0, v := range g.cells {
		if seen[i0] {
			continue
		}
		x0, y0 := g.Coordinate(i0)
		r := Region{Value: v, Seed: position.At(x0, y0)}
		seen[i0] = true
		stack := []int{i0}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := g.Coordinate(i)
			r.Shape.Area++
			r.Shape.Perimeter += g.Perimeter(x, y)
			r.Shape.Corners += g.CountCorners(x, y)
			for _, d := range position.Cardinals {
				dx, dy := d.Delta()
				nx, ny := x+dx, y+dy
				if !g.IsValue(nx, ny, v) {
					continue
				}
				if j := g.index(nx, ny); !seen[j] {
					seen[j] = true
					stack = append(stack, j)
				}
			}
		}
		out = append(out, r)
	}
	return out
}
