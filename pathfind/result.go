package pathfind

import (
	"slices"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/position"
)

// Result holds the outcome of a Search.
type Result struct {
	// Mode the search ran in.
	Mode Mode

	// Finished lists trackers that reached the finish, best score first.
	Finished []Tracker

	// Scores[i] is the score of Finished[i]: a length in the shortest modes,
	// a turn-weighted cost otherwise.
	Scores []int

	// Best is the lowest finished score, or -1 if the finish was not reached.
	Best int

	// Rounds counts processed rounds.
	Rounds int

	// Spawned counts branches created by Split.
	Spawned int
}

// Found reports whether any tracker reached the finish.
func (r *Result) Found() bool {
	return len(r.Finished) > 0
}

// Cells returns the distinct cells on every finished path in row-major
// order. LengthOnly trackers contribute only the finish cell.
func (r *Result) Cells() []position.Key {
	seen := make(map[position.Key]struct{})
	var out []position.Key
	for i := range r.Finished {
		for _, p := range r.Finished[i].Path() {
			k := p.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	slices.SortFunc(out, func(a, b position.Key) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Tiles returns the number of distinct cells on every finished path.
func (r *Result) Tiles() int {
	return len(r.Cells())
}

// Draw writes ch onto g over every finished path.
func (r *Result) Draw(g *grid.Grid, ch byte) {
	for i := range r.Finished {
		g.DrawPath(r.Finished[i].Path(), ch)
	}
}
