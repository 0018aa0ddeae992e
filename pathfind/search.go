package pathfind

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/position"
)

// walker encapsulates mutable search state.
type walker struct {
	grid     *grid.Grid
	opts     Options
	ctx      context.Context
	mode     Mode
	bounds   position.Bounds
	finish   position.Key
	slack    int
	best     []int // per cell, -1 until first reached
	live     []Tracker
	occupied map[position.Key]int
	res      *Result
}

// Search runs a branching search on g from start (which must face a cardinal
// direction) to finish, entering only cells equal to free unless WithWalkable
// says otherwise.
// Returns ErrGridNil, ErrStartOutOfBounds, ErrFinishOutOfBounds,
// ErrStartDirection, ErrUnknownMode or ErrOptionViolation for invalid input,
// and ctx.Err() together with the partial result on cancellation.
func Search(g *grid.Grid, start position.Position, finish position.Key, free byte, mode Mode, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if mode < ModeShortestLength || mode > ModeBoundedPaths {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	// Validate endpoints
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start.Key())
	}
	if !g.InBounds(finish.X, finish.Y) {
		return nil, fmt.Errorf("%w: %v", ErrFinishOutOfBounds, finish)
	}
	if !start.Dir.IsCardinal() {
		return nil, fmt.Errorf("%w: got %v", ErrStartDirection, start.Dir)
	}

	if !o.hasBounds {
		o.Bounds = g.Bounds()
	}
	if o.Walkable == nil {
		o.Walkable = func(cell byte) bool { return cell == free }
	}
	slack := o.Slack
	if slack < 0 {
		slack = 0
		if mode == ModeBoundedPaths {
			slack = DefaultSlack
		}
	}

	// Prepare walker
	cells := g.Width() * g.Height()
	w := &walker{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		mode:     mode,
		bounds:   o.Bounds,
		finish:   finish,
		slack:    slack,
		best:     make([]int, cells),
		occupied: make(map[position.Key]int),
		res:      &Result{Mode: mode, Best: -1},
	}
	for i := range w.best {
		w.best[i] = -1
	}

	// Seed the worklist with a fresh tracker at start
	seed := start
	seed.Step, seed.Gen, seed.Lifetime = 0, 0, 0
	w.live = append(w.live, NewTracker(seed, mode.kind()))

	err := w.loop()
	w.collect()
	return w.res, err
}

// ShortestLengths runs Search in ModeShortestLength mode.
func ShortestLengths(g *grid.Grid, start position.Position, finish position.Key, free byte, opts ...Option) (*Result, error) {
	return Search(g, start, finish, free, ModeShortestLength, opts...)
}

// ShortestPaths runs Search in ModeShortestPaths mode.
func ShortestPaths(g *grid.Grid, start position.Position, finish position.Key, free byte, opts ...Option) (*Result, error) {
	return Search(g, start, finish, free, ModeShortestPaths, opts...)
}

// AllPaths runs Search in ModeAllPaths mode.
func AllPaths(g *grid.Grid, start position.Position, finish position.Key, free byte, opts ...Option) (*Result, error) {
	return Search(g, start, finish, free, ModeAllPaths, opts...)
}

// BoundedPaths runs Search in ModeBoundedPaths mode with cost ceiling maxCost
// (0 means none). An explicit WithMaxCost in opts wins over maxCost.
func BoundedPaths(g *grid.Grid, start position.Position, finish position.Key, maxCost int, free byte, opts ...Option) (*Result, error) {
	return Search(g, start, finish, free, ModeBoundedPaths, append([]Option{WithMaxCost(maxCost)}, opts...)...)
}

// loop runs rounds until no tracker is alive, or the context is done.
func (w *walker) loop() error {
	for len(w.live) > 0 {
		// cancellation check (once per round)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		w.res.Rounds++
		w.opts.OnRound(w.res.Rounds, len(w.live))
		w.round()
	}
	return nil
}

// round advances every live tracker once. Survivors keep their order and
// branches spawned this round are appended after them.
func (w *walker) round() {
	clear(w.occupied)
	for i := range w.live {
		w.occupied[w.live[i].Pos.Key()]++
	}

	var spawned []Tracker
	n := 0
	for i := range w.live {
		t := w.live[i]
		if w.advance(&t, &spawned) {
			w.live[n] = t
			n++
		}
	}
	w.live = append(w.live[:n], spawned...)
}

// advance runs one tracker through score, prune, finish, branch and step.
// It reports whether the tracker stays in the worklist.
func (w *walker) advance(t *Tracker, spawned *[]Tracker) bool {
	k := t.Pos.Key()
	score := w.score(t)

	idx := k.Y*w.grid.Width() + k.X
	if b := w.best[idx]; b < 0 || score < b {
		w.best[idx] = score
	}
	if score > w.best[idx]+w.slack || (w.opts.MaxCost > 0 && score > w.opts.MaxCost) {
		return false
	}

	if k == w.finish {
		w.res.Finished = append(w.res.Finished, *t)
		w.res.Scores = append(w.res.Scores, score)
		return false
	}

	// right first, then left
	for _, side := range [2]position.Position{t.Pos.PeekRight(w.bounds), t.Pos.PeekLeft(w.bounds)} {
		if !w.walkable(side) {
			continue
		}
		sk := side.Key()
		if w.mode.turnWeighted() {
			if t.HasVisited(sk) {
				continue
			}
		} else if w.occupied[sk] > 0 {
			continue
		}
		*spawned = append(*spawned, t.Split(side))
		w.occupied[sk]++
		w.res.Spawned++
	}

	ahead := t.Pos.Peek(w.bounds)
	if !w.walkable(ahead) {
		return false
	}
	w.occupied[k]--
	t.Move(w.bounds)
	w.occupied[ahead.Key()]++
	return true
}

// score ranks a tracker under the current mode, capped at maxScore so that
// best+slack never overflows.
func (w *walker) score(t *Tracker) int {
	if w.mode.turnWeighted() {
		return min(t.Cost(w.opts.TurnPenalty), maxScore)
	}
	return t.Len()
}

// walkable reports whether p may be entered: alive, inside the grid, and
// either the finish or a cell accepted by the Walkable test.
func (w *walker) walkable(p position.Position) bool {
	if !p.Alive() {
		return false
	}
	if p.Key() == w.finish {
		return true
	}
	cell, ok := w.grid.At(p)
	return ok && w.opts.Walkable(cell)
}

// collect keeps finished trackers within slack of the best score and sorts
// them by score, ties in discovery order.
func (w *walker) collect() {
	r := w.res
	if len(r.Finished) == 0 {
		return
	}
	r.Best = slices.Min(r.Scores)

	order := make([]int, 0, len(r.Finished))
	for i, s := range r.Scores {
		if s <= r.Best+w.slack {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int { return r.Scores[a] - r.Scores[b] })

	finished := make([]Tracker, len(order))
	scores := make([]int, len(order))
	for i, j := range order {
		finished[i], scores[i] = r.Finished[j], r.Scores[j]
	}
	r.Finished, r.Scores = finished, scores
}
