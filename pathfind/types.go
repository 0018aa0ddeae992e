// Package pathfind provides search modes, tunable options and error
// definitions for branching grid searches.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/position"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrStartOutOfBounds is returned when the start lies outside the grid.
	ErrStartOutOfBounds = errors.New("pathfind: start position outside grid")

	// ErrFinishOutOfBounds is returned when the finish lies outside the grid.
	ErrFinishOutOfBounds = errors.New("pathfind: finish position outside grid")

	// ErrStartDirection is returned when the start has no cardinal facing.
	ErrStartDirection = errors.New("pathfind: start position needs a cardinal direction")

	// ErrUnknownMode is returned for a Mode outside the defined set.
	ErrUnknownMode = errors.New("pathfind: unknown search mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

const (
	// DefaultTurnPenalty is the cost of one change of facing.
	DefaultTurnPenalty = 1000

	// DefaultSlack is the pruning slack of ModeBoundedPaths: one wasted turn.
	DefaultSlack = DefaultTurnPenalty

	// maxScore caps scores and slack, so best+slack fits in an int.
	maxScore = math.MaxInt / 2
)

// Mode selects what a search measures and keeps.
type Mode int

const (
	// ModeShortestLength tracks step counts only.
	ModeShortestLength Mode = iota
	// ModeShortestPaths tracks step counts and full histories.
	ModeShortestPaths
	// ModeAllPaths ranks by turn-weighted cost and forbids revisiting a cell.
	ModeAllPaths
	// ModeBoundedPaths is ModeAllPaths with a pruning slack and a cost ceiling.
	ModeBoundedPaths
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeShortestLength:
		return "length"
	case ModeShortestPaths:
		return "shortest"
	case ModeAllPaths:
		return "all"
	case ModeBoundedPaths:
		return "bounded"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a Mode name produced by String back into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeShortestLength, ModeShortestPaths, ModeAllPaths, ModeBoundedPaths} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// kind returns the trail variant the mode needs.
func (m Mode) kind() Kind {
	if m == ModeShortestLength {
		return LengthOnly
	}
	return WithHistory
}

// turnWeighted reports whether the mode ranks by turn-weighted cost.
func (m Mode) turnWeighted() bool {
	return m == ModeAllPaths || m == ModeBoundedPaths
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; it is checked once per round.
	Ctx context.Context

	// Bounds clamps movement. The zero value means the grid rectangle.
	Bounds position.Bounds

	// TurnPenalty is the cost of one change of facing.
	TurnPenalty int

	// Slack widens per-cell pruning: a branch survives while its score is
	// at most best+Slack. Negative means the mode default
	// (DefaultSlack for ModeBoundedPaths, 0 otherwise).
	Slack int

	// MaxCost, if > 0, prunes every branch scoring above it.
	MaxCost int

	// OnRound is called at the start of each round with the round number
	// (from 1) and the number of live trackers.
	OnRound func(round, live int)

	// Walkable decides which cell values a tracker may enter. Nil means
	// "equals the free character". The finish cell is always walkable.
	Walkable func(cell byte) bool

	hasBounds bool
	err       error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - grid-rectangle bounds
//   - DefaultTurnPenalty, mode-default slack, no cost ceiling
//   - no-op OnRound hook
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		TurnPenalty: DefaultTurnPenalty,
		Slack:       -1,
		MaxCost:     0,
		OnRound:     func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBounds clamps movement to b instead of the grid rectangle.
func WithBounds(b position.Bounds) Option {
	return func(o *Options) {
		if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
			o.err = fmt.Errorf("%w: empty bounds %+v", ErrOptionViolation, b)
			return
		}
		o.Bounds = b
		o.hasBounds = true
	}
}

// WithTurnPenalty sets the cost of one change of facing (>= 0).
// Costs saturate instead of overflowing, so any penalty is safe; scores
// above math.MaxInt/2 compare equal.
func WithTurnPenalty(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: TurnPenalty cannot be negative (%d)", ErrOptionViolation, p)
			return
		}
		o.TurnPenalty = p
	}
}

// WithSlack sets the per-cell pruning slack (>= 0, at most math.MaxInt/2).
func WithSlack(s int) Option {
	return func(o *Options) {
		if s < 0 || s > maxScore {
			o.err = fmt.Errorf("%w: Slack must be within [0, %d] (%d)", ErrOptionViolation, maxScore, s)
			return
		}
		o.Slack = s
	}
}

// WithMaxCost prunes every branch scoring above c.
//
//	c > 0:  ceiling c
//	c == 0: explicit no ceiling
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnRound registers a callback run at the start of every round.
func WithOnRound(fn func(round, live int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithWalkable replaces the free-character test for enterable cells.
func WithWalkable(fn func(cell byte) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Walkable = fn
		}
	}
}
