package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/position"
)

// Tracker is one search branch: where it stands and how it got there.
type Tracker struct {
	Pos   position.Position
	Trail Trail
}

// NewTracker starts a branch at start with an empty trail of kind k.
func NewTracker(start position.Position, k Kind) Tracker {
	return Tracker{Pos: start, Trail: NewTrail(k)}
}

// Move records the current position in the trail and steps ahead within b.
// A step that would leave b kills the tracker and records nothing.
func (t *Tracker) Move(b position.Bounds) bool {
	if !t.Pos.Peek(b).Alive() {
		t.Pos.Kill()
		return false
	}
	rec := t.Pos
	rec.Lifetime = t.Trail.Len()
	t.Trail = t.Trail.push(rec)
	return t.Pos.Move(b)
}

// Split returns a new branch standing on to and facing to.Dir. Its trail is
// the parent's trail plus the parent's current position; the parent itself
// is not changed.
func (t *Tracker) Split(to position.Position) Tracker {
	rec := t.Pos
	rec.Lifetime = t.Trail.Len()
	return Tracker{
		Pos: position.Position{
			X:        to.X,
			Y:        to.Y,
			Dir:      to.Dir,
			Gen:      t.Pos.Gen + 1,
			Lifetime: rec.Lifetime,
		},
		Trail: t.Trail.push(rec),
	}
}

// Len returns the number of steps taken: the history length, or the scalar
// length of a LengthOnly trail.
func (t *Tracker) Len() int {
	return t.Trail.Len()
}

// HasVisited reports whether the history holds a position on k.
// LengthOnly trackers have no history and always report false.
func (t *Tracker) HasVisited(k position.Key) bool {
	return t.Trail.contains(k)
}

// Turns returns the number of facing changes along the history and into the
// current facing. LengthOnly trackers report 0.
func (t *Tracker) Turns() int {
	last := t.Trail.last
	if last == nil {
		return 0
	}
	turns := last.turns
	if t.Pos.Dir != position.None && t.Pos.Dir != last.pos.Dir {
		turns++
	}
	return turns
}

// Cost returns the turn-weighted cost: Len() + penalty × Turns().
// It saturates at math.MaxInt instead of overflowing.
func (t *Tracker) Cost(penalty int) int {
	n, turns := t.Len(), t.Turns()
	if turns > 0 && penalty > (math.MaxInt-n)/turns {
		return math.MaxInt
	}
	return n + penalty*turns
}

// TurnCost returns Cost with DefaultTurnPenalty.
func (t *Tracker) TurnCost() int {
	return t.Cost(DefaultTurnPenalty)
}

// History returns the recorded positions, oldest first.
func (t *Tracker) History() []position.Position {
	return t.Trail.positions()
}

// Path returns the history followed by the current position: the full
// start-to-here sequence. For LengthOnly trackers it is the current position.
func (t *Tracker) Path() []position.Position {
	return append(t.Trail.positions(), t.Pos)
}

// Extent returns the smallest and largest coordinates along Path.
func (t *Tracker) Extent() (minX, minY, maxX, maxY int) {
	minX, minY, maxX, maxY = t.Pos.X, t.Pos.Y, t.Pos.X, t.Pos.Y
	for s := t.Trail.last; s != nil; s = s.prev {
		minX, maxX = min(minX, s.pos.X), max(maxX, s.pos.X)
		minY, maxY = min(minY, s.pos.Y), max(maxY, s.pos.Y)
	}
	return minX, minY, maxX, maxY
}

// String implements fmt.Stringer.
func (t Tracker) String() string {
	return fmt.Sprintf("%v len=%d turns=%d", t.Pos, t.Len(), t.Turns())
}
