package position

import (
	"cmp"
	"fmt"
)

// Position is a cell with a facing and bookkeeping counters.
//
// Step counts moves made in the current facing and resets on rotation.
// Gen is incremented on every search branch derived from this position.
// Lifetime is the history length the position was created with.
type Position struct {
	X, Y     int
	Dir      Direction
	Step     int
	Gen      int
	Lifetime int
}

// New returns a Position at (x, y) facing d.
func New(x, y int, d Direction) Position {
	return Position{X: x, Y: y, Dir: d}
}

// At returns a Position at (x, y) with no facing.
func At(x, y int) Position {
	return Position{X: x, Y: y}
}

// Key returns the location-only identity of p.
func (p Position) Key() Key {
	return Key{X: p.X, Y: p.Y}
}

// SameCell reports whether p and o share (x, y), ignoring facing and counters.
func (p Position) SameCell(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Alive reports whether p still has a facing.
func (p Position) Alive() bool {
	return p.Dir != None
}

// Kill terminates p by clearing its facing.
func (p *Position) Kill() {
	p.Dir = None
}

// Peek returns the position one step ahead of p within b.
func (p Position) Peek(b Bounds) Position {
	return p.PeekIn(p.Dir, b)
}

// PeekIn returns the position one step from p towards d, facing d.
// The result is dead (Dir == None) if d is not cardinal or the step leaves b.
func (p Position) PeekIn(d Direction, b Bounds) Position {
	if !d.IsCardinal() {
		return Position{X: p.X, Y: p.Y}
	}
	dx, dy := d.Delta()
	nx, ny := p.X+dx, p.Y+dy
	if !stepInside(p.X, dx, b.MinX, b.MaxX) || !stepInside(p.Y, dy, b.MinY, b.MaxY) {
		return Position{X: p.X, Y: p.Y}
	}
	return Position{X: nx, Y: ny, Dir: d}
}

// PeekRight returns the position one step 90° clockwise of p's facing.
func (p Position) PeekRight(b Bounds) Position {
	return p.PeekIn(p.Dir.Right(), b)
}

// PeekLeft returns the position one step 90° counter-clockwise of p's facing.
func (p Position) PeekLeft(b Bounds) Position {
	return p.PeekIn(p.Dir.Left(), b)
}

// RotateRight turns p 90° clockwise in place.
func (p *Position) RotateRight() {
	p.Dir = p.Dir.Right()
	p.Step = 0
}

// RotateLeft turns p 90° counter-clockwise in place.
func (p *Position) RotateLeft() {
	p.Dir = p.Dir.Left()
	p.Step = 0
}

// Move advances p one cell along its facing. See MoveIn.
func (p *Position) Move(b Bounds) bool {
	return p.MoveIn(p.Dir, b)
}

// MoveIn advances p one cell towards d and makes d its facing.
// If the step would leave b, p is killed and MoveIn returns false.
// A None direction leaves p unchanged and reports whether p is alive.
func (p *Position) MoveIn(d Direction, b Bounds) bool {
	if d == None {
		return p.Alive()
	}
	if !d.IsCardinal() {
		p.Kill()
		return false
	}
	dx, dy := d.Delta()
	if !stepInside(p.X, dx, b.MinX, b.MaxX) || !stepInside(p.Y, dy, b.MinY, b.MaxY) {
		p.Kill()
		return false
	}
	if p.Dir != d {
		p.Dir = d
		p.Step = 0
	}
	p.X += dx
	p.Y += dy
	p.Step++
	return true
}

// stepInside reports whether v+delta stays in [lo, hi) without overflowing.
func stepInside(v, delta, lo, hi int) bool {
	switch {
	case delta > 0:
		return v < hi-1
	case delta < 0:
		return v > lo
	}
	return true
}

// Toward returns the axis direction of the step from prev to p.
// Diagonal or zero deltas fall back to North.
func Toward(prev, p Position) Direction {
	dx, dy := p.X-prev.X, p.Y-prev.Y
	switch {
	case dx > 0 && dy == 0:
		return East
	case dx < 0 && dy == 0:
		return West
	case dx == 0 && dy > 0:
		return South
	case dx == 0 && dy < 0:
		return North
	}
	return North
}

// Compare orders positions by X, then Y, then Gen.
func Compare(a, b Position) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Gen, b.Gen)
}

// String implements fmt.Stringer.
func (p Position) String() string {
	switch {
	case p.Gen > 0:
		return fmt.Sprintf("[%d, %d - %s : %d]", p.X, p.Y, p.Dir, p.Gen)
	case p.Dir != None:
		return fmt.Sprintf("[%d, %d - %s]", p.X, p.Y, p.Dir)
	}
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}
