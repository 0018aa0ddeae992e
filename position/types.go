// Package position defines Direction, Bounds and Key, the small value types
// shared by every grid operation.
package position

import (
	"math"
	"strconv"
)

// Direction is a set of axis flags. A cardinal direction has exactly one
// flag set; a diagonal quadrant has two adjacent ones.
type Direction uint8

const (
	// None marks an unknown facing or a terminated position.
	None Direction = 0
	// North is towards y-1.
	North Direction = 1 << 0
	// East is towards x+1.
	East Direction = 1 << 1
	// South is towards y+1.
	South Direction = 1 << 2
	// West is towards x-1.
	West Direction = 1 << 3

	// NorthEast quadrant.
	NorthEast = North | East
	// SouthEast quadrant.
	SouthEast = South | East
	// SouthWest quadrant.
	SouthWest = South | West
	// NorthWest quadrant.
	NorthWest = North | West
)

// Cardinals lists the four axis directions clockwise from North.
var Cardinals = [4]Direction{North, East, South, West}

// Quadrants lists the four diagonal quadrants clockwise from NorthEast.
var Quadrants = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

// Right returns the direction 90° clockwise. Non-cardinal values map to None.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return None
}

// Left returns the direction 90° counter-clockwise. Non-cardinal values map to None.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	return None
}

// Opposite returns the reversed direction. Non-cardinal values map to None.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return None
}

// Has reports whether every flag of f is set in d.
func (d Direction) Has(f Direction) bool {
	return f != None && d&f == f
}

// IsCardinal reports whether d is exactly one of North, East, South, West.
func (d Direction) IsCardinal() bool {
	return d == North || d == East || d == South || d == West
}

// Delta returns the unit step of d. Diagonal quadrants combine both axes;
// None yields (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if d&East != 0 {
		dx++
	}
	if d&West != 0 {
		dx--
	}
	if d&South != 0 {
		dy++
	}
	if d&North != 0 {
		dy--
	}
	return dx, dy
}

// Glyph returns the arrow drawn for d on a grid: ^ > v <, and + otherwise.
func (d Direction) Glyph() byte {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '+'
}

// FromGlyph converts an arrow character into a Direction; anything else is None.
func FromGlyph(ch byte) Direction {
	switch ch {
	case '^':
		return North
	case '>':
		return East
	case 'v':
		return South
	case '<':
		return West
	}
	return None
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Bounds is the rectangle a Position may occupy: MinX/MinY inclusive,
// MaxX/MaxY exclusive.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Unbounded returns the widest Bounds; movement is then limited only by int range.
func Unbounded() Bounds {
	return Bounds{MinX: math.MinInt, MinY: math.MinInt, MaxX: math.MaxInt, MaxY: math.MaxInt}
}

// Rect returns the Bounds of a width×height grid anchored at the origin.
func Rect(width, height int) Bounds {
	return Bounds{MaxX: width, MaxY: height}
}

// Contains reports whether (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

// Key is the location-only identity of a Position, used by visited sets.
type Key struct {
	X, Y int
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return "(" + strconv.Itoa(k.X) + "," + strconv.Itoa(k.Y) + ")"
}
