package pathfind

import "github.com/katalvlaran/gridkit/position"

// Kind selects the search state a Trail carries.
type Kind uint8

const (
	// LengthOnly keeps a scalar length.
	LengthOnly Kind = iota
	// WithHistory keeps every visited position.
	WithHistory
)

// step is one immutable history node. Nodes are shared by every branch
// split off after them and are never modified once linked.
type step struct {
	pos   position.Position
	prev  *step
	n     int // entries up to and including this one
	turns int // facing changes between consecutive entries
}

// Trail is the search state of a Tracker: a scalar length or a persistent
// history, depending on its Kind. The zero value is an empty LengthOnly trail.
type Trail struct {
	kind   Kind
	length int
	last   *step
}

// NewTrail returns an empty trail of the given kind.
func NewTrail(k Kind) Trail {
	return Trail{kind: k}
}

// Kind returns the trail variant.
func (tr Trail) Kind() Kind { return tr.kind }

// Len returns the number of recorded entries.
func (tr Trail) Len() int {
	if tr.kind == LengthOnly {
		return tr.length
	}
	if tr.last == nil {
		return 0
	}
	return tr.last.n
}

// push returns tr with p appended. The receiver is left as it was, so a
// parent and its children can push independently.
func (tr Trail) push(p position.Position) Trail {
	if tr.kind == LengthOnly {
		tr.length++
		return tr
	}
	s := &step{pos: p, prev: tr.last, n: 1}
	if tr.last != nil {
		s.n = tr.last.n + 1
		s.turns = tr.last.turns
		if tr.last.pos.Dir != p.Dir {
			s.turns++
		}
	}
	tr.last = s
	return tr
}

// contains reports whether a history entry lies on k.
func (tr Trail) contains(k position.Key) bool {
	for s := tr.last; s != nil; s = s.prev {
		if s.pos.X == k.X && s.pos.Y == k.Y {
			return true
		}
	}
	return false
}

// positions returns the history oldest first.
func (tr Trail) positions() []position.Position {
	if tr.last == nil {
		return nil
	}
	out := make([]position.Position, tr.last.n)
	for s := tr.last; s != nil; s = s.prev {
		out[s.n-1] = s.pos
	}
	return out
}
