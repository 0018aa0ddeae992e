package position_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/gridkit/position"
)

// genCardinal yields an index into position.Cardinals.
func genCardinal() gopter.Gen {
	return gen.IntRange(0, len(position.Cardinals)-1)
}

func TestPositionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("four right turns return to the start facing", prop.ForAll(
		func(i int) bool {
			d := position.Cardinals[i]
			return d.Right().Right().Right().Right() == d && d.Right().Left() == d
		},
		genCardinal(),
	))

	properties.Property("moves never leave the bounds", prop.ForAll(
		func(x, y int, dirs []int) bool {
			b := position.Rect(8, 6)
			p := position.New(x, y, position.North)
			for _, i := range dirs {
				d := position.Cardinals[i]
				if !p.MoveIn(d, b) {
					p = position.New(p.X, p.Y, d)
				}
				if !b.Contains(p.X, p.Y) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 7),
		gen.IntRange(0, 5),
		gen.SliceOf(genCardinal()),
	))

	properties.Property("a step and its reversal return to the same cell", prop.ForAll(
		func(x, y, i int) bool {
			d := position.Cardinals[i]
			b := position.Unbounded()
			p := position.New(x, y, d)
			start := p.Key()
			if !p.Move(b) || !p.MoveIn(d.Opposite(), b) {
				return false
			}
			return p.Key() == start
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
		genCardinal(),
	))

	properties.Property("peek agrees with move", prop.ForAll(
		func(x, y, i int) bool {
			d := position.Cardinals[i]
			b := position.Rect(10, 10)
			p := position.New(x, y, d)
			peeked := p.Peek(b)
			moved := p.Move(b)
			if moved != peeked.Alive() {
				return false
			}
			return !moved || peeked.Key() == p.Key()
		},
		gen.IntRange(0, 9),
		gen.IntRange(0, 9),
		genCardinal(),
	))

	properties.TestingRun(t)
}
