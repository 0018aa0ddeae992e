package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/position"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew(t *testing.T) {
	g := grid.New(4, 3, '.')
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Count('.'))
	assert.Equal(t, []string{"....", "....", "...."}, g.Lines())
	assert.Equal(t, position.Rect(4, 3), g.Bounds())

	empty := grid.New(-2, 5, '#')
	assert.Zero(t, empty.Width())
	assert.Empty(t, empty.FindAll('#'))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"EmptyFirstRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"ab", "c"}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.lines)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.err), "Parse(%q) error = %v; want %v", tc.lines, err, tc.err)
		})
	}
}

func TestFromLines_TrustsInput(t *testing.T) {
	g := grid.FromLines([]string{"abc", "d", "efgh"})
	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())

	v, ok := g.Get(0, 1)
	assert.True(t, ok)
	assert.Equal(t, byte('d'), v)
	v, _ = g.Get(2, 1)
	assert.Equal(t, byte(0), v, "short rows are zero-padded")
	v, _ = g.Get(2, 2)
	assert.Equal(t, byte('g'), v, "long rows are truncated")

	none := grid.FromLines(nil)
	assert.Zero(t, none.Width())
	assert.Zero(t, none.Height())
}

func TestRead(t *testing.T) {
	g, err := grid.Read(strings.NewReader("#S.\r\n..E\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"#S.", "..E"}, g.Lines())
	assert.Equal(t, "#S.\n..E", g.String())

	_, err = grid.Read(strings.NewReader("ab\nabc\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestLoad(t *testing.T) {
	_, err := grid.Load(t.TempDir() + "/missing.txt")
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

func TestBoundsChecks(t *testing.T) {
	g := grid.FromLines([]string{
		"ab",
		"cd",
	})
	outside := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, xy := range outside {
		x, y := xy[0], xy[1]
		_, ok := g.Get(x, y)
		assert.False(t, ok, "Get(%d,%d)", x, y)
		assert.False(t, g.IsValue(x, y, 'a'), "IsValue(%d,%d)", x, y)
		assert.False(t, g.IsPositionValue(position.At(x, y), 0), "IsPositionValue(%d,%d)", x, y)
		assert.False(t, g.Set(x, y, 'z'), "Set(%d,%d)", x, y)
		assert.False(t, g.InBounds(x, y))
	}
	assert.Equal(t, []string{"ab", "cd"}, g.Lines(), "rejected writes leave the grid unchanged")

	assert.True(t, g.IsValue(1, 1, 'd'))
	v, ok := g.At(position.New(1, 0, position.East))
	assert.True(t, ok)
	assert.Equal(t, byte('b'), v)

	assert.True(t, g.SetPosition(position.At(0, 1), 'x'))
	assert.Equal(t, []string{"ab", "xd"}, g.Lines())
}

func TestSetNoOverwrite(t *testing.T) {
	ref := grid.FromLines([]string{
		".#.",
		"...",
	})
	overlay := ref.Clone()

	assert.True(t, overlay.SetNoOverwrite(0, 0, 'O', ref, '.'))
	assert.False(t, overlay.SetNoOverwrite(1, 0, 'O', ref, '.'), "reference wall is kept")
	assert.False(t, overlay.SetNoOverwrite(3, 0, 'O', ref, '.'))
	assert.False(t, overlay.SetNoOverwrite(0, 1, 'O', nil, '.'))
	assert.Equal(t, []string{"O#.", "..."}, overlay.Lines())
	assert.Equal(t, []string{".#.", "..."}, ref.Lines(), "reference is not modified")
}

func TestFindAndCount(t *testing.T) {
	g := grid.FromLines([]string{
		".x..",
		"x..x",
		"..x.",
	})
	first, ok := g.FindFirst('x')
	require.True(t, ok)
	assert.Equal(t, position.Key{X: 1, Y: 0}, first.Key())

	all := g.FindAll('x')
	want := []position.Key{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}}
	got := make([]position.Key, len(all))
	for i, p := range all {
		got[i] = p.Key()
	}
	assert.Equal(t, want, got)
	assert.Equal(t, len(all), g.Count('x'))

	_, ok = g.FindFirst('?')
	assert.False(t, ok)
	assert.Empty(t, g.FindAll('?'))
	assert.Zero(t, g.Count('?'))
}

func TestClearAndClone(t *testing.T) {
	g := grid.FromLines([]string{"ab", "cd"})
	c := g.Clone()
	g.Clear('#')
	assert.Equal(t, []string{"##", "##"}, g.Lines())
	assert.Equal(t, []string{"ab", "cd"}, c.Lines())
}

func TestCoordinate(t *testing.T) {
	g := grid.New(5, 4, '.')
	x, y := g.Coordinate(13)
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)

	for _, empty := range []*grid.Grid{grid.FromLines(nil), grid.FromLines([]string{""})} {
		assert.NotPanics(t, func() {
			x, y = empty.Coordinate(0)
		})
		assert.Equal(t, 0, x)
		assert.Equal(t, 0, y)
	}
}

func TestDrawPath(t *testing.T) {
	g := grid.New(3, 2, '.')
	path := []position.Position{
		position.New(0, 0, position.East),
		position.New(1, 0, position.South),
		position.New(1, 1, position.East),
		position.At(2, 1),
		position.At(9, 9),
	}
	g.DrawPathDirection(path)
	assert.Equal(t, []string{">v.", ".>+"}, g.Lines())

	g.DrawPath(path[:2], 'O')
	assert.Equal(t, []string{"OO.", ".>+"}, g.Lines())
}
