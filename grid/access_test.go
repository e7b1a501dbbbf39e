package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(t *testing.T) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.FromRunes("ABC\nDEF\nGHI")
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// Index arithmetic
//----------------------------------------------------------------------------//

// TestPointToIndex_RowMajor checks index == x*cols + y and the inverse.
func TestPointToIndex_RowMajor(t *testing.T) {
	g, err := grid.New(3, 4, 0)
	require.NoError(t, err)
	for p := range g.Points() {
		idx, err := g.PointToIndex(p)
		require.NoError(t, err)
		require.Equal(t, p.X*4+p.Y, idx)

		back, err := g.IndexToPoint(idx)
		require.NoError(t, err)
		require.Equal(t, p, back)
	}

	for _, p := range []grid.Point{point.New(-1, 0), point.New(0, -1), point.New(3, 0), point.New(0, 4)} {
		_, err := g.PointToIndex(p)
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "point %v", p)
	}
	_, err = g.IndexToPoint(12)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = g.IndexToPoint(-1)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Get / Ref / Set / Must*
//----------------------------------------------------------------------------//

// TestSetRef writes through Set and Ref and checks failures leave g intact.
func TestSetRef(t *testing.T) {
	g := letters(t)
	require.NoError(t, g.Set(point.New(0, 0), 'a'))
	ref, err := g.Ref(point.New(2, 2))
	require.NoError(t, err)
	*ref = 'i'
	assert.Equal(t, "aBC\nDEF\nGHi", g.String())

	before := g.Clone()
	require.ErrorIs(t, g.Set(point.New(3, 0), 'z'), grid.ErrOutOfBounds)
	_, err = g.Ref(point.New(0, -1))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.True(t, grid.Equal(before, g))
}

// TestMust_Panics documents the aborting accessors.
func TestMust_Panics(t *testing.T) {
	g := letters(t)
	require.Equal(t, 'E', g.MustGet(point.New(1, 1)))
	g.MustSet(point.New(1, 1), 'e')
	require.Equal(t, 'e', g.MustGet(point.New(1, 1)))

	require.Panics(t, func() { g.MustGet(point.New(0, 3)) })
	require.Panics(t, func() { g.MustSet(point.New(-1, 0), 'z') })
}

//----------------------------------------------------------------------------//
// Heterogeneous integer access
//----------------------------------------------------------------------------//

// TestGetAs accepts narrow and wide integer points.
func TestGetAs(t *testing.T) {
	g := letters(t)

	v, err := grid.GetAs(g, point.New[int8](1, 1))
	require.NoError(t, err)
	assert.Equal(t, 'E', v)

	v, err = grid.GetAs(g, point.New[uint64](2, 0))
	require.NoError(t, err)
	assert.Equal(t, 'G', v)

	require.NoError(t, grid.SetAs(g, point.New[uint8](0, 2), 'c'))
	assert.Equal(t, 'c', g.MustGet(point.New(0, 2)))
}

// TestGetAs_Errors separates unrepresentable points from out-of-range ones.
func TestGetAs_Errors(t *testing.T) {
	g := letters(t)

	_, err := grid.GetAs(g, point.New[uint64](math.MaxUint64, 0))
	require.ErrorIs(t, err, grid.ErrConversion)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = grid.GetAs(g, point.New[int8](-1, 0))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.NotErrorIs(t, err, grid.ErrConversion)

	err = grid.SetAs(g, point.New[uint16](3, 3), 'z')
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	idx, err := grid.PointToIndexAs(g, point.New[int16](2, 1))
	require.NoError(t, err)
	require.Equal(t, 7, idx)
}

//----------------------------------------------------------------------------//
// Rows & columns
//----------------------------------------------------------------------------//

// TestRowColumn covers copies, views and absent indices.
func TestRowColumn(t *testing.T) {
	g := letters(t)

	row, ok := g.Row(1)
	require.True(t, ok)
	require.Equal(t, []rune("DEF"), row)
	row[0] = 'x'
	require.Equal(t, 'D', g.MustGet(point.New(1, 0)), "Row returns a copy")

	col, ok := g.Column(2)
	require.True(t, ok)
	require.Equal(t, []rune("CFI"), col)

	view, ok := g.RowView(0)
	require.True(t, ok)
	require.Equal(t, 3, cap(view))
	view[1] = 'b'
	require.Equal(t, 'b', g.MustGet(point.New(0, 1)), "RowView shares storage")
	_ = append(view, 'Z')
	require.Equal(t, 'D', g.MustGet(point.New(1, 0)), "append must not spill into the next row")

	for _, i := range []int{-1, 3, 100} {
		r, ok := g.Row(i)
		assert.False(t, ok)
		assert.Nil(t, r)
		c, ok := g.Column(i)
		assert.False(t, ok)
		assert.Nil(t, c)
		_, ok = g.RowView(i)
		assert.False(t, ok)
	}
}
