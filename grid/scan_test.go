package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestAdjacentPoints_Order checks direction order at a corner and the centre.
func TestAdjacentPoints_Order(t *testing.T) {
	g := letters(t)
	origin := point.New(0, 0)

	want4 := []grid.Point{point.New(0, 1), point.New(1, 0)} // E, S
	if diff := cmp.Diff(want4, g.AdjacentPoints(origin, grid.Conn4)); diff != "" {
		t.Errorf("Conn4 corner (-want +got):\n%s", diff)
	}
	want8 := []grid.Point{point.New(0, 1), point.New(1, 1), point.New(1, 0)} // E, SE, S
	if diff := cmp.Diff(want8, g.AdjacentPoints(origin, grid.Conn8)); diff != "" {
		t.Errorf("Conn8 corner (-want +got):\n%s", diff)
	}

	assert.Equal(t, []rune("BFHD"), g.AdjacentValues(point.New(1, 1), grid.Conn4))
	assert.Equal(t, []rune("BCFIHGDA"), g.AdjacentValues(point.New(1, 1), grid.Conn8))
}

// TestAdjacentPoints_NeverOutside sweeps every cell plus a one-cell ring
// around the grid for both connectivities.
func TestAdjacentPoints_NeverOutside(t *testing.T) {
	g, err := grid.New(4, 5, 0)
	require.NoError(t, err)
	for x := -1; x <= g.Rows(); x++ {
		for y := -1; y <= g.Cols(); y++ {
			for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
				for _, q := range g.AdjacentPoints(point.New(x, y), conn) {
					require.True(t, g.Contains(q), "%v neighbour %v of (%d, %d) escaped", conn, q, x, y)
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Search
//----------------------------------------------------------------------------//

// TestSearch is the [A,B,A,C] scenario.
func TestSearch(t *testing.T) {
	g, err := grid.FromRunes("AB\nAC")
	require.NoError(t, err)

	p, ok := grid.Search(g, 'A')
	require.True(t, ok)
	require.Equal(t, point.New(0, 0), p)

	all := grid.SearchAll(g, 'A')
	require.Equal(t, []grid.Point{point.New(0, 0), point.New(1, 0)}, all)

	_, ok = grid.Search(g, 'Z')
	require.False(t, ok)
	require.Empty(t, grid.SearchAll(g, 'Z'))
	require.Equal(t, 2, grid.Count(g, 'A'))
}

// TestFind uses predicates over a numeric grid.
func TestFind(t *testing.T) {
	g, err := grid.From2D([][]int{{1, 8, 3}, {9, 2, 7}})
	require.NoError(t, err)
	big := func(v int) bool { return v > 5 }

	p, ok := g.Find(big)
	require.True(t, ok)
	require.Equal(t, point.New(0, 1), p)
	require.Equal(t, []grid.Point{point.New(0, 1), point.New(1, 0), point.New(1, 2)}, g.FindAll(big))

	_, ok = g.Find(func(v int) bool { return v < 0 })
	require.False(t, ok)
}

// TestAll_EarlyStop ensures iterators honour a break.
func TestAll_EarlyStop(t *testing.T) {
	g := letters(t)
	n := 0
	for range g.All() {
		n++
		if n == 4 {
			break
		}
	}
	require.Equal(t, 4, n)
}

//----------------------------------------------------------------------------//
// Directional traversal
//----------------------------------------------------------------------------//

// TestStepInDirection resolves moves of several integer types.
func TestStepInDirection(t *testing.T) {
	g := letters(t)

	p, ok := grid.StepInDirection(g, direction.NewMove(point.New(1, 1), direction.East))
	require.True(t, ok)
	require.Equal(t, point.New(1, 2), p)

	_, ok = grid.StepInDirection(g, direction.NewMove(point.New(1, 1), direction.East).WithSteps(2))
	require.False(t, ok, "leaves the grid")

	_, ok = grid.StepInDirection(g, direction.NewMove(point.New[uint8](0, 0), direction.North))
	require.False(t, ok, "underflows uint8")

	p, ok = grid.StepInDirection(g, direction.NewMove(point.New[uint8](0, 0), direction.SouthEast).WithSteps(2))
	require.True(t, ok)
	require.Equal(t, point.New(2, 2), p)

	p, ok = grid.StepInDirection(g, direction.NewMove(point.New(2, 1), direction.North).WithSteps(0))
	require.True(t, ok, "zero steps stays put")
	require.Equal(t, point.New(2, 1), p)
}

// TestValueInDirection reads the destination cell.
func TestValueInDirection(t *testing.T) {
	g := letters(t)

	v, ok := grid.ValueInDirection(g, direction.NewMove(point.New(1, 1), direction.SE))
	require.True(t, ok)
	require.Equal(t, 'I', v)

	v, ok = grid.ValueInDirection(g, direction.NewMove(point.New[int16](2, 0), direction.NorthEast).WithSteps(2))
	require.True(t, ok)
	require.Equal(t, 'C', v)

	_, ok = grid.ValueInDirection(g, direction.NewMove(point.New(0, 0), direction.West))
	require.False(t, ok)
}

// TestRay walks to the border and stops.
func TestRay(t *testing.T) {
	g := letters(t)
	collect := func(from grid.Point, o direction.Offset) string {
		var out []rune
		for _, v := range g.Ray(from, o) {
			out = append(out, v)
		}
		return string(out)
	}

	assert.Equal(t, "BC", collect(point.New(0, 0), direction.East))
	assert.Equal(t, "EI", collect(point.New(0, 0), direction.SE))
	assert.Equal(t, "D", collect(point.New(1, 1), direction.West))
	assert.Equal(t, "", collect(point.New(0, 0), direction.North))
	assert.Equal(t, "ADG", collect(point.New(-1, 0), direction.South), "starts just outside")
	assert.Equal(t, "", collect(point.New(1, 1), direction.Cardinal(9)), "zero offset")
}
