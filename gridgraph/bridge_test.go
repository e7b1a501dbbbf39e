package gridgraph_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/point"
	"github.com/stretchr/testify/require"
)

// TestBridge_BasicLine: [1,0,1] needs one conversion.
func TestBridge_BasicLine(t *testing.T) {
	g, err := grid.From2D([][]int{{1, 0, 1}})
	require.NoError(t, err)

	path, cost, err := gridgraph.Bridge(g, land, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cost)
	require.Equal(t, []grid.Point{point.New(0, 0), point.New(0, 1), point.New(0, 2)}, path)
}

// TestBridge_MediumRow: [1,0,0,0,1] needs three conversions.
func TestBridge_MediumRow(t *testing.T) {
	g, err := grid.From2D([][]int{{1, 0, 0, 0, 1}})
	require.NoError(t, err)

	path, cost, err := gridgraph.Bridge(g, land, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 3, cost)
	require.Len(t, path, 5)
}

// TestBridge_Pairs covers several component pairs and src == dst.
func TestBridge_Pairs(t *testing.T) {
	g, err := grid.From2D([][]int{
		{1, 0, 0, 0, 2},
		{0, 0, 0, 0, 0},
		{0, 0, 5, 0, 0},
	})
	require.NoError(t, err)
	comps, err := gridgraph.Components(g, land)
	require.NoError(t, err)
	require.Len(t, comps, 3)

	_, cost, err := gridgraph.Bridge(g, land, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 3, cost)

	_, cost, err = gridgraph.Bridge(g, land, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, cost)

	_, cost, err = gridgraph.Bridge(g, land, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, cost)

	path, cost, err := gridgraph.Bridge(g, land, 1, 1)
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Equal(t, []grid.Point{point.New(0, 4)}, path)
}

// TestBridge_Errors covers bad component indices and a missing predicate.
func TestBridge_Errors(t *testing.T) {
	g, err := grid.From2D([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)

	_, _, err = gridgraph.Bridge(g, land, 0, 1, gridgraph.WithConnectivity(grid.Conn8))
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex, "one component under Conn8")

	_, _, err = gridgraph.Bridge(g, land, -1, 0)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)

	_, _, err = gridgraph.Bridge(g, nil, 0, 1)
	require.ErrorIs(t, err, gridgraph.ErrOptionViolation)

	_, _, err = gridgraph.Bridge[int](nil, land, 0, 1)
	require.ErrorIs(t, err, gridgraph.ErrGridNil)

	_, _, err = gridgraph.Bridge(g, land, 0, 1, gridgraph.WithMaxDistance(-1))
	require.ErrorIs(t, err, gridgraph.ErrOptionViolation)
}

// TestBridge_Cancel stops the 0-1 BFS once the context is done.
func TestBridge_Cancel(t *testing.T) {
	g, err := grid.From2D([][]int{{1, 0, 0, 1}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = gridgraph.Bridge(g, land, 0, 1, gridgraph.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
