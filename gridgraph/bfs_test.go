package gridgraph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(r rune) bool { return r != '#' }

func maze(t *testing.T) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.FromRunes("S.#\n.##\n...")
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := maze(t)

	_, err := gridgraph.BFS[rune](nil, point.New(0, 0), open)
	require.ErrorIs(t, err, gridgraph.ErrGridNil)

	_, err = gridgraph.BFS(g, point.New(3, 0), open)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = gridgraph.BFS(g, point.New(0, 0), open, gridgraph.WithMaxDistance(-1))
	require.ErrorIs(t, err, gridgraph.ErrOptionViolation)

	_, err = gridgraph.BFS(g, point.New(0, 0), open, gridgraph.WithConnectivity(grid.Connectivity(7)))
	require.ErrorIs(t, err, gridgraph.ErrOptionViolation)

	_, err = gridgraph.ShortestPath(g, point.New(0, 0), point.New(0, 9), open)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestBFS_Distances checks distances, unreachable cells and visit order.
func TestBFS_Distances(t *testing.T) {
	res, err := gridgraph.BFS(maze(t), point.New(0, 0), open)
	require.NoError(t, err)
	require.Equal(t, point.New(0, 0), res.Order[0])
	require.Len(t, res.Order, 6)

	want := []int{
		0, 1, gridgraph.Unreached,
		1, gridgraph.Unreached, gridgraph.Unreached,
		2, 3, 4,
	}
	var got []int
	for _, d := range res.Dist.All() {
		got = append(got, d)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("distance grid (-want +got):\n%s", diff)
	}

	d, ok := res.DistanceTo(point.New(2, 2))
	require.True(t, ok)
	require.Equal(t, 4, d)
	_, ok = res.DistanceTo(point.New(1, 1))
	require.False(t, ok)
	_, ok = res.DistanceTo(point.New(-1, 0))
	require.False(t, ok)
}

// TestShortestPath covers Conn4, Conn8 and unreachable targets.
func TestShortestPath(t *testing.T) {
	g := maze(t)

	path, err := gridgraph.ShortestPath(g, point.New(0, 0), point.New(2, 2), open)
	require.NoError(t, err)
	want := []grid.Point{point.New(0, 0), point.New(1, 0), point.New(2, 0), point.New(2, 1), point.New(2, 2)}
	require.Equal(t, want, path)

	path, err = gridgraph.ShortestPath(g, point.New(0, 0), point.New(2, 2), open, gridgraph.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	require.Len(t, path, 4)

	_, err = gridgraph.ShortestPath(g, point.New(0, 0), point.New(0, 2), open)
	require.ErrorIs(t, err, gridgraph.ErrNoPath)

	path, err = gridgraph.ShortestPath(g, point.New(1, 0), point.New(1, 0), open)
	require.NoError(t, err)
	require.Equal(t, []grid.Point{point.New(1, 0)}, path)
}

// TestBFS_MaxDistance stops expansion at the limit.
func TestBFS_MaxDistance(t *testing.T) {
	dist, err := gridgraph.Distances(maze(t), point.New(0, 0), open, gridgraph.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2, dist.MustGet(point.New(2, 0)))
	assert.Equal(t, gridgraph.Unreached, dist.MustGet(point.New(2, 1)))
}

// TestBFS_NilPassable treats every cell as open and always visits the start.
func TestBFS_NilPassable(t *testing.T) {
	g := maze(t)
	res, err := gridgraph.BFS(g, point.New(1, 1), nil)
	require.NoError(t, err)
	require.Len(t, res.Order, g.Size())

	res, err = gridgraph.BFS(g, point.New(1, 1), open)
	require.NoError(t, err)
	require.Equal(t, []grid.Point{point.New(1, 1), point.New(0, 1), point.New(2, 1), point.New(1, 0)}, res.Order[:4])
}

// TestBFS_HooksAndCancel covers OnVisit aborts and context cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	g := maze(t)
	stop := errors.New("stop")
	visits := 0
	_, err := gridgraph.BFS(g, point.New(0, 0), open, gridgraph.WithOnVisit(func(p grid.Point, d int) error {
		visits++
		if d == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, 4, visits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gridgraph.BFS(g, point.New(0, 0), open, gridgraph.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
