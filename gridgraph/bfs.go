// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Unreached marks cells BFS never reached in Result.Dist.
const Unreached = -1

// Result holds the outcome of a BFS over a grid:
//   - Order: cells in visit sequence, starting with the start cell.
//   - Dist: distance grid, Unreached for cells never enqueued.
type Result struct {
	Order []grid.Point
	Dist  *grid.Grid[int]

	start  grid.Point
	parent []int // flat index of the BFS-tree parent, -1 for the root
}

// DistanceTo returns the step count to p, or false when p was not reached
// or lies outside the grid.
func (r *Result) DistanceTo(p grid.Point) (int, bool) {
	d, err := r.Dist.Get(p)
	if err != nil || d == Unreached {
		return 0, false
	}

	return d, true
}

// PathTo reconstructs the path from the start cell to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if _, ok := r.DistanceTo(dest); !ok {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, r.start, dest)
	}
	cols := r.Dist.Cols()
	path := []grid.Point{}
	for at := dest.X*cols + dest.Y; at >= 0; at = r.parent[at] {
		p, _ := r.Dist.IndexToPoint(at)
		path = append(path, p)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	g        *grid.Grid[T]
	passable func(T) bool
	opts     Options
	ctx      context.Context
	queue    []grid.Point
	stop     int // flat index that ends the walk early, -1 for none
	res      *Result
}

// BFS runs breadth-first search from start over cells accepted by passable
// (nil accepts every cell). The start cell is always visited, whatever its
// value. Returns ErrGridNil, ErrOutOfBounds, ErrOptionViolation, the
// context's error on cancellation, or a wrapped OnVisit error.
func BFS[T any](g *grid.Grid[T], start grid.Point, passable func(T) bool, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, passable, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// Distances returns the BFS distance grid from start; unreachable cells hold
// Unreached.
func Distances[T any](g *grid.Grid[T], start grid.Point, passable func(T) bool, opts ...Option) (*grid.Grid[int], error) {
	res, err := BFS(g, start, passable, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// ShortestPath returns a minimum-step path from → to, both included,
// stopping the search as soon as to is dequeued. Returns ErrNoPath when to
// is unreachable under passable and the options.
func ShortestPath[T any](g *grid.Grid[T], from, to grid.Point, passable func(T) bool, opts ...Option) ([]grid.Point, error) {
	w, err := newWalker(g, from, passable, opts)
	if err != nil {
		return nil, err
	}
	if !g.Contains(to) {
		return nil, fmt.Errorf("ShortestPath(to=%v): %w", to, ErrOutOfBounds)
	}
	w.stop = to.X*g.Cols() + to.Y
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res.PathTo(to)
}

func newWalker[T any](g *grid.Grid[T], start grid.Point, passable func(T) bool, opts []Option) (*walker[T], error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("BFS(start=%v): %w", start, ErrOutOfBounds)
	}
	if passable == nil {
		passable = func(T) bool { return true }
	}
	dist, err := grid.New(g.Rows(), g.Cols(), Unreached)
	if err != nil {
		return nil, err
	}
	parent := make([]int, g.Size())
	for i := range parent {
		parent[i] = -1
	}

	w := &walker[T]{
		g:        g,
		passable: passable,
		opts:     o,
		ctx:      o.Ctx,
		queue:    make([]grid.Point, 0, g.Size()),
		stop:     -1,
		res: &Result{
			Order:  make([]grid.Point, 0, g.Size()),
			Dist:   dist,
			start:  start,
			parent: parent,
		},
	}
	w.enqueue(start, 0, -1)

	return w, nil
}

// enqueue records p's distance and parent and appends it to the queue.
func (w *walker[T]) enqueue(p grid.Point, d, parent int) {
	w.res.Dist.MustSet(p, d)
	w.res.parent[p.X*w.g.Cols()+p.Y] = parent
	w.queue = append(w.queue, p)
}

// loop processes the queue until empty, stop cell, error, or cancellation.
func (w *walker[T]) loop() error {
	cols := w.g.Cols()
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		p := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Dist.MustGet(p)
		w.res.Order = append(w.res.Order, p)
		if err := w.opts.OnVisit(p, d); err != nil {
			return fmt.Errorf("gridgraph: OnVisit error at %v: %w", p, err)
		}
		idx := p.X*cols + p.Y
		if idx == w.stop {
			return nil
		}
		if w.opts.MaxDistance > 0 && d+1 > w.opts.MaxDistance {
			continue
		}
		for _, q := range w.g.AdjacentPoints(p, w.opts.Conn) {
			if w.res.Dist.MustGet(q) != Unreached || !w.passable(w.g.MustGet(q)) {
				continue
			}
			w.enqueue(q, d+1, idx)
		}
	}

	return nil
}
