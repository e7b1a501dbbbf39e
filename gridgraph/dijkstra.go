// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/grid"
)

// CheapestPath returns a minimum-cost path from → to, both included, and its
// cost. Entering a cell costs weight(value); weight reports false for walls.
// The start cell is free and always entered. Options.MaxDistance, if > 0,
// bounds the total cost explored.
//
// Returns ErrGridNil, ErrOutOfBounds, ErrOptionViolation, ErrNegativeCost
// (first negative weight met during relaxation), ErrNoPath (also when
// every route's total cost would overflow int), or the context's
// error on cancellation.
//
// Complexity: O(n·d·log n) time, O(n·d) heap entries worst case (lazy
// decrease-key: stale entries are skipped when popped).
func CheapestPath[T any](g *grid.Grid[T], from, to grid.Point, weight func(T) (int, bool), opts ...Option) ([]grid.Point, int, error) {
	if g == nil {
		return nil, 0, ErrGridNil
	}
	if weight == nil {
		return nil, 0, fmt.Errorf("%w: CheapestPath requires a weight function", ErrOptionViolation)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	if !g.Contains(from) || !g.Contains(to) {
		return nil, 0, fmt.Errorf("CheapestPath(%v → %v): %w", from, to, ErrOutOfBounds)
	}

	n := g.Size()
	r := &runner[T]{
		g:       g,
		weight:  weight,
		opts:    o,
		dist:    make([]int, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(cellPQ, 0, n),
	}
	r.init(from)
	target := g.Cols()*to.X + to.Y
	if err = r.process(target); err != nil {
		return nil, 0, err
	}
	if !r.visited[target] {
		return nil, 0, fmt.Errorf("CheapestPath(%v → %v): %w", from, to, ErrNoPath)
	}

	var path []grid.Point
	for at := target; at >= 0; at = r.prev[at] {
		p, _ := g.IndexToPoint(at)
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.dist[target], nil
}

// runner holds the mutable state for one CheapestPath execution.
type runner[T any] struct {
	g       *grid.Grid[T]
	weight  func(T) (int, bool)
	opts    Options
	dist    []int  // flat index → best known cost
	prev    []int  // flat index → predecessor, -1 for none
	visited []bool // cost finalized
	pq      cellPQ
}

func (r *runner[T]) init(from grid.Point) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
		r.prev[i] = -1
	}
	src := from.X*r.g.Cols() + from.Y
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{idx: src, dist: 0})
}

// process pops cells in cost order until the target is finalized or the heap
// drains. Costs above MaxDistance never enter the heap.
func (r *runner[T]) process(target int) error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*cellItem)
		if r.visited[item.idx] {
			continue
		}
		r.visited[item.idx] = true
		if item.idx == target {
			return nil
		}
		if err := r.relax(item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the cost of every neighbour of u.
func (r *runner[T]) relax(u int) error {
	p, _ := r.g.IndexToPoint(u)
	cols := r.g.Cols()
	for _, q := range r.g.AdjacentPoints(p, r.opts.Conn) {
		v := q.X*cols + q.Y
		if r.visited[v] {
			continue
		}
		w, ok := r.weight(r.g.MustGet(q))
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: entering %v costs %d", ErrNegativeCost, q, w)
		}
		if w > math.MaxInt-r.dist[u] {
			continue
		}
		nd := r.dist[u] + w
		if r.opts.MaxDistance > 0 && nd > r.opts.MaxDistance {
			continue
		}
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &cellItem{idx: v, dist: nd})
	}

	return nil
}

// cellItem is a heap entry: a flat cell index and its tentative cost.
type cellItem struct {
	idx  int
	dist int
}

// cellPQ is a min-heap of *cellItem ordered by dist.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
