// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Bridge finds a minimum-conversion path of water cells (rejected by isLand)
// joining component src to component dst, as numbered by Components with the
// same options. Each water cell on the path costs 1; land cells cost 0.
// Returns the path (starting on a src cell, ending on a dst cell) and the
// number of water cells it crosses.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every src cell:
//     moving into land costs 0 (pushed to the front of the deque),
//     moving into water costs 1 (pushed to the back).
//  3. Stop when any dst cell is dequeued.
//  4. Reconstruct the path via predecessor links.
//
// Complexity: O(n·d) time, O(n) memory.
func Bridge[T any](g *grid.Grid[T], isLand func(T) bool, src, dst int, opts ...Option) (path []grid.Point, cost int, err error) {
	if isLand == nil {
		return nil, 0, fmt.Errorf("%w: Bridge requires an isLand predicate", ErrOptionViolation)
	}
	if g == nil {
		return nil, 0, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	_, comps, err := label(o, g, isLand, func(T, T) bool { return true })
	if err != nil {
		return nil, 0, err
	}
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, fmt.Errorf("Bridge(src=%d, dst=%d, components=%d): %w", src, dst, len(comps), ErrComponentIndex)
	}
	n, cols := g.Size(), g.Cols()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	isDst := make([]bool, n)
	for _, p := range comps[dst] {
		isDst[p.X*cols+p.Y] = true
	}

	dq := list.New()
	for _, p := range comps[src] {
		i := p.X*cols + p.Y
		dist[i] = 0
		dq.PushFront(p)
	}

	target := -1
	for dq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, 0, o.Ctx.Err()
		default:
		}

		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(grid.Point)
		ui := u.X*cols + u.Y
		if isDst[ui] {
			target = ui
			break
		}
		for _, v := range g.AdjacentPoints(u, o.Conn) {
			vi := v.X*cols + v.Y
			step := 0
			if !isLand(g.MustGet(v)) {
				step = 1
			}
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, fmt.Errorf("Bridge(src=%d, dst=%d): %w", src, dst, ErrNoPath)
	}
	for at := target; at >= 0; at = prev[at] {
		p, _ := g.IndexToPoint(at)
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
