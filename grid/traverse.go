// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/point"
)

// StepInDirection resolves m against g: it computes m.Target() in P's own
// arithmetic and converts the result to a grid point. It reports false when
// the target under- or overflows P, is not representable as int, or lies
// outside the grid.
func StepInDirection[T any, P point.Integer, D direction.Direction[D]](g *Grid[T], m direction.Move[P, D]) (Point, bool) {
	q, ok := m.Target()
	if !ok {
		return Point{}, false
	}
	p, err := point.InBoundsAs(q, g.Bounds())
	if err != nil {
		return Point{}, false
	}

	return p, true
}

// ValueInDirection is StepInDirection followed by a read of the target cell.
func ValueInDirection[T any, P point.Integer, D direction.Direction[D]](g *Grid[T], m direction.Move[P, D]) (T, bool) {
	p, ok := StepInDirection(g, m)
	if !ok {
		var zero T
		return zero, false
	}

	return g.data[p.X*g.cols+p.Y], true
}

// Ray yields the cells strictly after from in direction o and stops at the
// first step outside the grid. from itself is never yielded and need not be in
// bounds. A zero offset yields nothing.
func (g *Grid[T]) Ray(from Point, o direction.Offset) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		if dr, dc := o.Delta(); dr == 0 && dc == 0 {
			return
		}
		bounds := g.Bounds()
		p := from
		for {
			q, ok := direction.Step(p, o)
			if !ok || !q.CheckBounds(bounds) {
				return
			}
			if !yield(q, g.data[q.X*g.cols+q.Y]) {
				return
			}
			p = q
		}
	}
}
