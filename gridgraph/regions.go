// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
)

// noLabel marks cells that belong to no region in a label grid.
const noLabel = -1

// Region is a maximal connected group of cells sharing one value.
type Region[T comparable] struct {
	// Value is the value every cell of the region holds.
	Value T
	// Points lists the cells in discovery order; Points[0] is the region's
	// first cell in row-major order.
	Points []grid.Point

	id     int
	labels *grid.Grid[int]
}

// Area returns the number of cells in r.
func (r Region[T]) Area() int { return len(r.Points) }

// has reports whether p belongs to r; points off the grid never do.
func (r Region[T]) has(p grid.Point) bool {
	id, err := r.labels.Get(p)

	return err == nil && id == r.id
}

// Perimeter counts cell edges of r that face a cell outside r or the grid
// border.
func (r Region[T]) Perimeter() int {
	n := 0
	for _, p := range r.Points {
		for _, d := range direction.AllCardinals() {
			q, _ := direction.NextPoint(d, p)
			if !r.has(q) {
				n++
			}
		}
	}

	return n
}

// Sides counts the straight fence runs around r, holes included. It counts
// corners, which equal sides on any closed rectilinear outline: for every
// cell and every clockwise pair of cardinals (d, d.Next()), the cell is an
// outer corner when both neighbours are outside r, and an inner corner when
// both are inside but the diagonal between them is not.
func (r Region[T]) Sides() int {
	n := 0
	for _, p := range r.Points {
		for _, d := range direction.AllCardinals() {
			a, _ := direction.NextPoint(d, p)
			b, _ := direction.NextPoint(d.Next(), p)
			diag, _ := direction.NextPoint(d.Octal().Next(), p)
			inA, inB := r.has(a), r.has(b)
			if (!inA && !inB) || (inA && inB && !r.has(diag)) {
				n++
			}
		}
	}

	return n
}

// Regions partitions g into maximal connected groups of equal values, in
// row-major order of each region's first cell. Only Conn and Ctx of the
// options apply.
func Regions[T comparable](g *grid.Grid[T], opts ...Option) ([]Region[T], error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	labels, groups, err := label(o, g, nil, func(a, b T) bool { return a == b })
	if err != nil {
		return nil, err
	}
	out := make([]Region[T], len(groups))
	for i, pts := range groups {
		out[i] = Region[T]{Value: g.MustGet(pts[0]), Points: pts, id: i, labels: labels}
	}

	return out, nil
}

// Components returns the connected groups of cells accepted by isLand (nil
// accepts every cell), in row-major order of each group's first cell. Only Conn and Ctx of the
// options apply.
func Components[T any](g *grid.Grid[T], isLand func(T) bool, opts ...Option) ([][]grid.Point, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	_, groups, err := label(o, g, isLand, func(T, T) bool { return true })
	if err != nil {
		return nil, err
	}

	return groups, nil
}

// label flood-fills g. Cells rejected by include (nil includes all) are left
// unlabelled; two adjacent included cells share a group when join accepts
// their values. Returns the label grid and the groups' cells.
func label[T any](o Options, g *grid.Grid[T], include func(T) bool, join func(a, b T) bool) (*grid.Grid[int], [][]grid.Point, error) {
	labels, err := grid.New(g.Rows(), g.Cols(), noLabel)
	if err != nil {
		return nil, nil, err
	}
	var groups [][]grid.Point
	for seed, v := range g.All() {
		if labels.MustGet(seed) != noLabel || (include != nil && !include(v)) {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, nil, o.Ctx.Err()
		default:
		}

		id := len(groups)
		labels.MustSet(seed, id)
		queue := []grid.Point{seed}
		for qi := 0; qi < len(queue); qi++ {
			p := queue[qi]
			pv := g.MustGet(p)
			for _, q := range g.AdjacentPoints(p, o.Conn) {
				if labels.MustGet(q) != noLabel {
					continue
				}
				qv := g.MustGet(q)
				if (include != nil && !include(qv)) || !join(pv, qv) {
					continue
				}
				labels.MustSet(q, id)
				queue = append(queue, q)
			}
		}
		groups = append(groups, queue)
	}

	return labels, groups, nil
}
