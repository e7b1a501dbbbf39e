// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"github.com/katalvlaran/gridkit/point"
)

// All yields every (point, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(point.New(i/g.cols, i%g.cols), v) {
				return
			}
		}
	}
}

// Points yields every coordinate of g in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(point.New(r, c)) {
					return
				}
			}
		}
	}
}

// Find returns the first point, in row-major order, whose value satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for i, v := range g.data {
		if pred(v) {
			return point.New(i/g.cols, i%g.cols), true
		}
	}

	return Point{}, false
}

// FindAll returns every point whose value satisfies pred, in row-major order.
// The result is empty (not nil) when nothing matches.
func (g *Grid[T]) FindAll(pred func(T) bool) []Point {
	out := []Point{}
	for i, v := range g.data {
		if pred(v) {
			out = append(out, point.New(i/g.cols, i%g.cols))
		}
	}

	return out
}

// Search returns the first point holding v in row-major order.
func Search[T comparable](g *Grid[T], v T) (Point, bool) {
	return g.Find(func(x T) bool { return x == v })
}

// SearchAll returns every point holding v in row-major order.
func SearchAll[T comparable](g *Grid[T], v T) []Point {
	return g.FindAll(func(x T) bool { return x == v })
}

// Count returns how many cells hold v.
func Count[T comparable](g *Grid[T], v T) int {
	n := 0
	for _, x := range g.data {
		if x == v {
			n++
		}
	}

	return n
}
