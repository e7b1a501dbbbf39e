// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/point"
)

// Point is the coordinate type grids are indexed by: X = row, Y = column.
type Point = point.Point[int]

// Grid is a rectangular rows×cols container stored row-major in one flat
// slice. The cell at (r, c) lives at data[r*cols + c].
//
// Invariants:
//   - rows > 0 and cols > 0;
//   - len(data) == rows*cols for the grid's whole lifetime.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Size returns the number of cells, rows*cols.
func (g *Grid[T]) Size() int { return len(g.data) }

// Bounds returns (rows, cols) as the exclusive upper corner used by the point
// and direction packages.
func (g *Grid[T]) Bounds() Point { return point.New(g.rows, g.cols) }

// Contains reports whether p addresses a cell of g.
func (g *Grid[T]) Contains(p Point) bool { return p.CheckBounds(g.Bounds()) }

// Clone returns a deep copy of the cell slice. Cell values themselves are
// copied by assignment.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: data}
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Equal reports whether a and b have the same shape and the same cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Transpose returns a new cols×rows grid with cell (r, c) moved to (c, r).
func (g *Grid[T]) Transpose() *Grid[T] {
	out := &Grid[T]{rows: g.cols, cols: g.rows, data: make([]T, len(g.data))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[c*out.cols+r] = g.data[r*g.cols+c]
		}
	}

	return out
}

// RotateClockwise returns a new cols×rows grid rotated a quarter turn
// clockwise: the first column, read bottom-up, becomes the first row.
func (g *Grid[T]) RotateClockwise() *Grid[T] {
	out := &Grid[T]{rows: g.cols, cols: g.rows, data: make([]T, len(g.data))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[c*out.cols+(g.rows-1-r)] = g.data[r*g.cols+c]
		}
	}

	return out
}

// String renders one line per row. Runes (and therefore int32) are written as
// characters and bools as '#'/'.', so a parsed puzzle grid prints back as its
// input; any other type is written with %v, cells separated by a space.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range g.data[r*g.cols : (r+1)*g.cols] {
			switch x := any(v).(type) {
			case rune:
				sb.WriteRune(x)
			case bool:
				if x {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			default:
				if c > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprint(&sb, x)
			}
		}
	}

	return sb.String()
}
