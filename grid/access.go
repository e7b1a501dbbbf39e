// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/gridkit/point"
)

// PointToIndex returns the flat offset p.X*cols + p.Y of an in-bounds point.
// Returns ErrOutOfBounds otherwise.
func (g *Grid[T]) PointToIndex(p Point) (int, error) {
	if !g.Contains(p) {
		return 0, gridErrorf(ctxIndex, p, g.rows, g.cols, ErrOutOfBounds)
	}

	return p.X*g.cols + p.Y, nil
}

// IndexToPoint inverts PointToIndex. Returns ErrOutOfBounds for idx outside
// [0, rows*cols).
func (g *Grid[T]) IndexToPoint(idx int) (Point, error) {
	if idx < 0 || idx >= len(g.data) {
		return Point{}, gridErrorf(ctxIndexToPoint, indexTag(idx), g.rows, g.cols, ErrOutOfBounds)
	}

	return point.New(idx/g.cols, idx%g.cols), nil
}

// indexTag formats a flat index for error messages.
type indexTag int

func (i indexTag) String() string { return fmt.Sprintf("(%d)", int(i)) }

// Get returns the value at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid[T]) Get(p Point) (T, error) {
	if !g.Contains(p) {
		var zero T
		return zero, gridErrorf(ctxGet, p, g.rows, g.cols, ErrOutOfBounds)
	}

	return g.data[p.X*g.cols+p.Y], nil
}

// Ref returns a pointer to the cell at p for in-place mutation, or
// ErrOutOfBounds. The pointer stays valid for the grid's lifetime.
func (g *Grid[T]) Ref(p Point) (*T, error) {
	if !g.Contains(p) {
		return nil, gridErrorf(ctxRef, p, g.rows, g.cols, ErrOutOfBounds)
	}

	return &g.data[p.X*g.cols+p.Y], nil
}

// Set stores v at p, or returns ErrOutOfBounds leaving g unchanged.
func (g *Grid[T]) Set(p Point, v T) error {
	if !g.Contains(p) {
		return gridErrorf(ctxSet, p, g.rows, g.cols, ErrOutOfBounds)
	}
	g.data[p.X*g.cols+p.Y] = v

	return nil
}

// MustGet returns the value at p and panics when p is out of bounds,
// the same contract as indexing a slice.
func (g *Grid[T]) MustGet(p Point) T {
	if !g.Contains(p) {
		panic(gridErrorf(ctxMustGet, p, g.rows, g.cols, ErrOutOfBounds))
	}

	return g.data[p.X*g.cols+p.Y]
}

// MustSet stores v at p and panics when p is out of bounds.
func (g *Grid[T]) MustSet(p Point, v T) {
	if !g.Contains(p) {
		panic(gridErrorf(ctxMustSet, p, g.rows, g.cols, ErrOutOfBounds))
	}
	g.data[p.X*g.cols+p.Y] = v
}

// PointToIndexAs is PointToIndex for a point of any integer type.
// A point that cannot be represented as int fails with both ErrOutOfBounds
// and ErrConversion; a representable point outside the grid with
// ErrOutOfBounds only.
func PointToIndexAs[T any, P point.Integer](g *Grid[T], p point.Point[P]) (int, error) {
	q, err := point.Convert[int](p)
	if err != nil {
		return 0, fmt.Errorf("Grid.%s%v [%dx%d]: %w: %w", ctxIndexAs, p, g.rows, g.cols, ErrOutOfBounds, ErrConversion)
	}

	return g.PointToIndex(q)
}

// GetAs is Get for a point of any integer type; errors as PointToIndexAs.
func GetAs[T any, P point.Integer](g *Grid[T], p point.Point[P]) (T, error) {
	idx, err := PointToIndexAs(g, p)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// SetAs is Set for a point of any integer type; errors as PointToIndexAs.
func SetAs[T any, P point.Integer](g *Grid[T], p point.Point[P], v T) error {
	idx, err := PointToIndexAs(g, p)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row r, or (nil, false) when r is outside [0, rows).
func (g *Grid[T]) Row(r int) ([]T, bool) {
	view, ok := g.RowView(r)
	if !ok {
		return nil, false
	}
	out := make([]T, len(view))
	copy(out, view)

	return out, true
}

// RowView returns row r as a slice sharing storage with g. Its capacity is
// capped at cols, so appending to it never overwrites the next row.
func (g *Grid[T]) RowView(r int) ([]T, bool) {
	if r < 0 || r >= g.rows {
		return nil, false
	}
	lo, hi := r*g.cols, (r+1)*g.cols

	return g.data[lo:hi:hi], true
}

// Column returns a copy of column c, or (nil, false) when c is outside
// [0, cols).
func (g *Grid[T]) Column(c int) ([]T, bool) {
	if c < 0 || c >= g.cols {
		return nil, false
	}
	out := make([]T, g.rows)
	for r := range out {
		out[r] = g.data[r*g.cols+c]
	}

	return out, true
}
