// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridkit/point"
)

// Rectangle is the half-open region [TopLeft.X, BottomRight.X) ×
// [TopLeft.Y, BottomRight.Y). BottomRight is exclusive, the same convention
// as grid bounds, so EntireGrid(g.Bounds()) covers exactly g.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

// NewRectangle validates topLeft ≤ bottomRight component-wise and rejects
// negative corners. Returns ErrBuilder otherwise. Equal corners give an
// empty rectangle.
func NewRectangle(topLeft, bottomRight Point) (Rectangle, error) {
	if topLeft.X < 0 || topLeft.Y < 0 || topLeft.X > bottomRight.X || topLeft.Y > bottomRight.Y {
		return Rectangle{}, fmt.Errorf("NewRectangle(%v, %v): %w", topLeft, bottomRight, ErrBuilder)
	}

	return Rectangle{TopLeft: topLeft, BottomRight: bottomRight}, nil
}

// EntireGrid returns the rectangle [0,bounds.X) × [0,bounds.Y).
func EntireGrid(bounds Point) Rectangle {
	return Rectangle{BottomRight: bounds}
}

// AroundPoint returns the (2*radius+1)-wide square centred on center.
// The top-left corner saturates at 0 and a negative radius counts as 0.
// The result may extend past a grid; View clips it, SubGrid rejects it.
func AroundPoint(center Point, radius int) Rectangle {
	radius = max(radius, 0)

	return Rectangle{
		TopLeft:     point.New(max(center.X-radius, 0), max(center.Y-radius, 0)),
		BottomRight: point.New(center.X+radius+1, center.Y+radius+1),
	}
}

// Rows returns the height of r.
func (r Rectangle) Rows() int { return max(r.BottomRight.X-r.TopLeft.X, 0) }

// Cols returns the width of r.
func (r Rectangle) Cols() int { return max(r.BottomRight.Y-r.TopLeft.Y, 0) }

// Empty reports whether r covers no cells.
func (r Rectangle) Empty() bool { return r.Rows() == 0 || r.Cols() == 0 }

// Contains reports whether p lies inside r.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.Y >= r.TopLeft.Y && p.X < r.BottomRight.X && p.Y < r.BottomRight.Y
}

// Intersect returns the overlap of r and o; it is Empty when they are disjoint.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	tl := point.New(max(r.TopLeft.X, o.TopLeft.X), max(r.TopLeft.Y, o.TopLeft.Y))
	br := point.New(min(r.BottomRight.X, o.BottomRight.X), min(r.BottomRight.Y, o.BottomRight.Y))
	if br.X < tl.X || br.Y < tl.Y {
		return Rectangle{TopLeft: tl, BottomRight: tl}
	}

	return Rectangle{TopLeft: tl, BottomRight: br}
}

// Points yields the coordinates of r in row-major order.
func (r Rectangle) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := r.TopLeft.X; x < r.BottomRight.X; x++ {
			for y := r.TopLeft.Y; y < r.BottomRight.Y; y++ {
				if !yield(point.New(x, y)) {
					return
				}
			}
		}
	}
}

// String returns "[(x0, y0)..(x1, y1))".
func (r Rectangle) String() string {
	return fmt.Sprintf("[%v..%v)", r.TopLeft, r.BottomRight)
}

// View is a read-only window over a grid, clipped to the grid's extent.
// It shares storage with the grid, so writes through the grid are visible.
type View[T any] struct {
	grid *Grid[T]
	rect Rectangle
}

// View returns a window over the part of r that lies inside g. Cells of r
// outside g are silently excluded; an r disjoint from g gives an empty view.
func (g *Grid[T]) View(r Rectangle) View[T] {
	return View[T]{grid: g, rect: r.Intersect(EntireGrid(g.Bounds()))}
}

// Rect returns the clipped rectangle the view covers, in grid coordinates.
func (v View[T]) Rect() Rectangle { return v.rect }

// Len returns the number of cells in the view.
func (v View[T]) Len() int { return v.rect.Rows() * v.rect.Cols() }

// Get returns the value at grid coordinate p, or ErrOutOfBounds when p lies
// outside the view.
func (v View[T]) Get(p Point) (T, error) {
	if !v.rect.Contains(p) {
		var zero T
		return zero, gridErrorf(ctxViewGet, p, v.rect.Rows(), v.rect.Cols(), ErrOutOfBounds)
	}

	return v.grid.data[p.X*v.grid.cols+p.Y], nil
}

// All yields (grid point, value) pairs of the view in row-major order.
func (v View[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for p := range v.rect.Points() {
			if !yield(p, v.grid.data[p.X*v.grid.cols+p.Y]) {
				return
			}
		}
	}
}

// SubGrid copies the cells of r into a new grid whose (0,0) is r.TopLeft.
// Returns ErrOperation for an empty r and ErrOutOfBounds when r extends past g.
func (g *Grid[T]) SubGrid(r Rectangle) (*Grid[T], error) {
	if r.Empty() {
		return nil, fmt.Errorf("Grid.%s%v: %w", ctxSubGrid, r, ErrOperation)
	}
	if r.TopLeft.X < 0 || r.TopLeft.Y < 0 || r.BottomRight.X > g.rows || r.BottomRight.Y > g.cols {
		return nil, gridErrorf(ctxSubGrid, r, g.rows, g.cols, ErrOutOfBounds)
	}
	rows, cols := r.Rows(), r.Cols()
	data := make([]T, 0, rows*cols)
	for x := r.TopLeft.X; x < r.BottomRight.X; x++ {
		lo := x*g.cols + r.TopLeft.Y
		data = append(data, g.data[lo:lo+cols]...)
	}

	return &Grid[T]{rows: rows, cols: cols, data: data}, nil
}
