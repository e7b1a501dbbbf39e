// SPDX-License-Identifier: MIT

package point

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a 2D coordinate. X is the row (grows downward), Y is the column
// (grows rightward), matching row-major grid storage.
type Point[P Integer] struct {
	X P
	Y P
}

// New returns the point (x, y).
func New[P Integer](x, y P) Point[P] {
	return Point[P]{X: x, Y: y}
}

// Zero returns the origin (0, 0).
func Zero[P Integer]() Point[P] {
	return Point[P]{}
}

// IsOrigin reports whether p is (0, 0).
func (p Point[P]) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

// String renders the point as "(x, y)".
func (p Point[P]) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Compare orders points row-major: by X, then by Y.
// It returns -1, 0 or +1 and plugs directly into slices.SortFunc.
func (p Point[P]) Compare(q Point[P]) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}

	return cmp.Compare(p.Y, q.Y)
}

// Map applies f to both components.
func (p Point[P]) Map(f func(P) P) Point[P] {
	return Point[P]{X: f(p.X), Y: f(p.Y)}
}

// ---------- wrapping arithmetic ----------

// Add returns the componentwise sum. It wraps on overflow exactly like P;
// use CheckedAdd when a component may leave the range of P.
func (p Point[P]) Add(q Point[P]) Point[P] {
	return Point[P]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference. On unsigned P it wraps on
// underflow; use CheckedSub near the origin.
func (p Point[P]) Sub(q Point[P]) Point[P] {
	return Point[P]{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddAssign adds q to p in place.
func (p *Point[P]) AddAssign(q Point[P]) {
	p.X += q.X
	p.Y += q.Y
}

// SubAssign subtracts q from p in place.
func (p *Point[P]) SubAssign(q Point[P]) {
	p.X -= q.X
	p.Y -= q.Y
}

// AddX returns p with x added to the X component.
func (p Point[P]) AddX(x P) Point[P] { return Point[P]{X: p.X + x, Y: p.Y} }

// AddY returns p with y added to the Y component.
func (p Point[P]) AddY(y P) Point[P] { return Point[P]{X: p.X, Y: p.Y + y} }

// SubX returns p with x subtracted from the X component.
func (p Point[P]) SubX(x P) Point[P] { return Point[P]{X: p.X - x, Y: p.Y} }

// SubY returns p with y subtracted from the Y component.
func (p Point[P]) SubY(y P) Point[P] { return Point[P]{X: p.X, Y: p.Y - y} }

// Scale multiplies both components by factor (wrapping).
func (p Point[P]) Scale(factor P) Point[P] {
	return Point[P]{X: p.X * factor, Y: p.Y * factor}
}

// ---------- checked arithmetic ----------

// CheckedAdd returns p+q, or false if either component overflows P.
func (p Point[P]) CheckedAdd(q Point[P]) (Point[P], bool) {
	x, ok := checkedAdd(p.X, q.X)
	if !ok {
		return Point[P]{}, false
	}
	y, ok := checkedAdd(p.Y, q.Y)
	if !ok {
		return Point[P]{}, false
	}

	return Point[P]{X: x, Y: y}, true
}

// CheckedSub returns p-q, or false if either component under- or overflows P.
func (p Point[P]) CheckedSub(q Point[P]) (Point[P], bool) {
	x, ok := checkedSub(p.X, q.X)
	if !ok {
		return Point[P]{}, false
	}
	y, ok := checkedSub(p.Y, q.Y)
	if !ok {
		return Point[P]{}, false
	}

	return Point[P]{X: x, Y: y}, true
}

// CheckedAddX adds x to the X component, or reports false on overflow.
func (p Point[P]) CheckedAddX(x P) (Point[P], bool) {
	v, ok := checkedAdd(p.X, x)
	if !ok {
		return Point[P]{}, false
	}

	return Point[P]{X: v, Y: p.Y}, true
}

// CheckedAddY adds y to the Y component, or reports false on overflow.
func (p Point[P]) CheckedAddY(y P) (Point[P], bool) {
	v, ok := checkedAdd(p.Y, y)
	if !ok {
		return Point[P]{}, false
	}

	return Point[P]{X: p.X, Y: v}, true
}

// CheckedSubX subtracts x from the X component, or reports false on underflow.
func (p Point[P]) CheckedSubX(x P) (Point[P], bool) {
	v, ok := checkedSub(p.X, x)
	if !ok {
		return Point[P]{}, false
	}

	return Point[P]{X: v, Y: p.Y}, true
}

// CheckedSubY subtracts y from the Y component, or reports false on underflow.
func (p Point[P]) CheckedSubY(y P) (Point[P], bool) {
	v, ok := checkedSub(p.Y, y)
	if !ok {
		return Point[P]{}, false
	}

	return Point[P]{X: p.X, Y: v}, true
}

// ---------- distances ----------

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|.
// Symmetric, non-negative, zero iff p == q. Safe for unsigned P.
func (p Point[P]) ManhattanDistance(q Point[P]) P {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// ChebyshevDistance returns max(|p.X-q.X|, |p.Y-q.Y|).
func (p Point[P]) ChebyshevDistance(q Point[P]) P {
	return max(absDiff(p.X, q.X), absDiff(p.Y, q.Y))
}

// Area returns the area of the axis-aligned rectangle spanned by p and q
// (exclusive of the far edge): |p.X-q.X| * |p.Y-q.Y|.
func (p Point[P]) Area(q Point[P]) P {
	return absDiff(p.X, q.X) * absDiff(p.Y, q.Y)
}

// Rotate90 rotates p a quarter turn about the origin: (x, y) → (-y, x).
// Only signed coordinates can be negated.
func Rotate90[P constraints.Signed](p Point[P]) Point[P] {
	return Point[P]{X: -p.Y, Y: p.X}
}
