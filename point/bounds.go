// SPDX-License-Identifier: MIT

package point

import "fmt"

// CheckBounds reports whether 0 ≤ p.X < bounds.X and 0 ≤ p.Y < bounds.Y.
// X is always checked against bounds.X (rows) and Y against bounds.Y (cols).
func (p Point[P]) CheckBounds(bounds Point[P]) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < bounds.X && p.Y < bounds.Y
}

// InBounds returns p unchanged when it lies inside bounds (exclusive upper
// bound), or ErrOutOfBounds otherwise.
// Complexity: O(1).
func (p Point[P]) InBounds(bounds Point[P]) (Point[P], error) {
	if !p.CheckBounds(bounds) {
		return Point[P]{}, pointErrorf("InBounds", fmt.Sprintf("(%v, bounds=%v)", p, bounds), ErrOutOfBounds)
	}

	return p, nil
}

// InBoundsAs converts p to U and checks the result against bounds in one step.
//
// The two failure kinds never mix:
//   - a component that does not fit U yields ErrConversion;
//   - a point that fits U but lies outside bounds yields ErrOutOfBounds.
//
// Complexity: O(1).
func InBoundsAs[U, P Integer](p Point[P], bounds Point[U]) (Point[U], error) {
	q, err := Convert[U](p)
	if err != nil {
		return Point[U]{}, err
	}
	if !q.CheckBounds(bounds) {
		return Point[U]{}, pointErrorf("InBoundsAs", fmt.Sprintf("(%v, bounds=%v)", p, bounds), ErrOutOfBounds)
	}

	return q, nil
}

// Convert returns p expressed in integer type U. It fails with ErrConversion
// instead of truncating or wrapping, so a negative component never becomes a
// large unsigned value and a wide value never silently narrows.
// Successful conversions round-trip exactly.
func Convert[U, P Integer](p Point[P]) (Point[U], error) {
	x, ok := convertInt[U](p.X)
	if !ok {
		return Point[U]{}, pointErrorf("Convert", fmt.Sprintf("(x=%d)", p.X), ErrConversion)
	}
	y, ok := convertInt[U](p.Y)
	if !ok {
		return Point[U]{}, pointErrorf("Convert", fmt.Sprintf("(y=%d)", p.Y), ErrConversion)
	}

	return Point[U]{X: x, Y: y}, nil
}

// ToIndex flattens p into a row-major offset x*cols + y.
// Requires cols > 0, non-negative components and Y < cols; otherwise, or when
// the offset overflows P, it returns ErrArithmetic.
func (p Point[P]) ToIndex(cols P) (P, error) {
	switch {
	case cols <= 0:
		return 0, pointErrorf("ToIndex", fmt.Sprintf("(cols=%d)", cols), ErrArithmetic)
	case p.X < 0 || p.Y < 0 || p.Y >= cols:
		return 0, pointErrorf("ToIndex", fmt.Sprintf("(%v, cols=%d)", p, cols), ErrArithmetic)
	}
	row, ok := checkedMulNonNeg(p.X, cols)
	if !ok {
		return 0, pointErrorf("ToIndex", fmt.Sprintf("(%v, cols=%d): overflow", p, cols), ErrArithmetic)
	}
	idx, ok := checkedAdd(row, p.Y)
	if !ok {
		return 0, pointErrorf("ToIndex", fmt.Sprintf("(%v, cols=%d): overflow", p, cols), ErrArithmetic)
	}

	return idx, nil
}

// FromIndex is the inverse of ToIndex: (idx / cols, idx % cols).
// Requires cols > 0 and idx ≥ 0, else ErrArithmetic.
func FromIndex[P Integer](idx, cols P) (Point[P], error) {
	if cols <= 0 || idx < 0 {
		return Point[P]{}, pointErrorf("FromIndex", fmt.Sprintf("(idx=%d, cols=%d)", idx, cols), ErrArithmetic)
	}

	return Point[P]{X: idx / cols, Y: idx % cols}, nil
}
