// SPDX-License-Identifier: MIT

package direction

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/point"
	"golang.org/x/exp/constraints"
)

// ErrUnknownDirection indicates a rune or name that maps to no direction.
var ErrUnknownDirection = errors.New("direction: unknown direction")

// Offset is the minimal capability shared by every family: a signed unit
// step in (row, column) terms.
type Offset interface {
	Delta() (dRow, dCol int)
}

// Direction is the capability set every family implements. D is the family
// type itself, so Next on a Cardinal returns a Cardinal.
//
// Invariants (enforced by tests for every family):
//   - Opposite(Opposite(d)) == d.
//   - Next and Previous are mutual inverses; Count() applications of Next
//     return d.
//   - Rotate(0) == Rotate(360) == d and Rotate(a).Rotate(b) == Rotate(a+b).
type Direction[D any] interface {
	comparable
	Offset
	fmt.Stringer

	Opposite() D
	Next() D
	Previous() D
	Rotate(degrees int) D
	Index() int
	Count() int
	Values() []D
	IsValid() bool
}

// mod is the Euclidean remainder, always in [0, n).
func mod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}

// rotateIndex turns idx by degrees, where one family step is stepDeg.
// Degrees are truncated toward zero to whole steps.
func rotateIndex(idx, count, stepDeg, degrees int) int {
	return mod(idx+degrees/stepDeg, count)
}

// Delta returns d's unit vector as a Point in a signed coordinate type.
func Delta[P constraints.Signed, D Direction[D]](d D) point.Point[P] {
	dr, dc := d.Delta()

	return point.New(P(dr), P(dc))
}

// Step applies one unit step of o to p with checked arithmetic.
// It reports false when a component would leave the range of P.
func Step[P point.Integer](p point.Point[P], o Offset) (point.Point[P], bool) {
	dr, dc := o.Delta()
	q, ok := p, true
	switch {
	case dr < 0:
		q, ok = q.CheckedSubX(1)
	case dr > 0:
		q, ok = q.CheckedAddX(1)
	}
	if !ok {
		return point.Point[P]{}, false
	}
	switch {
	case dc < 0:
		q, ok = q.CheckedSubY(1)
	case dc > 0:
		q, ok = q.CheckedAddY(1)
	}
	if !ok {
		return point.Point[P]{}, false
	}

	return q, true
}

// NextPoint returns the neighbour of p in direction d, or false if the step
// would underflow or overflow P.
func NextPoint[P point.Integer, D Direction[D]](d D, p point.Point[P]) (point.Point[P], bool) {
	return Step(p, d)
}

// NextPointInBounds is NextPoint followed by an exclusive bounds check.
// Absence is returned rather than a default coordinate.
func NextPointInBounds[P point.Integer, D Direction[D]](d D, p, bounds point.Point[P]) (point.Point[P], bool) {
	q, ok := Step(p, d)
	if !ok || !q.CheckBounds(bounds) {
		return point.Point[P]{}, false
	}

	return q, true
}

// Adjacent pairs a direction with the neighbour it leads to.
// OK is false when that neighbour is not representable.
type Adjacent[P point.Integer, D Direction[D]] struct {
	Direction D
	Point     point.Point[P]
	OK        bool
}

// PointsAround steps p once in every direction of family D, in canonical
// order. Call it as PointsAround[direction.Cardinal](p).
func PointsAround[D Direction[D], P point.Integer](p point.Point[P]) []Adjacent[P, D] {
	var zero D
	values := zero.Values()
	out := make([]Adjacent[P, D], 0, len(values))
	for _, d := range values {
		q, ok := Step(p, d)
		out = append(out, Adjacent[P, D]{Direction: d, Point: q, OK: ok})
	}

	return out
}
