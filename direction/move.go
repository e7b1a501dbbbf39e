// SPDX-License-Identifier: MIT

package direction

import (
	"fmt"

	"github.com/katalvlaran/gridkit/point"
)

// Move is a ray-casting step: a starting point, a heading and a step count.
// The zero Steps value is legal and resolves to the starting point.
type Move[P point.Integer, D Direction[D]] struct {
	Point     point.Point[P]
	Direction D
	Steps     int
}

// NewMove returns a one-step move from p toward d.
func NewMove[P point.Integer, D Direction[D]](p point.Point[P], d D) Move[P, D] {
	return Move[P, D]{Point: p, Direction: d, Steps: 1}
}

// WithSteps returns a copy of m that travels n steps.
func (m Move[P, D]) WithSteps(n int) Move[P, D] {
	m.Steps = n

	return m
}

// Turn returns a copy of m heading Rotate(degrees) from its current direction.
func (m Move[P, D]) Turn(degrees int) Move[P, D] {
	m.Direction = m.Direction.Rotate(degrees)

	return m
}

// Target resolves the destination after Steps unit steps.
// It reports false for negative Steps or when any intermediate step leaves
// the range of P.
// Complexity: O(Steps).
func (m Move[P, D]) Target() (point.Point[P], bool) {
	if m.Steps < 0 {
		return point.Point[P]{}, false
	}
	cur := m.Point
	for i := 0; i < m.Steps; i++ {
		next, ok := Step(cur, m.Direction)
		if !ok {
			return point.Point[P]{}, false
		}
		cur = next
	}

	return cur, true
}

// TargetInBounds is Target followed by an exclusive bounds check on the
// destination.
func (m Move[P, D]) TargetInBounds(bounds point.Point[P]) (point.Point[P], bool) {
	q, ok := m.Target()
	if !ok || !q.CheckBounds(bounds) {
		return point.Point[P]{}, false
	}

	return q, true
}

// Advance returns m relocated to its target, keeping direction and steps,
// so repeated calls walk a ray.
func (m Move[P, D]) Advance() (Move[P, D], bool) {
	q, ok := m.Target()
	if !ok {
		return m, false
	}
	m.Point = q

	return m, true
}

// AdvanceInBounds is Advance restricted to bounds.
func (m Move[P, D]) AdvanceInBounds(bounds point.Point[P]) (Move[P, D], bool) {
	q, ok := m.TargetInBounds(bounds)
	if !ok {
		return m, false
	}
	m.Point = q

	return m, true
}

func (m Move[P, D]) String() string {
	return fmt.Sprintf("%v→%v×%d", m.Point, m.Direction, m.Steps)
}
