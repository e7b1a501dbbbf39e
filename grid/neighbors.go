// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/gridkit/direction"

// Connectivity selects which neighbours count as adjacent.
type Connectivity int

const (
	// Conn4 uses the four cardinal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "Conn4" or "Conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}

	return "Conn4"
}

// AdjacentPoints returns the in-bounds neighbours of p in direction order
// (Cardinal order for Conn4, Octal order for Conn8). Any value other than
// Conn8 is treated as Conn4. A p outside the grid still yields the in-bounds
// cells next to it, so callers scanning a border row need not special-case it.
func (g *Grid[T]) AdjacentPoints(p Point, conn Connectivity) []Point {
	bounds := g.Bounds()
	if conn == Conn8 {
		out := make([]Point, 0, direction.OctalCount)
		for _, d := range direction.AllOctals() {
			if q, ok := direction.NextPointInBounds(d, p, bounds); ok {
				out = append(out, q)
			}
		}

		return out
	}

	out := make([]Point, 0, direction.CardinalCount)
	for _, d := range direction.AllCardinals() {
		if q, ok := direction.NextPointInBounds(d, p, bounds); ok {
			out = append(out, q)
		}
	}

	return out
}

// AdjacentValues returns the values of AdjacentPoints(p, conn), same order.
func (g *Grid[T]) AdjacentValues(p Point, conn Connectivity) []T {
	pts := g.AdjacentPoints(p, conn)
	out := make([]T, len(pts))
	for i, q := range pts {
		out[i] = g.data[q.X*g.cols+q.Y]
	}

	return out
}
