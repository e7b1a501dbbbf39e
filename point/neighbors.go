// SPDX-License-Identifier: MIT

package point

// Neighbor is one slot of a fixed-size neighbour enumeration.
// OK is false when the step would leave the range of P or the given bounds;
// Point is then the zero value and must be ignored.
type Neighbor[P Integer] struct {
	Point Point[P]
	OK    bool
}

func slot[P Integer](p Point[P], ok bool) Neighbor[P] {
	if !ok {
		return Neighbor[P]{}
	}

	return Neighbor[P]{Point: p, OK: true}
}

func boundedSlot[P Integer](p Point[P], ok bool, bounds Point[P]) Neighbor[P] {
	return slot(p, ok && p.CheckBounds(bounds))
}

// Cardinals returns the four orthogonal neighbours ordered (up, right, down,
// left), i.e. (north, east, south, west). The arithmetic wraps; prefer
// CheckedCardinals for unsigned P.
func (p Point[P]) Cardinals() [4]Point[P] {
	return [4]Point[P]{
		p.SubX(1), // north
		p.AddY(1), // east
		p.AddX(1), // south
		p.SubY(1), // west
	}
}

// CheckedCardinals is Cardinals with checked arithmetic: a slot is empty when
// the step would under- or overflow P. Ordered (N, E, S, W).
func (p Point[P]) CheckedCardinals() [4]Neighbor[P] {
	var out [4]Neighbor[P]
	n, ok := p.CheckedSubX(1)
	out[0] = slot(n, ok)
	e, ok := p.CheckedAddY(1)
	out[1] = slot(e, ok)
	s, ok := p.CheckedAddX(1)
	out[2] = slot(s, ok)
	w, ok := p.CheckedSubY(1)
	out[3] = slot(w, ok)

	return out
}

// BoundedCardinals returns the orthogonal neighbours that lie inside bounds,
// ordered (N, E, S, W); slots are empty when outside.
func (p Point[P]) BoundedCardinals(bounds Point[P]) [4]Neighbor[P] {
	var out [4]Neighbor[P]
	n, ok := p.CheckedSubX(1)
	out[0] = boundedSlot(n, ok, bounds)
	e, ok := p.CheckedAddY(1)
	out[1] = boundedSlot(e, ok, bounds)
	s, ok := p.CheckedAddX(1)
	out[2] = boundedSlot(s, ok, bounds)
	w, ok := p.CheckedSubY(1)
	out[3] = boundedSlot(w, ok, bounds)

	return out
}

// diagonal takes one checked diagonal step: up/down on X, left/right on Y.
func (p Point[P]) diagonal(up, left bool) (Point[P], bool) {
	var (
		q  Point[P]
		ok bool
	)
	if up {
		q, ok = p.CheckedSubX(1)
	} else {
		q, ok = p.CheckedAddX(1)
	}
	if !ok {
		return Point[P]{}, false
	}
	if left {
		return q.CheckedSubY(1)
	}

	return q.CheckedAddY(1)
}

// BoundedDiagonals returns the diagonal neighbours inside bounds ordered
// (NW, NE, SW, SE). X is bounded by bounds.X and Y by bounds.Y for every slot.
func (p Point[P]) BoundedDiagonals(bounds Point[P]) [4]Neighbor[P] {
	var out [4]Neighbor[P]
	nw, ok := p.diagonal(true, true)
	out[0] = boundedSlot(nw, ok, bounds)
	ne, ok := p.diagonal(true, false)
	out[1] = boundedSlot(ne, ok, bounds)
	sw, ok := p.diagonal(false, true)
	out[2] = boundedSlot(sw, ok, bounds)
	se, ok := p.diagonal(false, false)
	out[3] = boundedSlot(se, ok, bounds)

	return out
}

// BoundedNeighbors returns all eight neighbours inside bounds, clockwise from
// north: (N, NE, E, SE, S, SW, W, NW).
func (p Point[P]) BoundedNeighbors(bounds Point[P]) [8]Neighbor[P] {
	c := p.BoundedCardinals(bounds)
	d := p.BoundedDiagonals(bounds)

	return [8]Neighbor[P]{
		c[0], // N
		d[1], // NE
		c[1], // E
		d[3], // SE
		c[2], // S
		d[2], // SW
		c[3], // W
		d[0], // NW
	}
}

// Valid collects the occupied slots of a neighbour enumeration, preserving
// their order.
func Valid[P Integer](slots []Neighbor[P]) []Point[P] {
	out := make([]Point[P], 0, len(slots))
	for _, s := range slots {
		if s.OK {
			out = append(out, s.Point)
		}
	}

	return out
}
