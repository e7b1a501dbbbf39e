// SPDX-License-Identifier: MIT

// Package gridkit is a small toolkit for two-dimensional puzzle grids:
// integer coordinates of any width, direction families with rotation, and a
// bounds-checked row-major grid container.
//
// What is in the box?
//
//	point/     — Point[P], generic over every integer type: checked and
//	             wrapping arithmetic, distances, exact conversion between
//	             integer widths, bounds checks, bounded neighbour slots.
//	direction/ — Cardinal (4), Octal (8) and Diagonal (4) families sharing
//	             one generic Direction constraint (opposite, next, previous,
//	             rotate by degrees), plus Move (point + direction + steps).
//	grid/      — Grid[T]: builders from dimensions, flat or nested slices and
//	             newline-delimited text; bounds-checked access; row/column
//	             slicing; adjacency; search; directional traversal;
//	             rectangles, views and sub-grids; content hashing.
//	gridgraph/ — BFS distances and paths, flood-fill regions with perimeter
//	             and side counts, land components, 0-1 BFS island bridging.
//
// Coordinates:
//
//	X is the row and grows downward, Y is the column and grows rightward.
//	North is (-1, 0). A grid with r rows and c columns has bounds (r, c)
//	and stores (x, y) at index x*c + y.
//
// Errors:
//
//	Every fallible operation returns a wrapped package sentinel
//	("point: ...", "grid: ...", "direction: ...", "gridgraph: ...");
//	branch with errors.Is. Only the Must* grid accessors panic.
//
// Concurrency:
//
//	Points, directions and moves are plain values. A Grid performs no
//	locking: concurrent readers are fine, writers need external exclusion.
//
// Quick start:
//
//	g, err := grid.FromRunes(input)
//	if err != nil { ... }
//	start, _ := grid.Search(g, 'S')
//	for _, d := range direction.AllCardinals() {
//		if v, ok := grid.ValueInDirection(g, direction.NewMove(start, d)); ok {
//			...
//		}
//	}
package gridkit
