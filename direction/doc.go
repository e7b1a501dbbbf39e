// SPDX-License-Identifier: MIT

// Package direction defines three closed direction families over a
// row-down / column-right coordinate system:
//
//   - Cardinal: North, East, South, West (quarter-turn steps).
//   - Octal:    N, NE, E, SE, S, SW, W, NW (eighth-turn steps).
//   - Diagonal: NorthEast, SouthEast, SouthWest, NorthWest (eighth-turn steps,
//     so Rotate(45) moves to the next diagonal).
//
// Every family lists its values clockwise starting at (or just after) north,
// and the iota order of the constants IS that canonical order, so Next,
// Previous, Opposite and Rotate reduce to index arithmetic modulo the family
// size. Each family satisfies the Direction[D] constraint, which lets
// NextPoint, Delta, PointsAround and Move work across all three.
//
// Deltas are signed unit steps: North is (-1, 0) because rows grow downward.
// Stepping a point uses checked arithmetic, so an unsigned point at the
// origin edge yields "absent" rather than a wrapped coordinate.
package direction
