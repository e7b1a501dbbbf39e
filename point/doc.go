// SPDX-License-Identifier: MIT

// Package point provides Point[P], a two-field coordinate value generic over
// every integer width and signedness.
//
// What:
//
//   - Point[P] holds X (row, grows downward) and Y (column, grows rightward).
//   - Plain arithmetic (Add, Sub, Scale, …) wraps like the underlying integer.
//   - Checked arithmetic (CheckedAdd, CheckedSubX, …) reports absence instead
//     of wrapping, so unsigned coordinates can step toward the origin safely.
//   - Bounds checks (InBounds, InBoundsAs) use an exclusive upper bound:
//     0 ≤ X < bounds.X and 0 ≤ Y < bounds.Y.
//   - Convert moves a point between integer types and fails rather than
//     truncating or flipping sign.
//   - Neighbour enumeration returns fixed-size, position-stable arrays whose
//     slots may be empty (Neighbor.OK == false).
//
// Errors:
//
//   - ErrConversion: a component does not fit the target integer type.
//   - ErrOutOfBounds: a component fails the bounds check.
//   - ErrArithmetic: an operation's precondition is violated (e.g. cols ≤ 0).
//
// Complexity: every operation is O(1).
//
// Point is a pure value type: copy it freely, share it across goroutines.
package point
