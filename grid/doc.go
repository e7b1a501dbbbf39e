// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a bounded, row-major 2D container indexed by
// point.Point[int] (X = row, Y = column).
//
// What:
//
//   - Builders validate shape up front: New (fill value), FromSlice (flat data),
//     From2D (nested rows), FromText / FromRunes / FromReader (newline-delimited
//     puzzle text with a per-rune mapper). A grid always has rows > 0, cols > 0
//     and len(data) == rows*cols; it is never resized afterwards.
//   - Access is bounds-checked: Get, Ref, Set and PointToIndex return
//     ErrOutOfBounds instead of panicking. MustGet / MustSet are the raw
//     convenience accessors and DO panic on an invalid point, mirroring slice
//     indexing; use them only after validating the point yourself.
//   - GetAs / SetAs / PointToIndexAs accept a point of any integer type.
//   - Scans: Row, RowView, Column, AdjacentPoints/AdjacentValues (Conn4 or
//     Conn8), Search/SearchAll, Find/FindAll, All, Ray.
//   - Directional traversal: StepInDirection / ValueInDirection resolve a
//     direction.Move against the grid bounds.
//   - Regions: Rectangle, View (clipped window over the grid), SubGrid (copy).
//   - Whole-grid helpers: Clone, Fill, Equal, Transpose, RotateClockwise,
//     Hash (content hash for cycle detection), String.
//
// Errors:
//
//   - ErrBuilder (with the specific ErrEmptyInput, ErrNonRectangular,
//     ErrLengthMismatch, ErrInvalidDimensions): construction-time validation.
//   - ErrOutOfBounds: a coordinate outside [0,rows) × [0,cols).
//   - ErrConversion: a coordinate not representable as int (always joined with
//     ErrOutOfBounds, since such a point cannot address a cell).
//   - ErrOperation: a request that is not well-defined for the grid's state.
//
// Concurrency:
//
//	Grid performs no locking. Readers may share a grid; Set, MustSet and Fill
//	require exclusive access, which the caller must provide.
//
// Complexity quicksheet:
//
//	builders O(r*c); Get/Set/PointToIndex O(1); Row O(c); Column O(r);
//	Search/SearchAll/Find O(r*c); Adjacent* O(1); Transpose/Rotate O(r*c).
package grid
