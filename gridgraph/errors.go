// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrGridNil is returned when a nil grid pointer is passed.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrOutOfBounds indicates a start or target cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNegativeCost indicates a weight function returned a negative cost.
	ErrNegativeCost = errors.New("gridgraph: negative step cost")
	// ErrNoPath indicates the target cannot be reached.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
