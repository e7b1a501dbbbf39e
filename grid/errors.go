// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers MUST branch with errors.Is; messages are stable
// and prefixed with "grid:".
var (
	// ErrConversion indicates a coordinate could not be represented as int.
	ErrConversion = errors.New("grid: conversion failed")

	// ErrOutOfBounds indicates a coordinate outside [0,rows) × [0,cols).
	ErrOutOfBounds = errors.New("grid: point out of bounds")

	// ErrBuilder indicates construction-time validation failed. Every
	// specific builder error below wraps it.
	ErrBuilder = errors.New("grid: builder error")

	// ErrOperation indicates a request that is not well-defined for the
	// current grid state (e.g. an empty sub-region).
	ErrOperation = errors.New("grid: operation error")
)

// Specific builder errors; each satisfies errors.Is(err, ErrBuilder).
var (
	// ErrEmptyInput indicates no rows, or an empty first row.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrBuilder)

	// ErrNonRectangular indicates rows (or text lines) of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: inconsistent row length", ErrBuilder)

	// ErrLengthMismatch indicates flat data whose length is not rows*cols.
	ErrLengthMismatch = fmt.Errorf("%w: data length does not match rows*cols", ErrBuilder)

	// ErrInvalidDimensions indicates rows ≤ 0, cols ≤ 0 or rows*cols overflowing int.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrBuilder)
)

// ---------- error context tags ----------

const (
	ctxGet          = "Get"
	ctxRef          = "Ref"
	ctxSet          = "Set"
	ctxIndex        = "PointToIndex"
	ctxIndexAs      = "PointToIndexAs"
	ctxIndexToPoint = "IndexToPoint"
	ctxMustGet      = "MustGet"
	ctxMustSet      = "MustSet"
	ctxSubGrid      = "SubGrid"
	ctxViewGet      = "View.Get"
)

// gridErrorf wraps err with the method tag, the offending coordinate and the
// grid shape: "Grid.Get(2, 0) [2x2]: grid: point out of bounds".
func gridErrorf(method string, p fmt.Stringer, rows, cols int, err error) error {
	return fmt.Errorf("Grid.%s%v [%dx%d]: %w", method, p, rows, cols, err)
}

// builderErrorf wraps a specific builder sentinel with the constructor name
// and a formatted detail.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
