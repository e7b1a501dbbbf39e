// SPDX-License-Identifier: MIT

package point

import (
	"errors"
	"fmt"
)

// Sentinel errors for point operations. Match them with errors.Is.
var (
	// ErrConversion indicates a component does not fit the target integer type.
	ErrConversion = errors.New("point: conversion failed")

	// ErrOutOfBounds indicates a point lies outside [0,bounds.X) × [0,bounds.Y).
	ErrOutOfBounds = errors.New("point: out of bounds")

	// ErrArithmetic indicates an operation's precondition was violated,
	// e.g. a non-positive column count or an overflowing index.
	ErrArithmetic = errors.New("point: arithmetic error")
)

// pointErrorf attaches the operation name and operands to a sentinel.
func pointErrorf(method string, detail string, err error) error {
	return fmt.Errorf("Point.%s%s: %w", method, detail, err)
}
