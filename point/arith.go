// SPDX-License-Identifier: MIT

package point

import "golang.org/x/exp/constraints"

// Integer is the numeric capability set a Point is generic over:
// every signed and unsigned integer type (and named types built on them).
type Integer interface {
	constraints.Integer
}

// checkedAdd returns a+b, or false if the true sum does not fit P.
// For unsigned P the b<0 branch never fires.
func checkedAdd[P Integer](a, b P) (P, bool) {
	var zero P
	r := a + b
	if (b > zero && r < a) || (b < zero && r > a) {
		return zero, false
	}

	return r, true
}

// checkedSub returns a-b, or false if the true difference does not fit P.
func checkedSub[P Integer](a, b P) (P, bool) {
	var zero P
	r := a - b
	if (b > zero && r > a) || (b < zero && r < a) {
		return zero, false
	}

	return r, true
}

// checkedMulNonNeg multiplies two non-negative values, reporting overflow.
func checkedMulNonNeg[P Integer](a, b P) (P, bool) {
	var zero P
	if a == zero || b == zero {
		return zero, true
	}
	r := a * b
	if r < zero || r/a != b {
		return zero, false
	}

	return r, true
}

// absDiff returns |a-b| without leaving the domain of P, so it is safe for
// unsigned types.
func absDiff[P Integer](a, b P) P {
	if a > b {
		return a - b
	}

	return b - a
}

// convertInt converts v to U exactly. It fails when the value changes on the
// round trip or when the sign flips (e.g. -1 → uint8(255)).
func convertInt[U, P Integer](v P) (U, bool) {
	u := U(v)
	if P(u) != v || (v < 0) != (u < 0) {
		return 0, false
	}

	return u, true
}
