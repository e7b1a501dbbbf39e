// SPDX-License-Identifier: MIT

package direction

import "fmt"

// Octal is one of the eight compass directions, diagonals included.
type Octal uint8

// Octal directions, clockwise from north.
const (
	N Octal = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// OctalCount is the size of the Octal family.
const OctalCount = 8

const octalStepDeg = 45

var (
	octals      = [OctalCount]Octal{N, NE, E, SE, S, SW, W, NW}
	octalNames  = [OctalCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	octalRunes  = [OctalCount]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	octalDeltas = [OctalCount][2]int{
		{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
		{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	}
)

var _ Offset = N

// AllOctals returns the family in canonical order (N, NE, …, NW).
func AllOctals() [OctalCount]Octal { return octals }

// OctalFromIndex returns the direction at i modulo OctalCount.
func OctalFromIndex(i int) Octal { return Octal(mod(i, OctalCount)) }

func (d Octal) Index() int      { return int(d) }
func (d Octal) Count() int      { return OctalCount }
func (d Octal) IsValid() bool   { return d < OctalCount }
func (d Octal) Values() []Octal { v := octals; return v[:] }

// Opposite returns the direction half a turn away.
func (d Octal) Opposite() Octal { return OctalFromIndex(int(d) + 4) }

// Next returns the next direction clockwise (45°).
func (d Octal) Next() Octal { return OctalFromIndex(int(d) + 1) }

// Previous returns the next direction counter-clockwise (45°).
func (d Octal) Previous() Octal { return OctalFromIndex(int(d) - 1) }

// Rotate turns d clockwise by degrees in 45° steps.
func (d Octal) Rotate(degrees int) Octal {
	return Octal(rotateIndex(int(d), OctalCount, octalStepDeg, degrees))
}

// Delta returns the signed (row, column) unit step; (0, 0) for invalid values.
func (d Octal) Delta() (dRow, dCol int) {
	if !d.IsValid() {
		return 0, 0
	}

	return octalDeltas[d][0], octalDeltas[d][1]
}

// IsDiagonal reports whether d moves on both axes.
func (d Octal) IsDiagonal() bool { return d.IsValid() && d%2 == 1 }

// Cardinal narrows d to the Cardinal family; false for diagonals.
func (d Octal) Cardinal() (Cardinal, bool) {
	if !d.IsValid() || d.IsDiagonal() {
		return 0, false
	}

	return Cardinal(d / 2), true
}

// Diagonal narrows d to the Diagonal family; false for axis-aligned values.
func (d Octal) Diagonal() (Diagonal, bool) {
	if !d.IsDiagonal() {
		return 0, false
	}

	return Diagonal(d / 2), true
}

// Rune returns an arrow glyph for d.
func (d Octal) Rune() rune {
	if !d.IsValid() {
		return '?'
	}

	return octalRunes[d]
}

func (d Octal) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Octal(%d)", uint8(d))
	}

	return octalNames[d]
}
