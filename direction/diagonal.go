// SPDX-License-Identifier: MIT

package direction

import "fmt"

// Diagonal is one of the four diagonal compass directions.
type Diagonal uint8

// Diagonal directions, clockwise from north-east.
const (
	NorthEast Diagonal = iota
	SouthEast
	SouthWest
	NorthWest
)

// DiagonalCount is the size of the Diagonal family.
const DiagonalCount = 4

// One Diagonal step is 45°, the same granularity as Octal: Rotate(45) == Next().
const diagonalStepDeg = 45

var (
	diagonals      = [DiagonalCount]Diagonal{NorthEast, SouthEast, SouthWest, NorthWest}
	diagonalNames  = [DiagonalCount]string{"NorthEast", "SouthEast", "SouthWest", "NorthWest"}
	diagonalRunes  = [DiagonalCount]rune{'↗', '↘', '↙', '↖'}
	diagonalDeltas = [DiagonalCount][2]int{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

var _ Offset = NorthEast

// AllDiagonals returns the family in canonical order (NE, SE, SW, NW).
func AllDiagonals() [DiagonalCount]Diagonal { return diagonals }

// DiagonalFromIndex returns the direction at i modulo DiagonalCount.
func DiagonalFromIndex(i int) Diagonal { return Diagonal(mod(i, DiagonalCount)) }

func (d Diagonal) Index() int         { return int(d) }
func (d Diagonal) Count() int         { return DiagonalCount }
func (d Diagonal) IsValid() bool      { return d < DiagonalCount }
func (d Diagonal) Values() []Diagonal { v := diagonals; return v[:] }

// Opposite returns the direction half a turn away.
func (d Diagonal) Opposite() Diagonal { return DiagonalFromIndex(int(d) + 2) }

// Next returns the next diagonal clockwise.
func (d Diagonal) Next() Diagonal { return DiagonalFromIndex(int(d) + 1) }

// Previous returns the next diagonal counter-clockwise.
func (d Diagonal) Previous() Diagonal { return DiagonalFromIndex(int(d) - 1) }

// Rotate turns d clockwise by degrees in 45° steps, so Rotate(45) == Next()
// and Rotate(90) == Opposite().
func (d Diagonal) Rotate(degrees int) Diagonal {
	return Diagonal(rotateIndex(int(d), DiagonalCount, diagonalStepDeg, degrees))
}

// Delta returns the signed (row, column) unit step; (0, 0) for invalid values.
func (d Diagonal) Delta() (dRow, dCol int) {
	if !d.IsValid() {
		return 0, 0
	}

	return diagonalDeltas[d][0], diagonalDeltas[d][1]
}

// Octal returns the same heading in the Octal family.
func (d Diagonal) Octal() Octal { return Octal(mod(int(d), DiagonalCount)*2 + 1) }

// Rune returns an arrow glyph for d.
func (d Diagonal) Rune() rune {
	if !d.IsValid() {
		return '?'
	}

	return diagonalRunes[d]
}

func (d Diagonal) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Diagonal(%d)", uint8(d))
	}

	return diagonalNames[d]
}
