// SPDX-License-Identifier: MIT

package direction

import "fmt"

// Cardinal is one of the four axis-aligned compass directions.
type Cardinal uint8

// Cardinal directions in canonical clockwise order.
const (
	North Cardinal = iota
	East
	South
	West
)

// CardinalCount is the size of the Cardinal family.
const CardinalCount = 4

const cardinalStepDeg = 90

var (
	cardinals      = [CardinalCount]Cardinal{North, East, South, West}
	cardinalNames  = [CardinalCount]string{"North", "East", "South", "West"}
	cardinalRunes  = [CardinalCount]rune{'↑', '→', '↓', '←'}
	cardinalDeltas = [CardinalCount][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
)

var _ Offset = North

// AllCardinals returns the family in canonical order (N, E, S, W).
func AllCardinals() [CardinalCount]Cardinal { return cardinals }

// CardinalFromIndex returns the direction at i modulo CardinalCount.
func CardinalFromIndex(i int) Cardinal { return Cardinal(mod(i, CardinalCount)) }

// ParseCardinal maps a puzzle glyph to a direction. It accepts arrows
// ('^' '>' 'v' '<'), move letters ('U' 'R' 'D' 'L') and compass letters
// ('N' 'E' 'S' 'W').
func ParseCardinal(r rune) (Cardinal, error) {
	switch r {
	case '^', 'U', 'N':
		return North, nil
	case '>', 'R', 'E':
		return East, nil
	case 'v', 'D', 'S':
		return South, nil
	case '<', 'L', 'W':
		return West, nil
	}

	return 0, fmt.Errorf("ParseCardinal(%q): %w", r, ErrUnknownDirection)
}

func (d Cardinal) Index() int         { return int(d) }
func (d Cardinal) Count() int         { return CardinalCount }
func (d Cardinal) IsValid() bool      { return d < CardinalCount }
func (d Cardinal) Values() []Cardinal { v := cardinals; return v[:] }

// Opposite returns the direction half a turn away.
func (d Cardinal) Opposite() Cardinal { return CardinalFromIndex(int(d) + 2) }

// Next returns the next direction clockwise.
func (d Cardinal) Next() Cardinal { return CardinalFromIndex(int(d) + 1) }

// Previous returns the next direction counter-clockwise.
func (d Cardinal) Previous() Cardinal { return CardinalFromIndex(int(d) - 1) }

// Rotate turns d clockwise by degrees (negative turns counter-clockwise),
// in 90° steps; Rotate(90) == Next().
func (d Cardinal) Rotate(degrees int) Cardinal {
	return Cardinal(rotateIndex(int(d), CardinalCount, cardinalStepDeg, degrees))
}

// Delta returns the signed (row, column) unit step; (0, 0) for invalid values.
func (d Cardinal) Delta() (dRow, dCol int) {
	if !d.IsValid() {
		return 0, 0
	}

	return cardinalDeltas[d][0], cardinalDeltas[d][1]
}

// Octal returns the same heading in the Octal family.
func (d Cardinal) Octal() Octal { return Octal(mod(int(d), CardinalCount) * 2) }

// Rune returns an arrow glyph for d.
func (d Cardinal) Rune() rune {
	if !d.IsValid() {
		return '?'
	}

	return cardinalRunes[d]
}

func (d Cardinal) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Cardinal(%d)", uint8(d))
	}

	return cardinalNames[d]
}
