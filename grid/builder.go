// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	ctxNew    = "New"
	ctxSlice  = "FromSlice"
	ctx2D     = "From2D"
	ctxText   = "FromText"
	ctxReader = "FromReader"
)

// validateDims rejects non-positive dimensions and products overflowing int.
func validateDims(method string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return builderErrorf(method, ErrInvalidDimensions, "rows=%d, cols=%d", rows, cols)
	}
	if cols > math.MaxInt/rows {
		return builderErrorf(method, ErrInvalidDimensions, "rows=%d, cols=%d overflows int", rows, cols)
	}

	return nil
}

// New returns a rows×cols grid with every cell set to fill.
// Returns ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows*cols).
func New[T any](rows, cols int, fill T) (*Grid[T], error) {
	if err := validateDims(ctxNew, rows, cols); err != nil {
		return nil, err
	}
	g := &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	g.Fill(fill)

	return g, nil
}

// FromSlice builds a grid from row-major data. The slice is copied, so later
// writes to data do not reach the grid.
// Returns ErrInvalidDimensions or ErrLengthMismatch.
func FromSlice[T any](data []T, rows, cols int) (*Grid[T], error) {
	if err := validateDims(ctxSlice, rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, builderErrorf(ctxSlice, ErrLengthMismatch, "len=%d, rows*cols=%d", len(data), rows*cols)
	}
	own := make([]T, len(data))
	copy(own, data)

	return &Grid[T]{rows: rows, cols: cols, data: own}, nil
}

// From2D flattens nested rows into a grid.
// Returns ErrEmptyInput for no rows or an empty first row, and
// ErrNonRectangular naming the first row whose length differs.
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, builderErrorf(ctx2D, ErrEmptyInput, "rows=%d", len(rows))
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, builderErrorf(ctx2D, ErrNonRectangular, "row %d has %d cells, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return &Grid[T]{rows: len(rows), cols: cols, data: data}, nil
}

// FromText parses newline-delimited text, mapping every rune through mapper.
//
// Rules:
//   - one terminating "\n" is accepted; the empty string is ErrEmptyInput;
//   - every line must have the same number of runes (not bytes), else
//     ErrNonRectangular naming the 0-based line;
//   - a trailing '\r' is stripped unless WithStrictLineEndings is given;
//   - trailing blank lines are rows (and so fail the length check) unless
//     WithTrailingBlankLines is given.
//
// A nil mapper is reported as ErrBuilder.
// Complexity: O(len(input)).
func FromText[T any](input string, mapper func(rune) T, opts ...ParseOption) (*Grid[T], error) {
	if mapper == nil {
		return nil, builderErrorf(ctxText, ErrBuilder, "nil mapper")
	}
	o := gatherParseOptions(opts)

	lines, err := splitLines(input, o)
	if err != nil {
		return nil, err
	}

	cols := utf8.RuneCountInString(lines[0])
	if cols == 0 {
		return nil, builderErrorf(ctxText, ErrEmptyInput, "line 0 is empty")
	}
	data := make([]T, 0, len(lines)*cols)
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, builderErrorf(ctxText, ErrNonRectangular, "line %d has %d runes, want %d", i, n, cols)
		}
		for _, r := range line {
			data = append(data, mapper(r))
		}
	}

	return &Grid[T]{rows: len(lines), cols: cols, data: data}, nil
}

// splitLines applies the line-ending rules of FromText.
func splitLines(input string, o parseOptions) ([]string, error) {
	if input == "" {
		return nil, builderErrorf(ctxText, ErrEmptyInput, "no text")
	}
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for i, line := range lines {
		if !strings.HasSuffix(line, "\r") {
			continue
		}
		if o.strictLineEndings {
			return nil, builderErrorf(ctxText, ErrBuilder, "line %d ends with carriage return", i)
		}
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if o.trailingBlankLines {
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		if len(lines) == 0 {
			return nil, builderErrorf(ctxText, ErrEmptyInput, "only blank lines")
		}
	}

	return lines, nil
}

// FromRunes is FromText with the identity mapper.
func FromRunes(input string, opts ...ParseOption) (*Grid[rune], error) {
	return FromText(input, func(r rune) rune { return r }, opts...)
}

// FromReader reads r to EOF and parses it with FromText.
// Read failures are returned wrapped, not as ErrBuilder.
func FromReader[T any](r io.Reader, mapper func(rune) T, opts ...ParseOption) (*Grid[T], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReader, err)
	}

	return FromText(string(b), mapper, opts...)
}
