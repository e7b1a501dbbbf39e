// SPDX-License-Identifier: MIT

package grid

// Text ingestion defaults (single source of truth).
const (
	// DefaultStrictLineEndings rejects '\r' before '\n' when true. The default
	// accepts CRLF input and strips the '\r'.
	DefaultStrictLineEndings = false

	// DefaultTrailingBlankLines drops blank lines at the end of the input
	// when true. The default treats them as rows, so they fail the
	// line-length check instead of being silently ignored.
	DefaultTrailingBlankLines = false
)

// ParseOption configures FromText, FromRunes and FromReader.
type ParseOption func(*parseOptions)

// parseOptions is the resolved configuration; unexported so callers go
// through the With* setters.
type parseOptions struct {
	strictLineEndings  bool
	trailingBlankLines bool
}

// WithStrictLineEndings makes a '\r' at the end of any line a builder error.
func WithStrictLineEndings() ParseOption {
	return func(o *parseOptions) { o.strictLineEndings = true }
}

// WithTrailingBlankLines drops blank lines at the end of the input before
// validation. Blank lines anywhere else still fail.
func WithTrailingBlankLines() ParseOption {
	return func(o *parseOptions) { o.trailingBlankLines = true }
}

func gatherParseOptions(opts []ParseOption) parseOptions {
	o := parseOptions{
		strictLineEndings:  DefaultStrictLineEndings,
		trailingBlankLines: DefaultTrailingBlankLines,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
