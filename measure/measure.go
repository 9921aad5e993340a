package measure

import (
	"golang.org/x/text/width"
)

// Measurer computes column widths for a configurable tab width and
// East-Asian-width policy. The pipeline is built once at construction time
// from the provided [Option] values, mirroring a functional-options
// Unicode-pipeline shape.
//
// Create instances with [New].
type Measurer struct {
	tabWidth        int
	ambiguousAsWide bool
}

// Option configures a [Measurer].
//
// Available options:
//   - [WithTabWidth]
//   - [WithAmbiguousAsWide]
type Option func(*Measurer)

// New creates a new [*Measurer].
//
// By default, tabs expand to one column and ambiguous-width runes count as
// narrow (one column). Use [Option] values to customize.
func New(opts ...Option) *Measurer {
	m := &Measurer{tabWidth: 1}

	for _, opt := range opts {
		opt(m)
	}

	if m.tabWidth < 1 {
		m.tabWidth = 1
	}

	return m
}

// WithTabWidth is an [Option] that sets the column width of a literal tab
// character. Must be >= 1; values below that are clamped to 1.
func WithTabWidth(n int) Option {
	return func(m *Measurer) { m.tabWidth = n }
}

// WithAmbiguousAsWide is an [Option] that toggles whether East Asian
// "ambiguous"-width runes count as two columns (true) or one (false, the
// default).
func WithAmbiguousAsWide(enabled bool) Option {
	return func(m *Measurer) { m.ambiguousAsWide = enabled }
}

// Width returns the on-screen column width of s measured from column 0: each
// tab advances to the next multiple of the configured tab width, and each
// rune contributes 1 or 2 columns per [width.LookupRune]'s East Asian Width
// classification.
func (m *Measurer) Width(s string) int {
	col := 0

	for _, r := range s {
		if r == '\t' {
			col += m.tabWidth - col%m.tabWidth

			continue
		}

		col += m.runeWidth(r)
	}

	return col
}

// runeWidth returns the column contribution of a single non-tab rune.
func (m *Measurer) runeWidth(r rune) int {
	p := width.LookupRune(r)

	switch p.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		if m.ambiguousAsWide {
			return 2
		}

		return 1
	default:
		return 1
	}
}

// Column returns the column reached after advancing from startCol through
// s, applying the same tab/width rules as [Measurer.Width] but starting
// from an arbitrary column rather than 0 — used when measuring a part that
// does not begin at the start of a line.
func (m *Measurer) Column(startCol int, s string) int {
	col := startCol

	for _, r := range s {
		if r == '\t' {
			col += m.tabWidth - col%m.tabWidth

			continue
		}

		col += m.runeWidth(r)
	}

	return col
}
