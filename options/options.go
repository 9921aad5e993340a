package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Quotes selects the configured string-literal delimiter.
type Quotes string

// Supported [Quotes] values.
const (
	Double Quotes = "double"
	Single Quotes = "single"
)

// Char returns the literal delimiter character for q.
func (q Quotes) Char() byte {
	if q == Single {
		return '\''
	}

	return '"'
}

// Indent is either an integer column count (expanded to that many spaces) or
// a literal indent string (e.g. a tab).
//
// The zero value is an unset indent; use [Options] defaults or [WithIndent]
// to populate it.
type Indent struct {
	width   int
	literal string
	isWidth bool
}

// IndentWidth creates a space-width [Indent] of n columns.
func IndentWidth(n int) Indent {
	return Indent{width: n, isWidth: true}
}

// IndentLiteral creates an [Indent] using s verbatim as one indent level
// (e.g. "\t").
func IndentLiteral(s string) Indent {
	return Indent{literal: s}
}

// Unit returns the literal string inserted for one indent level.
func (i Indent) Unit() string {
	if i.isWidth {
		return strings.Repeat(" ", i.width)
	}

	return i.literal
}

// UnmarshalYAML implements goccy/go-yaml's BytesUnmarshaler, accepting
// either a YAML integer (column width) or a YAML string (literal unit).
func (i *Indent) UnmarshalYAML(b []byte) error {
	s := strings.TrimSpace(string(b))

	if n, ok := parseUint(s); ok {
		*i = IndentWidth(n)

		return nil
	}

	*i = IndentLiteral(unquote(s))

	return nil
}

// MarshalYAML implements goccy/go-yaml's BytesMarshaler.
func (i Indent) MarshalYAML() ([]byte, error) {
	if i.isWidth {
		return []byte(fmt.Sprintf("%d", i.width)), nil
	}

	return []byte(fmt.Sprintf("%q", i.literal)), nil
}

func parseUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	n := 0

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}

		n = n*10 + int(r-'0')
	}

	return n, true
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}

	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}

	return s
}

// Options is the formatter's full style configuration (spec data model §3).
type Options struct {
	// Indent is the unit inserted per nesting level.
	Indent Indent `json:"indent" yaml:"indent"`
	// TabWidth affects column measurement of literal tab characters only.
	TabWidth int `json:"tabWidth" yaml:"tabWidth"`
	// LineEndings is validated as non-empty; it is not applied to the
	// output: every LineBreak part holds "\n" whatever its value.
	LineEndings string `json:"lineEndings" yaml:"lineEndings"`
	// Quotes selects the configured string-literal delimiter.
	Quotes Quotes `json:"quotes" yaml:"quotes"`
	// Semicolons, when true, inserts statement-terminating semicolons where
	// optional; when false, removes them.
	Semicolons bool `json:"semicolons" yaml:"semicolons"`
	// CollapseWhitespace normalizes inline whitespace runs to a single space.
	CollapseWhitespace bool `json:"collapseWhitespace" yaml:"collapseWhitespace"`
	// MaxEmptyLines caps consecutive LineBreak parts (blank lines + 1).
	MaxEmptyLines int `json:"maxEmptyLines" yaml:"maxEmptyLines"`
	// TrailingCommas, when true, emits a trailing comma on wrapped
	// aggregates.
	TrailingCommas bool `json:"trailingCommas" yaml:"trailingCommas"`
	// MaxLineLength is the column budget that triggers wrap decisions.
	MaxLineLength int `json:"maxLineLength" yaml:"maxLineLength"`
}

// Option configures [Options] via [New].
type Option func(*Options)

// WithIndent sets the indent unit.
func WithIndent(i Indent) Option {
	return func(o *Options) { o.Indent = i }
}

// WithTabWidth sets the tab column width.
func WithTabWidth(n int) Option {
	return func(o *Options) { o.TabWidth = n }
}

// WithLineEndings sets [Options.LineEndings].
func WithLineEndings(s string) Option {
	return func(o *Options) { o.LineEndings = s }
}

// WithQuotes sets the configured string quote style.
func WithQuotes(q Quotes) Option {
	return func(o *Options) { o.Quotes = q }
}

// WithSemicolons toggles semicolon insertion vs. removal.
func WithSemicolons(b bool) Option {
	return func(o *Options) { o.Semicolons = b }
}

// WithCollapseWhitespace toggles inline whitespace collapsing.
func WithCollapseWhitespace(b bool) Option {
	return func(o *Options) { o.CollapseWhitespace = b }
}

// WithMaxEmptyLines sets the consecutive-blank-line cap.
func WithMaxEmptyLines(n int) Option {
	return func(o *Options) { o.MaxEmptyLines = n }
}

// WithTrailingCommas toggles trailing-comma emission on wrapped aggregates.
func WithTrailingCommas(b bool) Option {
	return func(o *Options) { o.TrailingCommas = b }
}

// WithMaxLineLength sets the wrap column budget.
func WithMaxLineLength(n int) Option {
	return func(o *Options) { o.MaxLineLength = n }
}

// Default returns the built-in style: two-space indent, LF endings, double
// quotes, semicolons inserted, whitespace collapsed, at most one blank line,
// trailing commas on wraps, 80-column wrap budget.
func Default() Options {
	return Options{
		Indent:             IndentWidth(2),
		TabWidth:           2,
		LineEndings:        "\n",
		Quotes:             Double,
		Semicolons:         true,
		CollapseWhitespace: true,
		MaxEmptyLines:      1,
		TrailingCommas:     true,
		MaxLineLength:      80,
	}
}

// New builds [Options] starting from [Default] and applying opts in order,
// returning an [Error] if the result is invalid.
func New(opts ...Option) (Options, error) {
	o := Default()

	for _, opt := range opts {
		opt(&o)
	}

	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// Validate reports the first invalid field found, wrapped as an [Error].
func (o Options) Validate() error {
	switch {
	case o.Quotes != Double && o.Quotes != Single:
		return newError("quotes", fmt.Sprintf("must be %q or %q, got %q", Double, Single, o.Quotes))
	case o.TabWidth <= 0:
		return newError("tabWidth", "must be a positive integer")
	case o.MaxEmptyLines < 0:
		return newError("maxEmptyLines", "must not be negative")
	case o.MaxLineLength <= 0:
		return newError("maxLineLength", "must be a positive integer")
	case o.LineEndings == "":
		return newError("lineEndings", "must not be empty")
	case o.Indent.isWidth && o.Indent.width < 0:
		return newError("indent", "width must not be negative")
	case !o.Indent.isWidth && o.Indent.literal == "":
		return newError("indent", "literal indent must not be empty")
	default:
		return nil
	}
}

// Error reports an invalid option value (spec §7 OptionError); raised at
// Formatter construction, never mid-format.
type Error struct {
	Field  string
	Reason string
}

func newError(field, reason string) *Error {
	return &Error{Field: field, Reason: reason}
}

func (e *Error) Error() string {
	return fmt.Sprintf("options: invalid %s: %s", e.Field, e.Reason)
}

// IsOptionError reports whether err is (or wraps) an [Error].
func IsOptionError(err error) bool {
	var e *Error

	return errors.As(err, &e)
}
