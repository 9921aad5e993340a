// Package highlight provides types and constants for JS syntax highlighting.
package highlight

import (
	"charm.land/lipgloss/v2"
)

// Mode represents the color scheme mode of a theme.
type Mode int

// Color scheme modes.
//
//nolint:grouper // Enum.
const (
	Light Mode = iota
	Dark
)

// Style identifies a style category for JS highlighting.
// Used as keys in [Styles] maps.
type Style int

// Style constants for JS highlighting.
// Names follow Pygments token naming conventions where applicable.
//
//nolint:grouper // Enum.
const (
	Text                Style = iota // Default/fallback style.
	Comment                          // Line and block comments.
	CommentHashbang                  // Hashbang line (#!/usr/bin/env node).
	Generic                          // Generic tokens (parent only).
	GenericDeleted                   // Lines deleted in diff (-).
	GenericError                     // Error tokens.
	GenericErrorInvalid              // Invalid tokens (parse errors).
	GenericInserted                  // Lines inserted in diff (+).
	Keyword                          // Keywords (parent only).
	KeywordControl                   // Control-flow keywords (if, for, return, ...).
	KeywordDeclaration               // Declaration keywords (let, const, var, function, class).
	KeywordOperator                  // Word operators (typeof, instanceof, in, of, new).
	Literal                          // Literal values (parent only).
	LiteralBoolean                   // true / false.
	LiteralNull                      // null.
	LiteralNumber                    // Number literals.
	LiteralRegExp                    // Regular expression literals.
	LiteralString                    // String literals (parent only).
	LiteralStringDouble              // Double-quoted strings.
	LiteralStringSingle              // Single-quoted strings.
	LiteralStringTemplate            // Template literals, including ${...} delimiters.
	Name                             // Names and references (parent only).
	NameFunction                     // Function/method names at declaration or call sites.
	NameProperty                     // Object property and member-access names.
	Punctuation                      // Punctuation (parent only).
	PunctuationBracket               // Grouping punctuation: ( ) [ ] { }.
	PunctuationDelimiter             // Separators: , ; .
	PunctuationOperator              // Operators: + - * / = == ... and => .
)

// styleParent defines the inheritance hierarchy for styles.
// Each style maps to its parent style. [Text] is the root and has no parent.
var styleParent = map[Style]Style{
	Comment:                Text,
	CommentHashbang:        Comment,
	Generic:                Text,
	GenericDeleted:         Generic,
	GenericError:           Generic,
	GenericErrorInvalid:    GenericError,
	GenericInserted:        Generic,
	Keyword:                Text,
	KeywordControl:         Keyword,
	KeywordDeclaration:     Keyword,
	KeywordOperator:        Keyword,
	Literal:                Text,
	LiteralBoolean:         Literal,
	LiteralNull:            Literal,
	LiteralNumber:          Literal,
	LiteralRegExp:          Literal,
	LiteralString:          Literal,
	LiteralStringDouble:    LiteralString,
	LiteralStringSingle:    LiteralString,
	LiteralStringTemplate:  LiteralString,
	Name:                   Text,
	NameFunction:           Name,
	NameProperty:           Name,
	Punctuation:            Text,
	PunctuationBracket:     Punctuation,
	PunctuationDelimiter:   Punctuation,
	PunctuationOperator:    Punctuation,
}

// parent returns the parent [Style] for inheritance lookup.
// Returns [Text] if no explicit parent is defined.
func (s Style) parent() Style {
	if p, ok := styleParent[s]; ok {
		return p
	}

	return Text
}

// Styles defines styles for JS highlighting.
type Styles map[Style]lipgloss.Style

// StylesOption configures a [Styles] map during construction.
// See [Set] for the primary option.
type StylesOption func(map[Style]lipgloss.Style)

// Set returns a [StylesOption] that overrides the style for the given [Style].
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func Set(s Style, ls lipgloss.Style) StylesOption {
	return func(m map[Style]lipgloss.Style) {
		m[s] = ls
	}
}

// NewStyles creates a [Styles] map with pre-computed entries.
// The base style is used for [Text] and inherited by all other styles.
// Use [Set] options to override specific styles.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func NewStyles(base lipgloss.Style, opts ...StylesOption) Styles {
	overrides := make(map[Style]lipgloss.Style)
	for _, opt := range opts {
		opt(overrides)
	}

	// Resolve walks up the inheritance chain to find a defined style.
	resolve := func(s Style) lipgloss.Style {
		current := s
		for {
			if ls, ok := overrides[current]; ok {
				return ls
			}

			if current == Text {
				break
			}

			current = current.parent()
		}

		return base
	}

	resolved := make(Styles, len(styleParent)+1)

	resolved[Text] = resolve(Text)
	for st := range styleParent {
		resolved[st] = resolve(st)
	}

	return resolved
}

// Style returns the [lipgloss.Style] for the given [Style] category.
// Returns an empty [lipgloss.Style] if the style is not defined.
func (s Styles) Style(st Style) *lipgloss.Style {
	if ls, ok := s[st]; ok {
		return &ls
	}

	return &lipgloss.Style{}
}
