package parts

import (
	"strings"
	"unicode/utf8"

	"github.com/prettyjs/jsfmt/ast"
)

// Kind discriminates the category of a [Part].
type Kind int

// Part kinds.
const (
	// KindToken is a lexical token: keyword, identifier, punctuator, string,
	// numeric, boolean, null, template chunk, or regexp.
	KindToken Kind = iota
	// KindLineComment is a "//" comment, which always ends at a line break.
	KindLineComment
	// KindBlockComment is a "/* ... */" comment, which may itself span lines.
	KindBlockComment
	// KindHashbang is a "#!" hashbang line at the start of a file.
	KindHashbang
	// KindWhitespace is horizontal whitespace (spaces/tabs) between parts.
	KindWhitespace
	// KindLineBreak is a single newline between parts.
	KindLineBreak
)

// String returns the kind's name, for diagnostics and test output.
func (k Kind) String() string {
	switch k {
	case KindToken:
		return "Token"
	case KindLineComment:
		return "LineComment"
	case KindBlockComment:
		return "BlockComment"
	case KindHashbang:
		return "Hashbang"
	case KindWhitespace:
		return "Whitespace"
	case KindLineBreak:
		return "LineBreak"
	default:
		return "Unknown"
	}
}

// Part is a single element of the mutable token stream: a token, a comment,
// or a run of whitespace/a line break between them.
//
// Part identity is pointer identity, matching [github.com/prettyjs/jsfmt/orderedset]'s
// comparable-item requirement: two *Part values are the same stream element
// iff they are the same pointer, even after [Part.SetValue] mutates the
// value in place (e.g. normalizing a string's quote style).
//
// Create instances with [NewToken], [NewComment], [NewHashbang],
// [NewWhitespace], or [NewLineBreak].
type Part struct {
	kind      Kind
	value     string
	tokenKind ast.TokenKind
	node      *ast.Node
	width     int
}

// NewToken creates a token [*Part] with the given lexical kind and value,
// optionally tagged with the AST node it was derived from (nil if
// synthetic, e.g. an inserted semicolon).
func NewToken(tk ast.TokenKind, value string, node *ast.Node) *Part {
	return &Part{
		kind:      KindToken,
		value:     value,
		tokenKind: tk,
		node:      node,
		width:     width(value),
	}
}

// NewComment creates a comment [*Part]. kind must be
// [ast.LineComment] or [ast.BlockComment].
func NewComment(kind ast.CommentKind, value string) *Part {
	k := KindLineComment
	if kind == ast.BlockComment {
		k = KindBlockComment
	}

	return &Part{kind: k, value: value, width: width(value)}
}

// NewHashbang creates a hashbang-line [*Part].
func NewHashbang(value string) *Part {
	return &Part{kind: KindHashbang, value: value, width: width(value)}
}

// NewWhitespace creates a whitespace [*Part] holding value (typically one or
// more spaces, never a newline).
func NewWhitespace(value string) *Part {
	return &Part{kind: KindWhitespace, value: value, width: width(value)}
}

// NewLineBreak creates a single-newline [*Part].
func NewLineBreak() *Part {
	return &Part{kind: KindLineBreak, value: "\n", width: 0}
}

// width returns the rune count of s, excluding a trailing newline, matching
// how a part's on-screen column width is measured.
func width(s string) int {
	return utf8.RuneCountInString(strings.TrimSuffix(s, "\n"))
}

// Kind returns the part's [Kind].
func (p *Part) Kind() Kind {
	return p.kind
}

// Value returns the part's literal text.
func (p *Part) Value() string {
	return p.value
}

// SetValue mutates the part's text in place, recomputing its cached width.
// Identity (pointer) is preserved, so the part remains the same
// [github.com/prettyjs/jsfmt/orderedset] member after the call.
func (p *Part) SetValue(value string) {
	p.value = value
	p.width = width(value)
}

// TokenKind returns the part's lexical kind and true, or the zero value and
// false if the part is not [KindToken].
func (p *Part) TokenKind() (ast.TokenKind, bool) {
	if p.kind != KindToken {
		return 0, false
	}

	return p.tokenKind, true
}

// Node returns the AST node this part was derived from, or nil for
// synthetic parts (whitespace, line breaks, inserted punctuation).
func (p *Part) Node() *ast.Node {
	return p.node
}

// Width returns the cached display width of the part's value, excluding any
// trailing newline.
func (p *Part) Width() int {
	return p.width
}

// IsToken reports whether the part is a lexical token.
func (p *Part) IsToken() bool {
	return p.kind == KindToken
}

// IsComment reports whether the part is a line or block comment.
func (p *Part) IsComment() bool {
	return p.kind == KindLineComment || p.kind == KindBlockComment
}

// IsLineComment reports whether the part is a "//" comment.
func (p *Part) IsLineComment() bool {
	return p.kind == KindLineComment
}

// IsBlockComment reports whether the part is a "/* */" comment.
func (p *Part) IsBlockComment() bool {
	return p.kind == KindBlockComment
}

// IsWhitespace reports whether the part is horizontal whitespace.
func (p *Part) IsWhitespace() bool {
	return p.kind == KindWhitespace
}

// IsLineBreak reports whether the part is a line break.
func (p *Part) IsLineBreak() bool {
	return p.kind == KindLineBreak
}

// IsWhitespaceOrLineBreak reports whether the part is whitespace or a line
// break, i.e. it contributes no visible content.
func (p *Part) IsWhitespaceOrLineBreak() bool {
	return p.kind == KindWhitespace || p.kind == KindLineBreak
}

// IsPunctuator reports whether the part is a token of kind [ast.Punctuator].
func (p *Part) IsPunctuator() bool {
	tk, ok := p.TokenKind()

	return ok && tk == ast.Punctuator
}

// Clone returns a new, distinct *Part with the same kind, value, token kind,
// and node reference, but independent identity.
func (p *Part) Clone() *Part {
	return &Part{
		kind:      p.kind,
		value:     p.value,
		tokenKind: p.tokenKind,
		node:      p.node,
		width:     p.width,
	}
}

// String returns the part's literal text, making *Part satisfy [fmt.Stringer].
func (p *Part) String() string {
	return p.value
}
