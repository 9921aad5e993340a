package jsparser

import (
	"fmt"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

// cursor is a read-only scan position over a flat token array, shared by
// the expression and statement parsers.
type cursor struct {
	tokens []ast.Token
	pos    int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.tokens)
}

// cur returns the token at the cursor, or a synthetic EOF sentinel past
// the end so callers never index out of range.
func (c *cursor) cur() ast.Token {
	if c.eof() {
		if len(c.tokens) == 0 {
			return ast.Token{}
		}

		last := c.tokens[len(c.tokens)-1]

		return ast.Token{Range: position.NewSpan(last.Range.End, last.Range.End)}
	}

	return c.tokens[c.pos]
}

func (c *cursor) peekAt(offset int) ast.Token {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.tokens) {
		return ast.Token{}
	}

	return c.tokens[idx]
}

func (c *cursor) advance() ast.Token {
	tok := c.cur()
	if !c.eof() {
		c.pos++
	}

	return tok
}

// is reports whether the current token's literal value matches any of
// values (used for both punctuators and keywords, which carry their
// spelling as Value).
func (c *cursor) is(values ...string) bool {
	cur := c.cur().Value
	for _, v := range values {
		if cur == v {
			return true
		}
	}

	return false
}

func (c *cursor) isKind(kind ast.TokenKind) bool {
	return !c.eof() && c.cur().Kind == kind
}

func (c *cursor) expect(value string) (ast.Token, error) {
	if !c.is(value) {
		return ast.Token{}, fmt.Errorf("jsparser: expected %q, got %q at offset %d", value, c.cur().Value, c.cur().Range.Start)
	}

	return c.advance(), nil
}
