package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/parts"
)

func TestNewTokenWidthAndKind(t *testing.T) {
	t.Parallel()

	n := ast.NewNode("Identifier", ast.Token{}.Range)
	p := parts.NewToken(ast.Identifier, "foo", n)

	assert.Equal(t, parts.KindToken, p.Kind())
	assert.Equal(t, "foo", p.Value())
	assert.Equal(t, 3, p.Width())
	assert.True(t, p.IsToken())
	assert.Same(t, n, p.Node())

	tk, ok := p.TokenKind()
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier, tk)
}

func TestCommentKinds(t *testing.T) {
	t.Parallel()

	line := parts.NewComment(ast.LineComment, "// hi")
	block := parts.NewComment(ast.BlockComment, "/* hi */")

	assert.True(t, line.IsComment())
	assert.True(t, line.IsLineComment())
	assert.False(t, line.IsBlockComment())

	assert.True(t, block.IsComment())
	assert.True(t, block.IsBlockComment())
	assert.False(t, block.IsLineComment())
}

func TestWhitespaceAndLineBreak(t *testing.T) {
	t.Parallel()

	ws := parts.NewWhitespace("  ")
	lb := parts.NewLineBreak()

	assert.True(t, ws.IsWhitespace())
	assert.True(t, ws.IsWhitespaceOrLineBreak())
	assert.False(t, ws.IsLineBreak())

	assert.True(t, lb.IsLineBreak())
	assert.True(t, lb.IsWhitespaceOrLineBreak())
	assert.Equal(t, 0, lb.Width())
}

func TestSetValuePreservesIdentity(t *testing.T) {
	t.Parallel()

	p := parts.NewToken(ast.String, "'hi'", nil)
	before := p

	p.SetValue(`"hi"`)

	assert.Same(t, before, p)
	assert.Equal(t, `"hi"`, p.Value())
	assert.Equal(t, 4, p.Width())
}

func TestClone(t *testing.T) {
	t.Parallel()

	n := ast.NewNode("Identifier", ast.Token{}.Range)
	p := parts.NewToken(ast.Identifier, "foo", n)
	c := p.Clone()

	assert.NotSame(t, p, c)
	assert.Equal(t, p.Value(), c.Value())
	assert.Equal(t, p.Kind(), c.Kind())
	assert.Same(t, n, c.Node())
}

func TestIsPunctuator(t *testing.T) {
	t.Parallel()

	punc := parts.NewToken(ast.Punctuator, "(", nil)
	ident := parts.NewToken(ast.Identifier, "foo", nil)

	assert.True(t, punc.IsPunctuator())
	assert.False(t, ident.IsPunctuator())
}

func TestHashbang(t *testing.T) {
	t.Parallel()

	h := parts.NewHashbang("#!/usr/bin/env node")

	assert.Equal(t, parts.KindHashbang, h.Kind())
	assert.False(t, h.IsToken())
	assert.False(t, h.IsComment())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Token", parts.KindToken.String())
	assert.Equal(t, "LineBreak", parts.KindLineBreak.String())
}
