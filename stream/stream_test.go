package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/position"
	"github.com/prettyjs/jsfmt/stream"
)

func span(start, end int) position.Span {
	return position.NewSpan(start, end)
}

func TestBuildReproducesTextWithUnlimitedEmptyLines(t *testing.T) {
	t.Parallel()

	text := "let a = 1;\nlet b = 2;\n"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Keyword, Value: "let", Range: span(0, 3)},
			{Kind: ast.Identifier, Value: "a", Range: span(4, 5)},
			{Kind: ast.Punctuator, Value: "=", Range: span(6, 7)},
			{Kind: ast.Numeric, Value: "1", Range: span(8, 9)},
			{Kind: ast.Punctuator, Value: ";", Range: span(9, 10)},
			{Kind: ast.Keyword, Value: "let", Range: span(11, 14)},
			{Kind: ast.Identifier, Value: "b", Range: span(15, 16)},
			{Kind: ast.Punctuator, Value: "=", Range: span(17, 18)},
			{Kind: ast.Numeric, Value: "2", Range: span(19, 20)},
			{Kind: ast.Punctuator, Value: ";", Range: span(20, 21)},
		},
	}

	opts, err := options.New(options.WithMaxEmptyLines(1 << 20))
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	assert.Equal(t, text, tl.Serialize())
}

func TestBuildCapsEmptyLines(t *testing.T) {
	t.Parallel()

	text := "a\n\n\n\nb\n"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Identifier, Value: "a", Range: span(0, 1)},
			{Kind: ast.Identifier, Value: "b", Range: span(5, 6)},
		},
	}

	opts, err := options.New(options.WithMaxEmptyLines(0))
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	assert.Equal(t, "a\nb\n", tl.Serialize())
}

func TestBuildPreservesIndentVerbatim(t *testing.T) {
	t.Parallel()

	text := "if (x) {\n\tfoo;\n}\n"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Keyword, Value: "if", Range: span(0, 2)},
			{Kind: ast.Punctuator, Value: "(", Range: span(3, 4)},
			{Kind: ast.Identifier, Value: "x", Range: span(4, 5)},
			{Kind: ast.Punctuator, Value: ")", Range: span(5, 6)},
			{Kind: ast.Punctuator, Value: "{", Range: span(7, 8)},
			{Kind: ast.Identifier, Value: "foo", Range: span(10, 13)},
			{Kind: ast.Punctuator, Value: ";", Range: span(13, 14)},
			{Kind: ast.Punctuator, Value: "}", Range: span(15, 16)},
		},
	}

	opts, err := options.New(options.WithMaxEmptyLines(1 << 20))
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	assert.Equal(t, text, tl.Serialize())
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	text := "a    +    b"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Identifier, Value: "a", Range: span(0, 1)},
			{Kind: ast.Punctuator, Value: "+", Range: span(5, 6)},
			{Kind: ast.Identifier, Value: "b", Range: span(10, 11)},
		},
	}

	opts, err := options.New(options.WithCollapseWhitespace(true))
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	assert.Equal(t, "a + b", tl.Serialize())
}

func TestQuoteNormalization(t *testing.T) {
	t.Parallel()

	text := `'it\'s "quoted"'`
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.String, Value: text, Range: span(0, len(text))},
		},
	}

	opts, err := options.New(options.WithQuotes(options.Double))
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	first, _ := tl.First()
	assert.Equal(t, `"it's \"quoted\""`, first.Value())
}

func TestIndentIncreaserAndDecreaser(t *testing.T) {
	t.Parallel()

	text := "{\n  a;\n}"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Punctuator, Value: "{", Range: span(0, 1)},
			{Kind: ast.Identifier, Value: "a", Range: span(4, 5)},
			{Kind: ast.Punctuator, Value: ";", Range: span(5, 6)},
			{Kind: ast.Punctuator, Value: "}", Range: span(7, 8)},
		},
	}

	opts, err := options.New()
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	open, ok := tl.First()
	require.True(t, ok)
	assert.True(t, tl.IsIndentIncreaser(open))

	closeBrace, ok := tl.Last()
	require.True(t, ok)
	assert.True(t, tl.IsIndentDecreaser(closeBrace))
}

func TestIsIndent(t *testing.T) {
	t.Parallel()

	text := "a\n  b"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Identifier, Value: "a", Range: span(0, 1)},
			{Kind: ast.Identifier, Value: "b", Range: span(4, 5)},
		},
	}

	opts, err := options.New()
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	b, ok := tl.Last()
	require.True(t, ok)

	indent, ok := tl.Previous(b)
	require.True(t, ok)
	assert.True(t, tl.IsIndent(indent))
}

func TestBoundaryExcludesTrailingSemicolon(t *testing.T) {
	t.Parallel()

	text := "foo;"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Identifier, Value: "foo", Range: span(0, 3)},
			{Kind: ast.Punctuator, Value: ";", Range: span(3, 4)},
		},
	}

	opts, err := options.New()
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	first, last, ok := tl.Boundary(0, 4)
	require.True(t, ok)
	assert.Equal(t, "foo", first.Value())
	assert.Equal(t, "foo", last.Value())
}

func TestTemplateOpenClose(t *testing.T) {
	t.Parallel()

	text := "`a${b}c`"
	res := &ast.Result{
		Tokens: []ast.Token{
			{Kind: ast.Template, Value: "`a${", Range: span(0, 4)},
			{Kind: ast.Identifier, Value: "b", Range: span(4, 5)},
			{Kind: ast.Template, Value: "}c`", Range: span(5, 8)},
		},
	}

	opts, err := options.New()
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)

	head, ok := tl.First()
	require.True(t, ok)
	assert.True(t, tl.IsTemplateOpen(head))
	assert.False(t, tl.IsTemplateClose(head))

	tail, ok := tl.Last()
	require.True(t, ok)
	assert.True(t, tl.IsTemplateClose(tail))
	assert.False(t, tl.IsTemplateOpen(tail))
}
