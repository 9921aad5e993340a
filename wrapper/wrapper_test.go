package wrapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/position"
	"github.com/prettyjs/jsfmt/stream"
	"github.com/prettyjs/jsfmt/wrapper"
)

func sp(a, b int) position.Span { return position.NewSpan(a, b) }

// buildArray builds "[1,2,3]" as an ArrayExpression and returns its Layout.
func buildArray(t *testing.T, opts options.Options) (*layout.Layout, *ast.Node) {
	t.Helper()

	text := "[1,2,3]"
	el0 := ast.NewNode("Literal", sp(1, 2)).Set("value", float64(1))
	el1 := ast.NewNode("Literal", sp(3, 4)).Set("value", float64(2))
	el2 := ast.NewNode("Literal", sp(5, 6)).Set("value", float64(3))
	arr := ast.NewNode("ArrayExpression", sp(0, 7)).Set("elements", []*ast.Node{el0, el1, el2})

	res := &ast.Result{
		Root: arr,
		Tokens: []ast.Token{
			{Kind: ast.Punctuator, Value: "[", Range: sp(0, 1)},
			{Kind: ast.Numeric, Value: "1", Range: sp(1, 2)},
			{Kind: ast.Punctuator, Value: ",", Range: sp(2, 3)},
			{Kind: ast.Numeric, Value: "2", Range: sp(3, 4)},
			{Kind: ast.Punctuator, Value: ",", Range: sp(4, 5)},
			{Kind: ast.Numeric, Value: "3", Range: sp(5, 6)},
			{Kind: ast.Punctuator, Value: "]", Range: sp(6, 7)},
		},
		VisitorKeys: ast.VisitorKeys{
			"ArrayExpression": {"elements"},
		},
	}

	tl := stream.Build(res, text, opts)
	l := layout.New(tl, arr, res.VisitorKeys, opts)

	w, n := wrapper.Catalog()
	l.SetWrapCatalog(w, n)

	return l, arr
}

func TestWrapArrayBreaksAndIndents(t *testing.T) {
	t.Parallel()

	opts, err := options.New(options.WithTrailingCommas(true))
	require.NoError(t, err)

	l, arr := buildArray(t, opts)

	l.Wrap(arr)

	assert.Equal(t, "[\n  1,\n  2,\n  3,\n]", l.TokenList().Serialize())
}

func TestWrapArrayIdempotent(t *testing.T) {
	t.Parallel()

	opts, err := options.New(options.WithTrailingCommas(true))
	require.NoError(t, err)

	l, arr := buildArray(t, opts)

	l.Wrap(arr)
	first := l.TokenList().Serialize()

	l.Wrap(arr)
	assert.Equal(t, first, l.TokenList().Serialize())
}

func TestNoWrapEmptyArrayCollapses(t *testing.T) {
	t.Parallel()

	opts, err := options.New()
	require.NoError(t, err)

	text := "[ ]"
	arr := ast.NewNode("ArrayExpression", sp(0, 3)).Set("elements", []*ast.Node{})

	res := &ast.Result{
		Root: arr,
		Tokens: []ast.Token{
			{Kind: ast.Punctuator, Value: "[", Range: sp(0, 1)},
			{Kind: ast.Punctuator, Value: "]", Range: sp(2, 3)},
		},
		VisitorKeys: ast.VisitorKeys{"ArrayExpression": {"elements"}},
	}

	tl := stream.Build(res, text, opts)
	l := layout.New(tl, arr, res.VisitorKeys, opts)

	w, n := wrapper.Catalog()
	l.SetWrapCatalog(w, n)

	l.NoWrap(arr)
	assert.Equal(t, "[]", l.TokenList().Serialize())
}

// buildCall builds "foo(a,b)" as a CallExpression and returns its Layout.
func buildCall(t *testing.T, opts options.Options) (*layout.Layout, *ast.Node) {
	t.Helper()

	text := "foo(a,b)"
	callee := ast.NewNode("Identifier", sp(0, 3)).Set("name", "foo")
	argA := ast.NewNode("Identifier", sp(4, 5)).Set("name", "a")
	argB := ast.NewNode("Identifier", sp(6, 7)).Set("name", "b")
	call := ast.NewNode("CallExpression", sp(0, 8)).
		Set("callee", callee).
		Set("arguments", []*ast.Node{argA, argB})

	res := &ast.Result{
		Root: call,
		Tokens: []ast.Token{
			{Kind: ast.Identifier, Value: "foo", Range: sp(0, 3)},
			{Kind: ast.Punctuator, Value: "(", Range: sp(3, 4)},
			{Kind: ast.Identifier, Value: "a", Range: sp(4, 5)},
			{Kind: ast.Punctuator, Value: ",", Range: sp(5, 6)},
			{Kind: ast.Identifier, Value: "b", Range: sp(6, 7)},
			{Kind: ast.Punctuator, Value: ")", Range: sp(7, 8)},
		},
		VisitorKeys: ast.VisitorKeys{
			"CallExpression": {"callee", "arguments"},
		},
	}

	tl := stream.Build(res, text, opts)
	l := layout.New(tl, call, res.VisitorKeys, opts)

	w, n := wrapper.Catalog()
	l.SetWrapCatalog(w, n)

	return l, call
}

func TestWrapCallBreaksArguments(t *testing.T) {
	t.Parallel()

	opts, err := options.New()
	require.NoError(t, err)

	l, call := buildCall(t, opts)

	l.Wrap(call)

	assert.Equal(t, "foo(\n  a,\n  b\n)", l.TokenList().Serialize())
}

func TestNoWrapCallCollapses(t *testing.T) {
	t.Parallel()

	opts, err := options.New()
	require.NoError(t, err)

	l, call := buildCall(t, opts)

	l.Wrap(call)
	require.Equal(t, "foo(\n  a,\n  b\n)", l.TokenList().Serialize())

	l.NoWrap(call)
	assert.Equal(t, "foo(a, b)", l.TokenList().Serialize())
}
