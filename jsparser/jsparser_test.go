package jsparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/jsparser"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/stream"
)

func parse(t *testing.T, text string) *ast.Result {
	t.Helper()

	res, err := jsparser.New().Parse(text, ast.ParseOptions{})
	require.NoError(t, err)
	require.NotNil(t, res.Root)

	return res
}

func TestParseVariableDeclarationWithBinaryInit(t *testing.T) {
	t.Parallel()

	res := parse(t, "let x = 1 + 2;")

	body := res.Root.Children("body")
	require.Len(t, body, 1)

	decl := body[0]
	assert.Equal(t, "VariableDeclaration", decl.Kind)
	assert.Equal(t, "let", decl.String("kind"))

	declarators := decl.Children("declarations")
	require.Len(t, declarators, 1)

	init := declarators[0].Child("init")
	require.NotNil(t, init)
	assert.Equal(t, "BinaryExpression", init.Kind)
	assert.Equal(t, "+", init.String("operator"))
}

func TestParseFunctionDeclaration(t *testing.T) {
	t.Parallel()

	res := parse(t, "function add(a, b) { return a + b; }")

	body := res.Root.Children("body")
	require.Len(t, body, 1)

	fn := body[0]
	assert.Equal(t, "FunctionDeclaration", fn.Kind)
	assert.Equal(t, "add", fn.Child("id").String("name"))
	assert.Len(t, fn.Children("params"), 2)

	stmts := fn.Child("body").Children("body")
	require.Len(t, stmts, 1)
	assert.Equal(t, "ReturnStatement", stmts[0].Kind)
}

func TestParseArrowFunctionWithParens(t *testing.T) {
	t.Parallel()

	res := parse(t, "const f = (a, b) => a + b;")

	decl := res.Root.Children("body")[0]
	init := decl.Children("declarations")[0].Child("init")

	require.Equal(t, "ArrowFunctionExpression", init.Kind)
	assert.Len(t, init.Children("params"), 2)
	assert.Equal(t, "BinaryExpression", init.Child("body").Kind)
}

func TestParseArrowFunctionSingleParamNoParens(t *testing.T) {
	t.Parallel()

	res := parse(t, "const double = x => x * 2;")

	init := res.Root.Children("body")[0].Children("declarations")[0].Child("init")

	require.Equal(t, "ArrowFunctionExpression", init.Kind)
	params := init.Children("params")
	require.Len(t, params, 1)
	assert.Equal(t, "x", params[0].String("name"))
}

func TestParseCallChainAndMember(t *testing.T) {
	t.Parallel()

	res := parse(t, "a.b.c(1, 2).d;")

	expr := res.Root.Children("body")[0].Child("expression")
	require.Equal(t, "MemberExpression", expr.Kind)

	call := expr.Child("object")
	require.Equal(t, "CallExpression", call.Kind)
	assert.Len(t, call.Children("arguments"), 2)
}

func TestParseIfElseAndBlocks(t *testing.T) {
	t.Parallel()

	res := parse(t, "if (x) { y(); } else { z(); }")

	stmt := res.Root.Children("body")[0]
	require.Equal(t, "IfStatement", stmt.Kind)
	assert.Equal(t, "BlockStatement", stmt.Child("consequent").Kind)
	assert.Equal(t, "BlockStatement", stmt.Child("alternate").Kind)
}

func TestParseForOfDestructuring(t *testing.T) {
	t.Parallel()

	res := parse(t, "for (const [k, v] of entries) { use(k, v); }")

	stmt := res.Root.Children("body")[0]
	require.Equal(t, "ForOfStatement", stmt.Kind)

	left := stmt.Child("left")
	require.Equal(t, "VariableDeclaration", left.Kind)

	id := left.Children("declarations")[0].Child("id")
	assert.Equal(t, "ArrayPattern", id.Kind)
	assert.Len(t, id.Children("elements"), 2)
}

func TestParseObjectPatternParam(t *testing.T) {
	t.Parallel()

	res := parse(t, "function f({ a, b: c }) { return a; }")

	fn := res.Root.Children("body")[0]
	params := fn.Children("params")
	require.Len(t, params, 1)
	assert.Equal(t, "ObjectPattern", params[0].Kind)
	assert.Len(t, params[0].Children("properties"), 2)
}

func TestParseTemplateLiteralInterpolation(t *testing.T) {
	t.Parallel()

	res := parse(t, "const s = `a ${x + 1} b`;")

	init := res.Root.Children("body")[0].Children("declarations")[0].Child("init")
	require.Equal(t, "TemplateLiteral", init.Kind)

	exprs := init.Children("expressions")
	require.Len(t, exprs, 1)
	assert.Equal(t, "BinaryExpression", exprs[0].Kind)
}

func TestParseImportExport(t *testing.T) {
	t.Parallel()

	res := parse(t, `import foo, { bar as baz } from "mod"; export { foo };`)

	body := res.Root.Children("body")
	require.Len(t, body, 2)

	imp := body[0]
	require.Equal(t, "ImportDeclaration", imp.Kind)
	specs := imp.Children("specifiers")
	require.Len(t, specs, 2)
	assert.Equal(t, "ImportDefaultSpecifier", specs[0].Kind)
	assert.Equal(t, "ImportSpecifier", specs[1].Kind)

	exp := body[1]
	assert.Equal(t, "ExportNamedDeclaration", exp.Kind)
	assert.Len(t, exp.Children("specifiers"), 1)
}

// TestTokenStreamCoversEveryByte parses a snippet and rebuilds the part
// stream with whitespace collapsing disabled, asserting the stream
// reproduces the source exactly — a gap anywhere (e.g. a template chunk
// whose token range doesn't swallow embedded spaces) would desync this.
func TestTokenStreamCoversEveryByte(t *testing.T) {
	t.Parallel()

	text := "const s = `hi ${name}!`;\nfunction f(a, b) {\n  return a + b;\n}\n"

	res, err := jsparser.New().Parse(text, ast.ParseOptions{})
	require.NoError(t, err)

	opts, err := options.New(options.WithCollapseWhitespace(false))
	require.NoError(t, err)

	tl := stream.Build(res, text, opts)
	assert.Equal(t, text, tl.Serialize())
}
