package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

func TestNodeChildAndChildren(t *testing.T) {
	t.Parallel()

	arg0 := ast.NewNode("Identifier", position.NewSpan(0, 1)).Set("name", "a")
	arg1 := ast.NewNode("Identifier", position.NewSpan(3, 4)).Set("name", "b")

	call := ast.NewNode("CallExpression", position.NewSpan(0, 5)).
		Set("callee", ast.NewNode("Identifier", position.NewSpan(0, 1)).Set("name", "f")).
		Set("arguments", []*ast.Node{arg0, arg1})

	callee := call.Child("callee")
	assert.Equal(t, "f", callee.String("name"))

	args := call.Children("arguments")
	assert.Len(t, args, 2)
	assert.Equal(t, "a", args[0].String("name"))

	assert.Nil(t, call.Child("nonexistent"))
	assert.Nil(t, call.Children("nonexistent"))
}

func TestNodeChildrenSingular(t *testing.T) {
	t.Parallel()

	n := ast.NewNode("ExpressionStatement", position.NewSpan(0, 1)).
		Set("expression", ast.NewNode("Identifier", position.NewSpan(0, 1)))

	children := n.Children("expression")
	assert.Len(t, children, 1)
}

func TestVisitorKeysFallback(t *testing.T) {
	t.Parallel()

	vk := ast.VisitorKeys{
		"CallExpression": {"callee", "arguments"},
	}

	n := ast.NewNode("UnknownKind", position.NewSpan(0, 0)).Set("x", 1).Set("y", 2)

	assert.Equal(t, []string{"callee", "arguments"}, vk.FieldsFor("CallExpression", n))
	assert.ElementsMatch(t, []string{"x", "y"}, vk.FieldsFor("UnknownKind", n))
}

func TestNodeScalarAccessors(t *testing.T) {
	t.Parallel()

	n := ast.NewNode("Literal", position.NewSpan(0, 1)).Set("value", true)

	assert.True(t, n.Bool("value"))
	assert.False(t, ast.NewNode("Literal", position.NewSpan(0, 0)).Bool("value"))

	v, ok := n.Scalar("value")
	assert.True(t, ok)
	assert.Equal(t, true, v)
}
