package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
	"github.com/prettyjs/jsfmt/visitor"
)

func sp(a, b int) position.Span { return position.NewSpan(a, b) }

func sampleTree() *ast.Node {
	arg0 := ast.NewNode("Identifier", sp(0, 1)).Set("name", "a")
	arg1 := ast.NewNode("Identifier", sp(2, 3)).Set("name", "b")
	callee := ast.NewNode("Identifier", sp(4, 5)).Set("name", "f")

	return ast.NewNode("CallExpression", sp(0, 6)).
		Set("callee", callee).
		Set("arguments", []*ast.Node{arg0, arg1})
}

func TestVisitOrderAndParent(t *testing.T) {
	t.Parallel()

	keys := ast.VisitorKeys{
		"CallExpression": {"callee", "arguments"},
	}

	var order []string

	var parents []string

	v := visitor.New(keys)
	v.Visit(sampleTree(), func(node, parent *ast.Node) {
		order = append(order, node.Kind+":"+node.String("name"))

		if parent != nil {
			parents = append(parents, parent.Kind)
		} else {
			parents = append(parents, "<root>")
		}
	})

	assert.Equal(t, []string{"CallExpression:", "Identifier:f", "Identifier:a", "Identifier:b"}, order)
	assert.Equal(t, []string{"<root>", "CallExpression", "CallExpression", "CallExpression"}, parents)
}

func TestVisitFallsBackWithoutKeys(t *testing.T) {
	t.Parallel()

	v := visitor.New(ast.VisitorKeys{})

	var count int

	v.Visit(sampleTree(), func(node, parent *ast.Node) {
		count++
	})

	assert.Equal(t, 4, count)
}

func TestTaskVisitorComposesPasses(t *testing.T) {
	t.Parallel()

	keys := ast.VisitorKeys{"CallExpression": {"callee", "arguments"}}

	var log []string

	passA := func(ctx string) visitor.HandlerMap {
		return visitor.HandlerMap{
			"Identifier": func(node, parent *ast.Node) {
				log = append(log, ctx+":A:"+node.String("name"))
			},
		}
	}
	passB := func(ctx string) visitor.HandlerMap {
		return visitor.HandlerMap{
			"Identifier": func(node, parent *ast.Node) {
				log = append(log, ctx+":B:"+node.String("name"))
			},
		}
	}

	tv := visitor.NewTaskVisitor(keys, "ctx", passA, passB)
	tv.Run(sampleTree())

	assert.Equal(t, []string{
		"ctx:A:f", "ctx:B:f",
		"ctx:A:a", "ctx:B:a",
		"ctx:A:b", "ctx:B:b",
	}, log)
}
