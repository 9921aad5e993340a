package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("FunctionDeclaration", wrapFunction, noWrapFunction)
	registerWrap("FunctionExpression", wrapFunction, noWrapFunction)
	registerWrap("ArrowFunctionExpression", wrapArrow, noWrapArrow)
}

// wrapArrow dispatches to the function-expression strategy per spec §4.5.2
// ("arrow dispatches to function-expression"), skipping concise-body arrows
// whose body is not a block.
func wrapArrow(l *layout.Layout, node *ast.Node) {
	if node.Child("body").Kind != "BlockStatement" {
		return
	}

	wrapFunction(l, node)
}

func noWrapArrow(l *layout.Layout, node *ast.Node) {
	if node.Child("body").Kind != "BlockStatement" {
		return
	}

	noWrapFunction(l, node)
}

// wrapFunction implements spec §4.5's function wrap strategy: the body
// always wraps; the parameter list wraps additionally when it overflows.
func wrapFunction(l *layout.Layout, node *ast.Node) {
	body := node.Child("body")
	if body == nil {
		return
	}

	opener := l.FirstToken(body)
	closer := l.LastToken(body)

	if opener == nil || closer == nil {
		return
	}

	base := l.GetIndentLevel(l.FirstToken(node))
	level := base + 1

	l.LineBreakAfter(opener)
	l.LineBreakBefore(closer)
	l.IndentLevelBetween(opener, closer, level)
	l.IndentLevel(closer, base)

	if l.IsLineTooLong(node) {
		wrapParams(l, node, level)
	}
}

// noWrapFunction implements spec §4.5's function noWrap strategy for the
// parameter list; the body braces themselves are never collapsed.
func noWrapFunction(l *layout.Layout, node *ast.Node) {
	params := node.Children("params")

	for i, p := range params {
		if i == len(params)-1 {
			continue
		}

		comma, ok := l.NextToken(p)
		if !ok || comma.Value() != "," {
			continue
		}

		l.NoLineBreakAfter(comma)
		l.NoSpaceBefore(comma)
		l.SpaceAfter(comma)
	}
}

// wrapParams breaks a function's parameter list across lines, one parameter
// per line indented one level deeper than the function itself.
func wrapParams(l *layout.Layout, node *ast.Node, level int) {
	params := node.Children("params")
	if len(params) == 0 {
		return
	}

	opener, ok := l.FindPrevious("(", params[0])
	if !ok {
		return
	}

	last := params[len(params)-1]

	closer, ok := l.FindNext(")", last)
	if !ok {
		return
	}

	l.LineBreakAfter(opener)
	l.LineBreakBefore(closer)

	for i, p := range params {
		if i == len(params)-1 {
			l.CommaAfter(p)

			continue
		}

		l.CommaAfter(p)
		breakAfterElement(l, p)
	}

	l.IndentLevelBetween(opener, closer, level)
	l.IndentLevel(closer, level-1)
}
