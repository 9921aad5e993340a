package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("CallExpression", wrapCall, noWrapCall)
	registerWrap("NewExpression", wrapCall, noWrapCall)
}

// wrapCall implements spec §4.5's call-expression wrap strategy.
func wrapCall(l *layout.Layout, node *ast.Node) {
	args := node.Children("arguments")
	if len(args) < 2 {
		return
	}

	callee := node.Child("callee")

	opener, ok := l.FindNext("(", callee)
	closer := l.LastToken(node)

	if !ok || closer == nil {
		return
	}

	base := l.GetIndentLevel(opener)
	level := base + 1

	l.LineBreakAfter(opener)
	l.LineBreakBefore(closer)

	for i, arg := range args {
		if i == len(args)-1 {
			continue
		}

		l.CommaAfter(arg)
		breakAfterElement(l, arg)
	}

	l.IndentLevelBetween(opener, closer, level)
	l.IndentLevel(closer, base)
}

// noWrapCall implements spec §4.5's call-expression noWrap strategy.
func noWrapCall(l *layout.Layout, node *ast.Node) {
	args := node.Children("arguments")

	callee := node.Child("callee")

	opener, ok := l.FindNext("(", callee)
	closer := l.LastToken(node)

	if !ok || closer == nil {
		return
	}

	l.NoLineBreakAfter(opener)
	l.NoSpaceAfter(opener)
	l.NoLineBreakBefore(closer)
	l.NoSpaceBefore(closer)

	for _, arg := range args {
		comma, ok := l.NextToken(arg)
		if !ok || comma.Value() != "," {
			continue
		}

		l.NoLineBreakAfter(comma)
		l.NoSpaceBefore(comma)
		l.SpaceAfter(comma)
	}
}
