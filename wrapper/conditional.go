package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("ConditionalExpression", wrapConditional, noWrapConditional)
}

// wrapConditional implements spec §4.5's conditional-expression wrap
// strategy.
func wrapConditional(l *layout.Layout, node *ast.Node) {
	test := node.Child("test")
	consequent := node.Child("consequent")

	question, ok := l.FindNext("?", test)
	if !ok {
		return
	}

	colon, ok := l.FindNext(":", consequent)
	if !ok {
		return
	}

	level := l.GetIndentLevel(l.FirstToken(node)) + 1

	l.LineBreakBefore(question)
	l.IndentLevel(question, level)

	l.LineBreakBefore(colon)
	l.IndentLevel(colon, level)
}

// noWrapConditional implements spec §4.5's conditional-expression noWrap
// strategy.
func noWrapConditional(l *layout.Layout, node *ast.Node) {
	test := node.Child("test")
	consequent := node.Child("consequent")

	question, ok := l.FindNext("?", test)
	if ok {
		l.NoLineBreakBefore(question)
		l.SpaceBefore(question)
		l.SpaceAfter(question)
	}

	colon, ok := l.FindNext(":", consequent)
	if ok {
		l.NoLineBreakBefore(colon)
		l.SpaceBefore(colon)
		l.SpaceAfter(colon)
	}
}
