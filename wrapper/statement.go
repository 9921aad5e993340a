package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("IfStatement", wrapTestClause, noWrapTestClause)
	registerWrap("WhileStatement", wrapTestClause, noWrapTestClause)
	registerWrap("DoWhileStatement", wrapTestClause, noWrapTestClause)
	registerWrap("ForStatement", wrapTestClause, noWrapTestClause)
}

// wrapTestClause implements spec §4.5's "statement with test clause" wrap
// strategy: break before the test's closing `)`.
func wrapTestClause(l *layout.Layout, node *ast.Node) {
	test := node.Child("test")
	if test == nil {
		return
	}

	closer, ok := l.FindNext(")", test)
	if !ok {
		return
	}

	level := l.GetIndentLevel(l.FirstToken(node))

	l.LineBreakBefore(closer)
	l.IndentLevel(closer, level)
}

// noWrapTestClause implements spec §4.5's "statement with test clause"
// noWrap strategy: no breaks or extra spaces on either side of the test
// parens.
func noWrapTestClause(l *layout.Layout, node *ast.Node) {
	test := node.Child("test")
	if test == nil {
		return
	}

	opener, ok := l.FindPrevious("(", test)
	if ok {
		l.NoLineBreakAfter(opener)
		l.NoSpaceAfter(opener)
	}

	closer, ok := l.FindNext(")", test)
	if ok {
		l.NoLineBreakBefore(closer)
		l.NoSpaceBefore(closer)
	}
}
