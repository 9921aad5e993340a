package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("MemberExpression", wrapMember, noWrapMember)
}

// wrapMember implements spec §4.5's member-expression wrap strategy:
// line-break before `.`, indented one level deeper, skipping computed
// `[...]` access.
func wrapMember(l *layout.Layout, node *ast.Node) {
	if node.Bool("computed") {
		return
	}

	object := node.Child("object")

	dot, ok := l.FindNext(".", object)
	if !ok {
		return
	}

	level := l.GetIndentLevel(l.FirstToken(node)) + 1

	l.LineBreakBefore(dot)
	l.IndentLevel(dot, level)
}

// noWrapMember implements spec §4.5's member-expression noWrap strategy.
func noWrapMember(l *layout.Layout, node *ast.Node) {
	if node.Bool("computed") {
		return
	}

	object := node.Child("object")

	dot, ok := l.FindNext(".", object)
	if !ok {
		return
	}

	l.NoLineBreakBefore(dot)
}
