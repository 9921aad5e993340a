package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("TemplateLiteral", wrapTemplate, noWrapTemplate)
}

// wrapTemplate implements spec §4.5's template-literal wrap strategy: each
// `${...}` placeholder expression breaks before and after, indented one
// level deeper.
func wrapTemplate(l *layout.Layout, node *ast.Node) {
	exprs := node.Children("expressions")
	if len(exprs) == 0 {
		return
	}

	level := l.GetIndentLevel(l.FirstToken(node)) + 1

	for _, expr := range exprs {
		first := l.FirstToken(expr)
		last := l.LastToken(expr)

		if first == nil || last == nil {
			continue
		}

		l.LineBreakBefore(first)
		l.LineBreakAfter(last)
		l.IndentLevel(first, level)
	}
}

// noWrapTemplate implements spec §4.5's template-literal noWrap strategy.
func noWrapTemplate(l *layout.Layout, node *ast.Node) {
	exprs := node.Children("expressions")

	for _, expr := range exprs {
		first := l.FirstToken(expr)
		last := l.LastToken(expr)

		if first == nil || last == nil {
			continue
		}

		l.NoLineBreakBefore(first)
		l.NoLineBreakAfter(last)
	}
}
