package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

// aggregateElements returns the element/property list of an array, object,
// or destructuring pattern node, under whichever field name that kind uses.
func aggregateElements(node *ast.Node) []*ast.Node {
	switch node.Kind {
	case "ObjectExpression", "ObjectPattern":
		return node.Children("properties")
	default:
		return node.Children("elements")
	}
}

// wrapAggregate implements spec §4.5's array/object literal (and
// destructuring pattern) wrap strategy.
func wrapAggregate(l *layout.Layout, node *ast.Node) {
	elements := aggregateElements(node)
	if len(elements) == 0 {
		return
	}

	opener := l.FirstToken(node)
	closer := l.LastToken(node)

	base := l.GetIndentLevel(opener)
	level := base + 1 + varDeclExtraIndent(l, node)

	l.LineBreakAfter(opener)
	l.LineBreakBefore(closer)

	for i, el := range elements {
		last := i == len(elements)-1

		if last {
			if l.Options().TrailingCommas {
				l.CommaAfter(el)
			} else {
				l.NoCommaAfter(el)
			}
		} else {
			l.CommaAfter(el)
			breakAfterElement(l, el)
		}
	}

	l.IndentLevelBetween(opener, closer, level)
	l.IndentLevel(closer, base)
}

// noWrapAggregate implements spec §4.5's array/object literal noWrap
// strategy: only valid when empty and comment-free.
func noWrapAggregate(l *layout.Layout, node *ast.Node) {
	elements := aggregateElements(node)
	if len(elements) != 0 {
		return
	}

	opener := l.FirstToken(node)
	closer := l.LastToken(node)

	if opener == nil || closer == nil || opener == closer {
		return
	}

	if hasInteriorComment(l, opener, closer) {
		return
	}

	tl := l.TokenList()

	cur, ok := tl.Next(opener)
	for ok && cur != closer {
		next, nextOK := tl.Next(cur)
		tl.Delete(cur)
		cur, ok = next, nextOK
	}
}

func init() {
	registerWrap("ArrayExpression", wrapAggregate, noWrapAggregate)
	registerWrap("ObjectExpression", wrapAggregate, noWrapAggregate)
	registerWrap("ArrayPattern", wrapArrayPattern, noWrapArrayPattern)
	registerWrap("ObjectPattern", wrapAggregate, noWrapAggregate)
}

// wrapArrayPattern dispatches to the array-expression strategy per spec
// §4.5.2 ("array-pattern to array-expression").
func wrapArrayPattern(l *layout.Layout, node *ast.Node) {
	wrapAggregate(l, node)
}

func noWrapArrayPattern(l *layout.Layout, node *ast.Node) {
	noWrapAggregate(l, node)
}
