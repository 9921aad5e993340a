package rules

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/visitor"
	"github.com/prettyjs/jsfmt/wrapper"
)

// chainKinds propagate a parent's wrap decision to a child of the same kind
// (spec §4.6: "chained .-member and call chains additionally wrap when
// their immediate parent of the same kind wrapped").
var chainKinds = map[string]bool{
	"MemberExpression": true,
	"CallExpression":   true,
}

// Wrap builds the multi-line/wrap pass (spec §4.6): for every wrappable
// node kind, decide wrap vs. noWrap and apply it via the [wrapper.Catalog]
// dispatch already registered on l.
func Wrap(l *layout.Layout) visitor.HandlerMap {
	handlers := make(visitor.HandlerMap, len(wrapper.Kinds()))

	for _, kind := range wrapper.Kinds() {
		handlers[kind] = func(node, parent *ast.Node) { decideWrap(l, node, parent) }
	}

	return handlers
}

func decideWrap(l *layout.Layout, node, parent *ast.Node) {
	if wrapper.IsEmptyAggregate(node) {
		l.NoWrap(node)

		return
	}

	if shouldWrap(l, node, parent) {
		l.Wrap(node)

		return
	}

	l.NoWrap(node)
}

func shouldWrap(l *layout.Layout, node, parent *ast.Node) bool {
	if chainKinds[node.Kind] && parent != nil && parent.Kind == node.Kind && l.IsMultiLine(parent) {
		return true
	}

	return measuredTooLong(l, node) || l.IsMultiLine(node)
}

// measuredTooLong is [layout.Layout.IsLineTooLong] except for
// DoWhileStatement, which measures the line containing the trailing `)` of
// its `while` clause rather than the statement's own first/last line (spec
// §4.6).
func measuredTooLong(l *layout.Layout, node *ast.Node) bool {
	if node.Kind != "DoWhileStatement" {
		return l.IsLineTooLong(node)
	}

	test := node.Child("test")
	if test == nil {
		return l.IsLineTooLong(node)
	}

	closer, ok := l.FindNext(")", test)
	if !ok {
		return l.IsLineTooLong(node)
	}

	return l.LineLengthAt(closer) > l.Options().MaxLineLength
}
