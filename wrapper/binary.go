package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/parts"
)

func init() {
	registerWrap("BinaryExpression", wrapBinary, noWrapBinary)
	registerWrap("LogicalExpression", wrapBinary, noWrapBinary)
}

// wrapBinary implements spec §4.5's binary/logical expression wrap
// strategy: break after the operator, indenting the right operand one level
// deeper than the node, or one level deeper than the parent if the parent
// is already multi-line.
func wrapBinary(l *layout.Layout, node *ast.Node) {
	left := node.Child("left")
	right := node.Child("right")

	if left == nil || right == nil {
		return
	}

	operator := operatorToken(l, left, right)
	if operator == nil {
		return
	}

	base := l.GetIndentLevel(l.FirstToken(node))

	if parent, ok := l.Parent(node); ok && l.IsMultiLine(parent) {
		base = l.GetIndentLevel(l.FirstToken(parent)) + 1
	} else {
		base++
	}

	l.LineBreakAfter(operator)
	l.IndentLevel(l.FirstToken(right), base)
}

// noWrapBinary implements spec §4.5's binary/logical expression noWrap
// strategy.
func noWrapBinary(l *layout.Layout, node *ast.Node) {
	left := node.Child("left")
	right := node.Child("right")

	operator := operatorToken(l, left, right)
	if operator == nil {
		return
	}

	l.NoLineBreakAfter(operator)
	l.SpaceBefore(operator)
	l.SpaceAfter(operator)
}

// operatorToken returns the operator part lying between left's and right's
// boundaries.
func operatorToken(l *layout.Layout, left, right *ast.Node) *parts.Part {
	if left == nil || right == nil {
		return nil
	}

	op, ok := l.NextToken(left)
	if !ok {
		return nil
	}

	if first := l.FirstToken(right); first != nil && op == first {
		return nil
	}

	return op
}
