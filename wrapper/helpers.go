package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/parts"
)

// hasInteriorComment reports whether any comment part lies strictly between
// first and last.
func hasInteriorComment(l *layout.Layout, first, last *parts.Part) bool {
	cur := first

	for {
		next, ok := l.TokenList().Next(cur)
		if !ok || next == last {
			return false
		}

		if next.IsComment() {
			return true
		}

		cur = next
	}
}

// breakAfterElement inserts a line break after el's trailing separator
// comma if one was just ensured by [layout.Layout.CommaAfter], falling back
// to breaking directly after el itself if no comma is present (e.g. the
// caller chose not to emit one).
func breakAfterElement(l *layout.Layout, el *ast.Node) {
	if comma, ok := l.NextToken(el); ok && comma.Value() == "," {
		l.LineBreakAfter(comma)

		return
	}

	l.LineBreakAfter(el)
}

// varDeclExtraIndent implements spec §4.5.1: when node is the `init` of the
// first declarator of a multi-declarator VariableDeclaration, its wrapped
// interior indents one level deeper so continuation declarators line up
// under the keyword.
func varDeclExtraIndent(l *layout.Layout, node *ast.Node) int {
	declarator, ok := l.Parent(node)
	if !ok || declarator.Kind != "VariableDeclarator" {
		return 0
	}

	if declarator.Child("init") != node {
		return 0
	}

	decl, ok := l.Parent(declarator)
	if !ok || decl.Kind != "VariableDeclaration" {
		return 0
	}

	declarators := decl.Children("declarations")
	if len(declarators) < 2 || declarators[0] != declarator {
		return 0
	}

	return 1
}
