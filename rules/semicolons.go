package rules

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/visitor"
)

// semicolonKinds are the node kinds adjustSemicolon applies to
// unconditionally (spec §4.6's semicolons pass).
var semicolonKinds = []string{
	"ExpressionStatement",
	"ReturnStatement",
	"ThrowStatement",
	"DoWhileStatement",
	"DebuggerStatement",
	"BreakStatement",
	"ContinueStatement",
	"ImportDeclaration",
	"ExportAllDeclaration",
}

// Semicolons builds the semicolons pass (spec §4.6).
func Semicolons(l *layout.Layout) visitor.HandlerMap {
	handlers := make(visitor.HandlerMap, len(semicolonKinds)+3)

	for _, kind := range semicolonKinds {
		handlers[kind] = func(node, parent *ast.Node) { adjustSemicolon(l, node) }
	}

	handlers["ExportNamedDeclaration"] = func(node, parent *ast.Node) {
		if node.Child("declaration") == nil {
			adjustSemicolon(l, node)
		}
	}

	handlers["ExportDefaultDeclaration"] = func(node, parent *ast.Node) {
		decl := node.Child("declaration")
		if decl == nil || (decl.Kind != "FunctionDeclaration" && decl.Kind != "ClassDeclaration") {
			adjustSemicolon(l, node)
		}
	}

	handlers["VariableDeclaration"] = func(node, parent *ast.Node) {
		if parent != nil && (parent.Kind == "ForInStatement" || parent.Kind == "ForOfStatement") &&
			parent.Child("left") == node {
			return
		}

		adjustSemicolon(l, node)
	}

	return handlers
}

// adjustSemicolon inserts or removes node's trailing semicolon per the
// configured [options.Options.Semicolons] policy.
func adjustSemicolon(l *layout.Layout, node *ast.Node) {
	if l.Options().Semicolons {
		l.SemicolonAfter(node)
	} else {
		l.NoSemicolonAfter(node)
	}
}
