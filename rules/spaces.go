package rules

import (
	"strings"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/visitor"
)

// blockBearingKinds are the node kinds whose `body` (or `consequent`, for
// single-branch `if`) is a BlockStatement preceded by a single space (spec
// §4.6: "single space before the { of each block body").
var blockBearingKinds = []string{
	"FunctionDeclaration", "FunctionExpression", "ArrowFunctionExpression",
	"IfStatement", "ForStatement", "ForInStatement", "ForOfStatement",
	"WhileStatement", "DoWhileStatement", "TryStatement", "CatchClause",
}

// keywordSpaceKinds maps a node kind to the leading keyword token value
// that gets a single trailing space (spec §4.6: "space after keywords").
var keywordSpaceKinds = map[string]string{
	"IfStatement":       "if",
	"WhileStatement":    "while",
	"DoWhileStatement":  "do",
	"ForStatement":      "for",
	"ForInStatement":    "for",
	"ForOfStatement":    "for",
	"SwitchStatement":   "switch",
	"TryStatement":      "try",
	"ThrowStatement":    "throw",
	"AwaitExpression":   "await",
	"YieldExpression":   "yield",
}

// SpacesLinearScan performs the spaces pass's first step (spec §4.6): a
// single forward scan over every punctuator part, independent of AST
// structure. `,` and `;` get no space before and a single space after;
// any punctuator containing `=` (assignment and comparison operators,
// `=>`) gets single spaces on both sides.
func SpacesLinearScan(l *layout.Layout) {
	tl := l.TokenList()

	for p := range tl.All() {
		if !p.IsPunctuator() {
			continue
		}

		switch {
		case p.Value() == "," || p.Value() == ";":
			l.NoSpaceBefore(p)
			l.SpaceAfter(p)
		case strings.Contains(p.Value(), "="):
			l.SpaceBefore(p)
			l.SpaceAfter(p)
		}
	}
}

// Spaces builds the spaces pass's per-node adjustments (spec §4.6).
func Spaces(l *layout.Layout) visitor.HandlerMap {
	handlers := make(visitor.HandlerMap)

	handlers["UnaryExpression"] = func(node, parent *ast.Node) { noSpaceAfterOperator(l, node) }
	handlers["UpdateExpression"] = func(node, parent *ast.Node) {
		if node.Bool("prefix") {
			noSpaceAfterOperator(l, node)
		}
	}

	handlers["BinaryExpression"] = func(node, parent *ast.Node) { spaceAroundBinaryOperator(l, node) }
	handlers["LogicalExpression"] = func(node, parent *ast.Node) { spaceAroundBinaryOperator(l, node) }
	handlers["AssignmentExpression"] = func(node, parent *ast.Node) { spaceAroundBinaryOperator(l, node) }

	handlers["ConditionalExpression"] = func(node, parent *ast.Node) { spaceAroundConditional(l, node) }

	handlers["VariableDeclaration"] = func(node, parent *ast.Node) {
		if kind, ok := node.Scalar("kind"); ok {
			if s, ok := kind.(string); ok {
				spaceAfterKeyword(l, node, s)
			}
		}
	}

	handlers["ReturnStatement"] = func(node, parent *ast.Node) {
		if node.Child("argument") != nil {
			spaceAfterKeyword(l, node, "return")
		}
	}

	handlers["Property"] = func(node, parent *ast.Node) { spaceProperty(l, node) }

	handlers["ArrayExpression"] = func(node, parent *ast.Node) { spaceSingleLineAggregate(l, node, node.Children("elements")) }
	handlers["ObjectExpression"] = func(node, parent *ast.Node) { spaceSingleLineAggregate(l, node, node.Children("properties")) }

	handlers["ImportDeclaration"] = func(node, parent *ast.Node) { spaceSpecifierBraces(l, node) }
	handlers["ExportNamedDeclaration"] = func(node, parent *ast.Node) { spaceSpecifierBraces(l, node) }

	for _, kind := range []string{"FunctionDeclaration", "FunctionExpression"} {
		handlers[kind] = func(node, parent *ast.Node) { spaceFunctionHeader(l, node) }
	}

	for kind, keyword := range keywordSpaceKinds {
		existing := handlers[kind]
		handlers[kind] = func(node, parent *ast.Node) {
			if existing != nil {
				existing(node, parent)
			}

			spaceAfterKeyword(l, node, keyword)
		}
	}

	for _, kind := range blockBearingKinds {
		existing := handlers[kind]
		handlers[kind] = func(node, parent *ast.Node) {
			if existing != nil {
				existing(node, parent)
			}

			spaceBeforeBlockBody(l, node)
		}
	}

	return handlers
}

func noSpaceAfterOperator(l *layout.Layout, node *ast.Node) {
	op := l.FirstToken(node)
	if op == nil {
		return
	}

	l.NoSpaceAfter(op)
}

func spaceAroundBinaryOperator(l *layout.Layout, node *ast.Node) {
	left := node.Child("left")

	operator, ok := l.NextToken(left)
	if !ok {
		return
	}

	l.SpaceBefore(operator)
	l.SpaceAfter(operator)
}

func spaceAroundConditional(l *layout.Layout, node *ast.Node) {
	test := node.Child("test")
	consequent := node.Child("consequent")

	if question, ok := l.FindNext("?", test); ok {
		l.SpaceBefore(question)
		l.SpaceAfter(question)
	}

	if colon, ok := l.FindNext(":", consequent); ok {
		l.SpaceBefore(colon)
		l.SpaceAfter(colon)
	}
}

func spaceAfterKeyword(l *layout.Layout, node *ast.Node, keyword string) {
	first := l.FirstToken(node)
	if first == nil || first.Value() != keyword {
		return
	}

	l.SpaceAfter(first)
}

func spaceProperty(l *layout.Layout, node *ast.Node) {
	key := node.Child("key")
	value := node.Child("value")

	if key == nil || value == nil {
		return
	}

	if node.Bool("computed") {
		opener, ok := l.FindPrevious("[", key)
		if ok {
			l.NoSpaceAfter(opener)
		}

		closer, ok := l.FindNext("]", key)
		if ok {
			l.NoSpaceBefore(closer)
		}
	}

	l.NoSpaceAfter(l.LastToken(key))

	if colon, ok := l.FindNext(":", key); ok {
		l.NoSpaceBefore(colon)
		l.SpaceAfter(colon)
	}
}

// spaceSingleLineAggregate applies spec §4.6's single-line array/object
// spacing: a space before each element after the first, no space after any
// element.
func spaceSingleLineAggregate(l *layout.Layout, node *ast.Node, elements []*ast.Node) {
	if l.IsMultiLine(node) {
		return
	}

	for i, el := range elements {
		if i > 0 {
			l.SpaceBefore(el)
		}

		l.NoSpaceAfter(l.LastToken(el))
	}
}

func spaceSpecifierBraces(l *layout.Layout, node *ast.Node) {
	opener, ok := l.FindNext("{", node)
	if !ok {
		return
	}

	closer, ok := l.FindNext("}", opener)
	if !ok {
		return
	}

	if l.IsMultiLine(node) {
		return
	}

	l.SpaceAfter(opener)
	l.SpaceBefore(closer)
}

func spaceFunctionHeader(l *layout.Layout, node *ast.Node) {
	body := node.Child("body")
	if body == nil {
		return
	}

	opener, ok := l.FindPrevious("(", body)
	if ok {
		l.NoSpaceBefore(opener)
		l.NoSpaceAfter(opener)
	}
}

func spaceBeforeBlockBody(l *layout.Layout, node *ast.Node) {
	body := node.Child("body")
	if body == nil || body.Kind != "BlockStatement" {
		body = node.Child("consequent")
		if body == nil || body.Kind != "BlockStatement" {
			return
		}
	}

	first := l.FirstToken(body)
	if first == nil {
		return
	}

	l.SpaceBefore(first)
}
