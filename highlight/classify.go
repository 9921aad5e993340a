package highlight

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/parts"
)

// declarationKeywords introduce a binding or a class/function shape.
var declarationKeywords = map[string]bool{
	"var": true, "let": true, "const": true, "function": true,
	"class": true, "extends": true, "import": true, "export": true,
	"static": true, "get": true, "set": true,
}

// controlKeywords drive control flow.
var controlKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"break": true, "continue": true, "return": true, "throw": true,
	"try": true, "catch": true, "finally": true, "switch": true,
	"case": true, "default": true, "debugger": true, "yield": true,
	"await": true,
}

// operatorKeywords are word-shaped operators rather than statement forms.
var operatorKeywords = map[string]bool{
	"typeof": true, "instanceof": true, "in": true, "of": true,
	"void": true, "delete": true, "new": true, "this": true,
	"super": true, "from": true, "as": true, "async": true,
}

// bracketPunctuators group expressions/blocks.
var bracketPunctuators = map[string]bool{
	"(": true, ")": true, "[": true, "]": true, "{": true, "}": true,
}

// delimiterPunctuators separate siblings without computing a value.
var delimiterPunctuators = map[string]bool{
	",": true, ";": true, ".": true, ":": true,
}

// Classify returns the [Style] a rendered [*parts.Part] should use.
//
// Classification is purely lexical: it looks at the part's [parts.Kind],
// [ast.TokenKind], and literal value, never at surrounding context. A
// highlighter that wants context-sensitive styling (e.g. a function name at
// its declaration site vs. a call site) should classify via [ClassifyNode]
// instead, which also consults the part's originating [ast.Node].
func Classify(p *parts.Part) Style {
	switch p.Kind() {
	case parts.KindLineComment, parts.KindBlockComment:
		return Comment
	case parts.KindHashbang:
		return CommentHashbang
	case parts.KindWhitespace, parts.KindLineBreak:
		return Text
	}

	tk, ok := p.TokenKind()
	if !ok {
		return Text
	}

	switch tk {
	case ast.Keyword:
		return classifyKeyword(p.Value())
	case ast.Identifier:
		return Text
	case ast.String:
		return classifyQuote(p.Value())
	case ast.Numeric:
		return LiteralNumber
	case ast.Boolean:
		return LiteralBoolean
	case ast.Null:
		return LiteralNull
	case ast.Template:
		return LiteralStringTemplate
	case ast.RegExp:
		return LiteralRegExp
	case ast.Punctuator:
		return classifyPunctuator(p.Value())
	default:
		return Text
	}
}

// ClassifyNode is [Classify], refined using the part's originating
// [ast.Node] (nil for synthetic parts, which fall back to [Classify]).
// Identifier parts are promoted to [NameFunction] or [NameProperty] when the
// node shape makes the role unambiguous.
func ClassifyNode(p *parts.Part) Style {
	base := Classify(p)
	if base != Text {
		return base
	}

	tk, ok := p.TokenKind()
	if !ok || tk != ast.Identifier {
		return base
	}

	n := p.Node()
	if n == nil {
		return Text
	}

	switch n.Kind {
	case "FunctionDeclaration", "FunctionExpression", "ArrowFunctionExpression":
		return NameFunction
	case "MemberExpression", "Property":
		return NameProperty
	case "CallExpression":
		return NameFunction
	default:
		return Text
	}
}

func classifyKeyword(value string) Style {
	switch {
	case declarationKeywords[value]:
		return KeywordDeclaration
	case controlKeywords[value]:
		return KeywordControl
	case operatorKeywords[value]:
		return KeywordOperator
	default:
		return Keyword
	}
}

func classifyQuote(value string) Style {
	if len(value) > 0 && value[0] == '\'' {
		return LiteralStringSingle
	}

	return LiteralStringDouble
}

func classifyPunctuator(value string) Style {
	switch {
	case bracketPunctuators[value]:
		return PunctuationBracket
	case delimiterPunctuators[value]:
		return PunctuationDelimiter
	default:
		return PunctuationOperator
	}
}
