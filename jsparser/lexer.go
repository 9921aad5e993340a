package jsparser

import (
	"fmt"
	"strings"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

// keywords are reserved words tokenized as [ast.Keyword] rather than
// [ast.Identifier]. "true"/"false" and "null" get their own token kinds
// (spec.md's token model distinguishes boolean/null literals).
var keywords = map[string]bool{
	"var": true, "let": true, "const": true, "function": true, "return": true,
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"break": true, "continue": true, "throw": true, "try": true, "catch": true,
	"finally": true, "switch": true, "case": true, "default": true, "new": true,
	"typeof": true, "instanceof": true, "in": true, "of": true, "void": true,
	"delete": true, "this": true, "super": true, "class": true, "extends": true,
	"import": true, "export": true, "from": true, "as": true, "async": true,
	"await": true, "yield": true, "static": true, "get": true, "set": true,
	"debugger": true,
}

// punctuators are matched longest-first so e.g. "===" is never split into
// "==" + "=".
var punctuators = []string{
	">>>=", "...", "===", "!==", "**=", "<<=", ">>=", ">>>",
	"=>", "&&=", "||=", "??=", "&&", "||", "??", "?.", "++", "--", "**",
	"==", "!=", "<=", ">=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~",
	"?", ":", ";", ",", ".", "(", ")", "[", "]", "{", "}",
}

// lexer scans source text into a flat token/comment array. Template
// literals are lexed statefully: a backtick chunk is emitted as one
// [ast.Template] token, and `${...}` interpolations switch back to normal
// token scanning, tracked by a stack of the brace depth at which the
// enclosing `}` closes the interpolation instead of a nested block.
type lexer struct {
	text     string
	pos      int
	tokens   []ast.Token
	comments []ast.Comment

	// braceDepth counts `{`/`}` nesting within the current (possibly
	// template-interpolation) scanning context.
	braceDepth int
	// templateStack holds, for each open `${` interpolation, the
	// braceDepth to restore when its closing `}` is found.
	templateStack []int
}

func newLexer(text string) *lexer {
	return &lexer{text: text}
}

func (lx *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("jsparser: at offset %d: %w", lx.pos, fmt.Errorf(format, args...))
}

// run tokenizes the entire source, returning the flat token and comment
// arrays stream.Build expects (each individually sorted by Range.Start,
// non-overlapping, and together with whitespace/newlines covering every
// byte of text).
func (lx *lexer) run() ([]ast.Token, []ast.Comment, error) {
	for lx.pos < len(lx.text) {
		b := lx.text[lx.pos]

		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			lx.pos++
		case b == '/' && lx.peek(1) == '/':
			lx.lexLineComment()
		case b == '/' && lx.peek(1) == '*':
			if err := lx.lexBlockComment(); err != nil {
				return nil, nil, err
			}
		case b == '`':
			lx.lexTemplateChunk()
		case b == '}' && len(lx.templateStack) > 0 && lx.braceDepth == 0:
			lx.resumeTemplateChunk()
		case isIdentStart(b):
			lx.lexIdentOrKeyword()
		case isDigit(b):
			lx.lexNumber()
		case b == '"' || b == '\'':
			if err := lx.lexString(); err != nil {
				return nil, nil, err
			}
		default:
			if err := lx.lexPunctuator(); err != nil {
				return nil, nil, err
			}
		}
	}

	return lx.tokens, lx.comments, nil
}

func (lx *lexer) peek(offset int) byte {
	if lx.pos+offset >= len(lx.text) {
		return 0
	}

	return lx.text[lx.pos+offset]
}

func (lx *lexer) emitToken(kind ast.TokenKind, start, end int) {
	lx.tokens = append(lx.tokens, ast.Token{
		Kind:  kind,
		Value: lx.text[start:end],
		Range: position.NewSpan(start, end),
	})
}

func (lx *lexer) lexLineComment() {
	start := lx.pos
	for lx.pos < len(lx.text) && lx.text[lx.pos] != '\n' && lx.text[lx.pos] != '\r' {
		lx.pos++
	}

	lx.comments = append(lx.comments, ast.Comment{
		Kind:  ast.LineComment,
		Value: lx.text[start:lx.pos],
		Range: position.NewSpan(start, lx.pos),
	})
}

func (lx *lexer) lexBlockComment() error {
	start := lx.pos
	lx.pos += 2

	for {
		if lx.pos >= len(lx.text) {
			return lx.errorf("unterminated block comment")
		}

		if lx.text[lx.pos] == '*' && lx.peek(1) == '/' {
			lx.pos += 2

			break
		}

		lx.pos++
	}

	lx.comments = append(lx.comments, ast.Comment{
		Kind:  ast.BlockComment,
		Value: lx.text[start:lx.pos],
		Range: position.NewSpan(start, lx.pos),
	})

	return nil
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (lx *lexer) lexIdentOrKeyword() {
	start := lx.pos
	for lx.pos < len(lx.text) && isIdentPart(lx.text[lx.pos]) {
		lx.pos++
	}

	word := lx.text[start:lx.pos]

	switch word {
	case "true", "false":
		lx.emitToken(ast.Boolean, start, lx.pos)
	case "null":
		lx.emitToken(ast.Null, start, lx.pos)
	default:
		if keywords[word] {
			lx.emitToken(ast.Keyword, start, lx.pos)
		} else {
			lx.emitToken(ast.Identifier, start, lx.pos)
		}
	}
}

func (lx *lexer) lexNumber() {
	start := lx.pos

	if lx.text[lx.pos] == '0' && (lx.peek(1) == 'x' || lx.peek(1) == 'X' ||
		lx.peek(1) == 'b' || lx.peek(1) == 'B' || lx.peek(1) == 'o' || lx.peek(1) == 'O') {
		lx.pos += 2
		for lx.pos < len(lx.text) && isIdentPart(lx.text[lx.pos]) {
			lx.pos++
		}

		lx.emitToken(ast.Numeric, start, lx.pos)

		return
	}

	for lx.pos < len(lx.text) && isDigit(lx.text[lx.pos]) {
		lx.pos++
	}

	if lx.pos < len(lx.text) && lx.text[lx.pos] == '.' {
		lx.pos++
		for lx.pos < len(lx.text) && isDigit(lx.text[lx.pos]) {
			lx.pos++
		}
	}

	if lx.pos < len(lx.text) && (lx.text[lx.pos] == 'e' || lx.text[lx.pos] == 'E') {
		lx.pos++
		if lx.pos < len(lx.text) && (lx.text[lx.pos] == '+' || lx.text[lx.pos] == '-') {
			lx.pos++
		}

		for lx.pos < len(lx.text) && isDigit(lx.text[lx.pos]) {
			lx.pos++
		}
	}

	lx.emitToken(ast.Numeric, start, lx.pos)
}

func (lx *lexer) lexString() error {
	start := lx.pos
	quote := lx.text[lx.pos]
	lx.pos++

	for {
		if lx.pos >= len(lx.text) {
			return lx.errorf("unterminated string literal")
		}

		b := lx.text[lx.pos]
		if b == '\\' {
			lx.pos += 2

			continue
		}

		lx.pos++

		if b == quote {
			break
		}
	}

	lx.emitToken(ast.String, start, lx.pos)

	return nil
}

// lexTemplateChunk scans from an opening backtick through the next `${` or
// the closing backtick, emitting one [ast.Template] token for the whole
// chunk (backtick/brace delimiters included).
func (lx *lexer) lexTemplateChunk() {
	start := lx.pos
	lx.pos++ // opening `

	lx.scanTemplateBody(start)
}

// resumeTemplateChunk scans from a `}` that closes a `${` interpolation
// through the next `${` or the closing backtick.
func (lx *lexer) resumeTemplateChunk() {
	start := lx.pos
	lx.braceDepth = lx.templateStack[len(lx.templateStack)-1]
	lx.templateStack = lx.templateStack[:len(lx.templateStack)-1]
	lx.pos++ // closing }

	lx.scanTemplateBody(start)
}

func (lx *lexer) scanTemplateBody(start int) {
	for lx.pos < len(lx.text) {
		b := lx.text[lx.pos]

		switch {
		case b == '\\':
			lx.pos += 2
		case b == '`':
			lx.pos++
			lx.emitToken(ast.Template, start, lx.pos)

			return
		case b == '$' && lx.peek(1) == '{':
			lx.pos += 2
			lx.emitToken(ast.Template, start, lx.pos)
			lx.templateStack = append(lx.templateStack, lx.braceDepth)
			lx.braceDepth = 0

			return
		default:
			lx.pos++
		}
	}

	lx.emitToken(ast.Template, start, lx.pos)
}

func (lx *lexer) lexPunctuator() error {
	for _, punc := range punctuators {
		if strings.HasPrefix(lx.text[lx.pos:], punc) {
			start := lx.pos
			lx.pos += len(punc)

			if punc == "{" {
				lx.braceDepth++
			} else if punc == "}" {
				lx.braceDepth--
			}

			lx.emitToken(ast.Punctuator, start, lx.pos)

			return nil
		}
	}

	return lx.errorf("unexpected character %q", lx.text[lx.pos])
}
