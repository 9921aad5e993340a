package stream

import (
	"strings"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/parts"
)

var (
	openers = map[string]bool{"{": true, "(": true, "[": true}
	closers = map[string]bool{"}": true, ")": true, "]": true}
)

// IsPunctuator reports whether p is a Punctuator token.
func (tl *TokenList) IsPunctuator(p *parts.Part) bool {
	return p.IsPunctuator()
}

// IsWhitespace reports whether p is a Whitespace part.
func (tl *TokenList) IsWhitespace(p *parts.Part) bool {
	return p.IsWhitespace()
}

// IsLineBreak reports whether p is a LineBreak part.
func (tl *TokenList) IsLineBreak(p *parts.Part) bool {
	return p.IsLineBreak()
}

// IsWhitespaceOrLineBreak reports whether p contributes no visible content.
func (tl *TokenList) IsWhitespaceOrLineBreak(p *parts.Part) bool {
	return p.IsWhitespaceOrLineBreak()
}

// IsComment reports whether p is a line or block comment.
func (tl *TokenList) IsComment(p *parts.Part) bool {
	return p.IsComment()
}

// IsLineComment reports whether p is a "//" comment.
func (tl *TokenList) IsLineComment(p *parts.Part) bool {
	return p.IsLineComment()
}

// IsBlockComment reports whether p is a "/* */" comment.
func (tl *TokenList) IsBlockComment(p *parts.Part) bool {
	return p.IsBlockComment()
}

// IsTemplate reports whether p is a Template-kind token.
func (tl *TokenList) IsTemplate(p *parts.Part) bool {
	tk, ok := p.TokenKind()

	return ok && tk == ast.Template
}

// IsTemplateOpen reports whether p is the head chunk of a template literal
// (ends in "${", e.g. the "`a${" in `` `a${b}` ``).
func (tl *TokenList) IsTemplateOpen(p *parts.Part) bool {
	return tl.IsTemplate(p) && strings.HasSuffix(p.Value(), "${")
}

// IsTemplateClose reports whether p is a tail/middle chunk that resumes
// after a placeholder (starts with "}").
func (tl *TokenList) IsTemplateClose(p *parts.Part) bool {
	return tl.IsTemplate(p) && strings.HasPrefix(p.Value(), "}")
}

// isIndentPart reports whether p is Whitespace with no predecessor, or
// whose predecessor is a LineBreak — i.e. it is the line's leading indent
// rather than inline spacing.
func (tl *TokenList) isIndentPart(p *parts.Part) bool {
	if !p.IsWhitespace() {
		return false
	}

	prev, ok := tl.set.Previous(p)

	return !ok || prev.IsLineBreak()
}

// IsIndent reports whether p is the line's leading indent whitespace.
func (tl *TokenList) IsIndent(p *parts.Part) bool {
	return tl.isIndentPart(p)
}

// IsIndentIncreaser reports whether p is an opening bracket/brace/paren or
// template-open immediately followed by a LineBreak — i.e. the body that
// follows should be indented one level deeper.
func (tl *TokenList) IsIndentIncreaser(p *parts.Part) bool {
	if !tl.isOpenerValue(p) {
		return false
	}

	next, ok := tl.set.Next(p)

	return ok && next.IsLineBreak()
}

// IsIndentDecreaser reports whether p is a closing bracket/brace/paren or
// template-close that is the first syntactic token on its line — i.e. the
// line it starts should be dedented back to the opener's level.
func (tl *TokenList) IsIndentDecreaser(p *parts.Part) bool {
	if !tl.isCloserValue(p) {
		return false
	}

	return tl.isFirstSyntacticOnLine(p)
}

func (tl *TokenList) isOpenerValue(p *parts.Part) bool {
	if tl.IsTemplateOpen(p) {
		return true
	}

	tk, ok := p.TokenKind()

	return ok && tk == ast.Punctuator && openers[p.Value()]
}

func (tl *TokenList) isCloserValue(p *parts.Part) bool {
	if tl.IsTemplateClose(p) {
		return true
	}

	tk, ok := p.TokenKind()

	return ok && tk == ast.Punctuator && closers[p.Value()]
}

// isFirstSyntacticOnLine reports whether p is the first token-or-comment
// part on its line: scanning back from p, the nearest preceding LineBreak
// (or the stream head, if none) is followed only by whitespace before p.
func (tl *TokenList) isFirstSyntacticOnLine(p *parts.Part) bool {
	lb, hasLineBreak := tl.set.FindPrevious(func(x *parts.Part) bool { return x.IsLineBreak() }, p)

	var cur *parts.Part

	if hasLineBreak {
		cur, _ = tl.set.Next(lb)
	} else {
		cur, _ = tl.set.First()
	}

	for cur != nil && cur.IsWhitespace() {
		cur, _ = tl.set.Next(cur)
	}

	return cur == p
}
