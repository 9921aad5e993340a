package layout

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/parts"
)

// SemicolonAfter ensures the next non-whitespace, non-line-break part after
// x is a ";" Punctuator, inserting one immediately after x if absent.
func (l *Layout) SemicolonAfter(x Target) {
	l.punctuatorAfter(x, ";")
}

// NoSemicolonAfter removes a ";" Punctuator immediately following x (past
// any whitespace and line breaks), if present. Callers must only invoke this where
// the semicolon is grammatically optional.
func (l *Layout) NoSemicolonAfter(x Target) {
	l.removePunctuatorAfter(x, ";")
}

// CommaAfter ensures the next non-whitespace, non-line-break part after x is
// a "," Punctuator, inserting one immediately after x if absent.
func (l *Layout) CommaAfter(x Target) {
	l.punctuatorAfter(x, ",")
}

// NoCommaAfter removes a "," Punctuator immediately following x (past any
// whitespace and line breaks), if present.
func (l *Layout) NoCommaAfter(x Target) {
	l.removePunctuatorAfter(x, ",")
}

func (l *Layout) punctuatorAfter(x Target, value string) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	cur, ok := l.tl.Next(target)
	for ok && cur.IsWhitespaceOrLineBreak() {
		cur, ok = l.tl.Next(cur)
	}

	if ok && cur.IsPunctuator() && cur.Value() == value {
		return
	}

	_ = l.tl.InsertAfter(parts.NewToken(ast.Punctuator, value, nil), target)
}

func (l *Layout) removePunctuatorAfter(x Target, value string) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	cur, ok := l.tl.Next(target)
	for ok && cur.IsWhitespaceOrLineBreak() {
		cur, ok = l.tl.Next(cur)
	}

	if !ok || !cur.IsPunctuator() || cur.Value() != value {
		return
	}

	_ = l.tl.Delete(cur)

	l.mergeWhitespaceAfter(target)
}

// mergeWhitespaceAfter repairs invariant I4 after a punctuator between
// target and whatever follows it is deleted: two now-adjacent Whitespace
// runs are merged into one inline space, and a Whitespace now immediately
// preceding a LineBreak (e.g. `x ;\n` → `x \n` after removing `;`) is
// dropped outright.
func (l *Layout) mergeWhitespaceAfter(target *parts.Part) {
	next1, ok := l.tl.Next(target)
	if !ok || !next1.IsWhitespace() {
		return
	}

	next2, ok := l.tl.Next(next1)
	if !ok {
		return
	}

	switch {
	case next2.IsWhitespace():
		_ = l.tl.Delete(next2)
		next1.SetValue(" ")
	case next2.IsLineBreak():
		_ = l.tl.Delete(next1)
	}
}
