package layout

import (
	"strings"

	"github.com/prettyjs/jsfmt/parts"
)

// lineStartIndent returns the indent Whitespace part at the start of x's
// line, and true if one exists (a line that has no leading whitespace, or
// starts at the stream head with no indent, returns false).
func (l *Layout) lineStartIndent(x *parts.Part) (*parts.Part, bool) {
	prev, ok := l.tl.Previous(x)
	if !ok {
		return nil, false
	}

	if prev.IsLineBreak() {
		// x is itself the first part of its line; there is no indent part
		// before it (zero-width indent).
		return nil, false
	}

	if !prev.IsWhitespace() {
		return nil, false
	}

	before, ok := l.tl.Previous(prev)
	if !ok || before.IsLineBreak() {
		return prev, true
	}

	return nil, false
}

// GetIndentLevel returns the current indent level (number of configured
// indent units) of the line containing x.
func (l *Layout) GetIndentLevel(x Target) int {
	target := l.firstOf(x)
	if target == nil {
		return 0
	}

	indent, ok := l.lineStartIndent(target)
	if !ok {
		return 0
	}

	unit := l.opts.Indent.Unit()
	if unit == "" {
		return 0
	}

	return len(indent.Value()) / len(unit)
}

// IndentLevel sets the whitespace immediately after the LineBreak preceding
// x's line to n copies of the configured indent unit, inserting an indent
// Whitespace part if the line currently has none (n == 0 removes it).
func (l *Layout) IndentLevel(x Target, n int) {
	target := l.firstOf(x)
	if target == nil {
		return
	}

	value := strings.Repeat(l.opts.Indent.Unit(), max(n, 0))

	indent, ok := l.lineStartIndent(target)
	if ok {
		if value == "" {
			_ = l.tl.Delete(indent)

			return
		}

		indent.SetValue(value)

		return
	}

	if value == "" {
		return
	}

	prev, hasPrev := l.tl.Previous(target)
	if hasPrev && prev.IsLineBreak() {
		_ = l.tl.InsertAfter(parts.NewWhitespace(value), prev)
	}
}

// Indent increments the indent level of the line containing x by one unit.
func (l *Layout) Indent(x Target) {
	l.IndentLevel(x, l.GetIndentLevel(x)+1)
}

// IndentLevelBetween applies [Layout.IndentLevel] to every line start from a
// up to, but excluding, b's own line. a's own line is included when a is the
// first part on it; b is conventionally a closing delimiter whose line
// belongs to the containing level, set separately by the caller.
//
// A comment line start that recorded an original indent at build time
// (spec.md §9, "comment indentation preservation") is skipped rather than
// realigned: this sweep is the "enclosing rewrite" the design note
// describes, not an explicit reset of that comment, so its original indent
// is left alone. A caller that does want to reset one explicitly should
// call [Layout.IndentLevel] on it directly instead of through this sweep.
func (l *Layout) IndentLevelBetween(a, b Target, n int) {
	start := l.firstOf(a)
	end := l.lastOf(b)

	if start == nil || end == nil {
		return
	}

	cur := start

	for cur != end {
		if l.isLineStart(cur) && !l.hasOriginalIndent(cur) {
			l.IndentLevel(cur, n)
		}

		next, ok := l.tl.Next(cur)
		if !ok {
			return
		}

		cur = next
	}
}

// hasOriginalIndent reports whether x is a comment whose build-time indent
// was recorded by [stream.TokenList.OriginalIndent].
func (l *Layout) hasOriginalIndent(x *parts.Part) bool {
	if !x.IsComment() {
		return false
	}

	_, ok := l.tl.OriginalIndent(x)

	return ok
}

// isLineStart reports whether x is the first syntactic (non-whitespace,
// non-line-break) part of its line.
func (l *Layout) isLineStart(x *parts.Part) bool {
	if x.IsWhitespaceOrLineBreak() {
		return false
	}

	prev, ok := l.tl.Previous(x)
	if !ok || prev.IsLineBreak() {
		return true
	}

	if !prev.IsWhitespace() {
		return false
	}

	before, ok := l.tl.Previous(prev)

	return !ok || before.IsLineBreak()
}
