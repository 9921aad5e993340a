package layout

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/parts"
)

// IsSameLine reports whether a and b have no LineBreak part between them,
// in either order.
func (l *Layout) IsSameLine(a, b Target) bool {
	pa, pb := l.firstOf(a), l.firstOf(b)
	if pa == nil || pb == nil {
		return false
	}

	if pa == pb {
		return true
	}

	if stopped, ok := l.tl.FindNext(func(p *parts.Part) bool { return p == pb || p.IsLineBreak() }, pa); ok && stopped == pb {
		return true
	}

	if stopped, ok := l.tl.FindNext(func(p *parts.Part) bool { return p == pa || p.IsLineBreak() }, pb); ok && stopped == pa {
		return true
	}

	return false
}

// IsMultiLine reports whether node's first and last boundary parts are not
// on the same line.
func (l *Layout) IsMultiLine(node *ast.Node) bool {
	first, last, ok := l.BoundaryTokens(node)
	if !ok {
		return false
	}

	return !l.IsSameLine(first, last)
}

// GetLength returns the tab-expanded column count of the stream between a
// and b, inclusive of both endpoints' own values.
func (l *Layout) GetLength(a, b Target) int {
	pa, pb := l.firstOf(a), l.lastOf(b)
	if pa == nil || pb == nil {
		return 0
	}

	col := 0
	cur := pa

	for {
		col = l.measurer.Column(col, cur.Value())

		if cur == pb {
			return col
		}

		next, ok := l.tl.Next(cur)
		if !ok {
			return col
		}

		cur = next
	}
}

// GetLineLength returns the tab-expanded column count of the line
// containing node's first token, from that line's start through its end
// (next LineBreak or stream end).
func (l *Layout) GetLineLength(node *ast.Node) int {
	first := l.FirstToken(node)
	if first == nil {
		return 0
	}

	return l.lineLengthAt(first)
}

// LineLengthAt returns the tab-expanded column count of the line containing
// x, from that line's start through its end (next LineBreak or stream
// end). Unlike [Layout.GetLineLength], x may be any part, not just a
// node's first token — used by callers (e.g. DoWhileStatement's trailing
// `while (...)` clause) that measure a different line than the node's own
// first line.
func (l *Layout) LineLengthAt(x Target) int {
	p := l.firstOf(x)
	if p == nil {
		return 0
	}

	return l.lineLengthAt(p)
}

func (l *Layout) lineLengthAt(first *parts.Part) int {
	lineStart := first

	for {
		prev, ok := l.tl.Previous(lineStart)
		if !ok || prev.IsLineBreak() {
			break
		}

		lineStart = prev
	}

	col := 0

	for p := lineStart; ; {
		col = l.measurer.Column(col, p.Value())

		next, ok := l.tl.Next(p)
		if !ok || next.IsLineBreak() {
			return col
		}

		p = next
	}
}

// IsLineTooLong reports whether x's line exceeds the configured
// MaxLineLength.
func (l *Layout) IsLineTooLong(x Target) bool {
	return l.LineLengthAt(x) > l.opts.MaxLineLength
}
