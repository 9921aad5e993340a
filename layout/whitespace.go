package layout

import (
	"github.com/prettyjs/jsfmt/parts"
)

// SpaceBefore ensures a single-space Whitespace part immediately precedes x.
// A no-op if x is already preceded by Whitespace or a LineBreak.
func (l *Layout) SpaceBefore(x Target) {
	target := l.firstOf(x)
	if target == nil {
		return
	}

	if prev, ok := l.tl.Previous(target); ok && (prev.IsWhitespace() || prev.IsLineBreak()) {
		return
	}

	_ = l.tl.InsertBefore(parts.NewWhitespace(" "), target)
}

// SpaceAfter ensures a single-space Whitespace part immediately follows x.
// A no-op if x is already followed by Whitespace or a LineBreak, or if x is
// the last part of the stream (there is nothing to separate it from).
func (l *Layout) SpaceAfter(x Target) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	next, ok := l.tl.Next(target)
	if !ok || next.IsWhitespace() || next.IsLineBreak() {
		return
	}

	_ = l.tl.InsertAfter(parts.NewWhitespace(" "), target)
}

// NoSpaceBefore removes an adjacent Whitespace part immediately preceding x,
// if present. A LineBreak is left untouched; an indent Whitespace directly
// before x is removed like any other.
func (l *Layout) NoSpaceBefore(x Target) {
	target := l.firstOf(x)
	if target == nil {
		return
	}

	if prev, ok := l.tl.Previous(target); ok && prev.IsWhitespace() {
		_ = l.tl.Delete(prev)
	}
}

// NoSpaceAfter removes an adjacent Whitespace part immediately following x,
// if present. A LineBreak is left untouched.
func (l *Layout) NoSpaceAfter(x Target) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	if next, ok := l.tl.Next(target); ok && next.IsWhitespace() {
		_ = l.tl.Delete(next)
	}
}

// Spaces ensures a single space on both sides of x.
func (l *Layout) Spaces(x Target) {
	l.SpaceBefore(x)
	l.SpaceAfter(x)
}

// NoSpaces removes adjacent Whitespace on both sides of x.
func (l *Layout) NoSpaces(x Target) {
	l.NoSpaceBefore(x)
	l.NoSpaceAfter(x)
}
