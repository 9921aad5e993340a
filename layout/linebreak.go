package layout

import (
	"github.com/prettyjs/jsfmt/parts"
)

// LineBreakBefore ensures x's line starts with a LineBreak: it scans back
// across any leading-whitespace run before x and inserts one at the run's
// edge, unless a LineBreak already anchors that run (idempotent).
func (l *Layout) LineBreakBefore(x Target) {
	target := l.firstOf(x)
	if target == nil {
		return
	}

	edge := target

	for {
		prev, ok := l.tl.Previous(edge)
		if !ok {
			break
		}

		if prev.IsWhitespace() {
			edge = prev

			continue
		}

		if prev.IsLineBreak() {
			return
		}

		break
	}

	_ = l.tl.InsertBefore(parts.NewLineBreak(), edge)
}

// LineBreakAfter ensures a LineBreak immediately follows x (skipping over
// any trailing inline whitespace first). Idempotent.
func (l *Layout) LineBreakAfter(x Target) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	edge := target

	for {
		next, ok := l.tl.Next(edge)
		if !ok {
			break
		}

		if next.IsWhitespace() {
			edge = next

			continue
		}

		if next.IsLineBreak() {
			return
		}

		break
	}

	_ = l.tl.InsertAfter(parts.NewLineBreak(), edge)
}

// NoLineBreakBefore removes a LineBreak anchoring x's leading-whitespace
// run, if present, and collapses the whitespace that was split across it
// into a single inline space.
func (l *Layout) NoLineBreakBefore(x Target) {
	target := l.firstOf(x)
	if target == nil {
		return
	}

	edge := target

	for {
		prev, ok := l.tl.Previous(edge)
		if !ok {
			return
		}

		if prev.IsWhitespace() {
			edge = prev

			continue
		}

		if prev.IsLineBreak() {
			_ = l.tl.Delete(prev)
			l.collapseWhitespaceRun(edge)

			return
		}

		return
	}
}

// NoLineBreakAfter removes a LineBreak immediately following x's
// trailing-whitespace run, if present, collapsing the remaining whitespace
// to a single inline space.
func (l *Layout) NoLineBreakAfter(x Target) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	edge := target

	for {
		next, ok := l.tl.Next(edge)
		if !ok {
			return
		}

		if next.IsWhitespace() {
			edge = next

			continue
		}

		if next.IsLineBreak() {
			_ = l.tl.Delete(next)
			l.collapseWhitespaceRun(edge)

			return
		}

		return
	}
}

// collapseWhitespaceRun merges any Whitespace parts adjacent to anchor into
// a single inline-space part, restoring invariant I4 after a LineBreak that
// separated two whitespace runs is removed.
func (l *Layout) collapseWhitespaceRun(anchor *parts.Part) {
	if anchor.IsWhitespace() {
		if prev, ok := l.tl.Previous(anchor); ok && prev.IsWhitespace() {
			_ = l.tl.Delete(anchor)
			anchor = prev
		}

		if next, ok := l.tl.Next(anchor); ok && next.IsWhitespace() {
			_ = l.tl.Delete(next)
		}

		anchor.SetValue(" ")

		return
	}

	prev, hasPrev := l.tl.Previous(anchor)
	next, hasNext := l.tl.Next(anchor)

	if hasPrev && hasNext && prev.IsWhitespace() && next.IsWhitespace() {
		_ = l.tl.Delete(next)
		prev.SetValue(" ")
	}
}

// NoEmptyLineAfter deletes extra consecutive LineBreak parts after x,
// leaving at most one.
func (l *Layout) NoEmptyLineAfter(x Target) {
	target := l.lastOf(x)
	if target == nil {
		return
	}

	first, ok := l.tl.Next(target)
	if !ok || !first.IsLineBreak() {
		return
	}

	cur, ok := l.tl.Next(first)
	for ok && cur.IsLineBreak() {
		toDelete := cur

		cur, ok = l.tl.Next(cur)

		_ = l.tl.Delete(toDelete)
	}
}
