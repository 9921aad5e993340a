package layout

import (
	"github.com/prettyjs/jsfmt/parts"
)

// NextToken returns the first token part after x, skipping whitespace,
// line breaks, and comments.
func (l *Layout) NextToken(x Target) (*parts.Part, bool) {
	return l.scanNext(x, func(p *parts.Part) bool { return p.IsToken() })
}

// PreviousToken returns the first token part before x, skipping whitespace,
// line breaks, and comments.
func (l *Layout) PreviousToken(x Target) (*parts.Part, bool) {
	return l.scanPrevious(x, func(p *parts.Part) bool { return p.IsToken() })
}

// NextTokenOrComment returns the first token-or-comment part after x,
// skipping only whitespace and line breaks.
func (l *Layout) NextTokenOrComment(x Target) (*parts.Part, bool) {
	return l.scanNext(x, func(p *parts.Part) bool { return p.IsToken() || p.IsComment() })
}

// PreviousTokenOrComment returns the first token-or-comment part before x,
// skipping only whitespace and line breaks.
func (l *Layout) PreviousTokenOrComment(x Target) (*parts.Part, bool) {
	return l.scanPrevious(x, func(p *parts.Part) bool { return p.IsToken() || p.IsComment() })
}

func (l *Layout) scanNext(x Target, pred func(*parts.Part) bool) (*parts.Part, bool) {
	cur := l.lastOf(x)
	if cur == nil {
		return nil, false
	}

	for {
		next, ok := l.tl.Next(cur)
		if !ok {
			return nil, false
		}

		if pred(next) {
			return next, true
		}

		cur = next
	}
}

func (l *Layout) scanPrevious(x Target, pred func(*parts.Part) bool) (*parts.Part, bool) {
	cur := l.firstOf(x)
	if cur == nil {
		return nil, false
	}

	for {
		prev, ok := l.tl.Previous(cur)
		if !ok {
			return nil, false
		}

		if pred(prev) {
			return prev, true
		}

		cur = prev
	}
}

// FindNext scans the stream forward from x (exclusive) for the first part
// whose value equals needle.
func (l *Layout) FindNext(needle string, x Target) (*parts.Part, bool) {
	return l.tl.FindNext(func(p *parts.Part) bool { return p.Value() == needle }, l.lastOf(x))
}

// FindPrevious scans the stream backward from x (exclusive) for the first
// part whose value equals needle.
func (l *Layout) FindPrevious(needle string, x Target) (*parts.Part, bool) {
	return l.tl.FindPrevious(func(p *parts.Part) bool { return p.Value() == needle }, l.firstOf(x))
}

// FindNextFunc scans the stream forward from x (exclusive) for the first
// part matching pred.
func (l *Layout) FindNextFunc(pred func(*parts.Part) bool, x Target) (*parts.Part, bool) {
	return l.tl.FindNext(pred, l.lastOf(x))
}

// FindPreviousFunc scans the stream backward from x (exclusive) for the
// first part matching pred.
func (l *Layout) FindPreviousFunc(pred func(*parts.Part) bool, x Target) (*parts.Part, bool) {
	return l.tl.FindPrevious(pred, l.firstOf(x))
}
