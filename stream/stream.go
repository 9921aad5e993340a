package stream

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/orderedset"
	"github.com/prettyjs/jsfmt/parts"
)

// TokenList is a domain-aware [orderedset.OrderedSet] of [*parts.Part]: the
// mutable stream that [github.com/prettyjs/jsfmt/layout.Layout] rewrites.
//
// Create instances with [Build].
type TokenList struct {
	set *orderedset.OrderedSet[*parts.Part]

	// originalIndents records, for comments immediately preceded by an
	// indent Whitespace at build time, that indent's original value — used
	// to re-anchor a comment's indentation if the line around it is later
	// reformatted.
	originalIndents map[*parts.Part]string

	// starts, ends, and ordered together record, in increasing source
	// order, the byte range of every token/comment part as built — used by
	// [TokenList.Boundary] to resolve an AST node's (first, last) parts
	// without re-scanning the whole stream. Ranges are retained here for
	// this provenance purpose only (invariant I3); rewrites never update
	// them.
	starts  []int
	ends    []int
	ordered []*parts.Part
}

// Build constructs a [*TokenList] from a parse result and the original
// source text, merging tokens, comments, and inter-token
// whitespace/line-breaks into one ordered, fully-covering part sequence
// (spec data model invariant I2).
func Build(res *ast.Result, text string, opts options.Options) *TokenList {
	tl := &TokenList{
		set:             orderedset.New[*parts.Part](),
		originalIndents: make(map[*parts.Part]string),
	}

	var (
		tokenIndex   int
		commentIndex int
		index        int
	)

	for index < len(text) {
		switch {
		case commentIndex < len(res.Comments) && res.Comments[commentIndex].Range.Start == index:
			c := res.Comments[commentIndex]
			p := parts.NewComment(c.Kind, c.Value)

			if last, ok := tl.set.Last(); ok && tl.isIndentPart(last) {
				tl.originalIndents[p] = last.Value()
			}

			tl.append(p)
			tl.indexRange(c.Range.Start, c.Range.End, p)
			index = c.Range.End
			commentIndex++

		case tokenIndex < len(res.Tokens) && res.Tokens[tokenIndex].Range.Start == index:
			tok := res.Tokens[tokenIndex]

			value := tok.Value
			if tok.Kind == ast.String {
				value = normalizeQuotes(value, opts.Quotes)
			}

			p := parts.NewToken(tok.Kind, value, nil)

			tl.append(p)
			tl.indexRange(tok.Range.Start, tok.Range.End, p)
			index = tok.Range.End
			tokenIndex++

		case isNewlineAt(text, index):
			consumed := newlineWidth(text, index)

			if last, ok := tl.set.Last(); ok && last.IsWhitespace() {
				_ = tl.set.Delete(last)
			}

			if tl.trailingLineBreaks() < opts.MaxEmptyLines+1 {
				tl.append(parts.NewLineBreak())
			}

			index += consumed

		case isSpaceByte(text[index]):
			start := index
			for index < len(text) && isSpaceByte(text[index]) {
				index++
			}

			run := text[start:index]

			last, hasLast := tl.set.Last()
			isIndentRun := !hasLast || last.IsLineBreak()

			switch {
			case isIndentRun:
				tl.append(parts.NewWhitespace(run))
			case opts.CollapseWhitespace:
				tl.append(parts.NewWhitespace(" "))
			default:
				tl.append(parts.NewWhitespace(run))
			}

		default:
			slog.Warn("stream: unhandled byte position, parser should never produce gaps",
				"index", index, "byte", text[index])
			index++
		}
	}

	return tl
}

func (tl *TokenList) append(p *parts.Part) {
	_ = tl.set.Add(p)
}

// indexRange records p's original byte range, appending it to the
// source-ordered range list that [TokenList.Boundary] binary-searches.
func (tl *TokenList) indexRange(start, end int, p *parts.Part) {
	tl.starts = append(tl.starts, start)
	tl.ends = append(tl.ends, end)
	tl.ordered = append(tl.ordered, p)
}

// Boundary resolves an AST node's boundary parts (spec data model, "AST
// node → (first, last)"): the first part at or after start, and the last
// syntactic part strictly inside end, with a trailing semicolon excluded so
// callers can reliably find "the part after the node" as the semicolon
// slot.
func (tl *TokenList) Boundary(start, end int) (first, last *parts.Part, ok bool) {
	n := len(tl.starts)
	if n == 0 {
		return nil, nil, false
	}

	firstIdx := sort.Search(n, func(i int) bool { return tl.starts[i] >= start })
	if firstIdx >= n {
		return nil, nil, false
	}

	lastIdx := sort.Search(n, func(i int) bool { return tl.ends[i] > end }) - 1
	if lastIdx < firstIdx {
		return nil, nil, false
	}

	lp := tl.ordered[lastIdx]
	if lp.IsPunctuator() && lp.Value() == ";" && lastIdx-1 >= firstIdx {
		lp = tl.ordered[lastIdx-1]
	}

	return tl.ordered[firstIdx], lp, true
}

// trailingLineBreaks counts consecutive LineBreak parts at the current tail
// of the stream.
func (tl *TokenList) trailingLineBreaks() int {
	n := 0

	cur, ok := tl.set.Last()
	for ok && cur.IsLineBreak() {
		n++
		cur, ok = tl.set.Previous(cur)
	}

	return n
}

func isNewlineAt(text string, i int) bool {
	return text[i] == '\n' || text[i] == '\r'
}

func newlineWidth(text string, i int) int {
	if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
		return 2
	}

	return 1
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// normalizeQuotes converts a String token's literal value to the configured
// quote style (spec §4.2.1): unchanged if already in that style, otherwise
// strip the delimiters, escape unescaped occurrences of the new delimiter,
// unescape the old one, and re-wrap.
func normalizeQuotes(value string, quotes options.Quotes) string {
	desired := quotes.Char()

	if len(value) < 2 || value[0] == desired {
		return value
	}

	original := value[0]
	body := value[1 : len(value)-1]

	var sb strings.Builder

	sb.Grow(len(body) + 2)
	sb.WriteByte(desired)

	escaped := false

	for i := 0; i < len(body); i++ {
		b := body[i]

		switch {
		case escaped:
			if b == original {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('\\')
				sb.WriteByte(b)
			}

			escaped = false
		case b == '\\':
			escaped = true
		case b == desired:
			sb.WriteByte('\\')
			sb.WriteByte(b)
		default:
			sb.WriteByte(b)
		}
	}

	if escaped {
		sb.WriteByte('\\')
	}

	sb.WriteByte(desired)

	return sb.String()
}

// OriginalIndent returns the verbatim indent whitespace that preceded
// comment when the stream was built, and whether one was recorded.
func (tl *TokenList) OriginalIndent(comment *parts.Part) (string, bool) {
	s, ok := tl.originalIndents[comment]

	return s, ok
}

// Set returns the underlying [*orderedset.OrderedSet] for callers (e.g.
// [github.com/prettyjs/jsfmt/layout]) that need direct insert/delete access.
func (tl *TokenList) Set() *orderedset.OrderedSet[*parts.Part] {
	return tl.set
}

// Size returns the number of parts currently in the stream.
func (tl *TokenList) Size() int {
	return tl.set.Size()
}

// First returns the first part and true, or false if the stream is empty.
func (tl *TokenList) First() (*parts.Part, bool) {
	return tl.set.First()
}

// Last returns the last part and true, or false if the stream is empty.
func (tl *TokenList) Last() (*parts.Part, bool) {
	return tl.set.Last()
}

// Next returns the part following p.
func (tl *TokenList) Next(p *parts.Part) (*parts.Part, bool) {
	return tl.set.Next(p)
}

// Previous returns the part preceding p.
func (tl *TokenList) Previous(p *parts.Part) (*parts.Part, bool) {
	return tl.set.Previous(p)
}

// InsertBefore inserts p immediately before rel.
func (tl *TokenList) InsertBefore(p, rel *parts.Part) error {
	return tl.set.InsertBefore(p, rel)
}

// InsertAfter inserts p immediately after rel.
func (tl *TokenList) InsertAfter(p, rel *parts.Part) error {
	return tl.set.InsertAfter(p, rel)
}

// Delete removes p from the stream.
func (tl *TokenList) Delete(p *parts.Part) error {
	return tl.set.Delete(p)
}

// FindNext scans forward from start (exclusive, or the head if nil).
func (tl *TokenList) FindNext(pred func(*parts.Part) bool, start *parts.Part) (*parts.Part, bool) {
	return tl.set.FindNext(pred, start)
}

// FindPrevious scans backward from start (exclusive, or the tail if nil).
func (tl *TokenList) FindPrevious(pred func(*parts.Part) bool, start *parts.Part) (*parts.Part, bool) {
	return tl.set.FindPrevious(pred, start)
}

// All iterates the stream head to tail.
func (tl *TokenList) All() func(yield func(*parts.Part) bool) {
	return tl.set.All()
}

// Serialize concatenates every part's value in stream order, reproducing
// the formatted output text.
func (tl *TokenList) Serialize() string {
	var sb strings.Builder

	for p := range tl.set.All() {
		sb.WriteString(p.Value())
	}

	return sb.String()
}
