package layout

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/measure"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/parts"
	"github.com/prettyjs/jsfmt/stream"
	"github.com/prettyjs/jsfmt/visitor"
)

// boundary is a node's first and last syntactic part, as resolved from its
// byte range at construction time.
type boundary struct {
	first, last *parts.Part
}

// Target is either a *[ast.Node] (resolved to its first/last boundary part,
// as each primitive requires) or a *[parts.Part] directly.
type Target = any

// WrapFunc is a per-node-type wrap or unwrap strategy, written entirely in
// terms of Layout primitives (spec §4.5). Implementations live in
// [github.com/prettyjs/jsfmt/wrapper]; see [Layout.SetWrapCatalog].
type WrapFunc func(l *Layout, node *ast.Node)

// Layout is the operation surface over a [*stream.TokenList] plus the
// AST-to-(first,last) boundary map; every style rule in
// [github.com/prettyjs/jsfmt/rules] is written against its primitives.
//
// Create instances with [New].
type Layout struct {
	tl       *stream.TokenList
	opts     options.Options
	root     *ast.Node
	measurer *measure.Measurer

	boundaries map[*ast.Node]boundary
	parents    map[*ast.Node]*ast.Node

	wrappers   map[string]WrapFunc
	noWrappers map[string]WrapFunc
}

// New builds a [*Layout] over tl: it walks root once (using keys to resolve
// child fields) to populate every node's (first, last) boundary from tl's
// range-start index, and its parent (used by the §4.5.1
// variable-declaration indent correction, the one wrap rule that depends on
// parent context).
func New(tl *stream.TokenList, root *ast.Node, keys ast.VisitorKeys, opts options.Options) *Layout {
	l := &Layout{
		tl:         tl,
		opts:       opts,
		root:       root,
		measurer:   measure.New(measure.WithTabWidth(opts.TabWidth)),
		boundaries: make(map[*ast.Node]boundary),
		parents:    make(map[*ast.Node]*ast.Node),
		wrappers:   make(map[string]WrapFunc),
		noWrappers: make(map[string]WrapFunc),
	}

	if root != nil {
		visitor.New(keys).Visit(root, func(node, parent *ast.Node) {
			if parent != nil {
				l.parents[node] = parent
			}

			first, last, ok := tl.Boundary(node.Range.Start, node.Range.End)
			if !ok {
				return
			}

			l.boundaries[node] = boundary{first: first, last: last}
		})
	}

	return l
}

// TokenList returns the underlying stream.
func (l *Layout) TokenList() *stream.TokenList {
	return l.tl
}

// Options returns the configured style options.
func (l *Layout) Options() options.Options {
	return l.opts
}

// Root returns the AST root this layout was built from.
func (l *Layout) Root() *ast.Node {
	return l.root
}

// SetWrapCatalog registers the wrap/noWrap strategy tables used by
// [Layout.Wrap] and [Layout.NoWrap]. Node kinds absent from either map are a
// no-op when dispatched (spec §4.5.2: "not every node type has a wrap
// strategy").
func (l *Layout) SetWrapCatalog(wrappers, noWrappers map[string]WrapFunc) {
	l.wrappers = wrappers
	l.noWrappers = noWrappers
}

// firstOf resolves x to its first boundary part.
func (l *Layout) firstOf(x Target) *parts.Part {
	switch v := x.(type) {
	case *parts.Part:
		return v
	case *ast.Node:
		b, ok := l.boundaries[v]
		if !ok {
			return nil
		}

		return b.first
	default:
		return nil
	}
}

// lastOf resolves x to its last boundary part.
func (l *Layout) lastOf(x Target) *parts.Part {
	switch v := x.(type) {
	case *parts.Part:
		return v
	case *ast.Node:
		b, ok := l.boundaries[v]
		if !ok {
			return nil
		}

		return b.last
	default:
		return nil
	}
}

// FirstToken returns node's first boundary part, or nil if node has none
// recorded (e.g. an empty range).
func (l *Layout) FirstToken(node *ast.Node) *parts.Part {
	b, ok := l.boundaries[node]
	if !ok {
		return nil
	}

	return b.first
}

// LastToken returns node's last boundary part (trailing semicolon
// excluded), or nil if node has none recorded.
func (l *Layout) LastToken(node *ast.Node) *parts.Part {
	b, ok := l.boundaries[node]
	if !ok {
		return nil
	}

	return b.last
}

// BoundaryTokens returns node's (first, last) boundary parts and whether
// both were resolved.
func (l *Layout) BoundaryTokens(node *ast.Node) (first, last *parts.Part, ok bool) {
	b, ok := l.boundaries[node]

	return b.first, b.last, ok
}

// Parent returns node's AST parent and true, or false at the root.
func (l *Layout) Parent(node *ast.Node) (*ast.Node, bool) {
	p, ok := l.parents[node]

	return p, ok
}
