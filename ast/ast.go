package ast

import (
	"github.com/prettyjs/jsfmt/position"
)

// Node is a generic AST node as produced by the consumed parser: a node
// kind, a byte range, and a set of named child fields.
//
// A field's value is one of: *Node (a single child), []*Node (an ordered
// list of children, e.g. statement bodies or argument lists), or a scalar
// (string/float64/bool/nil) for leaf data such as an identifier's name or a
// numeric literal's parsed value.
//
// Node identity is pointer identity: two *Node values are the same AST node
// iff they are the same pointer. This is what makes the AST-to-(first,last)
// boundary map in layout.Layout stable across stream rewrites.
type Node struct {
	// Kind is the node's type discriminator, e.g. "CallExpression".
	Kind string
	// Range is the node's byte span in the original source text.
	Range position.Span
	// Fields holds named children and scalar leaf data.
	Fields map[string]any
}

// NewNode creates a [*Node] with an initialized Fields map.
func NewNode(kind string, span position.Span) *Node {
	return &Node{Kind: kind, Range: span, Fields: make(map[string]any)}
}

// Set stores a field value (child [*Node], []*Node, or scalar) and returns
// the node for chaining.
func (n *Node) Set(field string, value any) *Node {
	n.Fields[field] = value

	return n
}

// Child returns the single-node value of field, or nil if absent or not a
// *Node.
func (n *Node) Child(field string) *Node {
	v, ok := n.Fields[field]
	if !ok {
		return nil
	}

	child, _ := v.(*Node)

	return child
}

// Children returns the node-list value of field, or nil if absent.
//
// A field holding a single *Node is treated as a one-element list, so
// callers do not need to special-case singular vs. plural fields.
func (n *Node) Children(field string) []*Node {
	v, ok := n.Fields[field]
	if !ok {
		return nil
	}

	switch val := v.(type) {
	case []*Node:
		return val
	case *Node:
		if val == nil {
			return nil
		}

		return []*Node{val}
	default:
		return nil
	}
}

// Scalar returns the leaf value of field and whether it was present.
func (n *Node) Scalar(field string) (any, bool) {
	v, ok := n.Fields[field]

	return v, ok
}

// String returns the string-typed leaf value of field, or "" if absent or
// not a string.
func (n *Node) String(field string) string {
	v, ok := n.Fields[field]
	if !ok {
		return ""
	}

	s, _ := v.(string)

	return s
}

// Bool returns the bool-typed leaf value of field.
func (n *Node) Bool(field string) bool {
	v, ok := n.Fields[field]
	if !ok {
		return false
	}

	b, _ := v.(bool)

	return b
}

// VisitorKeys maps a node kind to the ordered list of its child-bearing
// field names, in source-visitation order. A kind absent from the table
// falls back to visiting every field of the node, in map iteration order
// (undefined order; see [ast.VisitorKeys.FieldsFor]).
type VisitorKeys map[string][]string

// FieldsFor returns the ordered child field names for kind, falling back to
// an arbitrary enumeration of n's Fields when kind is not in the table.
func (vk VisitorKeys) FieldsFor(kind string, n *Node) []string {
	if fields, ok := vk[kind]; ok {
		return fields
	}

	fields := make([]string, 0, len(n.Fields))
	for f := range n.Fields {
		fields = append(fields, f)
	}

	return fields
}

// TokenKind discriminates lexical [Token] categories.
type TokenKind int

// Token kinds.
const (
	Keyword TokenKind = iota
	Identifier
	Punctuator
	String
	Numeric
	Boolean
	Null
	Template
	RegExp
)

// Token is a single lexical token as produced by the parser's tokens array.
type Token struct {
	Kind  TokenKind
	Value string
	Range position.Span
}

// CommentKind discriminates [Comment] categories.
type CommentKind int

// Comment kinds.
const (
	LineComment CommentKind = iota
	BlockComment
	HashbangComment
)

// Comment is a single comment as produced by the parser's comments array.
type Comment struct {
	Kind  CommentKind
	Value string
	Range position.Span
}

// ParseOptions are the flags requested of the consumed parser.
type ParseOptions struct {
	Comment      bool
	Tokens       bool
	Range        bool
	Loc          bool
	SourceType   string // "module" or "script"
	JSX          bool
	GlobalReturn bool
}

// Result is everything a parse call hands back: the AST root, the flat
// token and comment arrays, and the visitor-key table describing how to
// walk the AST generically.
type Result struct {
	Root        *Node
	Tokens      []Token
	Comments    []Comment
	VisitorKeys VisitorKeys
}

// Parser is the consumed lexical/grammar parser contract (spec.md §6).
// Implementations are collaborators: this module never inspects grammar
// rules, only the [Result] shape above.
type Parser interface {
	Parse(text string, opts ParseOptions) (*Result, error)
}
