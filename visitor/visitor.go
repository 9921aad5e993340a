package visitor

import (
	"github.com/prettyjs/jsfmt/ast"
)

// Callback is invoked for every visited node, parent included (nil at the
// root).
type Callback func(node, parent *ast.Node)

// Visitor performs a depth-first, pre-order walk of an AST using an
// externally supplied visitor-key table to determine each node kind's
// child-bearing fields (spec §4.3); node kinds absent from the table fall
// back to visiting every field of the node (undefined order, see
// [ast.VisitorKeys.FieldsFor]).
//
// Create instances with [New].
type Visitor struct {
	keys ast.VisitorKeys
}

// New creates a [*Visitor] using keys to resolve child fields.
func New(keys ast.VisitorKeys) *Visitor {
	return &Visitor{keys: keys}
}

// Visit walks root depth-first, pre-order, invoking cb(node, parent) for
// root and every descendant in source order. cb is invoked for root with a
// nil parent.
func (v *Visitor) Visit(root *ast.Node, cb Callback) {
	v.visit(root, nil, cb)
}

func (v *Visitor) visit(node, parent *ast.Node, cb Callback) {
	if node == nil {
		return
	}

	cb(node, parent)

	for _, field := range v.keys.FieldsFor(node.Kind, node) {
		value, ok := node.Fields[field]
		if !ok {
			continue
		}

		switch val := value.(type) {
		case *ast.Node:
			v.visit(val, node, cb)
		case []*ast.Node:
			for _, child := range val {
				v.visit(child, node, cb)
			}
		}
	}
}

// Handler is a per-node-type callback registered by a style-rule pass.
type Handler func(node, parent *ast.Node)

// HandlerMap maps a node kind to its handler, as produced by a pass
// factory.
type HandlerMap map[string]Handler

// PassFactory builds a [HandlerMap] from a caller-supplied context (spec
// §4.3: "pass factories (context → { NodeType: handler, … })").
type PassFactory[C any] func(ctx C) HandlerMap

// TaskVisitor composes several pass factories into one traversal: at each
// node, every handler registered for that node's kind runs, in
// pass-registration order.
//
// Create instances with [NewTaskVisitor].
type TaskVisitor[C any] struct {
	visitor *Visitor
	passes  []HandlerMap
}

// NewTaskVisitor builds handler maps from each factory (applied to ctx) and
// returns a [*TaskVisitor] ready to [TaskVisitor.Run].
func NewTaskVisitor[C any](keys ast.VisitorKeys, ctx C, factories ...PassFactory[C]) *TaskVisitor[C] {
	passes := make([]HandlerMap, 0, len(factories))
	for _, f := range factories {
		passes = append(passes, f(ctx))
	}

	return &TaskVisitor[C]{visitor: New(keys), passes: passes}
}

// Run walks root once, invoking every pass's handler for each node kind, in
// pass-registration order, before descending to children.
func (tv *TaskVisitor[C]) Run(root *ast.Node) {
	tv.visitor.Visit(root, func(node, parent *ast.Node) {
		for _, pass := range tv.passes {
			if h, ok := pass[node.Kind]; ok {
				h(node, parent)
			}
		}
	})
}
