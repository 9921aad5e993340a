package layout

import (
	"github.com/prettyjs/jsfmt/ast"
)

// Wrap dispatches to the registered [WrapFunc] for node.Kind, laying its
// boundary out across multiple lines. A kind absent from the catalog is a
// no-op (spec §4.5.2: not every node type has a wrap strategy).
func (l *Layout) Wrap(node *ast.Node) {
	if w, ok := l.wrappers[node.Kind]; ok {
		w(l, node)
	}
}

// NoWrap dispatches to the registered unwrap [WrapFunc] for node.Kind,
// collapsing its boundary onto a single line where grammatically valid. A
// kind absent from the catalog is a no-op.
func (l *Layout) NoWrap(node *ast.Node) {
	if w, ok := l.noWrappers[node.Kind]; ok {
		w(l, node)
	}
}
