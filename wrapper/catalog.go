package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

// aggregateKinds are the node kinds whose noWrap strategy is only valid
// when the aggregate has zero elements (spec §4.5's "empty aggregate"
// case, consulted by the multi-line pass's decision (a)).
var aggregateKinds = map[string]bool{
	"ArrayExpression":  true,
	"ObjectExpression": true,
	"ArrayPattern":     true,
	"ObjectPattern":    true,
}

// IsEmptyAggregate reports whether node is an array/object literal or
// destructuring pattern with no elements.
func IsEmptyAggregate(node *ast.Node) bool {
	if !aggregateKinds[node.Kind] {
		return false
	}

	return len(aggregateElements(node)) == 0
}

var (
	wrappers   = make(map[string]layout.WrapFunc)
	noWrappers = make(map[string]layout.WrapFunc)
)

// registerWrap records the wrap/noWrap pair for kind. Called from each
// strategy file's init so catalog assembly has no ordering dependency.
func registerWrap(kind string, wrap, noWrap layout.WrapFunc) {
	if wrap != nil {
		wrappers[kind] = wrap
	}

	if noWrap != nil {
		noWrappers[kind] = noWrap
	}
}

// Catalog returns the wrap and noWrap dispatch tables (spec §4.5.2), ready
// to be wired into a [layout.Layout] with [layout.Layout.SetWrapCatalog].
func Catalog() (wrap, noWrap map[string]layout.WrapFunc) {
	w := make(map[string]layout.WrapFunc, len(wrappers))
	for k, v := range wrappers {
		w[k] = v
	}

	n := make(map[string]layout.WrapFunc, len(noWrappers))
	for k, v := range noWrappers {
		n[k] = v
	}

	return w, n
}

// Kinds returns every node kind with a registered wrap or noWrap strategy,
// the universe the multi-line pass (spec §4.6) iterates when deciding
// wrap/noWrap per node.
func Kinds() []string {
	seen := make(map[string]bool, len(wrappers)+len(noWrappers))
	kinds := make([]string, 0, len(wrappers)+len(noWrappers))

	for k := range wrappers {
		if !seen[k] {
			seen[k] = true

			kinds = append(kinds, k)
		}
	}

	for k := range noWrappers {
		if !seen[k] {
			seen[k] = true

			kinds = append(kinds, k)
		}
	}

	return kinds
}
