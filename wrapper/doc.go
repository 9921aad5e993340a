// Package wrapper implements one wrap and one noWrap strategy per
// wrappable AST node kind (arrays/objects, calls, conditionals,
// binary/logical expressions, functions, imports, template literals,
// member expressions, and control-flow statements with a test clause),
// written entirely in terms of [github.com/prettyjs/jsfmt/layout.Layout]
// primitives.
//
// [Catalog] returns the two dispatch tables a caller wires into a
// [layout.Layout] with [layout.Layout.SetWrapCatalog]; this indirection (the
// tables are plain maps of [layout.WrapFunc], not a direct Layout method
// set) is what keeps the wrapper → layout dependency one-directional.
package wrapper
