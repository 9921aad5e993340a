// Package layout owns a [Layout]: a token stream plus the AST-to-(first,
// last) boundary map, options, and AST reference it was built from. It
// exposes the full idempotent rewrite vocabulary — whitespace, line-break,
// semicolon/comma, indent, query, metric, and wrap primitives — that every
// style rule in [github.com/prettyjs/jsfmt/rules] is written against.
//
// Wrap strategies themselves live in [github.com/prettyjs/jsfmt/wrapper] to
// avoid an import cycle (a [WrapFunc] takes a *Layout, so the dependency
// runs wrapper → layout only); callers wire a wrap catalog into a Layout
// with [Layout.SetWrapCatalog] after constructing both.
package layout
