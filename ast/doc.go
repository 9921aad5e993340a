// Package ast defines the parser contract this module consumes: an AST of
// generic [Node] values with byte ranges, a token/comment stream, and a
// [VisitorKeys] table describing how to walk unknown node kinds.
//
// The lexical/grammar parser itself is out of scope for this module (see
// [github.com/prettyjs/jsfmt/jsparser] for one concrete implementation); this
// package only fixes the shape a parser must hand back so that
// [github.com/prettyjs/jsfmt/stream], [github.com/prettyjs/jsfmt/visitor],
// and [github.com/prettyjs/jsfmt/layout] can build on it without depending on
// any particular grammar.
package ast
