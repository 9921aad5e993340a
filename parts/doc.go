// Package parts defines [Part], the atomic element of the mutable token
// stream that [github.com/prettyjs/jsfmt/stream] builds and
// [github.com/prettyjs/jsfmt/layout] rewrites.
//
// A source file is represented as an ordered sequence of Parts: lexical
// tokens, comments, and the whitespace/line-break parts between them. Unlike
// a plain token array, whitespace and line breaks are first-class parts so
// that layout passes can insert, remove, and query them the same way they do
// tokens.
package parts
