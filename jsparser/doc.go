// Package jsparser is a compact recursive-descent tokenizer/parser for the
// curly-brace scripting language this module formats. It implements
// [github.com/prettyjs/jsfmt/ast.Parser], the only contract the rest of the
// module depends on: a lexical/grammar parser is a collaborator, and
// jsparser is kept deliberately small (common statement and expression
// forms only) so the token stream/layout engine remains the bulk of the
// repository.
//
// Unsupported: regular expression literals (division is always a
// punctuator), `yield` expressions (the generator `*` marker is accepted and
// skipped, but `yield` is a keyword that no expression form accepts, so it
// is a parse error), and default values in parameters and destructuring
// patterns (`a = 1` in a binding position is a parse error). Class declarations parse in their
// minimal form (name, optional superclass, method bodies) without getters,
// setters, or field declarations. None of these affect the formatter's core
// machinery, which operates on whatever subset of the grammar a given
// source file happens to use.
package jsparser
