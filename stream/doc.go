// Package stream builds and classifies the token stream: a
// [github.com/prettyjs/jsfmt/orderedset.OrderedSet] of
// [github.com/prettyjs/jsfmt/parts.Part] values produced from a parser's AST,
// token array, comment array, and the original source text.
//
// [Build] walks every byte of the input, turning each token, comment,
// whitespace run and newline into a part, and normalizes as it goes: string
// quotes are converted, whitespace directly before a newline is dropped, a
// "\r\n" pair becomes one LineBreak, and line breaks beyond the configured
// number of empty lines are dropped. The resulting [*TokenList] additionally maintains a
// range-start index used to resolve a node's boundary parts by byte offset.
package stream
