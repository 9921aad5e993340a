// Package highlight provides a hierarchical styling system for JS syntax
// highlighting.
//
// When rendering a formatted file, each part (keywords, strings, numbers,
// punctuation, comments, ...) needs distinct visual styling.
//
// Rather than requiring themes to define every possible token category, this
// package uses inheritance: unspecified styles automatically fall back to
// their parent category.
//
// For example, [LiteralStringTemplate] inherits from [LiteralString], which
// inherits from [Literal], which inherits from [Text].
//
// # Style Categories
//
// [Style] constants identify token categories following Pygments naming
// conventions. The hierarchy is organized into major groups:
//
//   - [Keyword] -> [KeywordDeclaration], [KeywordControl], [KeywordOperator]
//   - [Literal] -> [LiteralString], [LiteralNumber], [LiteralBoolean],
//     [LiteralNull], [LiteralRegExp]
//   - [Name] -> [NameFunction], [NameProperty]
//   - [Punctuation] -> [PunctuationBracket], [PunctuationDelimiter],
//     [PunctuationOperator]
//   - [Generic] -> [GenericDeleted], [GenericInserted], [GenericError]: diff
//     and error markers
//
// # Classifying Parts
//
// [Classify] maps a [github.com/prettyjs/jsfmt/parts.Part] to a [Style]
// using only its own kind and value. [ClassifyNode] additionally consults
// the part's originating AST node to distinguish, e.g., a function name at
// its declaration site from a plain identifier.
//
// # Creating Style Maps
//
// [NewStyles] creates a [Styles] map that pre-computes inherited styles.
// Provide a base [lipgloss.Style] and use [Set] to override specific
// categories:
//
//	styles := highlight.NewStyles(
//	    lipgloss.NewStyle().Foreground(lipgloss.Color("white")),
//	    highlight.Set(highlight.Comment, lipgloss.NewStyle().Foreground(lipgloss.Color("8"))),
//	    highlight.Set(highlight.LiteralNumber, lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))),
//	)
//
// # Themes
//
// [Theme] looks up one of the built-in themes ("charm", "mono", "solaris")
// by name; [List] enumerates the registered names. [Mode] indicates whether
// a theme targets a light or dark background.
//
// # Rendering
//
// [Printer] renders a [github.com/prettyjs/jsfmt/stream.TokenList] to a
// styled string for terminal display, using a [Printer]'s configured
// [Styles] and [ClassifyNode].
package highlight
