package jsparser

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

// Parser implements [github.com/prettyjs/jsfmt/ast.Parser]. Its zero value
// is ready to use.
type Parser struct{}

// New returns a ready-to-use [*Parser].
func New() *Parser {
	return &Parser{}
}

// Parse tokenizes and parses text, returning the AST, flat token/comment
// arrays, and visitor-key table the rest of the module needs. opts.Comment
// and opts.Tokens are implicitly always honored (jsparser always returns
// both); opts.SourceType/JSX/GlobalReturn are accepted but do not change
// parsing, since this grammar subset doesn't distinguish module vs. script
// scoping rules.
func (pr *Parser) Parse(text string, opts ast.ParseOptions) (*ast.Result, error) {
	tokens, comments, err := newLexer(text).run()
	if err != nil {
		return nil, err
	}

	p := &parser{cursor: &cursor{tokens: tokens}}

	body, err := p.parseProgram()
	if err != nil {
		return nil, err
	}

	var span position.Span
	if len(body) > 0 {
		span = position.NewSpan(body[0].Range.Start, body[len(body)-1].Range.End)
	} else {
		span = position.NewSpan(0, len(text))
	}

	root := ast.NewNode("Program", span)
	root.Set("body", body)

	return &ast.Result{
		Root:        root,
		Tokens:      tokens,
		Comments:    comments,
		VisitorKeys: VisitorKeys,
	}, nil
}
