package jsparser

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

// tryParseArrow attempts to parse an arrow function starting at the
// cursor, reporting ok=false (and leaving the cursor untouched) if the
// lookahead doesn't confirm one: a bare identifier or a parenthesized
// parameter list must be followed by `=>`.
func (p *parser) tryParseArrow() (*ast.Node, bool, error) {
	start := p.cur()

	async := p.is("async") && p.peekAt(1).Value != "function"
	base := p.pos

	if async {
		base++
	}

	if base >= len(p.tokens) {
		return nil, false, nil
	}

	tok := p.tokens[base]

	switch {
	case tok.Kind == ast.Identifier:
		if base+1 >= len(p.tokens) || p.tokens[base+1].Value != "=>" {
			return nil, false, nil
		}

		if async {
			p.advance()
		}

		idTok := p.advance()
		param := ast.NewNode("Identifier", position.NewSpan(idTok.Range.Start, idTok.Range.End))
		param.Set("name", idTok.Value)
		p.advance() // '=>'

		body, err := p.parseArrowBody()
		if err != nil {
			return nil, false, err
		}

		node := ast.NewNode("ArrowFunctionExpression", position.NewSpan(start.Range.Start, body.Range.End))
		node.Set("params", []*ast.Node{param}).Set("body", body).Set("async", async)

		return node, true, nil

	case tok.Value == "(":
		closeIdx, ok := p.matchingParen(base)
		if !ok || closeIdx+1 >= len(p.tokens) || p.tokens[closeIdx+1].Value != "=>" {
			return nil, false, nil
		}

		if async {
			p.advance()
		}

		params, err := p.parseParams()
		if err != nil {
			return nil, false, err
		}

		p.advance() // '=>'

		body, err := p.parseArrowBody()
		if err != nil {
			return nil, false, err
		}

		node := ast.NewNode("ArrowFunctionExpression", position.NewSpan(start.Range.Start, body.Range.End))
		node.Set("params", params).Set("body", body).Set("async", async)

		return node, true, nil

	default:
		return nil, false, nil
	}
}

// matchingParen returns the index of the ")" balancing the "(" at
// openIdx, or false if the token stream runs out first.
func (p *parser) matchingParen(openIdx int) (int, bool) {
	depth := 0

	for i := openIdx; i < len(p.tokens); i++ {
		switch p.tokens[i].Value {
		case "(":
			depth++
		case ")":
			depth--

			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

func (p *parser) parseArrowBody() (*ast.Node, error) {
	if p.is("{") {
		return p.parseBlockStatement()
	}

	return p.parseAssignment()
}

// parseParams parses a parenthesized, comma-separated parameter list of
// binding targets, with `...rest` support.
func (p *parser) parseParams() ([]*ast.Node, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	params := []*ast.Node{}

	for !p.is(")") {
		var (
			param *ast.Node
			err   error
		)

		if p.is("...") {
			param, err = p.parseRestElement()
		} else {
			param, err = p.parseBindingTarget()
		}

		if err != nil {
			return nil, err
		}

		params = append(params, param)

		if p.is(",") {
			p.advance()

			continue
		}

		break
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *parser) parseRestElement() (*ast.Node, error) {
	start := p.advance() // '...'

	arg, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("RestElement", position.NewSpan(start.Range.Start, arg.Range.End))
	node.Set("argument", arg)

	return node, nil
}

// parseBindingTarget parses an Identifier, ArrayPattern, or ObjectPattern —
// anywhere a declarator id, function parameter, or for-in/for-of left-hand
// side can appear.
func (p *parser) parseBindingTarget() (*ast.Node, error) {
	switch {
	case p.is("["):
		return p.parseArrayPattern()
	case p.is("{"):
		return p.parseObjectPattern()
	default:
		tok := p.advance()
		node := ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
		node.Set("name", tok.Value)

		return node, nil
	}
}

func (p *parser) parseArrayPattern() (*ast.Node, error) {
	opener := p.advance() // '['

	elements := []*ast.Node{}

	for !p.is("]") {
		if p.is(",") {
			elements = append(elements, nil)
			p.advance()

			continue
		}

		var (
			el  *ast.Node
			err error
		)

		if p.is("...") {
			el, err = p.parseRestElement()
		} else {
			el, err = p.parseBindingTarget()
		}

		if err != nil {
			return nil, err
		}

		elements = append(elements, el)

		if p.is(",") {
			p.advance()

			continue
		}

		break
	}

	closer, err := p.expect("]")
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("ArrayPattern", position.NewSpan(opener.Range.Start, closer.Range.End))
	node.Set("elements", elements)

	return node, nil
}

func (p *parser) parseObjectPattern() (*ast.Node, error) {
	opener := p.advance() // '{'

	props := []*ast.Node{}

	for !p.is("}") {
		if p.is("...") {
			el, err := p.parseRestElement()
			if err != nil {
				return nil, err
			}

			props = append(props, el)
		} else {
			prop, err := p.parsePatternProperty()
			if err != nil {
				return nil, err
			}

			props = append(props, prop)
		}

		if p.is(",") {
			p.advance()

			continue
		}

		break
	}

	closer, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("ObjectPattern", position.NewSpan(opener.Range.Start, closer.Range.End))
	node.Set("properties", props)

	return node, nil
}

func (p *parser) parsePatternProperty() (*ast.Node, error) {
	start := p.cur()
	computed := false

	var (
		key *ast.Node
		err error
	)

	if p.is("[") {
		computed = true
		p.advance()

		key, err = p.parseAssignment()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect("]"); err != nil {
			return nil, err
		}
	} else {
		key, err = p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
	}

	if !p.is(":") {
		node := ast.NewNode("Property", position.NewSpan(start.Range.Start, key.Range.End))
		node.Set("key", key).Set("value", key).Set("computed", computed).Set("shorthand", true)

		return node, nil
	}

	p.advance() // ':'

	value, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("Property", position.NewSpan(start.Range.Start, value.Range.End))
	node.Set("key", key).Set("value", value).Set("computed", computed).Set("shorthand", false)

	return node, nil
}

// parseFunction parses a `function` expression or declaration: the
// `function` keyword, an optional `*` (generators are accepted
// syntactically but not otherwise distinguished), an optional name,
// parameters, and a block body.
func (p *parser) parseFunction(isDeclaration bool) (*ast.Node, error) {
	start := p.advance() // 'function'

	if p.is("*") {
		p.advance()
	}

	var id *ast.Node

	if p.cur().Kind == ast.Identifier {
		tok := p.advance()
		id = ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
		id.Set("name", tok.Value)
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	kind := "FunctionExpression"
	if isDeclaration {
		kind = "FunctionDeclaration"
	}

	node := ast.NewNode(kind, position.NewSpan(start.Range.Start, body.Range.End))
	node.Set("id", id).Set("params", params).Set("body", body)

	return node, nil
}

// parseFunctionTail parses a method shorthand's parameter list and body
// (the `function` keyword and name are never present for these), always
// producing a FunctionExpression.
func (p *parser) parseFunctionTail(start ast.Token, isDeclaration bool) (*ast.Node, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	kind := "FunctionExpression"
	if isDeclaration {
		kind = "FunctionDeclaration"
	}

	node := ast.NewNode(kind, position.NewSpan(start.Range.Start, body.Range.End))
	node.Set("id", nil).Set("params", params).Set("body", body)

	return node, nil
}
