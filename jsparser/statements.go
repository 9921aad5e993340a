package jsparser

import (
	"fmt"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

// consumeSemicolon eats a trailing ";" if present. Automatic semicolon
// insertion is not otherwise modeled: a missing terminator is accepted
// silently, since the semicolons style-rule pass normalizes it on output
// regardless of what the source wrote.
func (p *parser) consumeSemicolon() {
	if p.is(";") {
		p.advance()
	}
}

func (p *parser) parseProgram() ([]*ast.Node, error) {
	body := []*ast.Node{}

	for !p.eof() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		body = append(body, stmt)
	}

	return body, nil
}

func (p *parser) parseStatement() (*ast.Node, error) {
	switch {
	case p.is("{"):
		return p.parseBlockStatement()
	case p.is("var", "let", "const"):
		return p.parseVariableDeclarationStatement()
	case p.is("function"):
		return p.parseFunction(true)
	case p.is("async") && p.peekAt(1).Value == "function":
		p.advance()

		return p.parseFunction(true)
	case p.is("class"):
		return p.parseClassDeclaration()
	case p.is("if"):
		return p.parseIfStatement()
	case p.is("for"):
		return p.parseForStatement()
	case p.is("while"):
		return p.parseWhileStatement()
	case p.is("do"):
		return p.parseDoWhileStatement()
	case p.is("return"):
		return p.parseReturnStatement()
	case p.is("break"):
		return p.parseBreakOrContinue("BreakStatement")
	case p.is("continue"):
		return p.parseBreakOrContinue("ContinueStatement")
	case p.is("throw"):
		return p.parseThrowStatement()
	case p.is("try"):
		return p.parseTryStatement()
	case p.is("switch"):
		return p.parseSwitchStatement()
	case p.is("import"):
		return p.parseImportDeclaration()
	case p.is("export"):
		return p.parseExportDeclaration()
	case p.is("debugger"):
		tok := p.advance()
		p.consumeSemicolon()

		return ast.NewNode("DebuggerStatement", position.NewSpan(tok.Range.Start, tok.Range.End)), nil
	case p.is(";"):
		tok := p.advance()

		return ast.NewNode("EmptyStatement", position.NewSpan(tok.Range.Start, tok.Range.End)), nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseBlockStatement() (*ast.Node, error) {
	opener, err := p.expect("{")
	if err != nil {
		return nil, err
	}

	body := []*ast.Node{}

	for !p.is("}") && !p.eof() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		body = append(body, stmt)
	}

	closer, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("BlockStatement", position.NewSpan(opener.Range.Start, closer.Range.End))
	node.Set("body", body)

	return node, nil
}

func (p *parser) parseExpressionStatement() (*ast.Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	end := expr.Range.End
	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()

	node := ast.NewNode("ExpressionStatement", position.NewSpan(expr.Range.Start, end))
	node.Set("expression", expr)

	return node, nil
}

// parseVariableDeclaration parses `kind id[=init][, id[=init]]...` without
// consuming a trailing terminator, shared by statement-level declarations
// and a for-loop's init clause.
func (p *parser) parseVariableDeclaration() (*ast.Node, error) {
	start := p.advance() // var/let/const
	kind := start.Value

	declarators := []*ast.Node{}

	for {
		id, err := p.parseBindingTarget()
		if err != nil {
			return nil, err
		}

		end := id.Range.End

		var init *ast.Node

		if p.is("=") {
			p.advance()

			init, err = p.parseAssignment()
			if err != nil {
				return nil, err
			}

			end = init.Range.End
		}

		d := ast.NewNode("VariableDeclarator", position.NewSpan(id.Range.Start, end))
		d.Set("id", id).Set("init", init)
		declarators = append(declarators, d)

		if p.is(",") {
			p.advance()

			continue
		}

		break
	}

	last := declarators[len(declarators)-1]
	node := ast.NewNode("VariableDeclaration", position.NewSpan(start.Range.Start, last.Range.End))
	node.Set("kind", kind).Set("declarations", declarators)

	return node, nil
}

func (p *parser) parseVariableDeclarationStatement() (*ast.Node, error) {
	decl, err := p.parseVariableDeclaration()
	if err != nil {
		return nil, err
	}

	end := decl.Range.End
	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()
	decl.Range = position.NewSpan(decl.Range.Start, end)

	return decl, nil
}

func (p *parser) parseIfStatement() (*ast.Node, error) {
	start := p.advance() // 'if'

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var alternate *ast.Node

	end := consequent.Range.End

	if p.is("else") {
		p.advance()

		alternate, err = p.parseStatement()
		if err != nil {
			return nil, err
		}

		end = alternate.Range.End
	}

	node := ast.NewNode("IfStatement", position.NewSpan(start.Range.Start, end))
	node.Set("test", test).Set("consequent", consequent).Set("alternate", alternate)

	return node, nil
}

func (p *parser) parseWhileStatement() (*ast.Node, error) {
	start := p.advance() // 'while'

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("WhileStatement", position.NewSpan(start.Range.Start, body.Range.End))
	node.Set("test", test).Set("body", body)

	return node, nil
}

func (p *parser) parseDoWhileStatement() (*ast.Node, error) {
	start := p.advance() // 'do'

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect("while"); err != nil {
		return nil, err
	}

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	closer, err := p.expect(")")
	if err != nil {
		return nil, err
	}

	end := closer.Range.End
	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()

	node := ast.NewNode("DoWhileStatement", position.NewSpan(start.Range.Start, end))
	node.Set("test", test).Set("body", body)

	return node, nil
}

func (p *parser) parseForStatement() (*ast.Node, error) {
	start := p.advance() // 'for'

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	if p.is("var", "let", "const") {
		declStart := p.cur()
		kind := p.advance().Value

		id, err := p.parseBindingTarget()
		if err != nil {
			return nil, err
		}

		if p.is("in") || p.is("of") {
			return p.finishForInOf(start, declStart, kind, id)
		}

		var init *ast.Node

		end := id.Range.End

		if p.is("=") {
			p.advance()

			init, err = p.parseAssignment()
			if err != nil {
				return nil, err
			}

			end = init.Range.End
		}

		d := ast.NewNode("VariableDeclarator", position.NewSpan(id.Range.Start, end))
		d.Set("id", id).Set("init", init)
		declarators := []*ast.Node{d}

		for p.is(",") {
			p.advance()

			did, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}

			dend := did.Range.End

			var dinit *ast.Node

			if p.is("=") {
				p.advance()

				dinit, err = p.parseAssignment()
				if err != nil {
					return nil, err
				}

				dend = dinit.Range.End
			}

			dn := ast.NewNode("VariableDeclarator", position.NewSpan(did.Range.Start, dend))
			dn.Set("id", did).Set("init", dinit)
			declarators = append(declarators, dn)
		}

		last := declarators[len(declarators)-1]
		decl := ast.NewNode("VariableDeclaration", position.NewSpan(declStart.Range.Start, last.Range.End))
		decl.Set("kind", kind).Set("declarations", declarators)

		return p.finishForStatement(start, decl)
	}

	if p.is(";") {
		return p.finishForStatement(start, nil)
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.is("in") || p.is("of") {
		isOf := p.is("of")
		p.advance()

		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(")"); err != nil {
			return nil, err
		}

		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		kind := "ForInStatement"
		if isOf {
			kind = "ForOfStatement"
		}

		node := ast.NewNode(kind, position.NewSpan(start.Range.Start, body.Range.End))
		node.Set("left", expr).Set("right", right).Set("body", body)

		return node, nil
	}

	return p.finishForStatement(start, expr)
}

// finishForInOf handles `for (kind id in|of right) body`, the declaration
// form, once the single declarator's id has already been parsed.
func (p *parser) finishForInOf(start, declStart ast.Token, kind string, id *ast.Node) (*ast.Node, error) {
	isOf := p.is("of")
	p.advance()

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	declarator := ast.NewNode("VariableDeclarator", position.NewSpan(id.Range.Start, id.Range.End))
	declarator.Set("id", id).Set("init", nil)

	decl := ast.NewNode("VariableDeclaration", position.NewSpan(declStart.Range.Start, id.Range.End))
	decl.Set("kind", kind).Set("declarations", []*ast.Node{declarator})

	nodeKind := "ForInStatement"
	if isOf {
		nodeKind = "ForOfStatement"
	}

	node := ast.NewNode(nodeKind, position.NewSpan(start.Range.Start, body.Range.End))
	node.Set("left", decl).Set("right", right).Set("body", body)

	return node, nil
}

func (p *parser) finishForStatement(start ast.Token, init *ast.Node) (*ast.Node, error) {
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}

	var test *ast.Node

	if !p.is(";") {
		var err error

		test, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(";"); err != nil {
		return nil, err
	}

	var update *ast.Node

	if !p.is(")") {
		var err error

		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("ForStatement", position.NewSpan(start.Range.Start, body.Range.End))
	node.Set("init", init).Set("test", test).Set("update", update).Set("body", body)

	return node, nil
}

func (p *parser) parseReturnStatement() (*ast.Node, error) {
	start := p.advance() // 'return'

	var argument *ast.Node

	end := start.Range.End

	if !p.is(";") && !p.is("}") && !p.eof() {
		var err error

		argument, err = p.parseExpression()
		if err != nil {
			return nil, err
		}

		end = argument.Range.End
	}

	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()

	node := ast.NewNode("ReturnStatement", position.NewSpan(start.Range.Start, end))
	node.Set("argument", argument)

	return node, nil
}

func (p *parser) parseBreakOrContinue(kind string) (*ast.Node, error) {
	start := p.advance() // break/continue

	var label *ast.Node

	end := start.Range.End

	if p.cur().Kind == ast.Identifier {
		tok := p.advance()
		label = ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
		label.Set("name", tok.Value)
		end = tok.Range.End
	}

	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()

	node := ast.NewNode(kind, position.NewSpan(start.Range.Start, end))
	node.Set("label", label)

	return node, nil
}

func (p *parser) parseThrowStatement() (*ast.Node, error) {
	start := p.advance() // 'throw'

	argument, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	end := argument.Range.End
	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()

	node := ast.NewNode("ThrowStatement", position.NewSpan(start.Range.Start, end))
	node.Set("argument", argument)

	return node, nil
}

func (p *parser) parseTryStatement() (*ast.Node, error) {
	start := p.advance() // 'try'

	block, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	var handler *ast.Node

	end := block.Range.End

	if p.is("catch") {
		catchStart := p.advance()

		var param *ast.Node

		if p.is("(") {
			p.advance()

			param, err = p.parseBindingTarget()
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(")"); err != nil {
				return nil, err
			}
		}

		body, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}

		handler = ast.NewNode("CatchClause", position.NewSpan(catchStart.Range.Start, body.Range.End))
		handler.Set("param", param).Set("body", body)
		end = handler.Range.End
	}

	var finalizer *ast.Node

	if p.is("finally") {
		p.advance()

		finalizer, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}

		end = finalizer.Range.End
	}

	node := ast.NewNode("TryStatement", position.NewSpan(start.Range.Start, end))
	node.Set("block", block).Set("handler", handler).Set("finalizer", finalizer)

	return node, nil
}

func (p *parser) parseSwitchStatement() (*ast.Node, error) {
	start := p.advance() // 'switch'

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	discriminant, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	cases := []*ast.Node{}

	for !p.is("}") && !p.eof() {
		caseStart := p.cur()

		var test *ast.Node

		if p.is("case") {
			p.advance()

			test, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		} else {
			if _, err := p.expect("default"); err != nil {
				return nil, err
			}
		}

		if _, err := p.expect(":"); err != nil {
			return nil, err
		}

		consequent := []*ast.Node{}

		for !p.is("case") && !p.is("default") && !p.is("}") && !p.eof() {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}

			consequent = append(consequent, stmt)
		}

		end := caseStart.Range.End
		if len(consequent) > 0 {
			end = consequent[len(consequent)-1].Range.End
		} else if test != nil {
			end = test.Range.End
		}

		c := ast.NewNode("SwitchCase", position.NewSpan(caseStart.Range.Start, end))
		c.Set("test", test).Set("consequent", consequent)
		cases = append(cases, c)
	}

	closer, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("SwitchStatement", position.NewSpan(start.Range.Start, closer.Range.End))
	node.Set("discriminant", discriminant).Set("cases", cases)

	return node, nil
}

func (p *parser) parseClassDeclaration() (*ast.Node, error) {
	start := p.advance() // 'class'

	var id *ast.Node

	if p.cur().Kind == ast.Identifier {
		tok := p.advance()
		id = ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
		id.Set("name", tok.Value)
	}

	var superClass *ast.Node

	if p.is("extends") {
		p.advance()

		var err error

		superClass, err = p.parseLeftHandSide()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("ClassDeclaration", position.NewSpan(start.Range.Start, body.Range.End))
	node.Set("id", id).Set("superClass", superClass).Set("body", body)

	return node, nil
}

func (p *parser) parseClassBody() (*ast.Node, error) {
	opener, err := p.expect("{")
	if err != nil {
		return nil, err
	}

	methods := []*ast.Node{}

	for !p.is("}") && !p.eof() {
		if p.is(";") {
			p.advance()

			continue
		}

		methodStart := p.cur()
		static := false

		if p.is("static") && p.peekAt(1).Value != "(" {
			static = true
			p.advance()
		}

		computed := false

		var key *ast.Node

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

		value, err := p.parseFunctionTail(methodStart, false)
		if err != nil {
			return nil, err
		}

		m := ast.NewNode("MethodDefinition", position.NewSpan(methodStart.Range.Start, value.Range.End))
		m.Set("key", key).Set("value", value).Set("static", static).Set("computed", computed).Set("kind", "method")
		methods = append(methods, m)
	}

	closer, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("ClassBody", position.NewSpan(opener.Range.Start, closer.Range.End))
	node.Set("body", methods)

	return node, nil
}

func (p *parser) parseImportDeclaration() (*ast.Node, error) {
	start := p.advance() // 'import'

	if p.cur().Kind == ast.String {
		source := p.advance()

		end := source.Range.End
		if p.is(";") {
			end = p.cur().Range.End
		}

		p.consumeSemicolon()

		node := ast.NewNode("ImportDeclaration", position.NewSpan(start.Range.Start, end))
		node.Set("specifiers", []*ast.Node{})
		node.Set("source", sourceLiteral(source))

		return node, nil
	}

	specifiers := []*ast.Node{}

	if p.cur().Kind == ast.Identifier {
		tok := p.advance()
		local := ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
		local.Set("name", tok.Value)

		spec := ast.NewNode("ImportDefaultSpecifier", local.Range)
		spec.Set("local", local)
		specifiers = append(specifiers, spec)

		if p.is(",") {
			p.advance()
		}
	}

	if p.is("*") {
		starTok := p.advance()

		if _, err := p.expect("as"); err != nil {
			return nil, err
		}

		local, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}

		spec := ast.NewNode("ImportNamespaceSpecifier", position.NewSpan(starTok.Range.Start, local.Range.End))
		spec.Set("local", local)
		specifiers = append(specifiers, spec)
	} else if p.is("{") {
		p.advance()

		for !p.is("}") {
			imported, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}

			local := imported

			if p.is("as") {
				p.advance()

				local, err = p.parseIdentifierName()
				if err != nil {
					return nil, err
				}
			}

			spec := ast.NewNode("ImportSpecifier", position.NewSpan(imported.Range.Start, local.Range.End))
			spec.Set("imported", imported).Set("local", local)
			specifiers = append(specifiers, spec)

			if p.is(",") {
				p.advance()

				continue
			}

			break
		}

		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect("from"); err != nil {
		return nil, err
	}

	if !p.isKind(ast.String) {
		return nil, fmt.Errorf("jsparser: expected string literal, got %q at offset %d", p.cur().Value, p.cur().Range.Start)
	}

	sourceTok := p.advance()

	end := sourceTok.Range.End
	if p.is(";") {
		end = p.cur().Range.End
	}

	p.consumeSemicolon()

	node := ast.NewNode("ImportDeclaration", position.NewSpan(start.Range.Start, end))
	node.Set("specifiers", specifiers)
	node.Set("source", sourceLiteral(sourceTok))

	return node, nil
}

func sourceLiteral(tok ast.Token) *ast.Node {
	lit := ast.NewNode("Literal", position.NewSpan(tok.Range.Start, tok.Range.End))
	lit.Set("value", tok.Value).Set("raw", tok.Value)

	return lit
}

func (p *parser) parseExportDeclaration() (*ast.Node, error) {
	start := p.advance() // 'export'

	switch {
	case p.is("default"):
		p.advance()

		var (
			decl *ast.Node
			err  error
		)

		switch {
		case p.is("function"):
			decl, err = p.parseFunction(true)
		case p.is("class"):
			decl, err = p.parseClassDeclaration()
		default:
			decl, err = p.parseAssignment()

			if err == nil {
				p.consumeSemicolon()
			}
		}

		if err != nil {
			return nil, err
		}

		node := ast.NewNode("ExportDefaultDeclaration", position.NewSpan(start.Range.Start, decl.Range.End))
		node.Set("declaration", decl)

		return node, nil

	case p.is("*"):
		p.advance()

		if _, err := p.expect("from"); err != nil {
			return nil, err
		}

		sourceTok := p.advance()

		end := sourceTok.Range.End
		if p.is(";") {
			end = p.cur().Range.End
		}

		p.consumeSemicolon()

		node := ast.NewNode("ExportAllDeclaration", position.NewSpan(start.Range.Start, end))
		node.Set("source", sourceLiteral(sourceTok))

		return node, nil

	case p.is("{"):
		p.advance()

		specifiers := []*ast.Node{}

		for !p.is("}") {
			local, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}

			exported := local

			if p.is("as") {
				p.advance()

				exported, err = p.parseIdentifierName()
				if err != nil {
					return nil, err
				}
			}

			spec := ast.NewNode("ExportSpecifier", position.NewSpan(local.Range.Start, exported.Range.End))
			spec.Set("local", local).Set("exported", exported)
			specifiers = append(specifiers, spec)

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

		end := closer.Range.End

		var source *ast.Node

		if p.is("from") {
			p.advance()

			sourceTok := p.advance()
			source = sourceLiteral(sourceTok)
			end = sourceTok.Range.End
		}

		if p.is(";") {
			end = p.cur().Range.End
		}

		p.consumeSemicolon()

		node := ast.NewNode("ExportNamedDeclaration", position.NewSpan(start.Range.Start, end))
		node.Set("specifiers", specifiers).Set("source", source)

		return node, nil

	default:
		decl, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		node := ast.NewNode("ExportNamedDeclaration", position.NewSpan(start.Range.Start, decl.Range.End))
		node.Set("declaration", decl).Set("specifiers", []*ast.Node{})

		return node, nil
	}
}
