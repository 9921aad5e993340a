package jsparser

import (
	"fmt"
	"strconv"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/position"
)

// binaryLevels lists operator tiers from loosest to tightest binding,
// excluding assignment, conditional, exponentiation, and unary/postfix,
// which the parser's other methods handle directly.
var binaryLevels = [][]string{
	{"||", "??"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!=", "===", "!=="},
	{"<", ">", "<=", ">=", "instanceof", "in"},
	{"<<", ">>", ">>>"},
	{"+", "-"},
	{"*", "/", "%"},
}

var logicalOperators = map[string]bool{"||": true, "&&": true, "??": true}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

type parser struct {
	*cursor
}

// parseExpression parses a full expression, including the comma operator
// (spec.md's grammar scope includes `for (;;)` clause lists and
// comma-separated expression statements).
func (p *parser) parseExpression() (*ast.Node, error) {
	first, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	if !p.is(",") {
		return first, nil
	}

	exprs := []*ast.Node{first}

	for p.is(",") {
		p.advance()

		next, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, next)
	}

	last := exprs[len(exprs)-1]
	seq := ast.NewNode("SequenceExpression", position.NewSpan(first.Range.Start, last.Range.End))
	seq.Set("expressions", exprs)

	return seq, nil
}

func (p *parser) parseAssignment() (*ast.Node, error) {
	if arrow, ok, err := p.tryParseArrow(); err != nil {
		return nil, err
	} else if ok {
		return arrow, nil
	}

	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	if op := p.cur().Value; assignmentOperators[op] && p.cur().Kind == ast.Punctuator {
		p.advance()

		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}

		node := ast.NewNode("AssignmentExpression", position.NewSpan(left.Range.Start, right.Range.End))
		node.Set("left", left).Set("operator", op).Set("right", right)

		return node, nil
	}

	return left, nil
}

func (p *parser) parseConditional() (*ast.Node, error) {
	test, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	if !p.is("?") {
		return test, nil
	}

	p.advance()

	consequent, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(":"); err != nil {
		return nil, err
	}

	alternate, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("ConditionalExpression", position.NewSpan(test.Range.Start, alternate.Range.End))
	node.Set("test", test).Set("consequent", consequent).Set("alternate", alternate)

	return node, nil
}

func (p *parser) parseBinary(level int) (*ast.Node, error) {
	if level >= len(binaryLevels) {
		return p.parseExponent()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

	for p.is(binaryLevels[level]...) {
		op := p.advance().Value

		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}

		kind := "BinaryExpression"
		if logicalOperators[op] {
			kind = "LogicalExpression"
		}

		node := ast.NewNode(kind, position.NewSpan(left.Range.Start, right.Range.End))
		node.Set("left", left).Set("operator", op).Set("right", right)
		left = node
	}

	return left, nil
}

// parseExponent handles `**`, right-associative and binding tighter than
// the multiplicative tier but looser than unary.
func (p *parser) parseExponent() (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if !p.is("**") {
		return left, nil
	}

	p.advance()

	right, err := p.parseExponent()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("BinaryExpression", position.NewSpan(left.Range.Start, right.Range.End))
	node.Set("left", left).Set("operator", "**").Set("right", right)

	return node, nil
}

var unaryOperators = map[string]bool{
	"!": true, "~": true, "+": true, "-": true,
	"typeof": true, "void": true, "delete": true, "await": true,
}

func (p *parser) parseUnary() (*ast.Node, error) {
	if p.is("++", "--") {
		op := p.advance()

		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		node := ast.NewNode("UpdateExpression", position.NewSpan(op.Range.Start, arg.Range.End))
		node.Set("operator", op.Value).Set("argument", arg).Set("prefix", true)

		return node, nil
	}

	if unaryOperators[p.cur().Value] {
		op := p.advance()

		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		node := ast.NewNode("UnaryExpression", position.NewSpan(op.Range.Start, arg.Range.End))
		node.Set("operator", op.Value).Set("argument", arg).Set("prefix", true)

		return node, nil
	}

	return p.parsePostfix()
}

func (p *parser) parsePostfix() (*ast.Node, error) {
	expr, err := p.parseLeftHandSide()
	if err != nil {
		return nil, err
	}

	if p.is("++", "--") {
		op := p.advance()

		node := ast.NewNode("UpdateExpression", position.NewSpan(expr.Range.Start, op.Range.End))
		node.Set("operator", op.Value).Set("argument", expr).Set("prefix", false)

		return node, nil
	}

	return expr, nil
}

// parseLeftHandSide parses NewExpression/primary then chains member
// accesses and call arguments.
func (p *parser) parseLeftHandSide() (*ast.Node, error) {
	var (
		expr *ast.Node
		err  error
	)

	if p.is("new") {
		expr, err = p.parseNew()
	} else {
		expr, err = p.parsePrimary()
	}

	if err != nil {
		return nil, err
	}

	return p.parseCallMemberTail(expr)
}

func (p *parser) parseNew() (*ast.Node, error) {
	start := p.advance() // 'new'

	callee, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	callee, err = p.parseMemberTail(callee)
	if err != nil {
		return nil, err
	}

	args := []*ast.Node{}
	endOffset := callee.Range.End

	if p.is("(") {
		var closer ast.Token

		args, closer, err = p.parseArguments()
		if err != nil {
			return nil, err
		}

		endOffset = closer.Range.End
	}

	node := ast.NewNode("NewExpression", position.NewSpan(start.Range.Start, endOffset))
	node.Set("callee", callee).Set("arguments", args)

	return node, nil
}

// parseMemberTail consumes `.ident` and `[expr]` accessors only (no call
// arguments), used for a `new` callee.
func (p *parser) parseMemberTail(expr *ast.Node) (*ast.Node, error) {
	for {
		switch {
		case p.is("."):
			p.advance()

			prop, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}

			node := ast.NewNode("MemberExpression", position.NewSpan(expr.Range.Start, prop.Range.End))
			node.Set("object", expr).Set("property", prop).Set("computed", false)
			expr = node
		case p.is("["):
			p.advance()

			prop, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			closer, err := p.expect("]")
			if err != nil {
				return nil, err
			}

			node := ast.NewNode("MemberExpression", position.NewSpan(expr.Range.Start, closer.Range.End))
			node.Set("object", expr).Set("property", prop).Set("computed", true)
			expr = node
		default:
			return expr, nil
		}
	}
}

func (p *parser) parseCallMemberTail(expr *ast.Node) (*ast.Node, error) {
	for {
		switch {
		case p.is("."):
			p.advance()

			prop, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}

			node := ast.NewNode("MemberExpression", position.NewSpan(expr.Range.Start, prop.Range.End))
			node.Set("object", expr).Set("property", prop).Set("computed", false)
			expr = node
		case p.is("?."):
			p.advance()

			if p.is("(") {
				args, end, err := p.parseArguments()
				if err != nil {
					return nil, err
				}

				node := ast.NewNode("CallExpression", position.NewSpan(expr.Range.Start, end.Range.End))
				node.Set("callee", expr).Set("arguments", args).Set("optional", true)
				expr = node

				continue
			}

			prop, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}

			node := ast.NewNode("MemberExpression", position.NewSpan(expr.Range.Start, prop.Range.End))
			node.Set("object", expr).Set("property", prop).Set("computed", false).Set("optional", true)
			expr = node
		case p.is("["):
			p.advance()

			prop, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			closer, err := p.expect("]")
			if err != nil {
				return nil, err
			}

			node := ast.NewNode("MemberExpression", position.NewSpan(expr.Range.Start, closer.Range.End))
			node.Set("object", expr).Set("property", prop).Set("computed", true)
			expr = node
		case p.is("("):
			args, end, err := p.parseArguments()
			if err != nil {
				return nil, err
			}

			node := ast.NewNode("CallExpression", position.NewSpan(expr.Range.Start, end.Range.End))
			node.Set("callee", expr).Set("arguments", args)
			expr = node
		default:
			return expr, nil
		}
	}
}

func (p *parser) parseArguments() ([]*ast.Node, ast.Token, error) {
	if _, err := p.expect("("); err != nil {
		return nil, ast.Token{}, err
	}

	args := []*ast.Node{}

	for !p.is(")") {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, ast.Token{}, err
		}

		args = append(args, arg)

		if p.is(",") {
			p.advance()

			continue
		}

		break
	}

	closer, err := p.expect(")")
	if err != nil {
		return nil, ast.Token{}, err
	}

	return args, closer, nil
}

func (p *parser) parseIdentifierName() (*ast.Node, error) {
	tok := p.advance()

	node := ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
	node.Set("name", tok.Value)

	return node, nil
}

func (p *parser) parsePrimary() (*ast.Node, error) {
	tok := p.cur()

	switch {
	case tok.Kind == ast.Identifier:
		p.advance()

		node := ast.NewNode("Identifier", position.NewSpan(tok.Range.Start, tok.Range.End))
		node.Set("name", tok.Value)

		return node, nil

	case tok.Kind == ast.Numeric:
		p.advance()

		node := ast.NewNode("Literal", position.NewSpan(tok.Range.Start, tok.Range.End))
		value, _ := strconv.ParseFloat(tok.Value, 64)
		node.Set("value", value).Set("raw", tok.Value)

		return node, nil

	case tok.Kind == ast.String:
		p.advance()

		node := ast.NewNode("Literal", position.NewSpan(tok.Range.Start, tok.Range.End))
		node.Set("value", tok.Value).Set("raw", tok.Value)

		return node, nil

	case tok.Kind == ast.Boolean:
		p.advance()

		node := ast.NewNode("Literal", position.NewSpan(tok.Range.Start, tok.Range.End))
		node.Set("value", tok.Value == "true").Set("raw", tok.Value)

		return node, nil

	case tok.Kind == ast.Null:
		p.advance()

		node := ast.NewNode("Literal", position.NewSpan(tok.Range.Start, tok.Range.End))
		node.Set("value", nil).Set("raw", tok.Value)

		return node, nil

	case tok.Kind == ast.Template:
		return p.parseTemplateLiteral()

	case p.is("this"):
		p.advance()

		return ast.NewNode("ThisExpression", position.NewSpan(tok.Range.Start, tok.Range.End)), nil

	case p.is("super"):
		p.advance()

		return ast.NewNode("Super", position.NewSpan(tok.Range.Start, tok.Range.End)), nil

	case p.is("function"):
		return p.parseFunction(false)

	case p.is("async") && p.peekAt(1).Value == "function":
		p.advance()

		return p.parseFunction(false)

	case p.is("("):
		p.advance()

		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(")"); err != nil {
			return nil, err
		}

		return inner, nil

	case p.is("["):
		return p.parseArrayExpression()

	case p.is("{"):
		return p.parseObjectExpression()

	default:
		return nil, fmt.Errorf("jsparser: unexpected token %q at offset %d", tok.Value, tok.Range.Start)
	}
}

func (p *parser) parseArrayExpression() (*ast.Node, error) {
	opener := p.advance() // '['

	elements := []*ast.Node{}

	for !p.is("]") {
		if p.is(",") {
			elements = append(elements, nil)
			p.advance()

			continue
		}

		if p.is("...") {
			el, err := p.parseSpread()
			if err != nil {
				return nil, err
			}

			elements = append(elements, el)
		} else {
			el, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}

			elements = append(elements, el)
		}

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

	node := ast.NewNode("ArrayExpression", position.NewSpan(opener.Range.Start, closer.Range.End))
	node.Set("elements", elements)

	return node, nil
}

func (p *parser) parseSpread() (*ast.Node, error) {
	start := p.advance() // '...'

	arg, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("SpreadElement", position.NewSpan(start.Range.Start, arg.Range.End))
	node.Set("argument", arg)

	return node, nil
}

func (p *parser) parseObjectExpression() (*ast.Node, error) {
	opener := p.advance() // '{'

	props := []*ast.Node{}

	for !p.is("}") {
		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}

		props = append(props, prop)

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

	node := ast.NewNode("ObjectExpression", position.NewSpan(opener.Range.Start, closer.Range.End))
	node.Set("properties", props)

	return node, nil
}

func (p *parser) parseProperty() (*ast.Node, error) {
	if p.is("...") {
		return p.parseSpread()
	}

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
	} else if p.cur().Kind == ast.String || p.cur().Kind == ast.Numeric {
		tok := p.advance()
		key = ast.NewNode("Literal", position.NewSpan(tok.Range.Start, tok.Range.End))
		key.Set("value", tok.Value).Set("raw", tok.Value)
	} else {
		key, err = p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
	}

	if p.is("(") {
		fn, err := p.parseFunctionTail(start, false)
		if err != nil {
			return nil, err
		}

		node := ast.NewNode("Property", position.NewSpan(start.Range.Start, fn.Range.End))
		node.Set("key", key).Set("value", fn).Set("computed", computed).
			Set("shorthand", false).Set("method", true)

		return node, nil
	}

	if !p.is(":") {
		node := ast.NewNode("Property", position.NewSpan(key.Range.Start, key.Range.End))
		node.Set("key", key).Set("value", key).Set("computed", computed).
			Set("shorthand", true).Set("method", false)

		return node, nil
	}

	p.advance() // ':'

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	node := ast.NewNode("Property", position.NewSpan(start.Range.Start, value.Range.End))
	node.Set("key", key).Set("value", value).Set("computed", computed).
		Set("shorthand", false).Set("method", false)

	return node, nil
}

func (p *parser) parseTemplateLiteral() (*ast.Node, error) {
	start := p.cur()
	first := p.advance() // opening chunk token

	exprs := []*ast.Node{}
	last := first

	for {
		if last.Value[len(last.Value)-1] == '`' {
			break
		}
		// chunk ended in `${`; parse one interpolated expression
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, expr)

		if !p.isKind(ast.Template) {
			return nil, fmt.Errorf("jsparser: unterminated template literal at offset %d", p.cur().Range.Start)
		}

		last = p.advance()
	}

	node := ast.NewNode("TemplateLiteral", position.NewSpan(start.Range.Start, last.Range.End))
	node.Set("expressions", exprs)

	return node, nil
}
