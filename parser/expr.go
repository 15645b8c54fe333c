package parser

import "github.com/viant/splfield/token"

// parseExpression parses a full expression using the precedence ladder from
// spec.md §4.2: OR, AND, comparison, additive, multiplicative, unary,
// primary (low to high).
func (p *Parser) parseExpression() *Node {
	return p.parseOr()
}

func (p *Parser) parseOr() *Node {
	left := p.parseAnd()
	for p.check(token.Or) {
		op := p.advance()
		right := p.parseAnd()
		left = p.binary("or", op, left, right)
	}
	return left
}

func (p *Parser) parseAnd() *Node {
	left := p.parseComparison()
	for p.check(token.And) {
		op := p.advance()
		right := p.parseComparison()
		left = p.binary("and", op, left, right)
	}
	return left
}

func (p *Parser) parseComparison() *Node {
	left := p.parseAdditive()
	for isComparisonOp(p.cur().Kind) {
		op := p.advance()
		right := p.parseAdditive()
		left = p.binary(comparisonTag(op.Kind), op, left, right)
	}
	return left
}

func isComparisonOp(k token.Kind) bool {
	switch k {
	case token.Equals, token.NotEquals, token.LessThan, token.LessThanOrEqual,
		token.GreaterThan, token.GreaterThanOrEqual:
		return true
	}
	return false
}

func comparisonTag(k token.Kind) string {
	switch k {
	case token.Equals:
		return "eq"
	case token.NotEquals:
		return "ne"
	case token.LessThan:
		return "lt"
	case token.LessThanOrEqual:
		return "le"
	case token.GreaterThan:
		return "gt"
	case token.GreaterThanOrEqual:
		return "ge"
	}
	return "cmp"
}

func (p *Parser) parseAdditive() *Node {
	left := p.parseMultiplicative()
	for p.check(token.Plus) || p.check(token.Minus) || p.check(token.Dot) {
		op := p.advance()
		right := p.parseMultiplicative()
		tag := "add"
		switch op.Kind {
		case token.Minus:
			tag = "sub"
		case token.Dot:
			tag = "concat"
		}
		left = p.binary(tag, op, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() *Node {
	left := p.parseUnary()
	for p.check(token.Multiply) || p.check(token.Divide) || p.check(token.Modulo) {
		op := p.advance()
		right := p.parseUnary()
		tag := "mul"
		switch op.Kind {
		case token.Divide:
			tag = "div"
		case token.Modulo:
			tag = "mod"
		}
		left = p.binary(tag, op, left, right)
	}
	return left
}

func (p *Parser) parseUnary() *Node {
	if p.check(token.Not) || p.check(token.Minus) {
		op := p.advance()
		operand := p.parseUnary()
		tag := "not"
		if op.Kind == token.Minus {
			tag = "neg"
		}
		n := &Node{Tag: tag, Span: token.Span{Start: op.Start, End: operand.Span.End}}
		n.Add("operand", nodeItem(operand))
		return n
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() *Node {
	t := p.cur()
	switch t.Kind {
	case token.LParen:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RParen, ")")
		n := &Node{Tag: "paren", Span: token.Span{Start: t.Start, End: inner.Span.End}}
		n.Add("inner", nodeItem(inner))
		return n
	case token.LBracket:
		return p.parseSubsearch()
	case token.StringLiteral, token.NumberLiteral, token.TimeModifier, token.True, token.False, token.Null:
		p.advance()
		return &Node{Tag: "literal", Token: &t, Span: t.Span()}
	case token.MacroCall:
		p.advance()
		return &Node{Tag: "macroCall", Token: &t, Span: t.Span()}
	case token.Identifier, token.WildcardField:
		// function call: identifier followed directly by '('
		if p.la(1).Kind == token.LParen {
			return p.parseCall()
		}
		p.advance()
		return &Node{Tag: "field", Token: &t, Span: t.Span()}
	case token.Multiply:
		p.advance()
		star := token.Token{Kind: token.WildcardField, Text: "*", Start: t.Start, End: t.End}
		return &Node{Tag: "field", Token: &star, Span: t.Span()}
	default:
		p.expect(token.Identifier, "expression")
		p.advance()
		return &Node{Tag: "literal", Span: t.Span()}
	}
}

func (p *Parser) parseCall() *Node {
	name := p.advance() // identifier
	p.expect(token.LParen, "(")
	n := &Node{Tag: "call", Token: &name, Span: token.Span{Start: name.Start}}
	for !p.check(token.RParen) && !p.atEOF() {
		arg := p.parseExpression()
		n.Add("arg", nodeItem(arg))
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end, _ := p.expect(token.RParen, ")")
	n.Span.End = end.End
	return n
}

// parseSubsearch parses `[ ... ]`, returning its inner pipeline as a
// "subsearch" node. Needed by the subsearch-family commands (append, join,
// union, appendcols) and by bracketed expressions inside a search string.
func (p *Parser) parseSubsearch() *Node {
	open := p.advance() // '['
	var inner []token.Token
	depth := 1
	for !p.atEOF() {
		if p.check(token.LBracket) {
			depth++
		}
		if p.check(token.RBracket) {
			depth--
			if depth == 0 {
				break
			}
		}
		inner = append(inner, p.advance())
	}
	end, _ := p.expect(token.RBracket, "]")
	inner = append(inner, token.Token{Kind: token.EOF})
	sub, errs := Parse(inner)
	p.errs = append(p.errs, errs...)
	n := &Node{Tag: "subsearch", Span: token.Span{Start: open.Start, End: end.End}}
	n.Add("pipeline", nodeItem(sub))
	return n
}

func (p *Parser) binary(tag string, op token.Token, left, right *Node) *Node {
	n := &Node{Tag: tag, Token: &op, Span: token.Span{Start: left.Span.Start, End: right.Span.End}}
	n.Add("lhs", nodeItem(left))
	n.Add("rhs", nodeItem(right))
	return n
}
