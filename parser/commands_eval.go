package parser

import "github.com/viant/splfield/token"

// parseEvalCommand parses `eval field=expr (, field=expr)*`.
func (p *Parser) parseEvalCommand(kw token.Token) *Node {
	n := &Node{Tag: "evalCommand", Span: token.Span{Start: kw.Start}}
	for !p.stopsCommand() {
		target := p.parseFieldRef()
		p.expect(token.Equals, "=")
		expr := p.parseExpression()
		assign := &Node{Tag: "assignment", Span: token.Span{Start: target.Span.Start, End: expr.Span.End}}
		assign.Add("target", nodeItem(target))
		assign.Add("expr", nodeItem(expr))
		n.Add("assignment", nodeItem(assign))
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	n.Span.End = p.cur().Start
	return n
}

// parseWhereCommand parses `where <boolean expression>`.
func (p *Parser) parseWhereCommand(kw token.Token) *Node {
	n := &Node{Tag: "whereCommand", Span: token.Span{Start: kw.Start}}
	expr := p.parseExpression()
	n.Add("expr", nodeItem(expr))
	n.Span.End = expr.Span.End
	return n
}
