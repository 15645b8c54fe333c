package parser

import "github.com/viant/splfield/token"

// parseLookupCommand parses
// `lookup <table> (lookupField [AS eventField])* [OUTPUT|OUTPUTNEW (outField [AS eventField])*]`.
func (p *Parser) parseLookupCommand(kw token.Token) *Node {
	n := &Node{Tag: "lookupCommand", Span: token.Span{Start: kw.Start}}
	if p.isFieldNameToken(p.cur()) && !p.check(token.KwOutput) && !p.check(token.KwOutputNew) {
		table := p.parseFieldRef()
		n.Add("table", nodeItem(table))
	}
	for !p.stopsCommand() && !p.check(token.KwOutput) && !p.check(token.KwOutputNew) {
		n.Add("input", nodeItem(p.parseLookupMapping()))
		if p.check(token.Comma) {
			p.advance()
		}
	}
	if p.check(token.KwOutput) || p.check(token.KwOutputNew) {
		p.advance()
		for !p.stopsCommand() && p.isFieldNameToken(p.cur()) {
			n.Add("output", nodeItem(p.parseLookupMapping()))
			if p.check(token.Comma) {
				p.advance()
			}
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// parseLookupMapping parses `field [AS otherField]`.
func (p *Parser) parseLookupMapping() *Node {
	field := p.parseFieldRef()
	m := &Node{Tag: "mapping", Span: field.Span}
	m.Add("field", nodeItem(field))
	if p.check(token.As) {
		p.advance()
		other := p.parseFieldRef()
		m.Add("as", nodeItem(other))
		m.Span.End = other.Span.End
	}
	return m
}

// parseInputlookupCommand parses `inputlookup [append=bool] [start=N] [max=N] <name>`.
func (p *Parser) parseInputlookupCommand(kw token.Token) *Node {
	n := &Node{Tag: "inputlookupCommand", Span: token.Span{Start: kw.Start}}
	for !p.stopsCommand() {
		if p.gateIsOption() {
			name := p.advance()
			p.advance()
			val := p.parseOptionValue()
			n.Add("optionName", tokenItem(name))
			n.Add("optionValue", nodeItem(val))
			continue
		}
		if p.isFieldNameToken(p.cur()) {
			n.Add("name", nodeItem(p.parseFieldRef()))
			continue
		}
		break
	}
	n.Span.End = p.cur().Start
	return n
}
