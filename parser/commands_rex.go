package parser

import "github.com/viant/splfield/token"

// parseRexCommand parses `rex [field=<src>] "<pattern>" [max_match=N] [mode=sed]`.
func (p *Parser) parseRexCommand(kw token.Token) *Node {
	n := &Node{Tag: "rexCommand", Span: token.Span{Start: kw.Start}}
	for !p.stopsCommand() {
		if p.gateIsOption() {
			name := p.advance()
			p.advance()
			val := p.parseOptionValue()
			n.Add("optionName", tokenItem(name))
			n.Add("optionValue", nodeItem(val))
			continue
		}
		if p.check(token.StringLiteral) {
			n.Add("pattern", tokenItem(p.advance()))
			continue
		}
		break
	}
	n.Span.End = p.cur().Start
	return n
}

// parseRenameCommand parses `rename old AS new (, old AS new)*`.
func (p *Parser) parseRenameCommand(kw token.Token) *Node {
	n := &Node{Tag: "renameCommand", Span: token.Span{Start: kw.Start}}
	for !p.stopsCommand() {
		oldField := p.parseFieldRef()
		p.expect(token.As, "AS")
		newField := p.parseFieldRef()
		pair := &Node{Tag: "renaming", Span: token.Span{Start: oldField.Span.Start, End: newField.Span.End}}
		pair.Add("old", nodeItem(oldField))
		pair.Add("new", nodeItem(newField))
		n.Add("renaming", nodeItem(pair))
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	n.Span.End = p.cur().Start
	return n
}
