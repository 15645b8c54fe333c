package parser

import "github.com/viant/splfield/token"

// parseReturnCommand parses `return [N] (field | $field=expr) ...`.
func (p *Parser) parseReturnCommand(kw token.Token) *Node {
	n := &Node{Tag: "returnCommand", Span: token.Span{Start: kw.Start}}
	if p.check(token.NumberLiteral) {
		n.Add("count", tokenItem(p.advance()))
	}
	for !p.stopsCommand() {
		if p.gateIsOption() {
			target := p.advance()
			p.advance()
			expr := p.parseExpression()
			assign := &Node{Tag: "assignment", Span: token.Span{Start: target.Start, End: expr.Span.End}}
			assign.Add("target", tokenItem(target))
			assign.Add("expr", nodeItem(expr))
			n.Add("assignment", nodeItem(assign))
		} else if p.isFieldNameToken(p.cur()) {
			n.Add("field", nodeItem(p.parseFieldRef()))
		} else {
			break
		}
		if p.check(token.Comma) {
			p.advance()
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// isKeywordText reports whether t is an Identifier spelling word, matched
// case-insensitively (used for the soft "from" keyword inside tstats and
// "in" inside replace, which the lexer never promotes to dedicated Kinds).
func isKeywordText(t token.Token, word string) bool {
	if t.Kind != token.Identifier {
		return false
	}
	if len(t.Text) != len(word) {
		return false
	}
	for i := 0; i < len(t.Text); i++ {
		c := t.Text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

// parseTstatsCommand parses
// `tstats [optionName=optionValue]* aggregation (, aggregation)* [FROM ...] [BY field-list]`.
// The datamodel/index source named after FROM is skipped structurally: the
// lineage analyzer only cares about the aggregation fields and BY fields
// (spec.md §4.5 tstats).
func (p *Parser) parseTstatsCommand(kw token.Token) *Node {
	n := &Node{Tag: "tstatsCommand", Span: token.Span{Start: kw.Start}}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	for !p.stopsCommand() && !p.check(token.By) {
		if isKeywordText(p.cur(), "from") {
			p.advance()
			for !p.stopsCommand() && !p.check(token.By) {
				p.advance()
			}
			break
		}
		agg := p.parseAggregation()
		if agg == nil {
			break
		}
		n.Add("aggregation", nodeItem(agg))
		if p.check(token.Comma) {
			p.advance()
		}
	}
	if p.check(token.By) {
		p.advance()
		for _, f := range p.parseFieldList() {
			n.Add("byField", f)
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// parseMakeresultsCommand parses `makeresults [count=N] [annotate=bool]`.
// makeresults introduces fields rather than consuming them, so the lifter
// derives its created-field set from the optionValue list rather than from
// any field-list syntax (spec.md §4.5 makeresults).
func (p *Parser) parseMakeresultsCommand(kw token.Token) *Node {
	n := &Node{Tag: "makeresultsCommand", Span: token.Span{Start: kw.Start}}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	n.Span.End = p.cur().Start
	return n
}

// parseTwoFieldCommand parses `contingency field1 field2` and
// `xyseries field1 field2 (field3 ...)`, both of which take a plain field
// list despite the name (spec.md §4.5 contingency/xyseries).
func (p *Parser) parseTwoFieldCommand(tag string, kw token.Token) *Node {
	n := &Node{Tag: tag, Span: token.Span{Start: kw.Start}}
	for _, f := range p.parseFieldList() {
		n.Add("field", f)
	}
	n.Span.End = p.cur().Start
	return n
}
