package parser

import "github.com/viant/splfield/token"

// parseBinCommand parses `bin [optionName=optionValue]* field [AS newfield]`.
func (p *Parser) parseBinCommand(kw token.Token) *Node {
	n := &Node{Tag: "binCommand", Span: token.Span{Start: kw.Start}}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	if p.isFieldNameToken(p.cur()) {
		n.Add("field", nodeItem(p.parseFieldRef()))
	}
	if p.check(token.As) {
		p.advance()
		n.Add("alias", nodeItem(p.parseFieldRef()))
	}
	n.Span.End = p.cur().Start
	return n
}

// parseDedupCommand parses `dedup [N] field-list [optionName=optionValue]*`.
func (p *Parser) parseDedupCommand(kw token.Token) *Node {
	n := &Node{Tag: "dedupCommand", Span: token.Span{Start: kw.Start}}
	if p.check(token.NumberLiteral) {
		n.Add("count", tokenItem(p.advance()))
	}
	for _, f := range p.parseFieldList() {
		n.Add("field", f)
	}
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

// parseTopRareCommand parses the shared top/rare grammar:
// `CMD [N] [optionName=optionValue]* field-list [BY field-list]`.
func (p *Parser) parseTopRareCommand(tag string, kw token.Token) *Node {
	n := &Node{Tag: tag, Span: token.Span{Start: kw.Start}}
	if p.check(token.NumberLiteral) {
		n.Add("count", tokenItem(p.advance()))
	}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	for !p.stopsCommand() && !p.check(token.By) && p.isFieldNameToken(p.cur()) {
		n.Add("field", nodeItem(p.parseFieldRef()))
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

// parseStrcatCommand parses `strcat [optionName=optionValue]* field (field)* destField`,
// the last field named being the destination (spec.md §4.5 strcat).
func (p *Parser) parseStrcatCommand(kw token.Token) *Node {
	n := &Node{Tag: "strcatCommand", Span: token.Span{Start: kw.Start}}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	var fields []Item
	for !p.stopsCommand() {
		if p.check(token.StringLiteral) {
			n.Add("literal", tokenItem(p.advance()))
			continue
		}
		if !p.isFieldNameToken(p.cur()) {
			break
		}
		fields = append(fields, nodeItem(p.parseFieldRef()))
	}
	for i, f := range fields {
		if i == len(fields)-1 {
			n.Add("destField", f)
		} else {
			n.Add("sourceField", f)
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// parseReplaceCommand parses `replace (oldval AS newval)+ IN field-list`.
func (p *Parser) parseReplaceCommand(kw token.Token) *Node {
	n := &Node{Tag: "replaceCommand", Span: token.Span{Start: kw.Start}}
	for !p.stopsCommand() && !isKeywordText(p.cur(), "in") {
		oldVal := p.parsePrimary()
		p.expect(token.As, "AS")
		newVal := p.parsePrimary()
		pair := &Node{Tag: "substitution", Span: token.Span{Start: oldVal.Span.Start, End: newVal.Span.End}}
		pair.Add("old", nodeItem(oldVal))
		pair.Add("new", nodeItem(newVal))
		n.Add("substitution", nodeItem(pair))
		if p.check(token.Comma) {
			p.advance()
		}
	}
	if isKeywordText(p.cur(), "in") {
		p.advance()
		for _, f := range p.parseFieldList() {
			n.Add("field", f)
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// parseConvertCommand parses
// `convert [optionName=optionValue]* func(field) [AS alias] (, ...)*`.
func (p *Parser) parseConvertCommand(kw token.Token) *Node {
	n := &Node{Tag: "convertCommand", Span: token.Span{Start: kw.Start}}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	for !p.stopsCommand() {
		agg := p.parseAggregation()
		if agg == nil {
			break
		}
		agg.Tag = "conversion"
		n.Add("conversion", nodeItem(agg))
		if p.check(token.Comma) {
			p.advance()
			continue
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// parseTransactionCommand parses `transaction [field-list] [optionName=optionValue]*`.
func (p *Parser) parseTransactionCommand(kw token.Token) *Node {
	n := &Node{Tag: "transactionCommand", Span: token.Span{Start: kw.Start}}
	for p.isFieldNameToken(p.cur()) && !p.gateIsOption() {
		n.Add("field", nodeItem(p.parseFieldRef()))
		if p.check(token.Comma) {
			p.advance()
		}
	}
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

// parseIplocationCommand parses `iplocation [optionName=optionValue]* field`.
func (p *Parser) parseIplocationCommand(kw token.Token) *Node {
	n := &Node{Tag: "iplocationCommand", Span: token.Span{Start: kw.Start}}
	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}
	if p.isFieldNameToken(p.cur()) {
		n.Add("field", nodeItem(p.parseFieldRef()))
	}
	n.Span.End = p.cur().Start
	return n
}
