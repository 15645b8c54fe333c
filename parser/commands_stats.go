package parser

import "github.com/viant/splfield/token"

// parseStatsCommand parses the stats/eventstats/streamstats/chart/timechart
// family: `CMD ( optionName=optionValue )* aggregation (, aggregation)* ( BY field-list )?`
// where each aggregation is `function[(field)] [AS alias]`. The specific
// variant tag (stats|eventstats|streamstats|chart|timechart) is recorded so
// the lifter can resolve variant-specific semantics (spec.md §4.3).
func (p *Parser) parseStatsCommand(kw token.Token) *Node {
	n := &Node{Tag: "statsCommand", Span: token.Span{Start: kw.Start}}
	n.Add("variant", tokenItem(kw))

	for p.gateIsOption() {
		name := p.advance()
		p.advance()
		val := p.parseOptionValue()
		n.Add("optionName", tokenItem(name))
		n.Add("optionValue", nodeItem(val))
	}

	for !p.stopsCommand() && !p.check(token.By) {
		agg := p.parseAggregation()
		if agg == nil {
			break
		}
		n.Add("aggregation", nodeItem(agg))
		if p.check(token.Comma) {
			p.advance()
			continue
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

// parseAggregation parses `function[(field)] [AS alias]`.
func (p *Parser) parseAggregation() *Node {
	if !(p.check(token.Identifier) || p.isFieldNameToken(p.cur())) {
		return nil
	}
	fn := p.advance()
	agg := &Node{Tag: "aggregation", Span: token.Span{Start: fn.Start, End: fn.End}}
	agg.Add("function", tokenItem(fn))

	if p.check(token.LParen) {
		p.advance()
		if p.isFieldNameToken(p.cur()) {
			field := p.parseFieldRef()
			agg.Add("field", nodeItem(field))
		}
		end, _ := p.expect(token.RParen, ")")
		agg.Span.End = end.End
	}
	if p.check(token.As) {
		p.advance()
		alias := p.parseFieldRef()
		agg.Add("alias", nodeItem(alias))
		agg.Span.End = alias.Span.End
	}
	return agg
}
