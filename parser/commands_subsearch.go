package parser

import "github.com/viant/splfield/token"

// parseSubsearchCommandStage parses the append/appendcols/join/union family:
// `CMD [field-list] [optionName=optionValue]* [subsearch]`. join is the only
// variant with a leading field-list (the join key); the others just carry
// options and a bracketed subsearch (spec.md §4.5 subsearch-family).
func (p *Parser) parseSubsearchCommandStage(kw token.Token) *Node {
	n := &Node{Tag: "subsearchCommand", Span: token.Span{Start: kw.Start}}
	n.Add("variant", tokenItem(kw))

	for p.isFieldNameToken(p.cur()) && !p.gateIsOption() {
		n.Add("joinField", nodeItem(p.parseFieldRef()))
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
	if p.check(token.LBracket) {
		n.Add("subsearch", nodeItem(p.parseSubsearch()))
	}
	n.Span.End = p.cur().Start
	return n
}
