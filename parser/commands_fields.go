package parser

import "github.com/viant/splfield/token"

// parseFieldsLikeCommand parses both `table field-list` and
// `fields [+|-] field-list`; the leading sign is only meaningful for fields
// (spec.md §4.5 fields keep/remove semantics).
func (p *Parser) parseFieldsLikeCommand(tag string, kw token.Token) *Node {
	n := &Node{Tag: tag, Span: token.Span{Start: kw.Start}}
	if tag == "fieldsCommand" && (p.check(token.Plus) || p.check(token.Minus)) {
		n.Add("sign", tokenItem(p.advance()))
	}
	for _, f := range p.parseFieldList() {
		n.Add("field", f)
	}
	n.Span.End = p.cur().Start
	return n
}
