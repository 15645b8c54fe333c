package parser

import "github.com/viant/splfield/token"

// parseTemplatedCommand is the shared shape used by every command whose
// lineage effect is fully described by its option list and field list, with
// no bespoke sub-grammar: spath, makemv, nomv, makecontinuous, setfields,
// tags, timewrap, xpath, xmlkv, xmlunescape, multikv, erex, kv, addtotals,
// delta, accum, autoregress, inputcsv, fieldsummary, addcoltotals,
// bucketdir, geom, concurrency, typer, reltime (spec.md §4.5). Each still
// gets its own tag so the lifter can dispatch to the right AST variant.
func (p *Parser) parseTemplatedCommand(tag string, kw token.Token) *Node {
	n := &Node{Tag: tag, Span: token.Span{Start: kw.Start}}
	for !p.stopsCommand() {
		if p.gateIsOption() {
			name := p.advance()
			p.advance()
			val := p.parseOptionValue()
			n.Add("optionName", tokenItem(name))
			n.Add("optionValue", nodeItem(val))
			continue
		}
		if p.check(token.As) {
			break
		}
		if p.isFieldNameToken(p.cur()) {
			field := p.parseFieldRef()
			if p.check(token.As) {
				p.advance()
				alias := p.parseFieldRef()
				renaming := &Node{Tag: "renaming", Span: token.Span{Start: field.Span.Start, End: alias.Span.End}}
				renaming.Add("old", nodeItem(field))
				renaming.Add("new", nodeItem(alias))
				n.Add("renaming", nodeItem(renaming))
			} else {
				n.Add("field", nodeItem(field))
			}
			if p.check(token.Comma) {
				p.advance()
			}
			continue
		}
		if p.check(token.StringLiteral) || p.check(token.NumberLiteral) {
			n.Add("literal", tokenItem(p.advance()))
			continue
		}
		break
	}
	n.Span.End = p.cur().Start
	return n
}
