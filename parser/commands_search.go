package parser

import "github.com/viant/splfield/token"

// parseInitialSearch scans the implicit leading search expression (stage 0)
// until stop() reports true. Per spec.md §4.3, the lifter only needs the
// flattened set of field comparisons and referenced fields, so this builds
// a "searchExpression" node with repeated "term"/"macro"/"subsearch"
// children rather than a precise boolean-operator tree; AND/OR/NOT and bare
// whitespace-implied AND are all just skipped as combinators.
func (p *Parser) parseInitialSearch(stop func() bool) *Node {
	start := p.cur().Start
	n := &Node{Tag: "searchExpression"}
	p.collectSearchTerms(n, stop)
	n.Span = token.Span{Start: start, End: p.cur().Start}
	return n
}

func (p *Parser) collectSearchTerms(n *Node, stop func() bool) {
	for !stop() && !p.atEOF() {
		switch {
		case p.check(token.And), p.check(token.Or), p.check(token.Not):
			p.advance()
		case p.check(token.LParen):
			p.advance()
			p.collectSearchTerms(n, func() bool { return stop() || p.check(token.RParen) })
			p.expect(token.RParen, ")")
		case p.check(token.LBracket):
			n.Add("subsearch", nodeItem(p.parseSubsearch()))
		case p.check(token.MacroCall):
			n.Add("macro", tokenItem(p.advance()))
		case p.isFieldNameToken(p.cur()) && isComparisonOp(p.la(1).Kind):
			field := p.parseFieldRef()
			op := p.advance()
			value := p.parseSearchValue()
			term := &Node{Tag: "comparison", Span: token.Span{Start: field.Span.Start, End: value.Span.End}}
			term.Add("field", nodeItem(field))
			term.Add("operator", tokenItem(op))
			term.Add("value", nodeItem(value))
			n.Add("term", nodeItem(term))
		default:
			// bareword keyword search term: not a field reference, just
			// consumed so the scan keeps making progress.
			p.advance()
		}
	}
}

// parseSearchValue parses the right-hand side of a search comparison,
// including a parenthesized OR-list like `field=(a OR b)`.
func (p *Parser) parseSearchValue() *Node {
	if p.check(token.LParen) {
		open := p.advance()
		n := &Node{Tag: "valueList", Span: token.Span{Start: open.Start}}
		for !p.check(token.RParen) && !p.atEOF() {
			n.Add("item", nodeItem(p.parsePrimary()))
			if p.check(token.Or) || p.check(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		end, _ := p.expect(token.RParen, ")")
		n.Span.End = end.End
		return n
	}
	return p.parsePrimary()
}

// parseSearchCommand handles a mid-pipeline `| search ...` segment. It
// reuses the same term-collection logic as the stage-0 initial search.
func (p *Parser) parseSearchCommand(kw token.Token) *Node {
	n := p.parseInitialSearch(p.stopsCommand)
	n.Tag = "searchExpression"
	n.Add("keyword", tokenItem(kw))
	return n
}
