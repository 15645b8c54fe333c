package parser

import (
	"github.com/viant/splfield/splerr"
	"github.com/viant/splfield/token"
)

// Parser is a recursive-descent parser with up to 3-token lookahead and
// explicit gate predicates for option-vs-positional disambiguation. Error
// recovery skips to the next Pipe or EOF and resumes (spec.md §4.2).
type Parser struct {
	toks []token.Token
	pos  int
	errs []splerr.Parse
}

// New creates a Parser over an already-tokenized input.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse tokenizes nothing itself (the caller supplies tokens) and produces
// the top-level "pipeline" CST node plus accumulated parse errors.
func Parse(toks []token.Token) (*Node, []splerr.Parse) {
	p := New(toks)
	root := p.parsePipeline()
	return root, p.errs
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) la(ahead int) token.Token {
	idx := p.pos + ahead
	if idx >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[idx]
}

func (p *Parser) atEOF() bool { return p.cur().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool { return p.cur().Kind == k }

// expect consumes the current token if it matches kind; otherwise it records
// a parse error and returns the (unconsumed) current token with ok=false.
func (p *Parser) expect(kind token.Kind, what string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	cur := p.cur()
	p.errs = append(p.errs, splerr.Parse{
		Message:   "unexpected token",
		Line:      cur.Start.Line,
		Column:    cur.Start.Column,
		TokenText: cur.Text,
		Expected:  what,
	})
	return cur, false
}

// recover skips tokens until the next Pipe or EOF, the re-sync points named
// in spec.md §4.2.
func (p *Parser) recover() {
	for !p.atEOF() && !p.check(token.Pipe) {
		p.advance()
	}
}

// isFieldNameToken reports whether the current token can serve as a field
// or option name — includes the overloaded option-keyword tokens that the
// grammar also accepts positionally (spec.md §4.2 fieldOrWildcard).
func (p *Parser) isFieldNameToken(t token.Token) bool {
	switch t.Kind {
	case token.Identifier, token.WildcardField,
		token.KwField, token.KwOutput, token.KwOutputNew, token.KwMax,
		token.KwMode, token.KwType, token.KwValue, token.KwAppend,
		token.KwSpan, token.KwLimit, token.KwWindow, token.KwDatamodel,
		token.KwDefault, token.KwDelim, token.KwPrefix:
		return true
	case token.Multiply:
		// bare '*' as a wildcard field reference (spec.md §3 FieldRef).
		return true
	}
	return false
}

// gateIsOption reports whether the parser is looking at `name = value`
// (an option) versus a positional argument: true iff LA(1) is a field-name
// token and LA(2) is Equals (spec.md §4.2 GATE rule).
func (p *Parser) gateIsOption() bool {
	if !p.isFieldNameToken(p.cur()) {
		return false
	}
	return p.la(1).Kind == token.Equals
}

// parseFieldRef consumes one field-name token (identifier, wildcard, bare
// '*', or an overloaded option keyword used positionally) and returns a
// "field" leaf node.
func (p *Parser) parseFieldRef() *Node {
	t := p.cur()
	if !p.isFieldNameToken(t) {
		p.expect(token.Identifier, "field name")
		return &Node{Tag: "field", Span: token.Span{Start: t.Start, End: t.Start}}
	}
	p.advance()
	text := t.Text
	if t.Kind == token.Multiply {
		text = "*"
	}
	n := &Node{Tag: "field", Token: &token.Token{Kind: t.Kind, Text: text, Start: t.Start, End: t.End}, Span: t.Span()}
	return n
}

// parseFieldList parses a comma-and/or-whitespace separated list of field
// references, stopping at Pipe, EOF, RParen, RBracket, or the BY keyword.
func (p *Parser) parseFieldList() []Item {
	var items []Item
	for p.isFieldNameToken(p.cur()) {
		items = append(items, nodeItem(p.parseFieldRef()))
		if p.check(token.Comma) {
			p.advance()
		}
	}
	return items
}

func (p *Parser) stopsCommand() bool {
	return p.atEOF() || p.check(token.Pipe)
}
