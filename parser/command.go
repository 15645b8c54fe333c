package parser

import "github.com/viant/splfield/token"

// parsePipeline implements the top rule from spec.md §4.2:
//
//	pipeline := [search-keyword? initial-search]? (Pipe command)*
func (p *Parser) parsePipeline() *Node {
	root := &Node{Tag: "pipeline", Span: token.Span{Start: p.cur().Start}}
	if p.check(token.SearchKeyword) {
		p.advance()
	}
	if !p.stopsCommand() {
		root.Add("initialSearch", nodeItem(p.parseInitialSearch(p.stopsCommand)))
	}
	for p.check(token.Pipe) {
		p.advance()
		cmd := p.parseCommand()
		root.Add("command", nodeItem(cmd))
		if !p.check(token.Pipe) && !p.atEOF() {
			// the command rule didn't consume through to the next Pipe/EOF;
			// recover by skipping to re-sync (spec.md §4.2 error recovery).
			p.recover()
		}
	}
	root.Span.End = p.cur().Start
	return root
}

// commandTagByKind maps a command keyword Kind to the CST rule tag used for
// both the templated and custom parse paths. Unlisted kinds fall through to
// the genericCommand catch-all.
var commandTagByKind = map[token.Kind]string{
	"CMD_EVAL":           "evalCommand",
	"CMD_STATS":          "statsCommand",
	"CMD_EVENTSTATS":     "statsCommand",
	"CMD_STREAMSTATS":    "statsCommand",
	"CMD_CHART":          "statsCommand",
	"CMD_TIMECHART":      "statsCommand",
	"CMD_REX":            "rexCommand",
	"CMD_RENAME":         "renameCommand",
	"CMD_LOOKUP":         "lookupCommand",
	"CMD_INPUTLOOKUP":    "inputlookupCommand",
	"CMD_SPATH":          "spathCommand",
	"CMD_TRANSACTION":    "transactionCommand",
	"CMD_IPLOCATION":     "iplocationCommand",
	"CMD_TABLE":          "tableCommand",
	"CMD_FIELDS":         "fieldsCommand",
	"CMD_WHERE":          "whereCommand",
	"CMD_BIN":            "binCommand",
	"CMD_DEDUP":          "dedupCommand",
	"CMD_TOP":            "topCommand",
	"CMD_RARE":           "rareCommand",
	"CMD_STRCAT":         "strcatCommand",
	"CMD_REPLACE":        "replaceCommand",
	"CMD_CONVERT":        "convertCommand",
	"CMD_MAKEMV":         "makemvCommand",
	"CMD_NOMV":           "nomvCommand",
	"CMD_MAKECONTINUOUS": "makecontinuousCommand",
	"CMD_APPEND":         "subsearchCommand",
	"CMD_APPENDCOLS":     "subsearchCommand",
	"CMD_JOIN":           "subsearchCommand",
	"CMD_UNION":          "subsearchCommand",
	"CMD_RETURN":         "returnCommand",
	"CMD_TSTATS":         "tstatsCommand",
	"CMD_MAKERESULTS":    "makeresultsCommand",
	"CMD_CONTINGENCY":    "contingencyCommand",
	"CMD_XYSERIES":       "xyseriesCommand",
	"CMD_SETFIELDS":      "setfieldsCommand",
	"CMD_TAGS":           "tagsCommand",
	"CMD_TIMEWRAP":       "timewrapCommand",
	"CMD_XPATH":          "xpathCommand",
	"CMD_XMLKV":          "xmlkvCommand",
	"CMD_XMLUNESCAPE":    "xmlunescapeCommand",
	"CMD_MULTIKV":        "multikvCommand",
	"CMD_EREX":           "erexCommand",
	"CMD_KV":             "kvCommand",
	"CMD_ADDTOTALS":      "addtotalsCommand",
	"CMD_DELTA":          "deltaCommand",
	"CMD_ACCUM":          "accumCommand",
	"CMD_AUTOREGRESS":    "autoregressCommand",
	"CMD_INPUTCSV":       "inputcsvCommand",
	"CMD_FIELDSUMMARY":   "fieldsummaryCommand",
	"CMD_ADDCOLTOTALS":   "addcoltotalsCommand",
	"CMD_BUCKETDIR":      "bucketdirCommand",
	"CMD_GEOM":           "geomCommand",
	"CMD_CONCURRENCY":    "concurrencyCommand",
	"CMD_TYPER":          "typerCommand",
	"CMD_RELTIME":        "reltimeCommand",
}

// parseCommand dispatches a single pipe-separated segment to exactly one
// rule (spec.md §4.2 "Command dispatch"), falling back to genericCommand
// for any identifier that isn't a recognized command keyword.
func (p *Parser) parseCommand() *Node {
	kw := p.cur()

	if kw.Kind == token.SearchKeyword {
		p.advance()
		return p.parseSearchCommand(kw)
	}

	tag, known := commandTagByKind[kw.Kind]
	if !known {
		return p.parseGenericCommand()
	}
	p.advance()

	switch tag {
	case "evalCommand":
		return p.parseEvalCommand(kw)
	case "statsCommand":
		return p.parseStatsCommand(kw)
	case "rexCommand":
		return p.parseRexCommand(kw)
	case "renameCommand":
		return p.parseRenameCommand(kw)
	case "lookupCommand":
		return p.parseLookupCommand(kw)
	case "inputlookupCommand":
		return p.parseInputlookupCommand(kw)
	case "tableCommand", "fieldsCommand":
		return p.parseFieldsLikeCommand(tag, kw)
	case "whereCommand":
		return p.parseWhereCommand(kw)
	case "binCommand":
		return p.parseBinCommand(kw)
	case "dedupCommand":
		return p.parseDedupCommand(kw)
	case "topCommand", "rareCommand":
		return p.parseTopRareCommand(tag, kw)
	case "strcatCommand":
		return p.parseStrcatCommand(kw)
	case "replaceCommand":
		return p.parseReplaceCommand(kw)
	case "convertCommand":
		return p.parseConvertCommand(kw)
	case "transactionCommand":
		return p.parseTransactionCommand(kw)
	case "iplocationCommand":
		return p.parseIplocationCommand(kw)
	case "subsearchCommand":
		return p.parseSubsearchCommandStage(kw)
	case "returnCommand":
		return p.parseReturnCommand(kw)
	case "tstatsCommand":
		return p.parseTstatsCommand(kw)
	case "makeresultsCommand":
		return p.parseMakeresultsCommand(kw)
	case "contingencyCommand", "xyseriesCommand":
		return p.parseTwoFieldCommand(tag, kw)
	default:
		return p.parseTemplatedCommand(tag, kw)
	}
}

// parseGenericCommand handles unrecognized identifiers (spec.md §4.2
// "unmatched identifier falling to the genericCommand catch-all") and the
// deliberately-ungrouped `extract` command (spec.md §4.5 item 5 routes it
// to a special-case handler precisely because it has no dedicated AST
// variant).
func (p *Parser) parseGenericCommand() *Node {
	name := p.advance()
	n := &Node{Tag: "genericCommand", Span: token.Span{Start: name.Start}}
	n.Add("commandName", tokenItem(name))
	for !p.stopsCommand() {
		if p.gateIsOption() {
			optName := p.advance()
			p.advance()
			val := p.parseOptionValue()
			n.Add("optionName", tokenItem(optName))
			n.Add("optionValue", nodeItem(val))
			continue
		}
		n.Add("arg", nodeItem(p.parseExpression()))
		if p.check(token.Comma) {
			p.advance()
		}
	}
	n.Span.End = p.cur().Start
	return n
}

// parseOptionValue parses the value half of `name=value`: a parenthesized
// list, or a single field/literal token.
func (p *Parser) parseOptionValue() *Node {
	if p.check(token.LParen) {
		open := p.advance()
		n := &Node{Tag: "list", Span: token.Span{Start: open.Start}}
		for !p.check(token.RParen) && !p.atEOF() {
			n.Add("item", nodeItem(p.parsePrimary()))
			if p.check(token.Comma) || p.check(token.Or) {
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
