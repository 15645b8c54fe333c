// Package token defines the closed set of lexical token kinds produced by
// the lexer, the keyword table used to recognize reserved words, and the
// Token/Position value types shared by every later stage of the pipeline.
package token

// Kind identifies the lexical class of a Token. The set is closed: every
// member the lexer can produce is listed here, so downstream code can
// switch over Kind exhaustively.
type Kind string

const (
	EOF     Kind = "EOF"
	Illegal Kind = "ILLEGAL"

	// Punctuation
	Pipe           Kind = "PIPE"
	LParen         Kind = "LPAREN"
	RParen         Kind = "RPAREN"
	LBracket       Kind = "LBRACKET"
	RBracket       Kind = "RBRACKET"
	LBrace         Kind = "LBRACE"
	RBrace         Kind = "RBRACE"
	Comma          Kind = "COMMA"
	Dot            Kind = "DOT"
	Backtick       Kind = "BACKTICK"

	// Operators
	Equals                Kind = "EQUALS"
	NotEquals             Kind = "NOT_EQUALS"
	LessThan              Kind = "LESS_THAN"
	LessThanOrEqual       Kind = "LESS_THAN_OR_EQUAL"
	GreaterThan           Kind = "GREATER_THAN"
	GreaterThanOrEqual    Kind = "GREATER_THAN_OR_EQUAL"
	Plus                  Kind = "PLUS"
	Minus                 Kind = "MINUS"
	Multiply              Kind = "MULTIPLY"
	Divide                Kind = "DIVIDE"
	Modulo                Kind = "MODULO"

	// Literals
	StringLiteral Kind = "STRING_LITERAL"
	NumberLiteral Kind = "NUMBER_LITERAL"
	TimeModifier  Kind = "TIME_MODIFIER"
	True          Kind = "TRUE"
	False         Kind = "FALSE"
	Null          Kind = "NULL"

	// Identifiers & references
	Identifier     Kind = "IDENTIFIER"
	WildcardField  Kind = "WILDCARD_FIELD"
	MacroCall      Kind = "MACRO_CALL"
	ForeachTemplate Kind = "FOREACH_TEMPLATE"

	// Logical keywords
	And Kind = "AND"
	Or  Kind = "OR"
	Not Kind = "NOT"
	By  Kind = "BY"
	As  Kind = "AS"

	// Search keyword (implicit pipeline head)
	SearchKeyword Kind = "SEARCH"

	// Frequently-overloaded option-name keywords (also valid as field names
	// via the parser's isFieldNameToken helper)
	KwField     Kind = "KW_FIELD"
	KwOutput    Kind = "KW_OUTPUT"
	KwOutputNew Kind = "KW_OUTPUTNEW"
	KwMax       Kind = "KW_MAX"
	KwAppend    Kind = "KW_APPEND"
	KwValue     Kind = "KW_VALUE"
	KwType      Kind = "KW_TYPE"
	KwMode      Kind = "KW_MODE"
	KwSpan      Kind = "KW_SPAN"
	KwLimit     Kind = "KW_LIMIT"
	KwWindow    Kind = "KW_WINDOW"
	KwDatamodel Kind = "KW_DATAMODEL"
	KwDefault   Kind = "KW_DEFAULT"
	KwDelim     Kind = "KW_DELIM"
	KwPrefix    Kind = "KW_PREFIX"
)

// commandKinds lists one Kind per reserved SPL command keyword. These are
// matched case-insensitively by the lexer; Token.Text preserves original case.
var commandKinds = map[string]Kind{
	"eval":           "CMD_EVAL",
	"stats":          "CMD_STATS",
	"eventstats":     "CMD_EVENTSTATS",
	"streamstats":    "CMD_STREAMSTATS",
	"chart":          "CMD_CHART",
	"timechart":      "CMD_TIMECHART",
	"rex":            "CMD_REX",
	"rename":         "CMD_RENAME",
	"lookup":         "CMD_LOOKUP",
	"inputlookup":    "CMD_INPUTLOOKUP",
	"spath":          "CMD_SPATH",
	"transaction":    "CMD_TRANSACTION",
	"iplocation":     "CMD_IPLOCATION",
	"table":          "CMD_TABLE",
	"fields":         "CMD_FIELDS",
	"where":          "CMD_WHERE",
	"bin":            "CMD_BIN",
	"bucket":         "CMD_BIN",
	"dedup":          "CMD_DEDUP",
	"top":            "CMD_TOP",
	"rare":           "CMD_RARE",
	"strcat":         "CMD_STRCAT",
	"replace":        "CMD_REPLACE",
	"convert":        "CMD_CONVERT",
	"makemv":         "CMD_MAKEMV",
	"nomv":           "CMD_NOMV",
	"makecontinuous": "CMD_MAKECONTINUOUS",
	"append":         "CMD_APPEND",
	"appendcols":     "CMD_APPENDCOLS",
	"join":           "CMD_JOIN",
	"union":          "CMD_UNION",
	"return":         "CMD_RETURN",
	"tstats":         "CMD_TSTATS",
	"setfields":      "CMD_SETFIELDS",
	"tags":           "CMD_TAGS",
	"contingency":    "CMD_CONTINGENCY",
	"xyseries":       "CMD_XYSERIES",
	"timewrap":       "CMD_TIMEWRAP",
	"xpath":          "CMD_XPATH",
	"xmlkv":          "CMD_XMLKV",
	"xmlunescape":    "CMD_XMLUNESCAPE",
	"multikv":        "CMD_MULTIKV",
	"erex":           "CMD_EREX",
	"kv":             "CMD_KV",
	// "extract" is deliberately absent: it has no dedicated AST variant and
	// must fall through to the genericCommand catch-all so the registry's
	// name=="extract" special case (spec.md §4.5 item 5) is reachable.
	"makeresults": "CMD_MAKERESULTS",
	"addtotals":      "CMD_ADDTOTALS",
	"delta":          "CMD_DELTA",
	"accum":          "CMD_ACCUM",
	"autoregress":    "CMD_AUTOREGRESS",
	"inputcsv":       "CMD_INPUTCSV",
	"fieldsummary":   "CMD_FIELDSUMMARY",
	"addcoltotals":   "CMD_ADDCOLTOTALS",
	"bucketdir":      "CMD_BUCKETDIR",
	"geom":           "CMD_GEOM",
	"concurrency":    "CMD_CONCURRENCY",
	"typer":          "CMD_TYPER",
	"reltime":        "CMD_RELTIME",
}

// optionKeywords lists option-name keywords that are also valid field
// identifiers in certain grammar positions (see parser.isFieldNameToken).
var optionKeywords = map[string]Kind{
	"field":     KwField,
	"output":    KwOutput,
	"outputnew": KwOutputNew,
	"max":       KwMax,
	"append":    KwAppend,
	"value":     KwValue,
	"type":      KwType,
	"mode":      KwMode,
	"span":      KwSpan,
	"limit":     KwLimit,
	"window":    KwWindow,
	"datamodel": KwDatamodel,
	"default":   KwDefault,
	"delim":     KwDelim,
	"prefix":    KwPrefix,
}

var logicalKeywords = map[string]Kind{
	"and":    And,
	"or":     Or,
	"not":    Not,
	"by":     By,
	"as":     As,
	"search": SearchKeyword,
	"true":   True,
	"false":  False,
	"null":   Null,
}

// LookupKeyword returns the Kind for word if it is a reserved keyword
// (command, option, or logical), matched case-insensitively, and true.
// Otherwise it returns ("", false) and the caller should classify word as
// an Identifier or WildcardField instead.
func LookupKeyword(word string) (Kind, bool) {
	lower := asciiLower(word)
	if k, ok := commandKinds[lower]; ok {
		return k, true
	}
	if k, ok := optionKeywords[lower]; ok {
		return k, true
	}
	if k, ok := logicalKeywords[lower]; ok {
		return k, true
	}
	return "", false
}

// IsCommandKeyword reports whether kind names a recognized SPL command.
func IsCommandKeyword(kind Kind) bool {
	for _, k := range commandKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
