// Package splerr holds the error value types returned by the lexer and
// parser. The engine never panics or returns a Go error across its public
// surface (spec.md §7) — lex and parse problems accumulate as values here
// instead.
package splerr

import "fmt"

// Lex describes a recoverable lexical problem: an unterminated string, an
// unterminated macro call, or a stray byte the lexer could not classify.
type Lex struct {
	Message string
	Line    int
	Column  int
	Offset  int
}

func (e Lex) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Parse describes a recoverable syntactic problem. Expected is optional —
// set when the parser can name what it was looking for.
type Parse struct {
	Message   string
	Line      int
	Column    int
	TokenText string
	Expected  string
}

func (e Parse) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%d:%d: %s (expected %s, got %q)", e.Line, e.Column, e.Message, e.Expected, e.TokenText)
	}
	return fmt.Sprintf("%d:%d: %s (got %q)", e.Line, e.Column, e.Message, e.TokenText)
}
