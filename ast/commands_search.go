package ast

import "github.com/viant/splfield/token"

// SearchComparison is one flattened `field OP value` term pulled out of a
// search expression (spec.md §4.3 SearchExpression flattening).
type SearchComparison struct {
	Field    FieldRef
	Operator string
	Value    Expr
	Location token.Span
}

// SearchExpression is the implicit stage 0 search, or a mid-pipeline
// `| search ...` segment.
type SearchExpression struct {
	Base
	Terms            []SearchComparison
	ReferencedFields []string
}

func (c *SearchExpression) Kind() string { return "SearchExpression" }
