package ast

// SubsearchFields is the shape shared by every subsearch-family command:
// an embedded pipeline whose final LineageIndex contributes fields back
// into the outer analysis (spec.md §4.6 "Subsearch family").
type SubsearchFields struct {
	JoinFields []FieldRef
	Options    map[string]Expr
	Subsearch  *Pipeline
}

// AppendCommand runs a subsearch and appends its results as new events.
// Cols distinguishes the column-wise `appendcols` spelling, which this
// type also represents — appendcols shares append's field-effect shape
// (spec.md §4.6 groups both under "Subsearch family") but SPL never gives
// it a distinct AST variant of its own.
type AppendCommand struct {
	Base
	SubsearchFields
	Cols bool
}

func (c *AppendCommand) Kind() string { return "AppendCommand" }

// JoinCommand joins the outer pipeline to a subsearch on JoinFields.
type JoinCommand struct {
	Base
	SubsearchFields
}

func (c *JoinCommand) Kind() string { return "JoinCommand" }

// UnionCommand merges the outer pipeline with a subsearch's events.
type UnionCommand struct {
	Base
	SubsearchFields
}

func (c *UnionCommand) Kind() string { return "UnionCommand" }
