package ast

// Assignment is one `target = expr` pair inside an eval command.
type Assignment struct {
	Target           FieldRef
	Expr             Expr
	ReferencedFields []string
	DataType         string
}

// EvalCommand computes zero or more field assignments from expressions.
type EvalCommand struct {
	Base
	Assignments []Assignment
}

func (c *EvalCommand) Kind() string { return "EvalCommand" }

// WhereCommand filters events by a boolean expression; it never creates
// fields but does reference them.
type WhereCommand struct {
	Base
	Expr             Expr
	ReferencedFields []string
}

func (c *WhereCommand) Kind() string { return "WhereCommand" }
