package ast

import (
	"strings"

	"github.com/viant/splfield/token"
)

// Expr is the shared expression tree used by eval, where, search
// comparisons, and every command that accepts an expression argument.
type Expr interface {
	ExprKind() string
	Location() token.Span
}

// Literal is a string, number, boolean, null, or time-modifier constant.
type Literal struct {
	Base
	Text     string
	DataType string // number|string|boolean|time|unknown
}

func (e *Literal) ExprKind() string { return "Literal" }

// FieldExpr is a bare field reference used as an expression operand.
type FieldExpr struct {
	Base
	Ref FieldRef
}

func (e *FieldExpr) ExprKind() string { return "FieldExpr" }

// MacroExpr is a backtick-delimited macro invocation; its expansion is out
// of scope (spec.md §1 Non-goals: "does not ... resolve macros").
type MacroExpr struct {
	Base
	Text string
}

func (e *MacroExpr) ExprKind() string { return "MacroExpr" }

// BinaryExpr covers and/or/comparison/additive/multiplicative operators.
type BinaryExpr struct {
	Base
	Op  string
	Lhs Expr
	Rhs Expr
}

func (e *BinaryExpr) ExprKind() string { return "BinaryExpr" }

// UnaryExpr covers logical NOT and unary minus.
type UnaryExpr struct {
	Base
	Op      string
	Operand Expr
}

func (e *UnaryExpr) ExprKind() string { return "UnaryExpr" }

// CallExpr is a function call: an identifier applied to zero or more
// argument expressions (e.g. `len(x)`, `if(a>b, a, b)`, `now()`).
type CallExpr struct {
	Base
	Name string
	Args []Expr
}

func (e *CallExpr) ExprKind() string { return "CallExpr" }

// ParenExpr is a parenthesized sub-expression, kept distinct so Render can
// reproduce the original grouping.
type ParenExpr struct {
	Base
	Inner Expr
}

func (e *ParenExpr) ExprKind() string { return "ParenExpr" }

// SubsearchExpr embeds a fully-lifted nested pipeline for `[ ... ]` used
// inside a search expression or a boolean expression.
type SubsearchExpr struct {
	Base
	Pipeline *Pipeline
}

func (e *SubsearchExpr) ExprKind() string { return "SubsearchExpr" }

// ReferencedFields walks expr and returns the distinct field names it
// reads, in first-occurrence order. Function names and literals are not
// included (spec.md §4.3 eval: "collect referenced field names").
func ReferencedFields(expr Expr) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(Expr)
	walk = func(e Expr) {
		if e == nil {
			return
		}
		switch n := e.(type) {
		case *FieldExpr:
			if n.Ref.IsWildcard {
				return
			}
			if !seen[n.Ref.Name] {
				seen[n.Ref.Name] = true
				out = append(out, n.Ref.Name)
			}
		case *BinaryExpr:
			walk(n.Lhs)
			walk(n.Rhs)
		case *UnaryExpr:
			walk(n.Operand)
		case *ParenExpr:
			walk(n.Inner)
		case *CallExpr:
			for _, a := range n.Args {
				walk(a)
			}
		}
	}
	walk(expr)
	return out
}

// functionDataTypes maps a handful of well-known eval functions to their
// result type for InferDataType's function-call case (spec.md §4.3).
var functionDataTypes = map[string]string{
	"len":      "number",
	"lower":    "string",
	"upper":    "string",
	"substr":   "string",
	"trim":     "string",
	"replace":  "string",
	"split":    "string",
	"tostring": "string",
	"now":      "time",
	"strftime": "string",
	"strptime": "time",
	"tonumber": "number",
	"round":    "number",
	"abs":      "number",
}

// InferDataType applies the small rule set from spec.md §4.3: a literal
// keeps its own type, concatenation infers string, comparisons/logical ops
// infer boolean, arithmetic of numbers infers number, calls dispatch through a function
// type table (`if` takes the type of its branches, `coalesce` the first
// non-unknown argument), everything else is unknown.
func InferDataType(expr Expr) string {
	switch n := expr.(type) {
	case *Literal:
		return n.DataType
	case *FieldExpr:
		return "unknown"
	case *MacroExpr:
		return "unknown"
	case *ParenExpr:
		return InferDataType(n.Inner)
	case *UnaryExpr:
		if n.Op == "not" {
			return "boolean"
		}
		return InferDataType(n.Operand)
	case *BinaryExpr:
		switch n.Op {
		case "and", "or", "eq", "ne", "lt", "le", "gt", "ge":
			return "boolean"
		case "concat":
			return "string"
		case "add", "sub", "mul", "div", "mod":
			lt, rt := InferDataType(n.Lhs), InferDataType(n.Rhs)
			if lt == "number" && rt == "number" {
				return "number"
			}
			if lt == "string" || rt == "string" {
				return "string"
			}
			return "unknown"
		}
		return "unknown"
	case *CallExpr:
		switch strings.ToLower(n.Name) {
		case "if":
			if len(n.Args) >= 3 {
				t1 := InferDataType(n.Args[1])
				t2 := InferDataType(n.Args[2])
				if t1 == t2 {
					return t1
				}
			}
			return "unknown"
		case "coalesce":
			for _, a := range n.Args {
				if t := InferDataType(a); t != "unknown" {
					return t
				}
			}
			return "unknown"
		}
		if t, ok := functionDataTypes[strings.ToLower(n.Name)]; ok {
			return t
		}
		return "unknown"
	}
	return "unknown"
}

// Render re-serializes expr into SPL-like text for CommandFieldEffect's
// `expression` metadata field. It is a best-effort textual reconstruction,
// not guaranteed to round-trip exactly through the lexer.
func Render(expr Expr) string {
	switch n := expr.(type) {
	case *Literal:
		return n.Text
	case *FieldExpr:
		return n.Ref.Name
	case *MacroExpr:
		return n.Text
	case *ParenExpr:
		return "(" + Render(n.Inner) + ")"
	case *UnaryExpr:
		if n.Op == "not" {
			return "NOT " + Render(n.Operand)
		}
		return "-" + Render(n.Operand)
	case *BinaryExpr:
		return Render(n.Lhs) + " " + binarySymbol(n.Op) + " " + Render(n.Rhs)
	case *CallExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = Render(a)
		}
		return n.Name + "(" + strings.Join(args, ", ") + ")"
	}
	return ""
}

func binarySymbol(op string) string {
	switch op {
	case "and":
		return "AND"
	case "or":
		return "OR"
	case "eq":
		return "="
	case "ne":
		return "!="
	case "lt":
		return "<"
	case "le":
		return "<="
	case "gt":
		return ">"
	case "ge":
		return ">="
	case "concat":
		return "."
	case "add":
		return "+"
	case "sub":
		return "-"
	case "mul":
		return "*"
	case "div":
		return "/"
	case "mod":
		return "%"
	}
	return op
}
