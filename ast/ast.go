// Package ast defines the typed pipeline representation produced by the
// lifter (component C4): one Go type per recognized SPL command, plus the
// shared expression tree used by eval/where/search. The CST (package
// parser) is discarded once lifting completes; nothing downstream holds a
// reference to it.
package ast

import "github.com/viant/splfield/token"

// Stage is the sum type every pipeline element satisfies: exactly one
// concrete type per recognized command, plus SearchExpression and
// GenericCommand.
type Stage interface {
	Kind() string
	Location() token.Span
}

// Base carries the source span every Stage and Expr embeds.
type Base struct {
	Loc token.Span
}

// Location implements Stage and Expr.
func (b Base) Location() token.Span { return b.Loc }

// Pipeline is an ordered sequence of stages, optionally preceded by an
// initial search expression treated as stage 0.
type Pipeline struct {
	InitialSearch *SearchExpression
	Stages        []Stage
}

// FieldRef is a reference to a field by name, resolved during lift from a
// parser "field" CST node.
type FieldRef struct {
	Name       string
	IsWildcard bool
	Location   token.Span
}

// Renaming pairs an old and new field reference, shared by rename and any
// templated command that supports `field AS alias`.
type Renaming struct {
	Old FieldRef
	New FieldRef
}

// GenericCommand is the catch-all for any identifier that isn't a
// recognized command keyword — includes the deliberately unmapped
// `extract` command (spec.md §4.5 item 5).
type GenericCommand struct {
	Base
	CommandName string
	Options     map[string]Expr
	Args        []Expr
}

func (c *GenericCommand) Kind() string { return "GenericCommand" }
