// Package handler implements the command handler registry (spec.md §4.5,
// component C6) and the per-command handler functions (spec.md §4.6,
// component C7). Each handler is a pure function from an AST stage and a
// read-only Tracker view of the live field set to a
// fieldlineage.CommandFieldEffect.
package handler

import (
	"strings"

	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/pattern"
)

// SchemaField is one column of a cached lookup-table schema, supplied to
// the analyzer via the WithLookupSchemas option and consumed by the
// Inputlookup handler (spec.md §6 "lookupSchemas").
type SchemaField struct {
	Name string
	Type string
}

// Tracker is the read-only view handlers get of the analysis in
// progress (spec.md §4.7 "Field tracker"). Handlers never mutate it.
type Tracker interface {
	Contains(name string) bool
	ExistingFields() []string
	SourceLine(line int) string
	LookupSchema(name string) ([]SchemaField, bool)
	// AnalyzeSubpipeline recursively analyzes an embedded subsearch with a
	// fresh, isolated field tracker (spec.md §5 "does not share the
	// parent's field tracker") and returns its resulting index, or nil if
	// the bounded recursion depth was exceeded (spec.md §9 "Subsearch
	// recursion").
	AnalyzeSubpipeline(p *ast.Pipeline) *fieldlineage.LineageIndex
}

// Handler is the signature every command handler satisfies (spec.md
// §4.6): pure, no tracker mutation, no I/O.
type Handler func(stage ast.Stage, tracker Tracker) fieldlineage.CommandFieldEffect

// Passthrough emits an empty effect: the stage is observed but changes
// nothing (spec.md §4.5 step 1/6, §4.6 "default pass-through").
func Passthrough(ast.Stage, Tracker) fieldlineage.CommandFieldEffect {
	return fieldlineage.CommandFieldEffect{PreservesAll: true}
}

// Registry maps command name and AST variant to a Handler (spec.md §4.5).
// Populated once; safe for concurrent reads across analyses (spec.md §5
// "Shared-resource policy").
type Registry struct {
	byName    map[string]Handler
	byVariant map[string]Handler
}

// NewRegistry builds the default registry covering every handler
// described in spec.md §4.6, plus pattern-based dispatch for the
// remaining templated commands.
func NewRegistry() *Registry {
	r := &Registry{
		byName:    map[string]Handler{},
		byVariant: map[string]Handler{},
	}

	r.byName["eval"] = evalHandler
	r.byName["where"] = whereHandler
	r.byName["rex"] = rexHandler
	r.byName["rename"] = renameHandler
	r.byName["lookup"] = lookupHandler
	r.byName["inputlookup"] = inputlookupHandler
	r.byName["table"] = tableHandler
	r.byName["fields"] = fieldsHandler
	r.byName["dedup"] = dedupHandler
	r.byName["replace"] = replaceHandler
	r.byName["bin"] = binHandler
	r.byName["convert"] = convertHandler
	r.byName["makemv"] = makemvHandler
	r.byName["nomv"] = nomvHandler
	r.byName["makecontinuous"] = makecontinuousHandler
	r.byName["top"] = topHandler
	r.byName["rare"] = rareHandler
	r.byName["strcat"] = strcatHandler
	r.byName["transaction"] = transactionHandler
	r.byName["iplocation"] = iplocationHandler
	r.byName["tstats"] = tstatsHandler
	r.byName["append"] = subsearchHandler
	r.byName["appendcols"] = subsearchHandler
	r.byName["join"] = joinHandler
	r.byName["union"] = subsearchHandler
	r.byName["return"] = returnHandler
	r.byName["makeresults"] = makeresultsHandler
	r.byName["contingency"] = rowFieldHandler
	r.byName["xyseries"] = rowFieldHandler
	r.byName["setfields"] = setfieldsHandler
	r.byName["tags"] = tagsHandler
	r.byName["extract"] = ExtractHandler
	r.byName["search"] = searchHandler

	r.byVariant["StatsCommand"] = statsHandler
	r.byVariant["SearchExpression"] = searchHandler

	return r
}

// commandName derives the lowercase SPL command name used for dispatch
// (spec.md §4.5 step 2), resolving the cases where the Go type name alone
// doesn't carry it: GenericCommand's free-form name, stats' variant
// keyword, and append's column-wise spelling.
func commandName(stage ast.Stage) string {
	switch s := stage.(type) {
	case *ast.GenericCommand:
		return strings.ToLower(s.CommandName)
	case *ast.StatsCommand:
		return s.Variant
	case *ast.AppendCommand:
		if s.Cols {
			return "appendcols"
		}
		return "append"
	case *ast.SearchExpression:
		return "search"
	}
	return strings.ToLower(strings.TrimSuffix(stage.Kind(), "Command"))
}

// Resolve implements the dispatch order from spec.md §4.5:
// tracked-filter → name lookup → variant lookup → pattern interpreter →
// extract special-case → pass-through.
func (r *Registry) Resolve(stage ast.Stage, trackedCommands map[string]bool) Handler {
	name := commandName(stage)

	if trackedCommands != nil && !trackedCommands[name] {
		return Passthrough
	}
	if h, ok := r.byName[name]; ok {
		return h
	}
	if h, ok := r.byVariant[stage.Kind()]; ok {
		return h
	}
	if tpl, ok := stage.(pattern.Templated); ok {
		if p, ok := pattern.Lookup(name); ok {
			return func(ast.Stage, Tracker) fieldlineage.CommandFieldEffect {
				return pattern.Interpret(p, tpl)
			}
		}
	}
	if name == "extract" {
		return ExtractHandler
	}
	return Passthrough
}
