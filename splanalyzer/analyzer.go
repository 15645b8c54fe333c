// Package splanalyzer implements the top-level Analyzer (spec.md §4.7,
// component C8): the public entry points parseSPL/analyzeLineage/analyze
// (spec.md §6), the field tracker that drives the stage-by-stage walk,
// and the functional options that configure a run.
package splanalyzer

import (
	"strings"

	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/handler"
	"github.com/viant/splfield/lexer"
	"github.com/viant/splfield/parser"
	"github.com/viant/splfield/splerr"
)

const defaultMaxSubsearchDepth = 32

// Analyzer ties the command handler registry to a configuration
// (tracked commands, cached lookup schemas, subsearch recursion bound)
// and exposes the engine's three public operations.
type Analyzer struct {
	registry          *handler.Registry
	trackedCommands   map[string]bool
	lookupSchemas     map[string][]handler.SchemaField
	maxSubsearchDepth int
}

// NewAnalyzer builds an Analyzer with the default handler registry; every
// command is tracked and no lookup schemas are cached unless overridden
// by options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		registry:          handler.NewRegistry(),
		maxSubsearchDepth: defaultMaxSubsearchDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// ParseSPL implements spec.md §6 "parseSPL": lex, parse, lift. Always
// returns — lex/parse problems are reported as values, never a Go error
// or panic (spec.md §7).
func (a *Analyzer) ParseSPL(text string) (*ast.Pipeline, []splerr.Parse, []splerr.Lex) {
	toks, lexErrs := lexer.Tokenize(text)
	cst, parseErrs := parser.Parse(toks)
	if cst == nil {
		return nil, parseErrs, lexErrs
	}
	return ast.LiftPipeline(cst), parseErrs, lexErrs
}

// AnalyzeLineage implements spec.md §6 "analyzeLineage": runs the
// analyzer loop over an already-parsed pipeline with no source text
// available, so Lookup's textual OUTPUT rescue (spec.md §4.6) has
// nothing to read and falls back to whatever explicit output mappings
// the parse produced.
func (a *Analyzer) AnalyzeLineage(pipeline *ast.Pipeline) *fieldlineage.LineageIndex {
	if pipeline == nil {
		return fieldlineage.NewIndex()
	}
	t := newFieldTracker(a, nil, 0)
	return t.run(pipeline)
}

// Analyze implements spec.md §6 "analyze": the convenience composition
// of ParseSPL followed by AnalyzeLineage, with source text threaded
// through so the field tracker's getSourceLine can serve Lookup's
// textual rescue.
func (a *Analyzer) Analyze(text string) (*ast.Pipeline, []splerr.Parse, []splerr.Lex, *fieldlineage.LineageIndex) {
	pipeline, parseErrs, lexErrs := a.ParseSPL(text)
	idx := fieldlineage.NewIndex()
	if pipeline != nil {
		t := newFieldTracker(a, strings.Split(text, "\n"), 0)
		idx = t.run(pipeline)
	}
	return pipeline, parseErrs, lexErrs, idx
}
