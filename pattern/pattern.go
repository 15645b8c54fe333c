// Package pattern implements the declarative command pattern library
// (spec.md §4.4, component C5): a single interpreter that turns any
// "templated" command — one whose field effect is fully described by a
// consumed field list plus a preserve/drop policy — into a
// fieldlineage.CommandFieldEffect, without a bespoke handler function per
// command.
package pattern

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// Templated is the shape every pattern-eligible command satisfies; every
// ast.GenericFieldCommand-embedding type gets this for free via promoted
// methods.
type Templated interface {
	ast.Stage
	TemplateFields() []ast.FieldRef
	TemplateRenamings() []ast.Renaming
}

// Semantics describes how a pattern disposes of the live field set once
// its consumes/creates are applied (spec.md §4.4 Pattern.semantics).
type Semantics struct {
	PreservesAll   bool
	DropsAllExcept bool // when true, dropsAllExcept = the fields this pattern names
}

// Pattern is a declarative field-effect shape. ConsumesFields selects
// whether the templated field list feeds consumes. CreatesFromRenaming is
// not consulted by Interpret, which turns every renaming into a create.
type Pattern struct {
	ConsumesFields     bool
	CreatesFromRenaming bool
	Semantics          Semantics
	Confidence         fieldlineage.Confidence
	DataType           fieldlineage.DataType
}

// Library is the default pattern registry, keyed by lowercase command
// name, covering every SPL command whose effect needs nothing beyond "it
// reads these fields and leaves everything else alone" (spec.md §9: the
// engine cannot statically enumerate these commands' true output columns,
// so the conservative choice is to consume what's named and preserve the
// rest, same posture as the Extract handler).
var Library = map[string]Pattern{
	"spath":        passthroughConsumer,
	"timewrap":     passthroughConsumer,
	"xpath":        passthroughConsumer,
	"xmlkv":        passthroughConsumer,
	"xmlunescape":  passthroughConsumer,
	"multikv":      passthroughConsumer,
	"erex":         passthroughConsumer,
	"kv":           passthroughConsumer,
	"addtotals":    passthroughConsumer,
	"delta":        passthroughConsumer,
	"accum":        passthroughConsumer,
	"autoregress":  passthroughConsumer,
	"inputcsv":     passthroughConsumer,
	"fieldsummary": passthroughConsumer,
	"addcoltotals": passthroughConsumer,
	"bucketdir":    passthroughConsumer,
	"geom":         passthroughConsumer,
	"concurrency":  passthroughConsumer,
	"typer":        passthroughConsumer,
	"reltime":      passthroughConsumer,
}

var passthroughConsumer = Pattern{
	ConsumesFields: true,
	Semantics:      Semantics{PreservesAll: true},
}

// Lookup returns the pattern registered for commandName, and whether one
// exists (spec.md §4.5 step 4: "If the stage has a matching pattern in
// the library").
func Lookup(commandName string) (Pattern, bool) {
	p, ok := Library[commandName]
	return p, ok
}

// Interpret walks stage through p and returns the resulting effect
// (spec.md §4.4 interpretPattern). Renamings (field AS alias, present on
// any templated command that supports it) always produce a create
// depending on the old name, mirroring rename's atomic drop+create
// without this package needing to special-case it.
func Interpret(p Pattern, stage Templated) fieldlineage.CommandFieldEffect {
	effect := fieldlineage.CommandFieldEffect{PreservesAll: p.Semantics.PreservesAll}

	if p.ConsumesFields {
		for _, f := range stage.TemplateFields() {
			if f.IsWildcard || f.Name == "" {
				continue
			}
			effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{
				FieldName: f.Name,
				Line:      f.Location.Start.Line,
				Column:    f.Location.Start.Column,
			})
		}
	}

	for _, r := range stage.TemplateRenamings() {
		if r.Old.IsWildcard || r.New.IsWildcard {
			continue
		}
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName:  r.New.Name,
			DependsOn:  []string{r.Old.Name},
			DataType:   fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Likely,
			Line:       r.New.Location.Start.Line,
			Column:     r.New.Location.Start.Column,
			IsRename:   true,
		})
		effect.Drops = append(effect.Drops, fieldlineage.FieldDropped{
			FieldName: r.Old.Name,
			Reason:    fieldlineage.Explicit,
			Line:      r.Old.Location.Start.Line,
			Column:    r.Old.Location.Start.Column,
		})
	}

	if p.Semantics.DropsAllExcept {
		effect.HasDropsAllExcept = true
		for _, f := range stage.TemplateFields() {
			if !f.IsWildcard && f.Name != "" {
				effect.DropsAllExcept = append(effect.DropsAllExcept, f.Name)
			}
		}
	}
	return effect
}
