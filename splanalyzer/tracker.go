package splanalyzer

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/handler"
)

// fieldTracker is the concrete handler.Tracker for one analysis pass
// (spec.md §4.7 "Field tracker"). A fresh instance backs each subsearch
// recursion (spec.md §5: "does not share the parent's field tracker").
type fieldTracker struct {
	analyzer    *Analyzer
	index       *fieldlineage.LineageIndex
	sourceLines []string
	depth       int
}

func newFieldTracker(a *Analyzer, sourceLines []string, depth int) *fieldTracker {
	return &fieldTracker{analyzer: a, index: fieldlineage.NewIndex(), sourceLines: sourceLines, depth: depth}
}

func (t *fieldTracker) Contains(name string) bool {
	fl := t.index.Current(name)
	return fl != nil && fl.CurrentState == fieldlineage.Live
}

func (t *fieldTracker) ExistingFields() []string { return t.index.GetAllFields() }

func (t *fieldTracker) SourceLine(line int) string {
	if line <= 0 || line > len(t.sourceLines) {
		return ""
	}
	return t.sourceLines[line-1]
}

func (t *fieldTracker) LookupSchema(name string) ([]handler.SchemaField, bool) {
	cols, ok := t.analyzer.lookupSchemas[name]
	return cols, ok
}

// AnalyzeSubpipeline implements spec.md §4.6 "Subsearch family": a fresh,
// isolated tracker analyzes the embedded pipeline, bounded by
// maxSubsearchDepth (spec.md §9 "Subsearch recursion"). Past the bound,
// the subsearch is treated as contributing no fields.
func (t *fieldTracker) AnalyzeSubpipeline(p *ast.Pipeline) *fieldlineage.LineageIndex {
	if p == nil {
		return nil
	}
	if t.depth+1 > t.analyzer.maxSubsearchDepth {
		return nil
	}
	child := newFieldTracker(t.analyzer, t.sourceLines, t.depth+1)
	return child.run(p)
}

// run walks p's stages in order, applying spec.md §4.7's analyzer loop,
// and returns the resulting index.
func (t *fieldTracker) run(p *ast.Pipeline) *fieldlineage.LineageIndex {
	var stages []ast.Stage
	if p.InitialSearch != nil {
		stages = append(stages, p.InitialSearch)
	}
	stages = append(stages, p.Stages...)

	for i, stage := range stages {
		h := t.analyzer.registry.Resolve(stage, t.analyzer.trackedCommands)
		effect := h(stage, t)
		t.applyStage(stage, effect, i)
	}
	return t.index
}

type dropInfo struct {
	reason fieldlineage.DropReason
	line   int
	col    int
}

// applyStage implements spec.md §4.7 steps 3-4: determine the drop set,
// then apply consumes → modifies → creates → drops in that fixed order.
func (t *fieldTracker) applyStage(stage ast.Stage, effect fieldlineage.CommandFieldEffect, stageIndex int) {
	idx := t.index

	for _, c := range effect.Consumes {
		fl := idx.Current(c.FieldName)
		if fl == nil {
			fl = idx.Open(c.FieldName, fieldlineage.NewInstanceKey(c.FieldName, stageIndex, 0))
		}
		idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Consumed, StageIndex: stageIndex, Line: c.Line, Column: c.Column})
	}

	for _, m := range effect.Modifies {
		fl := idx.Current(m.FieldName)
		if fl == nil {
			fl = idx.Open(m.FieldName, fieldlineage.NewInstanceKey(m.FieldName, stageIndex, 0))
		}
		idx.RecordEvent(fl, fieldlineage.Event{
			Kind: fieldlineage.Modified, StageIndex: stageIndex, Line: m.Line, Column: m.Column, DependsOn: m.DependsOn,
		})
	}

	for _, c := range effect.Creates {
		// create takes precedence over an existing same-named live field
		// (spec.md §4.7: "| stats count AS host by host" example).
		if existing := idx.Current(c.FieldName); existing != nil && existing.CurrentState == fieldlineage.Live {
			idx.RecordEvent(existing, fieldlineage.Event{Kind: fieldlineage.Dropped, StageIndex: stageIndex, Line: c.Line, Column: c.Column})
		}
		fl := idx.Open(c.FieldName, fieldlineage.NewInstanceKey(c.FieldName, stageIndex, 0))
		kind := fieldlineage.Created
		if c.IsRename {
			kind = fieldlineage.Renamed
		}
		idx.RecordEvent(fl, fieldlineage.Event{
			Kind: kind, StageIndex: stageIndex, Line: c.Line, Column: c.Column,
			DependsOn: c.DependsOn, Expression: c.Expression, DataType: c.DataType, Confidence: c.Confidence,
		})
	}

	drops := map[string]dropInfo{}
	for _, d := range effect.Drops {
		drops[d.FieldName] = dropInfo{reason: d.Reason, line: d.Line, col: d.Column}
	}
	if !effect.PreservesAll && effect.HasDropsAllExcept {
		keep := map[string]bool{}
		for _, k := range effect.DropsAllExcept {
			keep[k] = true
		}
		loc := stage.Location().Start
		for _, name := range idx.GetAllFields() {
			if keep[name] {
				continue
			}
			if _, already := drops[name]; already {
				continue
			}
			drops[name] = dropInfo{reason: fieldlineage.Implicit, line: loc.Line, col: loc.Column}
		}
	}
	for name, info := range drops {
		fl := idx.Current(name)
		if fl == nil {
			// An explicitly-dropped name (e.g. rename's synthetic-origin
			// "_raw", never consumed before it's dropped) has no prior
			// instance to close. Open one so the drop event still lands
			// (spec.md §3/§8 invariant 5: rename is atomic drop+create).
			fl = idx.Open(name, fieldlineage.NewInstanceKey(name, stageIndex, 0))
		} else if fl.CurrentState != fieldlineage.Live {
			continue
		}
		idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Dropped, StageIndex: stageIndex, Line: info.line, Column: info.col})
	}

	idx.SnapshotLine(stage.Location().Start.Line, idx.GetAllFields())
}
