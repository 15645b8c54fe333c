package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// subsearchHandler implements spec.md §4.6 "Subsearch family" for append,
// appendcols, and union: the embedded pipeline is analyzed in isolation
// and every field live at its end is folded in as a "likely" create,
// since the outer analysis can't know which of those fields will
// actually appear on any given event.
func subsearchHandler(stage ast.Stage, tracker Tracker) fieldlineage.CommandFieldEffect {
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	sub := subsearchPipelineOf(stage)
	if sub == nil {
		return effect
	}
	idx := tracker.AnalyzeSubpipeline(sub)
	if idx == nil {
		return effect
	}
	loc := stage.Location().Start
	for _, name := range idx.GetAllFields() {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DataType: fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Likely, Line: loc.Line, Column: loc.Column,
		})
	}
	return effect
}

// joinHandler implements spec.md §4.6 "Join": consumes the join keys in
// addition to folding in the subsearch's resulting fields as creates
// depending on those keys.
func joinHandler(stage ast.Stage, tracker Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.JoinCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	var joinKeys []string
	for _, f := range s.JoinFields {
		if f.IsWildcard || f.Name == "" {
			continue
		}
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f.Name, Line: f.Location.Start.Line, Column: f.Location.Start.Column})
		joinKeys = append(joinKeys, f.Name)
	}
	if s.Subsearch == nil {
		return effect
	}
	idx := tracker.AnalyzeSubpipeline(s.Subsearch)
	if idx == nil {
		return effect
	}
	loc := s.Location().Start
	for _, name := range idx.GetAllFields() {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DependsOn: joinKeys, DataType: fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Likely, Line: loc.Line, Column: loc.Column,
		})
	}
	return effect
}

func subsearchPipelineOf(stage ast.Stage) *ast.Pipeline {
	switch s := stage.(type) {
	case *ast.AppendCommand:
		return s.Subsearch
	case *ast.UnionCommand:
		return s.Subsearch
	}
	return nil
}
