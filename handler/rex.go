package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// rexHandler implements spec.md §4.6 "Rex": consumes the source field
// (defaulting to _raw), creates one field per named capture group at
// "likely" confidence since the regex may not match every event.
func rexHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.RexCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	src := s.SourceField.Name
	if src == "" {
		src = "_raw"
	}
	loc := s.Location().Start
	effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: src, Line: loc.Line, Column: loc.Column})
	expression := `rex field=` + src + ` "` + s.Pattern + `"`
	for _, name := range s.ExtractedFields {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName:  name,
			DependsOn:  []string{src},
			Expression: expression,
			DataType:   fieldlineage.TypeString,
			Confidence: fieldlineage.Likely,
			Line:       loc.Line,
			Column:     loc.Column,
		})
	}
	return effect
}

// renameHandler implements spec.md §4.6 "Rename": every pair is an atomic
// drop of the old name and create of the new one (spec.md §3 invariant
// 3), never a consume.
func renameHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.RenameCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	for _, r := range s.Renamings {
		if r.Old.IsWildcard || r.New.IsWildcard || r.Old.Name == "" || r.New.Name == "" {
			continue
		}
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName:  r.New.Name,
			DependsOn:  []string{r.Old.Name},
			Expression: r.Old.Name + " AS " + r.New.Name,
			DataType:   fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Certain,
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
	return effect
}
