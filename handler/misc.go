package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// returnHandler implements spec.md §4.6 "Return": consumes every listed
// field and every field referenced by a `$field=expr` assignment. Return
// only ever surfaces fields out of its own subsearch pipeline, so within
// this analysis it never creates or drops.
func returnHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.ReturnCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := consumeOnly(s.Fields)
	for _, a := range s.Assignments {
		loc := a.Target.Location.Start
		for _, f := range a.ReferencedFields {
			effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f, Line: loc.Line, Column: loc.Column})
		}
	}
	return effect
}

// makeresultsHandler implements spec.md §4.6 "Makeresults": it
// originates a fresh event stream, so only CreatedFields survive.
func makeresultsHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.MakeresultsCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{HasDropsAllExcept: true}
	loc := s.Location().Start
	for _, name := range s.CreatedFields {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DataType: makeresultsFieldType(name),
			Confidence: fieldlineage.Certain, Line: loc.Line, Column: loc.Column,
		})
		effect.DropsAllExcept = append(effect.DropsAllExcept, name)
	}
	return effect
}

func makeresultsFieldType(name string) fieldlineage.DataType {
	if name == "_time" {
		return fieldlineage.TypeTime
	}
	return fieldlineage.TypeString
}

// rowFieldHandler implements spec.md §4.6 "Contingency/Xyseries":
// consumes the listed fields; conservatively keeps only the first
// (row-key) field since the real runtime output columns are
// data-dependent and can't be statically enumerated (spec.md §9).
func rowFieldHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	var fields []ast.FieldRef
	switch s := stage.(type) {
	case *ast.ContingencyCommand:
		fields = s.Fields
	case *ast.XyseriesCommand:
		fields = s.Fields
	default:
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{HasDropsAllExcept: true}
	for _, f := range fields {
		if f.IsWildcard || f.Name == "" {
			continue
		}
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f.Name, Line: f.Location.Start.Line, Column: f.Location.Start.Column})
	}
	for _, f := range fields {
		if !f.IsWildcard && f.Name != "" {
			effect.DropsAllExcept = []string{f.Name}
			break
		}
	}
	return effect
}
