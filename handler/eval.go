package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// evalHandler implements spec.md §4.6 "Eval": one create per assignment,
// consumes for every field the expression reads, preservesAll since eval
// never removes a field on its own.
func evalHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.EvalCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	seen := map[string]bool{}
	for _, a := range s.Assignments {
		if a.Target.IsWildcard || a.Target.Name == "" {
			continue
		}
		loc := a.Expr.Location().Start
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName:  a.Target.Name,
			DependsOn:  a.ReferencedFields,
			Expression: ast.Render(a.Expr),
			DataType:   fieldlineage.DataType(a.DataType),
			Confidence: fieldlineage.Certain,
			Line:       a.Target.Location.Start.Line,
			Column:     a.Target.Location.Start.Column,
		})
		for _, f := range a.ReferencedFields {
			if seen[f] {
				continue
			}
			seen[f] = true
			effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f, Line: loc.Line, Column: loc.Column})
		}
	}
	return effect
}

// whereHandler implements spec.md §4.6 "Where": consumes referenced
// fields, never creates or drops.
func whereHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.WhereCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	if s.Expr == nil {
		return effect
	}
	loc := s.Expr.Location().Start
	for _, f := range s.ReferencedFields {
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f, Line: loc.Line, Column: loc.Column})
	}
	return effect
}

// searchHandler implements spec.md §4.6 "SearchExpression": consumes
// every non-wildcard comparison field; preservesAll is implicit since
// this is the pipeline origin.
func searchHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.SearchExpression)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	seen := map[string]bool{}
	for _, t := range s.Terms {
		if t.Field.IsWildcard || t.Field.Name == "" || seen[t.Field.Name] {
			continue
		}
		seen[t.Field.Name] = true
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{
			FieldName: t.Field.Name,
			Line:      t.Location.Start.Line,
			Column:    t.Location.Start.Column,
		})
	}
	return effect
}
