package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// tableHandler implements spec.md §4.6 "Table": consumes every listed
// field and keeps only those (dropsAllExcept), unless a bare `*` is
// present among the fields, in which case everything is preserved.
func tableHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.TableCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return tableLikeEffect(s.Fields)
}

func tableLikeEffect(fields []ast.FieldRef) fieldlineage.CommandFieldEffect {
	effect := fieldlineage.CommandFieldEffect{}
	bareStar := false
	var kept []string
	for _, f := range fields {
		if f.Name == "*" {
			bareStar = true
			continue
		}
		if f.IsWildcard || f.Name == "" {
			continue
		}
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f.Name, Line: f.Location.Start.Line, Column: f.Location.Start.Column})
		kept = append(kept, f.Name)
	}
	if bareStar {
		effect.PreservesAll = true
		return effect
	}
	effect.HasDropsAllExcept = true
	effect.DropsAllExcept = kept
	return effect
}

// fieldsHandler implements spec.md §4.6 "Fields": `+` (default) behaves
// like table; `-` drops exactly the listed fields and preserves the rest.
func fieldsHandler(stage ast.Stage, tracker Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.FieldsCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	if s.Sign == "-" {
		effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
		for _, f := range s.Fields {
			if f.IsWildcard || f.Name == "" {
				continue
			}
			effect.Drops = append(effect.Drops, fieldlineage.FieldDropped{
				FieldName: f.Name, Reason: fieldlineage.Explicit,
				Line: f.Location.Start.Line, Column: f.Location.Start.Column,
			})
		}
		return effect
	}
	return tableLikeEffect(s.Fields)
}
