package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// dedupHandler implements spec.md §4.6 "Dedup": consumes the dedup key
// fields, preservesAll.
func dedupHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.DedupCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return consumeOnly(s.Fields)
}

// replaceHandler implements spec.md §4.6 "Replace": consumes the targeted
// fields, preservesAll — it rewrites values, not field presence.
func replaceHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.ReplaceCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return consumeOnly(s.Fields)
}

// tagsHandler treats tags as a pass-through consumer of the fields it
// inspects (spec.md §4.6 "Tags").
func tagsHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.TagsCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return consumeOnly(s.Fields)
}

func consumeOnly(fields []ast.FieldRef) fieldlineage.CommandFieldEffect {
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	for _, f := range fields {
		if f.IsWildcard || f.Name == "" {
			continue
		}
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f.Name, Line: f.Location.Start.Line, Column: f.Location.Start.Column})
	}
	return effect
}

// binHandler implements spec.md §4.6 "Bin": consumes the bucketed field;
// with an alias it creates the new name instead of modifying in place.
func binHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.BinCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	if s.Field.Name == "" {
		return effect
	}
	effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: s.Field.Name, Line: s.Field.Location.Start.Line, Column: s.Field.Location.Start.Column})
	if s.Alias != nil && s.Alias.Name != "" {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: s.Alias.Name, DependsOn: []string{s.Field.Name}, DataType: fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Certain, Line: s.Alias.Location.Start.Line, Column: s.Alias.Location.Start.Column,
		})
		return effect
	}
	effect.Modifies = append(effect.Modifies, fieldlineage.FieldModification{
		FieldName: s.Field.Name, DependsOn: []string{s.Field.Name},
		Line: s.Field.Location.Start.Line, Column: s.Field.Location.Start.Column,
	})
	return effect
}

// convertHandler implements spec.md §4.6 "Convert": reuses the
// Aggregation shape; each conversion with an alias creates, without one
// it modifies the source field in place.
func convertHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.ConvertCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	for _, conv := range s.Conversions {
		if conv.Field == nil || conv.Field.Name == "" {
			continue
		}
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: conv.Field.Name, Line: conv.Location.Start.Line, Column: conv.Location.Start.Column})
		if conv.Alias != nil && conv.Alias.Name != "" {
			effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
				FieldName: conv.Alias.Name, DependsOn: []string{conv.Field.Name}, DataType: fieldlineage.TypeUnknown,
				Confidence: fieldlineage.Certain, Line: conv.Location.Start.Line, Column: conv.Location.Start.Column,
			})
			continue
		}
		effect.Modifies = append(effect.Modifies, fieldlineage.FieldModification{
			FieldName: conv.Field.Name, DependsOn: []string{conv.Field.Name},
			Line: conv.Location.Start.Line, Column: conv.Location.Start.Column,
		})
	}
	return effect
}

// makemvHandler, nomvHandler, and makecontinuousHandler all modify a
// single named field in place (spec.md §4.6).
func makemvHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.MakemvCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return singleFieldModify(s.Field)
}

func nomvHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.NomvCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return singleFieldModify(s.Field)
}

func makecontinuousHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.MakecontinuousCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return singleFieldModify(s.Field)
}

func singleFieldModify(f ast.FieldRef) fieldlineage.CommandFieldEffect {
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	if f.IsWildcard || f.Name == "" {
		return effect
	}
	effect.Modifies = append(effect.Modifies, fieldlineage.FieldModification{
		FieldName: f.Name, DependsOn: []string{f.Name},
		Line: f.Location.Start.Line, Column: f.Location.Start.Column,
	})
	return effect
}

// ExtractHandler implements spec.md §4.5 item 5: extract has no
// dedicated AST variant and no statically-derivable output columns, so
// it is treated as a pure pass-through.
func ExtractHandler(ast.Stage, Tracker) fieldlineage.CommandFieldEffect {
	return fieldlineage.CommandFieldEffect{PreservesAll: true}
}

// setfieldsHandler implements spec.md §4.6 "Setfields": unconditional
// literal assignments, each a create at certain confidence.
func setfieldsHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.SetfieldsCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	for _, a := range s.Assignments {
		if a.Target.Name == "" {
			continue
		}
		var dt fieldlineage.DataType
		var expr string
		if a.Expr != nil {
			dt = fieldlineage.DataType(ast.InferDataType(a.Expr))
			expr = ast.Render(a.Expr)
		} else {
			dt = fieldlineage.TypeUnknown
		}
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: a.Target.Name, Expression: expr, DataType: dt,
			Confidence: fieldlineage.Certain, Line: a.Target.Location.Start.Line, Column: a.Target.Location.Start.Column,
		})
	}
	return effect
}
