package handler

import (
	"strings"

	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/token"
)

// topHandler and rareHandler implement spec.md §4.6 "Top/Rare": consume
// the analyzed and BY fields, create a count column and (unless
// showperc=false) a percent column, and keep only those plus the BY
// fields.
func topHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.TopCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return topRareEffect(s.TopRareFields, s.Location().Start)
}

func rareHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.RareCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	return topRareEffect(s.TopRareFields, s.Location().Start)
}

func topRareEffect(f ast.TopRareFields, loc token.Position) fieldlineage.CommandFieldEffect {
	effect := fieldlineage.CommandFieldEffect{}
	seen := map[string]bool{}
	addConsume := func(ref ast.FieldRef) {
		if ref.IsWildcard || ref.Name == "" || seen[ref.Name] {
			return
		}
		seen[ref.Name] = true
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: ref.Name, Line: ref.Location.Start.Line, Column: ref.Location.Start.Column})
	}

	var analyzed []string
	for _, fld := range f.Fields {
		addConsume(fld)
		if !fld.IsWildcard && fld.Name != "" {
			analyzed = append(analyzed, fld.Name)
		}
	}
	var byNames []string
	for _, fld := range f.ByFields {
		addConsume(fld)
		if !fld.IsWildcard && fld.Name != "" {
			byNames = append(byNames, fld.Name)
		}
	}

	effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
		FieldName: "count", DependsOn: analyzed, DataType: fieldlineage.TypeNumber,
		Confidence: fieldlineage.Certain, Line: loc.Line, Column: loc.Column,
	})
	keep := append(append([]string{}, analyzed...), byNames...)
	keep = append(keep, "count")

	if !optionFalse(f.Options, "showperc") {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: "percent", DependsOn: analyzed, DataType: fieldlineage.TypeNumber,
			Confidence: fieldlineage.Certain, Line: loc.Line, Column: loc.Column,
		})
		keep = append(keep, "percent")
	}

	effect.HasDropsAllExcept = true
	effect.DropsAllExcept = keep
	return effect
}

func optionFalse(opts map[string]ast.Expr, name string) bool {
	e, ok := opts[name]
	if !ok {
		return false
	}
	lit, ok := e.(*ast.Literal)
	if !ok {
		return false
	}
	v := strings.ToLower(strings.Trim(lit.Text, `"'`))
	return v == "false" || v == "f" || v == "0"
}

// strcatHandler implements spec.md §4.6 "Strcat": consumes every source
// field, creates DestField depending on all of them.
func strcatHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.StrcatCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	var deps []string
	for _, f := range s.SourceFields {
		if f.IsWildcard || f.Name == "" {
			continue
		}
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: f.Name, Line: f.Location.Start.Line, Column: f.Location.Start.Column})
		deps = append(deps, f.Name)
	}
	if s.DestField.Name != "" {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: s.DestField.Name, DependsOn: deps, DataType: fieldlineage.TypeString,
			Confidence: fieldlineage.Certain, Line: s.DestField.Location.Start.Line, Column: s.DestField.Location.Start.Column,
		})
	}
	return effect
}
