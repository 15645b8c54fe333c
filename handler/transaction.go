package handler

import (
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// transactionHandler implements spec.md §4.6 "Transaction": consumes the
// grouping fields, creates duration/eventcount at certain confidence,
// preserves everything else.
func transactionHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.TransactionCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := consumeOnly(s.Fields)
	loc := s.Location().Start
	for _, name := range []string{"duration", "eventcount"} {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DataType: fieldlineage.TypeNumber,
			Confidence: fieldlineage.Certain, Line: loc.Line, Column: loc.Column,
		})
	}
	return effect
}

// iplocationHandler implements spec.md §4.6 "Iplocation": consumes the
// IP field, creates the five geo fields named {prefix}city/country/
// lat/lon/region, preserves everything else.
func iplocationHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.IplocationCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	if s.Field.Name == "" {
		return effect
	}
	effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: s.Field.Name, Line: s.Field.Location.Start.Line, Column: s.Field.Location.Start.Column})

	loc := s.Location().Start
	names := []string{"city", "country", "lat", "lon", "region"}
	types := map[string]fieldlineage.DataType{
		"city": fieldlineage.TypeString, "country": fieldlineage.TypeString, "region": fieldlineage.TypeString,
		"lat": fieldlineage.TypeNumber, "lon": fieldlineage.TypeNumber,
	}
	for _, n := range names {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: s.Prefix + n, DependsOn: []string{s.Field.Name}, DataType: types[n],
			Confidence: fieldlineage.Certain, Line: loc.Line, Column: loc.Column,
		})
	}
	return effect
}
