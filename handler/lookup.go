package handler

import (
	"regexp"
	"strings"

	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// outputRescue recovers OUTPUT/OUTPUTNEW field names from raw source text
// when the parser didn't surface an explicit output mapping list (spec.md
// §4.6 "Lookup ... textual rescue").
var outputRescue = regexp.MustCompile(`(?i)output(?:new)?(.+)`)

// lookupHandler implements spec.md §4.6 "Lookup": consumes every input
// mapping field, creates one field per output mapping (or per
// textually-rescued name when the grammar found no explicit OUTPUT
// clause) at "likely" confidence since lookup misses leave fields unset
// rather than absent.
func lookupHandler(stage ast.Stage, tracker Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.LookupCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{PreservesAll: true}
	var inputNames []string
	for _, m := range s.InputMappings {
		if !m.LookupField.IsWildcard && m.LookupField.Name != "" {
			effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{
				FieldName: m.LookupField.Name, Line: m.Location.Start.Line, Column: m.Location.Start.Column,
			})
			inputNames = append(inputNames, m.LookupField.Name)
		}
		if m.EventField != nil && !m.EventField.IsWildcard && m.EventField.Name != "" && m.EventField.Name != m.LookupField.Name {
			effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{
				FieldName: m.EventField.Name, Line: m.Location.Start.Line, Column: m.Location.Start.Column,
			})
		}
	}

	loc := s.Location().Start
	outputs := s.OutputMappings
	var rescued []string
	if len(outputs) == 0 {
		rescued = rescueOutputFields(tracker.SourceLine(loc.Line))
	}

	for _, m := range outputs {
		name := m.LookupField.Name
		if m.EventField != nil {
			name = m.EventField.Name
		}
		if name == "" {
			continue
		}
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DependsOn: inputNames, DataType: fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Likely, Line: loc.Line, Column: loc.Column,
		})
	}
	for _, name := range rescued {
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DependsOn: inputNames, DataType: fieldlineage.TypeUnknown,
			Confidence: fieldlineage.Likely, Line: loc.Line, Column: loc.Column,
		})
	}
	return effect
}

func rescueOutputFields(line string) []string {
	m := outputRescue.FindStringSubmatch(line)
	if len(m) < 2 {
		return nil
	}
	return strings.Fields(strings.ReplaceAll(m[1], ",", " "))
}

// inputlookupHandler implements spec.md §4.6 "Inputlookup": when a schema
// is cached for the table, creates each column at "certain" confidence
// and drops everything else (it originates a new event stream); otherwise
// falls back to a single opaque placeholder at "unknown" confidence.
func inputlookupHandler(stage ast.Stage, tracker Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.InputlookupCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	loc := s.Location().Start
	effect := fieldlineage.CommandFieldEffect{}
	if schema, ok := tracker.LookupSchema(s.Name); ok && len(schema) > 0 {
		effect.HasDropsAllExcept = true
		for _, col := range schema {
			effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
				FieldName: col.Name, DataType: schemaDataType(col.Type),
				Confidence: fieldlineage.Certain, Line: loc.Line, Column: loc.Column,
			})
			effect.DropsAllExcept = append(effect.DropsAllExcept, col.Name)
		}
		return effect
	}
	effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
		FieldName: "(lookup_fields)", DataType: fieldlineage.TypeUnknown,
		Confidence: fieldlineage.Unknown, Line: loc.Line, Column: loc.Column,
	})
	return effect
}

func schemaDataType(t string) fieldlineage.DataType {
	switch strings.ToLower(t) {
	case "number", "int", "float", "double":
		return fieldlineage.TypeNumber
	case "boolean", "bool":
		return fieldlineage.TypeBoolean
	case "time", "date", "datetime":
		return fieldlineage.TypeTime
	case "string":
		return fieldlineage.TypeString
	}
	return fieldlineage.TypeUnknown
}
