package handler

import (
	"strings"

	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
)

// aggregationFieldName derives the output column name of an aggregation:
// the explicit alias when given, otherwise the conventional
// `function(field)` spelling Splunk itself assigns, or the bare function
// name (`count`) when no field is given.
func aggregationFieldName(agg ast.Aggregation) string {
	if agg.Alias != nil && agg.Alias.Name != "" {
		return agg.Alias.Name
	}
	if agg.Field == nil || agg.Field.Name == "" {
		return agg.Function
	}
	return agg.Function + "(" + agg.Field.Name + ")"
}

// aggregationDataType implements spec.md §4.3's per-function type table:
// values/list/first/last are string, everything else is number.
func aggregationDataType(function string) fieldlineage.DataType {
	switch strings.ToLower(function) {
	case "values", "list", "first", "last":
		return fieldlineage.TypeString
	default:
		return fieldlineage.TypeNumber
	}
}

// statsHandler implements spec.md §4.6 "Stats family" (stats, eventstats,
// streamstats, chart, timechart — dispatched uniformly through
// StatsCommand.Variant): consumes BY fields and aggregated fields,
// creates one column per aggregation. stats/chart/timechart keep only BY
// fields plus their creates; eventstats/streamstats preserve everything
// since they annotate rather than reduce.
func statsHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.StatsCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{}
	consumed := map[string]bool{}
	addConsume := func(name string, line, col int) {
		if name == "" || consumed[name] {
			return
		}
		consumed[name] = true
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: name, Line: line, Column: col})
	}

	var byNames []string
	for _, b := range s.ByFields {
		if b.IsWildcard || b.Name == "" {
			continue
		}
		byNames = append(byNames, b.Name)
		addConsume(b.Name, b.Location.Start.Line, b.Location.Start.Column)
	}

	loc := s.Location().Start
	if s.Variant == "timechart" {
		if !consumed["_time"] {
			byNames = append([]string{"_time"}, byNames...)
		}
		addConsume("_time", loc.Line, loc.Column)
	}

	var createdNames []string
	for _, agg := range s.Aggregations {
		name := aggregationFieldName(agg)
		var deps []string
		if agg.Field != nil && !agg.Field.IsWildcard && agg.Field.Name != "" {
			deps = []string{agg.Field.Name}
			addConsume(agg.Field.Name, agg.Location.Start.Line, agg.Location.Start.Column)
		}
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DependsOn: deps, DataType: aggregationDataType(agg.Function),
			Confidence: fieldlineage.Certain, Line: agg.Location.Start.Line, Column: agg.Location.Start.Column,
		})
		createdNames = append(createdNames, name)
	}

	switch s.Variant {
	case "eventstats", "streamstats":
		effect.PreservesAll = true
	default: // stats, chart, timechart
		effect.HasDropsAllExcept = true
		effect.DropsAllExcept = append(append([]string{}, byNames...), createdNames...)
	}
	return effect
}

// tstatsHandler implements spec.md §4.6 "Tstats": same shape as the
// reducing stats variants, always dropsAllExcept = creates ∪ BY, since
// tstats always originates a fresh result set over indexed fields.
func tstatsHandler(stage ast.Stage, _ Tracker) fieldlineage.CommandFieldEffect {
	s, ok := stage.(*ast.TstatsCommand)
	if !ok {
		return fieldlineage.CommandFieldEffect{}
	}
	effect := fieldlineage.CommandFieldEffect{HasDropsAllExcept: true}
	consumed := map[string]bool{}
	addConsume := func(name string, line, col int) {
		if name == "" || consumed[name] {
			return
		}
		consumed[name] = true
		effect.Consumes = append(effect.Consumes, fieldlineage.FieldConsumption{FieldName: name, Line: line, Column: col})
	}

	var byNames []string
	for _, b := range s.ByFields {
		if b.IsWildcard || b.Name == "" {
			continue
		}
		byNames = append(byNames, b.Name)
		addConsume(b.Name, b.Location.Start.Line, b.Location.Start.Column)
	}

	var createdNames []string
	for _, agg := range s.Aggregations {
		name := aggregationFieldName(agg)
		var deps []string
		if agg.Field != nil && !agg.Field.IsWildcard && agg.Field.Name != "" {
			deps = []string{agg.Field.Name}
			addConsume(agg.Field.Name, agg.Location.Start.Line, agg.Location.Start.Column)
		}
		effect.Creates = append(effect.Creates, fieldlineage.FieldCreation{
			FieldName: name, DependsOn: deps, DataType: aggregationDataType(agg.Function),
			Confidence: fieldlineage.Certain, Line: agg.Location.Start.Line, Column: agg.Location.Start.Column,
		})
		createdNames = append(createdNames, name)
	}
	effect.DropsAllExcept = append(append([]string{}, byNames...), createdNames...)
	return effect
}
