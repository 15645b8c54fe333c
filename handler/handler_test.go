package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/handler"
)

// stubTracker is a minimal handler.Tracker for exercising handlers in
// isolation, without the full splanalyzer field tracker.
type stubTracker struct {
	live    map[string]bool
	lines   map[int]string
	schemas map[string][]handler.SchemaField
	sub     *fieldlineage.LineageIndex
}

func newStubTracker() *stubTracker {
	return &stubTracker{live: map[string]bool{}, lines: map[int]string{}, schemas: map[string][]handler.SchemaField{}}
}

func (s *stubTracker) Contains(name string) bool { return s.live[name] }
func (s *stubTracker) ExistingFields() []string {
	var out []string
	for k := range s.live {
		out = append(out, k)
	}
	return out
}
func (s *stubTracker) SourceLine(line int) string { return s.lines[line] }
func (s *stubTracker) LookupSchema(name string) ([]handler.SchemaField, bool) {
	cols, ok := s.schemas[name]
	return cols, ok
}
func (s *stubTracker) AnalyzeSubpipeline(*ast.Pipeline) *fieldlineage.LineageIndex { return s.sub }

func literal(text, dataType string) ast.Expr {
	return &ast.Literal{Text: text, DataType: dataType}
}

func TestRegistryResolvesEvalByName(t *testing.T) {
	r := handler.NewRegistry()
	stage := &ast.EvalCommand{Assignments: []ast.Assignment{{
		Target:           ast.FieldRef{Name: "x"},
		Expr:             literal("1", "number"),
		ReferencedFields: nil,
		DataType:         "number",
	}}}
	h := r.Resolve(stage, nil)
	effect := h(stage, newStubTracker())

	assert.Len(t, effect.Creates, 1)
	assert.Equal(t, "x", effect.Creates[0].FieldName)
	assert.Equal(t, fieldlineage.Certain, effect.Creates[0].Confidence)
	assert.Equal(t, fieldlineage.TypeNumber, effect.Creates[0].DataType)
	assert.True(t, effect.PreservesAll)
}

func TestRegistryTrackedCommandsFilterToPassthrough(t *testing.T) {
	r := handler.NewRegistry()
	stage := &ast.EvalCommand{Assignments: []ast.Assignment{{Target: ast.FieldRef{Name: "x"}, Expr: literal("1", "number")}}}
	h := r.Resolve(stage, map[string]bool{"stats": true})
	effect := h(stage, newStubTracker())
	assert.Empty(t, effect.Creates)
	assert.True(t, effect.PreservesAll)
}

func TestRenameHandlerDropsOldCreatesNew(t *testing.T) {
	r := handler.NewRegistry()
	stage := &ast.RenameCommand{Renamings: []ast.Renaming{{
		Old: ast.FieldRef{Name: "_raw"},
		New: ast.FieldRef{Name: "raw_data"},
	}}}
	h := r.Resolve(stage, nil)
	effect := h(stage, newStubTracker())

	assert.Len(t, effect.Creates, 1)
	assert.Equal(t, "raw_data", effect.Creates[0].FieldName)
	assert.True(t, effect.Creates[0].IsRename)
	assert.Equal(t, []string{"_raw"}, effect.Creates[0].DependsOn)

	assert.Len(t, effect.Drops, 1)
	assert.Equal(t, "_raw", effect.Drops[0].FieldName)
	assert.True(t, effect.PreservesAll)
}

func TestTableHandlerKeepsOnlyNamedFields(t *testing.T) {
	r := handler.NewRegistry()
	stage := &ast.TableCommand{Fields: []ast.FieldRef{{Name: "host"}, {Name: "count"}}}
	h := r.Resolve(stage, nil)
	effect := h(stage, newStubTracker())

	assert.True(t, effect.HasDropsAllExcept)
	assert.ElementsMatch(t, []string{"host", "count"}, effect.DropsAllExcept)
	assert.Len(t, effect.Consumes, 2)
}

func TestTableHandlerWildcardPreservesAll(t *testing.T) {
	r := handler.NewRegistry()
	stage := &ast.TableCommand{Fields: []ast.FieldRef{{IsWildcard: true, Name: "*"}}}
	h := r.Resolve(stage, nil)
	effect := h(stage, newStubTracker())
	assert.True(t, effect.PreservesAll)
	assert.False(t, effect.HasDropsAllExcept)
}

func TestStatsHandlerDropsAllExceptByAndCreated(t *testing.T) {
	stage := &ast.StatsCommand{
		Variant: "stats",
		Aggregations: []ast.Aggregation{{
			Function: "count",
			Field:    &ast.FieldRef{Name: "x"},
			Alias:    nil,
		}},
		ByFields: []ast.FieldRef{{Name: "host"}},
	}
	r := handler.NewRegistry()
	h := r.Resolve(stage, nil)
	effect := h(stage, newStubTracker())

	assert.False(t, effect.PreservesAll)
	assert.True(t, effect.HasDropsAllExcept)
	assert.ElementsMatch(t, []string{"host", "count(x)"}, effect.DropsAllExcept)
	assert.Len(t, effect.Creates, 1)
	assert.Equal(t, "count(x)", effect.Creates[0].FieldName)
	assert.Equal(t, fieldlineage.TypeNumber, effect.Creates[0].DataType)
}

func TestStatsHandlerEventstatsPreservesAll(t *testing.T) {
	stage := &ast.StatsCommand{
		Variant:      "eventstats",
		Aggregations: []ast.Aggregation{{Function: "count", Alias: &ast.FieldRef{Name: "total"}}},
		ByFields:     []ast.FieldRef{{Name: "host"}},
	}
	r := handler.NewRegistry()
	h := r.Resolve(stage, nil)
	effect := h(stage, newStubTracker())

	assert.True(t, effect.PreservesAll)
	assert.False(t, effect.HasDropsAllExcept)
	assert.Len(t, effect.Creates, 1)
	assert.Equal(t, "total", effect.Creates[0].FieldName)
}

func TestPassthroughPreservesAllAndChangesNothing(t *testing.T) {
	effect := handler.Passthrough(&ast.WhereCommand{}, newStubTracker())
	assert.True(t, effect.PreservesAll)
	assert.Empty(t, effect.Creates)
	assert.Empty(t, effect.Consumes)
	assert.Empty(t, effect.Drops)
}
