package splanalyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/handler"
	"github.com/viant/splfield/splanalyzer"
)

func analyze(t *testing.T, text string, opts ...splanalyzer.Option) *fieldlineage.LineageIndex {
	t.Helper()
	a := splanalyzer.NewAnalyzer(opts...)
	pipeline, parseErrs, lexErrs, idx := a.Analyze(text)
	assert.Empty(t, lexErrs, "unexpected lex errors for %q", text)
	assert.Empty(t, parseErrs, "unexpected parse errors for %q", text)
	assert.NotNil(t, pipeline)
	return idx
}

func TestEvalCreatesCertainField(t *testing.T) {
	idx := analyze(t, `index=main | eval x=1`)
	x := idx.GetFieldLineage("x")
	assert.NotNil(t, x)
	assert.Len(t, x.Events, 1)
	created := x.Events[0]
	assert.Equal(t, fieldlineage.Created, created.Kind)
	assert.Empty(t, created.DependsOn)
	assert.Equal(t, fieldlineage.TypeNumber, created.DataType)
	assert.Equal(t, fieldlineage.Certain, created.Confidence)
}

func TestRexExtractsLikelyField(t *testing.T) {
	idx := analyze(t, `index=main | rex field=_raw "status=(?<status>\d+)"`)
	status := idx.GetFieldLineage("status")
	assert.NotNil(t, status)
	assert.NotEmpty(t, status.Events)
	created := status.Events[len(status.Events)-1]
	assert.Equal(t, fieldlineage.Created, created.Kind)
	assert.Equal(t, []string{"_raw"}, created.DependsOn)
	assert.Equal(t, fieldlineage.Likely, created.Confidence)
	assert.Equal(t, fieldlineage.TypeString, created.DataType)
}

func TestStatsDropsUnnamedFields(t *testing.T) {
	idx := analyze(t, `index=main | eval foo=1, bar=2 | stats count by host`)
	live := map[string]bool{}
	for _, f := range idx.GetAllFields() {
		live[f] = true
	}
	assert.True(t, live["count"])
	assert.True(t, live["host"])
	assert.False(t, live["foo"])
	assert.False(t, live["bar"])

	foo := idx.GetFieldLineage("foo")
	assert.NotNil(t, foo)
	assert.Equal(t, fieldlineage.DroppedState, foo.CurrentState)
}

func TestEventstatsPreservesExistingFields(t *testing.T) {
	idx := analyze(t, `index=main | eval a=1 | eventstats count by host | eval b=a+count`)
	live := map[string]bool{}
	for _, f := range idx.GetAllFields() {
		live[f] = true
	}
	assert.True(t, live["a"], "a should survive eventstats")

	b := idx.GetFieldLineage("b")
	assert.NotNil(t, b)
	deps := b.Events[len(b.Events)-1].DependsOn
	assert.Contains(t, deps, "a")
	assert.Contains(t, deps, "count")
}

func TestRenameIsAtomicDropCreate(t *testing.T) {
	idx := analyze(t, `index=main | rename _raw AS raw_data | rex field=raw_data "(?<x>\d+)"`)

	x := idx.GetFieldLineage("x")
	assert.NotNil(t, x)
	created := x.Events[len(x.Events)-1]
	assert.Equal(t, []string{"raw_data"}, created.DependsOn)

	raw := idx.GetFieldLineage("_raw")
	assert.NotNil(t, raw)
	assert.Equal(t, fieldlineage.DroppedState, raw.CurrentState)
	var droppedAtStage1 bool
	for _, e := range raw.Events {
		if e.Kind == fieldlineage.Dropped && e.StageIndex == 1 {
			droppedAtStage1 = true
		}
	}
	assert.True(t, droppedAtStage1)

	rawData := idx.GetFieldLineage("raw_data")
	assert.NotNil(t, rawData)
	var sawRename bool
	for _, e := range rawData.Events {
		if e.Kind == fieldlineage.Renamed {
			sawRename = true
			assert.Equal(t, []string{"_raw"}, e.DependsOn)
		}
	}
	assert.True(t, sawRename)
}

func TestTransactionCreatesDurationAndEventcount(t *testing.T) {
	idx := analyze(t, `index=main | transaction sessionid`)

	for _, name := range []string{"duration", "eventcount"} {
		fl := idx.GetFieldLineage(name)
		assert.NotNil(t, fl, name)
		created := fl.Events[len(fl.Events)-1]
		assert.Equal(t, fieldlineage.TypeNumber, created.DataType)
		assert.Equal(t, fieldlineage.Certain, created.Confidence)
		assert.Empty(t, created.DependsOn)
	}

	var consumedSessionID bool
	for _, e := range idx.Events() {
		if e.FieldName == "sessionid" && e.Event.Kind == fieldlineage.Consumed {
			consumedSessionID = true
		}
	}
	assert.True(t, consumedSessionID)
}

func TestIplocationCreatesGeoFields(t *testing.T) {
	idx := analyze(t, `index=main | iplocation prefix=geo_ clientip`)

	expectedTypes := map[string]fieldlineage.DataType{
		"geo_city":    fieldlineage.TypeString,
		"geo_country": fieldlineage.TypeString,
		"geo_lat":     fieldlineage.TypeNumber,
		"geo_lon":     fieldlineage.TypeNumber,
		"geo_region":  fieldlineage.TypeString,
	}
	for name, dt := range expectedTypes {
		fl := idx.GetFieldLineage(name)
		assert.NotNil(t, fl, name)
		created := fl.Events[len(fl.Events)-1]
		assert.Equal(t, dt, created.DataType, name)
		assert.Equal(t, []string{"clientip"}, created.DependsOn, name)
	}
}

func TestSubsearchRecursionDepthBounded(t *testing.T) {
	// A single level of append should still contribute fields.
	idx := analyze(t, `index=main | append [ search index=other | eval y=1 ]`)
	live := map[string]bool{}
	for _, f := range idx.GetAllFields() {
		live[f] = true
	}
	assert.True(t, live["y"])

	// Past the depth bound the subsearch contributes no fields.
	bounded := analyze(t, `index=main | append [ search index=other | eval y=1 ]`, splanalyzer.WithMaxSubsearchDepth(0))
	assert.NotContains(t, bounded.GetAllFields(), "y")
}

func TestWithTrackedCommandsRestrictsDispatch(t *testing.T) {
	idx := analyze(t, `index=main | eval x=1 | stats count by host`, splanalyzer.WithTrackedCommands("eval"))
	// stats is untracked, so it resolves to Passthrough: host/count never
	// surface and x is never dropped by a dropsAllExcept policy.
	x := idx.GetFieldLineage("x")
	assert.NotNil(t, x)
	assert.Equal(t, fieldlineage.Live, x.CurrentState)
}

func TestWithLookupSchemasDrivesInputlookup(t *testing.T) {
	idx := analyze(t, `index=main | inputlookup users.csv`, splanalyzer.WithLookupSchemas(map[string][]handler.SchemaField{
		"users.csv": {{Name: "user_id", Type: "number"}, {Name: "email", Type: "string"}},
	}))
	live := map[string]bool{}
	for _, f := range idx.GetAllFields() {
		live[f] = true
	}
	assert.True(t, live["user_id"])
	assert.True(t, live["email"])
}
