package fieldlineage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/splfield/fieldlineage"
)

func TestOpenCurrentRecordEvent(t *testing.T) {
	idx := fieldlineage.NewIndex()
	assert.Nil(t, idx.Current("status"))

	fl := idx.Open("status", fieldlineage.NewInstanceKey("status", 0, 0))
	assert.Equal(t, fieldlineage.Live, fl.CurrentState)
	assert.Same(t, fl, idx.Current("status"))

	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 0, Line: 1, Column: 5})
	assert.Len(t, fl.Events, 1)
	assert.Len(t, idx.Events(), 1)
	assert.Equal(t, "status", idx.Events()[0].FieldName)
}

func TestDropFlipsCurrentState(t *testing.T) {
	idx := fieldlineage.NewIndex()
	fl := idx.Open("host", fieldlineage.NewInstanceKey("host", 0, 0))
	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 0})
	assert.Equal(t, fieldlineage.Live, fl.CurrentState)

	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Dropped, StageIndex: 1})
	assert.Equal(t, fieldlineage.DroppedState, fl.CurrentState)
	assert.NotContains(t, idx.GetAllFields(), "host")
}

func TestReopenAfterDropSupersedesInstance(t *testing.T) {
	idx := fieldlineage.NewIndex()
	first := idx.Open("count", fieldlineage.NewInstanceKey("count", 0, 0))
	idx.RecordEvent(first, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 0})
	idx.RecordEvent(first, fieldlineage.Event{Kind: fieldlineage.Dropped, StageIndex: 1})

	second := idx.Open("count", fieldlineage.NewInstanceKey("count", 2, 0))
	idx.RecordEvent(second, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 2})

	assert.Same(t, second, idx.Current("count"))
	assert.NotEqual(t, first.InstanceKey, second.InstanceKey)
	assert.Contains(t, idx.GetAllFields(), "count")

	all := idx.AllLineages()
	assert.Len(t, all, 2)
}

func TestSnapshotLineAndGetFieldsAtLine(t *testing.T) {
	idx := fieldlineage.NewIndex()
	fl := idx.Open("x", fieldlineage.NewInstanceKey("x", 0, 0))
	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 0})
	idx.SnapshotLine(1, idx.GetAllFields())

	assert.Equal(t, []string{"x"}, idx.GetFieldsAtLine(1))
	// No snapshot recorded at line 5; falls back to the nearest preceding
	// snapshot.
	assert.Equal(t, []string{"x"}, idx.GetFieldsAtLine(5))
	assert.Nil(t, idx.GetFieldsAtLine(0))
}

func TestGetFieldLineageReturnsDroppedInstance(t *testing.T) {
	idx := fieldlineage.NewIndex()
	fl := idx.Open("tmp", fieldlineage.NewInstanceKey("tmp", 0, 0))
	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 0})
	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Dropped, StageIndex: 1})

	got := idx.GetFieldLineage("tmp")
	assert.NotNil(t, got)
	assert.Equal(t, fieldlineage.DroppedState, got.CurrentState)
	assert.Nil(t, idx.GetFieldLineage("never_seen"))
}

func TestDescribeIsHumanReadable(t *testing.T) {
	idx := fieldlineage.NewIndex()
	fl := idx.Open("x", fieldlineage.NewInstanceKey("x", 0, 0))
	idx.RecordEvent(fl, fieldlineage.Event{Kind: fieldlineage.Created, StageIndex: 0})
	desc := fl.Describe()
	assert.Contains(t, desc, "x")
	assert.Contains(t, desc, "live")
	assert.Contains(t, desc, "created@0")

	var nilFl *fieldlineage.FieldLineage
	assert.Empty(t, nilFl.Describe())
}
