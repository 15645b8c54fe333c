package fieldlineage

// IndexedEvent pairs an Event with the field it belongs to, for global
// pipeline-order iteration (spec.md §6 "iteration over events ... by
// field or globally in pipeline order").
type IndexedEvent struct {
	FieldName string
	Event     Event
}

// LineageIndex is the analyzer's materialized output (spec.md §3, §6).
type LineageIndex struct {
	byName  map[string]*FieldLineage
	all     []*FieldLineage
	events  []IndexedEvent
	byLine  map[int][]string
	maxLine int
}

// NewIndex creates an empty LineageIndex; the analyzer populates it during
// the stage-by-stage walk.
func NewIndex() *LineageIndex {
	return &LineageIndex{
		byName: map[string]*FieldLineage{},
		byLine: map[int][]string{},
	}
}

// Open starts a new FieldLineage instance for name, superseding any prior
// (now-dropped) instance under the same name (spec.md §3 "names alone do
// not identify").
func (idx *LineageIndex) Open(name string, instanceKey uint64) *FieldLineage {
	fl := &FieldLineage{FieldName: name, InstanceKey: instanceKey, CurrentState: Live}
	idx.byName[name] = fl
	idx.all = append(idx.all, fl)
	return fl
}

// Current returns the live-or-most-recent instance for name, or nil.
func (idx *LineageIndex) Current(name string) *FieldLineage {
	return idx.byName[name]
}

// RecordEvent appends e to fl and to the global pipeline-order event log.
func (idx *LineageIndex) RecordEvent(fl *FieldLineage, e Event) {
	fl.Append(e)
	idx.events = append(idx.events, IndexedEvent{FieldName: fl.FieldName, Event: e})
}

// SnapshotLine records the set of live field names immediately after the
// stage occupying sourceLine (spec.md §4.7 "reverse index from line to
// live-field names").
func (idx *LineageIndex) SnapshotLine(sourceLine int, liveNames []string) {
	if sourceLine <= 0 {
		return
	}
	cp := make([]string, len(liveNames))
	copy(cp, liveNames)
	idx.byLine[sourceLine] = cp
	if sourceLine > idx.maxLine {
		idx.maxLine = sourceLine
	}
}

// GetFieldLineage returns the most-recent FieldLineage instance for name,
// live or dropped, or nil if the name was never observed.
func (idx *LineageIndex) GetFieldLineage(name string) *FieldLineage {
	return idx.byName[name]
}

// GetAllFields returns every field name currently live, in first-creation
// order.
func (idx *LineageIndex) GetAllFields() []string {
	var out []string
	for _, fl := range idx.all {
		if idx.byName[fl.FieldName] == fl && fl.CurrentState == Live {
			out = append(out, fl.FieldName)
		}
	}
	return out
}

// GetFieldsAtLine returns the live field set immediately after the stage
// occupying line. If no snapshot was recorded for that exact line, it
// returns the nearest snapshot recorded before it (nil if there is none);
// no events are replayed.
func (idx *LineageIndex) GetFieldsAtLine(line int) []string {
	if names, ok := idx.byLine[line]; ok {
		out := make([]string, len(names))
		copy(out, names)
		return out
	}
	best := 0
	for l := range idx.byLine {
		if l <= line && l > best {
			best = l
		}
	}
	if best == 0 {
		return nil
	}
	names := idx.byLine[best]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Events returns every recorded event across all fields, in the pipeline
// order they were applied (spec.md §6 "globally in pipeline order").
func (idx *LineageIndex) Events() []IndexedEvent {
	out := make([]IndexedEvent, len(idx.events))
	copy(out, idx.events)
	return out
}

// AllLineages returns every FieldLineage instance ever opened, including
// ones later superseded by a same-named re-creation.
func (idx *LineageIndex) AllLineages() []*FieldLineage {
	out := make([]*FieldLineage, len(idx.all))
	copy(out, idx.all)
	return out
}

// Describe renders a short human-readable summary of a field's lineage,
// a convenience used by CLI/debug callers of the library.
func (fl *FieldLineage) Describe() string {
	if fl == nil {
		return ""
	}
	s := fl.FieldName + " (" + string(fl.CurrentState) + ")"
	for _, e := range fl.Events {
		s += " " + string(e.Kind) + "@" + itoa(e.StageIndex)
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}
