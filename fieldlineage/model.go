// Package fieldlineage defines the queryable output data model of the
// analyzer (spec.md §3 FieldLineage/LineageIndex, component output of C8):
// the per-field event log, the declarative CommandFieldEffect every
// handler emits, and the LineageIndex the external UI reads by field name
// or source line.
package fieldlineage

// Confidence levels attached to creates and renames.
const (
	Certain Confidence = "certain"
	Likely  Confidence = "likely"
	Unknown Confidence = "unknown"
)

type Confidence string

// DataType is the coarse type lattice the engine infers: it never checks
// types beyond this (spec.md §1 Non-goals).
type DataType string

const (
	TypeNumber  DataType = "number"
	TypeString  DataType = "string"
	TypeBoolean DataType = "boolean"
	TypeTime    DataType = "time"
	TypeUnknown DataType = "unknown"
)

// DropReason distinguishes a handler-requested drop from one implied by a
// dropsAllExcept policy.
type DropReason string

const (
	Explicit DropReason = "explicit"
	Implicit DropReason = "implicit"
)

// EventKind is the discriminant of a FieldLineage event.
type EventKind string

const (
	Created  EventKind = "created"
	Modified EventKind = "modified"
	Consumed EventKind = "consumed"
	Dropped  EventKind = "dropped"
	Renamed  EventKind = "renamed"
)

// classOrder fixes the per-stage event ordering required by spec.md §4.7
// step 4: consumes → modifies → creates → drops.
var classOrder = map[EventKind]int{
	Consumed: 0,
	Modified: 1,
	Created:  2,
	Renamed:  2,
	Dropped:  3,
}

// FieldCreation is one element of CommandFieldEffect.Creates.
type FieldCreation struct {
	FieldName  string
	DependsOn  []string
	Expression string
	DataType   DataType
	Confidence Confidence
	Line       int
	Column     int
	IsRename   bool
}

// FieldModification is one element of CommandFieldEffect.Modifies.
type FieldModification struct {
	FieldName string
	DependsOn []string
	Line      int
	Column    int
}

// FieldConsumption is one element of CommandFieldEffect.Consumes: a
// reference to a field by the command. Line/column point at that
// reference, not the command keyword (spec.md §3).
type FieldConsumption struct {
	FieldName string
	Line      int
	Column    int
}

// FieldDropped is one element of CommandFieldEffect.Drops.
type FieldDropped struct {
	FieldName string
	Reason    DropReason
	Line      int
	Column    int
}

// CommandFieldEffect is the declarative output of every handler (spec.md
// §3). HasDropsAllExcept distinguishes "no policy" from an explicit empty
// keep-set, since a nil/empty slice alone can't carry that distinction.
type CommandFieldEffect struct {
	Creates           []FieldCreation
	Modifies          []FieldModification
	Consumes          []FieldConsumption
	Drops             []FieldDropped
	PreservesAll      bool
	DropsAllExcept    []string
	HasDropsAllExcept bool
}

// Event is one lifecycle entry appended to a FieldLineage.
type Event struct {
	Kind       EventKind
	StageIndex int
	Line       int
	Column     int
	DependsOn  []string
	Expression string
	DataType   DataType
	Confidence Confidence
}

// FieldLineage is the per-instance event log for one field. Reuse of a
// name after a drop opens a new instance (spec.md §3 "names alone do not
// identify").
type FieldLineage struct {
	FieldName    string
	InstanceKey  uint64
	Events       []Event
	CurrentState State
}

// State is a FieldLineage's liveness.
type State string

const (
	Live    State = "live"
	DroppedState State = "dropped"
)

// Append adds an event to the end of the lineage, and flips CurrentState
// on a drop (spec.md §3 lifecycle). It does not reorder events: the
// per-stage class order holds because the analyzer applies consumes,
// modifies, creates and drops in that order.
func (f *FieldLineage) Append(e Event) {
	f.Events = append(f.Events, e)
	if e.Kind == Dropped {
		f.CurrentState = DroppedState
	}
}

// classRank returns the fixed ordering used when multiple events land in
// the same stage (spec.md §4.7 step 4 / §3 invariant 4).
func classRank(k EventKind) int { return classOrder[k] }
