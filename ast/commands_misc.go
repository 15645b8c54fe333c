package ast

// ReturnCommand passes selected fields (or field=expr pairs) out of a
// subsearch as search terms for the outer pipeline.
type ReturnCommand struct {
	Base
	Count       *int
	Fields      []FieldRef
	Assignments []Assignment
}

func (c *ReturnCommand) Kind() string { return "ReturnCommand" }

// MakeresultsCommand manufactures synthetic events; CreatedFields is
// derived at lift time from the annotate option (spec.md §4.3
// "Makeresults").
type MakeresultsCommand struct {
	Base
	Annotate      bool
	CreatedFields []string
	Options       map[string]Expr
}

func (c *MakeresultsCommand) Kind() string { return "MakeresultsCommand" }

// ContingencyCommand cross-tabulates two fields.
type ContingencyCommand struct {
	Base
	Fields []FieldRef
}

func (c *ContingencyCommand) Kind() string { return "ContingencyCommand" }

// XyseriesCommand reshapes results for charting around an x/y/series
// triple (or more, when additional data fields are given).
type XyseriesCommand struct {
	Base
	Fields []FieldRef
}

func (c *XyseriesCommand) Kind() string { return "XyseriesCommand" }

// SetfieldsCommand assigns literal values to fields unconditionally.
type SetfieldsCommand struct {
	Base
	Assignments []Assignment
}

func (c *SetfieldsCommand) Kind() string { return "SetfieldsCommand" }

// TagsCommand annotates events with tags derived from field values;
// static analysis treats it as a pass-through over the named fields.
type TagsCommand struct {
	Base
	Fields  []FieldRef
	Options map[string]Expr
}

func (c *TagsCommand) Kind() string { return "TagsCommand" }
