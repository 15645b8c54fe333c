package ast

// TableCommand restricts the output to the listed fields (spec.md §4.6
// "Table").
type TableCommand struct {
	Base
	Fields []FieldRef
}

func (c *TableCommand) Kind() string { return "TableCommand" }

// FieldsCommand either keeps (Sign=="+", the default) or drops
// (Sign=="-") the listed fields (spec.md §4.6 "Fields").
type FieldsCommand struct {
	Base
	Sign   string
	Fields []FieldRef
}

func (c *FieldsCommand) Kind() string { return "FieldsCommand" }
