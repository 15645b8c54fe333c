package ast

// RexCommand extracts named capture groups from a source field into new
// fields (spec.md §4.3 "Rex").
type RexCommand struct {
	Base
	SourceField     FieldRef // defaults to _raw when no field= option given
	Pattern         string
	ExtractedFields []string
	Mode            string // "" (extract) | "sed"
	Options         map[string]Expr
}

func (c *RexCommand) Kind() string { return "RexCommand" }

// RenameCommand is a list of old/new field pairs, each atomic drop+create
// (spec.md §3 invariant 3).
type RenameCommand struct {
	Base
	Renamings []Renaming
}

func (c *RenameCommand) Kind() string { return "RenameCommand" }
