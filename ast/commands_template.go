package ast

// GenericFieldCommand is the shared shape for every command whose field
// effect is fully described by a field list, option list, and optional
// renamings — no bespoke sub-grammar (spec.md §4.2 "templated" commands).
// Each SPL command still gets its own named Go type below so Stage
// dispatch never falls back to string matching on a shared type.
type GenericFieldCommand struct {
	Fields    []FieldRef
	Renamings []Renaming
	Options   map[string]Expr
	Literals  []string
}

// TemplateFields, TemplateRenamings, and TemplateOptions let the pattern
// interpreter (package pattern) treat every templated command uniformly
// through a small interface instead of a type switch per command.
func (g GenericFieldCommand) TemplateFields() []FieldRef      { return g.Fields }
func (g GenericFieldCommand) TemplateRenamings() []Renaming   { return g.Renamings }
func (g GenericFieldCommand) TemplateOptions() map[string]Expr { return g.Options }

type SpathCommand struct {
	Base
	GenericFieldCommand
}

func (c *SpathCommand) Kind() string { return "SpathCommand" }

type TimewrapCommand struct {
	Base
	GenericFieldCommand
}

func (c *TimewrapCommand) Kind() string { return "TimewrapCommand" }

type XpathCommand struct {
	Base
	GenericFieldCommand
}

func (c *XpathCommand) Kind() string { return "XpathCommand" }

type XmlkvCommand struct {
	Base
	GenericFieldCommand
}

func (c *XmlkvCommand) Kind() string { return "XmlkvCommand" }

type XmlunescapeCommand struct {
	Base
	GenericFieldCommand
}

func (c *XmlunescapeCommand) Kind() string { return "XmlunescapeCommand" }

type MultikvCommand struct {
	Base
	GenericFieldCommand
}

func (c *MultikvCommand) Kind() string { return "MultikvCommand" }

type ErexCommand struct {
	Base
	GenericFieldCommand
}

func (c *ErexCommand) Kind() string { return "ErexCommand" }

type KvCommand struct {
	Base
	GenericFieldCommand
}

func (c *KvCommand) Kind() string { return "KvCommand" }

type AddtotalsCommand struct {
	Base
	GenericFieldCommand
}

func (c *AddtotalsCommand) Kind() string { return "AddtotalsCommand" }

type DeltaCommand struct {
	Base
	GenericFieldCommand
}

func (c *DeltaCommand) Kind() string { return "DeltaCommand" }

type AccumCommand struct {
	Base
	GenericFieldCommand
}

func (c *AccumCommand) Kind() string { return "AccumCommand" }

type AutoregressCommand struct {
	Base
	GenericFieldCommand
}

func (c *AutoregressCommand) Kind() string { return "AutoregressCommand" }

type InputcsvCommand struct {
	Base
	GenericFieldCommand
}

func (c *InputcsvCommand) Kind() string { return "InputcsvCommand" }

type FieldsummaryCommand struct {
	Base
	GenericFieldCommand
}

func (c *FieldsummaryCommand) Kind() string { return "FieldsummaryCommand" }

type AddcoltotalsCommand struct {
	Base
	GenericFieldCommand
}

func (c *AddcoltotalsCommand) Kind() string { return "AddcoltotalsCommand" }

type BucketdirCommand struct {
	Base
	GenericFieldCommand
}

func (c *BucketdirCommand) Kind() string { return "BucketdirCommand" }

type GeomCommand struct {
	Base
	GenericFieldCommand
}

func (c *GeomCommand) Kind() string { return "GeomCommand" }

type ConcurrencyCommand struct {
	Base
	GenericFieldCommand
}

func (c *ConcurrencyCommand) Kind() string { return "ConcurrencyCommand" }

type TyperCommand struct {
	Base
	GenericFieldCommand
}

func (c *TyperCommand) Kind() string { return "TyperCommand" }

type ReltimeCommand struct {
	Base
	GenericFieldCommand
}

func (c *ReltimeCommand) Kind() string { return "ReltimeCommand" }
