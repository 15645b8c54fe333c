package ast

// BinCommand buckets a numeric/time field into discrete ranges, optionally
// under a new name (spec.md §4.6 "Bin").
type BinCommand struct {
	Base
	Field   FieldRef
	Alias   *FieldRef
	Options map[string]Expr
}

func (c *BinCommand) Kind() string { return "BinCommand" }

// DedupCommand removes duplicate events by the listed fields.
type DedupCommand struct {
	Base
	Count   *int
	Fields  []FieldRef
	Options map[string]Expr
}

func (c *DedupCommand) Kind() string { return "DedupCommand" }

// TopRareFields is the shared shape of top and rare: the analyzed fields,
// optional BY grouping, and the count/percent options that control which
// synthetic columns are emitted.
type TopRareFields struct {
	Count    *int
	Fields   []FieldRef
	ByFields []FieldRef
	Options  map[string]Expr
}

// TopCommand surfaces the most common field-value combinations.
type TopCommand struct {
	Base
	TopRareFields
}

func (c *TopCommand) Kind() string { return "TopCommand" }

// RareCommand surfaces the least common field-value combinations.
type RareCommand struct {
	Base
	TopRareFields
}

func (c *RareCommand) Kind() string { return "RareCommand" }

// StrcatCommand concatenates source fields (and literals) into DestField.
type StrcatCommand struct {
	Base
	SourceFields []FieldRef
	DestField    FieldRef
	Options      map[string]Expr
}

func (c *StrcatCommand) Kind() string { return "StrcatCommand" }

// Substitution is one `oldValue AS newValue` pair inside a replace
// command.
type Substitution struct {
	Old Expr
	New Expr
}

// ReplaceCommand substitutes literal values within the listed fields.
type ReplaceCommand struct {
	Base
	Substitutions []Substitution
	Fields        []FieldRef
}

func (c *ReplaceCommand) Kind() string { return "ReplaceCommand" }

// ConvertCommand applies a type-conversion function per field, reusing the
// Aggregation shape (function/field/alias) from the stats family.
type ConvertCommand struct {
	Base
	Conversions []Aggregation
	Options     map[string]Expr
}

func (c *ConvertCommand) Kind() string { return "ConvertCommand" }

// TransactionCommand groups events sharing the listed fields into a single
// transaction, emitting duration/eventcount (spec.md §4.6 "Transaction").
type TransactionCommand struct {
	Base
	Fields  []FieldRef
	Options map[string]Expr
}

func (c *TransactionCommand) Kind() string { return "TransactionCommand" }

// IplocationCommand derives geo fields from an IP address field.
type IplocationCommand struct {
	Base
	Field   FieldRef
	Prefix  string
	Options map[string]Expr
}

func (c *IplocationCommand) Kind() string { return "IplocationCommand" }

// MakemvCommand splits a field's value into a multivalue field in place.
type MakemvCommand struct {
	Base
	Field   FieldRef
	Options map[string]Expr
}

func (c *MakemvCommand) Kind() string { return "MakemvCommand" }

// NomvCommand collapses a multivalue field back into a single value.
type NomvCommand struct {
	Base
	Field   FieldRef
	Options map[string]Expr
}

func (c *NomvCommand) Kind() string { return "NomvCommand" }

// MakecontinuousCommand fills gaps in a numeric/time field's span.
type MakecontinuousCommand struct {
	Base
	Field   FieldRef
	Options map[string]Expr
}

func (c *MakecontinuousCommand) Kind() string { return "MakecontinuousCommand" }
