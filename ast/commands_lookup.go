package ast

import "github.com/viant/splfield/token"

// LookupMapping is one `lookupField [AS eventField]` pair, used for both
// the input and output mapping lists of a lookup command.
type LookupMapping struct {
	LookupField FieldRef
	EventField  *FieldRef // non-nil only when an AS alias was given
	Location    token.Span
}

// LookupCommand enriches events from a static lookup table.
type LookupCommand struct {
	Base
	Table          string
	InputMappings  []LookupMapping
	OutputMappings []LookupMapping
	OutputNew      bool // true when OUTPUTNEW was used instead of OUTPUT
}

func (c *LookupCommand) Kind() string { return "LookupCommand" }

// InputlookupCommand reads an entire lookup table as the event stream.
type InputlookupCommand struct {
	Base
	Name    string
	Options map[string]Expr
}

func (c *InputlookupCommand) Kind() string { return "InputlookupCommand" }
