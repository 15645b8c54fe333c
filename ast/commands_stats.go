package ast

import "github.com/viant/splfield/token"

// Aggregation is one `function[(field)] [AS alias]` clause shared by the
// stats family, tstats, and convert (spec.md §4.3 "Stats family").
type Aggregation struct {
	Function string
	Field    *FieldRef
	Alias    *FieldRef
	Location token.Span
}

// StatsCommand covers stats, eventstats, streamstats, chart, and
// timechart — Variant records which keyword was used so the handler can
// resolve variant-specific semantics (spec.md §4.6).
type StatsCommand struct {
	Base
	Variant      string // stats|eventstats|streamstats|chart|timechart
	Aggregations []Aggregation
	ByFields     []FieldRef
	Options      map[string]Expr
}

func (c *StatsCommand) Kind() string { return "StatsCommand" }

// TstatsCommand mirrors the stats family's output shape over indexed
// fields (spec.md §4.6 Tstats).
type TstatsCommand struct {
	Base
	Aggregations []Aggregation
	ByFields     []FieldRef
	Options      map[string]Expr
}

func (c *TstatsCommand) Kind() string { return "TstatsCommand" }
