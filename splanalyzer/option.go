package splanalyzer

import "github.com/viant/splfield/handler"

// Option configures an Analyzer (spec.md §4.7), mirroring the
// functional-options pattern used throughout this module's constructors.
type Option func(*Analyzer)

// WithTrackedCommands restricts the analyzer to the given command names:
// any stage whose dispatch name is absent from the set resolves to
// Passthrough regardless of what handler would otherwise apply (spec.md
// §4.5 step 1). A nil/unset set tracks every command.
func WithTrackedCommands(names ...string) Option {
	return func(a *Analyzer) {
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[n] = true
		}
		a.trackedCommands = set
	}
}

// WithLookupSchemas registers the cached column schema for one or more
// lookup tables, consumed by the Inputlookup handler (spec.md §6
// "lookupSchemas"). The Lookup handler does not read them.
func WithLookupSchemas(schemas map[string][]handler.SchemaField) Option {
	return func(a *Analyzer) {
		if a.lookupSchemas == nil {
			a.lookupSchemas = map[string][]handler.SchemaField{}
		}
		for name, cols := range schemas {
			a.lookupSchemas[name] = cols
		}
	}
}

// WithMaxSubsearchDepth overrides the bounded subsearch recursion depth
// (spec.md §9 "Subsearch recursion"). Mainly useful for tests exercising
// the depth-exceeded path without constructing 32 levels of nesting.
func WithMaxSubsearchDepth(depth int) Option {
	return func(a *Analyzer) {
		a.maxSubsearchDepth = depth
	}
}
