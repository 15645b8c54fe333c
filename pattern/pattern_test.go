package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/splfield/ast"
	"github.com/viant/splfield/fieldlineage"
	"github.com/viant/splfield/pattern"
)

func field(name string) ast.FieldRef { return ast.FieldRef{Name: name} }

func TestLookupFindsRegisteredCommand(t *testing.T) {
	p, ok := pattern.Lookup("spath")
	assert.True(t, ok)
	assert.True(t, p.ConsumesFields)
	assert.True(t, p.Semantics.PreservesAll)
}

func TestLookupMissesUnregisteredCommand(t *testing.T) {
	_, ok := pattern.Lookup("stats")
	assert.False(t, ok)
}

func TestInterpretConsumesNamedFieldsAndPreservesAll(t *testing.T) {
	stage := &ast.SpathCommand{
		GenericFieldCommand: ast.GenericFieldCommand{
			Fields: []ast.FieldRef{field("raw"), field(""), {IsWildcard: true}},
		},
	}
	p, _ := pattern.Lookup("spath")
	effect := pattern.Interpret(p, stage)

	assert.Len(t, effect.Consumes, 1)
	assert.Equal(t, "raw", effect.Consumes[0].FieldName)
	assert.True(t, effect.PreservesAll)
	assert.False(t, effect.HasDropsAllExcept)
	assert.Empty(t, effect.Creates)
}

func TestInterpretRenamingProducesCreateAndDrop(t *testing.T) {
	stage := &ast.SpathCommand{
		GenericFieldCommand: ast.GenericFieldCommand{
			Renamings: []ast.Renaming{{Old: field("src"), New: field("dst")}},
		},
	}
	p, _ := pattern.Lookup("spath")
	effect := pattern.Interpret(p, stage)

	assert.Len(t, effect.Creates, 1)
	assert.Equal(t, "dst", effect.Creates[0].FieldName)
	assert.Equal(t, []string{"src"}, effect.Creates[0].DependsOn)
	assert.True(t, effect.Creates[0].IsRename)
	assert.Equal(t, fieldlineage.Likely, effect.Creates[0].Confidence)

	assert.Len(t, effect.Drops, 1)
	assert.Equal(t, "src", effect.Drops[0].FieldName)
	assert.Equal(t, fieldlineage.Explicit, effect.Drops[0].Reason)
}

func TestInterpretSkipsWildcardRenaming(t *testing.T) {
	stage := &ast.SpathCommand{
		GenericFieldCommand: ast.GenericFieldCommand{
			Renamings: []ast.Renaming{{Old: ast.FieldRef{IsWildcard: true}, New: field("dst")}},
		},
	}
	p, _ := pattern.Lookup("spath")
	effect := pattern.Interpret(p, stage)
	assert.Empty(t, effect.Creates)
	assert.Empty(t, effect.Drops)
}

func TestInterpretDropsAllExceptNamedFields(t *testing.T) {
	stage := &ast.SpathCommand{
		GenericFieldCommand: ast.GenericFieldCommand{
			Fields: []ast.FieldRef{field("a"), field("b")},
		},
	}
	p := pattern.Pattern{
		ConsumesFields: true,
		Semantics:      pattern.Semantics{DropsAllExcept: true},
	}
	effect := pattern.Interpret(p, stage)
	assert.True(t, effect.HasDropsAllExcept)
	assert.ElementsMatch(t, []string{"a", "b"}, effect.DropsAllExcept)
	assert.False(t, effect.PreservesAll)
}
