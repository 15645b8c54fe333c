package fieldlineage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/splfield/fieldlineage"
)

func TestNewInstanceKeyDeterministic(t *testing.T) {
	a := fieldlineage.NewInstanceKey("status", 3, 0)
	b := fieldlineage.NewInstanceKey("status", 3, 0)
	assert.Equal(t, a, b)
}

func TestNewInstanceKeyDistinguishesStage(t *testing.T) {
	a := fieldlineage.NewInstanceKey("status", 1, 0)
	b := fieldlineage.NewInstanceKey("status", 2, 0)
	assert.NotEqual(t, a, b)
}

func TestNewInstanceKeyDistinguishesName(t *testing.T) {
	a := fieldlineage.NewInstanceKey("status", 1, 0)
	b := fieldlineage.NewInstanceKey("code", 1, 0)
	assert.NotEqual(t, a, b)
}

func TestNewInstanceKeyDistinguishesOffset(t *testing.T) {
	a := fieldlineage.NewInstanceKey("status", 1, 10)
	b := fieldlineage.NewInstanceKey("status", 1, 20)
	assert.NotEqual(t, a, b)
}
