package hosttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lyqlplay/pkg/highlight"
)

func TestTypeCache_Identity(t *testing.T) {
	t.Parallel()

	cache := NewTypeCache(nil)

	first := cache.TypeFor("String")
	second := cache.TypeFor("String")
	other := cache.TypeFor("Number")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, []*NodeType{first, other}, cache.Types())
}

func TestTypeCache_IDs(t *testing.T) {
	t.Parallel()

	cache := NewTypeCache(nil)

	assert.Equal(t, 1, cache.TypeFor("Program").ID())
	assert.Equal(t, 2, cache.TypeFor("Symbol").ID())
	assert.Equal(t, 1, cache.TypeFor("Program").ID())
	assert.Equal(t, 0, None.ID())
}

func TestTypeCache_AttachesRules(t *testing.T) {
	t.Parallel()

	cache := NewTypeCache(highlight.Default())

	undefined := cache.TypeFor("Undefined")
	assert.Equal(t, highlight.CategoryNull, undefined.Category())
	rule, ok := undefined.Rule()
	require.True(t, ok)
	assert.Equal(t, "cm-null-undefined", rule.ClassName)

	program := cache.TypeFor("Program")
	assert.Equal(t, highlight.CategoryNone, program.Category())
	_, ok = program.Rule()
	assert.False(t, ok)
	assert.False(t, program.IsNone())
}

func TestTypeCache_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := highlight.NewRegistry()
	reg.Register("Program", highlight.CategoryKeyword)

	cache := NewTypeCache(reg)
	assert.Same(t, reg, cache.Registry())
	assert.Equal(t, highlight.CategoryKeyword, cache.TypeFor("Program").Category())
	assert.Equal(t, highlight.CategoryNone, cache.TypeFor("String").Category())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Empty.IsEmpty())
	assert.Equal(t, 1, Empty.Size())
	assert.Same(t, None, Empty.Type())
	assert.Equal(t, "", Empty.Type().Name())
}
