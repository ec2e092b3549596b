package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CategoryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      string
		expected Category
		found    bool
	}{
		{"String", CategoryString, true},
		{"Number", CategoryNumber, true},
		{"Identifier", CategoryIdentifier, true},
		{"Boolean", CategoryBoolean, true},
		{"Keyword", CategoryLink, true},
		{"SqlKeyword", CategoryKeyword, true},
		{"Symbol", CategoryOperator, true},
		{"Null", CategoryNull, true},
		{"Undefined", CategoryNull, true},
		{"CodeBlock", CategoryMonospace, true},
		{"Program", CategoryNone, false},
		{"string", CategoryNone, false},
		{"", CategoryNone, false},
	}

	reg := Default()
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			category, ok := reg.CategoryOf(tt.tag)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestRegistry_StyleRulesOrder(t *testing.T) {
	t.Parallel()

	rules := Default().StyleRules()
	require.NotEmpty(t, rules)

	selectors := make([]string, 0, 8)
	for _, rule := range rules[:8] {
		selectors = append(selectors, rule.Selector)
	}
	assert.Equal(t, []string{
		"String", "Number", "Identifier", "Boolean",
		"Keyword", "SqlKeyword", "Symbol", "Null Undefined",
	}, selectors)

	assert.Equal(t, "cm-null-undefined", rules[7].ClassName)
	assert.Equal(t, []string{"Null", "Undefined"}, rules[7].Tags())
	assert.Equal(t, "cm-sqlkeyword", rules[5].ClassName)
}

func TestRegistry_StyleRulesIsCopy(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("String", CategoryString)

	rules := reg.StyleRules()
	rules[0].ClassName = "mutated"

	rule, ok := reg.RuleFor("String")
	require.True(t, ok)
	assert.Equal(t, "cm-string", rule.ClassName)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("Null Undefined", CategoryNull)

	assert.Panics(t, func() { reg.Register("Undefined", CategoryString) })
	assert.Panics(t, func() { reg.Register("  ", CategoryString) })
	assert.Equal(t, 1, reg.Len())
}

func TestDefault_Singleton(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		parsed, ok := ParseCategory(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, parsed)
	}

	parsed, ok := ParseCategory(" Keyword ")
	assert.True(t, ok)
	assert.Equal(t, CategoryKeyword, parsed)

	_, ok = ParseCategory("comment")
	assert.False(t, ok)
	assert.Equal(t, "none", Category(200).String())
}
