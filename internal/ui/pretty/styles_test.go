package pretty_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lyqlplay/internal/ui/pretty"
	"github.com/yaklabco/lyqlplay/pkg/highlight"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not render ANSI codes in non-TTY environments, so only
	// check that every style renders its text.
	for _, style := range []func(...string) string{
		styles.Error.Render, styles.Success.Render, styles.Heading.Render,
		styles.Selector.Render, styles.Category.Render, styles.Class.Render,
		styles.Title.Render, styles.StatusBar.Render, styles.Help.Render,
		styles.Dim.Render, styles.Bold.Render,
	} {
		assert.Contains(t, style("x"), "x")
	}
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should return false (auto behavior)")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should return false (auto behavior)")
}

func TestTags(t *testing.T) {
	var buf bytes.Buffer
	rules := highlight.Default().StyleRules()

	require.NoError(t, pretty.Tags(&buf, rules, pretty.NewStyles(false)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(rules)+1)
	assert.True(t, strings.HasPrefix(lines[0], "TAG"))
	assert.Contains(t, buf.String(), "Null Undefined")
	assert.Contains(t, buf.String(), "cm-null-undefined")

	// Columns line up: every CATEGORY cell starts at the same offset.
	column := strings.Index(lines[0], "CATEGORY")
	for _, line := range lines[1:] {
		assert.NotEqual(t, byte(' '), line[column], line)
		assert.Equal(t, byte(' '), line[column-1], line)
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}
