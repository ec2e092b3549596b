package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/yaklabco/lyqlplay/pkg/highlight"
)

// Theme maps highlight categories to terminal styles. Categories without
// an entry render unstyled.
type Theme map[highlight.Category]lipgloss.Style

// defaultColors uses ANSI 256 color numbers.
//
//nolint:gochecknoglobals // Read-only lookup table.
var defaultColors = map[highlight.Category]string{
	highlight.CategoryString:        "10",
	highlight.CategoryNumber:        "13",
	highlight.CategoryIdentifier:    "7",
	highlight.CategoryBoolean:       "14",
	highlight.CategoryKeyword:       "12",
	highlight.CategoryLink:          "6",
	highlight.CategoryOperator:      "11",
	highlight.CategoryNull:          "9",
	highlight.CategoryHeading:       "12",
	highlight.CategoryEmphasis:      "",
	highlight.CategoryStrong:        "",
	highlight.CategoryMonospace:     "10",
	highlight.CategoryQuote:         "8",
	highlight.CategoryStrikethrough: "8",
}

// NewRenderer returns a lipgloss renderer for w. When color is false the
// renderer strips all styling; when true it always emits ANSI 256 colors,
// whether or not w is a terminal.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer
}

// DefaultTheme builds the built-in theme on renderer.
func DefaultTheme(renderer *lipgloss.Renderer) Theme {
	theme := make(Theme, len(defaultColors))
	for category, color := range defaultColors {
		theme[category] = categoryStyle(renderer, category, color)
	}
	return theme
}

// NewTheme builds the default theme and applies color overrides keyed by
// category name, e.g. {"keyword": "#ff79c6"}.
func NewTheme(renderer *lipgloss.Renderer, overrides map[string]string) (Theme, error) {
	theme := DefaultTheme(renderer)
	for name, color := range overrides {
		category, ok := highlight.ParseCategory(name)
		if !ok || category == highlight.CategoryNone {
			return nil, fmt.Errorf("theme: unknown category %q", name)
		}
		theme[category] = categoryStyle(renderer, category, strings.TrimSpace(color))
	}
	return theme, nil
}

// categoryStyle applies the category's text attributes and an optional
// foreground color.
func categoryStyle(renderer *lipgloss.Renderer, category highlight.Category, color string) lipgloss.Style {
	style := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}

	switch category {
	case highlight.CategoryHeading, highlight.CategoryStrong, highlight.CategoryKeyword:
		style = style.Bold(true)
	case highlight.CategoryEmphasis, highlight.CategoryQuote:
		style = style.Italic(true)
	case highlight.CategoryLink:
		style = style.Underline(true)
	case highlight.CategoryStrikethrough:
		style = style.Strikethrough(true)
	}
	return style
}
