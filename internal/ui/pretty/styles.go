// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI and playground chrome.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Success lipgloss.Style

	// Tag table components
	Heading  lipgloss.Style
	Selector lipgloss.Style
	Category lipgloss.Style
	Class    lipgloss.Style

	// Playground components
	Title     lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Selector: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Class:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("236")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:     plain,
		Success:   plain,
		Heading:   plain,
		Selector:  plain,
		Category:  plain,
		Class:     plain,
		Title:     plain,
		StatusBar: plain,
		Help:      plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
