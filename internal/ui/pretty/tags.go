package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/lyqlplay/pkg/highlight"
)

// columnGap separates table columns.
const columnGap = "  "

// Tags writes the style rules as an aligned table: selector, category and
// CSS class, in registration order.
func Tags(w io.Writer, rules []highlight.StyleRule, styles *Styles) error {
	header := []string{"TAG", "CATEGORY", "CLASS"}
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{rule.Selector, rule.Category.String(), rule.ClassName})
	}

	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = lipgloss.Width(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow(&b, header, widths, []lipgloss.Style{styles.Heading, styles.Heading, styles.Heading})
	cellStyles := []lipgloss.Style{styles.Selector, styles.Category, styles.Class}
	for _, row := range rows {
		writeRow(&b, row, widths, cellStyles)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}

func writeRow(b *strings.Builder, cells []string, widths []int, cellStyles []lipgloss.Style) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(cellStyles[i].Render(cell))
		// The last column is not padded so lines carry no trailing spaces.
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
	}
	b.WriteByte('\n')
}
