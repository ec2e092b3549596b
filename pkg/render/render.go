package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// ANSI writes text with each highlighted run styled by theme. Runs are
// rendered line by line so lipgloss never pads multi-line blocks.
func ANSI(w io.Writer, text string, highlights []Highlight, theme Theme) error {
	var b strings.Builder
	for _, seg := range segments(text, highlights) {
		if seg.style == nil {
			b.WriteString(seg.text)
			continue
		}
		style, ok := theme[seg.style.Category]
		if !ok {
			b.WriteString(seg.text)
			continue
		}
		for i, line := range strings.Split(seg.text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write ansi: %w", err)
	}
	return nil
}

// HTML writes text as an HTML fragment wrapped in a pre element. Each run
// becomes a span carrying the style rule's class name, e.g.
// <span class="cm-sqlkeyword">SELECT</span>.
func HTML(w io.Writer, text string, highlights []Highlight) error {
	var b strings.Builder
	b.WriteString(`<pre class="lyqlplay">`)
	for _, seg := range segments(text, highlights) {
		escaped := html.EscapeString(seg.text)
		if seg.style == nil || seg.style.Class == "" {
			b.WriteString(escaped)
			continue
		}
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, html.EscapeString(seg.style.Class), escaped)
	}
	b.WriteString("</pre>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// Plain writes one line per run: the byte range, category, class and the
// quoted source text.
func Plain(w io.Writer, text string, highlights []Highlight) error {
	for _, seg := range segments(text, highlights) {
		if seg.style == nil {
			continue
		}
		h := seg.style
		if _, err := fmt.Fprintf(w, "%d..%d\t%s\t%s\t%q\n", h.From, h.To, h.Category, h.Class, seg.text); err != nil {
			return fmt.Errorf("write plain: %w", err)
		}
	}
	return nil
}
