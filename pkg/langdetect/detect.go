// Package langdetect picks the playground language for a source file.
// It uses go-enry for extension and content classification and falls back
// to LyQL, the playground's primary language.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names understood by the language registry.
const (
	LangLyQL     = "lyql"
	LangMarkdown = "markdown"
)

// extensions maps file extensions enry does not know, or does not map
// unambiguously, to a language.
//
//nolint:gochecknoglobals // Read-only lookup table.
var extensions = map[string]string{
	".lyql": LangLyQL,
	".lql":  LangLyQL,
	// enry also maps .md to GCC Machine Description.
	".md":       LangMarkdown,
	".markdown": LangMarkdown,
}

// Detect returns the language for a file. filename may be empty when the
// content comes from stdin.
func Detect(filename string, content []byte) string {
	// Strategy 1: our own extensions.
	if lang, ok := extensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return lang
	}

	// Strategy 2: enry's extension table.
	if filename != "" {
		if lang, safe := enry.GetLanguageByExtension(filename); safe && lang != "" {
			return normalize(lang)
		}
	}

	// Strategy 3: patterns that are highly indicative.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Strategy 4: classifier restricted to the candidates we can parse.
	if len(content) > 0 {
		candidates := []string{"Markdown", "SQL"}
		if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
			return normalize(lang)
		}
	}

	return LangLyQL
}

// detectByPattern checks for language-specific openings.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if lang := detectSQL(string(trimmed)); lang != "" {
		return lang
	}
	return detectMarkdown(trimmed)
}

// detectSQL checks for statements that open a LyQL query.
func detectSQL(trimmed string) string {
	upper := strings.ToUpper(trimmed)
	for _, prefix := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE ", "EXPLAIN ", "BEGIN"} {
		if strings.HasPrefix(upper, prefix) {
			return LangLyQL
		}
	}
	return ""
}

// detectMarkdown checks for an ATX heading, a fence, or front matter.
func detectMarkdown(trimmed []byte) string {
	if bytes.HasPrefix(trimmed, []byte("# ")) ||
		bytes.HasPrefix(trimmed, []byte("## ")) ||
		bytes.HasPrefix(trimmed, []byte("```")) ||
		bytes.HasPrefix(trimmed, []byte("---\n")) {
		return LangMarkdown
	}
	return ""
}

// normalize converts go-enry language names to registry names.
func normalize(lang string) string {
	switch lang {
	case "Markdown", "MDX", "RMarkdown":
		return LangMarkdown
	default:
		return LangLyQL
	}
}
