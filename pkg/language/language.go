// Package language lists the languages the playground can highlight and
// builds a parser for each.
package language

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/lyqlplay/pkg/adapter"
	"github.com/yaklabco/lyqlplay/pkg/config"
	"github.com/yaklabco/lyqlplay/pkg/langdetect"
	"github.com/yaklabco/lyqlplay/pkg/parser/goldmark"
	"github.com/yaklabco/lyqlplay/pkg/parser/lyql"
)

// Language describes one highlightable language.
type Language struct {
	// Name is the registry key, lowercase.
	Name string

	// Extensions are the file extensions associated with the language.
	Extensions []string

	// New builds a parser configured from cfg.
	New func(cfg *config.Config) adapter.Parser
}

//nolint:gochecknoglobals // Built-in languages, read-only.
var builtins = []Language{
	{
		Name:       langdetect.LangLyQL,
		Extensions: []string{".lyql", ".lql", ".sql"},
		New: func(*config.Config) adapter.Parser {
			return lyql.NewTokenizer()
		},
	},
	{
		Name:       langdetect.LangMarkdown,
		Extensions: []string{".md", ".markdown"},
		New: func(cfg *config.Config) adapter.Parser {
			flavor := config.FlavorGFM
			if cfg != nil && cfg.Flavor != "" {
				flavor = cfg.Flavor
			}
			return goldmark.New(string(flavor))
		},
	},
}

// Lookup returns the language registered under name, ignoring case.
func Lookup(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, lang := range builtins {
		if lang.Name == key {
			return lang, nil
		}
	}
	return Language{}, fmt.Errorf("unknown language %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the registered language names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, lang := range builtins {
		names = append(names, lang.Name)
	}
	slices.Sort(names)
	return names
}

// Resolve picks the language for a source. An explicit name wins; otherwise
// the language is detected from filename and content.
func Resolve(explicit, filename string, content []byte) (Language, error) {
	if explicit != "" {
		return Lookup(explicit)
	}
	return Lookup(langdetect.Detect(filename, content))
}
