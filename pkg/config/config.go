// Package config defines the playground configuration.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// ColorMode controls when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// OnError selects what the playground shows after a failed parse.
type OnError string

const (
	// OnErrorReset shows the empty tree, so highlighting disappears until
	// the text parses again.
	OnErrorReset OnError = "reset"
	// OnErrorKeep retains the highlights of the last successful parse.
	OnErrorKeep OnError = "keep"
)

// DefaultMaxDepth bounds AST nesting during tree conversion.
const DefaultMaxDepth = 512

// Config is the root configuration structure for lyqlplay.
type Config struct {
	// Language forces a language; empty means detect from the file.
	Language string `yaml:"language" toml:"language"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor" toml:"flavor"`

	// Color controls colored output ("auto", "always" or "never").
	Color ColorMode `yaml:"color" toml:"color"`

	// OnError is the playground policy after a failed parse.
	OnError OnError `yaml:"on_error" toml:"on_error"`

	// MaxDepth bounds AST nesting.
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`

	// Theme overrides category colors, keyed by category name.
	Theme map[string]string `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:   FlavorGFM,
		Color:    ColorAuto,
		OnError:  OnErrorReset,
		MaxDepth: DefaultMaxDepth,
		Theme:    make(map[string]string),
	}
}

// IsValid reports whether f is a known flavor.
func (f Flavor) IsValid() bool {
	return f == FlavorCommonMark || f == FlavorGFM
}

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// IsValid reports whether p is a known policy.
func (p OnError) IsValid() bool {
	return p == OnErrorReset || p == OnErrorKeep
}
