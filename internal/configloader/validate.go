package configloader

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/yaklabco/lyqlplay/pkg/config"
	"github.com/yaklabco/lyqlplay/pkg/highlight"
	"github.com/yaklabco/lyqlplay/pkg/language"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "theme.keyword").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a configuration for errors and warnings. Empty and zero
// fields are treated as unset.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Language != "" && !slices.Contains(language.Names(), strings.ToLower(cfg.Language)) {
		result.fail("language", cfg.Language, "invalid language %q; must be one of: %s",
			cfg.Language, strings.Join(language.Names(), ", "))
	}

	if cfg.Flavor != "" && !cfg.Flavor.IsValid() {
		result.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.OnError != "" && !cfg.OnError.IsValid() {
		result.fail("on_error", cfg.OnError, "invalid policy %q; must be one of: reset, keep", cfg.OnError)
	}

	if cfg.MaxDepth < 0 {
		result.fail("max_depth", cfg.MaxDepth, "max_depth must be >= 1")
	}

	validateTheme(cfg, result)

	return result
}

// validateTheme checks theme keys name styled categories. Keys are visited
// in sorted order so the first error is deterministic.
func validateTheme(cfg *config.Config, result *ValidationResult) {
	keys := make([]string, 0, len(cfg.Theme))
	for key := range cfg.Theme {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		category, ok := highlight.ParseCategory(key)
		if !ok || category == highlight.CategoryNone {
			result.fail("theme."+key, key, "unknown category %q", key)
			continue
		}
		if strings.TrimSpace(cfg.Theme[key]) == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "theme." + key,
				Value:   cfg.Theme[key],
				Message: "empty color; category renders without a foreground color",
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
