// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"

	// Parse fields.
	FieldLanguage = "language"
	FieldBytes    = "bytes"
	FieldNodes    = "nodes"
	FieldTypes    = "types"
	FieldDuration = "duration"

	// Configuration fields.
	FieldConfig  = "config"
	FieldOnError = "on_error"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Tag fields.
	FieldTag      = "tag"
	FieldCategory = "category"
	FieldClass    = "class"
)
