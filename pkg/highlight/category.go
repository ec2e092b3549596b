// Package highlight maps syntax tree tags to highlight categories and
// derives the style rules handed to a renderer.
package highlight

import "strings"

// Category is a semantic class used to pick a display style for a tag.
type Category uint8

// Highlight categories. The set is closed; tags that map to none of these
// render unstyled.
const (
	CategoryNone Category = iota

	// Code categories.
	CategoryString
	CategoryNumber
	CategoryIdentifier
	CategoryBoolean
	CategoryKeyword
	CategoryLink
	CategoryOperator
	CategoryNull

	// Prose categories.
	CategoryHeading
	CategoryEmphasis
	CategoryStrong
	CategoryMonospace
	CategoryQuote
	CategoryStrikethrough
)

//nolint:gochecknoglobals // Read-only lookup table.
var categoryNames = [...]string{
	CategoryNone:          "none",
	CategoryString:        "string",
	CategoryNumber:        "number",
	CategoryIdentifier:    "identifier",
	CategoryBoolean:       "boolean",
	CategoryKeyword:       "keyword",
	CategoryLink:          "link",
	CategoryOperator:      "operator",
	CategoryNull:          "null",
	CategoryHeading:       "heading",
	CategoryEmphasis:      "emphasis",
	CategoryStrong:        "strong",
	CategoryMonospace:     "monospace",
	CategoryQuote:         "quote",
	CategoryStrikethrough: "strikethrough",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "none"
}

// Categories returns every styled category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames)-1)
	for c := CategoryString; int(c) < len(categoryNames); c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory resolves a category by name, case-insensitively.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return CategoryNone, false
}
