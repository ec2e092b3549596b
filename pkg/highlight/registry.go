package highlight

import (
	"fmt"
	"strings"
	"sync"
)

// classPrefix is prepended to every derived CSS class name.
const classPrefix = "cm-"

// StyleRule binds a registry selector to its category and CSS class.
type StyleRule struct {
	// Selector is the registered key; it may list several space-separated tags.
	Selector string `json:"tag"`

	// Category is the highlight category for every tag in Selector.
	Category Category `json:"-"`

	// ClassName is the CSS class derived from Selector (e.g. "cm-null-undefined").
	ClassName string `json:"class"`
}

// Tags returns the individual tags named by the rule's selector.
func (r StyleRule) Tags() []string {
	return strings.Fields(r.Selector)
}

// Registry is an ordered, hand-maintained mapping from tag to category.
type Registry struct {
	mu    sync.RWMutex
	rules []StyleRule
	byTag map[string]int // tag -> index into rules
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]int)}
}

// Register adds a selector. A selector of "Null Undefined" registers both
// tags under a single rule. Registering a tag twice panics: the table is
// static and a clash is a programming error.
func (r *Registry) Register(selector string, category Category) {
	tags := strings.Fields(selector)
	if len(tags) == 0 {
		panic("highlight: empty selector")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tag := range tags {
		if _, dup := r.byTag[tag]; dup {
			panic(fmt.Sprintf("highlight: tag %q registered twice", tag))
		}
	}

	index := len(r.rules)
	r.rules = append(r.rules, StyleRule{
		Selector:  strings.Join(tags, " "),
		Category:  category,
		ClassName: ClassName(selector),
	})
	for _, tag := range tags {
		r.byTag[tag] = index
	}
}

// CategoryOf returns the category registered for tag. Unknown tags report
// false and should render unstyled.
func (r *Registry) CategoryOf(tag string) (Category, bool) {
	rule, ok := r.RuleFor(tag)
	if !ok {
		return CategoryNone, false
	}
	return rule.Category, true
}

// RuleFor returns the style rule covering tag.
func (r *Registry) RuleFor(tag string) (StyleRule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, ok := r.byTag[tag]
	if !ok {
		return StyleRule{}, false
	}
	return r.rules[index], true
}

// StyleRules returns one rule per registered selector, in registration order.
// The returned slice is a copy.
func (r *Registry) StyleRules() []StyleRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]StyleRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len returns the number of registered selectors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// ClassName derives the CSS class for a selector.
func ClassName(selector string) string {
	return classPrefix + strings.ToLower(strings.Join(strings.Fields(selector), "-"))
}

//nolint:gochecknoglobals // Built once, read-only afterwards.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry of built-in tags. It is built on
// first use and never changes afterwards.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newDefaultRegistry()
	})
	return defaultRegistry
}

func newDefaultRegistry() *Registry {
	reg := NewRegistry()

	// LyQL tokens.
	reg.Register("String", CategoryString)
	reg.Register("Number", CategoryNumber)
	reg.Register("Identifier", CategoryIdentifier)
	reg.Register("Boolean", CategoryBoolean)
	reg.Register("Keyword", CategoryLink)
	reg.Register("SqlKeyword", CategoryKeyword)
	reg.Register("Symbol", CategoryOperator)
	reg.Register("Null Undefined", CategoryNull)

	// Markdown nodes.
	reg.Register("Heading", CategoryHeading)
	reg.Register("Emphasis", CategoryEmphasis)
	reg.Register("Strong", CategoryStrong)
	reg.Register("CodeSpan CodeBlock", CategoryMonospace)
	reg.Register("Link AutoLink Image", CategoryLink)
	reg.Register("Blockquote", CategoryQuote)
	reg.Register("Strikethrough", CategoryStrikethrough)

	return reg
}
