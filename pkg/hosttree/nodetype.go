// Package hosttree implements the offset-relative tree consumed by the
// highlighting layer, the cache of node type descriptors it points at, and
// the builder that converts an external syntax tree into it.
package hosttree

import (
	"sync"

	"github.com/yaklabco/lyqlplay/pkg/highlight"
)

// NodeType describes one distinct tag. Trees reference node types by
// pointer; a given cache hands out exactly one NodeType per tag.
type NodeType struct {
	id       int
	name     string
	category highlight.Category
	rule     *highlight.StyleRule
}

// None is the node type of the empty tree.
//
//nolint:gochecknoglobals // Shared sentinel.
var None = &NodeType{}

// ID returns the cache-assigned identifier. None has ID 0.
func (t *NodeType) ID() int { return t.id }

// Name returns the tag this type was created for.
func (t *NodeType) Name() string { return t.name }

// Category returns the highlight category, or CategoryNone if the tag is
// not registered.
func (t *NodeType) Category() highlight.Category { return t.category }

// Rule returns the style rule attached to this type, if any.
func (t *NodeType) Rule() (highlight.StyleRule, bool) {
	if t.rule == nil {
		return highlight.StyleRule{}, false
	}
	return *t.rule, true
}

// IsNone reports whether t is the empty tree's type.
func (t *NodeType) IsNone() bool { return t == None }

// TypeCache memoizes node types per tag for the lifetime of an editing
// session. It only grows; its size is bounded by the grammar's tag set.
type TypeCache struct {
	registry *highlight.Registry

	mu     sync.Mutex
	byName map[string]*NodeType
	order  []*NodeType
}

// NewTypeCache creates a cache that resolves categories through registry.
// A nil registry means highlight.Default().
func NewTypeCache(registry *highlight.Registry) *TypeCache {
	if registry == nil {
		registry = highlight.Default()
	}
	return &TypeCache{
		registry: registry,
		byName:   make(map[string]*NodeType),
	}
}

// TypeFor returns the node type for tag, creating it on first request.
// Every later call with the same tag returns the identical pointer.
func (c *TypeCache) TypeFor(tag string) *NodeType {
	c.mu.Lock()
	defer c.mu.Unlock()

	if nodeType, ok := c.byName[tag]; ok {
		return nodeType
	}

	nodeType := &NodeType{
		id:   len(c.order) + 1,
		name: tag,
	}
	if rule, ok := c.registry.RuleFor(tag); ok {
		nodeType.category = rule.Category
		nodeType.rule = &rule
	}

	c.byName[tag] = nodeType
	c.order = append(c.order, nodeType)
	return nodeType
}

// Len returns the number of cached types.
func (c *TypeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Types returns the cached types in creation order.
func (c *TypeCache) Types() []*NodeType {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*NodeType, len(c.order))
	copy(out, c.order)
	return out
}

// Registry returns the registry the cache resolves categories with.
func (c *TypeCache) Registry() *highlight.Registry {
	return c.registry
}
