// Package ast defines the loosely-typed syntax tree handed over by external
// parsers: a tag, an optional source span, and child nodes.
package ast

import (
	"encoding/json"
	"fmt"
	"io"
)

// Span is a half-open [Start, End) byte range into the source text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Node is one node of an external parser's syntax tree.
//
// A nil Span marks the node as not renderable. Children carry no ordering
// guarantee; consumers that need source order must sort them.
type Node struct {
	// Tag names the syntactic category (e.g. "String", "SqlKeyword").
	Tag string `json:"name" yaml:"name"`

	// Span locates the node in the source. Nil for synthetic nodes.
	Span *Span `json:"span,omitempty" yaml:"span,omitempty"`

	// Children holds the direct children, in any order.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Extent returns the node's span and whether it has one.
func (n *Node) Extent() (Span, bool) {
	if n == nil || n.Span == nil {
		return Span{}, false
	}
	return *n.Span, true
}

// Leaf creates a spanned node with no children.
func Leaf(tag string, start, end int) *Node {
	return &Node{Tag: tag, Span: &Span{Start: start, End: end}}
}

// Branch creates a spanned node with the given children.
func Branch(tag string, start, end int, children ...*Node) *Node {
	return &Node{Tag: tag, Span: &Span{Start: start, End: end}, Children: children}
}

// Unspanned creates a node without a span.
func Unspanned(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Decode reads a JSON-encoded tree in the wire shape emitted by the
// playground's wasm parser ({"name", "span": {"start", "end"}, "children"}).
// Unknown fields such as span line numbers are ignored.
func Decode(r io.Reader) (*Node, error) {
	var root Node
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode ast: %w", err)
	}
	return &root, nil
}

// Count returns the number of nodes in the subtree rooted at n.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += Count(child)
	}
	return total
}
