package hosttree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

// DefaultMaxDepth bounds conversion recursion.
const DefaultMaxDepth = 512

// ErrMaxDepth is returned when the input nests deeper than the builder allows.
var ErrMaxDepth = errors.New("syntax tree exceeds maximum depth")

// Builder converts ast.Node trees into host trees.
type Builder struct {
	types    *TypeCache
	maxDepth int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMaxDepth sets the recursion bound. Values below 1 keep the default.
func WithMaxDepth(depth int) BuilderOption {
	return func(b *Builder) {
		if depth > 0 {
			b.maxDepth = depth
		}
	}
}

// NewBuilder creates a builder that resolves node types through types.
func NewBuilder(types *TypeCache, opts ...BuilderOption) *Builder {
	b := &Builder{
		types:    types,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Types returns the builder's type cache.
func (b *Builder) Types() *TypeCache {
	return b.types
}

// Convert turns node and its subtree into a Tree.
//
// A node without a span converts to Empty regardless of its children.
// Children are emitted in ascending start order; equal starts keep their
// input order. Children without a span are dropped.
func (b *Builder) Convert(node *ast.Node) (*Tree, error) {
	return b.convert(node, 0)
}

func (b *Builder) convert(node *ast.Node, depth int) (*Tree, error) {
	span, ok := node.Extent()
	if !ok {
		return Empty, nil
	}
	if depth >= b.maxDepth {
		return nil, fmt.Errorf("%w (%d) at tag %q", ErrMaxDepth, b.maxDepth, node.Tag)
	}

	children := renderableChildren(node.Children)
	slices.SortStableFunc(children, func(x, y *ast.Node) int {
		return x.Span.Start - y.Span.Start
	})

	tree := &Tree{
		nodeType:  b.types.TypeFor(node.Tag),
		children:  make([]*Tree, 0, len(children)),
		positions: make([]int, 0, len(children)),
		length:    span.Len(),
	}

	for _, child := range children {
		converted, err := b.convert(child, depth+1)
		if err != nil {
			return nil, err
		}
		tree.children = append(tree.children, converted)
		tree.positions = append(tree.positions, child.Span.Start-span.Start)
	}

	return tree, nil
}

// renderableChildren returns a fresh slice of the spanned children.
func renderableChildren(children []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, 0, len(children))
	for _, child := range children {
		if _, ok := child.Extent(); ok {
			out = append(out, child)
		}
	}
	return out
}
