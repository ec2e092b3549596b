package hosttree

// Tree is an immutable node of the host tree: a type, ordered children,
// each child's start offset relative to this node, and a length.
type Tree struct {
	nodeType  *NodeType
	children  []*Tree
	positions []int
	length    int
}

// Empty is the zero-length, childless tree returned for anything that
// cannot be rendered.
//
//nolint:gochecknoglobals // Shared sentinel.
var Empty = &Tree{nodeType: None}

// Type returns the node type.
func (t *Tree) Type() *NodeType { return t.nodeType }

// Len returns the number of source bytes the node covers.
func (t *Tree) Len() int { return t.length }

// NumChildren returns the number of direct children.
func (t *Tree) NumChildren() int { return len(t.children) }

// Child returns the i-th child and its offset from this node's start.
func (t *Tree) Child(i int) (*Tree, int) {
	return t.children[i], t.positions[i]
}

// IsEmpty reports whether t is the empty sentinel or otherwise zero-length
// and childless.
func (t *Tree) IsEmpty() bool {
	return t == Empty || (t.length == 0 && len(t.children) == 0)
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	total := 1
	for _, child := range t.children {
		total += child.Size()
	}
	return total
}

// VisitFunc is called for every node reached by Walk with the node's
// absolute [from, to) range. Returning false skips the node's children.
type VisitFunc func(node *Tree, from, to int) bool

// Walk performs a pre-order traversal, resolving relative offsets against
// base, the absolute position of t.
func (t *Tree) Walk(base int, visit VisitFunc) {
	if !visit(t, base, base+t.length) {
		return
	}
	for i, child := range t.children {
		child.Walk(base+t.positions[i], visit)
	}
}
