package goldmark

import (
	gast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

// DocumentTag is the tag of the root node returned by Parse.
const DocumentTag = "Document"

// mapper converts a goldmark AST into an ast.Node tree with byte spans.
type mapper struct {
	content []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node. The document always spans
// the whole content.
func (m *mapper) mapDocument(gmDoc gast.Node) *ast.Node {
	return ast.Branch(DocumentTag, 0, len(m.content), m.mapChildren(gmDoc)...)
}

// mapChildren maps all children of a goldmark node, in document order.
func (m *mapper) mapChildren(gmParent gast.Node) []*ast.Node {
	var children []*ast.Node
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		children = append(children, m.mapNode(child))
	}
	return children
}

// mapNode converts a single goldmark node and its subtree.
func (m *mapper) mapNode(gmNode gast.Node) *ast.Node {
	children := m.mapChildren(gmNode)
	node := &ast.Node{Tag: tagFor(gmNode), Children: children}

	if span, ok := m.spanOf(gmNode, children); ok {
		node.Span = &span
	}
	return node
}

// tagFor names a goldmark node. Goldmark kind names are used unchanged
// apart from strong emphasis and fenced code.
func tagFor(gmNode gast.Node) string {
	switch gmn := gmNode.(type) {
	case *gast.Emphasis:
		if gmn.Level >= 2 {
			return "Strong"
		}
		return "Emphasis"
	case *gast.FencedCodeBlock:
		return "CodeBlock"
	default:
		return gmNode.Kind().String()
	}
}

// spanOf derives a node's byte range. Goldmark records positions only for
// text segments and block lines; everything else is inferred from the
// children and widened over the surrounding markup.
func (m *mapper) spanOf(gmNode gast.Node, children []*ast.Node) (ast.Span, bool) {
	switch gmn := gmNode.(type) {
	case *gast.Text:
		seg := gmn.Segment
		if seg.Stop < seg.Start {
			return ast.Span{}, false
		}
		return ast.Span{Start: seg.Start, End: seg.Stop}, true

	case *gast.String:
		// Synthesized by goldmark; no source position.
		return ast.Span{}, false

	case *gast.RawHTML:
		return segmentsSpan(gmn.Segments.Len(), func(i int) (int, int) {
			seg := gmn.Segments.At(i)
			return seg.Start, seg.Stop
		})

	case *gast.Heading:
		span, ok := m.blockSpan(gmNode, children)
		if ok {
			span.Start = m.lineStart(span.Start)
		}
		return span, ok

	case *gast.Blockquote:
		span, ok := unionSpan(children)
		if ok {
			span.Start = m.lineStart(span.Start)
		}
		return span, ok

	case *gast.FencedCodeBlock:
		return m.fencedSpan(gmn)

	case *gast.CodeSpan:
		return m.delimited(children, '`', -1)

	case *gast.Emphasis:
		span, ok := unionSpan(children)
		if !ok {
			return span, false
		}
		return m.widen(span, func(c byte) bool { return c == '*' || c == '_' }, gmn.Level), true

	case *east.Strikethrough:
		return m.delimited(children, '~', -1)

	case *gast.Link:
		return m.linkSpan(children, 1)

	case *gast.Image:
		return m.linkSpan(children, 2)

	default:
		return m.blockSpan(gmNode, children)
	}
}

// blockSpan covers a block's lines and its children. Inline nodes have no
// lines and fall back to their children.
func (m *mapper) blockSpan(gmNode gast.Node, children []*ast.Node) (ast.Span, bool) {
	span, ok := unionSpan(children)
	if gmNode.Type() == gast.TypeInline {
		return span, ok
	}

	lines := gmNode.Lines()
	if lines == nil || lines.Len() == 0 {
		return span, ok
	}
	linesSpan := ast.Span{Start: lines.At(0).Start, End: lines.At(lines.Len() - 1).Stop}
	if !ok {
		return linesSpan, true
	}
	return union(span, linesSpan), true
}

// fencedSpan extends a fenced block's content lines over the opening and
// closing fence lines.
func (m *mapper) fencedSpan(codeBlock *gast.FencedCodeBlock) (ast.Span, bool) {
	lines := codeBlock.Lines()
	if lines.Len() == 0 {
		return ast.Span{}, false
	}

	start := m.lineStart(lines.At(0).Start)
	if start > 0 {
		start = m.lineStart(start - 1)
	}
	end := m.lineEnd(lines.At(lines.Len() - 1).Stop)

	return ast.Span{Start: start, End: end}, true
}

// linkSpan covers "[label](destination)" or "![label](destination)".
func (m *mapper) linkSpan(children []*ast.Node, openers int) (ast.Span, bool) {
	span, ok := unionSpan(children)
	if !ok {
		return span, false
	}

	span.Start = max(span.Start-openers, 0)

	end := span.End
	if end < len(m.content) && m.content[end] == ']' {
		end++
		if end < len(m.content) && (m.content[end] == '(' || m.content[end] == '[') {
			closer := byte(')')
			if m.content[end] == '[' {
				closer = ']'
			}
			for i := end + 1; i < len(m.content) && m.content[i] != '\n'; i++ {
				if m.content[i] == closer {
					end = i + 1
					break
				}
			}
		}
	}
	span.End = end
	return span, true
}

// delimited unions the children and widens over up to limit delim bytes on
// each side. A negative limit widens over every adjacent delimiter.
func (m *mapper) delimited(children []*ast.Node, delim byte, limit int) (ast.Span, bool) {
	span, ok := unionSpan(children)
	if !ok {
		return span, false
	}
	return m.widen(span, func(c byte) bool { return c == delim }, limit), true
}

func (m *mapper) widen(span ast.Span, isDelim func(byte) bool, limit int) ast.Span {
	for n := 0; (limit < 0 || n < limit) && span.Start > 0 && isDelim(m.content[span.Start-1]); n++ {
		span.Start--
	}
	for n := 0; (limit < 0 || n < limit) && span.End < len(m.content) && isDelim(m.content[span.End]); n++ {
		span.End++
	}
	return span
}

// lineStart returns the offset of the first byte of the line holding pos.
func (m *mapper) lineStart(pos int) int {
	for pos > 0 && m.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line holding pos,
// or the content length.
func (m *mapper) lineEnd(pos int) int {
	for pos < len(m.content) && m.content[pos] != '\n' {
		pos++
	}
	return pos
}

func unionSpan(nodes []*ast.Node) (ast.Span, bool) {
	var out ast.Span
	found := false
	for _, node := range nodes {
		span, ok := node.Extent()
		if !ok {
			continue
		}
		if !found {
			out, found = span, true
			continue
		}
		out = union(out, span)
	}
	return out, found
}

func segmentsSpan(n int, at func(int) (int, int)) (ast.Span, bool) {
	if n == 0 {
		return ast.Span{}, false
	}
	start, end := at(0)
	out := ast.Span{Start: start, End: end}
	for i := 1; i < n; i++ {
		start, end = at(i)
		out = union(out, ast.Span{Start: start, End: end})
	}
	return out, true
}

func union(a, b ast.Span) ast.Span {
	return ast.Span{Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}
