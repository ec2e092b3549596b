// Package render turns a host tree into highlighted output.
package render

import (
	"github.com/yaklabco/lyqlplay/pkg/highlight"
	"github.com/yaklabco/lyqlplay/pkg/hosttree"
)

// Highlight is a styled run [From, To) of the source.
type Highlight struct {
	From     int                `json:"from"`
	To       int                `json:"to"`
	Category highlight.Category `json:"-"`
	Class    string             `json:"class"`
}

// Len returns the run length in bytes.
func (h Highlight) Len() int { return h.To - h.From }

// Highlights computes styled runs for a source of length n. Nodes paint
// their range parent first, so the innermost styled node wins; unstyled
// nodes leave the paint below them untouched. Ranges beyond n are clipped.
// Adjacent bytes with the same style are merged into one run.
func Highlights(tree *hosttree.Tree, n int) []Highlight {
	if tree == nil || tree.IsEmpty() || n <= 0 {
		return nil
	}

	// typePerByte[i] is the innermost styled node type covering byte i.
	typePerByte := make([]*hosttree.NodeType, n)
	tree.Walk(0, func(node *hosttree.Tree, from, to int) bool {
		nodeType := node.Type()
		if nodeType.Category() == highlight.CategoryNone {
			return true
		}
		from, to = max(from, 0), min(to, n)
		for i := from; i < to; i++ {
			typePerByte[i] = nodeType
		}
		return true
	})

	return compress(typePerByte)
}

// compress collapses per-byte types into runs, skipping unstyled bytes.
func compress(typePerByte []*hosttree.NodeType) []Highlight {
	var out []Highlight
	var current *Highlight

	for i, nodeType := range typePerByte {
		if nodeType == nil {
			current = nil
			continue
		}
		rule, _ := nodeType.Rule()
		if current != nil && current.Category == nodeType.Category() && current.Class == rule.ClassName {
			current.To = i + 1
			continue
		}
		out = append(out, Highlight{
			From:     i,
			To:       i + 1,
			Category: nodeType.Category(),
			Class:    rule.ClassName,
		})
		current = &out[len(out)-1]
	}
	return out
}

// segment is a slice of the source with the run covering it, if any.
type segment struct {
	text  string
	style *Highlight
}

// segments splits text into alternating plain and highlighted pieces.
// Highlights must be sorted and non-overlapping, as Highlights returns them.
func segments(text string, highlights []Highlight) []segment {
	var out []segment
	pos := 0
	for i := range highlights {
		h := &highlights[i]
		from, to := max(h.From, pos), min(h.To, len(text))
		if from >= to {
			continue
		}
		if from > pos {
			out = append(out, segment{text: text[pos:from]})
		}
		out = append(out, segment{text: text[from:to], style: h})
		pos = to
	}
	if pos < len(text) {
		out = append(out, segment{text: text[pos:]})
	}
	return out
}
