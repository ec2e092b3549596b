package hosttree

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Dump formats accepted by Encode.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat is returned by Encode for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown dump format")

// DumpNode is an inspection view of a Tree with absolute offsets.
type DumpNode struct {
	Name     string      `json:"name"               yaml:"name"               msgpack:"name"`
	Category string      `json:"category,omitempty" yaml:"category,omitempty" msgpack:"category,omitempty"`
	From     int         `json:"from"               yaml:"from"               msgpack:"from"`
	To       int         `json:"to"                 yaml:"to"                 msgpack:"to"`
	Children []*DumpNode `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

// Dump converts tree into its inspection view.
func Dump(tree *Tree) *DumpNode {
	return dumpAt(tree, 0)
}

func dumpAt(tree *Tree, base int) *DumpNode {
	node := &DumpNode{
		Name: tree.nodeType.name,
		From: base,
		To:   base + tree.length,
	}
	if rule, ok := tree.nodeType.Rule(); ok {
		node.Category = rule.Category.String()
	}
	for i, child := range tree.children {
		node.Children = append(node.Children, dumpAt(child, base+tree.positions[i]))
	}
	return node
}

// Encode writes the inspection view of tree to w in the given format.
func Encode(w io.Writer, tree *Tree, format string) error {
	dump := Dump(tree)

	switch format {
	case FormatText, "":
		return writeOutline(w, dump, 0)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dump); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(dump); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

func writeOutline(w io.Writer, node *DumpNode, depth int) error {
	name := node.Name
	if name == "" {
		name = "(empty)"
	}
	line := fmt.Sprintf("%s%s [%d..%d)", strings.Repeat("  ", depth), name, node.From, node.To)
	if node.Category != "" {
		line += " " + node.Category
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}
	for _, child := range node.Children {
		if err := writeOutline(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
