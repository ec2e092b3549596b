// Package goldmark provides a Markdown implementation of adapter.Parser
// backed by the goldmark library.
package goldmark

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// errNotInitialized is returned by Parse before Init has run.
var errNotInitialized = errors.New("goldmark parser not initialized")

// Parser parses Markdown into an ast.Node tree.
type Parser struct {
	flavor string

	once sync.Once
	md   goldmark.Markdown
}

// New creates a parser for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else falls back to "commonmark".
// The goldmark instance is built by Init.
func New(flavor string) *Parser {
	return &Parser{flavor: flavorOrDefault(flavor)}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Init builds the configured goldmark instance. It is safe to call more
// than once.
func (p *Parser) Init(_ context.Context) error {
	p.once.Do(func() {
		p.md = newGoldmarkInstance(p.flavor)
	})
	return nil
}

// Parse converts Markdown text into a tree rooted at a Document node that
// spans the whole text.
func (p *Parser) Parse(ctx context.Context, source string) (*ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	if p.md == nil {
		return nil, errNotInitialized
	}

	content := []byte(source)
	reader := text.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	return newMapper(content).mapDocument(gmDoc), nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
