package lyql

import (
	"context"
	"fmt"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

// ProgramTag is the tag of the node holding the token stream.
const ProgramTag = "Program"

// Tokenizer exposes Scan as an adapter.Parser.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Parse scans text and returns a Program node spanning the whole text with
// one leaf per token.
func (t *Tokenizer) Parse(ctx context.Context, text string) (*ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tokenize cancelled: %w", err)
	}

	tokens, err := Scan(text)
	if err != nil {
		return nil, err
	}
	return Tree(tokens, len(text)), nil
}

// Tree converts a token stream into a flat syntax tree. The EOF token is
// omitted.
func Tree(tokens []Token, length int) *ast.Node {
	children := make([]*ast.Node, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == KindEOF {
			continue
		}
		children = append(children, ast.Leaf(token.Kind.Tag(), token.Span.Start, token.Span.End))
	}
	return ast.Branch(ProgramTag, 0, length, children...)
}
