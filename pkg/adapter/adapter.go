// Package adapter drives one full conversion pass per text change: it runs
// an external parser over the whole text and converts the result into a
// host tree, absorbing every parser failure at its boundary.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/lyqlplay/internal/logging"
	"github.com/yaklabco/lyqlplay/pkg/ast"
	"github.com/yaklabco/lyqlplay/pkg/hosttree"
)

// RootTag is the tag of the synthetic node wrapping every parse result.
const RootTag = "_root"

var (
	// ErrNotReady is reported when Reparse runs before Init has succeeded.
	ErrNotReady = errors.New("parser not initialized")

	// ErrUnrenderableRoot is reported when the parser returns no root or a
	// root without a span.
	ErrUnrenderableRoot = errors.New("parser returned an unrenderable root")
)

// Parser is an external parser. Parse must be idempotent for identical
// input. It signals malformed input through the returned error and may
// panic on internal faults.
type Parser interface {
	Parse(ctx context.Context, text string) (*ast.Node, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx context.Context, text string) (*ast.Node, error)

// Parse calls f.
func (f ParserFunc) Parse(ctx context.Context, text string) (*ast.Node, error) {
	return f(ctx, text)
}

// Initializer is implemented by parsers that need a one-time setup before
// their first Parse call.
type Initializer interface {
	Init(ctx context.Context) error
}

// ParseError wraps an error returned by the parser.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// PanicError carries the value recovered from a panicking parser.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("parser panicked: %v", e.Value) }

// Result is the outcome of one pass. Tree is never nil; it is
// hosttree.Empty whenever Err is set.
type Result struct {
	Tree *hosttree.Tree
	Err  error
}

// OK reports whether the pass produced a tree from a successful parse.
func (r Result) OK() bool { return r.Err == nil }

// Adapter converts text to host trees through a Parser.
//
// An Adapter holds no state between passes apart from the builder's type
// cache, so passes may run in any order; the caller displays whichever
// result it received last.
type Adapter struct {
	parser  Parser
	builder *hosttree.Builder
	logger  *log.Logger

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger routes diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an adapter. Parsers that do not implement Initializer are
// ready immediately.
func New(parser Parser, builder *hosttree.Builder, opts ...Option) *Adapter {
	a := &Adapter{
		parser:  parser,
		builder: builder,
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if _, ok := parser.(Initializer); !ok {
		a.ready.Store(true)
	}
	return a
}

// Init runs the parser's one-time initialization. Later calls return the
// first call's result without running it again.
func (a *Adapter) Init(ctx context.Context) error {
	a.initOnce.Do(func() {
		initializer, ok := a.parser.(Initializer)
		if !ok {
			return
		}
		if err := initializer.Init(ctx); err != nil {
			a.initErr = fmt.Errorf("initialize parser: %w", err)
			return
		}
		a.ready.Store(true)
	})
	return a.initErr
}

// Ready reports whether Reparse will invoke the parser.
func (a *Adapter) Ready() bool {
	return a.ready.Load()
}

// Builder returns the adapter's tree builder.
func (a *Adapter) Builder() *hosttree.Builder {
	return a.builder
}

// Reparse parses the full text and converts it into a host tree rooted at
// a synthetic node. It never panics and never fails at its signature: any
// failure is logged and yields hosttree.Empty with Result.Err set.
func (a *Adapter) Reparse(ctx context.Context, text string) Result {
	start := time.Now()

	tree, err := a.reparse(ctx, text)
	if err != nil {
		a.logger.Warn("reparse failed",
			logging.FieldError, err,
			logging.FieldBytes, len(text),
		)
		return Result{Tree: hosttree.Empty, Err: err}
	}

	a.logger.Debug("reparsed",
		logging.FieldBytes, len(text),
		logging.FieldNodes, tree.Size(),
		logging.FieldTypes, a.builder.Types().Len(),
		logging.FieldDuration, time.Since(start),
	)
	return Result{Tree: tree}
}

func (a *Adapter) reparse(ctx context.Context, text string) (*hosttree.Tree, error) {
	if !a.ready.Load() {
		return nil, ErrNotReady
	}

	root, err := a.parse(ctx, text)
	if err != nil {
		return nil, err
	}

	span, ok := root.Extent()
	if !ok {
		return nil, ErrUnrenderableRoot
	}

	wrapped := ast.Branch(RootTag, 0, span.End, root)
	tree, err := a.builder.Convert(wrapped)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	return tree, nil
}

// parse invokes the parser, turning a panic into a PanicError.
func (a *Adapter) parse(ctx context.Context, text string) (root *ast.Node, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			root = nil
			err = &PanicError{Value: recovered}
		}
	}()

	root, err = a.parser.Parse(ctx, text)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if root == nil {
		return nil, ErrUnrenderableRoot
	}
	return root, nil
}
