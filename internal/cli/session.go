package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/internal/configloader"
	"github.com/yaklabco/lyqlplay/internal/logging"
	"github.com/yaklabco/lyqlplay/pkg/adapter"
	"github.com/yaklabco/lyqlplay/pkg/config"
	"github.com/yaklabco/lyqlplay/pkg/fsutil"
	"github.com/yaklabco/lyqlplay/pkg/highlight"
	"github.com/yaklabco/lyqlplay/pkg/hosttree"
	"github.com/yaklabco/lyqlplay/pkg/language"
)

// ErrParseFailed is returned when a command ran but the parser rejected
// its input. The output has already been written from the empty tree.
var ErrParseFailed = errors.New("parse failed")

// stdinName is the argument that selects standard input.
const stdinName = "-"

// source is one input text.
type source struct {
	// Name is the file path, or empty for stdin.
	Name string
	Text string
}

// readSource reads the single optional file argument, or stdin when the
// argument is missing or "-".
func readSource(cmd *cobra.Command, args []string) (source, error) {
	if len(args) == 0 || args[0] == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return source{}, fmt.Errorf("read stdin: %w", err)
		}
		return source{Text: string(data)}, nil
	}

	data, err := fsutil.ReadFile(commandContext(cmd), args[0])
	if err != nil {
		return source{}, fmt.Errorf("read input: %w", err)
	}
	return source{Name: args[0], Text: string(data)}, nil
}

// loadConfig resolves the configuration for a command. overrides carries
// the command's own flags; the global flags are added here.
func loadConfig(cmd *cobra.Command, overrides *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	if overrides == nil {
		overrides = &config.Config{}
	}

	flags := cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	if flags.Changed("color") {
		color, err := flags.GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		overrides.Color = config.ColorMode(color)
	}
	if debug, err := flags.GetBool("debug"); err == nil && debug {
		overrides.Debug = true
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    overrides,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	logger := logging.FromContext(ctx)
	if result.Config.Debug {
		logging.SetLevel("debug")
	}
	for _, warning := range result.Warnings {
		logger.Warn("configuration", logging.FieldConfig, warning)
	}
	logger.Debug("configuration loaded", logging.FieldConfig, result.LoadedFrom)

	return result.Config, nil
}

// newAdapter wires parser to a fresh builder and runs the init barrier. The
// adapter reports diagnostics to the context's logger.
func newAdapter(ctx context.Context, cfg *config.Config, parser adapter.Parser) (*adapter.Adapter, error) {
	types := hosttree.NewTypeCache(highlight.Default())
	builder := hosttree.NewBuilder(types, hosttree.WithMaxDepth(cfg.MaxDepth))

	a := adapter.New(parser, builder, adapter.WithLogger(logging.FromContext(ctx)))
	if err := a.Init(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// pass is the outcome of running one source through its language.
type pass struct {
	cfg    *config.Config
	lang   language.Language
	src    source
	result adapter.Result
}

// err reports a failed parse as ErrParseFailed.
func (p *pass) err() error {
	if p.result.OK() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrParseFailed, p.result.Err)
}

// runPass reads the input, resolves configuration and language, and performs
// one reparse.
func runPass(cmd *cobra.Command, args []string, lang string) (*pass, error) {
	src, err := readSource(cmd, args)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(cmd, &config.Config{Language: lang})
	if err != nil {
		return nil, err
	}

	resolved, err := language.Resolve(cfg.Language, src.Name, []byte(src.Text))
	if err != nil {
		return nil, err
	}

	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	a, err := newAdapter(ctx, cfg, resolved.New(cfg))
	if err != nil {
		return nil, err
	}

	logger.Debug("parsing",
		logging.FieldInput, displayName(src.Name),
		logging.FieldLanguage, resolved.Name,
	)

	return &pass{
		cfg:    cfg,
		lang:   resolved,
		src:    src,
		result: a.Reparse(ctx, src.Text),
	}, nil
}

func displayName(name string) string {
	if name == "" {
		return "<stdin>"
	}
	return name
}
