package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/internal/logging"
	"github.com/yaklabco/lyqlplay/internal/ui/pretty"
	"github.com/yaklabco/lyqlplay/pkg/adapter"
	"github.com/yaklabco/lyqlplay/pkg/ast"
	"github.com/yaklabco/lyqlplay/pkg/fsutil"
	"github.com/yaklabco/lyqlplay/pkg/hosttree"
	"github.com/yaklabco/lyqlplay/pkg/render"
)

type convertFlags struct {
	format string
	source string
	output string
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <ast.json>",
		Short: "Convert an AST produced by another parser",
		Long: `Read a JSON AST of {"name", "span": {"start", "end"}, "children"}
nodes, convert it into a highlighting tree and print the tree.

With --source, the source text the AST was produced from is printed with
highlighting instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", hosttree.FormatText,
		"output format: text, json, yaml, msgpack")
	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "source file to highlight with the converted tree")
	addOutputFlag(cmd, &flags.output)

	return cmd
}

func runConvert(cmd *cobra.Command, astPath string, flags *convertFlags) error {
	ctx := commandContext(cmd)

	file, err := os.Open(astPath)
	if err != nil {
		return fmt.Errorf("open ast: %w", err)
	}
	defer file.Close()

	root, err := ast.Decode(file)
	if err != nil {
		return err
	}

	var text string
	if flags.source != "" {
		data, err := fsutil.ReadFile(ctx, flags.source)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		text = string(data)
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	// The decoded AST stands in for the parser.
	parser := adapter.ParserFunc(func(context.Context, string) (*ast.Node, error) {
		return root, nil
	})
	a, err := newAdapter(ctx, cfg, parser)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("converting",
		logging.FieldInput, astPath,
		logging.FieldNodes, ast.Count(root),
	)

	p := &pass{cfg: cfg, src: source{Name: flags.source, Text: text}, result: a.Reparse(ctx, text)}
	dest := newOutput(cmd, flags.output)
	out := dest.Writer()

	if flags.source == "" {
		err = hosttree.Encode(out, p.result.Tree, flags.format)
	} else {
		renderer := render.NewRenderer(out, pretty.IsColorEnabled(string(cfg.Color), out))
		theme, themeErr := render.NewTheme(renderer, cfg.Theme)
		if themeErr != nil {
			return themeErr
		}
		err = render.ANSI(out, text, render.Highlights(p.result.Tree, len(text)), theme)
	}
	if err != nil {
		return err
	}
	if err := dest.Commit(ctx); err != nil {
		return err
	}
	return p.err()
}
