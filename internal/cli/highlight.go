package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/internal/ui/pretty"
	"github.com/yaklabco/lyqlplay/pkg/render"
)

// Highlight output formats.
const (
	formatANSI  = "ansi"
	formatHTML  = "html"
	formatPlain = "plain"
)

type highlightFlags struct {
	lang   string
	format string
	output string
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Print a file with syntax highlighting",
		Long: `Parse a file and print it highlighted.

With no file, or when file is -, standard input is read. The language is
detected from the file name and content unless --lang is given.

Formats:
  ansi   terminal colors (default)
  html   a pre element with one span per highlighted run
  plain  one line per run: range, category, class and text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "language: lyql, markdown (default: detect)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatANSI, "output format: ansi, html, plain")
	addOutputFlag(cmd, &flags.output)

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	switch flags.format {
	case formatANSI, formatHTML, formatPlain:
	default:
		return fmt.Errorf("unknown format %q; must be one of: ansi, html, plain", flags.format)
	}

	p, err := runPass(cmd, args, flags.lang)
	if err != nil {
		return err
	}

	text := p.src.Text
	highlights := render.Highlights(p.result.Tree, len(text))
	dest := newOutput(cmd, flags.output)
	out := dest.Writer()

	switch flags.format {
	case formatHTML:
		err = render.HTML(out, text, highlights)
	case formatPlain:
		err = render.Plain(out, text, highlights)
	default:
		renderer := render.NewRenderer(out, pretty.IsColorEnabled(string(p.cfg.Color), out))
		theme, themeErr := render.NewTheme(renderer, p.cfg.Theme)
		if themeErr != nil {
			return themeErr
		}
		err = render.ANSI(out, text, highlights, theme)
	}
	if err != nil {
		return err
	}
	if err := dest.Commit(commandContext(cmd)); err != nil {
		return err
	}

	return p.err()
}
