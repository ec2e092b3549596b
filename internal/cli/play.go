package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/lyqlplay/internal/logging"
	"github.com/yaklabco/lyqlplay/internal/ui/play"
	"github.com/yaklabco/lyqlplay/internal/ui/pretty"
	"github.com/yaklabco/lyqlplay/pkg/config"
	"github.com/yaklabco/lyqlplay/pkg/fsutil"
	"github.com/yaklabco/lyqlplay/pkg/language"
	"github.com/yaklabco/lyqlplay/pkg/render"
)

// ErrNotTerminal is returned when play runs without an interactive terminal.
var ErrNotTerminal = errors.New("play requires an interactive terminal")

type playFlags struct {
	lang    string
	onError string
}

func newPlayCommand() *cobra.Command {
	flags := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Open the interactive playground",
		Long: `Open an editor whose contents are reparsed and highlighted on every
change. The optional file seeds the editor; it is never written back.

After a failed parse the preview shows plain text (--on-error reset) or
keeps the last successful highlighting (--on-error keep).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "language: lyql, markdown (default: detect)")
	cmd.Flags().StringVar(&flags.onError, "on-error", "", "policy after a failed parse: reset, keep")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string, flags *playFlags) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	ctx := commandContext(cmd)

	var src source
	if len(args) > 0 && args[0] != stdinName {
		data, err := fsutil.ReadFile(ctx, args[0])
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		src = source{Name: args[0], Text: string(data)}
	}

	cfg, err := loadConfig(cmd, &config.Config{
		Language: flags.lang,
		OnError:  config.OnError(flags.onError),
	})
	if err != nil {
		return err
	}

	lang, err := language.Resolve(cfg.Language, src.Name, []byte(src.Text))
	if err != nil {
		return err
	}

	// The playground owns the terminal; diagnostics would corrupt it.
	ctx = logging.WithLogger(ctx, logging.Discard())
	a, err := newAdapter(ctx, cfg, lang.New(cfg))
	if err != nil {
		return err
	}

	colorEnabled := pretty.IsColorEnabled(string(cfg.Color), os.Stdout)
	theme, err := render.NewTheme(render.NewRenderer(os.Stdout, colorEnabled), cfg.Theme)
	if err != nil {
		return err
	}

	return play.Run(ctx, play.Options{
		Adapter:  a,
		Language: lang.Name,
		Filename: displayName(src.Name),
		Text:     src.Text,
		OnError:  cfg.OnError,
		Theme:    theme,
		Styles:   pretty.NewStyles(colorEnabled),
	})
}
