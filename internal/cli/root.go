// Package cli provides the Cobra command structure for lyqlplay.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root lyqlplay command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "lyqlplay",
		Short: "A syntax highlighting playground for LyQL and Markdown",
		Long: `lyqlplay converts the output of an external parser into a
highlighting tree and renders it in the terminal, as HTML, or in an
interactive playground that reparses on every keystroke.

LyQL and Markdown are built in. Tree dumps and plain AST JSON files from
other parsers can be inspected with the tree and convert commands.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newPlayCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
