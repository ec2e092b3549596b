package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/pkg/hosttree"
)

type treeFlags struct {
	lang   string
	format string
	output string
}

func newTreeCommand() *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the highlighting tree of a file",
		Long: `Parse a file and print the resulting tree with absolute byte offsets.

The root is always the synthetic _root node. A failed parse prints the
empty tree and exits with status 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPass(cmd, args, flags.lang)
			if err != nil {
				return err
			}
			dest := newOutput(cmd, flags.output)
			if err := hosttree.Encode(dest.Writer(), p.result.Tree, flags.format); err != nil {
				return err
			}
			if err := dest.Commit(commandContext(cmd)); err != nil {
				return err
			}
			return p.err()
		},
	}

	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "language: lyql, markdown (default: detect)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", hosttree.FormatText,
		"output format: text, json, yaml, msgpack")
	addOutputFlag(cmd, &flags.output)

	return cmd
}
