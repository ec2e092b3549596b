package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/internal/ui/pretty"
	"github.com/yaklabco/lyqlplay/pkg/highlight"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// tagInfo represents a style rule in JSON output.
type tagInfo struct {
	Selector string   `json:"selector"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Class    string   `json:"class"`
}

func newTagsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List highlighted tags and their style classes",
		Long: `List the tag registry in registration order: the tag selector, the
highlight category it maps to and the CSS class used by HTML output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := highlight.Default().StyleRules()
			out := cmd.OutOrStdout()

			switch format {
			case formatJSON:
				infos := make([]tagInfo, 0, len(rules))
				for _, rule := range rules {
					infos = append(infos, tagInfo{
						Selector: rule.Selector,
						Tags:     rule.Tags(),
						Category: rule.Category.String(),
						Class:    rule.ClassName,
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encoding tags: %w", err)
				}
				return nil

			case formatText:
				cfg, err := loadConfig(cmd, nil)
				if err != nil {
					return err
				}
				styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
				return pretty.Tags(out, rules, styles)

			default:
				return fmt.Errorf("unknown format %q; must be one of: text, json", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json")

	return cmd
}
