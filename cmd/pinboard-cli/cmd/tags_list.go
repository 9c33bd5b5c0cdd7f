package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nfrund/pinboard/cmd/pinboard-cli/internal/tagsfmt"
	"github.com/nfrund/pinboard/internal/tagmgr"
)

func newTagsListCmd(a *app) *cobra.Command {
	var (
		outputFormat string
		domainFilter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered tags",
		Long: `List every action tag in the catalog, grouped by domain in a fixed order.

Examples:
  pinboard-cli tags list                        # All tags as a table
  pinboard-cli tags list --format json          # All tags as JSON
  pinboard-cli tags list --domain current_board # Only current board tags

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format with metadata`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := a.loadTags()
			if err != nil {
				return fmt.Errorf("failed to load tags: %w", err)
			}

			var tagList []tagmgr.Tag
			if domainFilter != "" {
				domain, err := tagmgr.ParseDomain(domainFilter)
				if err != nil {
					return fmt.Errorf("%w (valid domains: %v)", err, tagmgr.Domains())
				}
				tagList = manager.ListByDomain(domain)
			} else {
				tagList = manager.All()
			}
			slog.Debug("Listing tags", "domain", domainFilter, "count", len(tagList))

			out := cmd.OutOrStdout()
			switch format := a.outputFormat(outputFormat); format {
			case "json":
				return tagsfmt.DisplayTagsJSON(out, tagList, manager.Stats())
			case "table":
				return tagsfmt.DisplayTagsTable(out, tagList)
			default:
				return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", format)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (table, json)")
	cmd.Flags().StringVarP(&domainFilter, "domain", "d", "", "Filter tags by domain")
	return cmd
}
