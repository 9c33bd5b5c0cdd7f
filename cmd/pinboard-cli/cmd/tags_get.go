package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/pinboard/cmd/pinboard-cli/internal/tagsfmt"
)

func newTagsGetCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "get <TAG_NAME>",
		Short: "Get detailed information about a specific tag",
		Long: `Show the name, value, domain, description and metadata of one tag.

Examples:
  pinboard-cli tags get SOCKET_CONNECTED
  pinboard-cli tags get CARD_MOVE --format json
  pinboard-cli tags get NOT_A_TAG               # Fails with "unknown tag"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := a.loadTags()
			if err != nil {
				return fmt.Errorf("failed to load tags: %w", err)
			}

			tag, err := manager.Lookup(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Use 'pinboard-cli tags list' to see all available tags.\n")
				return err
			}

			entry, ok := manager.GetEntry(tag.Name())
			if !ok {
				return fmt.Errorf("tag %s has no registry entry", tag.Name())
			}
			return tagsfmt.DisplayTagDetails(cmd.OutOrStdout(), entry, a.outputFormat(outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (table, json)")
	return cmd
}
