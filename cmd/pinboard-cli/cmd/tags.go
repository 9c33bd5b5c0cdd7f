package cmd

import (
	"github.com/spf13/cobra"
)

// newTagsCmd represents the tags command
func newTagsCmd(a *app) *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Explore the board application's action tags",
		Long: `The tags command provides tools for discovering, inspecting, and validating
the action tags the board application dispatches. Tags are grouped by domain:
session, socket, boards, current_board, lists and cards.

Available subcommands:
  list      List all tags with optional filtering
  get       Get detailed information about a specific tag
  validate  Validate a tag name and definition
  snapshot  Write or check a snapshot of the catalog

Examples:
  # List all tags
  pinboard-cli tags list

  # List tags for a single domain
  pinboard-cli tags list --domain=cards

  # Get detailed information about a tag
  pinboard-cli tags get CARD_MOVE

  # Fail if the catalog drifted from the committed snapshot
  pinboard-cli tags snapshot check internal/tags/testdata/tags.json`,
	}

	tagsCmd.AddCommand(newTagsListCmd(a))
	tagsCmd.AddCommand(newTagsGetCmd(a))
	tagsCmd.AddCommand(newTagsValidateCmd(a))
	tagsCmd.AddCommand(newTagsSnapshotCmd(a))
	return tagsCmd
}
