package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagsValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <TAG_NAME>",
		Short: "Validate a tag definition",
		Long: `Check that a name is well formed and that the registered tag with that name
is a complete, consistent definition.

The validation process includes:
- Name format (UPPER_SNAKE_CASE)
- Presence in the catalog
- Value equal to name, non-empty description, known domain
- Domain prefix (e.g. cards tags start with CARD_ or CURRENT_CARD_)

Output:
  ✅ Success - Shows the tag is valid with details
  ❌ Error   - Shows the specific validation failure`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()

			manager, err := a.loadTags()
			if err != nil {
				return fmt.Errorf("failed to load tags: %w", err)
			}

			if err := manager.ValidateTagName(name); err != nil {
				fmt.Fprintf(out, "❌ Tag name validation failed: %v\n", err)
				return err
			}

			tag, err := manager.Lookup(name)
			if err != nil {
				fmt.Fprintf(out, "❌ Tag validation failed: %v\n", err)
				return err
			}

			if err := manager.Validate(tag); err != nil {
				fmt.Fprintf(out, "❌ Tag validation failed: %v\n", err)
				return err
			}

			fmt.Fprintf(out, "✅ Tag '%s' is valid\n", tag.Name())
			fmt.Fprintf(out, "   Domain: %s\n", tag.Domain())
			fmt.Fprintf(out, "   Description: %s\n", tag.Description())
			return nil
		},
	}
}
