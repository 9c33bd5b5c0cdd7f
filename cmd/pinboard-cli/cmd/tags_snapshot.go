package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nfrund/pinboard/cmd/pinboard-cli/internal/tagsfmt"
	"github.com/nfrund/pinboard/internal/snapshot"
)

func newTagsSnapshotCmd(a *app) *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write or check a snapshot of the tag catalog",
		Long: `Snapshots make adding or removing a tag a visible, reviewable change.
The path defaults to PINBOARD_SNAPSHOT_PATH.`,
	}

	snapshotCmd.AddCommand(&cobra.Command{
		Use:   "write [path]",
		Short: "Write the current catalog to a snapshot file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := a.loadTags()
			if err != nil {
				return fmt.Errorf("failed to load tags: %w", err)
			}

			path := a.snapshotPath(args)
			snap := snapshot.Take(manager)
			if err := snapshot.Write(a.fs, path, snap); err != nil {
				return err
			}
			slog.Info("Wrote tag snapshot", "path", path, "count", snap.Count)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tags to %s\n", snap.Count, path)
			return nil
		},
	})

	snapshotCmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Fail if the catalog differs from a snapshot file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := a.loadTags()
			if err != nil {
				return fmt.Errorf("failed to load tags: %w", err)
			}

			path := a.snapshotPath(args)
			recorded, err := snapshot.Read(a.fs, path)
			if err != nil {
				return err
			}

			changes := snapshot.Diff(recorded, snapshot.Take(manager))
			if !changes.Empty() {
				tagsfmt.DisplayChanges(cmd.OutOrStdout(), changes)
				return fmt.Errorf("tag catalog differs from %s, run 'pinboard-cli tags snapshot write' if the change is intended", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Tag catalog matches %s\n", path)
			return nil
		},
	})

	return snapshotCmd
}

func (a *app) snapshotPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.SnapshotPath
}
