package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/pinboard/internal/config"
	"github.com/nfrund/pinboard/internal/logging"
	"github.com/nfrund/pinboard/internal/tagmgr"
	"github.com/nfrund/pinboard/internal/tags"
)

// app carries what every subcommand needs
type app struct {
	fs      afero.Fs
	cfg     *config.Config
	verbose bool
}

// NewRootCmd builds the command tree. Snapshot files are read from and
// written to fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "pinboard-cli",
		Short: "Pinboard CLI tool",
		Long: `Pinboard CLI inspects the action tags the board application dispatches.

Available commands:
  tags       List, inspect and validate action tags
  version    Print the CLI version

Use "pinboard-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.New()

			// Stay quiet unless asked otherwise
			var w io.Writer = io.Discard
			if a.verbose {
				w = cmd.ErrOrStderr()
			}
			logging.New(a.cfg, w)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Write logs to stderr")

	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadTags builds the sealed tag catalog
func (a *app) loadTags() (*tagmgr.Manager, error) {
	return tags.NewManager()
}

// outputFormat returns the flag value, falling back to configuration
func (a *app) outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.OutputFormat
}
