package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "shell [sqlite3 options]",
		Aliases: []string{"sql", "sqlite3"},
		Short:   "Open the history database in an SQLite shell",
		Long: `Open the history database in an interactive sqlite3 shell.

Extra arguments are passed to sqlite3 before the database path:

  duiker shell -readonly`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Bring the schema up to date before handing the file to an
			// external tool, then release our connection.
			s, err := rootOpts.OpenStore(ctx)
			if err != nil {
				return err
			}
			if err := s.Close(); err != nil {
				return err
			}

			bin, err := exec.LookPath("sqlite3")
			if err != nil {
				return err
			}

			shell := exec.CommandContext(ctx, bin, append(args, rootOpts.Config.DatabasePath())...)
			shell.Stdin = os.Stdin
			shell.Stdout = os.Stdout
			shell.Stderr = os.Stderr
			return shell.Run()
		},
	}
}
